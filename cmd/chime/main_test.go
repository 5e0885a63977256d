package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"help"}, &stdout, &stderr, false); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("expected usage, got %q", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"play"}, &stdout, &stderr, false); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: unknown command \"play\"") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestRunRenderToOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	var stdout, stderr bytes.Buffer

	code := run([]string{"render", "--variant", "compact", "--output", path}, &stdout, &stderr, false)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file: %v", err)
	}
	if !strings.Contains(stdout.String(), "Generated beep.wav") {
		t.Errorf("expected a summary, got %q", stdout.String())
	}
}

func TestRunRenderUnknownVariant(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"render", "--variant", "nope", "--output", filepath.Join(t.TempDir(), "x.wav")}, &stdout, &stderr, false)
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: ") {
		t.Errorf("expected an error line, got %q", stderr.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"preset", "--loud"}, &stdout, &stderr, false); code != 2 {
		t.Errorf("expected exit 2, got %d", code)
	}
}

func TestRunPresetAndList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"preset", "--variant", "compact"}, &stdout, &stderr, false); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "total: 280ms") {
		t.Errorf("expected compact preset, got %q", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"list"}, &stdout, &stderr, false); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "confirm") || !strings.Contains(stdout.String(), "compact") {
		t.Errorf("expected both variants, got %q", stdout.String())
	}
}

func TestRunWithoutArgumentsRendersDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr, false); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "dormup_scan_confirm.wav")); err != nil {
		t.Errorf("expected the default file in the working directory: %v", err)
	}
	if !strings.Contains(stdout.String(), "Generated dormup_scan_confirm.wav") {
		t.Errorf("expected a summary, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no errors, got %q", stderr.String())
	}
}
