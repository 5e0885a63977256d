package tui

import (
	"strings"
	"testing"

	"github.com/minicodemonkey/chime/internal/synth"
)

func TestSegmentMarkdown(t *testing.T) {
	s := segmentStats{
		seg: synth.Segment{
			Kind:           synth.SegmentGlide,
			Offset:         1543,
			Length:         5292,
			StartFrequency: 900,
			EndFrequency:   1200,
			Gain:           1,
		},
		energy:        0.25,
		peakFrequency: 1051,
	}
	md := segmentMarkdown(s, 44100)
	for _, want := range []string{"### glide", "35.0 - 155.0 ms (5292 samples)", "900 → 1200 Hz", "-6.0 dBFS RMS", "`1051 Hz`"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Gain") {
		t.Error("expected unity gain to be omitted")
	}
}

func TestSegmentMarkdownSilentPause(t *testing.T) {
	s := segmentStats{seg: synth.Segment{Kind: synth.SegmentPause, Offset: 132, Length: 1411}}
	md := segmentMarkdown(s, 44100)
	if !strings.Contains(md, "silent") {
		t.Errorf("expected a silent level, got:\n%s", md)
	}
	if strings.Contains(md, "Frequency") || strings.Contains(md, "Measured") {
		t.Errorf("expected no frequency lines for a pause, got:\n%s", md)
	}
}

func TestRenderGlamour(t *testing.T) {
	s := segmentStats{
		seg:    synth.Segment{Kind: synth.SegmentTap, Length: 132, StartFrequency: 2200, EndFrequency: 2200, Gain: 0.2},
		energy: 0.01,
	}
	result := renderGlamour(segmentMarkdown(s, 44100), 60)
	if result == "" {
		t.Fatal("expected non-empty output")
	}
	plain := stripANSI(result)
	if strings.Contains(plain, "**") {
		t.Error("expected ** markers to be rendered as bold")
	}
	for _, want := range []string{"tap", "Span", "2200 Hz", "Gain", "0.20"} {
		if !strings.Contains(plain, want) {
			t.Errorf("expected %q in output, got: %s", want, plain)
		}
	}
}

func TestRenderGlamourEmpty(t *testing.T) {
	if renderGlamour("   ", 60) != "" {
		t.Error("expected empty output for blank markdown")
	}
	if renderGlamour("# title", 0) != "" {
		t.Error("expected empty output for zero width")
	}
}
