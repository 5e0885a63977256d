package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minicodemonkey/chime/internal/config"
	"github.com/minicodemonkey/chime/internal/paths"
	"github.com/minicodemonkey/chime/internal/synth"
	"github.com/minicodemonkey/chime/internal/wavfile"
)

// RenderOptions contains configuration for the render command.
type RenderOptions struct {
	Variant string    // Variant name (default: "confirm")
	Output  string    // Output file (default: variant file name in BaseDir)
	BaseDir string    // Directory for relative output paths (default: current directory)
	Out     io.Writer // Summary destination (default: stdout)
	Color   bool      // Style the summary
}

// RunRender renders a variant and writes it as a WAV file, replacing any
// existing file, then prints a summary.
func RunRender(opts RenderOptions) error {
	if opts.Variant == "" {
		opts.Variant = config.DefaultVariant
	}
	if opts.BaseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		opts.BaseDir = cwd
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	cfg, err := config.Lookup(opts.Variant)
	if err != nil {
		return err
	}

	res, err := synth.Render(cfg)
	if err != nil {
		return fmt.Errorf("failed to render %q: %w", opts.Variant, err)
	}

	path := paths.Resolve(opts.BaseDir, opts.Variant, opts.Output)
	if opts.Output != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	meta := wavfile.Metadata{
		Title:    "scan confirm (" + opts.Variant + ")",
		Comments: fmt.Sprintf("%.0f-%.0f Hz glide, peak %.1f dBFS", cfg.Tone.StartFrequency, cfg.Tone.EndFrequency, cfg.PeakDB),
	}
	if err := wavfile.Write(path, res.SampleRate, res.PCM, meta); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprint(opts.Out, Summary(res, cfg, path, opts.Color))
	return nil
}
