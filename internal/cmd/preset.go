package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/minicodemonkey/chime/internal/config"
	"github.com/minicodemonkey/chime/internal/synth"
)

// PresetOptions contains configuration for the preset command.
type PresetOptions struct {
	Variant string    // Variant name (default: "confirm")
	Out     io.Writer // Destination (default: stdout)
	Color   bool      // Syntax-highlight the YAML
}

// RunPreset prints the parameters of a variant as YAML.
func RunPreset(opts PresetOptions) error {
	if opts.Variant == "" {
		opts.Variant = config.DefaultVariant
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	cfg, err := config.Lookup(opts.Variant)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	doc := fmt.Sprintf("# %s: %.0f ms, %d samples\n%s", opts.Variant,
		float64(cfg.Duration().Microseconds())/1000, synth.Samples(cfg.SampleRate, cfg.Duration()), data)

	if opts.Color {
		if err := quick.Highlight(opts.Out, doc, "yaml", "terminal256", "monokai"); err != nil {
			return fmt.Errorf("failed to highlight preset: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(opts.Out, doc)
	return err
}

// ListOptions contains configuration for the list command.
type ListOptions struct {
	Out io.Writer // Destination (default: stdout)
}

// RunList prints every variant with its length and description.
func RunList(opts ListOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	for _, v := range config.Variants() {
		cfg := v.Config()
		marker := " "
		if v.Name == config.DefaultVariant {
			marker = "*"
		}
		fmt.Fprintf(opts.Out, "%s %-8s %4.0f ms  %s\n", marker, v.Name,
			float64(cfg.Duration().Microseconds())/1000, v.Description)
	}
	return nil
}
