package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/minicodemonkey/chime/internal/config"
	"github.com/minicodemonkey/chime/internal/synth"
	"github.com/minicodemonkey/chime/internal/tui"
)

// InspectOptions contains configuration for the inspect command.
type InspectOptions struct {
	Variant string // Variant name (default: "confirm")
}

// RunInspect renders a variant in memory and opens the inspector.
// Nothing is written to disk.
func RunInspect(opts InspectOptions) error {
	if opts.Variant == "" {
		opts.Variant = config.DefaultVariant
	}

	cfg, err := config.Lookup(opts.Variant)
	if err != nil {
		return err
	}
	res, err := synth.Render(cfg)
	if err != nil {
		return fmt.Errorf("failed to render %q: %w", opts.Variant, err)
	}

	app := tui.NewApp(opts.Variant, cfg, res)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run inspector: %w", err)
	}
	return nil
}
