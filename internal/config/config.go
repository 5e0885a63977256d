// Package config holds the named sound variants chime can render.
package config

import (
	"fmt"
	"strings"

	"github.com/minicodemonkey/chime/internal/paths"
	"github.com/minicodemonkey/chime/internal/synth"
	"gopkg.in/yaml.v3"
)

// DefaultVariant is rendered when no variant is named.
const DefaultVariant = paths.DefaultVariant

// Variant is a named, compiled-in renderer configuration.
type Variant struct {
	Name        string
	Description string
	Config      func() synth.Config
}

var variants = []Variant{
	{
		Name:        DefaultVariant,
		Description: "tap, 32 ms gap, 900-1200 Hz glide and sustain (~305 ms)",
		Config:      synth.DefaultConfig,
	},
	{
		Name:        "compact",
		Description: "shorter tap and gap, sustain fills a fixed 280 ms",
		Config:      synth.CompactConfig,
	},
}

// Variants returns every known variant, default first.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Names returns the variant names, default first.
func Names() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return names
}

// Default returns the configuration of the default variant.
func Default() synth.Config {
	return synth.DefaultConfig()
}

// Lookup returns the configuration for the named variant. An empty name
// selects the default variant.
func Lookup(name string) (synth.Config, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultVariant
	}
	for _, v := range variants {
		if v.Name == name {
			return v.Config(), nil
		}
	}
	return synth.Config{}, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Marshal encodes cfg as YAML.
func Marshal(cfg synth.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
