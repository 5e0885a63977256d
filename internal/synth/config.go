// Package synth renders the two-part confirmation sound: a tactile tap, a short
// silence and a rising tone that settles into a sustain. Every stage works on
// in-memory float64 buffers and the whole pipeline is a single synchronous pass.
package synth

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned by Render when a Config cannot be rendered.
var ErrInvalidConfig = errors.New("invalid sound config")

// MaxDuration bounds every duration and the rendered length.
const MaxDuration = time.Minute

// Placement selects how segments are written into the master timeline.
type Placement string

const (
	// PlaceOverlay adds each segment onto the timeline at its offset.
	PlaceOverlay Placement = "overlay"
	// PlaceSequential copies each segment at its offset, truncated to the
	// timeline length.
	PlaceSequential Placement = "sequential"
)

// TapConfig describes the tactile tap transient.
type TapConfig struct {
	Duration  time.Duration `yaml:"duration"`
	Frequency float64       `yaml:"frequency"`
	Gain      float64       `yaml:"gain"`
	Decay     float64       `yaml:"decay"` // exponential decay rate, 1/s
}

// ToneConfig describes the confirmation tone (glide followed by sustain).
type ToneConfig struct {
	Glide          time.Duration `yaml:"glide"`
	Sustain        time.Duration `yaml:"sustain"`
	StartFrequency float64       `yaml:"startFrequency"`
	EndFrequency   float64       `yaml:"endFrequency"`
	Attack         time.Duration `yaml:"attack"`
	FadeOut        time.Duration `yaml:"fadeOut"`
}

// FilterConfig describes the high-pass cleanup filter.
type FilterConfig struct {
	Order  int     `yaml:"order"`
	Cutoff float64 `yaml:"cutoff"` // Hz
}

// Config holds every parameter of the renderer.
type Config struct {
	SampleRate int           `yaml:"sampleRate"`
	Tap        TapConfig     `yaml:"tap"`
	Pause      time.Duration `yaml:"pause"`
	Tone       ToneConfig    `yaml:"tone"`

	// Total fixes the timeline length. When zero the timeline is the sum of
	// the segments; when set, the sustain runs until Total is reached.
	Total time.Duration `yaml:"total,omitempty"`

	Placement Placement    `yaml:"placement"`
	HighPass  FilterConfig `yaml:"highPass"`
	PeakDB    float64      `yaml:"peakDB"`
}

// DefaultConfig returns the pause-separated confirmation sound (~305 ms).
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Tap: TapConfig{
			Duration:  3 * time.Millisecond,
			Frequency: 2200,
			Gain:      0.2,
			Decay:     200,
		},
		Pause: 32 * time.Millisecond,
		Tone: ToneConfig{
			Glide:          120 * time.Millisecond,
			Sustain:        150 * time.Millisecond,
			StartFrequency: 900,
			EndFrequency:   1200,
			Attack:         5 * time.Millisecond,
			FadeOut:        50 * time.Millisecond,
		},
		Placement: PlaceOverlay,
		HighPass:  FilterConfig{Order: 4, Cutoff: 400},
		PeakDB:    -1,
	}
}

// CompactConfig returns the compact variant: a shorter tap and gap, and a
// sustain that runs until the fixed 280 ms total is reached.
func CompactConfig() Config {
	cfg := DefaultConfig()
	cfg.Tap.Duration = 2 * time.Millisecond
	cfg.Tap.Frequency = 2000
	cfg.Tap.Gain = 0.15
	cfg.Pause = 28 * time.Millisecond
	cfg.Tone.Glide = 100 * time.Millisecond
	cfg.Tone.Sustain = 0
	cfg.Total = 280 * time.Millisecond
	cfg.Placement = PlaceSequential
	return cfg
}

// Duration returns the nominal length of the rendered sound.
func (c Config) Duration() time.Duration {
	if c.Total > 0 {
		return c.Total
	}
	return c.Tap.Duration + c.Pause + c.Tone.Glide + c.Tone.Sustain
}

// ToneDuration returns the nominal length of the glide plus sustain.
func (c Config) ToneDuration() time.Duration {
	if c.Total > 0 {
		return max(c.Total-c.Tap.Duration-c.Pause, 0)
	}
	return c.Tone.Glide + c.Tone.Sustain
}

// Validate reports the first problem that would prevent rendering.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"tap duration", c.Tap.Duration},
		{"pause", c.Pause},
		{"glide", c.Tone.Glide},
		{"sustain", c.Tone.Sustain},
		{"attack", c.Tone.Attack},
		{"fade-out", c.Tone.FadeOut},
		{"total", c.Total},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidConfig, d.name, d.d)
		}
		if d.d > MaxDuration {
			return fmt.Errorf("%w: %s %s exceeds %s", ErrInvalidConfig, d.name, d.d, MaxDuration)
		}
	}
	if d := c.Duration(); d > MaxDuration {
		return fmt.Errorf("%w: sound length %s exceeds %s", ErrInvalidConfig, d, MaxDuration)
	}

	values := []struct {
		name string
		v    float64
	}{
		{"tap frequency", c.Tap.Frequency},
		{"tap gain", c.Tap.Gain},
		{"tap decay", c.Tap.Decay},
		{"start frequency", c.Tone.StartFrequency},
		{"end frequency", c.Tone.EndFrequency},
		{"cutoff", c.HighPass.Cutoff},
		{"peak level", c.PeakDB},
	}
	for _, v := range values {
		if math.IsNaN(v.v) || math.IsInf(v.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, v.name, v.v)
		}
	}

	switch c.Placement {
	case PlaceOverlay, PlaceSequential:
	default:
		return fmt.Errorf("%w: unknown placement %q", ErrInvalidConfig, c.Placement)
	}

	if c.HighPass.Order < 1 {
		return fmt.Errorf("%w: filter order must be at least 1, got %d", ErrInvalidConfig, c.HighPass.Order)
	}
	nyquist := float64(c.SampleRate) / 2
	if c.HighPass.Cutoff <= 0 || c.HighPass.Cutoff >= nyquist {
		return fmt.Errorf("%w: cutoff %.1f Hz outside (0, %.1f)", ErrInvalidConfig, c.HighPass.Cutoff, nyquist)
	}
	return nil
}
