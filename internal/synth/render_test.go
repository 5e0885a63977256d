package synth

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/minicodemonkey/chime/internal/analysis"
)

func TestDefaultConfigIsValid(t *testing.T) {
	for name, cfg := range map[string]Config{"default": DefaultConfig(), "compact": CompactConfig()} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s config invalid: %v", name, err)
		}
	}
}

func TestConfigDuration(t *testing.T) {
	if d := DefaultConfig().Duration(); d != 305*time.Millisecond {
		t.Errorf("expected default duration 305ms, got %s", d)
	}
	if d := DefaultConfig().ToneDuration(); d != 270*time.Millisecond {
		t.Errorf("expected default tone duration 270ms, got %s", d)
	}
	if d := CompactConfig().Duration(); d != 280*time.Millisecond {
		t.Errorf("expected compact duration 280ms, got %s", d)
	}
	if d := CompactConfig().ToneDuration(); d != 250*time.Millisecond {
		t.Errorf("expected compact tone duration 250ms, got %s", d)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"negative pause", func(c *Config) { c.Pause = -time.Millisecond }},
		{"negative fade", func(c *Config) { c.Tone.FadeOut = -time.Millisecond }},
		{"unknown placement", func(c *Config) { c.Placement = "stacked" }},
		{"zero filter order", func(c *Config) { c.HighPass.Order = 0 }},
		{"cutoff above nyquist", func(c *Config) { c.HighPass.Cutoff = 30000 }},
		{"pause beyond the maximum", func(c *Config) { c.Pause = 2 * MaxDuration }},
		{"sound longer than the maximum", func(c *Config) {
			c.Tone.Glide = MaxDuration
			c.Tone.Sustain = MaxDuration
		}},
		{"very long total", func(c *Config) { c.Total = 100 * time.Hour }},
		{"NaN tap frequency", func(c *Config) { c.Tap.Frequency = math.NaN() }},
		{"infinite tap gain", func(c *Config) { c.Tap.Gain = math.Inf(1) }},
		{"infinite end frequency", func(c *Config) { c.Tone.EndFrequency = math.Inf(-1) }},
		{"NaN cutoff", func(c *Config) { c.HighPass.Cutoff = math.NaN() }},
		{"NaN peak level", func(c *Config) { c.PeakDB = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if _, err := Render(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRenderLength(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"default", DefaultConfig()},
		{"compact", CompactConfig()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Render(tt.cfg)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			want := math.Round(float64(tt.cfg.SampleRate) * tt.cfg.Duration().Seconds())
			if d := math.Abs(float64(res.Len()) - want); d > 1 {
				t.Errorf("expected %v samples (±1), got %d", want, res.Len())
			}
			if len(res.PCM) != res.Len() {
				t.Errorf("expected PCM length %d, got %d", res.Len(), len(res.PCM))
			}
		})
	}
}

func TestRenderDefaultSampleCount(t *testing.T) {
	res, err := Render(DefaultConfig())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.Len() != 13450 {
		t.Errorf("expected 13450 samples, got %d", res.Len())
	}
	if s := res.Seconds(); math.Abs(s-0.305) > 0.001 {
		t.Errorf("expected ~0.305s, got %f", s)
	}
}

func TestRenderNormalizesToTargetPeak(t *testing.T) {
	for _, db := range []float64{-1, -3, -6} {
		cfg := DefaultConfig()
		cfg.PeakDB = db
		res, err := Render(cfg)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		target := DBToLinear(db)
		if math.Abs(res.Peak-target) > 1e-3 {
			t.Errorf("peak at %.0f dB: expected %f, got %f", db, target, res.Peak)
		}
		if math.Abs(Peak(res.Samples)-target) > 1e-3 {
			t.Errorf("sample peak at %.0f dB: expected %f, got %f", db, target, Peak(res.Samples))
		}
		if res.SourcePeak <= 0 {
			t.Errorf("expected a positive source peak, got %f", res.SourcePeak)
		}
	}
}

func TestRenderPCMWithinRange(t *testing.T) {
	res, err := Render(DefaultConfig())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	limit := int16(DBToLinear(-1)*math.MaxInt16) + 1
	var peak int16
	for i, v := range res.PCM {
		if v > limit || v < -limit {
			t.Fatalf("PCM[%d] = %d exceeds the normalized level %d", i, v, limit)
		}
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	if peak < limit-2 {
		t.Errorf("expected PCM peak near %d, got %d", limit, peak)
	}
}

func TestRenderStructure(t *testing.T) {
	const rate = 44100
	res, err := Render(DefaultConfig())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	tapLen := Samples(rate, 3*time.Millisecond)
	pauseLen := Samples(rate, 32*time.Millisecond)
	glideLen := Samples(rate, 120*time.Millisecond)
	toneStart := tapLen + pauseLen

	tapEnergy := analysis.Energy(res.Samples, 0, tapLen)
	if tapEnergy < 1e-4 {
		t.Errorf("expected energy in the tap window, got %g", tapEnergy)
	}

	// Middle of the gap, away from filter ringing at either edge.
	guard := Samples(rate, 5*time.Millisecond)
	gapEnergy := analysis.Energy(res.Samples, tapLen+guard, pauseLen-2*guard)
	if gapEnergy > tapEnergy/100 {
		t.Errorf("expected near silence in the gap, got %g (tap %g)", gapEnergy, tapEnergy)
	}

	toneEnergy := analysis.Energy(res.Samples, toneStart, glideLen)
	if toneEnergy < 0.1 {
		t.Errorf("expected a loud tone, got energy %g", toneEnergy)
	}

	points := analysis.Track(res.Samples, rate, toneStart, glideLen, 1024, 512)
	if len(points) < 5 {
		t.Fatalf("expected several frames in the glide, got %d", len(points))
	}
	if !analysis.Rising(points, 10) {
		t.Errorf("expected the glide to rise, got %+v", points)
	}
	if f := points[0].Frequency; f < 880 || f > 1000 {
		t.Errorf("expected the glide to start near 900 Hz, got %.1f", f)
	}
	if f := points[len(points)-1].Frequency; f < 1100 || f > 1220 {
		t.Errorf("expected the glide to end near 1200 Hz, got %.1f", f)
	}

	sustain, ok := res.Segment(SegmentSustain)
	if !ok {
		t.Fatal("expected a sustain segment")
	}
	if f := analysis.PeakFrequency(res.Samples, rate, sustain.Offset, 2048); math.Abs(f-1200) > 10 {
		t.Errorf("expected the sustain at 1200 Hz, got %.1f", f)
	}
}

func TestRenderCompactPlacement(t *testing.T) {
	cfg := CompactConfig()
	res, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.Len() != Samples(cfg.SampleRate, 280*time.Millisecond) {
		t.Errorf("expected the timeline to be fixed at 280ms, got %d samples", res.Len())
	}
	last := res.Segments[len(res.Segments)-1]
	if last.End() != res.Len() {
		t.Errorf("expected the sustain to run to the end (%d), ends at %d", res.Len(), last.End())
	}
}

func TestRenderSilentTimeline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tap.Duration = 0
	cfg.Pause = 0
	cfg.Tone.Glide = 0
	cfg.Tone.Sustain = 0

	res, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render failed on an empty timeline: %v", err)
	}
	if res.Len() > 1 {
		t.Errorf("expected an empty result, got %d samples", res.Len())
	}
	if res.Peak != 0 || res.SourcePeak != 0 {
		t.Errorf("expected zero peaks, got %f/%f", res.Peak, res.SourcePeak)
	}
	if res.Seconds() != 0 {
		t.Errorf("expected zero length, got %f", res.Seconds())
	}
}

func TestRenderSilentSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tap.Gain = 0
	cfg.Tone.Glide = 0
	cfg.Tone.Sustain = 0

	res, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.Len() == 0 {
		t.Fatal("expected the tap and pause to occupy samples")
	}
	for i, v := range res.PCM {
		if v != 0 {
			t.Fatalf("expected silence, PCM[%d] = %d", i, v)
		}
	}
}

func TestAssembleOverlayVersusSequential(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pause = 0
	cfg.Tap.Duration = 20 * time.Millisecond
	cfg.Total = 0

	cfg.Placement = PlaceOverlay
	overlay, segs := Assemble(cfg)
	cfg.Placement = PlaceSequential
	sequential, _ := Assemble(cfg)

	if len(overlay) != len(sequential) {
		t.Fatalf("expected equal lengths, got %d and %d", len(overlay), len(sequential))
	}
	// With no gap the segments are disjoint, so both policies agree.
	for i := range overlay {
		if math.Abs(overlay[i]-sequential[i]) > 1e-12 {
			t.Fatalf("placements differ at sample %d", i)
		}
	}

	tap, glide := segs[0], segs[2]
	if tap.End() != glide.Offset {
		t.Errorf("expected the glide to start where the tap ends (%d), got %d", tap.End(), glide.Offset)
	}
}

func TestPlaceTruncatesAtTimelineEnd(t *testing.T) {
	master := make([]float64, 5)
	n := place(master, []float64{1, 1, 1, 1}, 3, PlaceSequential)
	if n != 2 {
		t.Errorf("expected 2 samples placed, got %d", n)
	}
	n = place(master, []float64{1, 1}, 3, PlaceOverlay)
	if n != 2 || master[3] != 2 || master[4] != 2 {
		t.Errorf("expected overlay to add, got %v", master)
	}
	if place(master, []float64{1}, 9, PlaceOverlay) != 0 {
		t.Error("expected nothing placed past the end")
	}
}

func TestQuantize(t *testing.T) {
	got := Quantize([]float64{0, 0.5, -0.5, 1, -1, 2, -2})
	want := []int16{0, 16383, -16383, 32767, -32767, 32767, -32767}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Quantize[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNormalizeSilentBuffer(t *testing.T) {
	x := []float64{0, 0, 0}
	if peak := Normalize(x, -1); peak != 0 {
		t.Errorf("expected zero peak, got %f", peak)
	}
	for i, v := range x {
		if v != 0 {
			t.Errorf("x[%d] = %f, want 0", i, v)
		}
	}
}

func TestLevelConversion(t *testing.T) {
	if v := DBToLinear(-1); math.Abs(v-0.891250938) > 1e-9 {
		t.Errorf("expected -1 dB = 0.89125, got %f", v)
	}
	if db := LinearToDB(0.5); math.Abs(db-(-6.0206)) > 1e-4 {
		t.Errorf("expected 0.5 = -6.02 dB, got %f", db)
	}
}
