package synth

import (
	"math"
	"time"
)

// SegmentKind names a logical event on the timeline.
type SegmentKind string

const (
	SegmentTap     SegmentKind = "tap"
	SegmentPause   SegmentKind = "pause"
	SegmentGlide   SegmentKind = "glide"
	SegmentSustain SegmentKind = "sustain"
)

// Segment describes where a sound event sits on the master timeline.
type Segment struct {
	Kind           SegmentKind
	Offset         int // first sample
	Length         int // samples
	StartFrequency float64
	EndFrequency   float64
	Gain           float64
}

// End returns the sample index one past the segment.
func (s Segment) End() int {
	return s.Offset + s.Length
}

// Samples converts a duration to a sample count at rate, truncating toward zero.
func Samples(rate int, d time.Duration) int {
	if rate <= 0 || d <= 0 {
		return 0
	}
	// Whole seconds and the remainder separately so rate*d cannot overflow.
	sec, rem := int64(d/time.Second), int64(d%time.Second)
	return int(int64(rate)*sec + int64(rate)*rem/int64(time.Second))
}

// linspace returns n evenly spaced values from start to stop. With endpoint
// false, stop is excluded and the step is (stop-start)/n.
func linspace(start, stop float64, n int, endpoint bool) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	div := float64(n)
	if endpoint {
		div = float64(n - 1)
	}
	step := (stop - start) / div
	for i := range out {
		out[i] = start + float64(i)*step
	}
	if endpoint {
		out[n-1] = stop
	}
	return out
}

// Tap renders the tactile tap: a sine burst under an exponential decay,
// scaled by the tap gain.
func Tap(cfg TapConfig, rate int) []float64 {
	n := Samples(rate, cfg.Duration)
	t := linspace(0, cfg.Duration.Seconds(), n, false)
	out := make([]float64, n)
	for i, ti := range t {
		out[i] = math.Sin(2*math.Pi*cfg.Frequency*ti) * math.Exp(-cfg.Decay*ti) * cfg.Gain
	}
	return out
}

// Silence returns n zero samples.
func Silence(n int) []float64 {
	return make([]float64, max(n, 0))
}

// Glide renders n samples whose instantaneous frequency rises linearly from
// f0 to f1. The phase is the running sum of 2*pi*f/rate, so the waveform has
// no discontinuities. It returns the phase of the last sample.
func Glide(rate, n int, f0, f1 float64) ([]float64, float64) {
	phase := GlidePhase(rate, n, f0, f1)
	out := make([]float64, len(phase))
	for i, p := range phase {
		out[i] = math.Sin(p)
	}
	if len(phase) == 0 {
		return out, 0
	}
	return out, phase[len(phase)-1]
}

// GlidePhase returns the running phase of a linear sweep from f0 to f1 over
// n samples.
func GlidePhase(rate, n int, f0, f1 float64) []float64 {
	freq := linspace(f0, f1, n, true)
	phase := make([]float64, len(freq))
	var acc float64
	for i, f := range freq {
		acc += 2 * math.Pi * f / float64(rate)
		phase[i] = acc
	}
	return phase
}

// Sustain renders n samples of a sinusoid at f, continuing from phase0 so it
// joins the preceding glide without a jump.
func Sustain(rate, n int, f, phase0 float64) []float64 {
	out := make([]float64, max(n, 0))
	step := 2 * math.Pi * f / float64(rate)
	for i := range out {
		out[i] = math.Sin(phase0 + float64(i+1)*step)
	}
	return out
}

// ToneEnvelope returns n gains: a linear 0->1 rise over the first attack
// samples, 1 through the middle and a linear 1->0 fall over the final fade
// samples. Both counts are clamped to n.
func ToneEnvelope(n, attack, fade int) []float64 {
	if n <= 0 {
		return nil
	}
	env := make([]float64, n)
	for i := range env {
		env[i] = 1
	}

	attack = min(max(attack, 0), n)
	copy(env[:attack], linspace(0, 1, attack, true))

	fade = min(max(fade, 0), n)
	copy(env[n-fade:], linspace(1, 0, fade, true))
	return env
}

// Apply multiplies signal by env in place over their common length.
func Apply(signal, env []float64) {
	for i := range min(len(signal), len(env)) {
		signal[i] *= env[i]
	}
}
