package synth

import "fmt"

// Result is a rendered sound.
type Result struct {
	SampleRate int
	Samples    []float64 // normalized, before quantization
	PCM        []int16
	Segments   []Segment
	SourcePeak float64 // peak after filtering, before normalization
	Peak       float64 // peak after normalization
}

// Len returns the number of samples in the result.
func (r *Result) Len() int {
	return len(r.Samples)
}

// Seconds returns the rendered length in seconds.
func (r *Result) Seconds() float64 {
	if r.SampleRate == 0 {
		return 0
	}
	return float64(len(r.Samples)) / float64(r.SampleRate)
}

// Segment returns the first segment of the given kind.
func (r *Result) Segment(kind SegmentKind) (Segment, bool) {
	for _, s := range r.Segments {
		if s.Kind == kind {
			return s, true
		}
	}
	return Segment{}, false
}

// Render runs the full pipeline for cfg: segment synthesis, timeline
// assembly, zero-phase high-pass, peak normalization and 16-bit quantization.
// An empty timeline yields an empty Result.
func Render(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	samples, segments := Assemble(cfg)
	res := &Result{
		SampleRate: cfg.SampleRate,
		Segments:   segments,
	}
	if len(samples) == 0 {
		res.Samples = []float64{}
		res.PCM = []int16{}
		return res, nil
	}

	filtered, err := HighPass(cfg.HighPass, cfg.SampleRate, samples)
	if err != nil {
		return nil, fmt.Errorf("failed to filter: %w", err)
	}

	res.SourcePeak = Normalize(filtered, cfg.PeakDB)
	res.Samples = filtered
	res.Peak = Peak(filtered)
	res.PCM = Quantize(filtered)
	return res, nil
}
