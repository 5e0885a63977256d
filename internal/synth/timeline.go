package synth

// layout holds the sample counts of every segment for a config.
type layout struct {
	tap, pause, glide, sustain int
	attack, fade               int
	total                      int
}

func newLayout(cfg Config) layout {
	rate := cfg.SampleRate
	l := layout{
		tap:    Samples(rate, cfg.Tap.Duration),
		pause:  Samples(rate, cfg.Pause),
		glide:  Samples(rate, cfg.Tone.Glide),
		attack: Samples(rate, cfg.Tone.Attack),
		fade:   Samples(rate, cfg.Tone.FadeOut),
	}
	if cfg.Total > 0 {
		l.total = Samples(rate, cfg.Total)
		l.sustain = max(l.total-l.tap-l.pause-l.glide, 0)
	} else {
		l.sustain = Samples(rate, cfg.Tone.Sustain)
		l.total = l.tap + l.pause + l.glide + l.sustain
	}
	return l
}

// place writes seg into master at offset according to p and returns how many
// samples landed inside master.
func place(master, seg []float64, offset int, p Placement) int {
	if offset >= len(master) {
		return 0
	}
	n := min(len(seg), len(master)-offset)
	if p == PlaceOverlay {
		for i := range n {
			master[offset+i] += seg[i]
		}
		return n
	}
	return copy(master[offset:offset+n], seg)
}

// Tone renders the glide followed by the sustain with the tone envelope
// applied across both.
func Tone(cfg ToneConfig, rate, glideSamples, sustainSamples, attack, fade int) []float64 {
	glide, phase := Glide(rate, glideSamples, cfg.StartFrequency, cfg.EndFrequency)
	tone := append(glide, Sustain(rate, sustainSamples, cfg.EndFrequency, phase)...)
	Apply(tone, ToneEnvelope(len(tone), attack, fade))
	return tone
}

// Assemble builds the master timeline for cfg. Segment offsets are the
// cumulative truncated sample counts; anything past the end of the timeline
// is dropped.
func Assemble(cfg Config) ([]float64, []Segment) {
	l := newLayout(cfg)
	master := make([]float64, l.total)

	tap := Tap(cfg.Tap, cfg.SampleRate)
	tapLen := place(master, tap, 0, cfg.Placement)

	toneStart := l.tap + l.pause
	tone := Tone(cfg.Tone, cfg.SampleRate, l.glide, l.sustain, l.attack, l.fade)
	toneLen := place(master, tone, toneStart, cfg.Placement)

	glideLen := min(l.glide, toneLen)
	segments := []Segment{
		{
			Kind:           SegmentTap,
			Offset:         0,
			Length:         tapLen,
			StartFrequency: cfg.Tap.Frequency,
			EndFrequency:   cfg.Tap.Frequency,
			Gain:           cfg.Tap.Gain,
		},
		{
			Kind:   SegmentPause,
			Offset: l.tap,
			Length: max(min(l.pause, l.total-l.tap), 0),
		},
		{
			Kind:           SegmentGlide,
			Offset:         toneStart,
			Length:         glideLen,
			StartFrequency: cfg.Tone.StartFrequency,
			EndFrequency:   cfg.Tone.EndFrequency,
			Gain:           1,
		},
		{
			Kind:           SegmentSustain,
			Offset:         toneStart + l.glide,
			Length:         toneLen - glideLen,
			StartFrequency: cfg.Tone.EndFrequency,
			EndFrequency:   cfg.Tone.EndFrequency,
			Gain:           1,
		},
	}
	return master, segments
}
