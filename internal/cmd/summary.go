package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minicodemonkey/chime/internal/analysis"
	"github.com/minicodemonkey/chime/internal/synth"
	"github.com/minicodemonkey/chime/internal/tui"
	"github.com/minicodemonkey/chime/internal/wavfile"
)

// Frame geometry for the measured-pitch line of the summary.
const (
	trackFrame = 1024
	trackHop   = 512
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(tui.SuccessColor)
	summaryLabelStyle = lipgloss.NewStyle().Foreground(tui.PrimaryColor)
	summaryMutedStyle = lipgloss.NewStyle().Foreground(tui.MutedColor)
)

type painter bool

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p {
		return s
	}
	return style.Render(s)
}

// Summary describes a rendered result written to path: duration, sample
// rate, channels, peak level, segment layout and the measured glide pitch.
func Summary(res *synth.Result, cfg synth.Config, path string, color bool) string {
	p := painter(color)
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(p.paint(summaryLabelStyle, fmt.Sprintf("%-13s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(p.paint(summaryTitleStyle, "Generated "+filepath.Base(path)))
	b.WriteString("\n")
	row("File:", path)
	row("Duration:", fmt.Sprintf("%.1f ms (%d samples)", res.Seconds()*1000, res.Len()))
	row("Sample rate:", fmt.Sprintf("%d Hz", res.SampleRate))
	row("Channels:", fmt.Sprintf("%d (%d-bit PCM)", wavfile.Channels, wavfile.BitDepth))
	if res.Peak > 0 {
		row("Peak:", fmt.Sprintf("%.2f dBFS (%.4f)", synth.LinearToDB(res.Peak), res.Peak))
	} else {
		row("Peak:", p.paint(summaryMutedStyle, "silent"))
	}
	row("Placement:", string(cfg.Placement))

	b.WriteString("  ")
	b.WriteString(p.paint(summaryLabelStyle, "Structure:"))
	b.WriteString("\n")
	for _, seg := range res.Segments {
		b.WriteString("    ")
		b.WriteString(segmentLine(seg, res.SampleRate))
		b.WriteString("\n")
	}

	if glide, ok := res.Segment(synth.SegmentGlide); ok {
		points := analysis.Track(res.Samples, res.SampleRate, glide.Offset, glide.Length, trackFrame, trackHop)
		if len(points) >= 2 {
			first, last := points[0], points[len(points)-1]
			row("Glide pitch:", fmt.Sprintf("%.0f → %.0f Hz measured", first.Frequency, last.Frequency))
		}
	}
	return b.String()
}

func segmentLine(seg synth.Segment, rate int) string {
	ms := func(n int) float64 {
		if rate == 0 {
			return 0
		}
		return float64(n) * 1000 / float64(rate)
	}
	line := fmt.Sprintf("%-8s %6.1f - %6.1f ms", seg.Kind, ms(seg.Offset), ms(seg.End()))
	switch {
	case seg.StartFrequency == 0:
	case seg.StartFrequency == seg.EndFrequency:
		line += fmt.Sprintf("  %.0f Hz", seg.StartFrequency)
	default:
		line += fmt.Sprintf("  %.0f → %.0f Hz", seg.StartFrequency, seg.EndFrequency)
	}
	return line
}
