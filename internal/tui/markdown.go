package tui

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// detailStyle is a customized dark style with no document margin,
// so rendered markdown fits flush within our panel padding.
var detailStyle ansi.StyleConfig

func init() {
	detailStyle = styles.DarkStyleConfig
	zero := uint(0)
	detailStyle.Document.Margin = &zero
	detailStyle.Document.StylePrimitive.BlockPrefix = ""
	detailStyle.Document.StylePrimitive.BlockSuffix = ""
}

// renderGlamour renders a markdown string as styled terminal output.
func renderGlamour(markdown string, width int) string {
	if width <= 0 || strings.TrimSpace(markdown) == "" {
		return ""
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(detailStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		return markdown
	}

	// Trim leading/trailing blank lines that glamour adds
	return strings.TrimSpace(rendered)
}

// segmentMarkdown describes one segment and its measurements.
func segmentMarkdown(s segmentStats, rate int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", s.seg.Kind)
	fmt.Fprintf(&b, "- **Span:** %.1f - %.1f ms (%d samples)\n",
		samplesToMS(s.seg.Offset, rate), samplesToMS(s.seg.End(), rate), s.seg.Length)

	switch {
	case s.seg.StartFrequency == 0:
	case s.seg.StartFrequency == s.seg.EndFrequency:
		fmt.Fprintf(&b, "- **Frequency:** %.0f Hz\n", s.seg.StartFrequency)
	default:
		fmt.Fprintf(&b, "- **Frequency:** %.0f → %.0f Hz\n", s.seg.StartFrequency, s.seg.EndFrequency)
	}
	if s.seg.Gain != 0 && s.seg.Gain != 1 {
		fmt.Fprintf(&b, "- **Gain:** %.2f\n", s.seg.Gain)
	}

	if s.energy > 0 {
		fmt.Fprintf(&b, "- **Level:** %.1f dBFS RMS\n", 10*math.Log10(s.energy))
	} else {
		b.WriteString("- **Level:** silent\n")
	}
	if s.peakFrequency > 0 {
		fmt.Fprintf(&b, "- **Measured peak:** `%.0f Hz`\n", s.peakFrequency)
	}
	return b.String()
}

func samplesToMS(n, rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(n) * 1000 / float64(rate)
}

// ansiStripRegex matches ANSI escape codes for stripping in tests.
var ansiStripRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI escape codes from a string.
func stripANSI(s string) string {
	return ansiStripRegex.ReplaceAllString(s, "")
}
