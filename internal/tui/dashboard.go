package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minicodemonkey/chime/internal/synth"
)

const (
	// Layout constants
	minWidth             = 60
	narrowWidthThreshold = 90
	segmentsPanelPct     = 30 // Segments panel takes 30% of width
	headerHeight         = 2
	footerHeight         = 2
	minPlotHeight        = 4
)

// isNarrowMode reports whether panels should be stacked instead of side by side.
func (a *App) isNarrowMode() bool {
	return a.width < narrowWidthThreshold
}

// renderDashboard renders the full inspector view.
func (a *App) renderDashboard() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	if a.width < minWidth {
		return fmt.Sprintf("Terminal too narrow (%d columns, need %d)", a.width, minWidth)
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	// Calculate content area height
	contentHeight := a.height - headerHeight - footerHeight - 2 // -2 for panel borders

	var content string
	if a.isNarrowMode() {
		listHeight := len(a.stats) + 2
		plotHeight := max(contentHeight-listHeight-2, minPlotHeight)
		content = lipgloss.JoinVertical(lipgloss.Left,
			a.renderSegmentsPanel(a.width-2, listHeight),
			a.renderPlotPanel(a.width-2, plotHeight),
		)
	} else {
		segmentsWidth := (a.width * segmentsPanelPct / 100) - 2
		plotWidth := a.width - segmentsWidth - 4 // -4 for borders and gap
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			a.renderSegmentsPanel(segmentsWidth, contentHeight),
			a.renderPlotPanel(plotWidth, contentHeight),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// renderHeader renders the branding, variant and level summary.
func (a *App) renderHeader() string {
	brand := headerStyle.Render("chime")
	variant := labelStyle.Render(fmt.Sprintf("[%s]", a.variant))

	level := "silent"
	if a.result.Peak > 0 {
		level = fmt.Sprintf("%.2f dBFS", synth.LinearToDB(a.result.Peak))
	}
	info := mutedStyle.Render(fmt.Sprintf("%.1f ms  %d Hz  %s",
		a.result.Seconds()*1000, a.result.SampleRate, level))

	leftPart := lipgloss.JoinHorizontal(lipgloss.Center, brand, "  ", variant)
	spacing := strings.Repeat(" ", max(0, a.width-lipgloss.Width(leftPart)-lipgloss.Width(info)-2))
	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, leftPart, spacing, info)

	border := DividerStyle.Render(strings.Repeat("─", a.width))
	return lipgloss.JoinVertical(lipgloss.Left, headerLine, border)
}

// renderFooter renders the keyboard shortcuts and current view.
func (a *App) renderFooter() string {
	shortcuts := []string{
		"↑/k: up",
		"↓/j: down",
		"tab: view",
		"?: help",
		"q: quit",
	}
	shortcutsStr := footerStyle.Render(strings.Join(shortcuts, "  │  "))
	viewInfo := footerStyle.Render(fmt.Sprintf("View: %s", a.viewMode))

	spacing := strings.Repeat(" ", max(0, a.width-lipgloss.Width(shortcutsStr)-lipgloss.Width(viewInfo)-2))
	footerLine := lipgloss.JoinHorizontal(lipgloss.Center, shortcutsStr, spacing, viewInfo)

	border := DividerStyle.Render(strings.Repeat("─", a.width))
	return lipgloss.JoinVertical(lipgloss.Left, border, footerLine)
}

// renderSegmentsPanel renders the segment list.
func (a *App) renderSegmentsPanel(width, height int) string {
	var content strings.Builder

	content.WriteString(labelStyle.Render("Segments"))
	content.WriteString("\n")
	content.WriteString(DividerStyle.Render(strings.Repeat("─", max(width-2, 0))))
	content.WriteString("\n")

	for i, s := range a.stats {
		line := fmt.Sprintf("%s %-8s %6.1f ms", GetSegmentIcon(s.seg.Kind), s.seg.Kind,
			samplesToMS(s.seg.Length, a.result.SampleRate))
		if i == a.selectedIndex {
			line = selectedStyle.Width(max(width-2, 1)).Render(line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	return panelStyle.Width(width).Height(height).Render(content.String())
}

// renderPlotPanel renders the active plot above the selected segment's details.
func (a *App) renderPlotPanel(width, height int) string {
	innerWidth := max(width-4, 1)
	plotHeight := max(height/2, minPlotHeight)

	var content strings.Builder
	content.WriteString(labelStyle.Render(a.viewMode.String()))
	content.WriteString("\n")

	switch a.viewMode {
	case ViewPitch:
		fmin, fmax := a.pitchRange()
		if len(a.track) == 0 {
			content.WriteString(mutedStyle.Render("No tone to track"))
		} else {
			content.WriteString(renderPitch(a.track, innerWidth, plotHeight, fmin, fmax))
		}
	default:
		start, end := 0, 0
		if seg := a.GetSelectedSegment(); seg != nil {
			start, end = seg.Offset, seg.End()
		}
		content.WriteString(renderWaveform(a.result.Samples, innerWidth, plotHeight, start, end))
	}
	content.WriteString("\n")
	content.WriteString(DividerStyle.Render(strings.Repeat("─", innerWidth)))
	content.WriteString("\n")

	if a.selectedIndex < len(a.stats) {
		content.WriteString(renderGlamour(segmentMarkdown(a.stats[a.selectedIndex], a.result.SampleRate), innerWidth))
	}

	return panelStyle.Width(width).Height(height).Render(content.String())
}

// pitchRange returns the plotted frequency span, padded around the tone.
func (a *App) pitchRange() (float64, float64) {
	lo := min(a.cfg.Tone.StartFrequency, a.cfg.Tone.EndFrequency)
	hi := max(a.cfg.Tone.StartFrequency, a.cfg.Tone.EndFrequency)
	return lo * 0.9, hi * 1.1
}
