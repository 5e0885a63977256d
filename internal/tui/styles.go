// Package tui provides the terminal inspector for rendered sounds.
// It includes the Bubble Tea application, waveform and pitch plots,
// the segment list, a help overlay, and consistent styling.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/minicodemonkey/chime/internal/synth"
)

// Color palette - consistent colors used throughout the TUI
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#00D7FF") // Cyan - primary brand, selected segment
	SuccessColor = lipgloss.Color("#5AF78E") // Green - written files, pitch track
	WarningColor = lipgloss.Color("#F3F99D") // Yellow - tap transient
	ErrorColor   = lipgloss.Color("#FF5C57") // Red - errors
	MutedColor   = lipgloss.Color("#6C7086") // Gray - unselected waveform, muted text
	BorderColor  = lipgloss.Color("#45475A") // Dark gray - borders, dividers

	// Text colors
	TextColor       = lipgloss.Color("#CDD6F4") // Light gray - primary text
	TextBrightColor = lipgloss.Color("#FFFFFF") // Bright white - emphasis

	// Background colors
	BgSelectedColor = lipgloss.Color("#313244") // Selected item background
)

// Header styles
var (
	// Main header style with branding
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)
)

// Footer styles
var (
	footerStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 1)
)

// Panel styles
var (
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)
)

// Selection styles
var (
	selectedStyle = lipgloss.NewStyle().
		Background(BgSelectedColor).
		Foreground(TextColor)
)

// Title and label styles
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Plot styles
var (
	waveActiveStyle = lipgloss.NewStyle().Foreground(PrimaryColor)
	waveIdleStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	pitchStyle      = lipgloss.NewStyle().Foreground(SuccessColor)
	axisStyle       = lipgloss.NewStyle().Foreground(BorderColor)
)

// DividerStyle is used for horizontal rules.
var DividerStyle = lipgloss.NewStyle().
	Foreground(BorderColor)

// Segment icons
const (
	IconTap     = "▍"
	IconPause   = "·"
	IconGlide   = "↗"
	IconSustain = "━"
)

// GetSegmentIcon returns the styled icon for a segment kind.
func GetSegmentIcon(kind synth.SegmentKind) string {
	switch kind {
	case synth.SegmentTap:
		return lipgloss.NewStyle().Foreground(WarningColor).Render(IconTap)
	case synth.SegmentGlide:
		return lipgloss.NewStyle().Foreground(PrimaryColor).Render(IconGlide)
	case synth.SegmentSustain:
		return lipgloss.NewStyle().Foreground(SuccessColor).Render(IconSustain)
	default:
		return mutedStyle.Render(IconPause)
	}
}
