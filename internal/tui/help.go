package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShortcutCategory represents a category of keyboard shortcuts.
type ShortcutCategory struct {
	Name      string
	Shortcuts []Shortcut
}

// Shortcut represents a single keyboard shortcut.
type Shortcut struct {
	Key         string
	Description string
}

// HelpOverlay manages the help overlay state.
type HelpOverlay struct {
	width    int
	height   int
	viewMode ViewMode
}

// NewHelpOverlay creates a new help overlay.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetViewMode sets the current view mode for context-aware shortcuts.
func (h *HelpOverlay) SetViewMode(mode ViewMode) {
	h.viewMode = mode
}

// GetCategories returns the shortcut categories for the current view.
func (h *HelpOverlay) GetCategories() []ShortcutCategory {
	toggle := "Show pitch track"
	if h.viewMode == ViewPitch {
		toggle = "Show waveform"
	}

	navigation := ShortcutCategory{
		Name: "Navigation",
		Shortcuts: []Shortcut{
			{Key: "j / ↓", Description: "Next segment"},
			{Key: "k / ↑", Description: "Previous segment"},
		},
	}

	views := ShortcutCategory{
		Name: "Views",
		Shortcuts: []Shortcut{
			{Key: "Tab", Description: toggle},
			{Key: "?", Description: "Help overlay"},
		},
	}

	general := ShortcutCategory{
		Name: "General",
		Shortcuts: []Shortcut{
			{Key: "q", Description: "Quit"},
			{Key: "Ctrl+C", Description: "Quit"},
			{Key: "Esc", Description: "Close overlay"},
		},
	}

	return []ShortcutCategory{navigation, views, general}
}

// Render renders the help overlay centred on screen.
func (h *HelpOverlay) Render() string {
	modalWidth := max(min(56, h.width-10), 36)

	var content strings.Builder
	content.WriteString(labelStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")
	content.WriteString(DividerStyle.Render(strings.Repeat("─", modalWidth-6)))
	content.WriteString("\n\n")

	for _, cat := range h.GetCategories() {
		content.WriteString(renderCategory(cat))
		content.WriteString("\n")
	}

	content.WriteString(mutedStyle.Render("Press ? or Esc to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2).
		Width(modalWidth).
		Render(content.String())

	if h.width <= 0 || h.height <= 0 {
		return modal
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderCategory renders a category header and its aligned shortcuts.
func renderCategory(cat ShortcutCategory) string {
	keyStyle := lipgloss.NewStyle().Foreground(TextBrightColor).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(TextColor)

	var b strings.Builder
	b.WriteString(labelStyle.Render(cat.Name))
	b.WriteString("\n")
	for _, sc := range cat.Shortcuts {
		key := keyStyle.Render(sc.Key)
		padding := max(10-lipgloss.Width(key), 1)
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(strings.Repeat(" ", padding))
		b.WriteString(descStyle.Render(sc.Description))
		b.WriteString("\n")
	}
	return b.String()
}
