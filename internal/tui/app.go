package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/minicodemonkey/chime/internal/analysis"
	"github.com/minicodemonkey/chime/internal/synth"
)

// Pitch-track frame geometry.
const (
	trackFrame = 1024
	trackHop   = 256

	// peakWindow caps the samples analysed per segment for the peak readout.
	peakWindow = 4096
	// minPeakWindow is the shortest segment given a peak readout.
	minPeakWindow = 64
)

// ViewMode is the plot shown in the main panel.
type ViewMode int

const (
	ViewWaveform ViewMode = iota
	ViewPitch
)

func (v ViewMode) String() string {
	switch v {
	case ViewWaveform:
		return "Waveform"
	case ViewPitch:
		return "Pitch"
	default:
		return "Unknown"
	}
}

// segmentStats holds per-segment measurements.
type segmentStats struct {
	seg           synth.Segment
	energy        float64
	peakFrequency float64
}

// App is the Bubble Tea model for the inspector. It is read-only: the
// rendered result never changes while the inspector is open.
type App struct {
	variant       string
	cfg           synth.Config
	result        *synth.Result
	stats         []segmentStats
	track         []analysis.Point
	selectedIndex int
	viewMode      ViewMode
	showHelp      bool
	helpOverlay   *HelpOverlay
	width         int
	height        int
}

// NewApp creates an inspector for a rendered variant.
func NewApp(variant string, cfg synth.Config, res *synth.Result) *App {
	return &App{
		variant:     variant,
		cfg:         cfg,
		result:      res,
		stats:       measureSegments(res),
		track:       toneTrack(res),
		helpOverlay: NewHelpOverlay(),
	}
}

func measureSegments(res *synth.Result) []segmentStats {
	stats := make([]segmentStats, len(res.Segments))
	for i, seg := range res.Segments {
		stats[i] = segmentStats{
			seg:    seg,
			energy: analysis.Energy(res.Samples, seg.Offset, seg.Length),
		}
		if seg.StartFrequency > 0 && seg.Length >= minPeakWindow && stats[i].energy > 0 {
			stats[i].peakFrequency = analysis.PeakFrequency(res.Samples, res.SampleRate, seg.Offset, min(seg.Length, peakWindow))
		}
	}
	return stats
}

// toneTrack follows the pitch from the start of the glide to the end.
func toneTrack(res *synth.Result) []analysis.Point {
	glide, ok := res.Segment(synth.SegmentGlide)
	if !ok {
		return nil
	}
	return analysis.Track(res.Samples, res.SampleRate, glide.Offset, res.Len()-glide.Offset, trackFrame, trackHop)
}

// Init initializes the App.
func (a App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.helpOverlay.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			switch msg.String() {
			case "?", "esc":
				a.showHelp = false
			case "q", "ctrl+c":
				return a, tea.Quit
			}
			return a, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit

		case "?":
			a.showHelp = true
			a.helpOverlay.SetViewMode(a.viewMode)

		case "tab":
			if a.viewMode == ViewWaveform {
				a.viewMode = ViewPitch
			} else {
				a.viewMode = ViewWaveform
			}

		// Navigation
		case "up", "k":
			if a.selectedIndex > 0 {
				a.selectedIndex--
			}
		case "down", "j":
			if a.selectedIndex < len(a.stats)-1 {
				a.selectedIndex++
			}
		}
	}

	return a, nil
}

// View renders the current view.
func (a App) View() string {
	if a.showHelp {
		return a.helpOverlay.Render()
	}
	return a.renderDashboard()
}

// GetSelectedSegment returns the currently selected segment, or nil.
func (a *App) GetSelectedSegment() *synth.Segment {
	if a.selectedIndex < 0 || a.selectedIndex >= len(a.stats) {
		return nil
	}
	return &a.stats[a.selectedIndex].seg
}
