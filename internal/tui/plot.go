package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minicodemonkey/chime/internal/analysis"
)

const (
	plotFill  = '█'
	plotZero  = '─'
	plotPoint = '•'

	// gutterWidth is the label column to the left of the pitch plot.
	gutterWidth = 9
)

// bucket returns the sample range drawn in column c of a plot width columns
// wide over n samples. Every column covers at least one sample while n > 0.
func bucket(n, width, c int) (start, end int) {
	start = c * n / width
	end = max((c+1)*n/width, start+1)
	return min(start, n), min(end, n)
}

// levelRow maps an amplitude in [-1, 1] to a row, 0 at the top.
func levelRow(v float64, height int) int {
	v = max(-1, min(1, v))
	row := int((1-v)/2*float64(height-1) + 0.5)
	return max(0, min(height-1, row))
}

// waveformGrid draws the min/max envelope of samples, one column per bucket.
func waveformGrid(samples []float64, width, height int) [][]rune {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]rune, height)
	zero := levelRow(0, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
			if r == zero {
				grid[r][c] = plotZero
			}
		}
	}
	if len(samples) == 0 {
		return grid
	}

	for c := 0; c < width; c++ {
		start, end := bucket(len(samples), width, c)
		if start >= end {
			continue
		}
		lo, hi := samples[start], samples[start]
		for _, v := range samples[start+1 : end] {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		for r := levelRow(hi, height); r <= levelRow(lo, height); r++ {
			grid[r][c] = plotFill
		}
	}
	return grid
}

// renderWaveform styles the waveform grid, highlighting columns that
// overlap samples [hiStart, hiEnd).
func renderWaveform(samples []float64, width, height, hiStart, hiEnd int) string {
	grid := waveformGrid(samples, width, height)
	active := make([]bool, width)
	for c := range active {
		start, end := bucket(len(samples), width, c)
		active[c] = start < hiEnd && end > hiStart
	}

	lines := make([]string, len(grid))
	for r, row := range grid {
		lines[r] = styleRuns(row, active)
	}
	return strings.Join(lines, "\n")
}

// styleRuns renders a row of cells, grouping neighbours with the same
// highlight state into a single styled run.
func styleRuns(row []rune, active []bool) string {
	var b strings.Builder
	for c := 0; c < len(row); {
		end := c + 1
		for end < len(row) && active[end] == active[c] {
			end++
		}
		style := waveIdleStyle
		if active[c] {
			style = waveActiveStyle
		}
		b.WriteString(style.Render(string(row[c:end])))
		c = end
	}
	return b.String()
}

// pitchGrid plots the frequency of each point against time. Points at 0 Hz
// (silent frames) are skipped.
func pitchGrid(points []analysis.Point, width, height int, fmin, fmax float64) [][]rune {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	if len(points) == 0 || fmax <= fmin {
		return grid
	}

	t0, t1 := points[0].Time, points[len(points)-1].Time
	for _, p := range points {
		if p.Frequency <= 0 {
			continue
		}
		c := 0
		if t1 > t0 {
			c = int((p.Time-t0)/(t1-t0)*float64(width-1) + 0.5)
		}
		r := int((fmax-p.Frequency)/(fmax-fmin)*float64(height-1) + 0.5)
		if r < 0 || r >= height || c < 0 || c >= width {
			continue
		}
		grid[r][c] = plotPoint
	}
	return grid
}

// renderPitch renders the pitch grid with a frequency gutter on the left.
func renderPitch(points []analysis.Point, width, height int, fmin, fmax float64) string {
	plotWidth := width - gutterWidth
	if plotWidth <= 0 || height <= 0 {
		return ""
	}
	grid := pitchGrid(points, plotWidth, height, fmin, fmax)

	lines := make([]string, len(grid))
	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = fmt.Sprintf("%.0f Hz", fmax)
		case height - 1:
			label = fmt.Sprintf("%.0f Hz", fmin)
		}
		gutter := axisStyle.Render(fmt.Sprintf("%*s │", gutterWidth-2, label))
		lines[r] = lipgloss.JoinHorizontal(lipgloss.Top, gutter, pitchStyle.Render(string(row)))
	}
	return strings.Join(lines, "\n")
}
