// Package analysis measures rendered audio: windowed energy and short-time
// spectral peak tracking.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// zeroPad is the FFT oversampling factor applied to each analysis window.
const zeroPad = 4

// Point is one frame of a pitch track.
type Point struct {
	Time      float64 // seconds, frame centre
	Frequency float64 // Hz
	Energy    float64 // mean square
}

// clip bounds [start, start+n) to x.
func clip(x []float64, start, n int) []float64 {
	start = max(start, 0)
	end := min(start+max(n, 0), len(x))
	if start >= end {
		return nil
	}
	return x[start:end]
}

// Energy returns the mean square of x over [start, start+n). Windows outside
// x count as silent.
func Energy(x []float64, start, n int) float64 {
	w := clip(x, start, n)
	if len(w) == 0 {
		return 0
	}
	var sum float64
	for _, v := range w {
		sum += v * v
	}
	return sum / float64(len(w))
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PeakFrequency returns the dominant frequency of x over [start, start+n)
// in Hz. The window is Hann-weighted, zero-padded and the peak bin refined by
// parabolic interpolation. Silent or empty windows return 0.
func PeakFrequency(x []float64, rate, start, n int) float64 {
	w := clip(x, start, n)
	if len(w) < 4 || rate <= 0 {
		return 0
	}

	size := nextPow2(len(w) * zeroPad)
	buf := make([]float64, size)
	copy(buf, w)
	window.Hann(buf[:len(w)])

	fft := fourier.NewFFT(size)
	coeffs := fft.Coefficients(nil, buf)

	mag := make([]float64, len(coeffs))
	best := 0
	for k, c := range coeffs {
		mag[k] = math.Hypot(real(c), imag(c))
		if k > 0 && mag[k] > mag[best] {
			best = k
		}
	}
	if best == 0 || mag[best] == 0 {
		return 0
	}

	bin := float64(best)
	if best < len(mag)-1 {
		alpha := math.Log(mag[best-1] + 1e-300)
		beta := math.Log(mag[best])
		gamma := math.Log(mag[best+1] + 1e-300)
		if den := alpha - 2*beta + gamma; den != 0 {
			bin += 0.5 * (alpha - gamma) / den
		}
	}
	return bin * fft.Freq(1) * float64(rate)
}

// Track follows the spectral peak across [start, start+length) using frames
// of size samples spaced hop apart. Only whole frames are analysed.
func Track(x []float64, rate, start, length, size, hop int) []Point {
	if size <= 0 || hop <= 0 || rate <= 0 {
		return nil
	}
	region := clip(x, start, length)
	var points []Point
	for off := 0; off+size <= len(region); off += hop {
		frameStart := max(start, 0) + off
		points = append(points, Point{
			Time:      (float64(frameStart) + float64(size)/2) / float64(rate),
			Frequency: PeakFrequency(x, rate, frameStart, size),
			Energy:    Energy(x, frameStart, size),
		})
	}
	return points
}

// InstantFrequency returns the frequency in Hz implied by each step of an
// accumulated phase. The first value is phase[0] itself converted to Hz, as
// phase accumulation starts from zero.
func InstantFrequency(phase []float64, rate int) []float64 {
	if len(phase) == 0 || rate <= 0 {
		return nil
	}
	scale := float64(rate) / (2 * math.Pi)
	out := make([]float64, len(phase))
	out[0] = phase[0] * scale
	for i := 1; i < len(phase); i++ {
		out[i] = (phase[i] - phase[i-1]) * scale
	}
	return out
}

// Rising reports whether the track's frequency never drops by more than
// tolerance Hz from one frame to the next.
func Rising(points []Point, tolerance float64) bool {
	for i := 1; i < len(points); i++ {
		if points[i].Frequency < points[i-1].Frequency-tolerance {
			return false
		}
	}
	return true
}
