package synth

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Butterworth designs a digital high-pass Butterworth filter of the given
// order with its -3 dB point at cutoff Hz. The analog prototype is moved to
// high-pass with pre-warping and mapped through the bilinear transform, so the
// coefficients match the standard butter(N, Wn, "high") design. Coefficients
// are returned as transfer-function numerator b and denominator a.
func Butterworth(order int, cutoff float64, rate int) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("%w: filter order must be at least 1, got %d", ErrInvalidConfig, order)
	}
	nyquist := float64(rate) / 2
	wn := cutoff / nyquist
	if wn <= 0 || wn >= 1 {
		return nil, nil, fmt.Errorf("%w: normalized cutoff %.4f outside (0, 1)", ErrInvalidConfig, wn)
	}

	// Analog low-pass prototype: poles evenly spaced on the left half of the
	// unit circle, no zeros, unity gain.
	proto := make([]complex128, order)
	for k := range proto {
		m := float64(-order + 1 + 2*k)
		proto[k] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}

	// Pre-warp for the bilinear transform with fs = 2.
	const fs = 2.0
	warped := 2 * fs * math.Tan(math.Pi*wn/fs)

	// Low-pass to high-pass: p -> wo/p, order zeros at the origin.
	poles := make([]complex128, order)
	zeros := make([]complex128, order)
	for i, p := range proto {
		poles[i] = complex(warped, 0) / p
	}
	gain := 1 / real(product(proto, -1, 0))

	// Bilinear transform.
	const fs2 = 2 * fs
	zpoles := make([]complex128, order)
	zzeros := make([]complex128, order)
	for i, p := range poles {
		zpoles[i] = (fs2 + p) / (fs2 - p)
	}
	for i, z := range zeros {
		zzeros[i] = (fs2 + z) / (fs2 - z)
	}
	gain *= real(product(zeros, -1, fs2) / product(poles, -1, fs2))

	bc := poly(zzeros)
	ac := poly(zpoles)
	b = make([]float64, len(bc))
	a = make([]float64, len(ac))
	for i := range bc {
		b[i] = gain * real(bc[i])
		a[i] = real(ac[i])
	}
	return b, a, nil
}

// product returns prod(offset + sign*r) over roots.
func product(roots []complex128, sign, offset float64) complex128 {
	out := complex(1, 0)
	for _, r := range roots {
		out *= complex(offset, 0) + complex(sign, 0)*r
	}
	return out
}

// poly expands prod(x - r) into polynomial coefficients, highest power first.
func poly(roots []complex128) []complex128 {
	c := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(c)+1)
		copy(next, c)
		for i := 1; i < len(next); i++ {
			next[i] -= r * c[i-1]
		}
		c = next
	}
	return c
}

// normalizeCoefficients pads b and a to the same length and divides both by a[0].
func normalizeCoefficients(b, a []float64) ([]float64, []float64) {
	n := max(len(a), len(b))
	nb := make([]float64, n)
	na := make([]float64, n)
	copy(nb, b)
	copy(na, a)
	a0 := na[0]
	for i := range nb {
		nb[i] /= a0
		na[i] /= a0
	}
	return nb, na
}

// LFilter runs x through the IIR filter (b, a) in direct form II transposed.
// zi is the initial delay-line state (len max(len(a), len(b))-1); nil means
// zero state.
func LFilter(b, a, x, zi []float64) []float64 {
	b, a = normalizeCoefficients(b, a)
	n := len(a)
	z := make([]float64, n-1)
	copy(z, zi)

	y := make([]float64, len(x))
	for i, xi := range x {
		if n == 1 {
			y[i] = b[0] * xi
			continue
		}
		yi := b[0]*xi + z[0]
		for j := 0; j < n-2; j++ {
			z[j] = b[j+1]*xi + z[j+1] - a[j+1]*yi
		}
		z[n-2] = b[n-1]*xi - a[n-1]*yi
		y[i] = yi
	}
	return y
}

// LFilterZI returns the delay-line state of (b, a) in steady state for a unit
// step input. Scaling it by the first input sample starts the filter as if
// that value had been present forever.
func LFilterZI(b, a []float64) ([]float64, error) {
	b, a = normalizeCoefficients(b, a)
	m := len(a) - 1
	if m == 0 {
		return nil, nil
	}

	// (I - companion(a)^T) zi = b[1:] - a[1:]*b[0]
	lhs := mat.NewDense(m, m, nil)
	for i := range m {
		lhs.Set(i, 0, a[i+1])
		lhs.Set(i, i, lhs.At(i, i)+1)
		if i > 0 {
			lhs.Set(i-1, i, -1)
		}
	}
	rhs := mat.NewVecDense(m, nil)
	for i := range m {
		rhs.SetVec(i, b[i+1]-a[i+1]*b[0])
	}

	var zi mat.VecDense
	if err := zi.SolveVec(lhs, rhs); err != nil {
		return nil, fmt.Errorf("failed to solve filter initial conditions: %w", err)
	}
	out := make([]float64, m)
	for i := range out {
		out[i] = zi.AtVec(i)
	}
	return out, nil
}

// oddExtend pads x on both sides with edge samples reflected through the end
// points.
func oddExtend(x []float64, edge int) []float64 {
	n := len(x)
	out := make([]float64, n+2*edge)
	first, last := x[0], x[n-1]
	for i := range edge {
		out[i] = 2*first - x[edge-i]
		out[edge+n+i] = 2*last - x[n-2-i]
	}
	copy(out[edge:], x)
	return out
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

func scaled(v []float64, k float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * k
	}
	return out
}

// FiltFilt applies (b, a) forward and then backward over x so the phase
// responses cancel and nothing is shifted in time. The signal is padded with
// an odd reflection of 3*max(len(a), len(b)) samples (fewer for very short
// inputs) and each pass starts from the steady-state filter state, which keeps
// the edges free of start-up transients. x is not modified.
func FiltFilt(b, a, x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, nil
	}
	edge := min(3*max(len(a), len(b)), len(x)-1)
	ext := oddExtend(x, edge)

	zi, err := LFilterZI(b, a)
	if err != nil {
		return nil, err
	}

	y := LFilter(b, a, ext, scaled(zi, ext[0]))
	reverse(y)
	y = LFilter(b, a, y, scaled(zi, y[0]))
	reverse(y)
	return y[edge : len(y)-edge], nil
}

// HighPass runs the configured Butterworth high-pass over x with zero phase.
func HighPass(cfg FilterConfig, rate int, x []float64) ([]float64, error) {
	b, a, err := Butterworth(cfg.Order, cfg.Cutoff, rate)
	if err != nil {
		return nil, err
	}
	return FiltFilt(b, a, x)
}
