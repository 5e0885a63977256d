package synth

import "math"

// DBToLinear converts a level in dBFS to a linear amplitude.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude to dBFS. Zero maps to -Inf.
func LinearToDB(v float64) float64 {
	return 20 * math.Log10(v)
}

// Peak returns the largest absolute sample value in x.
func Peak(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}
	return peak
}

// Normalize scales x in place so its peak sits at peakDB dBFS and returns the
// peak it had before scaling. A silent buffer is left untouched.
func Normalize(x []float64, peakDB float64) float64 {
	peak := Peak(x)
	if peak == 0 {
		return 0
	}
	gain := DBToLinear(peakDB) / peak
	for i := range x {
		x[i] *= gain
	}
	return peak
}

// Quantize converts x to signed 16-bit PCM: clip to [-1, 1], scale by 32767,
// clip to the int16 range and truncate toward zero.
func Quantize(x []float64) []int16 {
	out := make([]int16, len(x))
	for i, v := range x {
		v = min(max(v, -1), 1) * math.MaxInt16
		v = min(max(v, math.MinInt16), math.MaxInt16)
		out[i] = int16(v)
	}
	return out
}
