// Package time provides time-domain signal statistics and framing
// primitives shared by the analysis packages.
//
// All functions treat the input slice as read-only and return newly
// allocated buffers, so one signal may be analyzed concurrently.
package time

import (
	"iter"
	"math"
	"sort"
)

// Stats holds the time-domain aggregates used by quality reporting.
type Stats struct {
	Length      int
	Mean        float64
	RMS         float64
	Peak        float64 // max absolute amplitude
	CrestFactor float64 // peak / RMS, 0 when RMS is 0
	Energy      float64 // sum of squares
	Power       float64 // energy / length
}

// Calculate computes all time-domain aggregates in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var sum, sumSq, peak float64
	for _, x := range signal {
		sum += x
		sumSq += x * x

		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)

	var crest float64
	if rms != 0 {
		crest = peak / rms
	}

	return Stats{
		Length:      n,
		Mean:        sum / nf,
		RMS:         rms,
		Peak:        peak,
		CrestFactor: crest,
		Energy:      sumSq,
		Power:       sumSq / nf,
	}
}

// Power returns the mean square amplitude of the signal, 0 for empty input.
func Power(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return sumSq / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	return math.Sqrt(Power(signal))
}

// Mean returns the arithmetic mean of the signal, 0 for empty input.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum float64
	for _, x := range signal {
		sum += x
	}

	return sum / float64(len(signal))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

// Normalize returns a copy of the signal scaled so its peak absolute
// amplitude is 1. A silent or empty signal is returned as a zero copy.
func Normalize(signal []float64) []float64 {
	out := make([]float64, len(signal))

	peak := Peak(signal)
	if peak == 0 {
		return out
	}

	inv := 1 / peak
	for i, x := range signal {
		out[i] = x * inv
	}

	return out
}

// Frames yields fixed-length, possibly overlapping views into the
// signal. The trailing partial frame is dropped. The sequence is lazy,
// finite, and restartable; yielded slices alias the input and must be
// treated as read-only.
func Frames(signal []float64, frameLen, hop int) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		if frameLen <= 0 || hop <= 0 {
			return
		}

		for start := 0; start+frameLen <= len(signal); start += hop {
			if !yield(signal[start : start+frameLen]) {
				return
			}
		}
	}
}

// FrameEnergies returns the mean square energy of each complete frame.
func FrameEnergies(signal []float64, frameLen, hop int) []float64 {
	var energies []float64
	for frame := range Frames(signal, frameLen, hop) {
		energies = append(energies, Power(frame))
	}

	return energies
}

// Percentile returns the p-th percentile (0..100) of values using
// linear interpolation between adjacent order statistics. Returns 0
// for empty input.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}

	if p >= 100 {
		return sorted[n-1]
	}

	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// PercentileEnergy frames the signal and returns the p-th percentile of
// per-frame mean energy, a cheap noise-floor proxy.
func PercentileEnergy(signal []float64, frameLen, hop int, p float64) float64 {
	return Percentile(FrameEnergies(signal, frameLen, hop), p)
}

// Autocorrelation returns the normalized autocorrelation of the signal
// at all non-negative lags. The lag-0 value is 1 after normalization;
// a signal with zero total energy yields an all-zero result.
func Autocorrelation(signal []float64) []float64 {
	if len(signal) == 0 {
		return nil
	}

	return AutocorrelationLags(signal, len(signal)-1)
}

// AutocorrelationLags returns the normalized autocorrelation at lags
// 0..maxLag. Lags beyond the signal length contribute zero.
func AutocorrelationLags(signal []float64, maxLag int) []float64 {
	n := len(signal)
	if n == 0 || maxLag < 0 {
		return nil
	}

	out := make([]float64, maxLag+1)

	var energy float64
	for _, x := range signal {
		energy += x * x
	}

	if energy == 0 {
		return out
	}

	for lag := 0; lag <= maxLag && lag < n; lag++ {
		var sum float64
		for i := 0; i+lag < n; i++ {
			sum += signal[i] * signal[i+lag]
		}

		out[lag] = sum / energy
	}

	return out
}
