// Package frequency provides frequency-domain statistics computed from
// one-sided spectra.
package frequency

import "math"

// BinFrequencies returns the center frequency in Hz of each bin of a
// one-sided spectrum with binCount bins (DC through Nyquist).
func BinFrequencies(binCount int, sampleRate float64) []float64 {
	if binCount <= 0 {
		return nil
	}

	freqs := make([]float64, binCount)
	if binCount == 1 {
		return freqs
	}

	step := sampleRate / float64(2*(binCount-1))
	for i := range freqs {
		freqs[i] = float64(i) * step
	}

	return freqs
}

// LogLogSlope returns the linear-regression slope of log10(spectrum)
// versus log10(freqs), restricted to bins where both the frequency and
// the magnitude are strictly positive. Returns 0 when fewer than two
// valid points exist.
//
// For a power spectrum this is the spectral exponent: ~0 for white
// noise, ~-1 for pink noise.
func LogLogSlope(freqs, spectrum []float64) float64 {
	n := len(freqs)
	if len(spectrum) < n {
		n = len(spectrum)
	}

	var (
		count                  int
		sumX, sumY, sumXX, sumXY float64
	)

	for i := 0; i < n; i++ {
		if freqs[i] <= 0 || spectrum[i] <= 0 {
			continue
		}

		x := math.Log10(freqs[i])
		y := math.Log10(spectrum[i])

		count++
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	if count < 2 {
		return 0
	}

	nf := float64(count)

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	return (nf*sumXY - sumX*sumY) / denom
}
