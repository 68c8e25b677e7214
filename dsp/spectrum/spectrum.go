// Package spectrum computes one-sided power and magnitude spectra of
// real-valued signals.
package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// PowerSpectrum returns the one-sided power spectrum |X[k]|^2 of the
// signal, bins 0 (DC) through Nyquist.
//
// The transform size is the smallest power of two covering the input,
// capped at maxSize (the input is truncated to maxSize samples first).
// maxSize <= 0 selects 2048. Returns nil for empty input.
func PowerSpectrum(signal []float64, maxSize int) ([]float64, error) {
	if maxSize <= 0 {
		maxSize = 2048
	}

	if len(signal) == 0 {
		return nil, nil
	}

	n := len(signal)
	if n > maxSize {
		n = maxSize
	}

	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	inData := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		inData[i] = complex(signal[i], 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1

	return Power(out[:binCount]), nil
}

// Power returns |X[k]|^2 for each complex spectrum bin using the SIMD
// vector kernels.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)

	return out
}

// Magnitude returns |X[k]| for each complex spectrum bin using the SIMD
// vector kernels.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)

	return out
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
