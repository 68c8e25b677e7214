// Package conv provides linear convolution for applying impulse
// responses to finite sample buffers.
//
// Two strategies are offered: direct O(N*M) time-domain convolution
// for short kernels, and FFT-based overlap-add for long kernels such
// as synthetic room impulse responses. Convolve selects between them
// automatically.
package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}

	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			result[i+j] += a[i] * b[j]
		}
	}

	return result, nil
}

// Convolve performs full linear convolution with automatic algorithm
// selection: direct convolution for short kernels, FFT overlap-add
// otherwise.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}

	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Ensure a is the longer signal.
	if len(b) > len(a) {
		a, b = b, a
	}

	const directThreshold = 64
	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	oa, err := NewOverlapAdd(b, 0)
	if err != nil {
		return nil, err
	}

	return oa.Process(a)
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
