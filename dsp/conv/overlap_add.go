package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd implements FFT-based convolution using the overlap-add
// method. The input signal is split into blocks, each block is
// convolved with the kernel in the frequency domain, and the partial
// results are added back together.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	inputPadded  []complex128
	outputPadded []complex128
}

// NewOverlapAdd creates an overlap-add convolver for the given kernel.
// blockSize <= 0 selects an automatic size based on kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	kernelLen := len(kernel)

	if blockSize <= 0 {
		blockSize = nextPowerOf2(kernelLen)
		if blockSize < 256 {
			blockSize = 256
		}
	}

	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		blockSize:    blockSize,
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// Process convolves the input signal with the kernel and returns the
// full linear convolution result of length len(input) + kernelLen - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outputLen := len(input) + oa.kernelLen - 1
	output := make([]float64, outputLen)

	numBlocks := (len(input) + oa.blockSize - 1) / oa.blockSize

	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		start := blockIdx * oa.blockSize

		end := start + oa.blockSize
		if end > len(input) {
			end = len(input)
		}

		blockLen := end - start

		for i := range oa.inputPadded {
			oa.inputPadded[i] = 0
		}

		for i := 0; i < blockLen; i++ {
			oa.inputPadded[i] = complex(input[start+i], 0)
		}

		if err := oa.plan.Forward(oa.inputPadded, oa.inputPadded); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.outputPadded {
			oa.outputPadded[i] = oa.inputPadded[i] * oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.outputPadded, oa.outputPadded); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(oa.outputPadded[i])
		}
	}

	return output, nil
}
