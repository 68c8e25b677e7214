package artifact

import (
	"github.com/cwbudde/algo-acoustics/dsp/spectrum"
	"github.com/cwbudde/algo-acoustics/stats/frequency"
)

// NoiseType labels the spectral color of the background noise.
type NoiseType int

// Known noise classes.
const (
	NoiseUnknown NoiseType = iota
	NoiseWhite
	NoisePink
	NoiseTraffic
)

// String returns the lowercase class name.
func (n NoiseType) String() string {
	switch n {
	case NoiseWhite:
		return "white"
	case NoisePink:
		return "pink"
	case NoiseTraffic:
		return "traffic"
	default:
		return "unknown"
	}
}

// NoiseResult reports background-noise classification for one buffer.
type NoiseResult struct {
	Type NoiseType

	// Confidence is the classifier's confidence in [0, 1].
	Confidence float64

	// SpectralSlope is the log-log regression slope of the power
	// spectrum used for classification.
	SpectralSlope float64
}

// noiseSpectrumSize caps the classification transform at 2048 points.
const noiseSpectrumSize = 2048

// ClassifyNoise classifies background noise by the slope of its power
// spectrum on log-log axes: flat spectra are white, ~1/f spectra pink,
// and steeper roll-offs low-frequency-dominated traffic rumble.
func (d *Detector) ClassifyNoise(signal []float64, sampleRate int) NoiseResult {
	if len(signal) == 0 || sampleRate <= 0 {
		return NoiseResult{Type: NoiseUnknown}
	}

	power, err := spectrum.PowerSpectrum(signal, noiseSpectrumSize)
	if err != nil || len(power) == 0 {
		return NoiseResult{Type: NoiseUnknown}
	}

	freqs := frequency.BinFrequencies(len(power), float64(sampleRate))
	slope := frequency.LogLogSlope(freqs, power)

	res := NoiseResult{SpectralSlope: slope}

	switch {
	case slope >= -0.3 && slope <= 0.3:
		res.Type = NoiseWhite
		res.Confidence = 0.7
	case slope >= -1.3 && slope < -0.3:
		res.Type = NoisePink
		res.Confidence = 0.7
	case slope < -1.3:
		res.Type = NoiseTraffic
		res.Confidence = 0.5
	default:
		res.Type = NoiseUnknown
		res.Confidence = 0.3
	}

	return res
}
