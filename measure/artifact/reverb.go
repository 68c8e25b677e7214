package artifact

import (
	"math"

	"github.com/cwbudde/algo-acoustics/dsp/core"
)

// ReverbResult reports reverberation detection for one buffer.
type ReverbResult struct {
	Detected bool

	// RT60 is the estimated reverberation time in seconds, in [0, 5].
	RT60 float64

	// DecayRate is the energy decay in dB/s (60/RT60), 0 when RT60 is 0.
	DecayRate float64

	Severity Severity
}

// Decay regression window: the classic T30 range of the Schroeder
// curve, and the floor returned when the window is unusable.
const (
	decayWindowHighDB = -5.0
	decayWindowLowDB  = -35.0
	rt60Floor         = 0.1
	rt60Max           = 5.0
)

// DetectReverb estimates RT60 and grades it against the configured
// LOW / MEDIUM / HIGH tiers.
func (d *Detector) DetectReverb(signal []float64, sampleRate int) ReverbResult {
	rt60 := d.EstimateRT60(signal, sampleRate)

	res := ReverbResult{RT60: rt60}
	if rt60 > 0 {
		res.DecayRate = 60 / rt60
	}

	switch {
	case rt60 >= d.cfg.ReverbHighRT60:
		res.Severity = SeverityHigh
	case rt60 >= d.cfg.ReverbMediumRT60:
		res.Severity = SeverityMedium
	case rt60 >= d.cfg.ReverbLowRT60:
		res.Severity = SeverityLow
	}

	res.Detected = rt60 >= d.cfg.ReverbLowRT60

	return res
}

// EstimateRT60 estimates reverberation time by Schroeder backward
// integration: the squared signal is reverse-cumulative-summed into an
// energy decay curve, converted to dB relative to the total energy,
// and linearly regressed over the [-35, -5] dB window. The -60 dB
// extrapolation of that slope is the RT60, clamped to [0, 5] s.
//
// Degenerate cases: an all-zero signal returns 0; a decay curve with
// fewer than two points inside the window, or a non-negative slope,
// returns the 0.1 s floor.
func (d *Detector) EstimateRT60(signal []float64, sampleRate int) float64 {
	n := len(signal)
	if n == 0 || sampleRate <= 0 {
		return 0
	}

	// Schroeder backward integration of the squared signal.
	edc := make([]float64, n)

	var cumSum float64
	for i := n - 1; i >= 0; i-- {
		cumSum += signal[i] * signal[i]
		edc[i] = cumSum
	}

	totalEnergy := edc[0]
	if totalEnergy == 0 {
		return 0
	}

	// Regress dB-vs-time over the T30 window.
	var (
		count                    int
		sumX, sumY, sumXX, sumXY float64
	)

	for i := 0; i < n; i++ {
		db := 10 * math.Log10(edc[i]/totalEnergy+core.Epsilon)
		if db > decayWindowHighDB || db < decayWindowLowDB {
			continue
		}

		t := float64(i) / float64(sampleRate)

		count++
		sumX += t
		sumY += db
		sumXX += t * t
		sumXY += t * db
	}

	if count < 2 {
		return rt60Floor
	}

	nf := float64(count)

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return rt60Floor
	}

	slope := (nf*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return rt60Floor
	}

	return core.Clamp(-60/slope, 0, rt60Max)
}
