package artifact

import (
	stats "github.com/cwbudde/algo-acoustics/stats/time"
)

// EchoResult reports echo detection for one buffer.
type EchoResult struct {
	Detected bool

	// Strength is the normalized autocorrelation peak inside the lag
	// search window, in [0, 1].
	Strength float64

	// DelayMs is the lag of that peak in milliseconds.
	DelayMs float64

	Severity Severity
}

// DetectEcho de-means the signal and searches its normalized
// autocorrelation for a peak within the configured lag window (clamped
// to half the buffer length). The echo counts as detected at or above
// EchoThreshold; severity is LOW below the threshold, MEDIUM between
// threshold and the high tier, and HIGH beyond it.
func (d *Detector) DetectEcho(signal []float64, sampleRate int) EchoResult {
	if len(signal) == 0 || sampleRate <= 0 {
		return EchoResult{}
	}

	mean := stats.Mean(signal)

	centered := make([]float64, len(signal))
	for i, x := range signal {
		centered[i] = x - mean
	}

	minLag := int(d.cfg.EchoMinLag * float64(sampleRate))
	if minLag < 1 {
		minLag = 1
	}

	maxLag := int(d.cfg.EchoMaxLag * float64(sampleRate))
	if half := len(signal) / 2; maxLag > half {
		maxLag = half
	}

	if maxLag < minLag {
		return EchoResult{}
	}

	ac := stats.AutocorrelationLags(centered, maxLag)

	peakLag := minLag
	for lag := minLag; lag <= maxLag; lag++ {
		if ac[lag] > ac[peakLag] {
			peakLag = lag
		}
	}

	strength := ac[peakLag]
	if strength < 0 {
		strength = 0
	}

	res := EchoResult{
		Strength: strength,
		DelayMs:  float64(peakLag) / float64(sampleRate) * 1000,
	}

	switch {
	case strength >= d.cfg.EchoHighTier:
		res.Severity = SeverityHigh
	case strength >= d.cfg.EchoThreshold:
		res.Severity = SeverityMedium
	default:
		res.Severity = SeverityLow
	}

	res.Detected = strength >= d.cfg.EchoThreshold

	return res
}
