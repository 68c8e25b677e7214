package artifact

import (
	"math"

	stats "github.com/cwbudde/algo-acoustics/stats/time"
)

// ClippingResult reports hard-clipping detection for one buffer.
type ClippingResult struct {
	Detected bool

	// Ratio is the fraction of samples at or above the clipping
	// threshold after peak normalization, in [0, 1].
	Ratio float64

	Severity Severity
}

// DetectClipping counts the fraction of samples at or above the
// clipping threshold relative to full scale. Buffers exceeding full
// scale are first normalized by their own peak, so the ratio stays in
// [0, 1] for any input range. Severity tiers sit at the configured
// LOW / MEDIUM / HIGH ratios; the artifact counts as detected once the
// LOW tier is reached.
func (d *Detector) DetectClipping(signal []float64) ClippingResult {
	if len(signal) == 0 {
		return ClippingResult{}
	}

	peak := stats.Peak(signal)
	if peak == 0 {
		return ClippingResult{}
	}

	// Reference amplitude: full scale, or the signal's own peak when it
	// exceeds full scale. Counting against threshold*reference avoids
	// allocating a normalized copy.
	reference := peak
	if reference < 1 {
		reference = 1
	}

	limit := d.cfg.ClippingThreshold * reference

	var clipped int
	for _, x := range signal {
		if math.Abs(x) >= limit {
			clipped++
		}
	}

	ratio := float64(clipped) / float64(len(signal))

	res := ClippingResult{Ratio: ratio}

	switch {
	case ratio >= d.cfg.ClippingHighRatio:
		res.Severity = SeverityHigh
	case ratio >= d.cfg.ClippingMediumRatio:
		res.Severity = SeverityMedium
	case ratio >= d.cfg.ClippingLowRatio:
		res.Severity = SeverityLow
	}

	res.Detected = ratio >= d.cfg.ClippingLowRatio

	return res
}
