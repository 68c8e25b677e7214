package room

import (
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-acoustics/dsp/conv"
	stats "github.com/cwbudde/algo-acoustics/stats/time"
)

// RIR synthesis shape parameters.
const (
	// decayConstant makes the envelope reach -60 dB at t = RT60:
	// exp(-6.91) ~ 1e-3 in amplitude.
	decayConstant = 6.91

	// Early reflections arrive at 10 ms spacing with +-2 ms jitter and
	// are kept only within the first 80 ms.
	earlyReflections     = 5
	reflectionSpacingSec = 0.010
	reflectionJitterSec  = 0.002
	earlyWindowSec       = 0.080

	// Late tail noise level before envelope shaping.
	lateNoiseScale = 0.1
)

// GenerateRIR synthesizes a room impulse response for the preset:
// a unit direct-path impulse, jittered early reflections with halving
// amplitudes, and an exponentially shaped Gaussian late tail. The
// result has round(duration*sampleRate) samples and is peak-normalized
// to 1 (a placeholder preset with zero RT60 yields the bare direct
// impulse). sampleRate <= 0 selects the configured default.
//
// Reflection jitter and the late tail are stochastic: repeated calls
// differ unless a source was injected with WithRand.
func (s *Simulator) GenerateRIR(presetID string, duration float64, sampleRate int) []float64 {
	if sampleRate <= 0 {
		sampleRate = s.cfg.SampleRate
	}

	n := int(math.Round(duration * float64(sampleRate)))
	if n <= 0 {
		return nil
	}

	rir := make([]float64, n)
	rir[0] = 1 // direct path

	rt60 := s.Get(presetID).RT60
	if rt60 <= 0 {
		return rir
	}

	rng := s.cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	envelope := make([]float64, n)
	for i := range envelope {
		t := float64(i) / float64(sampleRate)
		envelope[i] = math.Exp(-decayConstant * t / rt60)
	}

	earlyLimit := int(earlyWindowSec * float64(sampleRate))

	for i := 0; i < earlyReflections; i++ {
		jitter := (rng.Float64()*2 - 1) * reflectionJitterSec
		delay := reflectionSpacingSec*float64(i+1) + jitter

		sample := int(math.Round(delay * float64(sampleRate)))
		if sample >= 0 && sample < earlyLimit && sample < n {
			rir[sample] += math.Pow(0.5, float64(i+1))
		}
	}

	for i := earlyLimit; i < n; i++ {
		if i < 0 {
			continue
		}

		rir[i] += rng.NormFloat64() * lateNoiseScale * envelope[i]
	}

	vecmath.MulBlockInPlace(rir, envelope)

	return stats.Normalize(rir)
}

// ApplyRIR convolves the signal with a room impulse response,
// truncates the result to the input length, and peak-normalizes it
// (a silent result is left as-is). The inputs are not modified; an
// empty impulse response leaves the signal unchanged.
func (s *Simulator) ApplyRIR(signal, rir []float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	if len(rir) == 0 {
		copy(out, signal)
		return out
	}

	full, err := conv.Convolve(signal, rir)
	if err != nil {
		copy(out, signal)
		return out
	}

	return stats.Normalize(full[:len(signal)])
}
