package room

import (
	"math"

	"github.com/cwbudde/algo-acoustics/dsp/core"
)

// sabineConstant is the 0.161 s/m factor of Sabine's reverberation
// formula for metric units.
const sabineConstant = 0.161

// SabineRT60 estimates reverberation time from room geometry via
// Sabine's formula: RT60 = 0.161 * V / (S * absorption). Returns 0
// when the surface-absorption product is 0, and clamps to [0, 5] s.
func SabineRT60(dims Dimensions, absorption float64) float64 {
	denom := dims.SurfaceArea() * absorption
	if denom == 0 {
		return 0
	}

	return core.Clamp(sabineConstant*dims.Volume()/denom, 0, 5)
}

// ASR impact levels and recommendations.
const (
	ImpactMinimal  = "minimal"
	ImpactLow      = "low"
	ImpactModerate = "moderate"
	ImpactSevere   = "severe"

	RecommendationAcceptable = "acceptable"
	RecommendationCaution    = "caution"
	RecommendationDereverb   = "dereverberation_recommended"
)

// ASRImpact estimates how a room's reverberation affects recognition.
type ASRImpact struct {
	Level string

	// WERIncrease is the expected word-error-rate increase in percent.
	WERIncrease float64

	Recommendation string
}

// EstimateASRImpact maps an RT60 to an expected recognition penalty,
// with tiers at 0.3, 0.6, and 1.0 seconds.
func EstimateASRImpact(rt60 float64) ASRImpact {
	var impact ASRImpact

	switch {
	case rt60 < 0.3:
		impact.Level = ImpactMinimal
		impact.WERIncrease = 0
	case rt60 < 0.6:
		impact.Level = ImpactLow
		impact.WERIncrease = 5
	case rt60 < 1.0:
		impact.Level = ImpactModerate
		impact.WERIncrease = 15
	default:
		impact.Level = ImpactSevere
		impact.WERIncrease = 30
	}

	switch {
	case impact.WERIncrease > 20:
		impact.Recommendation = RecommendationDereverb
	case impact.WERIncrease > 10:
		impact.Recommendation = RecommendationCaution
	default:
		impact.Recommendation = RecommendationAcceptable
	}

	return impact
}

// Acoustics describes the derived acoustic properties of a preset.
type Acoustics struct {
	PresetID string
	Name     string

	Volume      float64
	SurfaceArea float64

	// RT60 is the authored reverberation time; CalculatedRT60 is the
	// Sabine-formula cross-check from dimensions and absorption.
	RT60           float64
	CalculatedRT60 float64

	// Clarity is a qualitative speech-clarity bucket with its C50
	// index in dB.
	Clarity string
	C50     float64

	Impact ASRImpact
}

// AnalyzeAcoustics derives geometry, Sabine cross-check, clarity, and
// ASR impact for a preset. Missing IDs yield the placeholder's all-zero
// acoustics.
func (s *Simulator) AnalyzeAcoustics(presetID string) Acoustics {
	p := s.Get(presetID)

	a := Acoustics{
		PresetID:       p.ID,
		Name:           p.Name,
		Volume:         p.Dimensions.Volume(),
		SurfaceArea:    p.Dimensions.SurfaceArea(),
		RT60:           p.RT60,
		CalculatedRT60: SabineRT60(p.Dimensions, p.Absorption),
		Impact:         EstimateASRImpact(p.RT60),
	}

	switch {
	case p.RT60 < 0.3:
		a.Clarity = "excellent"
		a.C50 = 10
	case p.RT60 < 0.6:
		a.Clarity = "good"
		a.C50 = 5
	case p.RT60 < 1.0:
		a.Clarity = "fair"
		a.C50 = 0
	default:
		a.Clarity = "poor"
		a.C50 = -5
	}

	return a
}

// metricsRIRDuration is the probe RIR length used by RIRMetrics.
const metricsRIRDuration = 0.5

// RIRMetrics combines preset information, derived acoustics, and
// measurements of a freshly generated probe impulse response.
type RIRMetrics struct {
	Preset    Preset
	Acoustics Acoustics

	// RIRLength is the probe RIR length in samples.
	RIRLength int

	// DirectToReverberantDB compares the energy of the first 10
	// samples against the remainder, +Inf when the tail is silent.
	DirectToReverberantDB float64

	// RecommendedForASR reports whether the authored RT60 stays below
	// 0.6 s.
	RecommendedForASR bool
}

// RIRMetrics generates a 0.5 s probe RIR for the preset and summarizes
// its energy structure.
func (s *Simulator) RIRMetrics(presetID string) RIRMetrics {
	p := s.Get(presetID)
	rir := s.GenerateRIR(presetID, metricsRIRDuration, s.cfg.SampleRate)

	directEnd := 10
	if directEnd > len(rir) {
		directEnd = len(rir)
	}

	var direct, reverberant float64
	for i, v := range rir {
		if i < directEnd {
			direct += v * v
		} else {
			reverberant += v * v
		}
	}

	drr := math.Inf(1)
	if reverberant > 0 {
		drr = 10 * math.Log10(direct/reverberant)
	}

	return RIRMetrics{
		Preset:                p,
		Acoustics:             s.AnalyzeAcoustics(presetID),
		RIRLength:             len(rir),
		DirectToReverberantDB: drr,
		RecommendedForASR:     p.RT60 < 0.6,
	}
}
