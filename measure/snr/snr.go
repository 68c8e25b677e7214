// Package snr estimates signal-to-noise ratio of finite sample buffers
// without a separate noise reference.
//
// Two estimators are provided: a WADA-style estimator that derives a
// noise-power proxy from the low tail of the amplitude distribution,
// and a NIST-style estimator that separates speech-active and
// noise-only frames by energy. Both degrade to 0 dB for empty input
// and never go negative.
package snr

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-acoustics/dsp/core"
	stats "github.com/cwbudde/algo-acoustics/stats/time"
)

// Algorithm selects the SNR estimator.
type Algorithm int

// Supported estimators.
const (
	AlgorithmWADA Algorithm = iota
	AlgorithmNIST
)

// Quality classifies an SNR value into ASR-relevant tiers.
type Quality int

// Quality tiers, ordered from worst to best.
const (
	QualityPoor Quality = iota
	QualityFair
	QualityGood
	QualityExcellent
)

// String returns the lowercase tier name.
func (q Quality) String() string {
	switch q {
	case QualityExcellent:
		return "excellent"
	case QualityGood:
		return "good"
	case QualityFair:
		return "fair"
	default:
		return "poor"
	}
}

// Config holds estimator parameters.
type Config struct {
	// NoiseTailFraction is the fraction of lowest-|amplitude| samples
	// treated as the WADA noise-power proxy.
	NoiseTailFraction float64

	// FrameDuration and HopDuration size the NIST analysis frames, in
	// seconds.
	FrameDuration float64
	HopDuration   float64

	// VADPercentile is the frame-energy percentile separating speech
	// frames (above) from noise frames (at or below).
	VADPercentile float64

	// Noise-floor framing is fixed-size in samples.
	NoiseFloorFrameLen   int
	NoiseFloorHopLen     int
	NoiseFloorPercentile float64
}

// DefaultConfig returns the documented estimator defaults.
func DefaultConfig() Config {
	return Config{
		NoiseTailFraction:    0.10,
		FrameDuration:        0.025,
		HopDuration:          0.010,
		VADPercentile:        20,
		NoiseFloorFrameLen:   256,
		NoiseFloorHopLen:     128,
		NoiseFloorPercentile: 10,
	}
}

// Analyzer estimates SNR and derived quality metrics.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with the given configuration.
// Zero-valued fields fall back to the defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	def := DefaultConfig()

	if cfg.NoiseTailFraction <= 0 || cfg.NoiseTailFraction > 1 {
		cfg.NoiseTailFraction = def.NoiseTailFraction
	}

	if cfg.FrameDuration <= 0 {
		cfg.FrameDuration = def.FrameDuration
	}

	if cfg.HopDuration <= 0 {
		cfg.HopDuration = def.HopDuration
	}

	if cfg.VADPercentile <= 0 || cfg.VADPercentile >= 100 {
		cfg.VADPercentile = def.VADPercentile
	}

	if cfg.NoiseFloorFrameLen <= 0 {
		cfg.NoiseFloorFrameLen = def.NoiseFloorFrameLen
	}

	if cfg.NoiseFloorHopLen <= 0 {
		cfg.NoiseFloorHopLen = def.NoiseFloorHopLen
	}

	if cfg.NoiseFloorPercentile <= 0 || cfg.NoiseFloorPercentile >= 100 {
		cfg.NoiseFloorPercentile = def.NoiseFloorPercentile
	}

	return &Analyzer{cfg: cfg}
}

// Measure estimates the SNR in dB with the selected algorithm.
// Returns 0 for empty input.
func (a *Analyzer) Measure(signal []float64, sampleRate int, algorithm Algorithm) float64 {
	if len(signal) == 0 {
		return 0
	}

	if algorithm == AlgorithmNIST {
		return a.NIST(signal, sampleRate)
	}

	return a.WADA(signal)
}

// WADA estimates SNR from the amplitude distribution: the mean square
// of the lowest NoiseTailFraction of samples by absolute amplitude
// stands in for the noise power.
func (a *Analyzer) WADA(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	signalPower := stats.Power(signal)

	abs := make([]float64, n)
	for i, x := range signal {
		abs[i] = math.Abs(x)
	}

	sort.Float64s(abs)

	tail := int(float64(n) * a.cfg.NoiseTailFraction)
	if tail < 1 {
		tail = 1
	}

	var noisePower float64
	for _, v := range abs[:tail] {
		noisePower += v * v
	}
	noisePower /= float64(tail)

	db := 10 * math.Log10(signalPower/(noisePower+core.Epsilon))
	if db < 0 {
		return 0
	}

	return db
}

// NIST estimates SNR by splitting frames into speech (energy above the
// VAD percentile) and noise (the rest). Falls back to WADA when either
// class is empty, and returns the 60 dB sentinel when the noise power
// is exactly zero.
func (a *Analyzer) NIST(signal []float64, sampleRate int) float64 {
	if len(signal) == 0 {
		return 0
	}

	frameLen := int(a.cfg.FrameDuration * float64(sampleRate))
	hop := int(a.cfg.HopDuration * float64(sampleRate))

	if frameLen < 1 || hop < 1 {
		return a.WADA(signal)
	}

	energies := stats.FrameEnergies(signal, frameLen, hop)
	if len(energies) == 0 {
		return a.WADA(signal)
	}

	threshold := stats.Percentile(energies, a.cfg.VADPercentile)

	var (
		speechSum, noiseSum float64
		speechN, noiseN     int
	)

	for _, e := range energies {
		if e > threshold {
			speechSum += e
			speechN++
		} else {
			noiseSum += e
			noiseN++
		}
	}

	if speechN == 0 || noiseN == 0 {
		return a.WADA(signal)
	}

	noisePower := noiseSum / float64(noiseN)
	if noisePower == 0 {
		return 60.0
	}

	db := 10 * math.Log10((speechSum/float64(speechN))/noisePower)
	if db < 0 {
		return 0
	}

	return db
}

// ClassifyQuality maps an SNR in dB to a quality tier with strict >
// boundaries at 30, 20, and 10 dB.
func (a *Analyzer) ClassifyQuality(snrDB float64) Quality {
	switch {
	case snrDB > 30:
		return QualityExcellent
	case snrDB > 20:
		return QualityGood
	case snrDB > 10:
		return QualityFair
	default:
		return QualityPoor
	}
}

// SignalPower returns the mean square amplitude of the signal.
func (a *Analyzer) SignalPower(signal []float64) float64 {
	return stats.Power(signal)
}

// NoiseFloor estimates the noise floor as a low percentile of framed
// signal energy. Signals shorter than one frame fall back to the
// whole-buffer power.
func (a *Analyzer) NoiseFloor(signal []float64) float64 {
	energies := stats.FrameEnergies(signal, a.cfg.NoiseFloorFrameLen, a.cfg.NoiseFloorHopLen)
	if len(energies) == 0 {
		return stats.Power(signal)
	}

	return stats.Percentile(energies, a.cfg.NoiseFloorPercentile)
}

// Metrics bundles the quality measurements for one buffer.
type Metrics struct {
	SNR     float64 // mean of the WADA and NIST estimates
	WADASNR float64
	NISTSNR float64

	SignalPower   float64
	SignalPowerDB float64
	NoiseFloor    float64
	NoiseFloorDB  float64

	Quality Quality

	Peak        float64
	RMS         float64
	CrestFactor float64
}

// Metrics computes the full per-buffer quality bundle.
func (a *Analyzer) Metrics(signal []float64, sampleRate int) Metrics {
	wada := a.Measure(signal, sampleRate, AlgorithmWADA)
	nist := a.Measure(signal, sampleRate, AlgorithmNIST)
	mean := (wada + nist) / 2

	power := stats.Power(signal)
	floor := a.NoiseFloor(signal)
	sig := stats.Calculate(signal)

	return Metrics{
		SNR:           mean,
		WADASNR:       wada,
		NISTSNR:       nist,
		SignalPower:   power,
		SignalPowerDB: core.PowerToDB(power),
		NoiseFloor:    floor,
		NoiseFloorDB:  core.PowerToDB(floor),
		Quality:       a.ClassifyQuality(mean),
		Peak:          sig.Peak,
		RMS:           sig.RMS,
		CrestFactor:   sig.CrestFactor,
	}
}
