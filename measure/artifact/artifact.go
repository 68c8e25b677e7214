// Package artifact detects acoustic artifacts that degrade automatic
// speech recognition: clipping, echo, background-noise color, and
// reverberation.
//
// All detectors operate on finite, caller-owned sample buffers and
// degrade to "not detected" on null or empty input rather than
// failing.
package artifact

// Severity grades a detected artifact.
type Severity int

// Severity levels, ordered.
const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return "none"
	}
}

// Score maps the severity to its numeric weight (0..3).
func (s Severity) Score() int {
	return int(s)
}

// Impact grades the combined effect of all detected artifacts.
type Impact int

// Impact levels, ordered.
const (
	ImpactNone Impact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh
	ImpactSevere
)

// String returns the lowercase impact name.
func (im Impact) String() string {
	switch im {
	case ImpactSevere:
		return "severe"
	case ImpactHigh:
		return "high"
	case ImpactMedium:
		return "medium"
	case ImpactLow:
		return "low"
	default:
		return "none"
	}
}

// Config holds detection thresholds.
type Config struct {
	// ClippingThreshold is the normalized amplitude at or above which
	// a sample counts as clipped.
	ClippingThreshold float64

	// Clipping ratio tiers for LOW / MEDIUM / HIGH severity.
	ClippingLowRatio    float64
	ClippingMediumRatio float64
	ClippingHighRatio   float64

	// EchoThreshold is the autocorrelation peak at or above which an
	// echo counts as detected; EchoHighTier promotes it to HIGH.
	EchoThreshold float64
	EchoHighTier  float64

	// Echo search window, in seconds of lag.
	EchoMinLag float64
	EchoMaxLag float64

	// Reverb RT60 tiers in seconds for LOW / MEDIUM / HIGH severity.
	ReverbLowRT60    float64
	ReverbMediumRT60 float64
	ReverbHighRT60   float64
}

// DefaultConfig returns the documented detection thresholds.
func DefaultConfig() Config {
	return Config{
		ClippingThreshold:   0.99,
		ClippingLowRatio:    0.001,
		ClippingMediumRatio: 0.01,
		ClippingHighRatio:   0.05,
		EchoThreshold:       0.3,
		EchoHighTier:        0.5,
		EchoMinLag:          0.020,
		EchoMaxLag:          0.500,
		ReverbLowRT60:       0.3,
		ReverbMediumRT60:    0.6,
		ReverbHighRT60:      1.0,
	}
}

// Detector runs artifact detection with a fixed configuration. It is
// stateless after construction and safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector. Zero-valued config fields fall back
// to the defaults.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()

	if cfg.ClippingThreshold <= 0 || cfg.ClippingThreshold > 1 {
		cfg.ClippingThreshold = def.ClippingThreshold
	}

	if cfg.ClippingLowRatio <= 0 {
		cfg.ClippingLowRatio = def.ClippingLowRatio
	}

	if cfg.ClippingMediumRatio <= 0 {
		cfg.ClippingMediumRatio = def.ClippingMediumRatio
	}

	if cfg.ClippingHighRatio <= 0 {
		cfg.ClippingHighRatio = def.ClippingHighRatio
	}

	if cfg.EchoThreshold <= 0 {
		cfg.EchoThreshold = def.EchoThreshold
	}

	if cfg.EchoHighTier <= 0 {
		cfg.EchoHighTier = def.EchoHighTier
	}

	if cfg.EchoMinLag <= 0 {
		cfg.EchoMinLag = def.EchoMinLag
	}

	if cfg.EchoMaxLag <= 0 {
		cfg.EchoMaxLag = def.EchoMaxLag
	}

	if cfg.ReverbLowRT60 <= 0 {
		cfg.ReverbLowRT60 = def.ReverbLowRT60
	}

	if cfg.ReverbMediumRT60 <= 0 {
		cfg.ReverbMediumRT60 = def.ReverbMediumRT60
	}

	if cfg.ReverbHighRT60 <= 0 {
		cfg.ReverbHighRT60 = def.ReverbHighRT60
	}

	return &Detector{cfg: cfg}
}

// Metrics bundles the results of all detectors for one buffer.
type Metrics struct {
	Clipping ClippingResult
	Echo     EchoResult
	Noise    NoiseResult
	Reverb   ReverbResult

	// SeverityScore sums the clipping, echo, and reverb severity
	// weights for detected artifacts. Noise classification carries no
	// severity and is excluded.
	SeverityScore int

	OverallImpact Impact
}

// Metrics runs all four detectors and aggregates their severities.
func (d *Detector) Metrics(signal []float64, sampleRate int) Metrics {
	m := Metrics{
		Clipping: d.DetectClipping(signal),
		Echo:     d.DetectEcho(signal, sampleRate),
		Noise:    d.ClassifyNoise(signal, sampleRate),
		Reverb:   d.DetectReverb(signal, sampleRate),
	}

	if m.Clipping.Detected {
		m.SeverityScore += m.Clipping.Severity.Score()
	}

	if m.Echo.Detected {
		m.SeverityScore += m.Echo.Severity.Score()
	}

	if m.Reverb.Detected {
		m.SeverityScore += m.Reverb.Severity.Score()
	}

	switch {
	case m.SeverityScore >= 6:
		m.OverallImpact = ImpactSevere
	case m.SeverityScore >= 4:
		m.OverallImpact = ImpactHigh
	case m.SeverityScore >= 2:
		m.OverallImpact = ImpactMedium
	case m.SeverityScore >= 1:
		m.OverallImpact = ImpactLow
	default:
		m.OverallImpact = ImpactNone
	}

	return m
}
