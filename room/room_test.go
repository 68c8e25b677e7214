package room

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-acoustics/dsp/core"
	"github.com/cwbudde/algo-acoustics/internal/testutil"
	stats "github.com/cwbudde/algo-acoustics/stats/time"
)

func TestCatalog(t *testing.T) {
	s := NewSimulator()

	presets := s.Presets()
	if len(presets) != 9 {
		t.Fatalf("preset count = %d, want 9", len(presets))
	}

	seenSizes := map[Size]bool{}

	for _, p := range presets {
		seenSizes[p.Size] = true

		if p.RT60 < 0 || p.RT60 > 5 {
			t.Errorf("%s: RT60 %v outside [0,5]", p.ID, p.RT60)
		}

		if p.Absorption < 0 || p.Absorption > 1 {
			t.Errorf("%s: absorption %v outside [0,1]", p.ID, p.Absorption)
		}

		if p.Dimensions.Volume() <= 0 {
			t.Errorf("%s: non-positive volume", p.ID)
		}
	}

	for _, size := range []Size{SizeSmall, SizeMedium, SizeLarge} {
		if !seenSizes[size] {
			t.Errorf("no preset with size %v", size)
		}
	}
}

func TestPresetsBySize(t *testing.T) {
	s := NewSimulator()

	total := 0
	for _, size := range []Size{SizeSmall, SizeMedium, SizeLarge} {
		subset := s.PresetsBySize(size)
		total += len(subset)

		for _, p := range subset {
			if p.Size != size {
				t.Errorf("%s: size %v in %v listing", p.ID, p.Size, size)
			}
		}
	}

	if total != len(s.Presets()) {
		t.Errorf("size partitions cover %d presets, want %d", total, len(s.Presets()))
	}
}

func TestLookupAndGet(t *testing.T) {
	s := NewSimulator()

	if _, ok := s.Lookup("living_room"); !ok {
		t.Error("living_room not found")
	}

	if _, ok := s.Lookup("unknown_xyz"); ok {
		t.Error("unknown_xyz unexpectedly found")
	}

	p := s.Get("unknown_xyz")
	if p.RT60 != 0 {
		t.Errorf("placeholder RT60 = %v, want 0", p.RT60)
	}

	if p.Difficulty != "unknown" {
		t.Errorf("placeholder difficulty = %q, want \"unknown\"", p.Difficulty)
	}
}

func TestSabineRT60(t *testing.T) {
	dims := Dimensions{Length: 6, Width: 5, Height: 3}

	// 0.161 * 90 / (126 * 0.5) = 0.23 s
	got := SabineRT60(dims, 0.5)
	if math.Abs(got-0.23) > 0.0005 {
		t.Errorf("SabineRT60 = %v, want ~0.2300", got)
	}

	if got := SabineRT60(dims, 0); got != 0 {
		t.Errorf("zero absorption RT60 = %v, want 0", got)
	}

	if got := SabineRT60(Dimensions{}, 0.5); got != 0 {
		t.Errorf("zero surface RT60 = %v, want 0", got)
	}

	// Tiny absorption in a huge hall clamps at 5 s.
	if got := SabineRT60(Dimensions{Length: 100, Width: 50, Height: 30}, 0.001); got != 5 {
		t.Errorf("extreme RT60 = %v, want clamp at 5", got)
	}
}

func TestGenerateRIR(t *testing.T) {
	s := NewSimulator()

	for _, id := range []string{"car_cabin", "living_room", "hall"} {
		t.Run(id, func(t *testing.T) {
			rir := s.GenerateRIR(id, 0.5, 16000)

			if len(rir) != 8000 {
				t.Fatalf("length = %d, want 8000", len(rir))
			}

			if peak := stats.Peak(rir); !core.NearlyEqual(peak, 1, 1e-9) {
				t.Errorf("peak = %v, want 1", peak)
			}

			testutil.RequireFinite(t, rir)
		})
	}
}

func TestGenerateRIRLengthRounding(t *testing.T) {
	s := NewSimulator()

	if rir := s.GenerateRIR("living_room", 0.1, 44100); len(rir) != 4410 {
		t.Errorf("length = %d, want 4410", len(rir))
	}

	if rir := s.GenerateRIR("living_room", 0, 16000); rir != nil {
		t.Errorf("zero duration RIR = %v, want nil", rir)
	}
}

func TestGenerateRIRUnknownPreset(t *testing.T) {
	s := NewSimulator()

	rir := s.GenerateRIR("unknown_xyz", 0.25, 16000)
	if len(rir) != 4000 {
		t.Fatalf("length = %d, want 4000", len(rir))
	}

	// Zero RT60 means no acoustic effect: a bare direct impulse.
	if rir[0] != 1 {
		t.Errorf("direct path = %v, want 1", rir[0])
	}

	for i := 1; i < len(rir); i++ {
		if rir[i] != 0 {
			t.Fatalf("sample %d = %v, want 0", i, rir[i])
		}
	}
}

func TestGenerateRIRDeterministicWithInjectedRand(t *testing.T) {
	a := NewSimulator(WithRand(rand.New(rand.NewSource(42))))
	b := NewSimulator(WithRand(rand.New(rand.NewSource(42))))

	rirA := a.GenerateRIR("classroom", 0.5, 16000)
	rirB := b.GenerateRIR("classroom", 0.5, 16000)

	testutil.RequireSliceNearlyEqual(t, rirA, rirB, 0)
}

func TestGenerateRIREnvelopeDecays(t *testing.T) {
	s := NewSimulator(WithRand(rand.New(rand.NewSource(7))))

	// Energy in the first quarter must dominate the last quarter.
	rir := s.GenerateRIR("living_room", 0.5, 16000)

	quarter := len(rir) / 4
	head := stats.Power(rir[:quarter])
	tail := stats.Power(rir[3*quarter:])

	if head <= tail {
		t.Errorf("head power %v not above tail power %v", head, tail)
	}
}

func TestApplyRIR(t *testing.T) {
	s := NewSimulator(WithRand(rand.New(rand.NewSource(3))))

	signal := testutil.Sine(440, 16000, 0.5, 16000)
	rir := s.GenerateRIR("living_room", 0.5, 16000)

	wet := s.ApplyRIR(signal, rir)

	if len(wet) != len(signal) {
		t.Fatalf("output length = %d, want %d", len(wet), len(signal))
	}

	if peak := stats.Peak(wet); !core.NearlyEqual(peak, 1, 1e-9) {
		t.Errorf("peak = %v, want 1", peak)
	}

	// Input must not be mutated.
	want := 0.5 * math.Sin(2*math.Pi*440/16000*100)
	if !core.NearlyEqual(signal[100], want, 1e-12) {
		t.Error("input signal mutated")
	}
}

func TestApplyRIREdgeCases(t *testing.T) {
	s := NewSimulator()

	t.Run("empty signal", func(t *testing.T) {
		if out := s.ApplyRIR(nil, []float64{1, 0.5}); len(out) != 0 {
			t.Errorf("length = %d, want 0", len(out))
		}
	})

	t.Run("empty rir", func(t *testing.T) {
		signal := []float64{0.1, 0.2, 0.3}

		out := s.ApplyRIR(signal, nil)
		testutil.RequireSliceNearlyEqual(t, out, signal, 0)
	})

	t.Run("silent signal stays silent", func(t *testing.T) {
		out := s.ApplyRIR(make([]float64, 100), []float64{1, 0.5})
		for i, v := range out {
			if v != 0 {
				t.Fatalf("sample %d = %v, want 0", i, v)
			}
		}
	})

	t.Run("identity rir preserves shape", func(t *testing.T) {
		signal := testutil.Sine(200, 8000, 0.25, 800)

		out := s.ApplyRIR(signal, []float64{1})
		want := stats.Normalize(signal)
		testutil.RequireSliceNearlyEqual(t, out, want, 1e-12)
	})
}

func TestAnalyzeAcoustics(t *testing.T) {
	s := NewSimulator()

	for _, p := range s.Presets() {
		a := s.AnalyzeAcoustics(p.ID)

		if !core.NearlyEqual(a.Volume, p.Dimensions.Volume(), 1e-9) {
			t.Errorf("%s: volume %v, want %v", p.ID, a.Volume, p.Dimensions.Volume())
		}

		want := SabineRT60(p.Dimensions, p.Absorption)
		if !core.NearlyEqual(a.CalculatedRT60, want, 1e-9) {
			t.Errorf("%s: calculated RT60 %v, want %v", p.ID, a.CalculatedRT60, want)
		}
	}
}

func TestAnalyzeAcousticsClarity(t *testing.T) {
	s := NewSimulator()

	tests := []struct {
		id          string
		wantClarity string
		wantC50     float64
	}{
		{"car_cabin", "excellent", 10}, // 0.08 s
		{"living_room", "good", 5},     // 0.5 s
		{"bathroom", "fair", 0},        // 0.9 s
		{"hall", "poor", -5},           // 2.5 s
	}

	for _, tt := range tests {
		a := s.AnalyzeAcoustics(tt.id)
		if a.Clarity != tt.wantClarity || a.C50 != tt.wantC50 {
			t.Errorf("%s: clarity %q/%v, want %q/%v", tt.id, a.Clarity, a.C50, tt.wantClarity, tt.wantC50)
		}
	}
}

func TestEstimateASRImpact(t *testing.T) {
	tests := []struct {
		rt60  float64
		level string
		wer   float64
		rec   string
	}{
		{0.1, ImpactMinimal, 0, RecommendationAcceptable},
		{0.45, ImpactLow, 5, RecommendationAcceptable},
		{0.8, ImpactModerate, 15, RecommendationCaution},
		{1.6, ImpactSevere, 30, RecommendationDereverb},
		{0.3, ImpactLow, 5, RecommendationAcceptable},
		{0.6, ImpactModerate, 15, RecommendationCaution},
		{1.0, ImpactSevere, 30, RecommendationDereverb},
	}

	for _, tt := range tests {
		got := EstimateASRImpact(tt.rt60)
		if got.Level != tt.level || got.WERIncrease != tt.wer || got.Recommendation != tt.rec {
			t.Errorf("EstimateASRImpact(%v) = %+v, want %s/%v/%s",
				tt.rt60, got, tt.level, tt.wer, tt.rec)
		}
	}
}

func TestRIRMetrics(t *testing.T) {
	s := NewSimulator(WithRand(rand.New(rand.NewSource(5))))

	m := s.RIRMetrics("living_room")

	if m.RIRLength != 8000 {
		t.Errorf("RIRLength = %d, want 8000 (0.5 s at 16 kHz)", m.RIRLength)
	}

	if math.IsInf(m.DirectToReverberantDB, 0) || math.IsNaN(m.DirectToReverberantDB) {
		t.Errorf("DRR = %v, want finite for a reverberant room", m.DirectToReverberantDB)
	}

	if !m.RecommendedForASR {
		t.Error("living_room (0.5 s) should be recommended for ASR")
	}

	if bathroom := s.RIRMetrics("bathroom"); bathroom.RecommendedForASR {
		t.Error("bathroom (0.9 s) should not be recommended for ASR")
	}
}

func TestRIRMetricsUnknownPreset(t *testing.T) {
	s := NewSimulator()

	m := s.RIRMetrics("unknown_xyz")

	// Bare direct impulse: all energy in the head, silent tail.
	if !math.IsInf(m.DirectToReverberantDB, 1) {
		t.Errorf("DRR = %v, want +Inf", m.DirectToReverberantDB)
	}

	if m.Preset.Difficulty != "unknown" {
		t.Errorf("preset difficulty = %q, want \"unknown\"", m.Preset.Difficulty)
	}
}
