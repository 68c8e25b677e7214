package room

import (
	"math"
	"math/rand"
	"testing"
)

func BenchmarkGenerateRIR(b *testing.B) {
	s := NewSimulator(WithRand(rand.New(rand.NewSource(1))))

	b.ResetTimer()

	for b.Loop() {
		_ = s.GenerateRIR("living_room", 0.5, 16000)
	}
}

func BenchmarkApplyRIR(b *testing.B) {
	s := NewSimulator(WithRand(rand.New(rand.NewSource(1))))
	rir := s.GenerateRIR("living_room", 0.5, 16000)

	signal := make([]float64, 16000)
	for i := range signal {
		signal[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/16000)
	}

	b.ResetTimer()

	for b.Loop() {
		_ = s.ApplyRIR(signal, rir)
	}
}

func BenchmarkRIRMetrics(b *testing.B) {
	s := NewSimulator(WithRand(rand.New(rand.NewSource(1))))

	b.ResetTimer()

	for b.Loop() {
		_ = s.RIRMetrics("living_room")
	}
}
