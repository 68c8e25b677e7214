// Package testutil provides deterministic signal builders and
// tolerance helpers for package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// ExponentialDecay generates a synthetic impulse response decaying by
// 60 dB at rt60 seconds: h(t) = exp(-6.9078 * t / rt60).
func ExponentialDecay(sampleRate, rt60, durationSec float64) []float64 {
	n := int(sampleRate * durationSec)
	out := make([]float64, n)
	decayRate := 6.9078 / rt60

	for i := range out {
		t := float64(i) / sampleRate
		out[i] = math.Exp(-decayRate * t)
	}

	return out
}
