package snr_test

import (
	"fmt"

	"github.com/cwbudde/algo-acoustics/measure/snr"
)

func ExampleAnalyzer_Measure() {
	// A toy signal: mostly full-scale activity with a quiet tail that
	// the amplitude-distribution estimator treats as the noise floor.
	signal := make([]float64, 20)
	for i := range signal {
		signal[i] = 1.0
	}
	signal[18] = 0.01
	signal[19] = -0.01

	a := snr.NewAnalyzer(snr.DefaultConfig())

	db := a.Measure(signal, 16000, snr.AlgorithmWADA)
	fmt.Printf("SNR = %.1f dB\n", db)
	fmt.Printf("quality = %s\n", a.ClassifyQuality(db))

	// Output:
	// SNR = 39.5 dB
	// quality = excellent
}

func ExampleAnalyzer_ClassifyQuality() {
	a := snr.NewAnalyzer(snr.DefaultConfig())

	for _, db := range []float64{35, 25, 15, 5} {
		fmt.Printf("%2.0f dB -> %s\n", db, a.ClassifyQuality(db))
	}

	// Output:
	// 35 dB -> excellent
	// 25 dB -> good
	// 15 dB -> fair
	//  5 dB -> poor
}
