package artifact_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-acoustics/measure/artifact"
)

func ExampleDetector_DetectClipping() {
	// A half-scale sine with every 10th sample slammed to full scale.
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = 0.5 * math.Sin(2*math.Pi*float64(i)/100)
		if i%10 == 0 {
			signal[i] = 1.0
		}
	}

	d := artifact.NewDetector(artifact.DefaultConfig())
	r := d.DetectClipping(signal)

	fmt.Printf("detected = %v\n", r.Detected)
	fmt.Printf("ratio = %.3f\n", r.Ratio)
	fmt.Printf("severity = %s\n", r.Severity)

	// Output:
	// detected = true
	// ratio = 0.100
	// severity = high
}

func ExampleDetector_EstimateRT60() {
	// Synthetic impulse response decaying by 60 dB in 0.8 s.
	sampleRate := 16000
	decayRate := 6.9078 / 0.8

	ir := make([]float64, sampleRate)
	for i := range ir {
		t := float64(i) / float64(sampleRate)
		ir[i] = math.Exp(-decayRate * t)
	}

	d := artifact.NewDetector(artifact.DefaultConfig())
	rt60 := d.EstimateRT60(ir, sampleRate)

	fmt.Printf("RT60 = %.2f s\n", rt60)

	// Output:
	// RT60 = 0.80 s
}
