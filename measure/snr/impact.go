package snr

import "math"

// ImpactAnalysis correlates measured SNR against observed recognition
// accuracy across a batch of test runs.
type ImpactAnalysis struct {
	// Correlation is the Pearson coefficient between SNR and accuracy,
	// 0 when either series has zero variance.
	Correlation float64

	// Slope and Intercept describe the least-squares accuracy-vs-SNR
	// line.
	Slope     float64
	Intercept float64

	// QualityAccuracy holds the mean accuracy per quality tier.
	QualityAccuracy map[Quality]float64
}

// AnalyzeImpact relates SNR measurements to recognition accuracy.
// Unequal-length inputs are truncated to the shorter series. With
// fewer than two pairs the regression degenerates to slope 0 and
// intercept equal to the first accuracy value.
func (a *Analyzer) AnalyzeImpact(snrValues, accuracy []float64) ImpactAnalysis {
	n := len(snrValues)
	if len(accuracy) < n {
		n = len(accuracy)
	}

	out := ImpactAnalysis{QualityAccuracy: make(map[Quality]float64)}
	if n == 0 {
		return out
	}

	x := snrValues[:n]
	y := accuracy[:n]

	out.Correlation = pearson(x, y)
	out.Slope, out.Intercept = linearFit(x, y)

	sums := make(map[Quality]float64)
	counts := make(map[Quality]int)

	for i := 0; i < n; i++ {
		q := a.ClassifyQuality(x[i])
		sums[q] += y[i]
		counts[q]++
	}

	for q, sum := range sums {
		out.QualityAccuracy[q] = sum / float64(counts[q])
	}

	return out
}

// pearson returns the Pearson correlation coefficient, 0 when either
// series has zero variance.
func pearson(x, y []float64) float64 {
	n := float64(len(x))

	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}

	return cov / (math.Sqrt(varX) * math.Sqrt(varY))
}

// linearFit returns the least-squares slope and intercept of y over x.
func linearFit(x, y []float64) (slope, intercept float64) {
	n := len(x)
	if n < 2 {
		return 0, y[0]
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumXY += x[i] * y[i]
	}

	nf := float64(n)

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / nf
	}

	slope = (nf*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / nf

	return slope, intercept
}
