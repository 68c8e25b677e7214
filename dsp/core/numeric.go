package core

import "math"

// Epsilon is the default guard term added to denominators and log
// arguments throughout the analysis packages.
const Epsilon = 1e-10

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = Epsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// PowerToDB converts linear power to decibels (10*log10 convention).
// Returns -Inf for power <= 0; callers must guard before doing further
// arithmetic on the result.
func PowerToDB(power float64) float64 {
	if power <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// DBToPower converts decibels to linear power (10*log10 convention).
func DBToPower(db float64) float64 {
	return math.Pow(10, db/10)
}
