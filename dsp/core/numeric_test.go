package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"below", -1, 0, 5, 0},
		{"inside", 3, 0, 5, 3},
		{"above", 7, 0, 5, 5},
		{"swapped bounds", 3, 5, 0, 3},
		{"at lower", 0, 0, 5, 0},
		{"at upper", 5, 0, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestPowerToDB(t *testing.T) {
	if got := PowerToDB(1); got != 0 {
		t.Errorf("PowerToDB(1) = %v, want 0", got)
	}

	if got := PowerToDB(100); math.Abs(got-20) > 1e-12 {
		t.Errorf("PowerToDB(100) = %v, want 20", got)
	}

	if got := PowerToDB(0); !math.IsInf(got, -1) {
		t.Errorf("PowerToDB(0) = %v, want -Inf", got)
	}

	if got := PowerToDB(-1); !math.IsInf(got, -1) {
		t.Errorf("PowerToDB(-1) = %v, want -Inf", got)
	}
}

func TestDBToPowerRoundTrip(t *testing.T) {
	for _, power := range []float64{1e-6, 0.5, 1, 42, 1e6} {
		got := DBToPower(PowerToDB(power))
		if !NearlyEqual(got, power, 1e-9) {
			t.Errorf("round trip of %v = %v", power, got)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Error("values within eps reported unequal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Error("distant values reported equal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Error("zero comparison with default eps failed")
	}
}
