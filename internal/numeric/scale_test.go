package numeric

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestPowIntMatchesMathPowForModerateExponents(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.SampledFrom([]float64{2, 10, 16}).Draw(t, "base")
		exp := rapid.IntRange(-20, 20).Draw(t, "exp")

		got := PowInt(base, exp)
		want := math.Pow(base, float64(exp))

		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Fatalf("PowInt(%v, %d) = %v, want ~%v", base, exp, got, want)
		}
	})
}

func TestPowIntZeroExponentIsOne(t *testing.T) {
	for _, base := range []float64{2, 10, 16, 0.5} {
		if got := PowInt(base, 0); got != 1 {
			t.Errorf("PowInt(%v, 0) = %v, want 1", base, got)
		}
	}
}

func TestScalingApply(t *testing.T) {
	tests := []struct {
		name               string
		x                  int64
		binaryScaleFactor  int
		decimalScaleFactor int
		referenceValue     float64
		want               float64
	}{
		{"identity", 10, 0, 0, 0, 10},
		{"reference offset", 7, 0, 0, 5, 12},
		{"binary and decimal scale", 10, 1, 1, 0, 2.0},
		{"negative binary scale", 8, -2, 0, 0, 2.0},
		{"negative decimal scale", 1, 0, -2, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScaling(tt.binaryScaleFactor, tt.decimalScaleFactor, tt.referenceValue)
			got := s.Apply(tt.x)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Apply(%d) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}
