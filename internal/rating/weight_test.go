package rating

import (
	"math"
	"testing"
)

func TestVolumetricWeight(t *testing.T) {
	t.Parallel()

	// 0.01 m³ at the standard 5000 cm³/kg divisor is 2 kg.
	if got := VolumetricWeight(0.01, 5000); math.Abs(got-2) > 1e-12 {
		t.Fatalf("expected 2 kg, got %v", got)
	}
	// Non-positive divisor falls back to the default.
	if got := VolumetricWeight(0.01, 0); math.Abs(got-2) > 1e-12 {
		t.Fatalf("expected default divisor, got %v", got)
	}
}

func TestShippingWeightTakesTheGreater(t *testing.T) {
	t.Parallel()

	if got := ShippingWeight(3, 2, 0); got != 3 {
		t.Fatalf("actual should win, got %v", got)
	}
	if got := ShippingWeight(2, 3, 0); got != 3 {
		t.Fatalf("volumetric should win, got %v", got)
	}
}

func TestShippingWeightMonotonicity(t *testing.T) {
	t.Parallel()

	weights := []float64{0.1, 0.5, 1, 2, 7.3, 31.4, 100}
	for _, actual := range weights {
		for _, volumetric := range weights {
			got := ShippingWeight(actual, volumetric, 0.5)
			if got < actual || got < volumetric {
				t.Fatalf("shipping weight %v below inputs (%v, %v)", got, actual, volumetric)
			}
		}
	}
}

func TestRoundUpToStep(t *testing.T) {
	t.Parallel()

	cases := []struct {
		weight, step, want float64
	}{
		{2.0, 0.5, 2.0},  // exact multiple stays
		{2.1, 0.5, 2.5},  // always up
		{2.49, 0.5, 2.5},
		{2.51, 0.5, 3.0},
		{0.2, 0.5, 0.5},
		{7.3, 0, 7.3},    // disabled
		{7.3, 1, 8.0},
	}
	for _, tc := range cases {
		if got := RoundUpToStep(tc.weight, tc.step); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("RoundUpToStep(%v, %v) = %v, want %v", tc.weight, tc.step, got, tc.want)
		}
	}
}

func TestRoundUpToStepIdempotent(t *testing.T) {
	t.Parallel()

	for _, weight := range []float64{0.1, 1.3, 2.0, 7.77, 123.45} {
		once := RoundUpToStep(weight, 0.5)
		twice := RoundUpToStep(once, 0.5)
		if math.Abs(once-twice) > 1e-9 {
			t.Fatalf("rounding not idempotent: %v -> %v -> %v", weight, once, twice)
		}
	}
}
