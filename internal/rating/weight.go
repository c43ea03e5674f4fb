package rating

import "math"

// DefaultVolumetricDivisor is the industry-standard 5000 cm³/kg.
const DefaultVolumetricDivisor = 5000

// roundEpsilon absorbs float noise so an exact multiple of the rounding step
// is not pushed up a whole extra step.
const roundEpsilon = 1e-9

// VolumetricWeight converts cart volume to its weight equivalent:
// cubic metres to cm³, divided by the courier's divisor.
func VolumetricWeight(totalVolumeM3, divisor float64) float64 {
	if divisor <= 0 {
		divisor = DefaultVolumetricDivisor
	}
	return totalVolumeM3 * 1e6 / divisor
}

// ShippingWeight reconciles actual and volumetric weight: couriers bill the
// greater of the two, rounded up to the configured step when one is set.
func ShippingWeight(actualKg, volumetricKg, roundingStepKg float64) float64 {
	return RoundUpToStep(math.Max(actualKg, volumetricKg), roundingStepKg)
}

// RoundUpToStep rounds weight up to the next multiple of step. Always up,
// never down or nearest: couriers price by worst-case billable weight.
// A non-positive step disables rounding. Idempotent.
func RoundUpToStep(weightKg, stepKg float64) float64 {
	if stepKg <= 0 || weightKg <= 0 {
		return weightKg
	}
	return math.Ceil(weightKg/stepKg-roundEpsilon) * stepKg
}
