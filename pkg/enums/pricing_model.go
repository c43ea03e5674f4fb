package enums

import "fmt"

// PricingModel names the rate structure a bracket table follows.
type PricingModel string

const (
	// PricingModelFixed maps an inclusive weight range to a flat zone rate.
	PricingModelFixed PricingModel = "fixed"
	// PricingModelProgressive bills a base rate plus per-unit increments
	// beyond a threshold weight.
	PricingModelProgressive PricingModel = "progressive"
	// PricingModelBulk bills weight times a per-kg zone rate.
	PricingModelBulk PricingModel = "bulk"
)

// PricingModelPriority is the order structures are tried when a service
// carries more than one.
var PricingModelPriority = []PricingModel{
	PricingModelFixed,
	PricingModelProgressive,
	PricingModelBulk,
}

// String implements fmt.Stringer.
func (p PricingModel) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PricingModel.
func (p PricingModel) IsValid() bool {
	for _, candidate := range PricingModelPriority {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePricingModel converts raw input into a PricingModel.
func ParsePricingModel(value string) (PricingModel, error) {
	for _, candidate := range PricingModelPriority {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pricing model %q", value)
}
