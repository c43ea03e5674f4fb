package rating

import (
	"fmt"
	"strings"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// tiersFor returns the courier's named service tiers, synthesizing a single
// standard tier for couriers that configure none.
func tiersFor(spec CourierSpec) []ServiceTier {
	if len(spec.Services) > 0 {
		return spec.Services
	}
	return []ServiceTier{{
		Code: strings.ToUpper(spec.Code) + "_STANDARD",
		Name: spec.Name + " Standard",
	}}
}

// buildQuote turns one composed breakdown into a tier's quote. The tier delta
// lands after composition and the final total clamps at zero, a discount tier
// can never produce a negative price.
func buildQuote(spec CourierSpec, tier ServiceTier, breakdown Breakdown, transitDays int) Quote {
	total := breakdown.Total.Add(decimal.NewFromFloat(tier.AdditionalCost))
	if total.IsNegative() {
		total = decimal.Zero
	}

	if tier.TransitDaysOverride > 0 {
		transitDays = tier.TransitDaysOverride
	}

	description := breakdown.Description(currencySymbol(spec.Currency))
	if tier.Description != "" {
		description = tier.Description + " - " + description
	}
	description = fmt.Sprintf("%s - delivery in %d business days", description, transitDays)

	return Quote{
		CourierCode: spec.Code,
		ServiceCode: tier.Code,
		ServiceName: tier.Name,
		Total:       total,
		Currency:    spec.Currency,
		TransitDays: transitDays,
		Description: description,
	}
}

func currencySymbol(currency enums.Currency) string {
	switch currency {
	case enums.CurrencyEUR:
		return "€"
	case enums.CurrencyUSD:
		return "$"
	case enums.CurrencyGBP:
		return "£"
	default:
		return string(currency) + " "
	}
}
