package rating

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SurchargeInputs carries everything the composer needs. Rates and weights
// come from the courier spec and the normalized cart; BaseRate comes from the
// bracket matcher and ContainerCost from the packer (zero when the courier
// does not price packaging).
type SurchargeInputs struct {
	BaseRate      decimal.Decimal
	ContainerCost decimal.Decimal

	FreshWeightKg  float64
	FrozenWeightKg float64
	WineUnits      int
	TransitDays    int

	DryIceCostPerKg float64
	FreshIcePerDay  float64
	FrozenIcePerDay float64
	WineSurcharge   float64
	FuelPct         float64
	VatPct          float64
}

// Breakdown retains each composition stage so the quote description can show
// the partial amounts. Nothing here is rounded; rounding to two decimals
// happens exactly once, at output.
type Breakdown struct {
	Base       decimal.Decimal
	Containers decimal.Decimal
	DryIce     decimal.Decimal
	Wine       decimal.Decimal
	Fuel       decimal.Decimal
	VAT        decimal.Decimal
	Total      decimal.Decimal
}

// ComposeSurcharges applies the surcharge stages in their binding order.
// Fuel and VAT are percentages of the running subtotal, so the sequence
// changes the final number: base and fixed surcharges first, then fuel, then
// VAT on top of everything.
func ComposeSurcharges(in SurchargeInputs) Breakdown {
	b := Breakdown{
		Base:       in.BaseRate,
		Containers: in.ContainerCost,
	}

	iceKgPerDay := decimal.NewFromFloat(in.FreshWeightKg).Mul(decimal.NewFromFloat(in.FreshIcePerDay)).
		Add(decimal.NewFromFloat(in.FrozenWeightKg).Mul(decimal.NewFromFloat(in.FrozenIcePerDay)))
	b.DryIce = iceKgPerDay.
		Mul(decimal.NewFromInt(int64(in.TransitDays))).
		Mul(decimal.NewFromFloat(in.DryIceCostPerKg))

	b.Wine = decimal.NewFromInt(int64(in.WineUnits)).Mul(decimal.NewFromFloat(in.WineSurcharge))

	subtotal := b.Base.Add(b.Containers).Add(b.DryIce).Add(b.Wine)

	b.Fuel = subtotal.Mul(decimal.NewFromFloat(in.FuelPct)).Div(decimal.NewFromInt(100))
	subtotal = subtotal.Add(b.Fuel)

	b.VAT = subtotal.Mul(decimal.NewFromFloat(in.VatPct)).Div(decimal.NewFromInt(100))
	b.Total = subtotal.Add(b.VAT)

	return b
}

// Description renders the non-zero stages for the quote's human-readable
// breakdown, e.g. "base €10.00, fuel €1.00, VAT €2.20".
func (b Breakdown) Description(currencySymbol string) string {
	parts := make([]string, 0, 6)
	appendPart := func(label string, amount decimal.Decimal) {
		if amount.IsZero() {
			return
		}
		parts = append(parts, fmt.Sprintf("%s %s%s", label, currencySymbol, amount.StringFixed(2)))
	}

	appendPart("base", b.Base)
	appendPart("containers", b.Containers)
	appendPart("dry ice", b.DryIce)
	appendPart("wine", b.Wine)
	appendPart("fuel", b.Fuel)
	appendPart("VAT", b.VAT)

	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, ", ")
}
