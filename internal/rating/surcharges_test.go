package rating

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComposeSurchargesReferenceScenario(t *testing.T) {
	t.Parallel()

	// Bracket rate €10, fuel 10%, VAT 20%:
	// subtotal = 10 × 1.10 = 11.00, total = 11.00 × 1.20 = 13.20.
	b := ComposeSurcharges(SurchargeInputs{
		BaseRate: decimal.NewFromInt(10),
		FuelPct:  10,
		VatPct:   20,
	})

	if got := b.Total.StringFixed(2); got != "13.20" {
		t.Fatalf("expected 13.20, got %s", got)
	}
	if got := b.Fuel.StringFixed(2); got != "1.00" {
		t.Fatalf("expected fuel 1.00, got %s", got)
	}
	if got := b.VAT.StringFixed(2); got != "2.20" {
		t.Fatalf("expected VAT 2.20, got %s", got)
	}
}

func TestComposeSurchargesOrderSensitivity(t *testing.T) {
	t.Parallel()

	// Fixed surcharges join the subtotal before fuel, and fuel before VAT.
	b := ComposeSurcharges(SurchargeInputs{
		BaseRate:      decimal.NewFromInt(10),
		WineUnits:     2,
		WineSurcharge: 5,
		FuelPct:       10,
		VatPct:        20,
	})

	// (10 + 10) × 1.10 × 1.20 = 26.40: wine joins the subtotal before fuel.
	if got := b.Total.StringFixed(2); got != "26.40" {
		t.Fatalf("expected 26.40, got %s", got)
	}
	if got := b.Fuel.StringFixed(2); got != "2.00" {
		t.Fatalf("fuel must apply after wine, got %s", got)
	}
}

func TestComposeSurchargesDryIce(t *testing.T) {
	t.Parallel()

	// (2 kg fresh × 1.2 + 1 kg frozen × 2.5) × 3 days × €1.5/kg = €22.05.
	b := ComposeSurcharges(SurchargeInputs{
		FreshWeightKg:   2,
		FrozenWeightKg:  1,
		TransitDays:     3,
		DryIceCostPerKg: 1.5,
		FreshIcePerDay:  1.2,
		FrozenIcePerDay: 2.5,
	})

	if got := b.DryIce.StringFixed(2); got != "22.05" {
		t.Fatalf("expected dry ice 22.05, got %s", got)
	}
	if !b.Total.Equal(b.DryIce) {
		t.Fatalf("with no other charges total equals dry ice, got %s", b.Total)
	}
}

func TestComposeSurchargesContainerCost(t *testing.T) {
	t.Parallel()

	b := ComposeSurcharges(SurchargeInputs{
		BaseRate:      decimal.NewFromInt(4),
		ContainerCost: decimal.NewFromInt(6),
		VatPct:        22,
	})
	if got := b.Total.StringFixed(2); got != "12.20" {
		t.Fatalf("expected (4+6) × 1.22 = 12.20, got %s", got)
	}
}

func TestBreakdownDescriptionSkipsZeroStages(t *testing.T) {
	t.Parallel()

	b := ComposeSurcharges(SurchargeInputs{
		BaseRate: decimal.NewFromInt(10),
		VatPct:   22,
	})
	description := b.Description("€")

	if !strings.Contains(description, "base €10.00") {
		t.Fatalf("expected base stage in %q", description)
	}
	if !strings.Contains(description, "VAT €2.20") {
		t.Fatalf("expected VAT stage in %q", description)
	}
	if strings.Contains(description, "wine") || strings.Contains(description, "fuel") {
		t.Fatalf("zero stages must be omitted: %q", description)
	}
}
