package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
)

func testCourierSpec() CourierSpec {
	return CourierSpec{
		Code:               "acme",
		Name:               "Acme Express",
		Kind:               enums.CourierKindGeneric,
		Currency:           enums.CurrencyEUR,
		VolumetricDivisor:  5000,
		FuelPct:            10,
		VatPct:             20,
		TransitDaysDefault: 2,
		Zones: []Zone{
			{Code: "X", Type: enums.ZoneTypeCountry, Countries: []string{"IT"}},
		},
		Pricing: PricingStructure{Fixed: []FixedBracket{
			{MinWeightKg: 0, MaxWeightKg: 5, ZoneRates: map[string]float64{"X": 10}},
			{MinWeightKg: 5.5, MaxWeightKg: 20, ZoneRates: map[string]float64{"X": 25}},
		}},
	}
}

func testCart() Cart {
	return Cart{Items: []CartItem{{
		Name:        "olive oil 1L",
		Quantity:    1,
		WeightKg:    2,
		Dimensions:  Dimensions{VolumeM3: 0.01},
		Category:    enums.CategoryAmbient,
		Destination: Destination{CountryCode: "IT", City: "Milano"},
	}}}
}

func TestBracketCalculatorReferenceQuote(t *testing.T) {
	t.Parallel()

	calc, err := NewCalculator(testCourierSpec(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quotes, err := calc.Quotes(context.Background(), testCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected one synthesized standard quote, got %d", len(quotes))
	}

	q := quotes[0]
	// 2 kg actual vs 0.01 m³ volumetric (also 2 kg) lands in the first
	// bracket: 10 × 1.10 × 1.20 = 13.20.
	if q.TotalCents() != 1320 {
		t.Fatalf("expected 1320 cents, got %d", q.TotalCents())
	}
	if q.CourierCode != "acme" || q.ServiceCode != "ACME_STANDARD" {
		t.Fatalf("unexpected identity: %s/%s", q.CourierCode, q.ServiceCode)
	}
	if q.TransitDays != 2 {
		t.Fatalf("expected courier default transit, got %d", q.TransitDays)
	}
}

func TestBracketCalculatorVolumetricWeightWins(t *testing.T) {
	t.Parallel()

	cart := testCart()
	// 1 kg actual but 0.05 m³ is 10 kg volumetric, pushing into the second
	// bracket.
	cart.Items[0].WeightKg = 1
	cart.Items[0].Dimensions = Dimensions{VolumeM3: 0.05}

	calc, _ := NewCalculator(testCourierSpec(), nil)
	quotes, err := calc.Quotes(context.Background(), cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 25 × 1.10 × 1.20 = 33.00.
	if quotes[0].TotalCents() != 3300 {
		t.Fatalf("expected 3300 cents, got %d", quotes[0].TotalCents())
	}
}

func TestBracketCalculatorCountryGate(t *testing.T) {
	t.Parallel()

	spec := testCourierSpec()
	spec.SupportedCountries = []string{"IT", "SM"}

	cart := testCart()
	cart.Items[0].Destination = Destination{CountryCode: "FR", City: "Paris"}

	calc, _ := NewCalculator(spec, nil)
	_, err := calc.Quotes(context.Background(), cart)
	if !errors.Is(err, ErrNoZoneFound) {
		t.Fatalf("unsupported country must read as no zone, got %v", err)
	}
}

func TestBracketCalculatorServiceTiers(t *testing.T) {
	t.Parallel()

	spec := testCourierSpec()
	spec.Services = []ServiceTier{
		{Code: "ACME_EXPRESS", Name: "Express", AdditionalCost: 4.5, TransitDaysOverride: 1},
		{Code: "ACME_ECONOMY", Name: "Economy", AdditionalCost: -2},
	}

	calc, _ := NewCalculator(spec, nil)
	quotes, err := calc.Quotes(context.Background(), testCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected both tiers, got %d", len(quotes))
	}

	if quotes[0].TotalCents() != 1770 {
		t.Fatalf("express should be 13.20 + 4.50, got %d", quotes[0].TotalCents())
	}
	if quotes[0].TransitDays != 1 {
		t.Fatalf("express transit override lost, got %d", quotes[0].TransitDays)
	}
	if quotes[1].TotalCents() != 1120 {
		t.Fatalf("economy should be 13.20 - 2.00, got %d", quotes[1].TotalCents())
	}
}

func TestBracketCalculatorDiscountTierClampsAtZero(t *testing.T) {
	t.Parallel()

	spec := testCourierSpec()
	spec.Services = []ServiceTier{{Code: "ACME_FREE", Name: "Promo", AdditionalCost: -500}}

	calc, _ := NewCalculator(spec, nil)
	quotes, err := calc.Quotes(context.Background(), testCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotes[0].TotalCents() != 0 {
		t.Fatalf("discount past zero must clamp, got %d", quotes[0].TotalCents())
	}
}

func TestBracketCalculatorSkipsUnpriceableTier(t *testing.T) {
	t.Parallel()

	spec := testCourierSpec()
	heavyOnly := &PricingStructure{Fixed: []FixedBracket{
		{MinWeightKg: 100, MaxWeightKg: 200, ZoneRates: map[string]float64{"Y": 80}},
	}}
	spec.Services = []ServiceTier{
		{Code: "ACME_PALLET", Name: "Pallet", Pricing: heavyOnly},
		{Code: "ACME_STANDARD", Name: "Standard"},
	}

	calc, _ := NewCalculator(spec, nil)
	quotes, err := calc.Quotes(context.Background(), testCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 || quotes[0].ServiceCode != "ACME_STANDARD" {
		t.Fatalf("only the standard tier should survive, got %+v", quotes)
	}
}

func TestBracketCalculatorAllTiersMissIsNoRate(t *testing.T) {
	t.Parallel()

	spec := testCourierSpec()
	spec.Pricing = PricingStructure{Fixed: []FixedBracket{
		{MinWeightKg: 0, MaxWeightKg: 5, ZoneRates: map[string]float64{"OTHER": 10}},
	}}

	// The cart resolves zone X but the bracket only rates zone OTHER.
	calc, _ := NewCalculator(spec, nil)
	_, err := calc.Quotes(context.Background(), testCart())
	if !errors.Is(err, ErrNoRateFound) {
		t.Fatalf("expected ErrNoRateFound, got %v", err)
	}
}

func TestBracketCalculatorDryIceAndWine(t *testing.T) {
	t.Parallel()

	spec := testCourierSpec()
	spec.FuelPct = 0
	spec.VatPct = 0
	spec.DryIceCostPerKg = 2
	spec.FrozenIcePerDay = 1.5
	spec.WineSurcharge = 3

	cart := Cart{Items: []CartItem{
		{
			Name: "gelato", Quantity: 1, WeightKg: 2,
			Dimensions:  Dimensions{VolumeM3: 0.002},
			Category:    enums.CategoryFrozen,
			Destination: Destination{CountryCode: "IT"},
		},
		{
			Name: "barolo", Quantity: 2, WeightKg: 1.3,
			Dimensions:  Dimensions{VolumeM3: 0.0015},
			Category:    enums.CategoryWine,
			Destination: Destination{CountryCode: "IT"},
		},
	}}

	calc, _ := NewCalculator(spec, nil)
	quotes, err := calc.Quotes(context.Background(), cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// base 10 + dry ice (2 kg × 1.5 × 2 days × €2 = 12) + wine (2 × 3 = 6).
	if quotes[0].TotalCents() != 2800 {
		t.Fatalf("expected 2800 cents, got %d", quotes[0].TotalCents())
	}
}

func TestContainerCalculatorPricesPackaging(t *testing.T) {
	t.Parallel()

	spec := CourierSpec{
		Code:               "fedex",
		Name:               "FedEx",
		Kind:               enums.CourierKindFedex,
		Currency:           enums.CurrencyEUR,
		VatPct:             0,
		TransitDaysDefault: 1,
		Containers: []Container{
			{Name: "small", VolumeM3: 0.01, WeightKg: 0.3, CostInclVat: 4},
			{Name: "large", VolumeM3: 0.05, WeightKg: 1, CostInclVat: 9},
		},
	}

	cart := testCart() // 0.01 m³ fits exactly one small box
	calc, err := NewCalculator(spec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	quotes, err := calc.Quotes(context.Background(), cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected one quote, got %d", len(quotes))
	}
	if quotes[0].TotalCents() != 400 {
		t.Fatalf("expected the small box cost, got %d", quotes[0].TotalCents())
	}
}

func TestContainerCalculatorBracketBaseIncludesTareWeight(t *testing.T) {
	t.Parallel()

	spec := CourierSpec{
		Code:     "fedex",
		Kind:     enums.CourierKindFedex,
		Currency: enums.CurrencyEUR,
		Containers: []Container{
			{Name: "crate", VolumeM3: 0.05, WeightKg: 4, CostInclVat: 6},
		},
		Pricing: PricingStructure{Fixed: []FixedBracket{
			{MinWeightKg: 0, MaxWeightKg: 5, Price: 10},
			{MinWeightKg: 5.5, MaxWeightKg: 20, Price: 22},
		}},
	}

	// 2 kg of goods plus a 4 kg crate bills in the second bracket.
	calc, _ := NewCalculator(spec, nil)
	quotes, err := calc.Quotes(context.Background(), testCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotes[0].TotalCents() != 2800 {
		t.Fatalf("expected 22 + 6 = 28.00, got %d", quotes[0].TotalCents())
	}
}

func TestContainerCalculatorHonorsTierPricing(t *testing.T) {
	t.Parallel()

	palletPricing := &PricingStructure{Fixed: []FixedBracket{
		{MinWeightKg: 0, MaxWeightKg: 5, Price: 10},
	}}
	spec := CourierSpec{
		Code:     "fedex",
		Kind:     enums.CourierKindFedex,
		Currency: enums.CurrencyEUR,
		Containers: []Container{
			{Name: "small", VolumeM3: 0.01, WeightKg: 0.3, CostInclVat: 4},
		},
		Services: []ServiceTier{
			{Code: "FEDEX_STANDARD", Name: "Standard"},
			{Code: "FEDEX_PALLET", Name: "Pallet", Pricing: palletPricing},
		},
	}

	calc, _ := NewCalculator(spec, nil)
	quotes, err := calc.Quotes(context.Background(), testCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected both tiers, got %d", len(quotes))
	}
	if quotes[0].TotalCents() != 400 {
		t.Fatalf("standard should bill packaging only, got %d", quotes[0].TotalCents())
	}
	// 2 kg of goods plus the 0.3 kg box hits the pallet bracket: 10 + 4 boxes.
	if quotes[1].TotalCents() != 1400 {
		t.Fatalf("pallet tier must use its own brackets, got %d", quotes[1].TotalCents())
	}
}

func TestContainerCalculatorSkipsUnpriceableTier(t *testing.T) {
	t.Parallel()

	zoneOnly := &PricingStructure{Fixed: []FixedBracket{
		{MinWeightKg: 0, MaxWeightKg: 5, ZoneRates: map[string]float64{"Y": 80}},
	}}
	spec := CourierSpec{
		Code:     "fedex",
		Kind:     enums.CourierKindFedex,
		Currency: enums.CurrencyEUR,
		Containers: []Container{
			{Name: "small", VolumeM3: 0.01, WeightKg: 0.3, CostInclVat: 4},
		},
		Services: []ServiceTier{
			{Code: "FEDEX_ZONED", Name: "Zoned", Pricing: zoneOnly},
			{Code: "FEDEX_STANDARD", Name: "Standard"},
		},
	}

	calc, _ := NewCalculator(spec, nil)
	quotes, err := calc.Quotes(context.Background(), testCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 || quotes[0].ServiceCode != "FEDEX_STANDARD" {
		t.Fatalf("only the standard tier should survive, got %+v", quotes)
	}
}

func TestNewCalculatorRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := NewCalculator(CourierSpec{Code: "ups", Kind: enums.CourierKind("teleport")}, nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.CourierCode != "ups" {
		t.Fatalf("expected courier code on error, got %q", cfgErr.CourierCode)
	}
}

func TestCalculatorEmptyCart(t *testing.T) {
	t.Parallel()

	calc, _ := NewCalculator(testCourierSpec(), nil)
	quotes, err := calc.Quotes(context.Background(), Cart{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 0 {
		t.Fatalf("empty cart must yield no quotes, got %d", len(quotes))
	}
}
