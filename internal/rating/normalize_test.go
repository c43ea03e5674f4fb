package rating

import (
	"context"
	"math"
	"testing"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
)

func TestNormalizeAccumulatesPerCategory(t *testing.T) {
	t.Parallel()

	cart := Cart{Items: []CartItem{
		{Name: "burrata", Quantity: 2, WeightKg: 0.5, Category: enums.CategoryFresh,
			Dimensions: Dimensions{LengthMm: 100, WidthMm: 100, HeightMm: 100}},
		{Name: "ragù", Quantity: 1, WeightKg: 0.4, Category: enums.CategoryAmbient,
			Dimensions: Dimensions{VolumeM3: 0.002}},
		{Name: "barolo", Quantity: 3, WeightKg: 1.3, Category: enums.CategoryWine},
	}}

	totals := Normalize(context.Background(), nil, cart)

	// 100mm cube = 0.001 m³ per unit, two units.
	if got := totals.VolumeByCategory[enums.CategoryFresh]; math.Abs(got-0.002) > 1e-12 {
		t.Fatalf("unexpected fresh volume %v", got)
	}
	if got := totals.VolumeByCategory[enums.CategoryAmbient]; math.Abs(got-0.002) > 1e-12 {
		t.Fatalf("unexpected ambient volume %v", got)
	}
	if got := totals.WeightOf(enums.CategoryFresh); math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("unexpected fresh weight %v", got)
	}
	if totals.WineUnits != 3 {
		t.Fatalf("expected 3 wine units, got %d", totals.WineUnits)
	}
}

func TestNormalizeMissingDimensionsDegradeToZeroVolume(t *testing.T) {
	t.Parallel()

	cart := Cart{Items: []CartItem{
		{Name: "mystery", Quantity: 5, WeightKg: 2, Category: enums.CategoryAmbient},
	}}

	totals := Normalize(context.Background(), nil, cart)

	if got := totals.TotalVolumeM3(); got != 0 {
		t.Fatalf("expected zero volume for dimensionless item, got %v", got)
	}
	if got := totals.TotalWeightKg(); math.Abs(got-10) > 1e-12 {
		t.Fatalf("weight must still accumulate, got %v", got)
	}
}

func TestCartDestinationComesFromFirstItem(t *testing.T) {
	t.Parallel()

	cart := Cart{Items: []CartItem{
		{Destination: Destination{CountryCode: "IT", City: "Torino"}},
		{Destination: Destination{CountryCode: "FR"}},
	}}
	if got := cart.Destination().City; got != "Torino" {
		t.Fatalf("expected first item's destination, got %q", got)
	}
	if !(Cart{}).Empty() {
		t.Fatal("zero cart should be empty")
	}
}
