package rating

import (
	"context"
	"fmt"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
)

// Totals aggregates cart volume and weight per category.
type Totals struct {
	VolumeByCategory map[enums.Category]float64
	WeightByCategory map[enums.Category]float64
	WineUnits        int
}

// Normalize folds cart items into per-category volume and weight totals.
// Items with unknown dimensions contribute zero volume; that degrades
// volumetric-weight precision but never blocks quoting, so it is logged as a
// warning rather than returned as an error.
func Normalize(ctx context.Context, logg *logger.Logger, cart Cart) Totals {
	totals := Totals{
		VolumeByCategory: make(map[enums.Category]float64),
		WeightByCategory: make(map[enums.Category]float64),
	}

	for _, item := range cart.Items {
		qty := float64(item.Quantity)

		if !item.Dimensions.Known() && logg != nil {
			logg.Warn(
				logg.WithField(ctx, "item", item.Name),
				fmt.Sprintf("item %q has no dimensions, assuming zero volume", item.Name),
			)
		}

		totals.VolumeByCategory[item.Category] += item.Dimensions.UnitVolumeM3() * qty
		totals.WeightByCategory[item.Category] += item.WeightKg * qty

		if item.Category == enums.CategoryWine {
			totals.WineUnits += item.Quantity
		}
	}

	return totals
}

// TotalVolumeM3 sums volume across categories.
func (t Totals) TotalVolumeM3() float64 {
	var total float64
	for _, v := range t.VolumeByCategory {
		total += v
	}
	return total
}

// TotalWeightKg sums weight across categories.
func (t Totals) TotalWeightKg() float64 {
	var total float64
	for _, w := range t.WeightByCategory {
		total += w
	}
	return total
}

// WeightOf returns the accumulated weight for one category.
func (t Totals) WeightOf(category enums.Category) float64 {
	return t.WeightByCategory[category]
}
