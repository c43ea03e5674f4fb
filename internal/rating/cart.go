package rating

import (
	"strings"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
)

// Destination identifies where a cart ships to. Fields go from least to most
// specific; zone and transit resolution probe them most-specific first.
type Destination struct {
	CountryCode string
	Region      string
	Province    string
	City        string
	PostalCode  string
}

// Dimensions carries a cart item's physical size. VolumeM3 wins when set;
// otherwise the millimetre triple is used. All zero means unknown size.
type Dimensions struct {
	LengthMm float64
	WidthMm  float64
	HeightMm float64
	VolumeM3 float64
}

// UnitVolumeM3 returns the volume of a single unit in cubic metres.
func (d Dimensions) UnitVolumeM3() float64 {
	if d.VolumeM3 > 0 {
		return d.VolumeM3
	}
	return d.LengthMm * d.WidthMm * d.HeightMm / 1e9
}

// Known reports whether any size information is present.
func (d Dimensions) Known() bool {
	return d.VolumeM3 > 0 || (d.LengthMm > 0 && d.WidthMm > 0 && d.HeightMm > 0)
}

// CartItem is one normalized cart line. Constructed fresh per quote request
// and never persisted by the engine.
type CartItem struct {
	Name        string
	SKU         string
	Quantity    int
	WeightKg    float64
	Dimensions  Dimensions
	Category    enums.Category
	Destination Destination
}

// Cart is the engine's input: the normalized item list.
type Cart struct {
	Items []CartItem
}

// Empty reports whether there is anything to quote.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Destination returns the shipping destination. All items in one cart ship
// together, so the first item's destination stands for the cart.
func (c Cart) Destination() Destination {
	if len(c.Items) == 0 {
		return Destination{}
	}
	return c.Items[0].Destination
}

// ActualWeightKg sums item weight times quantity across the cart.
func (c Cart) ActualWeightKg() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.WeightKg * float64(item.Quantity)
	}
	return total
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
