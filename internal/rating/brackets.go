package rating

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// FixedBracket maps an inclusive weight range to a rate. ZoneRates keys the
// rate by zone code; when the map is empty Price is the flat rate for every
// destination the courier serves.
type FixedBracket struct {
	MinWeightKg float64
	MaxWeightKg float64
	Price       float64
	ZoneRates   map[string]float64
}

// ProgressiveBracket bills a base rate up to BaseWeightKg, then one increment
// per started UnitSizeKg beyond it. Partial units are billed as full units.
type ProgressiveBracket struct {
	MinWeightKg        float64
	MaxWeightKg        float64
	BaseWeightKg       float64
	UnitSizeKg         float64
	BasePrice          float64
	BaseZoneRates      map[string]float64
	IncrementPrice     float64
	IncrementZoneRates map[string]float64
}

// BulkBracket bills shipping weight times a per-kg rate.
type BulkBracket struct {
	MinWeightKg    float64
	MaxWeightKg    float64
	PerKgPrice     float64
	PerKgZoneRates map[string]float64
}

// PricingStructure bundles the rate tables one courier or service owns.
// When more than one variant is present they are tried in fixed order:
// fixed, then progressive, then bulk.
type PricingStructure struct {
	Fixed       []FixedBracket
	Progressive []ProgressiveBracket
	Bulk        []BulkBracket
}

// IsEmpty reports whether no rate table is configured at all.
func (p PricingStructure) IsEmpty() bool {
	return len(p.Fixed) == 0 && len(p.Progressive) == 0 && len(p.Bulk) == 0
}

// Match finds the rate for the given shipping weight and zone. Out-of-range
// weights clamp to the nearest edge bracket: below the lowest minimum the
// lowest bracket applies, above the highest maximum the highest applies.
// Only when no structure yields a rate does Match return ErrNoRateFound.
func (p PricingStructure) Match(weightKg float64, zoneCode string) (decimal.Decimal, error) {
	if rate, ok := p.matchFixed(weightKg, zoneCode); ok {
		return rate, nil
	}
	if rate, ok := p.matchProgressive(weightKg, zoneCode); ok {
		return rate, nil
	}
	if rate, ok := p.matchBulk(weightKg, zoneCode); ok {
		return rate, nil
	}
	return decimal.Zero, ErrNoRateFound
}

func (p PricingStructure) matchFixed(weightKg float64, zoneCode string) (decimal.Decimal, bool) {
	idx, ok := clampToRange(weightKg, len(p.Fixed),
		func(i int) float64 { return p.Fixed[i].MinWeightKg },
		func(i int) float64 { return p.Fixed[i].MaxWeightKg },
	)
	if !ok {
		return decimal.Zero, false
	}
	bracket := p.Fixed[idx]
	rate, ok := rateFor(bracket.ZoneRates, bracket.Price, zoneCode)
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(rate), true
}

func (p PricingStructure) matchProgressive(weightKg float64, zoneCode string) (decimal.Decimal, bool) {
	idx, ok := clampToRange(weightKg, len(p.Progressive),
		func(i int) float64 { return p.Progressive[i].MinWeightKg },
		func(i int) float64 { return p.Progressive[i].MaxWeightKg },
	)
	if !ok {
		return decimal.Zero, false
	}
	bracket := p.Progressive[idx]

	base, ok := rateFor(bracket.BaseZoneRates, bracket.BasePrice, zoneCode)
	if !ok {
		return decimal.Zero, false
	}
	increment, ok := rateFor(bracket.IncrementZoneRates, bracket.IncrementPrice, zoneCode)
	if !ok {
		return decimal.Zero, false
	}

	units := 0.0
	if weightKg > bracket.BaseWeightKg && bracket.UnitSizeKg > 0 {
		units = math.Ceil((weightKg - bracket.BaseWeightKg) / bracket.UnitSizeKg)
	}

	rate := decimal.NewFromFloat(base).
		Add(decimal.NewFromFloat(increment).Mul(decimal.NewFromFloat(units)))
	return rate, true
}

func (p PricingStructure) matchBulk(weightKg float64, zoneCode string) (decimal.Decimal, bool) {
	idx, ok := clampToRange(weightKg, len(p.Bulk),
		func(i int) float64 { return p.Bulk[i].MinWeightKg },
		func(i int) float64 { return p.Bulk[i].MaxWeightKg },
	)
	if !ok {
		return decimal.Zero, false
	}
	bracket := p.Bulk[idx]
	perKg, ok := rateFor(bracket.PerKgZoneRates, bracket.PerKgPrice, zoneCode)
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(perKg).Mul(decimal.NewFromFloat(weightKg)), true
}

// rateFor resolves a zone-keyed rate, falling back to the flat price when no
// zone map is configured. A configured map without the target zone is a miss,
// not a silent zero.
func rateFor(zoneRates map[string]float64, flat float64, zoneCode string) (float64, bool) {
	if len(zoneRates) == 0 {
		return flat, true
	}
	rate, ok := zoneRates[zoneCode]
	return rate, ok
}

// clampToRange finds the bracket whose inclusive [min,max] range contains the
// weight. Weights below the lowest minimum clamp to the lowest bracket and
// weights above the highest maximum clamp to the highest. A weight falling in
// a gap between configured ranges is a miss.
func clampToRange(weightKg float64, n int, minAt, maxAt func(int) float64) (int, bool) {
	if n == 0 {
		return 0, false
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return minAt(order[a]) < minAt(order[b])
	})

	for _, i := range order {
		if weightKg >= minAt(i) && weightKg <= maxAt(i) {
			return i, true
		}
	}

	lowest, highest := order[0], order[n-1]
	if weightKg < minAt(lowest) {
		return lowest, true
	}
	if weightKg > maxAt(highest) {
		return highest, true
	}
	return 0, false
}
