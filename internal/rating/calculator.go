package rating

import (
	"context"
	"fmt"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ServiceTier is a named variant of a courier's offering. AdditionalCost is a
// delta on the composed base total and may be negative for discount tiers.
// A tier may own its own pricing structure; otherwise it inherits the
// courier-level one.
type ServiceTier struct {
	Code                string
	Name                string
	Description         string
	AdditionalCost      float64
	TransitDaysOverride int
	Pricing             *PricingStructure
}

// CourierSpec is the fully materialized, read-only snapshot of one courier's
// configuration, as the engine consumes it. The configuration layer owns
// loading, defaulting and validation; the engine never mutates or caches it.
type CourierSpec struct {
	Code     string
	Name     string
	Kind     enums.CourierKind
	Currency enums.Currency

	VolumetricDivisor float64
	WeightRoundingKg  float64
	VatPct            float64
	FuelPct           float64
	WineSurcharge     float64
	DryIceCostPerKg   float64
	FreshIcePerDay    float64
	FrozenIcePerDay   float64

	TransitDaysDefault int
	SupportedCountries []string

	Zones          []Zone
	Pricing        PricingStructure
	Services       []ServiceTier
	TransitEntries []TransitEntry
	Containers     []Container
}

// Calculator produces every service quote one courier offers for a cart.
type Calculator interface {
	Quotes(ctx context.Context, cart Cart) ([]Quote, error)
}

// NewCalculator dispatches on the courier kind. Bracket couriers (TNT, BRT,
// generic) price from zone-keyed weight brackets; container couriers (FedEx)
// price packed boxes, optionally on top of a bracket base rate.
func NewCalculator(spec CourierSpec, logg *logger.Logger) (Calculator, error) {
	switch spec.Kind {
	case enums.CourierKindTNT, enums.CourierKindBRT, enums.CourierKindGeneric:
		return &bracketCalculator{spec: spec, logg: logg}, nil
	case enums.CourierKindFedex:
		return &containerCalculator{spec: spec, logg: logg}, nil
	default:
		return nil, &ConfigError{CourierCode: spec.Code, Reason: fmt.Sprintf("unknown courier kind %q", spec.Kind)}
	}
}

type bracketCalculator struct {
	spec CourierSpec
	logg *logger.Logger
}

func (c *bracketCalculator) Quotes(ctx context.Context, cart Cart) ([]Quote, error) {
	if cart.Empty() {
		return nil, nil
	}
	dest := cart.Destination()
	if err := checkCountrySupport(c.spec, dest); err != nil {
		return nil, err
	}

	totals := Normalize(ctx, c.logg, cart)
	volumetric := VolumetricWeight(totals.TotalVolumeM3(), c.spec.VolumetricDivisor)
	shippingWeight := ShippingWeight(cart.ActualWeightKg(), volumetric, c.spec.WeightRoundingKg)

	zoneCode := ""
	transitFallback := c.spec.TransitDaysDefault
	if len(c.spec.Zones) > 0 {
		zone, err := ResolveZone(dest, c.spec.Zones)
		if err != nil {
			return nil, err
		}
		zoneCode = zone.Code
		if zone.TransitDays > 0 {
			transitFallback = zone.TransitDays
		}
	}
	transitDays := ResolveTransitDays(dest, c.spec.TransitEntries, transitFallback)

	var quotes []Quote
	var firstErr error
	for _, tier := range tiersFor(c.spec) {
		pricing := c.spec.Pricing
		if tier.Pricing != nil {
			pricing = *tier.Pricing
		}
		if pricing.IsEmpty() {
			if firstErr == nil {
				firstErr = &ConfigError{CourierCode: c.spec.Code, Reason: "no pricing structure configured"}
			}
			continue
		}

		base, err := pricing.Match(shippingWeight, zoneCode)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("service %s at %.2f kg in zone %q: %w", tier.Code, shippingWeight, zoneCode, err)
			}
			if c.logg != nil {
				c.logg.Warn(c.logg.WithService(ctx, tier.Code), "no rate for service tier, skipping")
			}
			continue
		}

		breakdown := ComposeSurcharges(SurchargeInputs{
			BaseRate:        base,
			FreshWeightKg:   totals.WeightOf(enums.CategoryFresh),
			FrozenWeightKg:  totals.WeightOf(enums.CategoryFrozen),
			WineUnits:       totals.WineUnits,
			TransitDays:     transitDays,
			DryIceCostPerKg: c.spec.DryIceCostPerKg,
			FreshIcePerDay:  c.spec.FreshIcePerDay,
			FrozenIcePerDay: c.spec.FrozenIcePerDay,
			WineSurcharge:   c.spec.WineSurcharge,
			FuelPct:         c.spec.FuelPct,
			VatPct:          c.spec.VatPct,
		})

		quotes = append(quotes, buildQuote(c.spec, tier, breakdown, transitDays))
	}

	if len(quotes) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, ErrNoRateFound
	}
	return quotes, nil
}

type containerCalculator struct {
	spec CourierSpec
	logg *logger.Logger
}

func (c *containerCalculator) Quotes(ctx context.Context, cart Cart) ([]Quote, error) {
	if cart.Empty() {
		return nil, nil
	}
	dest := cart.Destination()
	if err := checkCountrySupport(c.spec, dest); err != nil {
		return nil, err
	}

	totals := Normalize(ctx, c.logg, cart)
	plan := PackContainers(totals.VolumeByCategory, c.spec.Containers)
	transitDays := ResolveTransitDays(dest, c.spec.TransitEntries, c.spec.TransitDaysDefault)

	tiers := tiersFor(c.spec)

	// Optional bracket base on top of packaging cost, courier-level or per
	// tier. The boxes' tare weight counts toward billable weight.
	needsBracket := !c.spec.Pricing.IsEmpty()
	for _, tier := range tiers {
		if tier.Pricing != nil && !tier.Pricing.IsEmpty() {
			needsBracket = true
		}
	}

	zoneCode := ""
	var shippingWeight float64
	if needsBracket {
		if len(c.spec.Zones) > 0 {
			zone, err := ResolveZone(dest, c.spec.Zones)
			if err != nil {
				return nil, err
			}
			zoneCode = zone.Code
		}
		volumetric := VolumetricWeight(totals.TotalVolumeM3(), c.spec.VolumetricDivisor)
		shippingWeight = ShippingWeight(cart.ActualWeightKg()+plan.WeightKg(), volumetric, c.spec.WeightRoundingKg)
	}

	quotes := make([]Quote, 0, len(tiers))
	var firstErr error
	for _, tier := range tiers {
		pricing := c.spec.Pricing
		if tier.Pricing != nil {
			pricing = *tier.Pricing
		}

		base := decimal.Zero
		if !pricing.IsEmpty() {
			matched, err := pricing.Match(shippingWeight, zoneCode)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("service %s at %.2f kg in zone %q: %w", tier.Code, shippingWeight, zoneCode, err)
				}
				if c.logg != nil {
					c.logg.Warn(c.logg.WithService(ctx, tier.Code), "no rate for service tier, skipping")
				}
				continue
			}
			base = matched
		}

		breakdown := ComposeSurcharges(SurchargeInputs{
			BaseRate:        base,
			ContainerCost:   plan.CostInclVat(),
			FreshWeightKg:   totals.WeightOf(enums.CategoryFresh),
			FrozenWeightKg:  totals.WeightOf(enums.CategoryFrozen),
			WineUnits:       totals.WineUnits,
			TransitDays:     transitDays,
			DryIceCostPerKg: c.spec.DryIceCostPerKg,
			FreshIcePerDay:  c.spec.FreshIcePerDay,
			FrozenIcePerDay: c.spec.FrozenIcePerDay,
			WineSurcharge:   c.spec.WineSurcharge,
			FuelPct:         c.spec.FuelPct,
			VatPct:          c.spec.VatPct,
		})

		quotes = append(quotes, buildQuote(c.spec, tier, breakdown, transitDays))
	}

	if len(quotes) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return quotes, nil
}

func checkCountrySupport(spec CourierSpec, dest Destination) error {
	if len(spec.SupportedCountries) == 0 {
		return nil
	}
	for _, country := range spec.SupportedCountries {
		if equalFold(country, dest.CountryCode) {
			return nil
		}
	}
	return fmt.Errorf("country %s not served by %s: %w", dest.CountryCode, spec.Code, ErrNoZoneFound)
}
