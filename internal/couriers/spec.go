package couriers

import (
	"github.com/matteoferrante/spediquote-backend/internal/rating"
	"github.com/matteoferrante/spediquote-backend/pkg/db/models"
	"github.com/matteoferrante/spediquote-backend/pkg/enums"
)

// Materialize turns a validated, defaulted document into the read-only
// snapshot the engine consumes. Transit hours become days here, so the engine
// only ever sees days.
func Materialize(code string, kind enums.CourierKind, doc *Document, containers []models.Container) rating.CourierSpec {
	spec := rating.CourierSpec{
		Code:     code,
		Name:     doc.BasicInfo.Name,
		Kind:     kind,
		Currency: parseCurrency(doc.ShippingConfig.Currency),

		VolumetricDivisor: doc.ShippingConfig.Calculations.VolumetricDivisor,
		WeightRoundingKg:  doc.ShippingConfig.Calculations.WeightRounding,
		VatPct:            doc.ShippingConfig.Calculations.VatPercentage,
		FuelPct:           doc.ShippingConfig.Surcharges.Fuel.Percentage,
		WineSurcharge:     doc.ShippingConfig.Surcharges.Wine,
		DryIceCostPerKg:   doc.ShippingConfig.DryIce.CostPerKg,
		FreshIcePerDay:    doc.ShippingConfig.Ice.FreshPerDay,
		FrozenIcePerDay:   doc.ShippingConfig.Ice.FrozenPerDay,

		TransitDaysDefault: doc.ShippingConfig.TransitDaysDefault,
		SupportedCountries: doc.BasicInfo.SupportedRegions,

		Pricing: bracketsToStructure(doc.PricingBrackets),
	}

	for _, zone := range doc.Zones {
		zoneType, err := enums.ParseZoneType(zone.Type)
		if err != nil {
			continue // Validate rejects these before materialization
		}
		spec.Zones = append(spec.Zones, rating.Zone{
			Code:        zone.Code,
			Name:        zone.Name,
			Type:        zoneType,
			MatchValue:  zone.MatchValue,
			Countries:   zone.Countries,
			TransitDays: zone.TransitDays,
		})
	}

	for _, service := range doc.Services {
		tier := rating.ServiceTier{
			Code:                service.Code,
			Name:                service.Name,
			Description:         service.Description,
			AdditionalCost:      service.AdditionalCost,
			TransitDaysOverride: service.TransitDaysOverride,
		}
		if len(service.PricingBrackets) > 0 {
			pricing := bracketsToStructure(service.PricingBrackets)
			tier.Pricing = &pricing
		}
		spec.Services = append(spec.Services, tier)
	}

	for _, entry := range doc.TransitDays {
		zoneType, err := enums.ParseZoneType(entry.ZoneType)
		if err != nil {
			continue
		}
		spec.TransitEntries = append(spec.TransitEntries, rating.TransitEntry{
			ZoneType:  zoneType,
			MatchName: entry.Name,
			Days:      entry.DaysResolved(),
		})
	}

	for _, container := range containers {
		spec.Containers = append(spec.Containers, rating.Container{
			ID:          container.ID.String(),
			Name:        container.Name,
			VolumeM3:    container.VolumeM3,
			WeightKg:    container.WeightKg,
			CostExclVat: container.CostExclVat,
			CostInclVat: container.CostInclVat,
		})
	}

	return spec
}

func bracketsToStructure(brackets []BracketEntry) rating.PricingStructure {
	var structure rating.PricingStructure
	for _, bracket := range brackets {
		model := enums.PricingModelFixed
		if bracket.Model != "" {
			parsed, err := enums.ParsePricingModel(bracket.Model)
			if err != nil {
				continue
			}
			model = parsed
		}

		switch model {
		case enums.PricingModelFixed:
			structure.Fixed = append(structure.Fixed, rating.FixedBracket{
				MinWeightKg: bracket.MinWeightKg,
				MaxWeightKg: bracket.MaxWeightKg,
				Price:       bracket.Price,
				ZoneRates:   bracket.ZoneRates,
			})
		case enums.PricingModelProgressive:
			structure.Progressive = append(structure.Progressive, rating.ProgressiveBracket{
				MinWeightKg:        bracket.MinWeightKg,
				MaxWeightKg:        bracket.MaxWeightKg,
				BaseWeightKg:       bracket.BaseWeightKg,
				UnitSizeKg:         bracket.UnitSizeKg,
				BasePrice:          bracket.BasePrice,
				BaseZoneRates:      bracket.BaseZoneRates,
				IncrementPrice:     bracket.IncrementPrice,
				IncrementZoneRates: bracket.IncrementZoneRates,
			})
		case enums.PricingModelBulk:
			structure.Bulk = append(structure.Bulk, rating.BulkBracket{
				MinWeightKg:    bracket.MinWeightKg,
				MaxWeightKg:    bracket.MaxWeightKg,
				PerKgPrice:     bracket.PerKgPrice,
				PerKgZoneRates: bracket.PerKgZoneRates,
			})
		}
	}
	return structure
}

func parseCurrency(value string) enums.Currency {
	currency, err := enums.ParseCurrency(value)
	if err != nil {
		return enums.CurrencyEUR
	}
	return currency
}
