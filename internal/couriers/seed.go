package couriers

import (
	"context"
	"errors"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	"gorm.io/gorm"
)

// SeedDefault describes one built-in courier installed on first boot.
type SeedDefault struct {
	Code     string
	Kind     enums.CourierKind
	Document Document
}

// DefaultSeeds returns the built-in Italian courier set. Transit tables ship
// in hours, the way the carriers publish them.
func DefaultSeeds() []SeedDefault {
	return []SeedDefault{
		{
			Code: "tnt",
			Kind: enums.CourierKindTNT,
			Document: Document{
				BasicInfo: BasicInfo{
					Name:             "TNT",
					Description:      "TNT national express network",
					SupportedRegions: []string{"IT"},
				},
				ShippingConfig: ShippingConfig{
					Surcharges: SurchargeConfig{Fuel: FuelConfig{Percentage: 9.5}},
					Calculations: CalculationRules{
						VolumetricDivisor: 5000,
						VatPercentage:     22,
						WeightRounding:    0.5,
					},
					TransitDaysDefault: 3,
				},
				PricingBrackets: []BracketEntry{
					{MinWeightKg: 0, MaxWeightKg: 5, Price: 8.90},
					{MinWeightKg: 5.5, MaxWeightKg: 10, Price: 11.40},
					{MinWeightKg: 10.5, MaxWeightKg: 20, Price: 15.80},
					{MinWeightKg: 20.5, MaxWeightKg: 30, Price: 21.30},
				},
				Services: []ServiceEntry{
					{Code: "TNT_STANDARD", Name: "TNT Standard", Description: "Standard delivery service"},
					{Code: "TNT_EXPRESS", Name: "TNT Express", Description: "Express delivery service", AdditionalCost: 6.50, TransitDaysOverride: 1},
					{Code: "TNT_ECONOMY", Name: "TNT Economy", Description: "Economy delivery service", AdditionalCost: -2.50},
					{Code: "TNT_BEFORE_9", Name: "TNT Before 9:00", Description: "Delivery before 9:00 AM", AdditionalCost: 12.00, TransitDaysOverride: 1},
				},
				TransitDays: []TransitEntry{
					{ZoneType: "PROVINCE", Name: "MI", Hours: 24},
					{ZoneType: "PROVINCE", Name: "RM", Hours: 24},
					{ZoneType: "PROVINCE", Name: "NA", Hours: 48},
					{ZoneType: "COUNTRY", Name: "IT", Hours: 72},
				},
			},
		},
		{
			Code: "brt",
			Kind: enums.CourierKindBRT,
			Document: Document{
				BasicInfo: BasicInfo{
					Name:             "BRT",
					Description:      "BRT parcel network",
					SupportedRegions: []string{"IT"},
				},
				ShippingConfig: ShippingConfig{
					Surcharges: SurchargeConfig{Fuel: FuelConfig{Percentage: 8.0}},
					Calculations: CalculationRules{
						VolumetricDivisor: 5000,
						VatPercentage:     22,
					},
					TransitDaysDefault: 2,
				},
				PricingBrackets: []BracketEntry{
					{MinWeightKg: 0, MaxWeightKg: 3, Price: 7.20},
					{MinWeightKg: 3.5, MaxWeightKg: 10, Price: 10.10},
					{MinWeightKg: 10.5, MaxWeightKg: 25, Price: 14.90},
					{MinWeightKg: 25.5, MaxWeightKg: 50, Price: 24.60},
				},
				Services: []ServiceEntry{
					{Code: "BRT_STANDARD", Name: "BRT Standard", Description: "Standard delivery service"},
					{Code: "BRT_EXPRESS", Name: "BRT Express", Description: "Express delivery service", AdditionalCost: 5.00, TransitDaysOverride: 1},
					{Code: "BRT_NEXT_DAY", Name: "BRT Next Day", Description: "Next day delivery service", AdditionalCost: 15.00, TransitDaysOverride: 1},
				},
				TransitDays: []TransitEntry{
					{ZoneType: "COUNTRY", Name: "IT", Hours: 48},
				},
			},
		},
		{
			Code: "fedex",
			Kind: enums.CourierKindFedex,
			Document: Document{
				BasicInfo: BasicInfo{
					Name:        "FedEx",
					Description: "FedEx international, container-cost pricing",
				},
				ShippingConfig: ShippingConfig{
					DryIce: DryIceConfig{CostPerKg: 2.80, VolumePerKg: 0.0015},
					Ice:    IceConfig{FreshPerDay: 1.2, FrozenPerDay: 2.0},
					Surcharges: SurchargeConfig{
						Wine: 3.50,
						Fuel: FuelConfig{Percentage: 11.0},
					},
					Calculations: CalculationRules{
						VolumetricDivisor: 5000,
						VatPercentage:     22,
					},
					TransitDaysDefault: 2,
				},
				Services: []ServiceEntry{
					{Code: "FEDEX_STANDARD", Name: "FedEx Standard", Description: "Standard delivery service"},
					{Code: "FEDEX_BEFORE_10", Name: "FedEx Before 10:00", Description: "Delivery before 10:00 AM", AdditionalCost: 14.00, TransitDaysOverride: 1},
				},
			},
		},
	}
}

// EnsureSeeded installs any built-in courier that is not in the database yet.
// Existing rows are left untouched so admin edits survive restarts.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	for _, seed := range DefaultSeeds() {
		_, err := s.repo.GetByCode(ctx, seed.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		doc := seed.Document
		if err := s.Replace(ctx, seed.Code, seed.Kind, true, &doc); err != nil {
			return err
		}
		if s.logg != nil {
			s.logg.Info(s.logg.WithCourier(ctx, seed.Code), "seeded default courier config")
		}
	}
	return nil
}
