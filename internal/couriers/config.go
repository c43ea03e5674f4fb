package couriers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	pkgerrors "github.com/matteoferrante/spediquote-backend/pkg/errors"
)

// Centralized defaults. Every materialization path goes through
// ApplyDefaults; call sites never invent their own fallbacks.
const (
	DefaultVolumetricDivisor = 5000
	DefaultVatPercentage     = 22
	DefaultTransitDays       = 3
	DefaultCurrency          = "EUR"
)

// Document is the declarative courier configuration stored in the couriers
// table's JSONB column. The shape mirrors what the admin surface edits.
type Document struct {
	BasicInfo       BasicInfo      `json:"basicInfo"`
	ShippingConfig  ShippingConfig `json:"shippingConfig"`
	Zones           []ZoneEntry    `json:"zones,omitempty"`
	PricingBrackets []BracketEntry `json:"pricingBrackets,omitempty"`
	Services        []ServiceEntry `json:"services,omitempty"`
	TransitDays     []TransitEntry `json:"transitDays,omitempty"`
}

// BasicInfo carries courier identity and the served-country gate.
type BasicInfo struct {
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	SupportedRegions []string `json:"supportedRegions,omitempty"`
}

// ShippingConfig groups the numeric knobs of the rate calculation.
type ShippingConfig struct {
	DryIce             DryIceConfig     `json:"dryIce"`
	Ice                IceConfig        `json:"ice"`
	Surcharges         SurchargeConfig  `json:"surcharges"`
	Calculations       CalculationRules `json:"calculations"`
	TransitDaysDefault int              `json:"transitDaysDefault,omitempty"`
	Currency           string           `json:"currency,omitempty"`
}

type DryIceConfig struct {
	CostPerKg   float64 `json:"costPerKg,omitempty"`
	VolumePerKg float64 `json:"volumePerKg,omitempty"`
}

type IceConfig struct {
	FreshPerDay  float64 `json:"freshPerDay,omitempty"`
	FrozenPerDay float64 `json:"frozenPerDay,omitempty"`
}

type SurchargeConfig struct {
	Wine float64    `json:"wine,omitempty"`
	Fuel FuelConfig `json:"fuel"`
}

type FuelConfig struct {
	Percentage float64 `json:"percentage,omitempty"`
}

type CalculationRules struct {
	VolumetricDivisor float64 `json:"volumetricDivisor,omitempty"`
	VatPercentage     float64 `json:"vatPercentage,omitempty"`
	WeightRounding    float64 `json:"weightRounding,omitempty"`
}

// ZoneEntry is one geographic pricing region.
type ZoneEntry struct {
	Code        string   `json:"code"`
	Name        string   `json:"name,omitempty"`
	Type        string   `json:"type"`
	MatchValue  string   `json:"matchValue,omitempty"`
	Countries   []string `json:"countries,omitempty"`
	TransitDays int      `json:"transitDays,omitempty"`
}

// BracketEntry is one weight bracket. Model selects the rate structure and
// defaults to fixed; the progressive and bulk fields are read only for their
// respective models.
type BracketEntry struct {
	Model       string  `json:"model,omitempty"`
	MinWeightKg float64 `json:"minWeightKg"`
	MaxWeightKg float64 `json:"maxWeightKg"`

	Price     float64            `json:"price,omitempty"`
	ZoneRates map[string]float64 `json:"zoneRates,omitempty"`

	BaseWeightKg       float64            `json:"baseWeightKg,omitempty"`
	UnitSizeKg         float64            `json:"unitSizeKg,omitempty"`
	BasePrice          float64            `json:"basePrice,omitempty"`
	BaseZoneRates      map[string]float64 `json:"baseZoneRates,omitempty"`
	IncrementPrice     float64            `json:"incrementPrice,omitempty"`
	IncrementZoneRates map[string]float64 `json:"incrementZoneRates,omitempty"`

	PerKgPrice     float64            `json:"perKgPrice,omitempty"`
	PerKgZoneRates map[string]float64 `json:"perKgZoneRates,omitempty"`
}

// ServiceEntry is one named service tier. A tier may carry its own brackets;
// otherwise it inherits the courier-level ones.
type ServiceEntry struct {
	Code                string         `json:"code"`
	Name                string         `json:"name"`
	Description         string         `json:"description,omitempty"`
	AdditionalCost      float64        `json:"additionalCost,omitempty"`
	TransitDaysOverride int            `json:"transitDaysOverride,omitempty"`
	PricingBrackets     []BracketEntry `json:"pricingBrackets,omitempty"`
}

// TransitEntry maps a destination to delivery time. Legacy configurations
// store hours in Days (TNT publishes 24/48/72h tables); anything 24 or above
// is treated as hours and converted at materialization.
type TransitEntry struct {
	ZoneType string `json:"zoneType"`
	Name     string `json:"name"`
	Days     int    `json:"days,omitempty"`
	Hours    int    `json:"hours,omitempty"`
}

// DaysResolved returns the entry's transit time in days, converting stored
// hours where present. Never returns less than one day for a set entry.
func (t TransitEntry) DaysResolved() int {
	hours := t.Hours
	if hours == 0 && t.Days >= 24 {
		hours = t.Days
	}
	if hours > 0 {
		days := (hours + 12) / 24
		if days < 1 {
			days = 1
		}
		return days
	}
	return t.Days
}

// Decode parses a raw JSONB document without defaulting or validating it.
func Decode(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed courier config document")
	}
	return &doc, nil
}

// ApplyDefaults fills the centralized fallbacks into zero-valued knobs.
func (d *Document) ApplyDefaults() {
	if d.ShippingConfig.Calculations.VolumetricDivisor <= 0 {
		d.ShippingConfig.Calculations.VolumetricDivisor = DefaultVolumetricDivisor
	}
	if d.ShippingConfig.Calculations.VatPercentage <= 0 {
		d.ShippingConfig.Calculations.VatPercentage = DefaultVatPercentage
	}
	if d.ShippingConfig.TransitDaysDefault <= 0 {
		d.ShippingConfig.TransitDaysDefault = DefaultTransitDays
	}
	if d.ShippingConfig.Currency == "" {
		d.ShippingConfig.Currency = DefaultCurrency
	}
}

// Validate checks internal consistency: known enum values, non-inverted and
// non-overlapping bracket ranges, and no bracket referencing a zone code the
// courier does not define. Violations are configuration errors; they are
// rejected here rather than silently resolved at quote time.
func (d *Document) Validate() error {
	var problems []string

	if strings.TrimSpace(d.BasicInfo.Name) == "" {
		problems = append(problems, "basicInfo.name is required")
	}

	zoneCodes := make(map[string]bool, len(d.Zones))
	for i, zone := range d.Zones {
		if strings.TrimSpace(zone.Code) == "" {
			problems = append(problems, fmt.Sprintf("zones[%d]: code is required", i))
		}
		if _, err := enums.ParseZoneType(zone.Type); err != nil {
			problems = append(problems, fmt.Sprintf("zones[%d]: %v", i, err))
		}
		if zoneCodes[zone.Code] {
			problems = append(problems, fmt.Sprintf("zones[%d]: duplicate zone code %q", i, zone.Code))
		}
		zoneCodes[zone.Code] = true
	}

	problems = append(problems, validateBrackets("pricingBrackets", d.PricingBrackets, zoneCodes)...)

	serviceCodes := make(map[string]bool, len(d.Services))
	for i, service := range d.Services {
		if strings.TrimSpace(service.Code) == "" {
			problems = append(problems, fmt.Sprintf("services[%d]: code is required", i))
		}
		if serviceCodes[service.Code] {
			problems = append(problems, fmt.Sprintf("services[%d]: duplicate service code %q", i, service.Code))
		}
		serviceCodes[service.Code] = true
		problems = append(problems,
			validateBrackets(fmt.Sprintf("services[%d].pricingBrackets", i), service.PricingBrackets, zoneCodes)...)
	}

	for i, entry := range d.TransitDays {
		if _, err := enums.ParseZoneType(entry.ZoneType); err != nil {
			problems = append(problems, fmt.Sprintf("transitDays[%d]: %v", i, err))
		}
		if entry.Days <= 0 && entry.Hours <= 0 {
			problems = append(problems, fmt.Sprintf("transitDays[%d]: days or hours required", i))
		}
	}

	if len(problems) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid courier config").WithDetails(problems)
	}
	return nil
}

func validateBrackets(path string, brackets []BracketEntry, zoneCodes map[string]bool) []string {
	var problems []string

	byModel := make(map[enums.PricingModel][]int)
	for i, bracket := range brackets {
		model := enums.PricingModelFixed
		if bracket.Model != "" {
			parsed, err := enums.ParsePricingModel(bracket.Model)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s[%d]: %v", path, i, err))
				continue
			}
			model = parsed
		}
		if bracket.MinWeightKg < 0 || bracket.MaxWeightKg < bracket.MinWeightKg {
			problems = append(problems, fmt.Sprintf("%s[%d]: inverted weight range [%v, %v]",
				path, i, bracket.MinWeightKg, bracket.MaxWeightKg))
		}
		byModel[model] = append(byModel[model], i)

		for _, rates := range []map[string]float64{
			bracket.ZoneRates, bracket.BaseZoneRates, bracket.IncrementZoneRates, bracket.PerKgZoneRates,
		} {
			for code := range rates {
				if !zoneCodes[code] {
					problems = append(problems, fmt.Sprintf("%s[%d]: rate references undefined zone %q", path, i, code))
				}
			}
		}
	}

	// Ranges within one model must not overlap; brackets of different models
	// may cover the same weights since they are tried in priority order.
	for model, indexes := range byModel {
		sorted := append([]int(nil), indexes...)
		sort.Slice(sorted, func(a, b int) bool {
			return brackets[sorted[a]].MinWeightKg < brackets[sorted[b]].MinWeightKg
		})
		for k := 1; k < len(sorted); k++ {
			prev, curr := brackets[sorted[k-1]], brackets[sorted[k]]
			if curr.MinWeightKg <= prev.MaxWeightKg {
				problems = append(problems, fmt.Sprintf(
					"%s: %s brackets [%v, %v] and [%v, %v] overlap",
					path, model, prev.MinWeightKg, prev.MaxWeightKg, curr.MinWeightKg, curr.MaxWeightKg))
			}
		}
	}

	return problems
}
