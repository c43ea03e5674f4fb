package rating

import "github.com/matteoferrante/spediquote-backend/pkg/enums"

// DefaultTransitDays applies when a courier configures no default at all.
const DefaultTransitDays = 3

// TransitEntry maps a destination match to estimated delivery days. Transit
// entries are independent of pricing zones: a courier can publish transit
// tables at a different granularity than its rate tables.
type TransitEntry struct {
	ZoneType  enums.ZoneType
	MatchName string
	Days      int
}

func (t TransitEntry) matches(dest Destination) bool {
	switch t.ZoneType {
	case enums.ZoneTypeZIP:
		return t.MatchName != "" && t.MatchName == dest.PostalCode
	case enums.ZoneTypeCity:
		return t.MatchName != "" && equalFold(t.MatchName, dest.City)
	case enums.ZoneTypeProvince:
		return t.MatchName != "" && equalFold(t.MatchName, dest.Province)
	case enums.ZoneTypeRegion:
		return t.MatchName != "" && equalFold(t.MatchName, dest.Region)
	case enums.ZoneTypeCountry:
		return t.MatchName != "" && equalFold(t.MatchName, dest.CountryCode)
	default:
		return false
	}
}

// ResolveTransitDays matches the destination against the transit table with
// the same specificity priority as zone resolution, falling back to the
// courier default. Missing transit data never fails a quote.
func ResolveTransitDays(dest Destination, entries []TransitEntry, fallbackDays int) int {
	for _, zoneType := range enums.ZoneTypePriority {
		for _, entry := range entries {
			if entry.ZoneType != zoneType {
				continue
			}
			if entry.matches(dest) && entry.Days > 0 {
				return entry.Days
			}
		}
	}
	if fallbackDays > 0 {
		return fallbackDays
	}
	return DefaultTransitDays
}
