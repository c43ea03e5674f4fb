package rating

import (
	"fmt"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
)

// Zone is one courier-specific geographic pricing region.
type Zone struct {
	Code        string
	Name        string
	Type        enums.ZoneType
	MatchValue  string
	Countries   []string
	TransitDays int
}

// matches reports whether the destination satisfies this zone entry at the
// zone's own specificity level.
func (z Zone) matches(dest Destination) bool {
	switch z.Type {
	case enums.ZoneTypeZIP:
		return z.MatchValue != "" && z.MatchValue == dest.PostalCode
	case enums.ZoneTypeCity:
		return z.MatchValue != "" && equalFold(z.MatchValue, dest.City)
	case enums.ZoneTypeProvince:
		return z.MatchValue != "" && equalFold(z.MatchValue, dest.Province)
	case enums.ZoneTypeRegion:
		return z.MatchValue != "" && equalFold(z.MatchValue, dest.Region)
	case enums.ZoneTypeCountry:
		for _, country := range z.Countries {
			if equalFold(country, dest.CountryCode) {
				return true
			}
		}
		return z.MatchValue != "" && equalFold(z.MatchValue, dest.CountryCode)
	default:
		return false
	}
}

// ResolveZone maps the destination to a zone, scanning specificity levels
// from ZIP down to country and returning the first hit. A destination no
// entry matches is a NoZoneFound condition: the courier cannot quote it, but
// the request as a whole proceeds.
func ResolveZone(dest Destination, zones []Zone) (*Zone, error) {
	for _, zoneType := range enums.ZoneTypePriority {
		for i := range zones {
			if zones[i].Type != zoneType {
				continue
			}
			if zones[i].matches(dest) {
				return &zones[i], nil
			}
		}
	}
	return nil, fmt.Errorf("destination %s/%s/%s/%s: %w",
		dest.CountryCode, dest.Province, dest.City, dest.PostalCode, ErrNoZoneFound)
}
