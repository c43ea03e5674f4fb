package enums

import "fmt"

// ZoneType identifies which destination field a zone or transit entry keys on.
type ZoneType string

const (
	ZoneTypeZIP      ZoneType = "ZIP"
	ZoneTypeCity     ZoneType = "CITY"
	ZoneTypeProvince ZoneType = "PROVINCE"
	ZoneTypeRegion   ZoneType = "REGION"
	ZoneTypeCountry  ZoneType = "COUNTRY"
)

// ZoneTypePriority lists zone types from most to least specific. Resolution
// scans this order and returns on first hit.
var ZoneTypePriority = []ZoneType{
	ZoneTypeZIP,
	ZoneTypeCity,
	ZoneTypeProvince,
	ZoneTypeRegion,
	ZoneTypeCountry,
}

// String implements fmt.Stringer.
func (z ZoneType) String() string {
	return string(z)
}

// IsValid reports whether the value is a known ZoneType.
func (z ZoneType) IsValid() bool {
	for _, candidate := range ZoneTypePriority {
		if candidate == z {
			return true
		}
	}
	return false
}

// ParseZoneType converts raw input into a ZoneType.
func ParseZoneType(value string) (ZoneType, error) {
	for _, candidate := range ZoneTypePriority {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid zone type %q", value)
}
