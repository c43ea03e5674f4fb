package enums

import (
	"fmt"
	"strings"
)

// CourierKind selects the calculation model for a courier. Dispatch is a
// typed switch on this value rather than a lookup-by-name registry.
type CourierKind string

const (
	// CourierKindFedex prices physical packaging: cart volume is packed into
	// containers and the container cost feeds the base rate.
	CourierKindFedex CourierKind = "fedex"
	// CourierKindTNT and CourierKindBRT price from zone-keyed weight
	// brackets. They share a calculator and differ only in configuration.
	CourierKindTNT CourierKind = "tnt"
	CourierKindBRT CourierKind = "brt"
	// CourierKindGeneric covers any additional table-driven courier.
	CourierKindGeneric CourierKind = "generic"
)

var validCourierKinds = []CourierKind{
	CourierKindFedex,
	CourierKindTNT,
	CourierKindBRT,
	CourierKindGeneric,
}

// String implements fmt.Stringer.
func (k CourierKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known CourierKind.
func (k CourierKind) IsValid() bool {
	for _, candidate := range validCourierKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// UsesContainers reports whether this kind's base rate includes packaging.
func (k CourierKind) UsesContainers() bool {
	return k == CourierKindFedex
}

// ParseCourierKind converts raw input into a CourierKind.
func ParseCourierKind(value string) (CourierKind, error) {
	normalized := CourierKind(strings.ToLower(strings.TrimSpace(value)))
	for _, candidate := range validCourierKinds {
		if candidate == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid courier kind %q", value)
}
