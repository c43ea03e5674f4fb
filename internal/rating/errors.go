package rating

import (
	"errors"
	"fmt"
)

// Sentinel failures a single courier can hit. All of them are isolated at the
// aggregator: the courier contributes zero quotes and the request proceeds.
var (
	// ErrNoZoneFound means the destination is unmatched by any zone entry.
	ErrNoZoneFound = errors.New("no zone matches destination")
	// ErrNoRateFound means no pricing structure applies even after
	// clamp-to-edge fallback.
	ErrNoRateFound = errors.New("no applicable rate")
)

// ConfigError marks a courier configuration the engine cannot price with.
type ConfigError struct {
	CourierCode string
	Reason      string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("courier %s: invalid configuration: %s", e.CourierCode, e.Reason)
}

// FailureReason maps a courier failure to a stable metrics label.
func FailureReason(err error) string {
	var cfgErr *ConfigError
	switch {
	case errors.Is(err, ErrNoZoneFound):
		return "no_zone"
	case errors.Is(err, ErrNoRateFound):
		return "no_rate"
	case errors.As(err, &cfgErr):
		return "config"
	default:
		return "internal"
	}
}
