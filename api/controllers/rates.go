package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matteoferrante/spediquote-backend/api/responses"
	"github.com/matteoferrante/spediquote-backend/api/validators"
	"github.com/matteoferrante/spediquote-backend/internal/rating"
	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	pkgerrors "github.com/matteoferrante/spediquote-backend/pkg/errors"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
)

// SnapshotProvider supplies engine-ready courier specs per request.
type SnapshotProvider interface {
	Snapshots(ctx context.Context) ([]rating.CourierSpec, error)
}

// Quoter runs the multi-courier aggregation.
type Quoter interface {
	Quote(ctx context.Context, cart rating.Cart, specs []rating.CourierSpec) []rating.Quote
}

// The request mirrors the carrier-service callback shape storefronts send:
// one rate object with a destination and the cart lines.
type rateRequest struct {
	Rate ratePayload `json:"rate"`
}

type ratePayload struct {
	Destination destinationPayload `json:"destination"`
	Items       []itemPayload      `json:"items"`
}

type destinationPayload struct {
	Country    string `json:"country"`
	Region     string `json:"region,omitempty"`
	Province   string `json:"province,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type itemPayload struct {
	Name       string            `json:"name"`
	SKU        string            `json:"sku,omitempty"`
	Quantity   int               `json:"quantity"`
	Grams      json.RawMessage   `json:"grams,omitempty"`
	Category   string            `json:"category,omitempty"`
	Dimensions *dimensionPayload `json:"dimensions,omitempty"`
}

type dimensionPayload struct {
	LengthCm float64 `json:"length_cm,omitempty"`
	WidthCm  float64 `json:"width_cm,omitempty"`
	HeightCm float64 `json:"height_cm,omitempty"`
	VolumeM3 float64 `json:"volume_m3,omitempty"`
}

type rateDTO struct {
	ServiceName string `json:"service_name"`
	ServiceCode string `json:"service_code"`
	CourierCode string `json:"courier_code"`
	TotalPrice  int64  `json:"total_price"`
	Currency    string `json:"currency"`
	TransitDays int    `json:"transit_days"`
	Description string `json:"description"`
}

type ratesResponse struct {
	Rates []rateDTO `json:"rates"`
}

// RatesQuote prices the cart across every active courier. The whole request,
// configuration fetch included, runs under the configured timeout. Cart-level
// problems degrade to an empty rates list so checkout stays usable; only
// dependency failures surface as errors.
func RatesQuote(couriers SnapshotProvider, agg Quoter, logg *logger.Logger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if couriers == nil || agg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rating service unavailable"))
			return
		}

		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		var payload rateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		cart := toCart(ctx, logg, payload.Rate)

		specs, err := couriers.Snapshots(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if len(specs) == 0 && logg != nil {
			logg.Warn(ctx, "no active couriers configured, returning no rates")
		}

		quotes := agg.Quote(ctx, cart, specs)

		rates := make([]rateDTO, 0, len(quotes))
		for _, quote := range quotes {
			rates = append(rates, rateDTO{
				ServiceName: quote.ServiceName,
				ServiceCode: quote.ServiceCode,
				CourierCode: quote.CourierCode,
				TotalPrice:  quote.TotalCents(),
				Currency:    quote.Currency.String(),
				TransitDays: quote.TransitDays,
				Description: quote.Description,
			})
		}

		responses.WriteSuccess(w, ratesResponse{Rates: rates})
	}
}

func toCart(ctx context.Context, logg *logger.Logger, payload ratePayload) rating.Cart {
	dest := rating.Destination{
		CountryCode: payload.Destination.Country,
		Region:      payload.Destination.Region,
		Province:    payload.Destination.Province,
		City:        payload.Destination.City,
		PostalCode:  payload.Destination.PostalCode,
	}

	cart := rating.Cart{Items: make([]rating.CartItem, 0, len(payload.Items))}
	for _, item := range payload.Items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		cartItem := rating.CartItem{
			Name:        item.Name,
			SKU:         item.SKU,
			Quantity:    quantity,
			WeightKg:    parseGrams(ctx, logg, item.Name, item.Grams) / 1000,
			Category:    enums.ParseCategory(item.Category),
			Destination: dest,
		}
		if item.Dimensions != nil {
			cartItem.Dimensions = rating.Dimensions{
				LengthMm: item.Dimensions.LengthCm * 10,
				WidthMm:  item.Dimensions.WidthCm * 10,
				HeightMm: item.Dimensions.HeightCm * 10,
				VolumeM3: item.Dimensions.VolumeM3,
			}
		}
		cart.Items = append(cart.Items, cartItem)
	}
	return cart
}

// parseGrams accepts the weight as a JSON number or numeric string. Values
// that do not parse default to zero with a logged diagnostic, an unparseable
// weight should degrade one line's precision, not fail the whole quote.
func parseGrams(ctx context.Context, logg *logger.Logger, itemName string, raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" || text == "null" {
		return 0
	}

	grams, err := strconv.ParseFloat(text, 64)
	if err != nil || grams < 0 {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "item", itemName), "unparseable item weight, assuming zero")
		}
		return 0
	}
	return grams
}
