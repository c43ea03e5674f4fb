package rating

import (
	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Quote is one priced service option for the cart.
type Quote struct {
	CourierCode string
	ServiceCode string
	ServiceName string
	Total       decimal.Decimal
	Currency    enums.Currency
	TransitDays int
	Description string
}

// TotalCents returns the total in the smallest currency unit, rounded to two
// decimal places exactly once, at the output boundary.
func (q Quote) TotalCents() int64 {
	return q.Total.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}
