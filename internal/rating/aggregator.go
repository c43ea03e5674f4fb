package rating

import (
	"context"
	"fmt"
	"time"

	"github.com/matteoferrante/spediquote-backend/pkg/logger"
	"github.com/matteoferrante/spediquote-backend/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Aggregator fans a quote request out over every supplied courier and
// concatenates the results. Courier failures are isolated here: a courier
// that cannot quote contributes zero entries and the request proceeds. Only
// the caller's context can abort the whole request.
type Aggregator struct {
	logg    *logger.Logger
	metrics *metrics.QuoteMetrics
}

// NewAggregator builds the aggregator. Both collaborators are optional.
func NewAggregator(logg *logger.Logger, m *metrics.QuoteMetrics) *Aggregator {
	return &Aggregator{logg: logg, metrics: m}
}

// Quote runs every courier's calculation concurrently and returns the quotes
// in courier-iteration order, each courier's services in their configured
// order. An empty cart or an empty courier set yields an empty list, never an
// error: checkout availability wins over error signaling.
func (a *Aggregator) Quote(ctx context.Context, cart Cart, specs []CourierSpec) []Quote {
	start := time.Now()

	if cart.Empty() {
		if a.logg != nil {
			a.logg.Warn(ctx, "empty cart, returning no shipping options")
		}
		a.metrics.ObserveDuration("empty", time.Since(start))
		return []Quote{}
	}

	results := make([][]Quote, len(specs))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, spec := range specs {
		i, spec := i, spec
		group.Go(func() error {
			a.quoteCourier(groupCtx, cart, spec, &results[i])
			return nil
		})
	}
	// Workers never return errors; failures land in logs and metrics.
	_ = group.Wait()

	quotes := make([]Quote, 0, len(specs))
	for _, courierQuotes := range results {
		quotes = append(quotes, courierQuotes...)
	}

	a.metrics.ObserveDuration("ok", time.Since(start))
	return quotes
}

// quoteCourier runs one courier end to end. It recovers panics so a single
// malformed configuration can never take down the other couriers' quotes.
func (a *Aggregator) quoteCourier(ctx context.Context, cart Cart, spec CourierSpec, out *[]Quote) {
	if a.logg != nil {
		ctx = a.logg.WithCourier(ctx, spec.Code)
	}

	defer func() {
		if rec := recover(); rec != nil {
			a.metrics.IncFailure(spec.Code, "panic")
			if a.logg != nil {
				a.logg.Error(ctx, "courier calculation panicked", fmt.Errorf("panic: %v", rec))
			}
		}
	}()

	calculator, err := NewCalculator(spec, a.logg)
	if err != nil {
		a.recordFailure(ctx, spec.Code, err)
		return
	}

	quotes, err := calculator.Quotes(ctx, cart)
	if err != nil {
		a.recordFailure(ctx, spec.Code, err)
		return
	}

	*out = quotes
	a.metrics.AddQuotes(spec.Code, len(quotes))
}

func (a *Aggregator) recordFailure(ctx context.Context, courierCode string, err error) {
	a.metrics.IncFailure(courierCode, FailureReason(err))
	if a.logg != nil {
		a.logg.Warn(a.logg.WithField(ctx, "reason", err.Error()), "courier cannot quote this cart")
	}
}
