package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records aggregate quoting behavior: how long a full
// multi-courier quote takes, and per-courier success/failure counts.
type QuoteMetrics struct {
	duration *prometheus.HistogramVec
	quotes   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_duration_seconds",
		Help:    "Duration of full multi-courier quote requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courier_quotes_total",
		Help: "Quotes produced, labelled by courier.",
	}, []string{"courier"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courier_failures_total",
		Help: "Couriers that contributed zero quotes, labelled by courier and reason.",
	}, []string{"courier", "reason"})
	reg.MustRegister(duration, quotes, failures)
	return &QuoteMetrics{
		duration: duration,
		quotes:   quotes,
		failures: failures,
	}
}

// ObserveDuration records the wall time of one quote request.
func (q *QuoteMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	q.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// AddQuotes counts quotes contributed by the named courier.
func (q *QuoteMetrics) AddQuotes(courier string, count int) {
	if q == nil || q.quotes == nil || count <= 0 {
		return
	}
	q.quotes.WithLabelValues(normalizeLabel(courier)).Add(float64(count))
}

// IncFailure counts an isolated courier failure.
func (q *QuoteMetrics) IncFailure(courier, reason string) {
	if q == nil || q.failures == nil {
		return
	}
	q.failures.WithLabelValues(normalizeLabel(courier), normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
