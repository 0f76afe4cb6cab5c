package telemetry

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anyulbade/payment-fee-estimator/internal/fees"
)

type Metrics struct {
	estimates *prometheus.CounterVec
	batchSize prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fee_estimator",
			Name:      "estimates_total",
			Help:      "Fee estimates returned, by payment method category and exactness.",
		}, []string{"category", "exact"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fee_estimator",
			Name:      "batch_size",
			Help:      "Number of items per batch estimate request, rejected batches included.",
			Buckets:   []float64{1, 5, 10, 50, 100, 250, 500},
		}),
	}
	reg.MustRegister(m.estimates, m.batchSize)
	return m
}

func (m *Metrics) RecordEstimate(category fees.Category, exact bool) {
	m.estimates.WithLabelValues(category.String(), strconv.FormatBool(exact)).Inc()
}

func (m *Metrics) RecordBatch(size int) {
	m.batchSize.Observe(float64(size))
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Noop discards everything. Used where no registry is wired.
type Noop struct{}

func (Noop) RecordEstimate(fees.Category, bool) {}
func (Noop) RecordBatch(int)                    {}
