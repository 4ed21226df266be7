package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkouts counts settled and rejected checkouts by outcome.
var Checkouts = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pos",
	Subsystem: "settlement",
	Name:      "checkouts_total",
	Help:      "Total number of checkout attempts by outcome.",
}, []string{"outcome"})

// CheckoutDuration tracks end-to-end checkout latency in milliseconds.
var CheckoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Namespace: "pos",
	Subsystem: "settlement",
	Name:      "checkout_duration_ms",
	Help:      "Checkout latency in milliseconds.",
	Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
})

func init() {
	prometheus.MustRegister(Checkouts, CheckoutDuration)
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
