package server

import (
	"time"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "teny_requests_total",
		Help: "Total engine requests by op and status",
	}, []string{"op", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "teny_request_duration_seconds",
		Help:    "Engine request duration by op",
		Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}, []string{"op"})

	lexiconEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "teny_lexicon_entries",
		Help: "Entries per lexicon table",
	}, []string{"table"})

	lexiconReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teny_lexicon_reloads_total",
		Help: "Successful lexicon reloads",
	})

	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "teny_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"transport"})
)

func observeRequest(op Op, status string, d time.Duration) {
	if !knownOp(op) {
		op = "unknown"
	}
	requestsTotal.WithLabelValues(string(op), status).Inc()
	requestDuration.WithLabelValues(string(op)).Observe(d.Seconds())
}

// recordLexicon publishes table sizes.
func recordLexicon(lx *lexicon.Lexicon) {
	for table, n := range lx.Stats() {
		lexiconEntries.WithLabelValues(table).Set(float64(n))
	}
}
