package processor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the processor's Prometheus collectors
type Metrics struct {
	updatesProcessed prometheus.Counter
	updateErrors     prometheus.Counter
	alertsFired      *prometheus.CounterVec
	signalCounts     *prometheus.CounterVec
	edgeScores       prometheus.Histogram
	scoringLatency   prometheus.Histogram
}

// NewMetrics registers the processor metrics with the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		updatesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "prop_edge_scorer",
			Name:      "updates_processed_total",
			Help:      "Total stat updates scored",
		}),
		updateErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "prop_edge_scorer",
			Name:      "update_errors_total",
			Help:      "Total stat updates that failed processing",
		}),
		alertsFired: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prop_edge_scorer",
			Name:      "alerts_fired_total",
			Help:      "Total edge alerts fired, by signal tier",
		}, []string{"signal"}),
		signalCounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prop_edge_scorer",
			Name:      "signals_total",
			Help:      "Total scored updates, by signal tier",
		}, []string{"signal"}),
		edgeScores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "prop_edge_scorer",
			Name:      "edge_score",
			Help:      "Distribution of computed edge scores",
			Buckets:   []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 4.0, 6.0, 10.0},
		}),
		scoringLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "prop_edge_scorer",
			Name:      "scoring_latency_seconds",
			Help:      "Time spent scoring and publishing one update",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
