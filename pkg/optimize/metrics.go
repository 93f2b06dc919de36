package optimize

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Selection strategy metrics
	selectorRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trophe_selector_runs_total",
			Help: "Total number of selection runs by strategy",
		},
		[]string{"strategy"},
	)
	selectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trophe_selector_duration_seconds",
			Help:    "Duration of selection runs in seconds by strategy",
			Buckets: []float64{.0001, .001, .01, .1, 1, 10, 60, 300},
		},
		[]string{"strategy"},
	)
	selectorOverflow = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trophe_selector_pool_overflow_total",
			Help: "Total number of exhaustive runs rejected for oversized candidate pools",
		},
	)
)
