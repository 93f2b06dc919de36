package plan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Document build metrics
	buildTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trophe_plan_builds_total",
			Help: "Total number of document builds by kind and status",
		},
		[]string{"kind", "status"},
	)
	buildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trophe_plan_build_duration_seconds",
			Help:    "Duration of document builds in seconds by kind",
			Buckets: []float64{.001, .01, .1, 1, 10, 60, 300},
		},
		[]string{"kind"},
	)
)
