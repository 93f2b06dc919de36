package usda

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset loading metrics
	loadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trophe_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads in seconds by source scheme",
			Buckets: []float64{.001, .01, .1, .5, 1, 5, 30, 120},
		},
		[]string{"scheme"},
	)
	recordsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trophe_dataset_records_loaded_total",
			Help: "Total number of food records loaded by source scheme",
		},
		[]string{"scheme"},
	)
	recordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trophe_dataset_records_skipped_total",
			Help: "Total number of unusable records skipped during loads by source scheme",
		},
		[]string{"scheme"},
	)
)
