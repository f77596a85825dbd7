package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total number of completed content analyses",
		},
		[]string{"theme", "platform", "decision"},
	)

	AnalysisImagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_images_total",
			Help: "Images received for analysis by decode result",
		},
		[]string{"result"},
	)

	ClassifierDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_classifier_duration_seconds",
			Help:    "Duration of theme classification in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"classifier"},
	)

	DescriberCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_describer_calls_total",
			Help: "External image describer calls by result",
		},
		[]string{"provider", "result"},
	)
)
