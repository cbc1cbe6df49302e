package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	predictionsByClass = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irisd",
			Subsystem: "model",
			Name:      "predictions_total",
			Help:      "Total predictions served, by model and predicted class",
		},
		[]string{"model", "class"},
	)

	modelLoadSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "irisd",
			Subsystem: "model",
			Name:      "load_duration_seconds",
			Help:      "Time spent loading model artifacts",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"model"},
	)
)

func init() {
	prometheus.MustRegister(predictionsByClass, modelLoadSeconds)
}

func countPrediction(model, class string) {
	predictionsByClass.WithLabelValues(model, class).Inc()
}

func observeModelLoad(model string, d time.Duration) {
	modelLoadSeconds.WithLabelValues(model).Observe(d.Seconds())
}
