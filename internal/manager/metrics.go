package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	modelLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ruralai",
			Subsystem: "model",
			Name:      "load_attempts_total",
			Help:      "Model load attempts by result",
		},
		[]string{"result"},
	)

	modelLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ruralai",
			Subsystem: "model",
			Name:      "loaded",
			Help:      "1 when a model handle is loaded",
		},
	)

	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ruralai",
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Generation requests by outcome",
		},
		[]string{"outcome"},
	)

	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ruralai",
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Duration of engine completions in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(modelLoadsTotal, modelLoaded, generationsTotal, generationDuration)
}
