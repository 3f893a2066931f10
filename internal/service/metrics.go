package service

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver counts and times use cases in a Prometheus registry.
type MetricsObserver struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsObserver registers the use-case collectors on reg, or on a fresh
// registry when reg is nil.
func NewMetricsObserver(reg *prometheus.Registry) *MetricsObserver {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &MetricsObserver{
		registry: reg,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roadmap_use_case_total",
				Help: "Total number of service use cases executed",
			},
			[]string{"use_case", "success"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roadmap_use_case_duration_seconds",
				Help:    "Duration of service use cases",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"use_case"},
		),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

func (m *MetricsObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	m.calls.WithLabelValues(event.Name, strconv.FormatBool(event.Success)).Inc()
	m.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// Registry exposes the registry the collectors live in.
func (m *MetricsObserver) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes the registry in the text exposition format, for the
// node_exporter textfile collector.
func (m *MetricsObserver) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
