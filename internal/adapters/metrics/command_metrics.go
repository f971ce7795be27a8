package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector counts and times mediator requests
type CommandMetricsCollector struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	labels := []string{"request", "status"}
	return &CommandMetricsCollector{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "mediator",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a command or query, middlewares included",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, labels),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mediator",
			Name:      "requests_total",
			Help:      "Commands and queries handled, by outcome",
		}, labels),
	}
}

// Register adds the collector's metrics to the global registry
func (c *CommandMetricsCollector) Register() error {
	return register(c.duration, c.total)
}

// RecordCommandExecution records one handled request
func (c *CommandMetricsCollector) RecordCommandExecution(requestName string, seconds float64, success bool) {
	status := "ok"
	if !success {
		status = "error"
	}
	c.duration.WithLabelValues(requestName, status).Observe(seconds)
	c.total.WithLabelValues(requestName, status).Inc()
}
