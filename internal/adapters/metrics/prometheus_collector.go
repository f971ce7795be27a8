package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/starlanes-go/internal/domain/turn"
)

const (
	// Namespace for all metrics
	namespace = "starlanes"
	// Subsystem for turn engine metrics
	subsystem = "engine"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalTurnCollector is set by SetGlobalTurnCollector when metrics are enabled
	globalTurnCollector TurnMetricsRecorder
)

// TurnMetricsRecorder records the outcome of turn processing
type TurnMetricsRecorder interface {
	RecordTurn(gameID string, turnNumber int, duration float64)
	RecordFleetPass(gameID string, report *turn.Report)
}

// InitRegistry initializes the Prometheus registry.
// Should be called once at startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// register adds collectors to the global registry; a no-op while metrics are off
func register(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil
	}
	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextfile dumps the registry in the Prometheus text format, for the
// node_exporter textfile collector. The CLI is short lived, so there is no scrape endpoint.
func WriteTextfile(path string) error {
	if Registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// SetGlobalTurnCollector sets the global turn metrics collector
func SetGlobalTurnCollector(collector TurnMetricsRecorder) {
	globalTurnCollector = collector
}

// RecordTurn records a completed turn globally
func RecordTurn(gameID string, turnNumber int, duration float64) {
	if globalTurnCollector != nil {
		globalTurnCollector.RecordTurn(gameID, turnNumber, duration)
	}
}

// RecordFleetPass records one player's ProcessFleets report globally
func RecordFleetPass(gameID string, report *turn.Report) {
	if globalTurnCollector != nil && report != nil {
		globalTurnCollector.RecordFleetPass(gameID, report)
	}
}
