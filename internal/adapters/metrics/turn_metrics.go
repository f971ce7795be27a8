package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/starlanes-go/internal/domain/turn"
)

// TurnMetricsCollector handles turn processing metrics
type TurnMetricsCollector struct {
	turnsTotal      *prometheus.CounterVec
	turnDuration    prometheus.Histogram
	currentTurn     *prometheus.GaugeVec
	fleetsProcessed *prometheus.CounterVec
	fuelConsumed    *prometheus.CounterVec
	fuelAdded       *prometheus.CounterVec
	fleetEvents     *prometheus.CounterVec
}

// NewTurnMetricsCollector creates a new turn metrics collector
func NewTurnMetricsCollector() *TurnMetricsCollector {
	return &TurnMetricsCollector{
		turnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "turns_total",
				Help:      "Total number of turns processed",
			},
			[]string{"game_id"},
		),

		turnDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "turn_duration_seconds",
				Help:      "End-turn processing duration distribution",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),

		currentTurn: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "current_turn",
				Help:      "Turn number each game is on",
			},
			[]string{"game_id"},
		),

		fleetsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fleets_processed_total",
				Help:      "Fleets resolved by turn processing",
			},
			[]string{"player_id"},
		),

		fuelConsumed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fuel_consumed_total",
				Help:      "Fuel burned by fleet movement",
			},
			[]string{"player_id"},
		),

		fuelAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fuel_refueled_total",
				Help:      "Fuel gained by orbital refuelling and ramscoops",
			},
			[]string{"player_id"},
		),

		fleetEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fleet_events_total",
				Help:      "Fleet turn events by kind (moved, arrived, colonized, order_dropped, ...)",
			},
			[]string{"player_id", "kind"},
		),
	}
}

// Register adds the collector's metrics to the global registry
func (c *TurnMetricsCollector) Register() error {
	return register(
		c.turnsTotal,
		c.turnDuration,
		c.currentTurn,
		c.fleetsProcessed,
		c.fuelConsumed,
		c.fuelAdded,
		c.fleetEvents,
	)
}

// RecordTurn implements TurnMetricsRecorder
func (c *TurnMetricsCollector) RecordTurn(gameID string, turnNumber int, duration float64) {
	c.turnsTotal.WithLabelValues(gameID).Inc()
	c.turnDuration.Observe(duration)
	c.currentTurn.WithLabelValues(gameID).Set(float64(turnNumber))
}

// RecordFleetPass implements TurnMetricsRecorder
func (c *TurnMetricsCollector) RecordFleetPass(gameID string, report *turn.Report) {
	player := report.PlayerID.String()
	c.fleetsProcessed.WithLabelValues(player).Add(float64(report.FleetsProcessed))
	c.fuelConsumed.WithLabelValues(player).Add(report.FuelConsumed())
	c.fuelAdded.WithLabelValues(player).Add(report.FuelAdded())
	for _, e := range report.Events {
		c.fleetEvents.WithLabelValues(player, string(e.Kind)).Inc()
	}
}
