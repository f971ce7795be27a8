package turn

import "github.com/andrescamacho/starlanes-go/internal/domain/shared"

// EventKind classifies what happened to a fleet during a turn
type EventKind string

const (
	EventRefueled         EventKind = "refueled"
	EventMoved            EventKind = "moved"
	EventArrived          EventKind = "arrived"
	EventOrderDropped     EventKind = "order_dropped"
	EventColonized        EventKind = "colonized"
	EventColonizeRejected EventKind = "colonize_rejected"
)

// Event is one step of a fleet's turn
type Event struct {
	FleetID    string
	Kind       EventKind
	StarID     string
	Warp       int
	Step       float64
	FuelBurned float64
	FuelAdded  float64
	Reason     string
}

// Report summarises one ProcessFleets pass
type Report struct {
	PlayerID        shared.PlayerID
	FleetsProcessed int
	Events          []Event
}

func (r *Report) add(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns the number of events of kind
func (r *Report) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// FuelConsumed totals the fuel burned by movement
func (r *Report) FuelConsumed() float64 {
	total := 0.0
	for _, e := range r.Events {
		total += e.FuelBurned
	}
	return total
}

// FuelAdded totals the fuel gained by refuelling
func (r *Report) FuelAdded() float64 {
	total := 0.0
	for _, e := range r.Events {
		total += e.FuelAdded
	}
	return total
}
