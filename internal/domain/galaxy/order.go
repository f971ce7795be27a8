package galaxy

import "github.com/andrescamacho/starlanes-go/internal/domain/shared"

// OrderType discriminates fleet orders
type OrderType string

const (
	OrderMove     OrderType = "MOVE"
	OrderOrbit    OrderType = "ORBIT"
	OrderColonize OrderType = "COLONIZE"
)

// OrbitAction is an optional follow-up of an orbit order
type OrbitAction string

const (
	OrbitActionNone     OrbitAction = ""
	OrbitActionColonize OrbitAction = "colonize"
)

// FleetOrder is one entry of a fleet's FIFO order queue.
//
// Move uses Destination, Orbit uses StarID and Action, Colonize uses StarID.
// Warp is an optional requested warp for Move and Orbit.
type FleetOrder struct {
	Type        OrderType          `json:"type"`
	Destination *shared.Coordinate `json:"destination,omitempty"`
	StarID      string             `json:"star_id,omitempty"`
	Action      OrbitAction        `json:"action,omitempty"`
	Warp        *int               `json:"warp,omitempty"`
}

// MoveOrder travels to a point in space
func MoveOrder(destination shared.Coordinate) FleetOrder {
	return FleetOrder{Type: OrderMove, Destination: &destination}
}

// OrbitOrder travels to and docks at a star
func OrbitOrder(starID string, action OrbitAction) FleetOrder {
	return FleetOrder{Type: OrderOrbit, StarID: starID, Action: action}
}

// ColonizeOrder colonizes the star the fleet orbits
func ColonizeOrder(starID string) FleetOrder {
	return FleetOrder{Type: OrderColonize, StarID: starID}
}

// WithWarp returns a copy of the order requesting warp
func (o FleetOrder) WithWarp(warp int) FleetOrder {
	o.Warp = &warp
	return o
}

// IsMovement reports Move and Orbit orders
func (o FleetOrder) IsMovement() bool {
	return o.Type == OrderMove || o.Type == OrderOrbit
}

func (o FleetOrder) clone() FleetOrder {
	if o.Destination != nil {
		d := *o.Destination
		o.Destination = &d
	}
	if o.Warp != nil {
		w := *o.Warp
		o.Warp = &w
	}
	return o
}
