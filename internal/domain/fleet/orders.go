package fleet

import (
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// ValidateOrder checks an order is well formed. Whether its star still exists is
// decided when the order is executed.
func ValidateOrder(order galaxy.FleetOrder) error {
	switch order.Type {
	case galaxy.OrderMove:
		if order.Destination == nil {
			return shared.NewValidationError("destination", "move order requires coordinates")
		}
	case galaxy.OrderOrbit:
		if order.StarID == "" {
			return shared.NewValidationError("star_id", "orbit order requires a star")
		}
		if order.Action != galaxy.OrbitActionNone && order.Action != galaxy.OrbitActionColonize {
			return shared.NewValidationError("action", fmt.Sprintf("unknown orbit action %q", order.Action))
		}
	case galaxy.OrderColonize:
		if order.StarID == "" {
			return shared.NewValidationError("star_id", "colonize order requires a star")
		}
	default:
		return shared.NewValidationError("type", fmt.Sprintf("unknown order type %q", order.Type))
	}
	if order.Warp != nil && (*order.Warp < 1 || *order.Warp > design.MaxWarp) {
		return shared.NewValidationError("warp", fmt.Sprintf("warp must be between 1 and %d", design.MaxWarp))
	}
	return nil
}

// IssueOrder appends order to the fleet's queue
func (r *Registry) IssueOrder(state *galaxy.GameState, fleetID string, order galaxy.FleetOrder) (*galaxy.GameState, error) {
	if err := ValidateOrder(order); err != nil {
		return state, err
	}
	if state.Fleet(fleetID) == nil {
		return state, nil
	}
	next := state.Clone()
	f := next.Fleet(fleetID)
	f.Orders = append(f.Orders, order)
	return next, nil
}

// SetOrders replaces the fleet's queue; an empty list clears it
func (r *Registry) SetOrders(state *galaxy.GameState, fleetID string, orders []galaxy.FleetOrder) (*galaxy.GameState, error) {
	for _, order := range orders {
		if err := ValidateOrder(order); err != nil {
			return state, err
		}
	}
	if state.Fleet(fleetID) == nil {
		return state, nil
	}
	next := state.Clone()
	f := next.Fleet(fleetID)
	f.Orders = append([]galaxy.FleetOrder{}, orders...)
	return next, nil
}
