package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// IssueFleetOrderCommand appends an order to a fleet's queue
type IssueFleetOrderCommand struct {
	GameID  string `validate:"required"`
	FleetID string `validate:"required"`
	Order   galaxy.FleetOrder
}

// SetFleetOrdersCommand replaces a fleet's queue
type SetFleetOrdersCommand struct {
	GameID  string `validate:"required"`
	FleetID string `validate:"required"`
	Orders  []galaxy.FleetOrder
}

// FleetOrdersResponse carries the fleet's queue after the command
type FleetOrdersResponse struct {
	Applied bool
	Orders  []galaxy.FleetOrder
}

// FleetOrdersHandler handles IssueFleetOrderCommand and SetFleetOrdersCommand
type FleetOrdersHandler struct {
	store    *common.GameStore
	registry *fleet.Registry
}

// NewFleetOrdersHandler creates a new fleet orders handler
func NewFleetOrdersHandler(store *common.GameStore, registry *fleet.Registry) *FleetOrdersHandler {
	return &FleetOrdersHandler{store: store, registry: registry}
}

// Handle executes either order command
func (h *FleetOrdersHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	var gameID, fleetID string
	var apply func(*galaxy.GameState) (*galaxy.GameState, error)

	switch cmd := request.(type) {
	case *IssueFleetOrderCommand:
		gameID, fleetID = cmd.GameID, cmd.FleetID
		apply = func(s *galaxy.GameState) (*galaxy.GameState, error) {
			return h.registry.IssueOrder(s, cmd.FleetID, cmd.Order)
		}
	case *SetFleetOrdersCommand:
		gameID, fleetID = cmd.GameID, cmd.FleetID
		apply = func(s *galaxy.GameState) (*galaxy.GameState, error) {
			return h.registry.SetOrders(s, cmd.FleetID, cmd.Orders)
		}
	default:
		return nil, fmt.Errorf("invalid request type")
	}

	state, err := h.store.Load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	next, err := apply(state)
	if err != nil {
		return nil, err
	}
	applied, err := h.store.Commit(ctx, state, next)
	if err != nil {
		return nil, err
	}
	if !applied {
		common.LoggerFromContext(ctx).Log("WARN", "Orders not changed: unknown fleet", map[string]interface{}{
			"game_id":  gameID,
			"fleet_id": fleetID,
		})
		return &FleetOrdersResponse{}, nil
	}

	return &FleetOrdersResponse{Applied: true, Orders: next.Fleet(fleetID).Orders}, nil
}
