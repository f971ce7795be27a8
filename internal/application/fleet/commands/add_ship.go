package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
)

// AddShipCommand adds Count ships of a design to a fleet
type AddShipCommand struct {
	GameID   string `validate:"required"`
	FleetID  string `validate:"required"`
	DesignID string `validate:"required"`
	Count    int    `validate:"min=1"`
}

// AddShipResponse reports the fleet's ship count after the command
type AddShipResponse struct {
	Applied   bool
	ShipCount int
	Fuel      float64
}

// AddShipHandler handles AddShipCommand
type AddShipHandler struct {
	store    *common.GameStore
	registry *fleet.Registry
}

// NewAddShipHandler creates a new add ship handler
func NewAddShipHandler(store *common.GameStore, registry *fleet.Registry) *AddShipHandler {
	return &AddShipHandler{store: store, registry: registry}
}

// Handle executes the add ship command
func (h *AddShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	state, err := h.store.Load(ctx, cmd.GameID)
	if err != nil {
		return nil, err
	}

	next, err := h.registry.AddShipToFleet(state, cmd.FleetID, cmd.DesignID, cmd.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to add ships to fleet %s: %w", cmd.FleetID, err)
	}

	applied, err := h.store.Commit(ctx, state, next)
	if err != nil {
		return nil, err
	}
	if !applied {
		common.LoggerFromContext(ctx).Log("WARN", "Ships not added: unknown fleet or design", map[string]interface{}{
			"fleet_id":  cmd.FleetID,
			"design_id": cmd.DesignID,
		})
		return &AddShipResponse{}, nil
	}

	f := next.Fleet(cmd.FleetID)
	return &AddShipResponse{Applied: true, ShipCount: f.ShipCount(), Fuel: f.Fuel}, nil
}
