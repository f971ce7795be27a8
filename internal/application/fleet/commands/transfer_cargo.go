package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/cargo"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// LoadCargoCommand moves cargo from a star into a fleet orbiting it
type LoadCargoCommand struct {
	GameID   string         `validate:"required"`
	FleetID  string         `validate:"required"`
	StarID   string         `validate:"required"`
	Manifest cargo.Manifest `validate:"required,min=1"`
}

// UnloadCargoCommand moves cargo from a fleet onto the star it orbits
type UnloadCargoCommand struct {
	GameID   string         `validate:"required"`
	FleetID  string         `validate:"required"`
	StarID   string         `validate:"required"`
	Manifest cargo.Manifest `validate:"required,min=1"`
}

// CargoTransferResponse reports the amounts moved per item
type CargoTransferResponse struct {
	Moved cargo.Moved
}

// CargoTransferHandler handles LoadCargoCommand and UnloadCargoCommand
type CargoTransferHandler struct {
	store  *common.GameStore
	engine *cargo.Engine
}

// NewCargoTransferHandler creates a new cargo transfer handler
func NewCargoTransferHandler(store *common.GameStore, engine *cargo.Engine) *CargoTransferHandler {
	return &CargoTransferHandler{store: store, engine: engine}
}

// Handle executes either cargo command
func (h *CargoTransferHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	var gameID, fleetID, starID, direction string
	var apply func(*galaxy.GameState) (*galaxy.GameState, cargo.Moved, error)

	switch cmd := request.(type) {
	case *LoadCargoCommand:
		gameID, fleetID, starID, direction = cmd.GameID, cmd.FleetID, cmd.StarID, "load"
		apply = func(s *galaxy.GameState) (*galaxy.GameState, cargo.Moved, error) {
			return h.engine.LoadCargo(s, cmd.FleetID, cmd.StarID, cmd.Manifest)
		}
	case *UnloadCargoCommand:
		gameID, fleetID, starID, direction = cmd.GameID, cmd.FleetID, cmd.StarID, "unload"
		apply = func(s *galaxy.GameState) (*galaxy.GameState, cargo.Moved, error) {
			return h.engine.UnloadCargo(s, cmd.FleetID, cmd.StarID, cmd.Manifest)
		}
	default:
		return nil, fmt.Errorf("invalid request type")
	}
	logger := common.LoggerFromContext(ctx)

	state, err := h.store.Load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	next, moved, err := apply(state)
	if err != nil {
		return nil, fmt.Errorf("failed to %s cargo: %w", direction, err)
	}
	if _, err := h.store.Commit(ctx, state, next); err != nil {
		return nil, err
	}

	if len(moved) == 0 {
		logger.Log("WARN", "No cargo moved", map[string]interface{}{
			"direction": direction,
			"fleet_id":  fleetID,
			"star_id":   starID,
		})
	} else {
		metadata := map[string]interface{}{"direction": direction, "fleet_id": fleetID, "star_id": starID}
		for item, amount := range moved {
			metadata[string(item)] = amount
		}
		logger.Log("INFO", "Cargo transferred", metadata)
	}
	return &CargoTransferResponse{Moved: moved}, nil
}
