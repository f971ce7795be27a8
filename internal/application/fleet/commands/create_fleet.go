package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// CreateFleetCommand creates a one-ship fleet. StarID places it in orbit; otherwise
// Position places it in deep space.
type CreateFleetCommand struct {
	GameID   string             `validate:"required"`
	OwnerID  string             `validate:"required"`
	DesignID string             `validate:"required"`
	StarID   string             `validate:"required_without=Position"`
	Position *shared.Coordinate `validate:"required_without=StarID"`
}

// CreateFleetResponse reports the created fleet; Created is false on a soft no-op
type CreateFleetResponse struct {
	Created bool
	FleetID string
	Name    string
}

// CreateFleetHandler handles CreateFleetCommand
type CreateFleetHandler struct {
	store    *common.GameStore
	registry *fleet.Registry
}

// NewCreateFleetHandler creates a new create fleet handler
func NewCreateFleetHandler(store *common.GameStore, registry *fleet.Registry) *CreateFleetHandler {
	return &CreateFleetHandler{store: store, registry: registry}
}

// Handle executes the create fleet command
func (h *CreateFleetHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateFleetCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	logger := common.LoggerFromContext(ctx)

	owner, err := shared.NewPlayerID(cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	state, err := h.store.Load(ctx, cmd.GameID)
	if err != nil {
		return nil, err
	}
	if _, ok := state.Player(owner); !ok {
		return nil, fmt.Errorf("player %s is not part of game %s", owner, cmd.GameID)
	}

	location := galaxy.InOrbit(cmd.StarID)
	if cmd.StarID == "" {
		location = galaxy.InSpace(*cmd.Position)
	}

	next, created, err := h.registry.CreateFleet(state, owner, cmd.DesignID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create fleet: %w", err)
	}
	if created == nil {
		logger.Log("WARN", "Fleet not created: unknown design or star", map[string]interface{}{
			"game_id":   cmd.GameID,
			"design_id": cmd.DesignID,
			"location":  location.String(),
		})
		return &CreateFleetResponse{}, nil
	}

	if _, err := h.store.Commit(ctx, state, next); err != nil {
		return nil, err
	}

	logger.Log("INFO", "Fleet created", map[string]interface{}{
		"game_id":   cmd.GameID,
		"fleet_id":  created.ID,
		"fleet":     created.Name,
		"owner":     owner.String(),
		"design_id": cmd.DesignID,
	})

	return &CreateFleetResponse{Created: true, FleetID: created.ID, Name: created.Name}, nil
}
