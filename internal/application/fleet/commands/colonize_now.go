package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/colonization"
)

// ColonizeNowCommand colonizes the star a fleet orbits without waiting for a turn
type ColonizeNowCommand struct {
	GameID  string `validate:"required"`
	FleetID string `validate:"required"`
}

// ColonizeNowResponse carries the colonization outcome
type ColonizeNowResponse struct {
	Outcome colonization.Outcome
}

// ColonizeNowHandler handles ColonizeNowCommand
type ColonizeNowHandler struct {
	store     *common.GameStore
	colonizer *colonization.Engine
}

// NewColonizeNowHandler creates a new colonize handler
func NewColonizeNowHandler(store *common.GameStore, colonizer *colonization.Engine) *ColonizeNowHandler {
	return &ColonizeNowHandler{store: store, colonizer: colonizer}
}

// Handle executes the colonize command
func (h *ColonizeNowHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ColonizeNowCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	logger := common.LoggerFromContext(ctx)

	state, err := h.store.Load(ctx, cmd.GameID)
	if err != nil {
		return nil, err
	}

	next, outcome := h.colonizer.ColonizeNow(state, cmd.FleetID)
	if !outcome.Colonized {
		logger.Log("WARN", "Colonization rejected", map[string]interface{}{
			"fleet_id": cmd.FleetID,
			"reason":   string(outcome.Reason),
		})
		return &ColonizeNowResponse{Outcome: outcome}, nil
	}

	if _, err := h.store.Commit(ctx, state, next); err != nil {
		return nil, err
	}

	logger.Log("INFO", "Star colonized", map[string]interface{}{
		"fleet_id":       cmd.FleetID,
		"star_id":        outcome.StarID,
		"owner":          outcome.OwnerID.String(),
		"habitability":   outcome.Habitability,
		"max_population": outcome.MaxPopulation,
		"population":     outcome.Population,
		"fleet_removed":  outcome.FleetRemoved,
	})
	return &ColonizeNowResponse{Outcome: outcome}, nil
}
