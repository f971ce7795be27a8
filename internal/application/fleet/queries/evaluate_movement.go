package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
)

// EvaluateMovementQuery previews a trip without issuing it
type EvaluateMovementQuery struct {
	GameID      string `validate:"required"`
	FleetID     string `validate:"required"`
	Destination navigation.Destination
}

// EvaluateMovementResponse carries the evaluation and the fleet's movement stats
type EvaluateMovementResponse struct {
	Evaluation navigation.MovementEvaluation
	Stats      navigation.MovementStats
}

// EvaluateMovementHandler handles EvaluateMovementQuery
type EvaluateMovementHandler struct {
	store   *common.GameStore
	engines *design.EngineTable
}

// NewEvaluateMovementHandler creates a new movement evaluation handler
func NewEvaluateMovementHandler(store *common.GameStore, engines *design.EngineTable) *EvaluateMovementHandler {
	return &EvaluateMovementHandler{store: store, engines: engines}
}

// Handle executes the evaluation
func (h *EvaluateMovementHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*EvaluateMovementQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *EvaluateMovementQuery")
	}

	state, err := h.store.Load(ctx, query.GameID)
	if err != nil {
		return nil, err
	}
	f := state.Fleet(query.FleetID)
	if f == nil {
		return nil, fmt.Errorf("fleet not found: %s", query.FleetID)
	}

	designs := state.DesignRegistry()
	stats := navigation.NewMovementStatsCalculator(designs).Stats(f)
	validator := navigation.NewMovementValidator(navigation.NewFuelCalculator(designs, h.engines))

	return &EvaluateMovementResponse{
		Evaluation: validator.Evaluate(state, f, query.Destination, stats),
		Stats:      stats,
	}, nil
}
