package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/starlanes-go/internal/adapters/metrics"
	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/turn"
)

// EndTurnCommand resolves every player's fleets and advances the game one turn
type EndTurnCommand struct {
	GameID string `validate:"required"`
}

// EndTurnResponse carries the new turn number and one report per player
type EndTurnResponse struct {
	Turn    int
	Reports []*turn.Report
}

// EndTurnHandler handles EndTurnCommand
type EndTurnHandler struct {
	store     *common.GameStore
	processor *turn.Processor
}

// NewEndTurnHandler creates a new end turn handler
func NewEndTurnHandler(store *common.GameStore, processor *turn.Processor) *EndTurnHandler {
	return &EndTurnHandler{store: store, processor: processor}
}

// Handle processes the human player first, then the AI players in order. Each pass
// sees the state the previous one produced. Nothing is saved unless every pass succeeds.
func (h *EndTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*EndTurnCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	logger := common.LoggerFromContext(ctx)
	start := time.Now()

	state, err := h.store.Load(ctx, cmd.GameID)
	if err != nil {
		return nil, err
	}

	next := state
	var reports []*turn.Report
	for _, player := range state.Players() {
		processed, report, err := h.processor.ProcessFleets(next, player.ID)
		if err != nil {
			logger.Log("ERROR", "Turn processing failed", map[string]interface{}{
				"game_id":   cmd.GameID,
				"turn":      state.Turn,
				"player_id": player.ID.String(),
				"error":     err.Error(),
			})
			return nil, fmt.Errorf("turn %d aborted while processing %s: %w", state.Turn, player.ID, err)
		}
		next = processed
		reports = append(reports, report)
		logReport(logger, report)
	}

	if next == state {
		next = state.Clone()
	}
	next.Turn = state.Turn + 1

	if _, err := h.store.Commit(ctx, state, next); err != nil {
		return nil, err
	}

	for _, report := range reports {
		metrics.RecordFleetPass(cmd.GameID, report)
	}
	metrics.RecordTurn(cmd.GameID, next.Turn, time.Since(start).Seconds())

	logger.Log("INFO", "Turn ended", map[string]interface{}{
		"game_id":     cmd.GameID,
		"new_turn":    next.Turn,
		"players":     len(reports),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return &EndTurnResponse{Turn: next.Turn, Reports: reports}, nil
}

func logReport(logger common.HandlerLogger, report *turn.Report) {
	for _, e := range report.Events {
		fields := map[string]interface{}{
			"player_id": report.PlayerID.String(),
			"fleet_id":  e.FleetID,
			"event":     string(e.Kind),
		}
		if e.StarID != "" {
			fields["star_id"] = e.StarID
		}
		if e.Kind == turn.EventMoved || e.Kind == turn.EventArrived {
			fields["warp"] = e.Warp
			fields["distance"] = e.Step
			fields["fuel_burned"] = e.FuelBurned
		}
		if e.Kind == turn.EventRefueled {
			fields["fuel_added"] = e.FuelAdded
		}

		switch e.Kind {
		case turn.EventOrderDropped, turn.EventColonizeRejected:
			fields["reason"] = e.Reason
			logger.Log("WARN", "Fleet order dropped", fields)
		default:
			logger.Log("DEBUG", "Fleet turn event", fields)
		}
	}

	logger.Log("INFO", "Fleets processed", map[string]interface{}{
		"player_id":     report.PlayerID.String(),
		"fleets":        report.FleetsProcessed,
		"arrivals":      report.Count(turn.EventArrived),
		"colonizations": report.Count(turn.EventColonized),
		"dropped":       report.Count(turn.EventOrderDropped),
		"fuel_consumed": report.FuelConsumed(),
	})
}
