package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// TransferCommand moves ships, fuel and cargo between two co-located fleets
type TransferCommand struct {
	GameID        string `validate:"required"`
	SourceFleetID string `validate:"required"`
	TargetFleetID string `validate:"required,nefield=SourceFleetID"`
	Spec          fleet.TransferSpec
}

// SplitFleetCommand moves part of a fleet into a new fleet
type SplitFleetCommand struct {
	GameID  string `validate:"required"`
	FleetID string `validate:"required"`
	Spec    fleet.TransferSpec
}

// SeparateFleetCommand splits a fleet into one-ship fleets
type SeparateFleetCommand struct {
	GameID  string `validate:"required"`
	FleetID string `validate:"required"`
}

// MergeFleetsCommand empties the source fleets into the target
type MergeFleetsCommand struct {
	GameID         string   `validate:"required"`
	TargetFleetID  string   `validate:"required"`
	SourceFleetIDs []string `validate:"required,min=1,dive,required"`
}

// DecommissionFleetCommand removes a fleet from the game
type DecommissionFleetCommand struct {
	GameID  string `validate:"required"`
	FleetID string `validate:"required"`
}

// ReorganizeResponse reports the outcome of a fleet reorganization.
// CreatedFleetIDs lists fleets born from a split or separate.
type ReorganizeResponse struct {
	Applied         bool
	CreatedFleetIDs []string
}

// ReorganizeFleetsHandler handles the transfer, split, separate, merge and
// decommission commands, all of which are compositions over fleet.Registry.
type ReorganizeFleetsHandler struct {
	store    *common.GameStore
	registry *fleet.Registry
}

// NewReorganizeFleetsHandler creates a new fleet reorganization handler
func NewReorganizeFleetsHandler(store *common.GameStore, registry *fleet.Registry) *ReorganizeFleetsHandler {
	return &ReorganizeFleetsHandler{store: store, registry: registry}
}

type reorganization struct {
	name   string
	gameID string
	apply  func(*galaxy.GameState) (*galaxy.GameState, []string, error)
}

// Handle executes a reorganization command
func (h *ReorganizeFleetsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	op, err := h.resolve(request)
	if err != nil {
		return nil, err
	}
	logger := common.LoggerFromContext(ctx)

	state, err := h.store.Load(ctx, op.gameID)
	if err != nil {
		return nil, err
	}
	next, created, err := op.apply(state)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", op.name, err)
	}
	applied, err := h.store.Commit(ctx, state, next)
	if err != nil {
		return nil, err
	}

	if !applied {
		logger.Log("WARN", fmt.Sprintf("%s had no effect", op.name), map[string]interface{}{
			"game_id": op.gameID,
		})
		return &ReorganizeResponse{}, nil
	}
	logger.Log("INFO", fmt.Sprintf("%s applied", op.name), map[string]interface{}{
		"game_id":        op.gameID,
		"created_fleets": created,
	})
	return &ReorganizeResponse{Applied: true, CreatedFleetIDs: created}, nil
}

func (h *ReorganizeFleetsHandler) resolve(request common.Request) (*reorganization, error) {
	switch cmd := request.(type) {
	case *TransferCommand:
		return &reorganization{name: "Transfer", gameID: cmd.GameID,
			apply: func(s *galaxy.GameState) (*galaxy.GameState, []string, error) {
				next, err := h.registry.Transfer(s, cmd.SourceFleetID, cmd.TargetFleetID, cmd.Spec)
				return next, nil, err
			}}, nil

	case *SplitFleetCommand:
		return &reorganization{name: "Split", gameID: cmd.GameID,
			apply: func(s *galaxy.GameState) (*galaxy.GameState, []string, error) {
				next, split, err := h.registry.SplitFleet(s, cmd.FleetID, cmd.Spec)
				if err != nil || split == nil {
					return next, nil, err
				}
				return next, []string{split.ID}, nil
			}}, nil

	case *SeparateFleetCommand:
		return &reorganization{name: "Separate", gameID: cmd.GameID,
			apply: func(s *galaxy.GameState) (*galaxy.GameState, []string, error) {
				next, fleets, err := h.registry.SeparateFleet(s, cmd.FleetID)
				ids := make([]string, 0, len(fleets))
				for _, f := range fleets {
					ids = append(ids, f.ID)
				}
				return next, ids, err
			}}, nil

	case *MergeFleetsCommand:
		return &reorganization{name: "Merge", gameID: cmd.GameID,
			apply: func(s *galaxy.GameState) (*galaxy.GameState, []string, error) {
				next, err := h.registry.MergeFleets(s, cmd.TargetFleetID, cmd.SourceFleetIDs)
				return next, nil, err
			}}, nil

	case *DecommissionFleetCommand:
		return &reorganization{name: "Decommission", gameID: cmd.GameID,
			apply: func(s *galaxy.GameState) (*galaxy.GameState, []string, error) {
				next, err := h.registry.DecommissionFleet(s, cmd.FleetID)
				return next, nil, err
			}}, nil
	}
	return nil, fmt.Errorf("invalid request type")
}
