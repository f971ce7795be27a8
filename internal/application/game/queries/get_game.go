package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// GetGameQuery loads a game, at its current turn or at an earlier one
type GetGameQuery struct {
	GameID string `validate:"required"`
	Turn   *int   `validate:"omitempty,min=1"`
}

// GetGameResponse carries the loaded state
type GetGameResponse struct {
	State *galaxy.GameState
}

// ListGamesQuery lists stored games
type ListGamesQuery struct{}

// ListGamesResponse carries the stored games
type ListGamesResponse struct {
	Games []galaxy.GameSummary
}

// GameQueryHandler handles GetGameQuery and ListGamesQuery
type GameQueryHandler struct {
	repo galaxy.GameRepository
}

// NewGameQueryHandler creates a new game query handler
func NewGameQueryHandler(repo galaxy.GameRepository) *GameQueryHandler {
	return &GameQueryHandler{repo: repo}
}

// Handle executes a game query
func (h *GameQueryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch query := request.(type) {
	case *GetGameQuery:
		var state *galaxy.GameState
		var err error
		if query.Turn != nil {
			state, err = h.repo.LoadTurn(ctx, query.GameID, *query.Turn)
		} else {
			state, err = h.repo.Load(ctx, query.GameID)
		}
		if err != nil {
			return nil, err
		}
		return &GetGameResponse{State: state}, nil

	case *ListGamesQuery:
		games, err := h.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return &ListGamesResponse{Games: games}, nil
	}
	return nil, fmt.Errorf("invalid request type")
}
