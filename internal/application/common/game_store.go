package common

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// GameStore loads game states for handlers and persists the states they produce
type GameStore struct {
	repo galaxy.GameRepository
}

// NewGameStore creates a game store over a repository
func NewGameStore(repo galaxy.GameRepository) *GameStore {
	return &GameStore{repo: repo}
}

// Load returns the current state of a game
func (s *GameStore) Load(ctx context.Context, gameID string) (*galaxy.GameState, error) {
	state, err := s.repo.Load(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game %s: %w", gameID, err)
	}
	return state, nil
}

// Commit saves next unless the command returned the state it was given, which is
// how domain operations signal a soft no-op. It reports whether anything was saved.
func (s *GameStore) Commit(ctx context.Context, before, next *galaxy.GameState) (bool, error) {
	if next == nil || next == before {
		return false, nil
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return false, fmt.Errorf("failed to save game %s: %w", next.ID, err)
	}
	return true, nil
}
