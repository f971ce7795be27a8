package galaxy

import (
	"context"
	"time"
)

// GameRepository persists game snapshots, one per turn
type GameRepository interface {
	// Save stores state as the snapshot of its current turn, replacing any earlier
	// snapshot of the same turn. A state older than the stored current turn is
	// refused with shared.ErrStaleTurn.
	Save(ctx context.Context, state *GameState) error

	// Load returns the newest snapshot of a game
	Load(ctx context.Context, gameID string) (*GameState, error)

	// LoadTurn returns the snapshot taken at turn
	LoadTurn(ctx context.Context, gameID string, turn int) (*GameState, error)

	// List summarises stored games, most recently updated first
	List(ctx context.Context) ([]GameSummary, error)
}

// GameSummary is a listing entry of a stored game
type GameSummary struct {
	ID        string
	Name      string
	Turn      int
	UpdatedAt time.Time
}
