package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// GormGameRepository implements galaxy.GameRepository using GORM.
// Every turn of a game is kept as its own compressed snapshot row.
type GormGameRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormGameRepository creates a new GORM game repository
func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return NewGormGameRepositoryWithClock(db, shared.NewRealClock())
}

// NewGormGameRepositoryWithClock creates a repository that stamps rows with clock
func NewGormGameRepositoryWithClock(db *gorm.DB, clock shared.Clock) *GormGameRepository {
	return &GormGameRepository{db: db, clock: clock}
}

// Save upserts the game row and the snapshot of the state's current turn
func (r *GormGameRepository) Save(ctx context.Context, state *galaxy.GameState) error {
	encoded, err := encodeSnapshot(state)
	if err != nil {
		return err
	}
	now := r.clock.Now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkNotStale(tx, state); err != nil {
			return err
		}

		game := GameModel{
			ID:          state.ID,
			Name:        state.Name,
			CurrentTurn: state.Turn,
			HumanPlayer: state.HumanPlayer.ID.String(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "current_turn", "updated_at"}),
		}).Create(&game)
		if result.Error != nil {
			return fmt.Errorf("failed to save game: %w", result.Error)
		}

		snapshot := GameSnapshotModel{
			ID:         uuid.NewString(),
			GameID:     state.ID,
			Turn:       state.Turn,
			Payload:    encoded.Payload,
			RawSize:    encoded.RawSize,
			Checksum:   encoded.Checksum,
			FleetCount: len(state.Fleets),
			OwnedStars: countOwnedStars(state),
			CreatedAt:  now,
		}
		result = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "game_id"}, {Name: "turn"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"payload", "raw_size", "checksum", "fleet_count", "owned_stars", "created_at",
			}),
		}).Create(&snapshot)
		if result.Error != nil {
			return fmt.Errorf("failed to save snapshot for turn %d: %w", state.Turn, result.Error)
		}
		return nil
	})
}

// checkNotStale refuses a save that would roll games.current_turn back, e.g. an
// order issued against turn N landing after the end of turn N was stored
func checkNotStale(tx *gorm.DB, state *galaxy.GameState) error {
	query := tx.Select("current_turn").Where("id = ?", state.ID)
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var stored GameModel
	result := query.Limit(1).Find(&stored)
	if result.Error != nil {
		return fmt.Errorf("failed to read game: %w", result.Error)
	}
	if result.RowsAffected > 0 && stored.CurrentTurn > state.Turn {
		return fmt.Errorf("%w: game %s is at turn %d, save is for turn %d",
			shared.ErrStaleTurn, state.ID, stored.CurrentTurn, state.Turn)
	}
	return nil
}

// Load returns the newest snapshot of a game
func (r *GormGameRepository) Load(ctx context.Context, gameID string) (*galaxy.GameState, error) {
	var snapshot GameSnapshotModel
	result := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("turn DESC").
		First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game not found: %s", gameID)
		}
		return nil, fmt.Errorf("failed to load game: %w", result.Error)
	}
	return r.modelToState(&snapshot)
}

// LoadTurn returns the snapshot of a specific turn
func (r *GormGameRepository) LoadTurn(ctx context.Context, gameID string, turn int) (*galaxy.GameState, error) {
	var snapshot GameSnapshotModel
	result := r.db.WithContext(ctx).
		Where("game_id = ? AND turn = ?", gameID, turn).
		First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("turn %d of game %s not found", turn, gameID)
		}
		return nil, fmt.Errorf("failed to load turn: %w", result.Error)
	}
	return r.modelToState(&snapshot)
}

// List summarises all stored games
func (r *GormGameRepository) List(ctx context.Context) ([]galaxy.GameSummary, error) {
	var models []GameModel
	result := r.db.WithContext(ctx).Order("updated_at DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list games: %w", result.Error)
	}

	summaries := make([]galaxy.GameSummary, 0, len(models))
	for _, m := range models {
		summaries = append(summaries, galaxy.GameSummary{
			ID:        m.ID,
			Name:      m.Name,
			Turn:      m.CurrentTurn,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return summaries, nil
}

func (r *GormGameRepository) modelToState(model *GameSnapshotModel) (*galaxy.GameState, error) {
	state, err := decodeSnapshot(model.Payload, model.Checksum)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s (game %s, turn %d): %w", model.ID, model.GameID, model.Turn, err)
	}
	return state, nil
}

func countOwnedStars(state *galaxy.GameState) int {
	n := 0
	for _, s := range state.Stars {
		if s.IsOwned() {
			n++
		}
	}
	return n
}
