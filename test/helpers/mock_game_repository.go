package helpers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// MockGameRepository is an in-memory test double for galaxy.GameRepository.
// States are cloned on the way in and out so tests cannot alias stored snapshots.
type MockGameRepository struct {
	mu        sync.RWMutex
	snapshots map[string]map[int]*galaxy.GameState // gameID -> turn -> state
	updated   map[string]time.Time
	clock     shared.Clock
	saveErr   error
	saves     int
}

// NewMockGameRepository creates a new mock game repository
func NewMockGameRepository() *MockGameRepository {
	return &MockGameRepository{
		snapshots: make(map[string]map[int]*galaxy.GameState),
		updated:   make(map[string]time.Time),
		clock:     shared.NewRealClock(),
	}
}

// FailSavesWith makes every following Save return err; nil restores normal behaviour
func (m *MockGameRepository) FailSavesWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// SaveCount reports how many saves succeeded
func (m *MockGameRepository) SaveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// Save stores a clone of state under its current turn
func (m *MockGameRepository) Save(ctx context.Context, state *galaxy.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	turns, ok := m.snapshots[state.ID]
	for turn := range turns {
		if turn > state.Turn {
			return fmt.Errorf("%w: game %s is at turn %d", shared.ErrStaleTurn, state.ID, turn)
		}
	}
	if !ok {
		turns = make(map[int]*galaxy.GameState)
		m.snapshots[state.ID] = turns
	}
	turns[state.Turn] = state.Clone()
	m.updated[state.ID] = m.clock.Now()
	m.saves++
	return nil
}

// Load returns the newest snapshot of a game
func (m *MockGameRepository) Load(ctx context.Context, gameID string) (*galaxy.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	turns, ok := m.snapshots[gameID]
	if !ok || len(turns) == 0 {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	latest := -1
	for turn := range turns {
		latest = max(latest, turn)
	}
	return turns[latest].Clone(), nil
}

// LoadTurn returns the snapshot of a specific turn
func (m *MockGameRepository) LoadTurn(ctx context.Context, gameID string, turn int) (*galaxy.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.snapshots[gameID][turn]
	if !ok {
		return nil, fmt.Errorf("turn %d of game %s not found", turn, gameID)
	}
	return state.Clone(), nil
}

// List summarises stored games, most recently updated first
func (m *MockGameRepository) List(ctx context.Context) ([]galaxy.GameSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var summaries []galaxy.GameSummary
	for id, turns := range m.snapshots {
		latest := -1
		for turn := range turns {
			latest = max(latest, turn)
		}
		summaries = append(summaries, galaxy.GameSummary{
			ID:        id,
			Name:      turns[latest].Name,
			Turn:      latest,
			UpdatedAt: m.updated[id],
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}
