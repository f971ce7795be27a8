package steps

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/application/mediator"
	"github.com/andrescamacho/starlanes-go/internal/application/setup"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

// sharedGameContext holds the game under test. Domain steps mutate state directly;
// application steps persist it, dispatch through the mediator and reload it, so the
// assertion steps work for both layers.
type sharedGameContext struct {
	mu       sync.RWMutex
	state    *galaxy.GameState
	previous *galaxy.GameState // state before the last When step
	saved    bool
	err      error
	engines  *common.Engines
	repos    *helpers.TestRepositories
	mediator mediator.Mediator
}

var (
	// Global shared context, reset before every scenario
	globalGameContext = &sharedGameContext{}
)

// reset clears all shared state and the shared database (called in Before hooks)
func (g *sharedGameContext) reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}

	g.state = nil
	g.previous = nil
	g.saved = false
	g.err = nil
	g.engines = common.NewEngines(
		galaxy.DefaultRules(),
		galaxy.StaticGovernor(galaxy.GovernorBalanced),
		galaxy.NewRadialHabitability(),
	)
	g.repos = helpers.NewTestRepositories()

	m, err := setup.NewHandlerRegistry(g.repos.GameRepo, g.engines).CreateConfiguredMediator()
	if err != nil {
		return fmt.Errorf("failed to build mediator: %w", err)
	}
	g.mediator = m
	return nil
}

func (g *sharedGameContext) game() (*galaxy.GameState, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.state == nil {
		return nil, fmt.Errorf("no game has been set up")
	}
	return g.state, nil
}

func (g *sharedGameContext) fleet(id string) (*galaxy.Fleet, error) {
	state, err := g.game()
	if err != nil {
		return nil, err
	}
	f := state.Fleet(id)
	if f == nil {
		return nil, fmt.Errorf("fleet %s not found", id)
	}
	return f, nil
}

func (g *sharedGameContext) star(id string) (*galaxy.Star, error) {
	state, err := g.game()
	if err != nil {
		return nil, err
	}
	s := state.Star(id)
	if s == nil {
		return nil, fmt.Errorf("star %s not found", id)
	}
	return s, nil
}

// replace records the outcome of a domain operation
func (g *sharedGameContext) replace(next *galaxy.GameState, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.previous = g.state
	g.err = err
	if next != nil {
		g.state = next
	}
}

// send persists the scenario's game if needed, dispatches the request and reloads
// the stored game so later assertions see what the handler committed.
func (g *sharedGameContext) send(request common.Request) (common.Response, error) {
	state, err := g.game()
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	if !g.saved {
		if err := g.repos.GameRepo.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to seed game: %w", err)
		}
		g.saved = true
	}

	response, sendErr := g.mediator.Send(ctx, request)

	reloaded, err := g.repos.GameRepo.Load(ctx, state.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload game: %w", err)
	}
	g.replace(reloaded, sendErr)
	return response, nil
}

func (g *sharedGameContext) lastError() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.err
}
