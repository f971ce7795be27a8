package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	fleetCommands "github.com/andrescamacho/starlanes-go/internal/application/fleet/commands"
	gameCommands "github.com/andrescamacho/starlanes-go/internal/application/game/commands"
	gameQueries "github.com/andrescamacho/starlanes-go/internal/application/game/queries"
	"github.com/andrescamacho/starlanes-go/internal/application/mediator"
	turnCommands "github.com/andrescamacho/starlanes-go/internal/application/turn/commands"
	"github.com/andrescamacho/starlanes-go/internal/application/setup"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

func newMediator(t *testing.T, middlewares ...mediator.Middleware) (mediator.Mediator, *helpers.MockGameRepository) {
	t.Helper()
	repo := helpers.NewMockGameRepository()
	engines := common.NewEngines(galaxy.DefaultRules(), galaxy.StaticGovernor(galaxy.GovernorBalanced), galaxy.NewRadialHabitability())
	m, err := setup.NewHandlerRegistry(repo, engines).CreateConfiguredMediator(middlewares...)
	require.NoError(t, err)
	return m, repo
}

func TestCreateConfiguredMediator_NewGameThenEndTurn(t *testing.T) {
	m, repo := newMediator(t)
	ctx := context.Background()

	resp, err := m.Send(ctx, &gameCommands.NewGameCommand{
		Name: "Skirmish", HumanName: "Ada", AIPlayers: 2, StarCount: 24, Seed: 7,
	})
	require.NoError(t, err)
	created := resp.(*gameCommands.NewGameResponse)
	assert.Len(t, created.State.Players(), 3)
	assert.Len(t, created.State.Fleets, 9, "three starter fleets per player")

	resp, err = m.Send(ctx, &turnCommands.EndTurnCommand{GameID: created.GameID})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.(*turnCommands.EndTurnResponse).Turn)

	resp, err = m.Send(ctx, &gameQueries.ListGamesQuery{})
	require.NoError(t, err)
	games := resp.(*gameQueries.ListGamesResponse).Games
	require.Len(t, games, 1)
	assert.Equal(t, 2, games[0].Turn)
	assert.Equal(t, 2, repo.SaveCount())
}

func TestCreateConfiguredMediator_ValidatesBeforeHandlers(t *testing.T) {
	m, repo := newMediator(t)

	_, err := m.Send(context.Background(), &fleetCommands.CreateFleetCommand{GameID: helpers.TestGameID})

	assert.ErrorContains(t, err, "invalid request")
	assert.Zero(t, repo.SaveCount())
}

func TestCreateConfiguredMediator_CustomMiddlewareRunsFirst(t *testing.T) {
	var seen []string
	m, _ := newMediator(t, func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		seen = append(seen, "outer")
		return next(ctx, request)
	})

	_, err := m.Send(context.Background(), &turnCommands.EndTurnCommand{})

	assert.ErrorContains(t, err, "GameID")
	assert.Equal(t, []string{"outer"}, seen)
}
