package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/application/turn/commands"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

func newHandler(t *testing.T, state *galaxy.GameState) (*commands.EndTurnHandler, *helpers.MockGameRepository) {
	t.Helper()
	repo := helpers.NewMockGameRepository()
	require.NoError(t, repo.Save(context.Background(), state))
	engines := common.NewEngines(galaxy.DefaultRules(), galaxy.StaticGovernor(galaxy.GovernorBalanced), galaxy.NewRadialHabitability())
	return commands.NewEndTurnHandler(common.NewGameStore(repo), engines.Turns), repo
}

func TestEndTurn_AdvancesAndPersists(t *testing.T) {
	// Arrange
	state := helpers.NewTestGame()
	scout := helpers.AddTestFleet(state, "scout", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 500,
		helpers.Ships(helpers.CruiserID, 1))
	scout.Orders = []galaxy.FleetOrder{galaxy.MoveOrder(shared.NewCoordinate(100, 0))}
	rival := helpers.AddTestFleet(state, "rival", helpers.TestAIID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 50,
		helpers.Ships(helpers.CruiserID, 1))
	rival.Orders = []galaxy.FleetOrder{galaxy.MoveOrder(shared.NewCoordinate(0, 100))}
	handler, repo := newHandler(t, state)

	// Act
	response, err := handler.Handle(context.Background(), &commands.EndTurnCommand{GameID: helpers.TestGameID})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.EndTurnResponse)
	assert.Equal(t, 2, result.Turn)
	require.Len(t, result.Reports, 2)
	assert.Equal(t, helpers.TestHumanID, result.Reports[0].PlayerID.String())
	assert.Equal(t, helpers.TestAIID, result.Reports[1].PlayerID.String())

	saved, err := repo.Load(context.Background(), helpers.TestGameID)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Turn)
	assert.Equal(t, 141.0, saved.Fleet("scout").Fuel)
	assert.Equal(t, 30.0, saved.Fleet("rival").Fuel)

	previous, err := repo.LoadTurn(context.Background(), helpers.TestGameID, 1)
	require.NoError(t, err)
	assert.Equal(t, 500.0, previous.Fleet("scout").Fuel)
}

func TestEndTurn_QuietTurnStillAdvances(t *testing.T) {
	handler, repo := newHandler(t, helpers.NewTestGame())

	response, err := handler.Handle(context.Background(), &commands.EndTurnCommand{GameID: helpers.TestGameID})

	require.NoError(t, err)
	assert.Equal(t, 2, response.(*commands.EndTurnResponse).Turn)
	assert.Equal(t, 2, repo.SaveCount())
}

func TestEndTurn_FatalErrorSavesNothing(t *testing.T) {
	// Arrange
	state := helpers.NewTestGame()
	scout := helpers.AddTestFleet(state, "scout", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 500,
		helpers.Ships(helpers.CruiserID, 1))
	scout.Orders = []galaxy.FleetOrder{galaxy.MoveOrder(shared.NewCoordinate(100, 0))}
	broken := helpers.AddTestFleet(state, "broken", helpers.TestAIID, galaxy.InSpace(shared.NewCoordinate(5, 5)), 500,
		helpers.Ships(helpers.UntabledShip, 1))
	broken.Orders = []galaxy.FleetOrder{galaxy.MoveOrder(shared.NewCoordinate(50, 5))}
	handler, repo := newHandler(t, state)

	// Act
	_, err := handler.Handle(context.Background(), &commands.EndTurnCommand{GameID: helpers.TestGameID})

	// Assert
	require.ErrorIs(t, err, shared.ErrMissingFuelData)
	assert.ErrorContains(t, err, "turn 1 aborted while processing ai-1")
	assert.Equal(t, 1, repo.SaveCount())

	stored, err := repo.Load(context.Background(), helpers.TestGameID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Turn)
	assert.Equal(t, 500.0, stored.Fleet("scout").Fuel)
}

func TestEndTurn_SaveFailure(t *testing.T) {
	handler, repo := newHandler(t, helpers.NewTestGame())
	repo.FailSavesWith(assert.AnError)

	_, err := handler.Handle(context.Background(), &commands.EndTurnCommand{GameID: helpers.TestGameID})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestEndTurn_UnknownGame(t *testing.T) {
	handler, _ := newHandler(t, helpers.NewTestGame())

	_, err := handler.Handle(context.Background(), &commands.EndTurnCommand{GameID: "nope"})

	assert.ErrorContains(t, err, "game not found")
}

func TestEndTurn_RejectsOtherRequests(t *testing.T) {
	handler, _ := newHandler(t, helpers.NewTestGame())

	_, err := handler.Handle(context.Background(), struct{}{})

	assert.EqualError(t, err, "invalid request type")
}
