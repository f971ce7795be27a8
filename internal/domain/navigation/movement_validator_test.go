package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

func evaluate(state *galaxy.GameState, f *galaxy.Fleet, dest navigation.Destination) navigation.MovementEvaluation {
	stats := navigation.NewMovementStatsCalculator(state.DesignRegistry()).Stats(f)
	return navigation.NewMovementValidator(newCalculator(state)).Evaluate(state, f, dest, stats)
}

func TestEvaluate_ReachableStarAtIdealWarp(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestStar(state, "sol", 0, 0, helpers.TestHumanID)
	helpers.AddTestStar(state, "vega", 60, 80, "")
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InOrbit("sol"), 500,
		helpers.Ships(helpers.CruiserID, 1))

	eval := evaluate(state, f, navigation.StarDestination("vega"))

	assert.True(t, eval.IsValid)
	assert.True(t, eval.CanMove)
	assert.Empty(t, eval.Errors)
	assert.InDelta(t, 100.0, eval.Distance, 1e-9)
	assert.Equal(t, 6, eval.Warp)
	assert.InDelta(t, 100.0, eval.FuelRequired, 1e-9)
	assert.Equal(t, 500.0, eval.FuelAvailable)
	assert.Equal(t, 500.0, f.Fuel, "evaluation never mutates")
}

func TestEvaluate_InsufficientFuelIsAWarning(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 50,
		helpers.Ships(helpers.CruiserID, 1))

	eval := evaluate(state, f, navigation.SpaceDestination(shared.NewCoordinate(100, 0)))

	assert.True(t, eval.IsValid)
	assert.False(t, eval.CanMove)
	assert.Len(t, eval.Warnings, 1)
	assert.Contains(t, eval.Warnings[0], "insufficient fuel")
}

func TestEvaluate_UnknownStarIsAnError(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 500,
		helpers.Ships(helpers.CruiserID, 1))

	eval := evaluate(state, f, navigation.StarDestination("nowhere"))

	assert.False(t, eval.IsValid)
	assert.False(t, eval.CanMove)
	assert.NotEmpty(t, eval.Errors)
}

func TestEvaluate_ImmobileFleetCannotMove(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestStar(state, "sol", 0, 0, helpers.TestHumanID)
	f := helpers.AddTestFleet(state, "base", helpers.TestHumanID, galaxy.InOrbit("sol"), 0,
		helpers.Ships(helpers.StarbaseID, 1))

	eval := evaluate(state, f, navigation.SpaceDestination(shared.NewCoordinate(10, 0)))

	assert.False(t, eval.IsValid)
	assert.Contains(t, eval.Errors, "fleet cannot move (max warp is 0)")
}

func TestMovementStats_SlowestShipWins(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.CruiserID, 2), helpers.Ships(helpers.ColonizerID, 1))

	stats := navigation.NewMovementStatsCalculator(state.DesignRegistry()).Stats(f)

	assert.Equal(t, 9, stats.MaxWarp)
	assert.Equal(t, 6, stats.IdealWarp)
	assert.InDelta(t, 250.0, stats.TotalMass, 1e-9)
	assert.InDelta(t, 2200.0, stats.TotalFuel, 1e-9)
}

func TestMovementStats_DanglingDesignsOnly(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.GhostDesign, 1))

	stats := navigation.NewMovementStatsCalculator(state.DesignRegistry()).Stats(f)
	assert.Equal(t, 0, stats.MaxWarp)
}
