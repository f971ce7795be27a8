package navigation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

func newCalculator(state *galaxy.GameState) *navigation.FuelCalculator {
	return navigation.NewFuelCalculator(state.DesignRegistry(), design.DefaultEngineTable())
}

func TestCostPerLightYear_SingleCruiser(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 500,
		helpers.Ships(helpers.CruiserID, 1))
	calc := newCalculator(state)

	cost, err := calc.CostPerLightYear(f, 10)
	require.NoError(t, err)
	assert.InDelta(t, 3.59, cost, 1e-9)

	cost, err = calc.CostPerLightYear(f, 6)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cost, 1e-9)
}

func TestCostPerLightYear_ScalesWithStackCount(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.CruiserID, 3))

	cost, err := newCalculator(state).CostPerLightYear(f, 7)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, cost, 1e-9)
}

func TestCostPerLightYear_CargoUsesMassWeightedFactor(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.FreighterID, 1))
	f.Cargo = shared.Cargo{Minerals: shared.Minerals{Ironium: 40}}

	cost, err := newCalculator(state).CostPerLightYear(f, 6)
	require.NoError(t, err)
	// ships 100*20/2000 + cargo 40*20/2000
	assert.InDelta(t, 1.4, cost, 1e-9)
}

func TestCostPerLightYear_StarbaseIsIgnored(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.CruiserID, 1), helpers.Ships(helpers.StarbaseID, 1))

	cost, err := newCalculator(state).CostPerLightYear(f, 6)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cost, 1e-9)
}

func TestCostPerLightYear_UnknownEngineIsMissingFuelData(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.UntabledShip, 1))

	_, err := newCalculator(state).CostPerLightYear(f, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrMissingFuelData))

	var missing *shared.MissingFuelDataError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, helpers.GhostEngine, missing.EngineID)
	assert.Equal(t, 6, missing.Warp)
}

func TestCostPerLightYear_DanglingDesignIsUnknownDesign(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.GhostDesign, 1))

	_, err := newCalculator(state).CostPerLightYear(f, 6)
	assert.ErrorIs(t, err, shared.ErrUnknownDesign)
}

func TestFuelRequired(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.CruiserID, 1))

	required, err := newCalculator(state).FuelRequired(f, 10, 100)
	require.NoError(t, err)
	assert.InDelta(t, 359.0, required, 1e-9)
}
