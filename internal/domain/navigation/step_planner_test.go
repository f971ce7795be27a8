package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

func planFor(t *testing.T, fuel float64, requested *int, distance float64) navigation.StepPlan {
	t.Helper()
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), fuel,
		helpers.Ships(helpers.CruiserID, 1))

	stats := navigation.NewMovementStatsCalculator(state.DesignRegistry()).Stats(f)
	planner := navigation.NewStepPlanner(newCalculator(state), galaxy.DefaultRules())
	plan, err := planner.Plan(f, stats, requested, distance)
	require.NoError(t, err)
	return plan
}

func TestPlan_PlentyOfFuelTravelsAtMaxWarp(t *testing.T) {
	plan := planFor(t, 500, nil, 100)

	assert.Equal(t, 10, plan.Warp)
	assert.True(t, plan.Arrives)
	assert.InDelta(t, 100.0, plan.Step, 1e-9)
	assert.Equal(t, 359.0, plan.FuelBurned)
}

func TestPlan_StepsDownToAffordableWarp(t *testing.T) {
	plan := planFor(t, 200, nil, 100)

	assert.Equal(t, 7, plan.Warp)
	assert.True(t, plan.Arrives)
	assert.Equal(t, 200.0, plan.FuelBurned)
}

func TestPlan_WarpOneFloorWhenNothingIsAffordable(t *testing.T) {
	plan := planFor(t, 50, nil, 100)

	assert.Equal(t, 1, plan.Warp)
	assert.False(t, plan.Arrives)
	assert.InDelta(t, 20.0, plan.Step, 1e-9)
	assert.Equal(t, 20.0, plan.FuelBurned)
}

func TestPlan_RequestedWarpIsClampedToMax(t *testing.T) {
	requested := 12
	plan := planFor(t, 1000, &requested, 100)
	assert.Equal(t, 10, plan.Warp)

	requested = 4
	plan = planFor(t, 1000, &requested, 100)
	assert.Equal(t, 4, plan.Warp)
	assert.False(t, plan.Arrives)
	assert.InDelta(t, 80.0, plan.Step, 1e-9)
}

func TestPlan_FuelLimitsTheStep(t *testing.T) {
	plan := planFor(t, 10, nil, 100)

	assert.Equal(t, 1, plan.Warp)
	assert.InDelta(t, 10.0, plan.Step, 1e-9)
	assert.Equal(t, 10.0, plan.FuelBurned)
}

func TestPlan_FuelBurnIsRoundedUp(t *testing.T) {
	plan := planFor(t, 1000, nil, 10.5)

	// 3.59 * 10.5 = 37.695
	assert.Equal(t, 38.0, plan.FuelBurned)
}
