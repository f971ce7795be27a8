package fleet_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

var human = shared.MustNewPlayerID(helpers.TestHumanID)

// sequentialIDs returns fleet-1, fleet-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("fleet-%d", n)
	}
}

func newRegistry(rules galaxy.Rules) *fleet.Registry {
	return fleet.NewRegistry(rules).WithIDGenerator(sequentialIDs())
}

func TestCreateFleet_OneFullyFuelledShip(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestStar(state, "sol", 0, 0, helpers.TestHumanID)

	next, f, err := newRegistry(galaxy.DefaultRules()).CreateFleet(state, human, helpers.CruiserID, galaxy.InOrbit("sol"))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "fleet-1", f.ID)
	assert.Equal(t, "Cruiser-1", f.Name)
	assert.Equal(t, []galaxy.ShipStack{{DesignID: helpers.CruiserID, Count: 1}}, f.Stacks)
	assert.Equal(t, 1000.0, f.Fuel)
	assert.Same(t, f, next.Fleet("fleet-1"))
	assert.Nil(t, state.Fleet("fleet-1"), "input state is untouched")
}

func TestCreateFleet_SoftFailures(t *testing.T) {
	state := helpers.NewTestGame()
	registry := newRegistry(galaxy.DefaultRules())

	next, f, err := registry.CreateFleet(state, human, helpers.GhostDesign, galaxy.InSpace(shared.NewCoordinate(0, 0)))
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Same(t, state, next)

	next, f, err = registry.CreateFleet(state, human, helpers.CruiserID, galaxy.InOrbit("missing"))
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Same(t, state, next)
}

func TestCreateFleet_UnnamedDesignFallsBackToFleet(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestStar(state, "sol", 0, 0, helpers.TestHumanID)
	hull := state.Designs[helpers.CruiserID]
	hull.Name = ""
	state.Designs["no-name"] = hull

	_, f, err := newRegistry(galaxy.DefaultRules()).CreateFleet(state, human, "no-name", galaxy.InOrbit("sol"))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "Fleet-1", f.Name)
}

func TestCreateFleet_FleetCapPerOwner(t *testing.T) {
	state := helpers.NewTestGame()
	rules := galaxy.DefaultRules()
	rules.MaxFleetsPerOwner = 2
	registry := newRegistry(rules)
	here := galaxy.InSpace(shared.NewCoordinate(5, 5))

	var err error
	for i := 0; i < 2; i++ {
		state, _, err = registry.CreateFleet(state, human, helpers.CruiserID, here)
		require.NoError(t, err)
	}

	next, f, err := registry.CreateFleet(state, human, helpers.CruiserID, here)
	assert.ErrorIs(t, err, shared.ErrFleetLimitExceeded)
	assert.Nil(t, f)
	assert.Same(t, state, next)

	// other owners are unaffected
	_, f, err = registry.CreateFleet(state, shared.MustNewPlayerID(helpers.TestAIID), helpers.CruiserID, here)
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestNextFleetName(t *testing.T) {
	owned := []*galaxy.Fleet{
		{Name: "Cruiser-1"},
		{Name: "Cruiser-4"},
		{Name: "Cruiser-x"},
		{Name: "Scout-9"},
	}

	assert.Equal(t, "Cruiser-5", fleet.NextFleetName(owned, "Cruiser"))
	assert.Equal(t, "Scout-10", fleet.NextFleetName(owned, "Scout"))
	assert.Equal(t, "Freighter-1", fleet.NextFleetName(owned, "Freighter"))
}

func TestAddShipToFleet_MergesStackAndFillsTanks(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 300,
		helpers.Ships(helpers.CruiserID, 1))

	next, err := newRegistry(galaxy.DefaultRules()).AddShipToFleet(state, "f1", helpers.CruiserID, 2)
	require.NoError(t, err)

	f := next.Fleet("f1")
	assert.Equal(t, []galaxy.ShipStack{{DesignID: helpers.CruiserID, Count: 3}}, f.Stacks)
	assert.Equal(t, 2300.0, f.Fuel)
	assert.Equal(t, 300.0, state.Fleet("f1").Fuel)
}

func TestAddShipToFleet_StackCap(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.CruiserID, 3))
	rules := galaxy.DefaultRules()
	rules.MaxShipsPerStack = 4

	next, err := newRegistry(rules).AddShipToFleet(state, "f1", helpers.CruiserID, 2)
	assert.ErrorIs(t, err, shared.ErrShipStackLimitExceeded)
	assert.Same(t, state, next)
}

func TestAddShipToFleet_DamagedStackStaysSeparate(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		galaxy.ShipStack{DesignID: helpers.CruiserID, Count: 1, Damage: 30})

	next, err := newRegistry(galaxy.DefaultRules()).AddShipToFleet(state, "f1", helpers.CruiserID, 1)
	require.NoError(t, err)
	assert.Len(t, next.Fleet("f1").Stacks, 2)
}

func TestDecommissionFleet(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.CruiserID, 1))
	registry := newRegistry(galaxy.DefaultRules())

	next, err := registry.DecommissionFleet(state, "f1")
	require.NoError(t, err)
	assert.Nil(t, next.Fleet("f1"))
	assert.NotNil(t, state.Fleet("f1"))

	same, err := registry.DecommissionFleet(next, "f1")
	require.NoError(t, err)
	assert.Same(t, next, same)
}
