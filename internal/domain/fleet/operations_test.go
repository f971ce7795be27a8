package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

var origin = galaxy.InSpace(shared.NewCoordinate(10, 10))

func TestTransfer_ShipsMoveFirstAndOverflowFollows(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 2000, helpers.Ships(helpers.CruiserID, 2))
	helpers.AddTestFleet(state, "f2", helpers.TestHumanID, origin, 0, helpers.Ships(helpers.CruiserID, 1))

	spec := fleet.TransferSpec{
		Ships: []fleet.ShipTransfer{{DesignID: helpers.CruiserID, Count: 1}},
		Fuel:  500,
	}
	next, err := newRegistry(galaxy.DefaultRules()).Transfer(state, "f1", "f2", spec)
	require.NoError(t, err)

	source, target := next.Fleet("f1"), next.Fleet("f2")
	assert.Equal(t, 1, source.ShipCount())
	assert.Equal(t, 2, target.ShipCount())
	assert.Equal(t, 1000.0, source.Fuel)
	assert.Equal(t, 1000.0, target.Fuel)
	assert.Equal(t, 2000.0, state.Fleet("f1").Fuel)
}

func TestTransfer_CapsAtSourceAndTargetRoom(t *testing.T) {
	state := helpers.NewTestGame()
	src := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.FreighterID, 1))
	src.Cargo = shared.Cargo{Minerals: shared.Minerals{Ironium: 30}, Resources: 10}
	dst := helpers.AddTestFleet(state, "f2", helpers.TestHumanID, origin, 950, helpers.Ships(helpers.FreighterID, 1))
	dst.Cargo = shared.Cargo{Minerals: shared.Minerals{Boranium: 25}}

	spec := fleet.TransferSpec{
		Fuel:  80,
		Cargo: shared.Cargo{Minerals: shared.Minerals{Ironium: 50}, Resources: 10},
	}
	next, err := newRegistry(galaxy.DefaultRules()).Transfer(state, "f1", "f2", spec)
	require.NoError(t, err)

	source, target := next.Fleet("f1"), next.Fleet("f2")
	assert.Equal(t, 50.0, source.Fuel)
	assert.Equal(t, 1000.0, target.Fuel)
	// 15 kT of room: ironium takes it all, resources get nothing
	assert.Equal(t, 15.0, source.Cargo.Minerals.Ironium)
	assert.Equal(t, 15.0, target.Cargo.Minerals.Ironium)
	assert.Equal(t, 10.0, source.Cargo.Resources)
	assert.Equal(t, 0.0, target.Cargo.Resources)
}

func TestTransfer_NoOps(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))
	helpers.AddTestFleet(state, "far", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(90, 90)), 0,
		helpers.Ships(helpers.CruiserID, 1))
	registry := newRegistry(galaxy.DefaultRules())
	spec := fleet.TransferSpec{Fuel: 50}

	for _, target := range []string{"far", "f1", "missing"} {
		next, err := registry.Transfer(state, "f1", target, spec)
		require.NoError(t, err)
		assert.Same(t, state, next, target)
	}
}

func TestTransfer_EmptiedSourceIsRemoved(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))
	helpers.AddTestFleet(state, "f2", helpers.TestHumanID, origin, 0, helpers.Ships(helpers.CruiserID, 1))

	next, err := newRegistry(galaxy.DefaultRules()).Transfer(state, "f1", "f2", fleet.Everything(state.Fleet("f1")))
	require.NoError(t, err)

	assert.Nil(t, next.Fleet("f1"))
	assert.Equal(t, 2, next.Fleet("f2").ShipCount())
	assert.Equal(t, 100.0, next.Fleet("f2").Fuel)
}

func TestSplitFleet_SpillsWhatNoLongerFits(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 2000, helpers.Ships(helpers.FreighterID, 2))
	f.Cargo = shared.Cargo{Minerals: shared.Minerals{Ironium: 60}}

	spec := fleet.TransferSpec{Ships: []fleet.ShipTransfer{{DesignID: helpers.FreighterID, Count: 1}}}
	next, split, err := newRegistry(galaxy.DefaultRules()).SplitFleet(state, "f1", spec)
	require.NoError(t, err)
	require.NotNil(t, split)

	assert.Equal(t, "fleet-1", split.ID)
	assert.Equal(t, "Freighter-1", split.Name)
	assert.Equal(t, origin, split.Location)
	assert.Equal(t, 1000.0, split.Fuel)
	assert.Equal(t, 20.0, split.Cargo.Minerals.Ironium)

	source := next.Fleet("f1")
	assert.Equal(t, 1, source.ShipCount())
	assert.Equal(t, 1000.0, source.Fuel)
	assert.Equal(t, 40.0, source.Cargo.Minerals.Ironium)
}

func TestSplitFleet_NothingToMove(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))
	registry := newRegistry(galaxy.DefaultRules())

	next, split, err := registry.SplitFleet(state, "f1", fleet.TransferSpec{})
	require.NoError(t, err)
	assert.Nil(t, split)
	assert.Same(t, state, next)

	// more ships than the stack holds
	spec := fleet.TransferSpec{Ships: []fleet.ShipTransfer{{DesignID: helpers.CruiserID, Count: 5}}}
	next, split, err = registry.SplitFleet(state, "f1", spec)
	require.NoError(t, err)
	assert.Nil(t, split)
	assert.Same(t, state, next)
}

func TestSeparateFleet_OneFleetPerShipWithFuelShare(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 1500, helpers.Ships(helpers.CruiserID, 3))
	f.Orders = []galaxy.FleetOrder{galaxy.MoveOrder(shared.NewCoordinate(50, 50))}

	next, created, err := newRegistry(galaxy.DefaultRules()).SeparateFleet(state, "f1")
	require.NoError(t, err)
	require.Len(t, created, 2)

	source := next.Fleet("f1")
	assert.Equal(t, 1, source.ShipCount())
	assert.Equal(t, 500.0, source.Fuel)
	assert.Len(t, source.Orders, 1)
	for _, c := range created {
		assert.Equal(t, 1, c.ShipCount())
		assert.Equal(t, 500.0, c.Fuel)
		assert.Empty(t, c.Orders)
	}
	assert.Equal(t, []string{"Cruiser-1", "Cruiser-2"}, []string{created[0].Name, created[1].Name})
}

func TestSeparateFleet_SingleShipIsNoOp(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))

	next, created, err := newRegistry(galaxy.DefaultRules()).SeparateFleet(state, "f1")
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Same(t, state, next)
}

func TestMergeFleets_SkipsFleetsElsewhere(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))
	helpers.AddTestFleet(state, "f2", helpers.TestHumanID, origin, 200, helpers.Ships(helpers.CruiserID, 1))
	helpers.AddTestFleet(state, "f3", helpers.TestHumanID, galaxy.InSpace(shared.NewCoordinate(0, 0)), 0,
		helpers.Ships(helpers.CruiserID, 1))

	next, err := newRegistry(galaxy.DefaultRules()).MergeFleets(state, "f1", []string{"f2", "f3"})
	require.NoError(t, err)

	target := next.Fleet("f1")
	assert.Equal(t, []galaxy.ShipStack{{DesignID: helpers.CruiserID, Count: 2}}, target.Stacks)
	assert.Equal(t, 300.0, target.Fuel)
	assert.Nil(t, next.Fleet("f2"))
	assert.NotNil(t, next.Fleet("f3"))
}

func TestMergeFleets_NothingMergeable(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))

	next, err := newRegistry(galaxy.DefaultRules()).MergeFleets(state, "f1", []string{"missing", "f1"})
	require.NoError(t, err)
	assert.Same(t, state, next)
}

func TestIssueOrder(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))
	registry := newRegistry(galaxy.DefaultRules())

	next, err := registry.IssueOrder(state, "f1", galaxy.OrbitOrder("sol", galaxy.OrbitActionColonize))
	require.NoError(t, err)
	next, err = registry.IssueOrder(next, "f1", galaxy.MoveOrder(shared.NewCoordinate(1, 2)).WithWarp(5))
	require.NoError(t, err)

	orders := next.Fleet("f1").Orders
	require.Len(t, orders, 2)
	assert.Equal(t, galaxy.OrderOrbit, orders[0].Type)
	assert.Equal(t, 5, *orders[1].Warp)
	assert.Empty(t, state.Fleet("f1").Orders)
}

func TestIssueOrder_Rejections(t *testing.T) {
	state := helpers.NewTestGame()
	helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))
	registry := newRegistry(galaxy.DefaultRules())

	invalid := []galaxy.FleetOrder{
		{Type: galaxy.OrderMove},
		{Type: galaxy.OrderOrbit},
		galaxy.OrbitOrder("sol", galaxy.OrbitAction("terraform")),
		{Type: galaxy.OrderColonize},
		galaxy.MoveOrder(shared.NewCoordinate(1, 1)).WithWarp(11),
		galaxy.MoveOrder(shared.NewCoordinate(1, 1)).WithWarp(0),
		{Type: "SCRAP"},
	}
	for _, order := range invalid {
		next, err := registry.IssueOrder(state, "f1", order)
		var validation *shared.ValidationError
		assert.ErrorAs(t, err, &validation, "%+v", order)
		assert.Same(t, state, next)
	}

	next, err := registry.IssueOrder(state, "missing", galaxy.ColonizeOrder("sol"))
	require.NoError(t, err)
	assert.Same(t, state, next)
}

func TestSetOrders_ReplacesAndClears(t *testing.T) {
	state := helpers.NewTestGame()
	f := helpers.AddTestFleet(state, "f1", helpers.TestHumanID, origin, 100, helpers.Ships(helpers.CruiserID, 1))
	f.Orders = []galaxy.FleetOrder{galaxy.ColonizeOrder("a"), galaxy.ColonizeOrder("b")}
	registry := newRegistry(galaxy.DefaultRules())

	next, err := registry.SetOrders(state, "f1", []galaxy.FleetOrder{galaxy.OrbitOrder("c", galaxy.OrbitActionNone)})
	require.NoError(t, err)
	require.Len(t, next.Fleet("f1").Orders, 1)
	assert.Equal(t, "c", next.Fleet("f1").Orders[0].StarID)

	cleared, err := registry.SetOrders(next, "f1", nil)
	require.NoError(t, err)
	assert.Empty(t, cleared.Fleet("f1").Orders)
	assert.Len(t, state.Fleet("f1").Orders, 2)
}
