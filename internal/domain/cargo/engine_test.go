package cargo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/domain/cargo"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

func freighterAtHome(t *testing.T) *galaxy.GameState {
	t.Helper()
	state := helpers.NewTestGame()
	home := helpers.AddTestStar(state, "home", 0, 0, helpers.TestHumanID)
	home.SurfaceMinerals = shared.Minerals{Ironium: 100, Boranium: 5}
	home.Resources = 30
	home.Population = 12_345
	helpers.AddTestFleet(state, "hauler", helpers.TestHumanID, galaxy.InOrbit("home"), 1000,
		helpers.Ships(helpers.FreighterID, 1))
	return state
}

func TestLoadCargo_FillTakesFreeCapacity(t *testing.T) {
	state := freighterAtHome(t)

	next, moved, err := cargo.NewEngine().LoadCargo(state, "hauler", "home",
		cargo.Manifest{shared.CargoIronium: cargo.Fill()})

	require.NoError(t, err)
	assert.Equal(t, cargo.Moved{shared.CargoIronium: 40}, moved)
	assert.Equal(t, 40.0, next.Fleet("hauler").Cargo.Minerals.Ironium)
	assert.Equal(t, 60.0, next.Star("home").SurfaceMinerals.Ironium)
	assert.Zero(t, state.Fleet("hauler").Cargo.Minerals.Ironium)
}

func TestLoadCargo_CapacityRecomputedPerItem(t *testing.T) {
	state := freighterAtHome(t)

	next, moved, err := cargo.NewEngine().LoadCargo(state, "hauler", "home", cargo.Manifest{
		shared.CargoIronium:   cargo.Quantity(30),
		shared.CargoBoranium:  cargo.All(),
		shared.CargoResources: cargo.Fill(),
	})

	require.NoError(t, err)
	assert.Equal(t, cargo.Moved{
		shared.CargoIronium:   30,
		shared.CargoBoranium:  5,
		shared.CargoResources: 5,
	}, moved)
	hold := next.Fleet("hauler").Cargo
	assert.Equal(t, 40.0, hold.UsageKT())
	assert.Equal(t, 25.0, next.Star("home").Resources)
}

func TestLoadCargo_ColonistsAreWholePersons(t *testing.T) {
	state := freighterAtHome(t)
	state.Fleet("hauler").Cargo.Minerals.Ironium = 39.5

	next, moved, err := cargo.NewEngine().LoadCargo(state, "hauler", "home",
		cargo.Manifest{shared.CargoColonists: cargo.Fill()})

	require.NoError(t, err)
	assert.Equal(t, 500.0, moved[shared.CargoColonists])
	assert.Equal(t, 500, next.Fleet("hauler").Cargo.Colonists)
	assert.Equal(t, 11_845, next.Star("home").Population)
}

func TestLoadCargo_FillTakesWhatTheStarHas(t *testing.T) {
	state := freighterAtHome(t)
	state.Fleet("hauler").Stacks = []galaxy.ShipStack{helpers.Ships(helpers.FreighterID, 3)}
	state.Star("home").SurfaceMinerals.Ironium = 40
	state.Fleet("hauler").Cargo.Minerals.Boranium = 20

	next, moved, err := cargo.NewEngine().LoadCargo(state, "hauler", "home",
		cargo.Manifest{shared.CargoIronium: cargo.Fill()})

	require.NoError(t, err)
	assert.Equal(t, cargo.Moved{shared.CargoIronium: 40}, moved)
	assert.Equal(t, 40.0, next.Fleet("hauler").Cargo.Minerals.Ironium)
	assert.Zero(t, next.Star("home").SurfaceMinerals.Ironium)
}

func TestLoadCargo_ColonistFillSurvivesFloatError(t *testing.T) {
	tests := []struct {
		name    string
		ironium float64
		want    int
	}{
		{name: "three tenths of a kiloton", ironium: 39.7, want: 300},
		{name: "nine tenths of a kiloton", ironium: 39.1, want: 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := freighterAtHome(t)
			state.Fleet("hauler").Cargo.Minerals.Ironium = tt.ironium

			next, moved, err := cargo.NewEngine().LoadCargo(state, "hauler", "home",
				cargo.Manifest{shared.CargoColonists: cargo.Fill()})

			require.NoError(t, err)
			assert.Equal(t, float64(tt.want), moved[shared.CargoColonists])
			assert.Equal(t, tt.want, next.Fleet("hauler").Cargo.Colonists)
		})
	}
}

func TestUnloadCargo(t *testing.T) {
	state := freighterAtHome(t)
	state.Fleet("hauler").Cargo = shared.Cargo{Resources: 4, Minerals: shared.Minerals{Germanium: 12}}

	next, moved, err := cargo.NewEngine().UnloadCargo(state, "hauler", "home", cargo.Manifest{
		shared.CargoGermanium: cargo.All(),
		shared.CargoResources: cargo.Quantity(10),
	})

	require.NoError(t, err)
	assert.Equal(t, cargo.Moved{shared.CargoGermanium: 12, shared.CargoResources: 4}, moved)
	assert.True(t, next.Fleet("hauler").Cargo.IsEmpty())
	assert.Equal(t, 12.0, next.Star("home").SurfaceMinerals.Germanium)
	assert.Equal(t, 34.0, next.Star("home").Resources)
}

func TestUnloadCargo_FillIsRejected(t *testing.T) {
	state := freighterAtHome(t)

	next, _, err := cargo.NewEngine().UnloadCargo(state, "hauler", "home",
		cargo.Manifest{shared.CargoIronium: cargo.Fill()})

	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "ironium", validation.Field)
	assert.Same(t, state, next)
}

func TestCargo_SoftNoOps(t *testing.T) {
	tests := []struct {
		name    string
		fleetID string
		starID  string
	}{
		{name: "unknown fleet", fleetID: "nope", starID: "home"},
		{name: "unknown star", fleetID: "hauler", starID: "nowhere"},
		{name: "not orbiting", fleetID: "hauler", starID: "far"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := freighterAtHome(t)
			far := helpers.AddTestStar(state, "far", 300, 300, "")
			far.SurfaceMinerals.Ironium = 50

			next, moved, err := cargo.NewEngine().LoadCargo(state, tt.fleetID, tt.starID,
				cargo.Manifest{shared.CargoIronium: cargo.All()})

			require.NoError(t, err)
			assert.Empty(t, moved)
			assert.Same(t, state, next)
		})
	}
}

func TestLoadCargo_NothingAvailable(t *testing.T) {
	state := freighterAtHome(t)

	next, moved, err := cargo.NewEngine().LoadCargo(state, "hauler", "home",
		cargo.Manifest{shared.CargoGermanium: cargo.All()})

	require.NoError(t, err)
	assert.Empty(t, moved)
	assert.Same(t, state, next)
}

func TestParseManifest(t *testing.T) {
	m, err := cargo.ParseManifest([]string{"ironium=fill", "colonists=all", "resources= 12.5"})
	require.NoError(t, err)
	assert.Equal(t, cargo.Manifest{
		shared.CargoIronium:   cargo.Fill(),
		shared.CargoColonists: cargo.All(),
		shared.CargoResources: cargo.Quantity(12.5),
	}, m)

	for _, bad := range []string{"ironium", "gold=3", "boranium=-1", "boranium=lots"} {
		_, err := cargo.ParseManifest([]string{bad})
		assert.Error(t, err, bad)
	}
}
