package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/adapters/persistence"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

func sampleGame() *galaxy.GameState {
	state := helpers.NewTestGame()
	home := helpers.AddTestStar(state, "sol", 0, 0, helpers.TestHumanID)
	governor := galaxy.GovernorMining
	home.Governor = &governor
	home.Population = 25_000
	home.SurfaceMinerals = shared.Minerals{Ironium: 120, Germanium: 4.5}
	helpers.AddTestStar(state, "vega", 60, 80, "")

	f := helpers.AddTestFleet(state, "fleet-1", helpers.TestHumanID, galaxy.InOrbit("sol"), 640,
		helpers.Ships(helpers.CruiserID, 2), galaxy.ShipStack{DesignID: helpers.FreighterID, Count: 1, Damage: 15})
	f.Cargo = shared.Cargo{Colonists: 1200, Minerals: shared.Minerals{Boranium: 7}}
	f.Orders = []galaxy.FleetOrder{
		galaxy.MoveOrder(shared.NewCoordinate(30, 40)).WithWarp(5),
		galaxy.OrbitOrder("vega", galaxy.OrbitActionColonize),
	}
	helpers.AddTestFleet(state, "fleet-2", helpers.TestAIID, galaxy.InSpace(shared.NewCoordinate(12.5, -3)), 10,
		helpers.Ships(helpers.ScoopShipID, 1))
	return state
}

func TestGormGameRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGormGameRepository(helpers.NewTestDB(t))
	state := sampleGame()

	require.NoError(t, repo.Save(ctx, state))
	loaded, err := repo.Load(ctx, state.ID)

	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestGormGameRepository_KeepsEveryTurn(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGormGameRepository(helpers.NewTestDB(t))
	first := sampleGame()
	require.NoError(t, repo.Save(ctx, first))

	second := first.Clone()
	second.Turn = 2
	second.Fleet("fleet-1").Fuel = 1
	require.NoError(t, repo.Save(ctx, second))

	latest, err := repo.Load(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Turn)
	assert.Equal(t, 1.0, latest.Fleet("fleet-1").Fuel)

	old, err := repo.LoadTurn(ctx, first.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 640.0, old.Fleet("fleet-1").Fuel)

	_, err = repo.LoadTurn(ctx, first.ID, 3)
	assert.ErrorContains(t, err, "turn 3")
}

func TestGormGameRepository_SaveSameTurnReplaces(t *testing.T) {
	ctx := context.Background()
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)
	state := sampleGame()
	require.NoError(t, repo.Save(ctx, state))

	edited := state.Clone()
	edited.Fleet("fleet-2").Fuel = 99
	require.NoError(t, repo.Save(ctx, edited))

	var rows int64
	require.NoError(t, db.Model(&persistence.GameSnapshotModel{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	loaded, err := repo.Load(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.0, loaded.Fleet("fleet-2").Fuel)
}

func TestGormGameRepository_RefusesStaleTurn(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGormGameRepository(helpers.NewTestDB(t))
	state := sampleGame()
	require.NoError(t, repo.Save(ctx, state))

	ended := state.Clone()
	ended.Turn = 2
	require.NoError(t, repo.Save(ctx, ended))

	late := state.Clone()
	late.Fleet("fleet-1").Fuel = 1
	err := repo.Save(ctx, late)
	require.ErrorIs(t, err, shared.ErrStaleTurn)

	loaded, err := repo.Load(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Turn)
	first, err := repo.LoadTurn(ctx, state.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 640.0, first.Fleet("fleet-1").Fuel)

	games, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 2, games[0].Turn)
}

func TestGormGameRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGormGameRepository(helpers.NewTestDB(t))

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	state := sampleGame()
	state.Turn = 7
	require.NoError(t, repo.Save(ctx, state))

	games, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, helpers.TestGameID, games[0].ID)
	assert.Equal(t, "Test Game", games[0].Name)
	assert.Equal(t, 7, games[0].Turn)
}

func TestGormGameRepository_ListsMostRecentlyUpdatedFirst(t *testing.T) {
	// Arrange
	ctx := context.Background()
	clock := shared.NewMockClock(time.Date(2031, 3, 14, 9, 0, 0, 0, time.UTC))
	repo := persistence.NewGormGameRepositoryWithClock(helpers.NewTestDB(t), clock)

	older := sampleGame()
	older.ID = "game-older"
	require.NoError(t, repo.Save(ctx, older))
	clock.Advance(time.Hour)
	newer := sampleGame()
	newer.ID = "game-newer"
	require.NoError(t, repo.Save(ctx, newer))

	// Act
	games, err := repo.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "game-newer", games[0].ID)
	assert.Equal(t, clock.Now().Unix(), games[0].UpdatedAt.Unix())
	assert.Equal(t, "game-older", games[1].ID)
}

func TestGormGameRepository_UnknownGame(t *testing.T) {
	repo := persistence.NewGormGameRepository(helpers.NewTestDB(t))

	_, err := repo.Load(context.Background(), "missing")

	assert.ErrorContains(t, err, "game not found: missing")
}

func TestGormGameRepository_DetectsCorruption(t *testing.T) {
	ctx := context.Background()
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)
	require.NoError(t, repo.Save(ctx, sampleGame()))

	require.NoError(t, db.Exec("UPDATE game_snapshots SET checksum = ?", "deadbeef").Error)

	_, err := repo.Load(ctx, helpers.TestGameID)
	assert.ErrorIs(t, err, persistence.ErrSnapshotCorrupted)
}
