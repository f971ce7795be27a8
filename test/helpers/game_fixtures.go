package helpers

import (
	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// Fixture identifiers
const (
	TestGameID   = "game-test"
	TestHumanID  = "human"
	TestAIID     = "ai-1"
	CruiserID    = "test-cruiser"
	FreighterID  = "test-freighter"
	ColonizerID  = "test-colonizer"
	ScoopShipID  = "test-scoop"
	StarbaseID   = "test-starbase"
	GhostDesign  = "ghost-design"
	GhostEngine  = "ghost-engine"
	UntabledShip = "test-untabled"
)

// TestDesigns are the user designs every fixture game carries. The cruiser is the
// reference ship of the movement scenarios: mass 100, efficiency 100, ideal warp 6,
// max warp 10 on the long-hump-6 engine.
func TestDesigns() map[string]design.ShipDesignSpec {
	return map[string]design.ShipDesignSpec{
		CruiserID: {
			Name: "Cruiser", Mass: 100, FuelCapacity: 1000, FuelEfficiency: 100,
			WarpSpeed: 10, IdealWarp: 6, EngineID: design.EngineLongHump6,
		},
		FreighterID: {
			Name: "Freighter", Mass: 100, FuelCapacity: 1000, FuelEfficiency: 100,
			WarpSpeed: 10, IdealWarp: 6, EngineID: design.EngineLongHump6,
			CargoCapacity: 40,
		},
		ColonizerID: {
			Name: "Colonizer", Mass: 50, FuelCapacity: 200, FuelEfficiency: 100,
			WarpSpeed: 9, IdealWarp: 6, EngineID: design.EngineLongHump6,
			CargoCapacity: 50, ColonistCapacity: 50000, ColonyModule: true,
			Cost: design.Cost{Resources: 20, Minerals: shared.Minerals{Ironium: 10, Boranium: 5, Germanium: 5}},
		},
		ScoopShipID: {
			Name: "Scoop", Mass: 100, FuelCapacity: 400, FuelEfficiency: 0,
			WarpSpeed: 6, IdealWarp: 6, EngineID: design.EngineRadiatingRamscoop,
		},
		StarbaseID: {
			Name: "Starbase", Stardock: true,
		},
		UntabledShip: {
			Name: "Untabled", Mass: 100, FuelCapacity: 500, FuelEfficiency: 100,
			WarpSpeed: 10, IdealWarp: 6, EngineID: GhostEngine,
		},
	}
}

// NewTestGame builds a turn-1 game with one human and one AI player and no stars
func NewTestGame() *galaxy.GameState {
	human := galaxy.Player{
		ID:      shared.MustNewPlayerID(TestHumanID),
		Name:    "Humans",
		Species: galaxy.Species{Name: "Human", IdealTemperature: 0, IdealAtmosphere: 50, ToleranceRadius: 100},
	}
	ai := galaxy.Player{
		ID:      shared.MustNewPlayerID(TestAIID),
		Name:    "Machines",
		IsAI:    true,
		Species: galaxy.Species{Name: "Machine", IdealTemperature: 100, IdealAtmosphere: 10, ToleranceRadius: 80},
	}
	state := galaxy.NewGameState(TestGameID, "Test Game", human, ai)
	state.Designs = TestDesigns()
	return state
}

// AddTestStar adds a star; an empty owner leaves it unowned
func AddTestStar(state *galaxy.GameState, id string, x, y float64, owner string) *galaxy.Star {
	star := &galaxy.Star{
		ID:         id,
		Name:       id,
		Position:   shared.NewCoordinate(x, y),
		BuildQueue: []galaxy.BuildItem{},
	}
	if owner != "" {
		star.OwnerID = shared.MustNewPlayerID(owner)
	}
	state.Stars = append(state.Stars, star)
	return star
}

// AddTestFleet adds a fleet with the given stacks
func AddTestFleet(
	state *galaxy.GameState,
	id string,
	owner string,
	location galaxy.Location,
	fuel float64,
	stacks ...galaxy.ShipStack,
) *galaxy.Fleet {
	f := &galaxy.Fleet{
		ID:       id,
		OwnerID:  shared.MustNewPlayerID(owner),
		Name:     id,
		Location: location,
		Stacks:   stacks,
		Fuel:     fuel,
		Orders:   []galaxy.FleetOrder{},
	}
	state.AddFleet(f)
	return f
}

// Ships is shorthand for an undamaged stack
func Ships(designID string, count int) galaxy.ShipStack {
	return galaxy.ShipStack{DesignID: designID, Count: count}
}
