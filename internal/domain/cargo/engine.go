package cargo

import (
	"math"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// Moved reports how much of each item changed hands
type Moved map[shared.CargoItem]float64

// Engine moves cargo between a fleet and the star it orbits.
//
// Items are applied in shared.CargoTransferOrder with the fleet's free capacity
// recomputed after each one. Colonists take 1 kT per 1000 persons.
type Engine struct{}

// NewEngine creates a cargo transfer engine
func NewEngine() *Engine {
	return &Engine{}
}

// LoadCargo moves cargo from the star's stockpile into the fleet's hold
func (e *Engine) LoadCargo(
	state *galaxy.GameState,
	fleetID string,
	starID string,
	manifest Manifest,
) (*galaxy.GameState, Moved, error) {
	return e.apply(state, fleetID, starID, manifest, true)
}

// UnloadCargo moves cargo from the fleet's hold onto the star. Fill is not allowed.
func (e *Engine) UnloadCargo(
	state *galaxy.GameState,
	fleetID string,
	starID string,
	manifest Manifest,
) (*galaxy.GameState, Moved, error) {
	for item, amount := range manifest {
		if amount.Kind == AmountFill {
			return state, nil, shared.NewValidationError(string(item), "fill is only valid when loading")
		}
	}
	return e.apply(state, fleetID, starID, manifest, false)
}

func (e *Engine) apply(
	state *galaxy.GameState,
	fleetID string,
	starID string,
	manifest Manifest,
	load bool,
) (*galaxy.GameState, Moved, error) {
	moved := Moved{}
	f, star := state.Fleet(fleetID), state.Star(starID)
	if f == nil || star == nil || !f.Location.IsOrbiting(starID) {
		return state, moved, nil
	}

	next := state.Clone()
	f, star = next.Fleet(fleetID), next.Star(starID)
	designs := next.DesignRegistry()

	for _, item := range shared.CargoTransferOrder {
		amount, ok := manifest[item]
		if !ok {
			continue
		}

		var available, room float64
		if load {
			available = starAmount(star, item)
			room = galaxy.FreeCargoCapacity(f, designs) / shared.KilotonsPerUnit(item)
		} else {
			available = f.Cargo.Amount(item)
			room = math.Inf(1)
		}

		wanted := amount.Quantity
		switch amount.Kind {
		case AmountAll:
			wanted = available
		case AmountFill:
			wanted = room
		}

		actual := math.Min(wanted, math.Min(available, room))
		if item == shared.CargoColonists {
			actual = shared.WholeColonists(actual)
		}
		if actual <= 0 {
			continue
		}

		if load {
			setStarAmount(star, item, available-actual)
			f.Cargo = f.Cargo.WithAmount(item, f.Cargo.Amount(item)+actual)
		} else {
			f.Cargo = f.Cargo.WithAmount(item, available-actual)
			setStarAmount(star, item, starAmount(star, item)+actual)
		}
		moved[item] = actual
	}

	if len(moved) == 0 {
		return state, moved, nil
	}
	return next, moved, nil
}

func starAmount(star *galaxy.Star, item shared.CargoItem) float64 {
	switch item {
	case shared.CargoIronium:
		return star.SurfaceMinerals.Ironium
	case shared.CargoBoranium:
		return star.SurfaceMinerals.Boranium
	case shared.CargoGermanium:
		return star.SurfaceMinerals.Germanium
	case shared.CargoResources:
		return star.Resources
	case shared.CargoColonists:
		return float64(star.Population)
	}
	return 0
}

func setStarAmount(star *galaxy.Star, item shared.CargoItem, value float64) {
	switch item {
	case shared.CargoIronium:
		star.SurfaceMinerals.Ironium = value
	case shared.CargoBoranium:
		star.SurfaceMinerals.Boranium = value
	case shared.CargoGermanium:
		star.SurfaceMinerals.Germanium = value
	case shared.CargoResources:
		star.Resources = value
	case shared.CargoColonists:
		star.Population = int(value)
	}
}
