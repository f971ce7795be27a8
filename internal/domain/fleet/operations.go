package fleet

import (
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// SplitFleet moves the listed ships with their fuel and cargo share into a new
// fleet at the same location. Nothing changes if no ships move.
func (r *Registry) SplitFleet(
	state *galaxy.GameState,
	fleetID string,
	spec TransferSpec,
) (*galaxy.GameState, *galaxy.Fleet, error) {
	source := state.Fleet(fleetID)
	if source == nil || len(spec.Ships) == 0 {
		return state, nil, nil
	}

	next := state.Clone()
	source = next.Fleet(fleetID)
	split, err := r.createEmpty(next, source.OwnerID, baseNameOf(next, spec.Ships[0].DesignID), source.Location)
	if err != nil {
		return state, nil, err
	}
	if err := r.transferIn(next, source, split, spec); err != nil {
		return state, nil, err
	}
	if split.IsEmpty() {
		return state, nil, nil
	}
	return next, split, nil
}

// SeparateFleet fans a fleet out into one fleet per ship. The original fleet keeps
// its first ship, its orders and its cargo; every new fleet takes its ship's share of
// the fuel, proportional to tank size.
func (r *Registry) SeparateFleet(
	state *galaxy.GameState,
	fleetID string,
) (*galaxy.GameState, []*galaxy.Fleet, error) {
	source := state.Fleet(fleetID)
	if source == nil || source.ShipCount() <= 1 {
		return state, nil, nil
	}

	next := state.Clone()
	source = next.Fleet(fleetID)
	designs := next.DesignRegistry()

	fillRatio := 0.0
	if capacity := galaxy.FuelCapacity(source, designs); capacity > 0 {
		fillRatio = source.Fuel / capacity
	}

	// Snapshot the stacks: transfers mutate source.Stacks as they go.
	stacks := append([]galaxy.ShipStack(nil), source.Stacks...)
	var created []*galaxy.Fleet
	keepFirst := true
	for _, stack := range stacks {
		shipFuel := 0.0
		if spec, ok := designs.Resolve(stack.DesignID); ok {
			shipFuel = spec.FuelCapacity * fillRatio
		}
		for n := 0; n < stack.Count; n++ {
			if keepFirst {
				keepFirst = false
				continue
			}
			single, err := r.createEmpty(next, source.OwnerID, baseNameOf(next, stack.DesignID), source.Location)
			if err != nil {
				return state, nil, err
			}
			move := TransferSpec{
				Ships: []ShipTransfer{{DesignID: stack.DesignID, Damage: stack.Damage, Count: 1}},
				Fuel:  shipFuel,
			}
			if err := r.transferIn(next, source, single, move); err != nil {
				return state, nil, err
			}
			created = append(created, single)
		}
	}
	return next, created, nil
}

// MergeFleets empties each source fleet into target. Sources elsewhere are skipped.
func (r *Registry) MergeFleets(
	state *galaxy.GameState,
	targetID string,
	sourceIDs []string,
) (*galaxy.GameState, error) {
	if state.Fleet(targetID) == nil {
		return state, nil
	}

	next := state.Clone()
	target := next.Fleet(targetID)
	merged := false
	for _, sourceID := range sourceIDs {
		if !transferable(next, sourceID, targetID) {
			continue
		}
		source := next.Fleet(sourceID)
		if err := r.transferIn(next, source, target, Everything(source)); err != nil {
			return state, err
		}
		merged = true
	}
	if !merged {
		return state, nil
	}
	return next, nil
}
