package fleet

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// Registry manages the fleet lifecycle: creation under the per-owner cap,
// naming, stack merging, and the same-location transfer primitive that split,
// separate and merge are built from.
//
// Every exported method leaves the given state untouched and returns a new one.
// Unknown fleets, designs or stars are soft failures: the input state is returned
// unchanged with a nil error.
type Registry struct {
	rules galaxy.Rules
	newID func() string
}

// NewRegistry creates a fleet registry
func NewRegistry(rules galaxy.Rules) *Registry {
	return &Registry{
		rules: rules.WithDefaults(),
		newID: uuid.NewString,
	}
}

// WithIDGenerator replaces the fleet ID source (deterministic IDs in tests)
func (r *Registry) WithIDGenerator(newID func() string) *Registry {
	r.newID = newID
	return r
}

// CreateFleet creates a fleet of one ship of designID at location, fully fuelled
func (r *Registry) CreateFleet(
	state *galaxy.GameState,
	owner shared.PlayerID,
	designID string,
	location galaxy.Location,
) (*galaxy.GameState, *galaxy.Fleet, error) {
	spec, ok := state.DesignRegistry().Resolve(designID)
	if !ok {
		return state, nil, nil
	}
	if location.IsOrbit() && state.Star(location.StarID) == nil {
		return state, nil, nil
	}

	next := state.Clone()
	f, err := r.createEmpty(next, owner, baseNameOf(next, designID), location)
	if err != nil {
		return state, nil, err
	}
	f.Stacks = []galaxy.ShipStack{{DesignID: designID, Count: 1}}
	f.Fuel = spec.FuelCapacity
	return next, f, nil
}

// AddShipToFleet adds count ships of designID, merging into an undamaged stack of the
// same design when one exists. New ships arrive with full tanks.
func (r *Registry) AddShipToFleet(
	state *galaxy.GameState,
	fleetID string,
	designID string,
	count int,
) (*galaxy.GameState, error) {
	if count <= 0 || state.Fleet(fleetID) == nil {
		return state, nil
	}
	designs := state.DesignRegistry()
	spec, ok := designs.Resolve(designID)
	if !ok {
		return state, nil
	}

	next := state.Clone()
	f := next.Fleet(fleetID)
	if err := r.addShips(f, galaxy.ShipStack{DesignID: designID, Count: count}); err != nil {
		return state, err
	}
	f.Fuel = galaxy.Tank(f, designs).Add(spec.FuelCapacity * float64(count)).Current
	return next, nil
}

// DecommissionFleet removes a fleet outright
func (r *Registry) DecommissionFleet(state *galaxy.GameState, fleetID string) (*galaxy.GameState, error) {
	if state.Fleet(fleetID) == nil {
		return state, nil
	}
	next := state.Clone()
	next.RemoveFleet(fleetID)
	return next, nil
}

// RemoveIfEmpty drops f from state when it has no ship stacks left. It mutates
// state and is meant for engines already working on a scratch copy.
func RemoveIfEmpty(state *galaxy.GameState, f *galaxy.Fleet) bool {
	if !f.IsEmpty() {
		return false
	}
	return state.RemoveFleet(f.ID)
}

// createEmpty registers a new, shipless fleet. Callers must populate it or remove it.
func (r *Registry) createEmpty(
	state *galaxy.GameState,
	owner shared.PlayerID,
	baseName string,
	location galaxy.Location,
) (*galaxy.Fleet, error) {
	owned := state.FleetsOwnedBy(owner)
	if len(owned) >= r.rules.MaxFleetsPerOwner {
		return nil, shared.NewFleetLimitExceededError(owner, r.rules.MaxFleetsPerOwner)
	}

	f := &galaxy.Fleet{
		ID:       r.newID(),
		OwnerID:  owner,
		Name:     NextFleetName(owned, baseName),
		Location: location,
		Stacks:   []galaxy.ShipStack{},
		Orders:   []galaxy.FleetOrder{},
	}
	state.AddFleet(f)
	return f, nil
}

// addShips merges stack into f, enforcing the per-stack cap
func (r *Registry) addShips(f *galaxy.Fleet, stack galaxy.ShipStack) error {
	idx := f.StackIndex(stack.DesignID, stack.Damage)
	if idx < 0 {
		if stack.Count > r.rules.MaxShipsPerStack {
			return shared.NewShipStackLimitExceededError(stack.DesignID, stack.Count, r.rules.MaxShipsPerStack)
		}
		f.Stacks = append(f.Stacks, stack)
		return nil
	}

	total := f.Stacks[idx].Count + stack.Count
	if total > r.rules.MaxShipsPerStack {
		return shared.NewShipStackLimitExceededError(stack.DesignID, total, r.rules.MaxShipsPerStack)
	}
	f.Stacks[idx].Count = total
	return nil
}
