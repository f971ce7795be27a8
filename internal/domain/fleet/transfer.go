package fleet

import (
	"math"

	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// ShipTransfer moves Count ships out of the (DesignID, Damage) stack
type ShipTransfer struct {
	DesignID string
	Damage   int
	Count    int
}

// TransferSpec lists what moves from one fleet to another
type TransferSpec struct {
	Ships []ShipTransfer
	Fuel  float64
	Cargo shared.Cargo
}

// Everything returns a spec that empties source into another fleet
func Everything(source *galaxy.Fleet) TransferSpec {
	spec := TransferSpec{Fuel: source.Fuel, Cargo: source.Cargo}
	for _, s := range source.Stacks {
		spec.Ships = append(spec.Ships, ShipTransfer{DesignID: s.DesignID, Damage: s.Damage, Count: s.Count})
	}
	return spec
}

// Transfer moves ships, fuel and cargo between two fleets sharing an identical
// location. Ship requests larger than the source stack are skipped; fuel and each
// cargo item are capped at what the source holds and what the target can take.
// The source is removed if it ends with no stacks.
func (r *Registry) Transfer(
	state *galaxy.GameState,
	sourceID string,
	targetID string,
	spec TransferSpec,
) (*galaxy.GameState, error) {
	if !transferable(state, sourceID, targetID) {
		return state, nil
	}
	next := state.Clone()
	if err := r.transferIn(next, next.Fleet(sourceID), next.Fleet(targetID), spec); err != nil {
		return state, err
	}
	return next, nil
}

func transferable(state *galaxy.GameState, sourceID, targetID string) bool {
	if sourceID == targetID {
		return false
	}
	source, target := state.Fleet(sourceID), state.Fleet(targetID)
	if source == nil || target == nil {
		return false
	}
	return source.Location.SameAs(target.Location)
}

// transferIn applies spec on a scratch state. Ships move first so the target's
// tanks and holds grow before fuel and cargo follow.
func (r *Registry) transferIn(
	state *galaxy.GameState,
	source *galaxy.Fleet,
	target *galaxy.Fleet,
	spec TransferSpec,
) error {
	designs := state.DesignRegistry()

	for _, req := range spec.Ships {
		idx := source.StackIndex(req.DesignID, req.Damage)
		if idx < 0 || req.Count <= 0 || source.Stacks[idx].Count < req.Count {
			continue
		}
		moved := galaxy.ShipStack{DesignID: req.DesignID, Damage: req.Damage, Count: req.Count}
		if err := r.addShips(target, moved); err != nil {
			return err
		}
		source.Stacks[idx].Count -= req.Count
		if source.Stacks[idx].Count == 0 {
			source.RemoveStack(idx)
		}
	}

	moveFuel(source, target, spec.Fuel, designs)
	for _, item := range shared.CargoTransferOrder {
		moveCargo(source, target, item, spec.Cargo.Amount(item), designs)
	}
	spillOverflow(source, target, designs)

	RemoveIfEmpty(state, source)
	return nil
}

func moveFuel(source, target *galaxy.Fleet, requested float64, designs design.Registry) {
	tank := galaxy.Tank(target, designs)
	amount := math.Min(requested, math.Min(source.Fuel, tank.Room()))
	if amount <= 0 {
		return
	}
	source.Fuel -= amount
	target.Fuel = tank.Add(amount).Current
}

func moveCargo(source, target *galaxy.Fleet, item shared.CargoItem, requested float64, designs design.Registry) {
	room := galaxy.FreeCargoCapacity(target, designs) / shared.KilotonsPerUnit(item)
	amount := math.Min(requested, math.Min(source.Cargo.Amount(item), room))
	if item == shared.CargoColonists {
		amount = shared.WholeColonists(amount)
	}
	if amount <= 0 {
		return
	}
	source.Cargo = source.Cargo.WithAmount(item, source.Cargo.Amount(item)-amount)
	target.Cargo = target.Cargo.WithAmount(item, target.Cargo.Amount(item)+amount)
}

// spillOverflow keeps the source within its shrunken tanks and holds after ships
// left: whatever no longer fits travels with the departing ships if the target has
// room, and is lost otherwise.
func spillOverflow(source, target *galaxy.Fleet, designs design.Registry) {
	if fuelCap := galaxy.FuelCapacity(source, designs); source.Fuel > fuelCap {
		moveFuel(source, target, source.Fuel-fuelCap, designs)
		source.Fuel = math.Min(source.Fuel, fuelCap)
	}

	over := source.Cargo.UsageKT() - galaxy.CargoCapacity(source, designs)
	for i := len(shared.CargoTransferOrder) - 1; i >= 0 && over > 0; i-- {
		item := shared.CargoTransferOrder[i]
		perUnit := shared.KilotonsPerUnit(item)
		units := math.Min(source.Cargo.Amount(item), math.Ceil(over/perUnit))
		if units <= 0 {
			continue
		}
		before := source.Cargo.Amount(item)
		moveCargo(source, target, item, units, designs)
		moved := before - source.Cargo.Amount(item)
		if moved < units {
			source.Cargo = source.Cargo.WithAmount(item, source.Cargo.Amount(item)-(units-moved))
		}
		over -= units * perUnit
	}
}
