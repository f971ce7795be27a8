package turn

import (
	"errors"

	"github.com/andrescamacho/starlanes-go/internal/domain/colonization"
	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// Refuel rates as fractions of total fuel capacity
const (
	StardockRefuelRate = 1.0
	OrbitRefuelRate    = 0.25
	RamscoopRefuelRate = 0.15
)

// Processor resolves one player's fleets for a turn
type Processor struct {
	rules     galaxy.Rules
	engines   *design.EngineTable
	colonizer *colonization.Engine
}

// NewProcessor creates a turn processor
func NewProcessor(rules galaxy.Rules, engines *design.EngineTable, colonizer *colonization.Engine) *Processor {
	return &Processor{
		rules:     rules.WithDefaults(),
		engines:   engines,
		colonizer: colonizer,
	}
}

// ProcessFleets refuels every fleet of playerID and resolves its head order, in
// fleet list order. Work happens on a clone; the clone is returned only if the
// whole pass succeeds, so a failed turn leaves state untouched.
//
// Earlier fleets can change what later fleets see. A colonization earlier in the
// pass makes the star own-owned for refuelling of fleets processed after it.
func (p *Processor) ProcessFleets(state *galaxy.GameState, playerID shared.PlayerID) (*galaxy.GameState, *Report, error) {
	next := state.Clone()
	designs := next.DesignRegistry()
	run := &pass{
		state:   next,
		designs: designs,
		stats:   navigation.NewMovementStatsCalculator(designs),
		planner: navigation.NewStepPlanner(navigation.NewFuelCalculator(designs, p.engines), p.rules),
		rules:   p.rules,
		report:  &Report{PlayerID: playerID},
		proc:    p,
	}

	for _, f := range next.FleetsOwnedBy(playerID) {
		if next.Fleet(f.ID) == nil {
			continue
		}
		run.report.FleetsProcessed++
		run.refuel(f)
		if err := run.resolveHeadOrder(f); err != nil {
			return state, nil, err
		}
	}
	return next, run.report, nil
}

// pass holds the collaborators of one ProcessFleets call
type pass struct {
	state   *galaxy.GameState
	designs design.Registry
	stats   *navigation.MovementStatsCalculator
	planner *navigation.StepPlanner
	rules   galaxy.Rules
	report  *Report
	proc    *Processor
}

func (r *pass) refuel(f *galaxy.Fleet) {
	capacity := galaxy.FuelCapacity(f, r.designs)
	if capacity <= 0 {
		return
	}

	rate := 0.0
	if f.IsInOrbit() {
		star := r.state.Star(f.Location.StarID)
		if star == nil || !star.IsOwnedBy(f.OwnerID) {
			return
		}
		rate = OrbitRefuelRate
		for _, other := range r.state.FleetsAtStar(star.ID) {
			if other.OwnerID.Equals(f.OwnerID) && galaxy.HasStardock(other, r.designs) {
				rate = StardockRefuelRate
				break
			}
		}
	} else if galaxy.HasRamscoop(f, r.designs) {
		rate = RamscoopRefuelRate
	}
	if rate == 0 {
		return
	}

	before := f.Fuel
	f.Fuel = galaxy.Tank(f, r.designs).Add(capacity * rate).Current
	if added := f.Fuel - before; added > 0 {
		r.report.add(Event{FleetID: f.ID, Kind: EventRefueled, StarID: f.Location.StarID, FuelAdded: added})
	}
}

func (r *pass) resolveHeadOrder(f *galaxy.Fleet) error {
	order, ok := f.HeadOrder()
	if !ok {
		return nil
	}
	switch {
	case order.IsMovement():
		return r.move(f, order)
	case order.Type == galaxy.OrderColonize:
		r.colonize(f, order)
	default:
		r.drop(f, "unknown order type")
	}
	return nil
}

func (r *pass) move(f *galaxy.Fleet, order galaxy.FleetOrder) error {
	var target shared.Coordinate
	if order.Type == galaxy.OrderOrbit {
		star := r.state.Star(order.StarID)
		if star == nil || f.Location.IsOrbiting(order.StarID) {
			if order.Action == galaxy.OrbitActionColonize {
				f.InsertOrderAfterHead(galaxy.ColonizeOrder(order.StarID))
			}
			if star == nil {
				r.drop(f, "star not found")
			} else {
				r.drop(f, "already in orbit")
			}
			return nil
		}
		target = star.Position
	} else {
		if order.Destination == nil {
			r.drop(f, "move order without destination")
			return nil
		}
		target = *order.Destination
	}

	stats := r.stats.Stats(f)
	if stats.MaxWarp <= 0 {
		r.drop(f, "fleet has no engines")
		return nil
	}
	position, err := r.state.PositionOf(f.Location)
	if err != nil {
		r.drop(f, err.Error())
		return nil
	}
	distance := position.DistanceTo(target)

	plan, err := r.planner.Plan(f, stats, order.Warp, distance)
	if err != nil {
		if errors.Is(err, shared.ErrUnknownDesign) {
			r.drop(f, err.Error())
			return nil
		}
		return err
	}

	f.Fuel = galaxy.Tank(f, r.designs).Consume(plan.FuelBurned).Current

	if !plan.Arrives {
		f.Location = galaxy.InSpace(position.MoveToward(target, plan.Step))
		r.report.add(Event{FleetID: f.ID, Kind: EventMoved, Warp: plan.Warp, Step: plan.Step, FuelBurned: plan.FuelBurned})
		return nil
	}

	switch {
	case order.Type == galaxy.OrderOrbit:
		f.Location = galaxy.InOrbit(order.StarID)
		if order.Action == galaxy.OrbitActionColonize {
			f.InsertOrderAfterHead(galaxy.ColonizeOrder(order.StarID))
		}
	default:
		if star := r.state.StarNear(target, r.rules.ArrivalSnapRadius); star != nil {
			f.Location = galaxy.InOrbit(star.ID)
		} else {
			f.Location = galaxy.InSpace(target)
		}
	}
	f.PopOrder()
	r.report.add(Event{
		FleetID:    f.ID,
		Kind:       EventArrived,
		StarID:     f.Location.StarID,
		Warp:       plan.Warp,
		Step:       plan.Step,
		FuelBurned: plan.FuelBurned,
	})
	return nil
}

func (r *pass) colonize(f *galaxy.Fleet, order galaxy.FleetOrder) {
	outcome := r.proc.colonizer.Colonize(r.state, f, order.StarID)
	if !outcome.Colonized {
		f.PopOrder()
		r.report.add(Event{FleetID: f.ID, Kind: EventColonizeRejected, StarID: order.StarID, Reason: string(outcome.Reason)})
		return
	}
	r.report.add(Event{FleetID: f.ID, Kind: EventColonized, StarID: outcome.StarID})
}

func (r *pass) drop(f *galaxy.Fleet, reason string) {
	order, _ := f.HeadOrder()
	f.PopOrder()
	r.report.add(Event{FleetID: f.ID, Kind: EventOrderDropped, StarID: order.StarID, Reason: reason})
}
