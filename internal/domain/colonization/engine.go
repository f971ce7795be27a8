package colonization

import (
	"math"

	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

const (
	// FullHabitabilityPopulation is the population cap of a 100% world
	FullHabitabilityPopulation = 1_000_000
	// HostileWorldPopulation is the cap of a world with no positive habitability
	HostileWorldPopulation = 1_000
)

// RejectReason explains why a colonization did not happen
type RejectReason string

const (
	RejectNone           RejectReason = ""
	RejectUnknownFleet   RejectReason = "unknown fleet"
	RejectNotInOrbit     RejectReason = "fleet is not in orbit"
	RejectUnknownStar    RejectReason = "star not found"
	RejectWrongStar      RejectReason = "fleet does not orbit the target star"
	RejectNoColonyModule RejectReason = "no colony ship in fleet"
	RejectAlreadyOwned   RejectReason = "star is already owned"
)

// Outcome describes one colonization attempt
type Outcome struct {
	Colonized     bool
	Reason        RejectReason
	StarID        string
	OwnerID       shared.PlayerID
	Habitability  int
	MaxPopulation int
	Population    int
	FleetRemoved  bool
}

// Engine turns an unowned star into a colony of the player whose colony ship
// orbits it. Only unowned stars can be colonized; anything else is a soft
// rejection that leaves the state untouched.
type Engine struct {
	habitability galaxy.HabitabilityCalculator
	governor     galaxy.DefaultGovernorProvider
}

// NewEngine creates a colonization engine
func NewEngine(habitability galaxy.HabitabilityCalculator, governor galaxy.DefaultGovernorProvider) *Engine {
	return &Engine{habitability: habitability, governor: governor}
}

// ColonizeNow colonizes the star fleetID orbits, returning a new state on success.
func (e *Engine) ColonizeNow(state *galaxy.GameState, fleetID string) (*galaxy.GameState, Outcome) {
	f := state.Fleet(fleetID)
	if f == nil {
		return state, Outcome{Reason: RejectUnknownFleet}
	}
	if !f.IsInOrbit() {
		return state, Outcome{Reason: RejectNotInOrbit}
	}

	next := state.Clone()
	outcome := e.Colonize(next, next.Fleet(fleetID), f.Location.StarID)
	if !outcome.Colonized {
		return state, outcome
	}
	return next, outcome
}

// Colonize runs the transition in place on a scratch state. Preconditions are
// checked before anything is touched, so a rejected attempt mutates nothing.
func (e *Engine) Colonize(state *galaxy.GameState, f *galaxy.Fleet, starID string) Outcome {
	outcome := Outcome{StarID: starID}
	if outcome.Reason = e.check(state, f, starID); outcome.Reason != RejectNone {
		return outcome
	}

	star := state.Star(starID)
	designs := state.DesignRegistry()
	idx := galaxy.ColonyStackIndex(f, designs)
	spec, _ := designs.Resolve(f.Stacks[idx].DesignID)

	// The colony ship is consumed.
	f.Stacks[idx].Count--
	if f.Stacks[idx].Count == 0 {
		f.RemoveStack(idx)
	}

	// Ownership, automation policy, fresh queue.
	governor := e.governor.Current()
	star.OwnerID = f.OwnerID
	star.Governor = &governor
	star.BuildQueue = []galaxy.BuildItem{}

	// Population cap from habitability.
	species := galaxy.Species{}
	if p, ok := state.Player(f.OwnerID); ok {
		species = p.Species
	}
	hab := e.habitability.Calculate(star, species)
	star.MaxPopulation = MaxPopulation(hab)

	// Colonists replace whatever population was recorded.
	star.Population = f.Cargo.Colonists

	// Cargo minerals land on the surface and the ship is recycled.
	star.SurfaceMinerals = star.SurfaceMinerals.Add(f.Cargo.Minerals).Add(spec.Cost.Minerals)
	star.Resources += spec.Cost.Resources

	// Hold emptied of minerals and colonists, orders cleared.
	f.Cargo.Minerals = shared.Minerals{}
	f.Cargo.Colonists = 0
	f.Orders = []galaxy.FleetOrder{}

	// An empty fleet leaves the game.
	outcome.FleetRemoved = fleet.RemoveIfEmpty(state, f)

	outcome.Colonized = true
	outcome.OwnerID = f.OwnerID
	outcome.Habitability = hab
	outcome.MaxPopulation = star.MaxPopulation
	outcome.Population = star.Population
	return outcome
}

func (e *Engine) check(state *galaxy.GameState, f *galaxy.Fleet, starID string) RejectReason {
	if f == nil {
		return RejectUnknownFleet
	}
	if !f.IsInOrbit() {
		return RejectNotInOrbit
	}
	star := state.Star(starID)
	if star == nil {
		return RejectUnknownStar
	}
	if !f.Location.IsOrbiting(starID) {
		return RejectWrongStar
	}
	if galaxy.ColonyStackIndex(f, state.DesignRegistry()) < 0 {
		return RejectNoColonyModule
	}
	if star.IsOwned() {
		return RejectAlreadyOwned
	}
	return RejectNone
}

// MaxPopulation converts a habitability percentage into a population cap. Hostile
// worlds can still be settled at the minimal cap.
func MaxPopulation(habitability int) int {
	if habitability <= 0 {
		return HostileWorldPopulation
	}
	return int(math.Floor(FullHabitabilityPopulation * float64(habitability) / 100))
}
