package navigation

import (
	"fmt"
	"math"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// Destination is where a movement check aims: a point in space or a star
type Destination struct {
	Kind     galaxy.LocationKind
	Position *shared.Coordinate
	StarID   string
}

// SpaceDestination aims at a coordinate
func SpaceDestination(position shared.Coordinate) Destination {
	return Destination{Kind: galaxy.LocationSpace, Position: &position}
}

// StarDestination aims at a star
func StarDestination(starID string) Destination {
	return Destination{Kind: galaxy.LocationOrbit, StarID: starID}
}

// MovementEvaluation is the outcome of a pre-flight check
type MovementEvaluation struct {
	IsValid       bool
	Errors        []string
	Warnings      []string
	Distance      float64
	Warp          int
	FuelRequired  float64
	FuelAvailable float64
	CanMove       bool
}

// MovementValidator checks whether a fleet can head to a destination. It never mutates.
type MovementValidator struct {
	fuel *FuelCalculator
}

// NewMovementValidator creates a validator
func NewMovementValidator(fuel *FuelCalculator) *MovementValidator {
	return &MovementValidator{fuel: fuel}
}

// Evaluate reports blocking errors, non-blocking warnings and the fuel figures of
// travelling to dest at the fleet's ideal warp.
func (v *MovementValidator) Evaluate(
	state *galaxy.GameState,
	fleet *galaxy.Fleet,
	dest Destination,
	stats MovementStats,
) MovementEvaluation {
	eval := MovementEvaluation{
		Errors:        []string{},
		Warnings:      []string{},
		FuelAvailable: fleet.Fuel,
	}

	if len(fleet.Stacks) == 0 {
		eval.Errors = append(eval.Errors, "fleet has no ships")
	}
	if stats.MaxWarp <= 0 {
		eval.Errors = append(eval.Errors, "fleet cannot move (max warp is 0)")
	}

	target, ok := v.resolveTarget(state, dest, &eval)
	if ok {
		from, err := state.PositionOf(fleet.Location)
		if err != nil {
			eval.Errors = append(eval.Errors, err.Error())
		} else {
			eval.Distance = from.DistanceTo(target)
		}
	}

	if len(eval.Errors) == 0 {
		eval.Warp = max(1, min(stats.IdealWarp, stats.MaxWarp))
		required, err := v.fuel.FuelRequired(fleet, eval.Warp, eval.Distance)
		if err != nil {
			eval.Errors = append(eval.Errors, err.Error())
		} else {
			eval.FuelRequired = required
			if required > eval.FuelAvailable {
				eval.Warnings = append(eval.Warnings, fmt.Sprintf(
					"insufficient fuel: need %.0f, have %.0f", math.Ceil(required), eval.FuelAvailable))
			}
		}
	}

	eval.IsValid = len(eval.Errors) == 0
	eval.CanMove = eval.IsValid && math.Ceil(eval.FuelRequired) <= eval.FuelAvailable
	return eval
}

func (v *MovementValidator) resolveTarget(
	state *galaxy.GameState,
	dest Destination,
	eval *MovementEvaluation,
) (shared.Coordinate, bool) {
	switch dest.Kind {
	case galaxy.LocationSpace:
		if dest.Position == nil {
			eval.Errors = append(eval.Errors, "space destination requires coordinates")
			return shared.Coordinate{}, false
		}
		return *dest.Position, true
	case galaxy.LocationOrbit:
		if dest.StarID == "" {
			eval.Errors = append(eval.Errors, "orbit destination requires a star")
			return shared.Coordinate{}, false
		}
		star := state.Star(dest.StarID)
		if star == nil {
			eval.Errors = append(eval.Errors, fmt.Sprintf("star %s not found", dest.StarID))
			return shared.Coordinate{}, false
		}
		return star.Position, true
	default:
		eval.Errors = append(eval.Errors, fmt.Sprintf("unknown destination kind %q", dest.Kind))
		return shared.Coordinate{}, false
	}
}
