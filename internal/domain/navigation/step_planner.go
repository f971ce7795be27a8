package navigation

import (
	"math"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// StepPlan is one turn of travel toward a destination
type StepPlan struct {
	Warp       int
	CostPerLY  float64
	Distance   float64
	Step       float64
	Arrives    bool
	FuelBurned float64
}

// StepPlanner picks the warp and the distance a fleet covers this turn
type StepPlanner struct {
	fuel  *FuelCalculator
	rules galaxy.Rules
}

// NewStepPlanner creates a planner
func NewStepPlanner(fuel *FuelCalculator, rules galaxy.Rules) *StepPlanner {
	return &StepPlanner{fuel: fuel, rules: rules.WithDefaults()}
}

// SelectWarp starts at min(requested or max warp, max warp) and steps down until the
// whole trip is affordable with the fuel aboard. Warp 1 is always returned as the
// floor, even when unaffordable, so the fleet still makes progress.
func (p *StepPlanner) SelectWarp(
	fleet *galaxy.Fleet,
	stats MovementStats,
	requested *int,
	distance float64,
) (int, float64, error) {
	warp := stats.MaxWarp
	if requested != nil && *requested > 0 {
		warp = min(*requested, stats.MaxWarp)
	}
	warp = max(warp, 1)

	tank := galaxy.Tank(fleet, p.fuel.designs)
	for ; warp > 1; warp-- {
		cost, err := p.fuel.CostPerLightYear(fleet, warp)
		if err != nil {
			return 0, 0, err
		}
		if tank.CanTravel(cost * distance) {
			return warp, cost, nil
		}
	}

	cost, err := p.fuel.CostPerLightYear(fleet, 1)
	if err != nil {
		return 0, 0, err
	}
	return 1, cost, nil
}

// Plan computes this turn's movement over distance light-years
func (p *StepPlanner) Plan(
	fleet *galaxy.Fleet,
	stats MovementStats,
	requested *int,
	distance float64,
) (StepPlan, error) {
	warp, cost, err := p.SelectWarp(fleet, stats, requested, distance)
	if err != nil {
		return StepPlan{}, err
	}

	fuelLimited := math.Inf(1)
	if cost > 0 {
		fuelLimited = fleet.Fuel / cost
	}
	step := math.Min(distance, math.Min(fuelLimited, float64(warp)*p.rules.DistancePerWarp))

	return StepPlan{
		Warp:       warp,
		CostPerLY:  cost,
		Distance:   distance,
		Step:       step,
		Arrives:    step >= distance-galaxy.DefaultArrivalTolerance,
		FuelBurned: math.Ceil(cost * step),
	}, nil
}
