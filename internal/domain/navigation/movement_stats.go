package navigation

import (
	"math"

	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// MovementStats are the fleet-wide movement limits
type MovementStats struct {
	MaxWarp         int
	IdealWarp       int
	TotalMass       float64
	TotalFuel       float64
	WorstEfficiency int
}

// MovementStatsCalculator aggregates movement limits across a fleet's stacks.
// A fleet is as slow as its slowest ship.
type MovementStatsCalculator struct {
	designs design.Registry
}

// NewMovementStatsCalculator creates a stats calculator
func NewMovementStatsCalculator(designs design.Registry) *MovementStatsCalculator {
	return &MovementStatsCalculator{designs: designs}
}

// Stats computes the movement stats of fleet. Stacks with dangling designs are skipped.
func (c *MovementStatsCalculator) Stats(fleet *galaxy.Fleet) MovementStats {
	cargoMass := fleet.Cargo.MassKT()
	if len(fleet.Stacks) == 0 {
		return MovementStats{TotalMass: math.Max(1, cargoMass)}
	}

	stats := MovementStats{
		MaxWarp:   math.MaxInt,
		IdealWarp: math.MaxInt,
		TotalMass: cargoMass,
	}
	resolved := 0
	for _, stack := range fleet.Stacks {
		spec, ok := c.designs.Resolve(stack.DesignID)
		if !ok {
			continue
		}
		resolved++
		count := float64(stack.Count)
		stats.MaxWarp = min(stats.MaxWarp, spec.WarpSpeed)
		stats.IdealWarp = min(stats.IdealWarp, spec.IdealWarp)
		stats.TotalMass += spec.Mass * count
		stats.TotalFuel += spec.FuelCapacity * count
		stats.WorstEfficiency = max(stats.WorstEfficiency, spec.FuelEfficiency)
	}
	if resolved == 0 {
		stats.MaxWarp = 0
		stats.IdealWarp = 0
	}
	return stats
}
