package navigation

import (
	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// fuelDivisor converts mass x engine factor into fuel per light-year
const fuelDivisor = 2000.0

// FuelCalculator computes what a fleet burns per light-year at a given warp.
//
// Each engined stack costs (stack mass * engine factor) / 2000. Cargo costs
// (cargo mass * average factor) / 2000, where the average is the stack-mass
// weighted mean of the engined stacks' factors. Stacks without an engine that
// cannot move (starbases) are left out of fuel accounting entirely.
//
// Missing engine data is a corrupted design and returns a MissingFuelDataError;
// a stack whose design no longer resolves returns an UnknownDesignError.
type FuelCalculator struct {
	designs design.Registry
	engines *design.EngineTable
}

// NewFuelCalculator creates a fuel calculator over a design registry and engine table
func NewFuelCalculator(designs design.Registry, engines *design.EngineTable) *FuelCalculator {
	return &FuelCalculator{designs: designs, engines: engines}
}

// CostPerLightYear returns the fleet's fuel burn per light-year at warp
func (c *FuelCalculator) CostPerLightYear(fleet *galaxy.Fleet, warp int) (float64, error) {
	shipCost := 0.0
	weightedFactor := 0.0
	engineMass := 0.0

	for _, stack := range fleet.Stacks {
		spec, ok := c.designs.Resolve(stack.DesignID)
		if !ok {
			return 0, shared.NewUnknownDesignError(stack.DesignID)
		}
		if !spec.HasEngine() {
			if spec.IsStarbase() {
				continue
			}
			return 0, shared.NewMissingFuelDataError(spec.ID, "", warp)
		}
		factor, ok := c.engines.Factor(spec.EngineID, warp)
		if !ok {
			return 0, shared.NewMissingFuelDataError(spec.ID, spec.EngineID, warp)
		}

		mass := spec.Mass * float64(stack.Count)
		shipCost += mass * factor / fuelDivisor
		weightedFactor += mass * factor
		engineMass += mass
	}

	cargoCost := 0.0
	if engineMass > 0 {
		averageFactor := weightedFactor / engineMass
		cargoCost = fleet.Cargo.MassKT() * averageFactor / fuelDivisor
	}

	return shipCost + cargoCost, nil
}

// FuelRequired returns the fuel needed to cover distance at warp
func (c *FuelCalculator) FuelRequired(fleet *galaxy.Fleet, warp int, distance float64) (float64, error) {
	cost, err := c.CostPerLightYear(fleet, warp)
	if err != nil {
		return 0, err
	}
	return cost * distance, nil
}
