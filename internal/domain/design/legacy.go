package design

import (
	"fmt"
	"math"

	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// Built-in design identifiers
const (
	LegacyScout           = "scout"
	LegacyColonyShip      = "colony-ship"
	LegacyMediumFreighter = "medium-freighter"
	LegacyDestroyer       = "destroyer"
	LegacyFuelTransport   = "fuel-transport"
	LegacySpaceDock       = "space-dock"
)

// legacyEnginePrefix namespaces the synthesised tables of legacy designs
const legacyEnginePrefix = "legacy:"

var legacyDesigns = map[string]ShipDesignSpec{
	LegacyScout: {
		Name: "Scout", Mass: 25, FuelCapacity: 50, FuelEfficiency: 100,
		WarpSpeed: 9, IdealWarp: 6, EngineID: EngineLongHump6,
		Cost: Cost{Resources: 10, Minerals: shared.Minerals{Ironium: 4, Boranium: 2, Germanium: 4}},
	},
	LegacyColonyShip: {
		Name: "Colony Ship", Mass: 61, FuelCapacity: 200, FuelEfficiency: 100,
		WarpSpeed: 9, IdealWarp: 6, EngineID: EngineLongHump6,
		CargoCapacity: 25, ColonistCapacity: 25000, ColonyModule: true,
		Cost: Cost{Resources: 18, Minerals: shared.Minerals{Ironium: 12, Boranium: 2, Germanium: 11}},
	},
	LegacyMediumFreighter: {
		Name: "Medium Freighter", Mass: 69, FuelCapacity: 450, FuelEfficiency: 100,
		WarpSpeed: 9, IdealWarp: 6, EngineID: EngineLongHump6,
		CargoCapacity: 210,
		Cost: Cost{Resources: 25, Minerals: shared.Minerals{Ironium: 20, Boranium: 0, Germanium: 19}},
	},
	LegacyDestroyer: {
		Name: "Destroyer", Mass: 135, FuelCapacity: 280, FuelEfficiency: 90,
		WarpSpeed: 10, IdealWarp: 7, EngineID: LegacyEngineID(LegacyDestroyer),
		Cost: Cost{Resources: 40, Minerals: shared.Minerals{Ironium: 30, Boranium: 8, Germanium: 10}},
	},
	LegacyFuelTransport: {
		Name: "Fuel Transport", Mass: 60, FuelCapacity: 750, FuelEfficiency: 0,
		WarpSpeed: 6, IdealWarp: 6, EngineID: EngineRadiatingRamscoop,
		Cost: Cost{Resources: 20, Minerals: shared.Minerals{Ironium: 10, Boranium: 5, Germanium: 5}},
	},
	LegacySpaceDock: {
		Name: "Space Dock", Mass: 0, FuelCapacity: 0, FuelEfficiency: 0,
		WarpSpeed: 0, IdealWarp: 0, Stardock: true,
		Cost: Cost{Resources: 100, Minerals: shared.Minerals{Ironium: 40, Boranium: 20, Germanium: 30}},
	},
}

// LegacyCatalog returns the registry of hard-coded designs
func LegacyCatalog() *CatalogRegistry {
	return NewCatalogRegistry(SourceLegacy, legacyDesigns)
}

// legacyEngineTables builds usage tables for legacy designs that reference a
// synthesised engine instead of a table entry.
func legacyEngineTables() map[string]FuelUsage {
	tables := make(map[string]FuelUsage)
	for id, spec := range legacyDesigns {
		if spec.EngineID != LegacyEngineID(id) {
			continue
		}
		tables[spec.EngineID] = LegacyFuelUsage(spec.IdealWarp, spec.FuelEfficiency)
	}
	return tables
}

// LegacyEngineFactor is the compatibility formula older saves relied on when a
// design carried no fuel usage table. It is only used to synthesise tables at
// catalogue construction; the fuel calculator never falls back to it.
//
// Up to the ideal warp the factor is flat at 20 scaled by efficiency; past it the
// factor grows with the square of the overspeed.
func LegacyEngineFactor(warp, idealWarp, fuelEfficiency int) float64 {
	if fuelEfficiency <= 0 || warp <= 0 {
		return 0
	}
	base := 20 * float64(fuelEfficiency) / 100
	if idealWarp <= 0 || warp <= idealWarp {
		return base
	}
	over := float64(warp - idealWarp)
	return base * math.Pow(1+0.5*over, 2)
}

// LegacyFuelUsage expands LegacyEngineFactor into a full warp 1..10 table
func LegacyFuelUsage(idealWarp, fuelEfficiency int) FuelUsage {
	usage := make(FuelUsage, MaxWarp)
	for warp := 1; warp <= MaxWarp; warp++ {
		usage[warp] = LegacyEngineFactor(warp, idealWarp, fuelEfficiency)
	}
	return usage
}

// LegacyEngineID returns the synthesised engine identifier of a legacy design
func LegacyEngineID(designID string) string {
	return fmt.Sprintf("%s%s", legacyEnginePrefix, designID)
}
