package design

import "github.com/andrescamacho/starlanes-go/internal/domain/shared"

// Source tells which catalogue a design was resolved from
type Source string

const (
	SourceLegacy Source = "legacy"
	SourceUser   Source = "user"
)

// Cost is the construction cost of one ship, recycled on colonization
type Cost struct {
	Resources float64         `json:"resources"`
	Minerals  shared.Minerals `json:"minerals"`
}

// ShipDesignSpec is the normalized view of a design, whichever catalogue it came from.
//
// FuelEfficiency is 100 for a baseline engine and 0 for ramscoop-class engines that
// never burn fuel. A design without EngineID (starbases) takes no part in fuel accounting.
type ShipDesignSpec struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Source           Source  `json:"source"`
	Mass             float64 `json:"mass"`
	FuelCapacity     float64 `json:"fuel_capacity"`
	FuelEfficiency   int     `json:"fuel_efficiency"`
	WarpSpeed        int     `json:"warp_speed"`
	IdealWarp        int     `json:"ideal_warp"`
	CargoCapacity    float64 `json:"cargo_capacity"`
	ColonistCapacity int     `json:"colonist_capacity"`
	ColonyModule     bool    `json:"colony_module"`
	Stardock         bool    `json:"stardock"`
	EngineID         string  `json:"engine_id,omitempty"`
	Cost             Cost    `json:"cost"`
}

// HasEngine reports whether the design takes part in fuel accounting
func (s ShipDesignSpec) HasEngine() bool {
	return s.EngineID != ""
}

// IsRamscoop reports a ramscoop-class engine, which regenerates fuel in deep space
func (s ShipDesignSpec) IsRamscoop() bool {
	return s.FuelEfficiency == 0 && s.HasEngine()
}

// IsStarbase reports an immobile design
func (s ShipDesignSpec) IsStarbase() bool {
	return !s.HasEngine() && s.WarpSpeed == 0
}
