package config

import (
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// GameConfig holds the tunable rules of the turn engine
type GameConfig struct {
	// Automation policy assigned to freshly colonized stars
	DefaultGovernor string `mapstructure:"default_governor" validate:"required,oneof=manual balanced mining manufacturing research defense"`

	MaxFleetsPerOwner int `mapstructure:"max_fleets_per_owner" validate:"min=1"`
	MaxShipsPerStack  int `mapstructure:"max_ships_per_stack" validate:"min=1"`

	// Light-years travelled per warp factor per turn
	WarpDistancePerTurn float64 `mapstructure:"warp_distance_per_turn" validate:"gt=0"`

	// A Move that ends this close to a star docks there
	ArrivalSnapRadius float64 `mapstructure:"arrival_snap_radius" validate:"gte=0"`
}

// Rules converts the configuration into engine rules
func (g GameConfig) Rules() galaxy.Rules {
	return galaxy.Rules{
		MaxFleetsPerOwner: g.MaxFleetsPerOwner,
		MaxShipsPerStack:  g.MaxShipsPerStack,
		DistancePerWarp:   g.WarpDistancePerTurn,
		ArrivalSnapRadius: g.ArrivalSnapRadius,
	}.WithDefaults()
}

// Governor resolves the configured default governor
func (g GameConfig) Governor() galaxy.DefaultGovernorProvider {
	gov, err := galaxy.ParseGovernorType(g.DefaultGovernor)
	if err != nil {
		gov = galaxy.GovernorBalanced
	}
	return galaxy.StaticGovernor(gov)
}
