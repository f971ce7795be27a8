package galaxy

// Compatibility values of the tunable game constants. DistancePerWarp and
// ArrivalSnapRadius have no physical derivation; they are kept at these values so
// existing saves replay identically.
const (
	DefaultMaxFleetsPerOwner = 512
	DefaultMaxShipsPerStack  = 32000
	DefaultDistancePerWarp   = 20.0
	DefaultArrivalSnapRadius = 2.0
	DefaultArrivalTolerance  = 0.001
)

// Rules bundles the game constants the engines consult
type Rules struct {
	MaxFleetsPerOwner int     `json:"max_fleets_per_owner"`
	MaxShipsPerStack  int     `json:"max_ships_per_stack"`
	DistancePerWarp   float64 `json:"distance_per_warp"`
	ArrivalSnapRadius float64 `json:"arrival_snap_radius"`
}

// DefaultRules returns the compatibility rule set
func DefaultRules() Rules {
	return Rules{
		MaxFleetsPerOwner: DefaultMaxFleetsPerOwner,
		MaxShipsPerStack:  DefaultMaxShipsPerStack,
		DistancePerWarp:   DefaultDistancePerWarp,
		ArrivalSnapRadius: DefaultArrivalSnapRadius,
	}
}

// WithDefaults fills zero fields from DefaultRules
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if r.MaxFleetsPerOwner <= 0 {
		r.MaxFleetsPerOwner = d.MaxFleetsPerOwner
	}
	if r.MaxShipsPerStack <= 0 {
		r.MaxShipsPerStack = d.MaxShipsPerStack
	}
	if r.DistancePerWarp <= 0 {
		r.DistancePerWarp = d.DistancePerWarp
	}
	if r.ArrivalSnapRadius <= 0 {
		r.ArrivalSnapRadius = d.ArrivalSnapRadius
	}
	return r
}
