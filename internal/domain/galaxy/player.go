package galaxy

import "github.com/andrescamacho/starlanes-go/internal/domain/shared"

// Species holds the habitat a race thrives in
type Species struct {
	Name             string  `json:"name"`
	IdealTemperature float64 `json:"ideal_temperature"`
	IdealAtmosphere  float64 `json:"ideal_atmosphere"`
	ToleranceRadius  float64 `json:"tolerance_radius"`
}

// Player is a human or AI empire
type Player struct {
	ID      shared.PlayerID `json:"id"`
	Name    string          `json:"name"`
	IsAI    bool            `json:"is_ai"`
	Species Species         `json:"species"`
}
