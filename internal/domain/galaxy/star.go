package galaxy

import "github.com/andrescamacho/starlanes-go/internal/domain/shared"

// BuildItem is one entry of a star's production queue
type BuildItem struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Environment describes the colonizable body of a star
type Environment struct {
	Temperature float64 `json:"temperature"`
	Atmosphere  float64 `json:"atmosphere"`
}

// Star is a star system holding exactly one colonizable body.
// An unowned star has a zero OwnerID.
type Star struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Position              shared.Coordinate `json:"position"`
	OwnerID               shared.PlayerID   `json:"owner_id"`
	Environment           Environment       `json:"environment"`
	Population            int               `json:"population"`
	MaxPopulation         int               `json:"max_population"`
	Resources             float64           `json:"resources"`
	SurfaceMinerals       shared.Minerals   `json:"surface_minerals"`
	MineralConcentrations shared.Minerals   `json:"mineral_concentrations"`
	Mines                 int               `json:"mines"`
	Factories             int               `json:"factories"`
	Defenses              int               `json:"defenses"`
	Scanner               int               `json:"scanner"`
	Governor              *GovernorType     `json:"governor,omitempty"`
	BuildQueue            []BuildItem       `json:"build_queue"`
}

// IsOwned reports whether any player owns the star
func (s *Star) IsOwned() bool {
	return !s.OwnerID.IsZero()
}

// IsOwnedBy reports whether playerID owns the star
func (s *Star) IsOwnedBy(playerID shared.PlayerID) bool {
	return s.IsOwned() && s.OwnerID.Equals(playerID)
}

// Clone returns a deep copy
func (s *Star) Clone() *Star {
	c := *s
	if s.Governor != nil {
		g := *s.Governor
		c.Governor = &g
	}
	c.BuildQueue = append([]BuildItem(nil), s.BuildQueue...)
	return &c
}
