package galaxy

import (
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// GameState is the aggregate root of a game
//
// Invariants:
// - every star and design referenced by a fleet or order resolves, or the order is dropped
// - an owner never holds more fleets than Rules.MaxFleetsPerOwner
// - no fleet without ship stacks is kept
//
// Commands never mutate a state they were given; they Clone and return the copy.
type GameState struct {
	ID          string                           `json:"id"`
	Name        string                           `json:"name"`
	Turn        int                              `json:"turn"`
	HumanPlayer Player                           `json:"human_player"`
	AIPlayers   []Player                         `json:"ai_players"`
	Stars       []*Star                          `json:"stars"`
	Fleets      []*Fleet                         `json:"fleets"`
	Designs     map[string]design.ShipDesignSpec `json:"designs"`
}

// NewGameState creates an empty game for a human player
func NewGameState(id, name string, human Player, ai ...Player) *GameState {
	return &GameState{
		ID:          id,
		Name:        name,
		Turn:        1,
		HumanPlayer: human,
		AIPlayers:   ai,
		Stars:       []*Star{},
		Fleets:      []*Fleet{},
		Designs:     map[string]design.ShipDesignSpec{},
	}
}

// Clone returns a deep copy that can be mutated freely
func (g *GameState) Clone() *GameState {
	c := *g
	c.AIPlayers = append([]Player(nil), g.AIPlayers...)
	c.Stars = make([]*Star, len(g.Stars))
	for i, s := range g.Stars {
		c.Stars[i] = s.Clone()
	}
	c.Fleets = make([]*Fleet, len(g.Fleets))
	for i, f := range g.Fleets {
		c.Fleets[i] = f.Clone()
	}
	c.Designs = make(map[string]design.ShipDesignSpec, len(g.Designs))
	for id, spec := range g.Designs {
		c.Designs[id] = spec
	}
	return &c
}

// DesignRegistry resolves legacy designs and this game's compiled user designs
func (g *GameState) DesignRegistry() design.Registry {
	return design.ForUserDesigns(g.Designs)
}

// Players lists the human player first, then AI players in order
func (g *GameState) Players() []Player {
	players := make([]Player, 0, 1+len(g.AIPlayers))
	players = append(players, g.HumanPlayer)
	return append(players, g.AIPlayers...)
}

// Player finds a player by ID
func (g *GameState) Player(id shared.PlayerID) (Player, bool) {
	for _, p := range g.Players() {
		if p.ID.Equals(id) {
			return p, true
		}
	}
	return Player{}, false
}

// Star finds a star by ID
func (g *GameState) Star(id string) *Star {
	for _, s := range g.Stars {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Fleet finds a fleet by ID
func (g *GameState) Fleet(id string) *Fleet {
	for _, f := range g.Fleets {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// FleetsOwnedBy lists the owner's fleets in list order
func (g *GameState) FleetsOwnedBy(owner shared.PlayerID) []*Fleet {
	var fleets []*Fleet
	for _, f := range g.Fleets {
		if f.OwnerID.Equals(owner) {
			fleets = append(fleets, f)
		}
	}
	return fleets
}

// FleetsAtStar lists the fleets orbiting starID
func (g *GameState) FleetsAtStar(starID string) []*Fleet {
	var fleets []*Fleet
	for _, f := range g.Fleets {
		if f.Location.IsOrbiting(starID) {
			fleets = append(fleets, f)
		}
	}
	return fleets
}

// AddFleet appends a fleet
func (g *GameState) AddFleet(f *Fleet) {
	g.Fleets = append(g.Fleets, f)
}

// RemoveFleet drops a fleet; unknown IDs are ignored
func (g *GameState) RemoveFleet(id string) bool {
	for i, f := range g.Fleets {
		if f.ID == id {
			g.Fleets = append(g.Fleets[:i:i], g.Fleets[i+1:]...)
			return true
		}
	}
	return false
}

// PositionOf resolves a location to a coordinate
func (g *GameState) PositionOf(loc Location) (shared.Coordinate, error) {
	if !loc.IsOrbit() {
		return loc.Position, nil
	}
	star := g.Star(loc.StarID)
	if star == nil {
		return shared.Coordinate{}, fmt.Errorf("star %s not found", loc.StarID)
	}
	return star.Position, nil
}

// StarNear returns the first star within radius of position, in star list order
func (g *GameState) StarNear(position shared.Coordinate, radius float64) *Star {
	for _, s := range g.Stars {
		if s.Position.DistanceTo(position) <= radius {
			return s
		}
	}
	return nil
}
