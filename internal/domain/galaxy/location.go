package galaxy

import (
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// LocationKind discriminates where a fleet is
type LocationKind string

const (
	LocationSpace LocationKind = "SPACE"
	LocationOrbit LocationKind = "ORBIT"
)

// Location is either a point in deep space or an orbit around a star
type Location struct {
	Kind     LocationKind      `json:"kind"`
	Position shared.Coordinate `json:"position,omitempty"`
	StarID   string            `json:"star_id,omitempty"`
}

// InSpace creates a deep-space location
func InSpace(position shared.Coordinate) Location {
	return Location{Kind: LocationSpace, Position: position}
}

// InOrbit creates an orbit location
func InOrbit(starID string) Location {
	return Location{Kind: LocationOrbit, StarID: starID}
}

// IsOrbit reports whether the location is an orbit
func (l Location) IsOrbit() bool {
	return l.Kind == LocationOrbit
}

// IsOrbiting reports whether the location is an orbit around starID
func (l Location) IsOrbiting(starID string) bool {
	return l.Kind == LocationOrbit && l.StarID == starID
}

// SameAs reports an identical location: the same star, or exactly equal coordinates
func (l Location) SameAs(other Location) bool {
	if l.Kind != other.Kind {
		return false
	}
	if l.Kind == LocationOrbit {
		return l.StarID == other.StarID
	}
	return l.Position.Equals(other.Position)
}

func (l Location) String() string {
	if l.IsOrbit() {
		return fmt.Sprintf("orbit(%s)", l.StarID)
	}
	return fmt.Sprintf("space%s", l.Position)
}
