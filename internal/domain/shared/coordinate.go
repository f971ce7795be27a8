package shared

import (
	"fmt"
	"math"
)

// Coordinate is an immutable position on the galaxy plane, measured in light-years
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewCoordinate creates a coordinate
func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// DistanceTo calculates Euclidean distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dx := other.X - c.X
	dy := other.Y - c.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MoveToward returns the point reached after travelling step light-years on the
// straight line toward target. A step at or past the target returns the target.
func (c Coordinate) MoveToward(target Coordinate, step float64) Coordinate {
	distance := c.DistanceTo(target)
	if distance == 0 || step >= distance {
		return target
	}
	ratio := step / distance
	return Coordinate{
		X: c.X + (target.X-c.X)*ratio,
		Y: c.Y + (target.Y-c.Y)*ratio,
	}
}

// Equals reports exact coordinate equality
func (c Coordinate) Equals(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", c.X, c.Y)
}
