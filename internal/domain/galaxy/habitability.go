package galaxy

import "math"

// HabitabilityCalculator rates a star's environment for a species as a
// percentage in -100..100. Implementations must be pure.
type HabitabilityCalculator interface {
	Calculate(star *Star, species Species) int
}

// RadialHabitability scores the distance between the star environment and the
// species ideal, relative to its tolerance radius. On the ideal point the score is
// 100, on the tolerance boundary 0, and it keeps falling to -100 outside.
type RadialHabitability struct{}

// NewRadialHabitability creates the default calculator
func NewRadialHabitability() *RadialHabitability {
	return &RadialHabitability{}
}

// Calculate implements HabitabilityCalculator
func (RadialHabitability) Calculate(star *Star, species Species) int {
	if star == nil {
		return -100
	}
	if species.ToleranceRadius <= 0 {
		if star.Environment.Temperature == species.IdealTemperature &&
			star.Environment.Atmosphere == species.IdealAtmosphere {
			return 100
		}
		return -100
	}
	dt := star.Environment.Temperature - species.IdealTemperature
	da := star.Environment.Atmosphere - species.IdealAtmosphere
	d := math.Sqrt(dt*dt+da*da) / species.ToleranceRadius
	score := math.Round(100 * (1 - d))
	return int(math.Max(-100, math.Min(100, score)))
}

// FixedHabitability returns the same value for every star; handy for scripted games
type FixedHabitability int

// Calculate implements HabitabilityCalculator
func (h FixedHabitability) Calculate(*Star, Species) int {
	return int(h)
}
