package shared

import "math"

// Fuel represents an immutable fuel state
type Fuel struct {
	Current  float64
	Capacity float64
}

// Consume returns new Fuel with amount consumed, floored at zero
func (f Fuel) Consume(amount float64) Fuel {
	if amount < 0 {
		amount = 0
	}
	return Fuel{Current: math.Max(0, f.Current-amount), Capacity: f.Capacity}
}

// Add returns new Fuel with amount added, clamped to capacity
func (f Fuel) Add(amount float64) Fuel {
	if amount < 0 {
		amount = 0
	}
	return Fuel{Current: math.Min(f.Capacity, f.Current+amount), Capacity: f.Capacity}
}

// Room returns how much more the tank can take
func (f Fuel) Room() float64 {
	return math.Max(0, f.Capacity-f.Current)
}

// CanTravel checks if the tank covers the required amount
func (f Fuel) CanTravel(required float64) bool {
	return f.Current >= required
}
