package galaxy

import (
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// ShipStack is a group of identical ships within a fleet
type ShipStack struct {
	DesignID string `json:"design_id"`
	Count    int    `json:"count"`
	Damage   int    `json:"damage"`
}

// Fleet is a player-owned group of ship stacks travelling together
//
// Invariants:
// - 0 <= Fuel <= total fuel capacity of the stacks
// - cargo usage never exceeds total cargo capacity
// - identical (DesignID, Damage) pairs are merged into one stack
// - a fleet with no stacks is removed from the game
type Fleet struct {
	ID       string          `json:"id"`
	OwnerID  shared.PlayerID `json:"owner_id"`
	Name     string          `json:"name"`
	Location Location        `json:"location"`
	Stacks   []ShipStack     `json:"stacks"`
	Fuel     float64         `json:"fuel"`
	Cargo    shared.Cargo    `json:"cargo"`
	Orders   []FleetOrder    `json:"orders"`
}

// Clone returns a deep copy
func (f *Fleet) Clone() *Fleet {
	c := *f
	c.Stacks = append([]ShipStack(nil), f.Stacks...)
	c.Orders = make([]FleetOrder, len(f.Orders))
	for i, o := range f.Orders {
		c.Orders[i] = o.clone()
	}
	return &c
}

// HeadOrder returns the first queued order
func (f *Fleet) HeadOrder() (FleetOrder, bool) {
	if len(f.Orders) == 0 {
		return FleetOrder{}, false
	}
	return f.Orders[0], true
}

// PopOrder removes the first queued order
func (f *Fleet) PopOrder() {
	if len(f.Orders) > 0 {
		f.Orders = f.Orders[1:]
	}
}

// InsertOrderAfterHead queues order directly behind the head order
func (f *Fleet) InsertOrderAfterHead(order FleetOrder) {
	if len(f.Orders) == 0 {
		f.Orders = []FleetOrder{order}
		return
	}
	orders := make([]FleetOrder, 0, len(f.Orders)+1)
	orders = append(orders, f.Orders[0], order)
	orders = append(orders, f.Orders[1:]...)
	f.Orders = orders
}

// IsInOrbit checks if the fleet orbits a star
func (f *Fleet) IsInOrbit() bool {
	return f.Location.IsOrbit()
}

// IsEmpty reports a fleet without ship stacks
func (f *Fleet) IsEmpty() bool {
	return len(f.Stacks) == 0
}

// ShipCount totals ships across stacks
func (f *Fleet) ShipCount() int {
	total := 0
	for _, s := range f.Stacks {
		total += s.Count
	}
	return total
}

// StackIndex returns the index of the stack with designID and damage, or -1
func (f *Fleet) StackIndex(designID string, damage int) int {
	for i, s := range f.Stacks {
		if s.DesignID == designID && s.Damage == damage {
			return i
		}
	}
	return -1
}

// RemoveStack drops the stack at index i
func (f *Fleet) RemoveStack(i int) {
	f.Stacks = append(f.Stacks[:i:i], f.Stacks[i+1:]...)
}

func (f *Fleet) String() string {
	return fmt.Sprintf("Fleet(%s %q owner=%s at=%s ships=%d fuel=%.0f)",
		f.ID, f.Name, f.OwnerID, f.Location, f.ShipCount(), f.Fuel)
}
