package shared

import (
	"fmt"
	"math"
)

// ColonistsPerKiloton converts raw population into cargo capacity
const ColonistsPerKiloton = 1000

// CargoItem names one transferable cargo component
type CargoItem string

const (
	CargoIronium   CargoItem = "ironium"
	CargoBoranium  CargoItem = "boranium"
	CargoGermanium CargoItem = "germanium"
	CargoResources CargoItem = "resources"
	CargoColonists CargoItem = "colonists"
)

// CargoTransferOrder is the order in which manifest items are applied.
// Colonists go last since they consume capacity at the coarsest granularity.
var CargoTransferOrder = []CargoItem{
	CargoIronium,
	CargoBoranium,
	CargoGermanium,
	CargoResources,
	CargoColonists,
}

// ParseCargoItem validates a cargo item name
func ParseCargoItem(s string) (CargoItem, error) {
	for _, item := range CargoTransferOrder {
		if string(item) == s {
			return item, nil
		}
	}
	return "", NewValidationError("cargo_item", fmt.Sprintf("unknown cargo item %q", s))
}

// Minerals holds the three mineral kinds, in kilotons
type Minerals struct {
	Ironium   float64 `json:"ironium"`
	Boranium  float64 `json:"boranium"`
	Germanium float64 `json:"germanium"`
}

// Total returns the combined mineral mass
func (m Minerals) Total() float64 {
	return m.Ironium + m.Boranium + m.Germanium
}

// Add returns the component-wise sum
func (m Minerals) Add(other Minerals) Minerals {
	return Minerals{
		Ironium:   m.Ironium + other.Ironium,
		Boranium:  m.Boranium + other.Boranium,
		Germanium: m.Germanium + other.Germanium,
	}
}

// Cargo is the hold content of a fleet
type Cargo struct {
	Resources float64  `json:"resources"`
	Minerals  Minerals `json:"minerals"`
	Colonists int      `json:"colonists"`
}

// ColonistKilotons converts a head count into kilotons
func ColonistKilotons(colonists int) float64 {
	return float64(colonists) / ColonistsPerKiloton
}

// MassKT returns the cargo mass that counts toward fleet mass and fuel usage
func (c Cargo) MassKT() float64 {
	return c.Minerals.Total() + ColonistKilotons(c.Colonists)
}

// UsageKT returns the hold space currently in use
func (c Cargo) UsageKT() float64 {
	return c.Minerals.Total() + c.Resources + ColonistKilotons(c.Colonists)
}

// IsEmpty checks if the hold carries nothing
func (c Cargo) IsEmpty() bool {
	return c.Resources == 0 && c.Minerals.Total() == 0 && c.Colonists == 0
}

// Amount returns the quantity of one item
func (c Cargo) Amount(item CargoItem) float64 {
	switch item {
	case CargoIronium:
		return c.Minerals.Ironium
	case CargoBoranium:
		return c.Minerals.Boranium
	case CargoGermanium:
		return c.Minerals.Germanium
	case CargoResources:
		return c.Resources
	case CargoColonists:
		return float64(c.Colonists)
	}
	return 0
}

// WithAmount returns a copy with one item set. Colonists are truncated to whole persons.
func (c Cargo) WithAmount(item CargoItem, amount float64) Cargo {
	switch item {
	case CargoIronium:
		c.Minerals.Ironium = amount
	case CargoBoranium:
		c.Minerals.Boranium = amount
	case CargoGermanium:
		c.Minerals.Germanium = amount
	case CargoResources:
		c.Resources = amount
	case CargoColonists:
		c.Colonists = int(math.Floor(amount))
	}
	return c
}

// WholeColonists floors a colonist count that came out of kiloton arithmetic.
// The slack absorbs float error so 0.3 kT of room still seats 300 persons.
func WholeColonists(amount float64) float64 {
	return math.Floor(amount + 1e-9)
}

// KilotonsPerUnit returns how much hold space one unit of the item consumes
func KilotonsPerUnit(item CargoItem) float64 {
	if item == CargoColonists {
		return 1.0 / ColonistsPerKiloton
	}
	return 1
}

func (c Cargo) String() string {
	return fmt.Sprintf("Cargo(res=%.0f, fe=%.0f, bo=%.0f, ge=%.0f, col=%d)",
		c.Resources, c.Minerals.Ironium, c.Minerals.Boranium, c.Minerals.Germanium, c.Colonists)
}
