package galaxy

import (
	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// FuelCapacity totals the fuel tanks of the fleet's resolvable stacks
func FuelCapacity(f *Fleet, designs design.Registry) float64 {
	total := 0.0
	for _, stack := range f.Stacks {
		if spec, ok := designs.Resolve(stack.DesignID); ok {
			total += spec.FuelCapacity * float64(stack.Count)
		}
	}
	return total
}

// Tank pairs the fleet's fuel aboard with its total capacity
func Tank(f *Fleet, designs design.Registry) shared.Fuel {
	return shared.Fuel{Current: f.Fuel, Capacity: FuelCapacity(f, designs)}
}

// CargoCapacity totals the holds of the fleet's resolvable stacks, in kilotons
func CargoCapacity(f *Fleet, designs design.Registry) float64 {
	total := 0.0
	for _, stack := range f.Stacks {
		if spec, ok := designs.Resolve(stack.DesignID); ok {
			total += spec.CargoCapacity * float64(stack.Count)
		}
	}
	return total
}

// FreeCargoCapacity returns the unused hold space, never negative
func FreeCargoCapacity(f *Fleet, designs design.Registry) float64 {
	free := CargoCapacity(f, designs) - f.Cargo.UsageKT()
	if free < 0 {
		return 0
	}
	return free
}

// HasStardock reports whether any stack is a stardock design
func HasStardock(f *Fleet, designs design.Registry) bool {
	for _, stack := range f.Stacks {
		if spec, ok := designs.Resolve(stack.DesignID); ok && spec.Stardock && stack.Count > 0 {
			return true
		}
	}
	return false
}

// HasRamscoop reports whether any stack has a ramscoop-class engine
func HasRamscoop(f *Fleet, designs design.Registry) bool {
	for _, stack := range f.Stacks {
		if spec, ok := designs.Resolve(stack.DesignID); ok && spec.FuelEfficiency == 0 && spec.HasEngine() {
			return true
		}
	}
	return false
}

// ColonyStackIndex returns the first stack carrying a colony module with ships left, or -1
func ColonyStackIndex(f *Fleet, designs design.Registry) int {
	for i, stack := range f.Stacks {
		if stack.Count <= 0 {
			continue
		}
		if spec, ok := designs.Resolve(stack.DesignID); ok && spec.ColonyModule {
			return i
		}
	}
	return -1
}
