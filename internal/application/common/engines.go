package common

import (
	"github.com/andrescamacho/starlanes-go/internal/domain/cargo"
	"github.com/andrescamacho/starlanes-go/internal/domain/colonization"
	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/turn"
)

// Engines bundles the domain engines the handlers drive
type Engines struct {
	Rules       galaxy.Rules
	Governor    galaxy.DefaultGovernorProvider
	EngineTable *design.EngineTable
	Fleets      *fleet.Registry
	Cargo       *cargo.Engine
	Colonizer   *colonization.Engine
	Turns       *turn.Processor
}

// NewEngines wires the domain engines from the game rules
func NewEngines(
	rules galaxy.Rules,
	governor galaxy.DefaultGovernorProvider,
	habitability galaxy.HabitabilityCalculator,
) *Engines {
	rules = rules.WithDefaults()
	engineTable := design.DefaultEngineTable()
	colonizer := colonization.NewEngine(habitability, governor)
	return &Engines{
		Rules:       rules,
		Governor:    governor,
		EngineTable: engineTable,
		Fleets:      fleet.NewRegistry(rules),
		Cargo:       cargo.NewEngine(),
		Colonizer:   colonizer,
		Turns:       turn.NewProcessor(rules, engineTable, colonizer),
	}
}
