package bdd

import (
	"testing"

	"github.com/cucumber/godog"
	"github.com/andrescamacho/starlanes-go/test/bdd/steps"
)

func TestFleetMovement(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			steps.InitializeGalaxySetupScenario(ctx)
			steps.InitializeFleetMovementScenario(ctx)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain/fleet_movement.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
