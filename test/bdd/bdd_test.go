package bdd

import (
	"os"
	"testing"

	"github.com/andrescamacho/starlanes-go/test/bdd/steps"
	"github.com/andrescamacho/starlanes-go/test/helpers"
	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// NOTE: GalaxySetupScenario registered FIRST: its Before hook resets the shared
	// game context and database that every other scenario builds on
	steps.InitializeGalaxySetupScenario(sc)

	// Domain layer scenarios
	steps.InitializeFleetMovementScenario(sc)

	// Application layer scenarios (dispatched through the mediator, persisted in sqlite)
	steps.InitializeEndTurnScenario(sc)
	steps.InitializeFleetManagementScenario(sc)
}

func TestMain(m *testing.M) {
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}
	code := m.Run()
	_ = helpers.CloseSharedTestDB()
	os.Exit(code)
}
