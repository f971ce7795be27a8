package steps

import (
	"errors"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/internal/domain/turn"
)

const fuelTolerance = 1e-6

type fleetMovementContext struct {
	game   *sharedGameContext
	report *turn.Report
}

// When steps

func (c *fleetMovementContext) theFleetsOfAreProcessed(playerID string) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	next, report, err := c.game.engines.Turns.ProcessFleets(state, shared.MustNewPlayerID(playerID))
	c.report = report
	c.game.replace(next, err)
	return nil
}

// Then steps

func (c *fleetMovementContext) theReportShouldShowFleetAtWarp(fleetID, kind string, warp int) error {
	if c.report == nil {
		return fmt.Errorf("no report available")
	}
	for _, e := range c.report.Events {
		if e.FleetID == fleetID && string(e.Kind) == kind {
			if e.Warp != warp {
				return fmt.Errorf("fleet %s %s at warp %d, expected %d", fleetID, kind, e.Warp, warp)
			}
			return nil
		}
	}
	return fmt.Errorf("no %s event for fleet %s in %+v", kind, fleetID, c.report.Events)
}

func (c *fleetMovementContext) theReportShouldShowDroppedOrders(n int) error {
	if c.report == nil {
		return fmt.Errorf("no report available")
	}
	if got := c.report.Count(turn.EventOrderDropped); got != n {
		return fmt.Errorf("expected %d dropped orders, got %d", n, got)
	}
	return nil
}

func (c *fleetMovementContext) processingShouldFailWithMissingFuelData() error {
	err := c.game.lastError()
	if err == nil {
		return fmt.Errorf("expected processing to fail")
	}
	if !errors.Is(err, shared.ErrMissingFuelData) {
		return fmt.Errorf("expected missing fuel data, got %v", err)
	}
	return nil
}

func (c *fleetMovementContext) theGameStateShouldBeUnchanged() error {
	c.game.mu.RLock()
	defer c.game.mu.RUnlock()
	if c.game.state != c.game.previous {
		return fmt.Errorf("expected the original game state to be kept")
	}
	return nil
}

func (c *fleetMovementContext) fleetShouldHaveFuel(fleetID string, fuel float64) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	if math.Abs(f.Fuel-fuel) > fuelTolerance {
		return fmt.Errorf("fleet %s has %.3f fuel, expected %.3f", fleetID, f.Fuel, fuel)
	}
	return nil
}

func (c *fleetMovementContext) fleetShouldBeInDeepSpaceAt(fleetID string, x, y float64) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	if f.IsInOrbit() {
		return fmt.Errorf("fleet %s is orbiting %s", fleetID, f.Location.StarID)
	}
	pos := f.Location.Position
	if math.Abs(pos.X-x) > fuelTolerance || math.Abs(pos.Y-y) > fuelTolerance {
		return fmt.Errorf("fleet %s is at %s, expected (%.1f, %.1f)", fleetID, pos, x, y)
	}
	return nil
}

func (c *fleetMovementContext) fleetShouldBeOrbiting(fleetID, starID string) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	if !f.Location.IsOrbiting(starID) {
		return fmt.Errorf("fleet %s is at %s, expected orbit of %s", fleetID, f.Location, starID)
	}
	return nil
}

func (c *fleetMovementContext) fleetShouldHaveOrdersLeft(fleetID string, n int) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	if len(f.Orders) != n {
		return fmt.Errorf("fleet %s has %d orders, expected %d", fleetID, len(f.Orders), n)
	}
	return nil
}

func (c *fleetMovementContext) fleetShouldNoLongerExist(fleetID string) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	if state.Fleet(fleetID) != nil {
		return fmt.Errorf("fleet %s still exists", fleetID)
	}
	return nil
}

func (c *fleetMovementContext) starShouldBeOwnedByWithMaxPopulation(starID, owner string, maxPop int) error {
	star, err := c.game.star(starID)
	if err != nil {
		return err
	}
	if !star.IsOwnedBy(shared.MustNewPlayerID(owner)) {
		return fmt.Errorf("star %s is owned by %q, expected %q", starID, star.OwnerID, owner)
	}
	if star.MaxPopulation != maxPop {
		return fmt.Errorf("star %s has max population %d, expected %d", starID, star.MaxPopulation, maxPop)
	}
	return nil
}

// InitializeFleetMovementScenario registers turn-processing steps and the shared
// fleet and star assertions
func InitializeFleetMovementScenario(sc *godog.ScenarioContext) {
	movementCtx := &fleetMovementContext{game: globalGameContext}

	sc.Step(`^the fleets of "([^"]*)" are processed$`, movementCtx.theFleetsOfAreProcessed)
	sc.Step(`^the report should show fleet "([^"]*)" (moved|arrived) at warp (\d+)$`, movementCtx.theReportShouldShowFleetAtWarp)
	sc.Step(`^the report should show (\d+) dropped orders?$`, movementCtx.theReportShouldShowDroppedOrders)
	sc.Step(`^processing should fail with missing fuel data$`, movementCtx.processingShouldFailWithMissingFuelData)
	sc.Step(`^the game state should be unchanged$`, movementCtx.theGameStateShouldBeUnchanged)
	sc.Step(`^fleet "([^"]*)" should have ([\d.]+) fuel$`, movementCtx.fleetShouldHaveFuel)
	sc.Step(`^fleet "([^"]*)" should be in deep space at (-?[\d.]+),(-?[\d.]+)$`, movementCtx.fleetShouldBeInDeepSpaceAt)
	sc.Step(`^fleet "([^"]*)" should be orbiting "([^"]*)"$`, movementCtx.fleetShouldBeOrbiting)
	sc.Step(`^fleet "([^"]*)" should have (\d+) orders? left$`, movementCtx.fleetShouldHaveOrdersLeft)
	sc.Step(`^fleet "([^"]*)" should no longer exist$`, movementCtx.fleetShouldNoLongerExist)
	sc.Step(`^star "([^"]*)" should be owned by "([^"]*)" with max population (\d+)$`, movementCtx.starShouldBeOwnedByWithMaxPopulation)
}
