package steps

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/cucumber/godog"

	turnCommands "github.com/andrescamacho/starlanes-go/internal/application/turn/commands"
)

type endTurnContext struct {
	game     *sharedGameContext
	response *turnCommands.EndTurnResponse
}

// When steps

func (c *endTurnContext) iEndTheTurn() error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	response, err := c.game.send(&turnCommands.EndTurnCommand{GameID: state.ID})
	if err != nil {
		return err
	}
	c.response, _ = response.(*turnCommands.EndTurnResponse)
	return nil
}

// Then steps

func (c *endTurnContext) theGameShouldBeAtTurn(turn int) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	if state.Turn != turn {
		return fmt.Errorf("game is at turn %d, expected %d", state.Turn, turn)
	}
	return nil
}

func (c *endTurnContext) theCommandShouldFailWith(message string) error {
	err := c.game.lastError()
	if err == nil {
		return fmt.Errorf("expected an error containing %q", message)
	}
	if !strings.Contains(err.Error(), message) {
		return fmt.Errorf("expected error containing %q, got %q", message, err.Error())
	}
	return nil
}

func (c *endTurnContext) theCommandShouldSucceed() error {
	if err := c.game.lastError(); err != nil {
		return fmt.Errorf("expected success but got error: %v", err)
	}
	return nil
}

func (c *endTurnContext) theTurnReportShouldCoverPlayers(n int) error {
	if c.response == nil {
		return fmt.Errorf("no end turn response")
	}
	if len(c.response.Reports) != n {
		return fmt.Errorf("expected %d player reports, got %d", n, len(c.response.Reports))
	}
	return nil
}

func (c *endTurnContext) turnShouldStillBeStoredWithFleetAtFuel(turn int, fleetID string, fuel float64) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	snapshot, err := c.game.repos.GameRepo.LoadTurn(context.Background(), state.ID, turn)
	if err != nil {
		return err
	}
	f := snapshot.Fleet(fleetID)
	if f == nil {
		return fmt.Errorf("fleet %s missing from turn %d", fleetID, turn)
	}
	if math.Abs(f.Fuel-fuel) > fuelTolerance {
		return fmt.Errorf("turn %d stored fleet %s with %.3f fuel, expected %.3f", turn, fleetID, f.Fuel, fuel)
	}
	return nil
}

// InitializeEndTurnScenario registers the end-of-turn application steps
func InitializeEndTurnScenario(sc *godog.ScenarioContext) {
	endTurnCtx := &endTurnContext{game: globalGameContext}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		endTurnCtx.response = nil
		return ctx, nil
	})

	sc.Step(`^I end the turn$`, endTurnCtx.iEndTheTurn)
	sc.Step(`^the game should be at turn (\d+)$`, endTurnCtx.theGameShouldBeAtTurn)
	sc.Step(`^the command should fail with "([^"]*)"$`, endTurnCtx.theCommandShouldFailWith)
	sc.Step(`^the command should succeed$`, endTurnCtx.theCommandShouldSucceed)
	sc.Step(`^the turn report should cover (\d+) players$`, endTurnCtx.theTurnReportShouldCoverPlayers)
	sc.Step(`^turn (\d+) should still be stored with fleet "([^"]*)" at ([\d.]+) fuel$`, endTurnCtx.turnShouldStillBeStoredWithFleetAtFuel)
}
