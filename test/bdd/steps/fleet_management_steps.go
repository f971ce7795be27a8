package steps

import (
	"fmt"
	"math"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	fleetCommands "github.com/andrescamacho/starlanes-go/internal/application/fleet/commands"
	fleetQueries "github.com/andrescamacho/starlanes-go/internal/application/fleet/queries"
	gameQueries "github.com/andrescamacho/starlanes-go/internal/application/game/queries"
	"github.com/andrescamacho/starlanes-go/internal/domain/cargo"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

type fleetManagementContext struct {
	game     *sharedGameContext
	response common.Response
}

func (c *fleetManagementContext) gameID() (string, error) {
	state, err := c.game.game()
	if err != nil {
		return "", err
	}
	return state.ID, nil
}

// When steps

func (c *fleetManagementContext) iColonizeWithFleet(fleetID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	_, err = c.game.send(&fleetCommands.ColonizeNowCommand{GameID: gameID, FleetID: fleetID})
	return err
}

func (c *fleetManagementContext) iTransferCargo(direction, entries, fleetID, starID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	manifest, err := cargo.ParseManifest(strings.Split(entries, ","))
	if err != nil {
		return err
	}
	if direction == "load" {
		_, err = c.game.send(&fleetCommands.LoadCargoCommand{GameID: gameID, FleetID: fleetID, StarID: starID, Manifest: manifest})
	} else {
		_, err = c.game.send(&fleetCommands.UnloadCargoCommand{GameID: gameID, FleetID: fleetID, StarID: starID, Manifest: manifest})
	}
	return err
}

func (c *fleetManagementContext) iSeparateFleet(fleetID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	_, err = c.game.send(&fleetCommands.SeparateFleetCommand{GameID: gameID, FleetID: fleetID})
	return err
}

func (c *fleetManagementContext) iMergeIntoFleet(sources, targetID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	var ids []string
	for _, id := range strings.Split(sources, ",") {
		ids = append(ids, strings.Trim(strings.TrimSpace(id), `"`))
	}
	_, err = c.game.send(&fleetCommands.MergeFleetsCommand{GameID: gameID, TargetFleetID: targetID, SourceFleetIDs: ids})
	return err
}

func (c *fleetManagementContext) dispatch(request common.Request) error {
	response, err := c.game.send(request)
	if err != nil {
		return err
	}
	c.response = response
	return nil
}

func (c *fleetManagementContext) iOrderFleetToMoveTo(fleetID string, x, y float64) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetCommands.IssueFleetOrderCommand{
		GameID:  gameID,
		FleetID: fleetID,
		Order:   galaxy.MoveOrder(shared.NewCoordinate(x, y)),
	})
}

func (c *fleetManagementContext) iReplaceTheOrdersOfFleetWithAnOrbitOf(fleetID, starID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetCommands.SetFleetOrdersCommand{
		GameID:  gameID,
		FleetID: fleetID,
		Orders:  []galaxy.FleetOrder{galaxy.OrbitOrder(starID, galaxy.OrbitActionNone)},
	})
}

func (c *fleetManagementContext) iAddShipsToFleet(count int, designID, fleetID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetCommands.AddShipCommand{GameID: gameID, FleetID: fleetID, DesignID: designID, Count: count})
}

func (c *fleetManagementContext) iTransferFuelBetweenFleets(fuel float64, sourceID, targetID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetCommands.TransferCommand{
		GameID:        gameID,
		SourceFleetID: sourceID,
		TargetFleetID: targetID,
		Spec:          fleet.TransferSpec{Fuel: fuel},
	})
}

func (c *fleetManagementContext) iSplitShipsOffFleet(count int, designID, fleetID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetCommands.SplitFleetCommand{
		GameID:  gameID,
		FleetID: fleetID,
		Spec:    fleet.TransferSpec{Ships: []fleet.ShipTransfer{{DesignID: designID, Count: count}}},
	})
}

func (c *fleetManagementContext) iDecommissionFleet(fleetID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetCommands.DecommissionFleetCommand{GameID: gameID, FleetID: fleetID})
}

func (c *fleetManagementContext) iEvaluateAMoveOfFleetTo(fleetID, starID string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetQueries.EvaluateMovementQuery{
		GameID:      gameID,
		FleetID:     fleetID,
		Destination: navigation.StarDestination(starID),
	})
}

func (c *fleetManagementContext) iListTheFleetsOf(owner string) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&fleetQueries.ListFleetsQuery{GameID: gameID, OwnerID: owner})
}

func (c *fleetManagementContext) iLookUpTurnOfTheGame(turn int) error {
	gameID, err := c.gameID()
	if err != nil {
		return err
	}
	return c.dispatch(&gameQueries.GetGameQuery{GameID: gameID, Turn: &turn})
}

// Then steps

func (c *fleetManagementContext) theCommandShouldReportNoChange() error {
	var applied bool
	switch r := c.response.(type) {
	case *fleetCommands.FleetOrdersResponse:
		applied = r.Applied
	case *fleetCommands.AddShipResponse:
		applied = r.Applied
	case *fleetCommands.ReorganizeResponse:
		applied = r.Applied
	default:
		return fmt.Errorf("unexpected response %T", c.response)
	}
	if applied {
		return fmt.Errorf("expected the command to change nothing")
	}
	return nil
}

func (c *fleetManagementContext) theEvaluationShouldAllowTheMoveAtWarp(verdict string, warp int) error {
	r, ok := c.response.(*fleetQueries.EvaluateMovementResponse)
	if !ok {
		return fmt.Errorf("unexpected response %T", c.response)
	}
	eval := r.Evaluation
	if !eval.IsValid {
		return fmt.Errorf("evaluation has errors: %v", eval.Errors)
	}
	if eval.Warp != warp {
		return fmt.Errorf("evaluation picked warp %d, expected %d", eval.Warp, warp)
	}
	if want := verdict == "allow"; eval.CanMove != want {
		return fmt.Errorf("evaluation CanMove=%v with warnings %v", eval.CanMove, eval.Warnings)
	}
	if !eval.CanMove && len(eval.Warnings) == 0 {
		return fmt.Errorf("a refused move should carry a fuel warning")
	}
	return nil
}

func (c *fleetManagementContext) theListingShouldContainFleets(n int) error {
	r, ok := c.response.(*fleetQueries.ListFleetsResponse)
	if !ok {
		return fmt.Errorf("unexpected response %T", c.response)
	}
	if len(r.Fleets) != n {
		return fmt.Errorf("listing holds %d fleets, expected %d", len(r.Fleets), n)
	}
	return nil
}

func (c *fleetManagementContext) theListedFleetShouldHaveFuelOf(fleetID string, fuel, capacity float64) error {
	r, ok := c.response.(*fleetQueries.ListFleetsResponse)
	if !ok {
		return fmt.Errorf("unexpected response %T", c.response)
	}
	for _, summary := range r.Fleets {
		if summary.ID != fleetID {
			continue
		}
		if math.Abs(summary.Fuel-fuel) > fuelTolerance || math.Abs(summary.FuelCapacity-capacity) > fuelTolerance {
			return fmt.Errorf("fleet %s listed with %.3f of %.3f fuel", fleetID, summary.Fuel, summary.FuelCapacity)
		}
		return nil
	}
	return fmt.Errorf("fleet %s is not listed", fleetID)
}

func (c *fleetManagementContext) theLookedUpGameShouldHaveFleetAtFuel(turn int, fleetID string, fuel float64) error {
	r, ok := c.response.(*gameQueries.GetGameResponse)
	if !ok {
		return fmt.Errorf("unexpected response %T", c.response)
	}
	if r.State.Turn != turn {
		return fmt.Errorf("looked-up game is at turn %d, expected %d", r.State.Turn, turn)
	}
	f := r.State.Fleet(fleetID)
	if f == nil {
		return fmt.Errorf("fleet %s missing from the looked-up game", fleetID)
	}
	if math.Abs(f.Fuel-fuel) > fuelTolerance {
		return fmt.Errorf("looked-up fleet %s has %.3f fuel, expected %.3f", fleetID, f.Fuel, fuel)
	}
	return nil
}

func (c *fleetManagementContext) fleetShouldCarry(fleetID string, amount float64, item string) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	cargoItem, err := shared.ParseCargoItem(item)
	if err != nil {
		return err
	}
	if got := f.Cargo.Amount(cargoItem); math.Abs(got-amount) > fuelTolerance {
		return fmt.Errorf("fleet %s carries %.3f %s, expected %.3f", fleetID, got, item, amount)
	}
	return nil
}

func (c *fleetManagementContext) playerShouldOwnFleets(owner string, n int) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	if got := len(state.FleetsOwnedBy(shared.MustNewPlayerID(owner))); got != n {
		return fmt.Errorf("player %s owns %d fleets, expected %d", owner, got, n)
	}
	return nil
}

func (c *fleetManagementContext) everyFleetOfShouldHoldShipWithFuel(owner string, fuel float64) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	for _, f := range state.FleetsOwnedBy(shared.MustNewPlayerID(owner)) {
		if f.ShipCount() != 1 {
			return fmt.Errorf("fleet %s holds %d ships", f.ID, f.ShipCount())
		}
		if math.Abs(f.Fuel-fuel) > fuelTolerance {
			return fmt.Errorf("fleet %s has %.3f fuel, expected %.3f", f.ID, f.Fuel, fuel)
		}
	}
	return nil
}

func (c *fleetManagementContext) fleetShouldHoldShips(fleetID string, n int) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	if f.ShipCount() != n {
		return fmt.Errorf("fleet %s holds %d ships, expected %d", fleetID, f.ShipCount(), n)
	}
	return nil
}

// InitializeFleetManagementScenario registers fleet command steps dispatched through the mediator
func InitializeFleetManagementScenario(sc *godog.ScenarioContext) {
	managementCtx := &fleetManagementContext{game: globalGameContext}

	sc.Step(`^I colonize with fleet "([^"]*)"$`, managementCtx.iColonizeWithFleet)
	sc.Step(`^I (load|unload) "([^"]*)" with fleet "([^"]*)" at "([^"]*)"$`, managementCtx.iTransferCargo)
	sc.Step(`^I separate fleet "([^"]*)"$`, managementCtx.iSeparateFleet)
	sc.Step(`^I merge (.+) into fleet "([^"]*)"$`, managementCtx.iMergeIntoFleet)
	sc.Step(`^I order fleet "([^"]*)" to move to (-?[\d.]+),(-?[\d.]+)$`, managementCtx.iOrderFleetToMoveTo)
	sc.Step(`^I replace the orders of fleet "([^"]*)" with an orbit of "([^"]*)"$`, managementCtx.iReplaceTheOrdersOfFleetWithAnOrbitOf)
	sc.Step(`^I add (\d+) "([^"]*)" ships? to fleet "([^"]*)"$`, managementCtx.iAddShipsToFleet)
	sc.Step(`^I transfer ([\d.]+) fuel from fleet "([^"]*)" to fleet "([^"]*)"$`, managementCtx.iTransferFuelBetweenFleets)
	sc.Step(`^I split (\d+) "([^"]*)" ships? off fleet "([^"]*)"$`, managementCtx.iSplitShipsOffFleet)
	sc.Step(`^I decommission fleet "([^"]*)"$`, managementCtx.iDecommissionFleet)
	sc.Step(`^I evaluate a move of fleet "([^"]*)" to "([^"]*)"$`, managementCtx.iEvaluateAMoveOfFleetTo)
	sc.Step(`^I list the fleets of "([^"]*)"$`, managementCtx.iListTheFleetsOf)
	sc.Step(`^I look up turn (\d+) of the game$`, managementCtx.iLookUpTurnOfTheGame)
	sc.Step(`^the command should report no change$`, managementCtx.theCommandShouldReportNoChange)
	sc.Step(`^the evaluation should (allow|refuse) the move at warp (\d+)$`, managementCtx.theEvaluationShouldAllowTheMoveAtWarp)
	sc.Step(`^the listing should contain (\d+) fleets?$`, managementCtx.theListingShouldContainFleets)
	sc.Step(`^the listed fleet "([^"]*)" should have ([\d.]+) of ([\d.]+) fuel$`, managementCtx.theListedFleetShouldHaveFuelOf)
	sc.Step(`^the looked-up game should be at turn (\d+) with fleet "([^"]*)" at ([\d.]+) fuel$`, managementCtx.theLookedUpGameShouldHaveFleetAtFuel)
	sc.Step(`^fleet "([^"]*)" should carry ([\d.]+) (ironium|boranium|germanium|resources|colonists)$`, managementCtx.fleetShouldCarry)
	sc.Step(`^player "([^"]*)" should own (\d+) fleets?$`, managementCtx.playerShouldOwnFleets)
	sc.Step(`^every fleet of "([^"]*)" should hold one ship with ([\d.]+) fuel$`, managementCtx.everyFleetOfShouldHoldShipWithFuel)
	sc.Step(`^fleet "([^"]*)" should hold (\d+) ships?$`, managementCtx.fleetShouldHoldShips)
}
