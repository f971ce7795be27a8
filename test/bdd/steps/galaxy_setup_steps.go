package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/test/helpers"
)

type galaxySetupContext struct {
	game *sharedGameContext
}

// Given steps

func (c *galaxySetupContext) aGameWithTheStandardTestDesigns() error {
	c.game.mu.Lock()
	defer c.game.mu.Unlock()
	c.game.state = helpers.NewTestGame()
	c.game.saved = false
	return nil
}

func (c *galaxySetupContext) theFollowingStars(table *godog.Table) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	for _, row := range table.Rows[1:] { // Skip header
		x, err := strconv.ParseFloat(getCellValue(table, row, "x"), 64)
		if err != nil {
			return fmt.Errorf("invalid x: %w", err)
		}
		y, err := strconv.ParseFloat(getCellValue(table, row, "y"), 64)
		if err != nil {
			return fmt.Errorf("invalid y: %w", err)
		}
		helpers.AddTestStar(state, getCellValue(table, row, "id"), x, y, getCellValue(table, row, "owner"))
	}
	return nil
}

func (c *galaxySetupContext) theFollowingFleets(table *godog.Table) error {
	state, err := c.game.game()
	if err != nil {
		return err
	}
	for _, row := range table.Rows[1:] { // Skip header
		location, err := parseLocation(getCellValue(table, row, "location"))
		if err != nil {
			return err
		}
		fuel, err := strconv.ParseFloat(getCellValue(table, row, "fuel"), 64)
		if err != nil {
			return fmt.Errorf("invalid fuel: %w", err)
		}
		stacks, err := parseStacks(getCellValue(table, row, "ships"))
		if err != nil {
			return err
		}
		helpers.AddTestFleet(state, getCellValue(table, row, "id"), getCellValue(table, row, "owner"), location, fuel, stacks...)
	}
	return nil
}

func (c *galaxySetupContext) fleetHasOrdersToMoveTo(fleetID string, x, y float64) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	f.Orders = append(f.Orders, galaxy.MoveOrder(shared.NewCoordinate(x, y)))
	return nil
}

func (c *galaxySetupContext) fleetHasOrdersToMoveToAtWarp(fleetID string, x, y float64, warp int) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	f.Orders = append(f.Orders, galaxy.MoveOrder(shared.NewCoordinate(x, y)).WithWarp(warp))
	return nil
}

func (c *galaxySetupContext) fleetHasOrdersToOrbit(fleetID, starID, colonize string) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	action := galaxy.OrbitActionNone
	if colonize != "" {
		action = galaxy.OrbitActionColonize
	}
	f.Orders = append(f.Orders, galaxy.OrbitOrder(starID, action))
	return nil
}

func (c *galaxySetupContext) fleetCarries(fleetID string, amount float64, item string) error {
	f, err := c.game.fleet(fleetID)
	if err != nil {
		return err
	}
	cargoItem, err := shared.ParseCargoItem(item)
	if err != nil {
		return err
	}
	f.Cargo = f.Cargo.WithAmount(cargoItem, amount)
	return nil
}

func (c *galaxySetupContext) starHas(starID string, amount float64, item string) error {
	star, err := c.game.star(starID)
	if err != nil {
		return err
	}
	switch item {
	case "ironium":
		star.SurfaceMinerals.Ironium = amount
	case "boranium":
		star.SurfaceMinerals.Boranium = amount
	case "germanium":
		star.SurfaceMinerals.Germanium = amount
	case "resources":
		star.Resources = amount
	case "colonists":
		star.Population = int(amount)
	default:
		return fmt.Errorf("unknown item %q", item)
	}
	return nil
}

// Table helpers

// parseLocation reads a star ID for an orbit or "x,y" for deep space
func parseLocation(value string) (galaxy.Location, error) {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return galaxy.InOrbit(strings.TrimSpace(value)), nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return galaxy.Location{}, fmt.Errorf("invalid location %q: %w", value, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return galaxy.Location{}, fmt.Errorf("invalid location %q: %w", value, err)
	}
	return galaxy.InSpace(shared.NewCoordinate(x, y)), nil
}

// parseStacks reads "design:count" entries separated by spaces
func parseStacks(value string) ([]galaxy.ShipStack, error) {
	var stacks []galaxy.ShipStack
	for _, entry := range strings.Fields(value) {
		designID, countStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("expected design:count, got %q", entry)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return nil, fmt.Errorf("invalid ship count in %q: %w", entry, err)
		}
		stacks = append(stacks, helpers.Ships(designID, count))
	}
	return stacks, nil
}

// getCellValue gets a cell value from a table row by column name.
// It uses the first row (table.Rows[0]) as the header to find the column index.
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return strings.TrimSpace(row.Cells[i].Value)
			}
			return ""
		}
	}
	return ""
}

// InitializeGalaxySetupScenario registers the world-building steps and the
// per-scenario reset. Every suite registers it first.
func InitializeGalaxySetupScenario(sc *godog.ScenarioContext) {
	setupCtx := &galaxySetupContext{game: globalGameContext}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, setupCtx.game.reset()
	})

	sc.Step(`^a game with the standard test designs$`, setupCtx.aGameWithTheStandardTestDesigns)
	sc.Step(`^the following stars:$`, setupCtx.theFollowingStars)
	sc.Step(`^the following fleets:$`, setupCtx.theFollowingFleets)
	sc.Step(`^fleet "([^"]*)" has orders to move to (-?[\d.]+),(-?[\d.]+) at warp (\d+)$`, setupCtx.fleetHasOrdersToMoveToAtWarp)
	sc.Step(`^fleet "([^"]*)" has orders to move to (-?[\d.]+),(-?[\d.]+)$`, setupCtx.fleetHasOrdersToMoveTo)
	sc.Step(`^fleet "([^"]*)" has orders to orbit "([^"]*)"( and colonize)?$`, setupCtx.fleetHasOrdersToOrbit)
	sc.Step(`^fleet "([^"]*)" carries ([\d.]+) (ironium|boranium|germanium|resources|colonists)$`, setupCtx.fleetCarries)
	sc.Step(`^star "([^"]*)" has ([\d.]+) (ironium|boranium|germanium|resources|colonists)$`, setupCtx.starHas)
}
