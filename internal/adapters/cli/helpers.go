package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/config"
)

// resolveGameID returns the game to operate on.
// Priority: --game flag > current game in user config.
func resolveGameID() (string, error) {
	if gameID != "" {
		return gameID, nil
	}

	userConfigHandler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", fmt.Errorf("no game specified and failed to load user config: %w", err)
	}
	userCfg, err := userConfigHandler.Load()
	if err != nil {
		return "", fmt.Errorf("no game specified and failed to load user config: %w", err)
	}
	if userCfg.CurrentGameID != "" {
		return userCfg.CurrentGameID, nil
	}

	return "", fmt.Errorf("no game specified: use --game, or select one with 'starlanes config use-game'")
}

// parseCoordinate parses "x,y"
func parseCoordinate(s string) (shared.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return shared.Coordinate{}, fmt.Errorf("invalid coordinate %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return shared.Coordinate{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return shared.Coordinate{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return shared.NewCoordinate(x, y), nil
}

// parseShips parses "design:count" or "design:count:damage" entries
func parseShips(entries []string) ([]fleet.ShipTransfer, error) {
	ships := make([]fleet.ShipTransfer, 0, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid ship entry %q: expected design:count[:damage]", entry)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid ship count in %q", entry)
		}
		damage := 0
		if len(parts) == 3 {
			if damage, err = strconv.Atoi(parts[2]); err != nil || damage < 0 {
				return nil, fmt.Errorf("invalid damage in %q", entry)
			}
		}
		ships = append(ships, fleet.ShipTransfer{DesignID: parts[0], Count: count, Damage: damage})
	}
	return ships, nil
}

// parseCargo parses "item=amount" entries into a cargo value
func parseCargo(entries []string) (shared.Cargo, error) {
	var c shared.Cargo
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return shared.Cargo{}, fmt.Errorf("invalid cargo entry %q: expected item=amount", entry)
		}
		item, err := shared.ParseCargoItem(strings.TrimSpace(name))
		if err != nil {
			return shared.Cargo{}, err
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || amount < 0 {
			return shared.Cargo{}, fmt.Errorf("invalid cargo amount in %q", entry)
		}
		c = c.WithAmount(item, amount)
	}
	return c, nil
}

func formatOrder(o galaxy.FleetOrder) string {
	var b strings.Builder
	b.WriteString(string(o.Type))
	switch o.Type {
	case galaxy.OrderMove:
		if o.Destination != nil {
			fmt.Fprintf(&b, " to %s", o.Destination)
		}
	case galaxy.OrderOrbit:
		fmt.Fprintf(&b, " %s", o.StarID)
		if o.Action != galaxy.OrbitActionNone {
			fmt.Fprintf(&b, " then %s", o.Action)
		}
	case galaxy.OrderColonize:
		fmt.Fprintf(&b, " %s", o.StarID)
	}
	if o.Warp != nil {
		fmt.Fprintf(&b, " @ warp %d", *o.Warp)
	}
	return b.String()
}

func formatOrders(orders []galaxy.FleetOrder) string {
	if len(orders) == 0 {
		return "-"
	}
	parts := make([]string, len(orders))
	for i, o := range orders {
		parts[i] = formatOrder(o)
	}
	return strings.Join(parts, "; ")
}
