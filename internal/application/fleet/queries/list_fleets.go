package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// ListFleetsQuery lists a game's fleets, optionally for one owner
type ListFleetsQuery struct {
	GameID  string `validate:"required"`
	OwnerID string
}

// FleetSummary is a read model of one fleet
type FleetSummary struct {
	ID            string
	Name          string
	OwnerID       string
	Location      string
	ShipCount     int
	Stacks        []galaxy.ShipStack
	Fuel          float64
	FuelCapacity  float64
	Cargo         shared.Cargo
	CargoCapacity float64
	MaxWarp       int
	IdealWarp     int
	Orders        []galaxy.FleetOrder
}

// ListFleetsResponse carries the fleets in game order
type ListFleetsResponse struct {
	Fleets []FleetSummary
}

// ListFleetsHandler handles ListFleetsQuery
type ListFleetsHandler struct {
	store *common.GameStore
}

// NewListFleetsHandler creates a new list fleets handler
func NewListFleetsHandler(store *common.GameStore) *ListFleetsHandler {
	return &ListFleetsHandler{store: store}
}

// Handle executes the list fleets query
func (h *ListFleetsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListFleetsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListFleetsQuery")
	}

	state, err := h.store.Load(ctx, query.GameID)
	if err != nil {
		return nil, err
	}

	designs := state.DesignRegistry()
	stats := navigation.NewMovementStatsCalculator(designs)
	fleets := make([]FleetSummary, 0, len(state.Fleets))
	for _, f := range state.Fleets {
		if query.OwnerID != "" && f.OwnerID.String() != query.OwnerID {
			continue
		}
		s := stats.Stats(f)
		fleets = append(fleets, FleetSummary{
			ID:            f.ID,
			Name:          f.Name,
			OwnerID:       f.OwnerID.String(),
			Location:      describeLocation(state, f.Location),
			ShipCount:     f.ShipCount(),
			Stacks:        f.Stacks,
			Fuel:          f.Fuel,
			FuelCapacity:  galaxy.FuelCapacity(f, designs),
			Cargo:         f.Cargo,
			CargoCapacity: galaxy.CargoCapacity(f, designs),
			MaxWarp:       s.MaxWarp,
			IdealWarp:     s.IdealWarp,
			Orders:        f.Orders,
		})
	}
	return &ListFleetsResponse{Fleets: fleets}, nil
}

func describeLocation(state *galaxy.GameState, loc galaxy.Location) string {
	if loc.IsOrbit() {
		if star := state.Star(loc.StarID); star != nil {
			return fmt.Sprintf("orbiting %s (%s)", star.Name, star.ID)
		}
	}
	return loc.String()
}
