package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/domain/design"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// Starting species; AI races are spread around the habitat space
var (
	humanSpecies = galaxy.Species{Name: "Human", IdealTemperature: 0, IdealAtmosphere: 50, ToleranceRadius: 120}
	aiSpecies    = []galaxy.Species{
		{Name: "Silicoid", IdealTemperature: 150, IdealAtmosphere: 10, ToleranceRadius: 90},
		{Name: "Cryon", IdealTemperature: -150, IdealAtmosphere: 80, ToleranceRadius: 90},
		{Name: "Aquan", IdealTemperature: 40, IdealAtmosphere: 95, ToleranceRadius: 100},
		{Name: "Pyrian", IdealTemperature: 190, IdealAtmosphere: 60, ToleranceRadius: 70},
	}
)

// starterFleet is the design set each player receives at the homeworld
var starterFleet = []string{design.LegacyScout, design.LegacyColonyShip, design.LegacyMediumFreighter}

// NewGameCommand creates and stores a freshly generated game
type NewGameCommand struct {
	Name      string `validate:"required"`
	HumanName string `validate:"required"`
	AIPlayers int    `validate:"min=0,max=4"`
	StarCount int    `validate:"min=2,max=512"`
	Seed      uint64
}

// NewGameResponse carries the created game
type NewGameResponse struct {
	GameID string
	State  *galaxy.GameState
}

// NewGameHandler handles NewGameCommand
type NewGameHandler struct {
	repo     galaxy.GameRepository
	registry *fleet.Registry
	governor galaxy.DefaultGovernorProvider
	newID    func() string
}

// NewNewGameHandler creates a new game setup handler
func NewNewGameHandler(
	repo galaxy.GameRepository,
	registry *fleet.Registry,
	governor galaxy.DefaultGovernorProvider,
) *NewGameHandler {
	return &NewGameHandler{repo: repo, registry: registry, governor: governor, newID: uuid.NewString}
}

// Handle executes the new game command
func (h *NewGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*NewGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.StarCount < cmd.AIPlayers+1 {
		return nil, fmt.Errorf("need at least %d stars for %d players", cmd.AIPlayers+1, cmd.AIPlayers+1)
	}

	human := galaxy.Player{ID: shared.MustNewPlayerID("human"), Name: cmd.HumanName, Species: humanSpecies}
	ais := make([]galaxy.Player, 0, cmd.AIPlayers)
	for i := 0; i < cmd.AIPlayers; i++ {
		species := aiSpecies[i%len(aiSpecies)]
		ais = append(ais, galaxy.Player{
			ID:      shared.MustNewPlayerID(fmt.Sprintf("ai-%d", i+1)),
			Name:    fmt.Sprintf("%s Collective", species.Name),
			IsAI:    true,
			Species: species,
		})
	}

	state := galaxy.NewGameState(h.newID(), cmd.Name, human, ais...)
	params := galaxy.DefaultGeneratorParams(cmd.Seed)
	params.StarCount = cmd.StarCount
	state.Stars = galaxy.GenerateStars(params)

	var err error
	for i, player := range state.Players() {
		home := state.Stars[i*len(state.Stars)/(len(ais)+1)]
		galaxy.SettleHomeworld(home, player, galaxy.DefaultHomeworldSetup(), h.governor.Current())
		if state, err = h.launchStarterFleet(state, player, home); err != nil {
			return nil, err
		}
	}

	if err := h.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save new game: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "Game created", map[string]interface{}{
		"game_id": state.ID,
		"name":    state.Name,
		"stars":   len(state.Stars),
		"players": len(state.Players()),
		"seed":    cmd.Seed,
	})
	return &NewGameResponse{GameID: state.ID, State: state}, nil
}

func (h *NewGameHandler) launchStarterFleet(
	state *galaxy.GameState,
	player galaxy.Player,
	home *galaxy.Star,
) (*galaxy.GameState, error) {
	for _, designID := range starterFleet {
		next, _, err := h.registry.CreateFleet(state, player.ID, designID, galaxy.InOrbit(home.ID))
		if err != nil {
			return nil, fmt.Errorf("failed to launch starter fleet for %s: %w", player.ID, err)
		}
		state = next
	}
	return state, nil
}
