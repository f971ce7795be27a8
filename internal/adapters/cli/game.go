package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	gameCmd "github.com/andrescamacho/starlanes-go/internal/application/game/commands"
	gameQuery "github.com/andrescamacho/starlanes-go/internal/application/game/queries"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/config"
)

// NewGameCommand creates the game command with subcommands
func NewGameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Create and inspect games",
		Long: `Create and inspect games.

Examples:
  starlanes game new --name "Orion Arm" --player Ada --ai 2 --stars 48
  starlanes game list
  starlanes game show --turn 3`,
	}

	cmd.AddCommand(newGameNewCommand())
	cmd.AddCommand(newGameListCommand())
	cmd.AddCommand(newGameShowCommand())

	return cmd
}

func newGameNewCommand() *cobra.Command {
	var (
		name      string
		player    string
		aiPlayers int
		stars     int
		seed      uint64
		noSelect  bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new galaxy and start a game",
		Long: `Generate a galaxy, settle a homeworld for every player and give each
player a starter fleet. The new game becomes the current game unless --no-select is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			return withApp(func(a *app) error {
				response, err := a.send(&gameCmd.NewGameCommand{
					Name:      name,
					HumanName: player,
					AIPlayers: aiPlayers,
					StarCount: stars,
					Seed:      seed,
				})
				if err != nil {
					return fmt.Errorf("failed to create game: %w", err)
				}
				result := response.(*gameCmd.NewGameResponse)

				fmt.Printf("✓ Game %q created\n", name)
				fmt.Printf("  ID:      %s\n", result.GameID)
				fmt.Printf("  Stars:   %d (seed %d)\n", len(result.State.Stars), seed)
				fmt.Printf("  Players: %d\n", len(result.State.Players()))
				fmt.Printf("  Fleets:  %d\n", len(result.State.Fleets))

				if noSelect {
					return nil
				}
				userConfigHandler, err := config.NewUserConfigHandler()
				if err != nil {
					return fmt.Errorf("failed to create user config handler: %w", err)
				}
				if err := userConfigHandler.SetCurrentGame(result.GameID); err != nil {
					return fmt.Errorf("failed to save current game: %w", err)
				}
				fmt.Println("✓ Set as current game")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name (required)")
	cmd.Flags().StringVar(&player, "player", "", "Human player name (required)")
	cmd.Flags().IntVar(&aiPlayers, "ai", 1, "Number of AI players (0-4)")
	cmd.Flags().IntVar(&stars, "stars", 32, "Number of stars")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Galaxy seed (default: time based)")
	cmd.Flags().BoolVar(&noSelect, "no-select", false, "Do not make this the current game")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("player")

	return cmd
}

func newGameListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored games",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				response, err := a.send(&gameQuery.ListGamesQuery{})
				if err != nil {
					return fmt.Errorf("failed to list games: %w", err)
				}
				result := response.(*gameQuery.ListGamesResponse)

				if len(result.Games) == 0 {
					fmt.Println("No games found.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTURN\tUPDATED")
				fmt.Fprintln(w, "--\t----\t----\t-------")
				for _, g := range result.Games {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", g.ID, g.Name, g.Turn, g.UpdatedAt.Format(time.DateTime))
				}
				return w.Flush()
			})
		},
	}
}

func newGameShowCommand() *cobra.Command {
	var turnNumber int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a game's players and stars",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			query := &gameQuery.GetGameQuery{GameID: id}
			if turnNumber > 0 {
				query.Turn = &turnNumber
			}

			return withApp(func(a *app) error {
				response, err := a.send(query)
				if err != nil {
					return fmt.Errorf("failed to load game: %w", err)
				}
				state := response.(*gameQuery.GetGameResponse).State

				fmt.Printf("%s (turn %d)\n", state.Name, state.Turn)
				fmt.Println("Players:")
				for _, p := range state.Players() {
					kind := "human"
					if p.IsAI {
						kind = "ai"
					}
					fmt.Printf("  %-8s %-16s %-6s fleets=%d\n", p.ID, p.Name, kind, len(state.FleetsOwnedBy(p.ID)))
				}

				fmt.Println()
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "STAR\tNAME\tPOSITION\tOWNER\tPOP\tMAX POP")
				fmt.Fprintln(w, "----\t----\t--------\t-----\t---\t-------")
				for _, s := range state.Stars {
					owner := "-"
					if s.IsOwned() {
						owner = s.OwnerID.String()
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n", s.ID, s.Name, s.Position, owner, s.Population, s.MaxPopulation)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&turnNumber, "turn", 0, "Show a past turn's snapshot")
	return cmd
}
