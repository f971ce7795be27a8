package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	turnCmd "github.com/andrescamacho/starlanes-go/internal/application/turn/commands"
	"github.com/andrescamacho/starlanes-go/internal/domain/turn"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/turnlock"
)

// NewTurnCommand creates the turn command with subcommands
func NewTurnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "turn",
		Short: "Advance the game",
	}
	cmd.AddCommand(newTurnEndCommand())
	return cmd
}

func newTurnEndCommand() *cobra.Command {
	var lockDir string

	cmd := &cobra.Command{
		Use:   "end",
		Short: "Resolve every player's fleets and advance one turn",
		Long: `Refuel every fleet and execute the head of its order queue, for the human
player first and then each AI player. The turn is saved only if every fleet
resolves; a failed turn leaves the stored game unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}

			lock := turnlock.New(lockDir, id)
			if err := lock.Acquire(); err != nil {
				return err
			}
			defer lock.Release()

			return withApp(func(a *app) error {
				response, err := a.send(&turnCmd.EndTurnCommand{GameID: id})
				if err != nil {
					return fmt.Errorf("failed to end turn: %w", err)
				}
				result := response.(*turnCmd.EndTurnResponse)

				fmt.Printf("✓ Turn ended, now turn %d\n", result.Turn)
				for _, report := range result.Reports {
					printReport(report)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&lockDir, "lock-dir", filepath.Join(os.TempDir(), "starlanes"), "Directory for per-game turn locks")
	return cmd
}

func printReport(report *turn.Report) {
	fmt.Printf("\n%s: %d fleets, %d arrived, %d colonized, %d orders dropped, %.0f fuel burned\n",
		report.PlayerID,
		report.FleetsProcessed,
		report.Count(turn.EventArrived),
		report.Count(turn.EventColonized),
		report.Count(turn.EventOrderDropped),
		report.FuelConsumed(),
	)
	if !verbose {
		return
	}
	for _, e := range report.Events {
		switch e.Kind {
		case turn.EventMoved, turn.EventArrived:
			fmt.Printf("  %-10s %s warp %d, %.1f LY, fuel -%.0f\n", e.Kind, e.FleetID, e.Warp, e.Step, e.FuelBurned)
		case turn.EventRefueled:
			fmt.Printf("  %-10s %s fuel +%.0f\n", e.Kind, e.FleetID, e.FuelAdded)
		default:
			fmt.Printf("  %-10s %s %s %s\n", e.Kind, e.FleetID, e.StarID, e.Reason)
		}
	}
}
