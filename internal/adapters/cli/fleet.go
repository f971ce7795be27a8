package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	fleetCmd "github.com/andrescamacho/starlanes-go/internal/application/fleet/commands"
	fleetQuery "github.com/andrescamacho/starlanes-go/internal/application/fleet/queries"
	"github.com/andrescamacho/starlanes-go/internal/domain/cargo"
	"github.com/andrescamacho/starlanes-go/internal/domain/navigation"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// NewFleetCommand creates the fleet command with subcommands
func NewFleetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Manage fleets",
		Long: `Manage fleets: create them, give them orders, reorganize them and move cargo.

Examples:
  starlanes fleet list --owner human
  starlanes fleet create --owner human --design scout --star star-0
  starlanes fleet order move --fleet <id> --to 120,80 --warp 6
  starlanes fleet split --fleet <id> --ships colony-ship:1
  starlanes fleet load --fleet <id> --star star-0 --item colonists=fill`,
	}

	cmd.AddCommand(newFleetListCommand())
	cmd.AddCommand(newFleetCreateCommand())
	cmd.AddCommand(newFleetAddShipCommand())
	cmd.AddCommand(newFleetEvaluateCommand())
	cmd.AddCommand(newFleetOrderCommand())
	cmd.AddCommand(newFleetOrdersClearCommand())
	cmd.AddCommand(newFleetColonizeCommand())
	cmd.AddCommand(newFleetTransferCommand())
	cmd.AddCommand(newFleetSplitCommand())
	cmd.AddCommand(newFleetSeparateCommand())
	cmd.AddCommand(newFleetMergeCommand())
	cmd.AddCommand(newFleetDecommissionCommand())
	cmd.AddCommand(newFleetCargoCommand("load"))
	cmd.AddCommand(newFleetCargoCommand("unload"))

	return cmd
}

func newFleetListCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fleets",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(a *app) error {
				response, err := a.send(&fleetQuery.ListFleetsQuery{GameID: id, OwnerID: owner})
				if err != nil {
					return fmt.Errorf("failed to list fleets: %w", err)
				}
				result := response.(*fleetQuery.ListFleetsResponse)

				if len(result.Fleets) == 0 {
					fmt.Println("No fleets found.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "FLEET ID\tNAME\tOWNER\tLOCATION\tSHIPS\tFUEL\tCARGO\tWARP\tORDERS")
				fmt.Fprintln(w, "--------\t----\t-----\t--------\t-----\t----\t-----\t----\t------")
				for _, f := range result.Fleets {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.0f/%.0f\t%.0f/%.0f\t%d (%d)\t%s\n",
						f.ID,
						f.Name,
						f.OwnerID,
						f.Location,
						f.ShipCount,
						f.Fuel, f.FuelCapacity,
						f.Cargo.UsageKT(), f.CargoCapacity,
						f.MaxWarp, f.IdealWarp,
						formatOrders(f.Orders),
					)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Only list fleets of this player")
	return cmd
}

func newFleetCreateCommand() *cobra.Command {
	var owner, designID, starID, at string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a one-ship fleet at a star or in deep space",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			command := &fleetCmd.CreateFleetCommand{GameID: id, OwnerID: owner, DesignID: designID, StarID: starID}
			if at != "" {
				position, err := parseCoordinate(at)
				if err != nil {
					return err
				}
				command.Position = &position
			}

			return withApp(func(a *app) error {
				response, err := a.send(command)
				if err != nil {
					return fmt.Errorf("failed to create fleet: %w", err)
				}
				result := response.(*fleetCmd.CreateFleetResponse)
				if !result.Created {
					fmt.Println("No fleet created (unknown owner, star or design).")
					return nil
				}
				fmt.Printf("✓ Fleet %s created (%s)\n", result.Name, result.FleetID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "human", "Owning player ID")
	cmd.Flags().StringVar(&designID, "design", "", "Ship design ID (required)")
	cmd.Flags().StringVar(&starID, "star", "", "Orbit this star")
	cmd.Flags().StringVar(&at, "at", "", "Deep-space position x,y")
	cmd.MarkFlagRequired("design")
	cmd.MarkFlagsMutuallyExclusive("star", "at")
	cmd.MarkFlagsOneRequired("star", "at")
	return cmd
}

func newFleetAddShipCommand() *cobra.Command {
	var fleetID, designID string
	var count int

	cmd := &cobra.Command{
		Use:   "add-ship",
		Short: "Add ships of a design to a fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(a *app) error {
				response, err := a.send(&fleetCmd.AddShipCommand{GameID: id, FleetID: fleetID, DesignID: designID, Count: count})
				if err != nil {
					return fmt.Errorf("failed to add ships: %w", err)
				}
				result := response.(*fleetCmd.AddShipResponse)
				if !result.Applied {
					fmt.Println("No ships added (unknown fleet or design).")
					return nil
				}
				fmt.Printf("✓ Fleet now has %d ships, fuel %.0f\n", result.ShipCount, result.Fuel)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.Flags().StringVar(&designID, "design", "", "Ship design ID (required)")
	cmd.Flags().IntVar(&count, "count", 1, "Number of ships")
	cmd.MarkFlagRequired("fleet")
	cmd.MarkFlagRequired("design")
	return cmd
}

func newFleetEvaluateCommand() *cobra.Command {
	var fleetID, starID, to string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Check whether a fleet can reach a destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			destination := navigation.StarDestination(starID)
			if to != "" {
				position, err := parseCoordinate(to)
				if err != nil {
					return err
				}
				destination = navigation.SpaceDestination(position)
			}

			return withApp(func(a *app) error {
				response, err := a.send(&fleetQuery.EvaluateMovementQuery{GameID: id, FleetID: fleetID, Destination: destination})
				if err != nil {
					return fmt.Errorf("failed to evaluate movement: %w", err)
				}
				result := response.(*fleetQuery.EvaluateMovementResponse)
				ev := result.Evaluation

				status := "✓ Reachable"
				if !ev.CanMove {
					status = "✗ Not reachable"
				}
				fmt.Println(status)
				fmt.Printf("  Distance:       %.1f LY\n", ev.Distance)
				fmt.Printf("  Warp:           %d (max %d)\n", ev.Warp, result.Stats.MaxWarp)
				fmt.Printf("  Fuel required:  %.0f\n", ev.FuelRequired)
				fmt.Printf("  Fuel available: %.0f\n", ev.FuelAvailable)
				for _, e := range ev.Errors {
					fmt.Printf("  error:   %s\n", e)
				}
				for _, w := range ev.Warnings {
					fmt.Printf("  warning: %s\n", w)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.Flags().StringVar(&starID, "star", "", "Destination star")
	cmd.Flags().StringVar(&to, "to", "", "Destination position x,y")
	cmd.MarkFlagRequired("fleet")
	cmd.MarkFlagsMutuallyExclusive("star", "to")
	cmd.MarkFlagsOneRequired("star", "to")
	return cmd
}

func newFleetColonizeCommand() *cobra.Command {
	var fleetID string

	cmd := &cobra.Command{
		Use:   "colonize",
		Short: "Colonize the star a fleet orbits right away",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(a *app) error {
				response, err := a.send(&fleetCmd.ColonizeNowCommand{GameID: id, FleetID: fleetID})
				if err != nil {
					return fmt.Errorf("failed to colonize: %w", err)
				}
				outcome := response.(*fleetCmd.ColonizeNowResponse).Outcome
				if !outcome.Colonized {
					fmt.Printf("✗ Colonization rejected: %s\n", outcome.Reason)
					return nil
				}
				fmt.Printf("✓ %s colonized: population %d, max %d (habitability %d%%)\n",
					outcome.StarID, outcome.Population, outcome.MaxPopulation, outcome.Habitability)
				if outcome.FleetRemoved {
					fmt.Println("  Colony fleet dismantled")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.MarkFlagRequired("fleet")
	return cmd
}

func newFleetCargoCommand(direction string) *cobra.Command {
	var fleetID, starID string
	var items []string

	cmd := &cobra.Command{
		Use:   direction,
		Short: strings.ToUpper(direction[:1]) + direction[1:] + " cargo at the star a fleet orbits",
		Long: `Each --item is item=amount where amount is a number, "all" or "fill".
Items: ironium, boranium, germanium, resources, colonists. "fill" is load only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			manifest, err := cargo.ParseManifest(items)
			if err != nil {
				return err
			}

			var command common.Request
			if direction == "load" {
				command = &fleetCmd.LoadCargoCommand{GameID: id, FleetID: fleetID, StarID: starID, Manifest: manifest}
			} else {
				command = &fleetCmd.UnloadCargoCommand{GameID: id, FleetID: fleetID, StarID: starID, Manifest: manifest}
			}

			return withApp(func(a *app) error {
				response, err := a.send(command)
				if err != nil {
					return fmt.Errorf("failed to %s cargo: %w", direction, err)
				}
				moved := response.(*fleetCmd.CargoTransferResponse).Moved
				if len(moved) == 0 {
					fmt.Println("Nothing moved.")
					return nil
				}
				for _, item := range shared.CargoTransferOrder {
					if amount, ok := moved[item]; ok {
						fmt.Printf("✓ %s %.0f %s\n", direction, amount, item)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.Flags().StringVar(&starID, "star", "", "Star the fleet orbits (required)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Cargo entry item=amount (repeatable)")
	cmd.MarkFlagRequired("fleet")
	cmd.MarkFlagRequired("star")
	cmd.MarkFlagRequired("item")
	return cmd
}
