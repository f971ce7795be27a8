package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fleetCmd "github.com/andrescamacho/starlanes-go/internal/application/fleet/commands"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

func newFleetOrderCommand() *cobra.Command {
	var fleetID string
	var warp int

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Append an order to a fleet's queue",
		Long: `Append a move, orbit or colonize order to a fleet's queue.
Orders run one per turn, in the order they were issued.

Examples:
  starlanes fleet order move --fleet <id> --to 120,80
  starlanes fleet order orbit --fleet <id> --star star-4 --colonize --warp 7
  starlanes fleet order colonize --fleet <id> --star star-4`,
	}

	cmd.PersistentFlags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.PersistentFlags().IntVar(&warp, "warp", 0, "Requested warp (default: ideal warp)")
	cmd.MarkPersistentFlagRequired("fleet")

	issue := func(order galaxy.FleetOrder) error {
		id, err := resolveGameID()
		if err != nil {
			return err
		}
		if warp > 0 {
			order = order.WithWarp(warp)
		}
		return withApp(func(a *app) error {
			response, err := a.send(&fleetCmd.IssueFleetOrderCommand{GameID: id, FleetID: fleetID, Order: order})
			if err != nil {
				return fmt.Errorf("failed to issue order: %w", err)
			}
			result := response.(*fleetCmd.FleetOrdersResponse)
			if !result.Applied {
				fmt.Println("No order issued (unknown fleet).")
				return nil
			}
			fmt.Printf("✓ Order queued: %s\n", formatOrder(order))
			fmt.Printf("  Queue: %s\n", formatOrders(result.Orders))
			return nil
		})
	}

	var to string
	move := &cobra.Command{
		Use:   "move",
		Short: "Travel to a point in space",
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseCoordinate(to)
			if err != nil {
				return err
			}
			return issue(galaxy.MoveOrder(position))
		},
	}
	move.Flags().StringVar(&to, "to", "", "Destination x,y (required)")
	move.MarkFlagRequired("to")

	var orbitStar string
	var thenColonize bool
	orbit := &cobra.Command{
		Use:   "orbit",
		Short: "Travel to a star and enter orbit",
		RunE: func(cmd *cobra.Command, args []string) error {
			action := galaxy.OrbitActionNone
			if thenColonize {
				action = galaxy.OrbitActionColonize
			}
			return issue(galaxy.OrbitOrder(orbitStar, action))
		},
	}
	orbit.Flags().StringVar(&orbitStar, "star", "", "Star ID (required)")
	orbit.Flags().BoolVar(&thenColonize, "colonize", false, "Colonize the star on arrival")
	orbit.MarkFlagRequired("star")

	var colonizeStar string
	colonize := &cobra.Command{
		Use:   "colonize",
		Short: "Colonize the orbited star when the order comes up",
		RunE: func(cmd *cobra.Command, args []string) error {
			return issue(galaxy.ColonizeOrder(colonizeStar))
		},
	}
	colonize.Flags().StringVar(&colonizeStar, "star", "", "Star ID (required)")
	colonize.MarkFlagRequired("star")

	cmd.AddCommand(move, orbit, colonize)
	return cmd
}

func newFleetOrdersClearCommand() *cobra.Command {
	var fleetID string

	cmd := &cobra.Command{
		Use:   "clear-orders",
		Short: "Empty a fleet's order queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(a *app) error {
				response, err := a.send(&fleetCmd.SetFleetOrdersCommand{GameID: id, FleetID: fleetID, Orders: nil})
				if err != nil {
					return fmt.Errorf("failed to clear orders: %w", err)
				}
				if !response.(*fleetCmd.FleetOrdersResponse).Applied {
					fmt.Println("Nothing to clear.")
					return nil
				}
				fmt.Println("✓ Orders cleared")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.MarkFlagRequired("fleet")
	return cmd
}
