package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	fleetCmd "github.com/andrescamacho/starlanes-go/internal/application/fleet/commands"
	"github.com/andrescamacho/starlanes-go/internal/domain/fleet"
)

// reorganize sends a reorganization command and prints its outcome
func reorganize(verb string, command common.Request) error {
	return withApp(func(a *app) error {
		response, err := a.send(command)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", verb, err)
		}
		result := response.(*fleetCmd.ReorganizeResponse)
		if !result.Applied {
			fmt.Printf("Nothing to %s.\n", verb)
			return nil
		}
		fmt.Printf("✓ %s done\n", strings.ToUpper(verb[:1])+verb[1:])
		for _, id := range result.CreatedFleetIDs {
			fmt.Printf("  New fleet: %s\n", id)
		}
		return nil
	})
}

// transferFlags binds the --ships, --fuel and --cargo flags of a transfer spec
type transferFlags struct {
	ships []string
	fuel  float64
	cargo []string
}

func (t *transferFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&t.ships, "ships", nil, "Ships design:count[:damage] (repeatable)")
	cmd.Flags().Float64Var(&t.fuel, "fuel", 0, "Fuel to move")
	cmd.Flags().StringArrayVar(&t.cargo, "cargo", nil, "Cargo item=amount (repeatable)")
}

func (t *transferFlags) spec() (fleet.TransferSpec, error) {
	ships, err := parseShips(t.ships)
	if err != nil {
		return fleet.TransferSpec{}, err
	}
	cargo, err := parseCargo(t.cargo)
	if err != nil {
		return fleet.TransferSpec{}, err
	}
	return fleet.TransferSpec{Ships: ships, Fuel: t.fuel, Cargo: cargo}, nil
}

func newFleetTransferCommand() *cobra.Command {
	var from, to string
	var flags transferFlags

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move ships, fuel and cargo between two fleets at the same place",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			spec, err := flags.spec()
			if err != nil {
				return err
			}
			return reorganize("transfer", &fleetCmd.TransferCommand{GameID: id, SourceFleetID: from, TargetFleetID: to, Spec: spec})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source fleet ID (required)")
	cmd.Flags().StringVar(&to, "to", "", "Target fleet ID (required)")
	flags.bind(cmd)
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func newFleetSplitCommand() *cobra.Command {
	var fleetID string
	var flags transferFlags

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Move part of a fleet into a new fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			spec, err := flags.spec()
			if err != nil {
				return err
			}
			return reorganize("split", &fleetCmd.SplitFleetCommand{GameID: id, FleetID: fleetID, Spec: spec})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	flags.bind(cmd)
	cmd.MarkFlagRequired("fleet")
	cmd.MarkFlagRequired("ships")
	return cmd
}

func newFleetSeparateCommand() *cobra.Command {
	var fleetID string

	cmd := &cobra.Command{
		Use:   "separate",
		Short: "Split a fleet into one fleet per ship",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return reorganize("separate", &fleetCmd.SeparateFleetCommand{GameID: id, FleetID: fleetID})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.MarkFlagRequired("fleet")
	return cmd
}

func newFleetMergeCommand() *cobra.Command {
	var target string
	var sources []string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge fleets at the same place into a target fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return reorganize("merge", &fleetCmd.MergeFleetsCommand{GameID: id, TargetFleetID: target, SourceFleetIDs: sources})
		},
	}

	cmd.Flags().StringVar(&target, "into", "", "Target fleet ID (required)")
	cmd.Flags().StringSliceVar(&sources, "fleets", nil, "Source fleet IDs (required)")
	cmd.MarkFlagRequired("into")
	cmd.MarkFlagRequired("fleets")
	return cmd
}

func newFleetDecommissionCommand() *cobra.Command {
	var fleetID string

	cmd := &cobra.Command{
		Use:   "decommission",
		Short: "Remove a fleet from the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return reorganize("decommission", &fleetCmd.DecommissionFleetCommand{GameID: id, FleetID: fleetID})
		},
	}

	cmd.Flags().StringVar(&fleetID, "fleet", "", "Fleet ID (required)")
	cmd.MarkFlagRequired("fleet")
	return cmd
}
