package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	gameID     string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starlanes",
		Short: "Starlanes - turn-based fleet engine",
		Long: `Starlanes runs a turn-based interstellar empire game stored in a local database.

Every command loads the game, applies one operation and saves the new state.
The current game is remembered in the user config ($STARLANES_HOME or
~/.config/starlanes/config.json); --game overrides it.

Examples:
  starlanes game new --name "Orion Arm" --player Ada --ai 2
  starlanes fleet list --owner human
  starlanes fleet order orbit --fleet <id> --star star-4 --colonize
  starlanes fleet evaluate --fleet <id> --star star-4
  starlanes turn end`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/starlanes)")
	rootCmd.PersistentFlags().StringVar(&gameID, "game", "",
		"Game ID (default: current game from user config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log at debug level")

	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewGameCommand())
	rootCmd.AddCommand(NewFleetCommand())
	rootCmd.AddCommand(NewTurnCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
