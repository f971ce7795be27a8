package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlanes-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Starlanes configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SL_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

The current game is stored in the user config.json under $STARLANES_HOME
(default ~/.config/starlanes)

Examples:
  starlanes config show
  starlanes config use-game <game-id>`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigUseGameCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Printf("Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Println("Starlanes Configuration")
			fmt.Println("=======================")

			fmt.Println("User Preferences:")
			fmt.Printf("  Config file:      %s\n", userConfigHandler.GetConfigPath())
			if userCfg.CurrentGameID != "" {
				fmt.Printf("  Current Game:     %s\n", userCfg.CurrentGameID)
			} else {
				fmt.Printf("  Current Game:     (not set)\n")
			}
			if len(userCfg.RecentGameIDs) > 1 {
				fmt.Printf("  Recent Games:     %s\n", strings.Join(userCfg.RecentGameIDs[1:], ", "))
			}

			fmt.Println("\nDatabase:")
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Printf("  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Printf("  Host:             %s:%d\n", cfg.Database.Postgres.Host, cfg.Database.Postgres.Port)
				fmt.Printf("  Database:         %s\n", cfg.Database.Postgres.Name)
			}

			fmt.Println("\nGame Rules:")
			fmt.Printf("  Fleets per owner: %d\n", cfg.Game.MaxFleetsPerOwner)
			fmt.Printf("  Ships per stack:  %d\n", cfg.Game.MaxShipsPerStack)
			fmt.Printf("  LY per warp:      %.1f\n", cfg.Game.WarpDistancePerTurn)
			fmt.Printf("  Arrival snap:     %.1f LY\n", cfg.Game.ArrivalSnapRadius)
			fmt.Printf("  Governor:         %s\n", cfg.Game.DefaultGovernor)

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			fmt.Println("\nMetrics:")
			fmt.Printf("  Enabled:          %t\n", cfg.Metrics.Enabled)
			if cfg.Metrics.Enabled {
				fmt.Printf("  Textfile:         %s\n", cfg.Metrics.TextfilePath)
			}
			return nil
		},
	}
}

func newConfigUseGameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use-game <game-id>",
		Short: "Select the current game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetCurrentGame(args[0]); err != nil {
				return fmt.Errorf("failed to save current game: %w", err)
			}
			fmt.Printf("✓ Current game set to %s\n", args[0])
			return nil
		},
	}
}

// maskPassword hides the password of a database URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
