package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const maxRecentGames = 5

// UserConfig holds per-user CLI state, kept apart from the deployment config
type UserConfig struct {
	// Game the CLI operates on when --game is not given
	CurrentGameID string `json:"current_game_id,omitempty"`

	// Games recently switched to, newest first
	RecentGameIDs []string `json:"recent_game_ids,omitempty"`
}

// UserConfigHandler reads and writes the user's config.json
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler stores config.json under $STARLANES_HOME, falling back to
// the platform config directory (~/.config/starlanes on Linux)
func NewUserConfigHandler() (*UserConfigHandler, error) {
	dir := os.Getenv("STARLANES_HOME")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate user config directory: %w", err)
		}
		dir = filepath.Join(base, "starlanes")
	}
	return NewUserConfigHandlerAt(dir)
}

// NewUserConfigHandlerAt creates a handler storing config.json in dir
func NewUserConfigHandlerAt(dir string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &UserConfigHandler{configPath: filepath.Join(dir, "config.json")}, nil
}

// Load returns the stored config, or an empty one when none was saved yet
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	data, err := os.ReadFile(h.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var cfg UserConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse user config %s: %w", h.configPath, err)
	}
	return &cfg, nil
}

// Save replaces the file through a rename so a crash never leaves half a file
func (h *UserConfigHandler) Save(cfg *UserConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	tmp := h.configPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}
	if err := os.Rename(tmp, h.configPath); err != nil {
		return fmt.Errorf("failed to replace user config: %w", err)
	}
	return nil
}

// SetCurrentGame switches the CLI to gameID and moves it to the front of the
// recent games
func (h *UserConfigHandler) SetCurrentGame(gameID string) error {
	cfg, err := h.Load()
	if err != nil {
		return err
	}

	cfg.CurrentGameID = gameID
	recent := slices.DeleteFunc(cfg.RecentGameIDs, func(id string) bool { return id == gameID })
	cfg.RecentGameIDs = append([]string{gameID}, recent...)
	if len(cfg.RecentGameIDs) > maxRecentGames {
		cfg.RecentGameIDs = cfg.RecentGameIDs[:maxRecentGames]
	}
	return h.Save(cfg)
}

// GetConfigPath returns the location of config.json
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
