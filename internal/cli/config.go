package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/diagrid/pkg/diagram"
)

// Config holds CLI-level defaults read from the user config file.
// All fields are optional; zero values fall back to engine defaults.
type Config struct {
	Diagram DiagramConfig `toml:"diagram"`
}

// DiagramConfig configures the settings new diagrams start with.
type DiagramConfig struct {
	BackgroundColor string   `toml:"background_color"`
	GridEnabled     *bool    `toml:"grid_enabled"`
	SnapToGrid      *bool    `toml:"snap_to_grid"`
	GridSize        *float64 `toml:"grid_size"`
}

// configPath returns the user config file location
// (~/.config/diagrid/config.toml).
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user config file. A missing file is not an
// error: the zero Config is returned and engine defaults apply.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// initialSettings merges the config over the engine's default settings.
func (c Config) initialSettings() diagram.Settings {
	s := diagram.DefaultSettings()
	if c.Diagram.BackgroundColor != "" {
		s.BackgroundColor = c.Diagram.BackgroundColor
	}
	if c.Diagram.GridEnabled != nil {
		s.GridEnabled = *c.Diagram.GridEnabled
	}
	if c.Diagram.SnapToGrid != nil {
		s.SnapToGrid = *c.Diagram.SnapToGrid
	}
	if c.Diagram.GridSize != nil {
		s.GridSize = *c.Diagram.GridSize
	}
	return s
}
