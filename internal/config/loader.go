package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// appDir is the per-user directory for config, host key and screenshots.
const appDir = ".connect4"

// Load reads the configuration.
// Search order: customPath -> ~/.connect4/config.yaml -> ./configs/connect4.yaml -> embedded default.
// Files are decoded on top of the defaults, so they only need the keys they change.
// CONNECT4_* environment variables are applied last.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadFile decodes the first config file found in the search order.
func loadFile(customPath string) (Config, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return defaults(), fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "connect4.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = defaults()
	}

	return cfg, nil
}

// defaults decodes the embedded default YAML.
func defaults() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	var errs []error

	if len(c.Players) != 2 {
		errs = append(errs, fmt.Errorf("players: need exactly 2 entries, got %d", len(c.Players)))
	}
	for i, p := range c.Players {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("players[%d].name: must not be empty", i))
		}
		if utf8.RuneCountInString(p.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("players[%d].glyph: must be a single character, got %q", i, p.Glyph))
		}
		if _, err := core.ParseColor(p.Color); err != nil {
			errs = append(errs, fmt.Errorf("players[%d].color: %w", i, err))
		}
	}

	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		errs = append(errs, fmt.Errorf("display.tick_rate: must be within 1..240, got %d", c.Display.TickRate))
	}
	if c.Display.DropTicksPerRow < 0 {
		errs = append(errs, fmt.Errorf("display.drop_ticks_per_row: must not be negative, got %d", c.Display.DropTicksPerRow))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout: must not be negative"))
	}

	return errors.Join(errs...)
}

// UserPath returns a path inside ~/.connect4, or empty if home is unavailable.
func UserPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, name)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
