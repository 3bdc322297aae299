package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadDodger loads Neon Dodger configuration.
// Search order: customPath -> ~/.dodger/configs/dodger.{yaml,toml} ->
// ./configs/dodger.yaml -> embedded default.
// Files only need to contain the keys they override.
func LoadDodger(customPath string) (DodgerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatFor(customPath))
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	for _, name := range []string{"dodger.yaml", "dodger.toml"} {
		path := userConfigPath(name)
		if path == "" {
			break
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data, formatFor(path)); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dodger.yaml")); err == nil {
		if cfg, err := Parse(data, FormatYAML); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// Format names a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// formatFor picks the decoder from the file extension.
func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes data on top of the embedded defaults and validates the result.
func Parse(data []byte, format Format) (DodgerConfig, error) {
	cfg := embeddedDefault()

	// Lanes is a slice; decoders append into a non-nil one.
	cfg.World.Lanes = nil

	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DodgerConfig{}, err
	}

	if cfg.World.Lanes == nil {
		cfg.World.Lanes = DefaultDodgerConfig().World.Lanes
	}

	if err := cfg.Validate(); err != nil {
		return DodgerConfig{}, err
	}
	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() DodgerConfig {
	var cfg DodgerConfig
	if err := yaml.Unmarshal(defaultDodgerYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultDodgerConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger", "configs", filename)
}

// Validate checks the invariants the simulation relies on.
func (c DodgerConfig) Validate() error {
	switch {
	case len(c.World.Lanes) != 3:
		return fmt.Errorf("%w: world.lanes must list exactly 3 lanes, got %d", ErrInvalid, len(c.World.Lanes))
	case c.Player.StartLane < 0 || c.Player.StartLane > 2:
		return fmt.Errorf("%w: player.start_lane must be in [0,2], got %d", ErrInvalid, c.Player.StartLane)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player.size must be positive", ErrInvalid)
	case c.Physics.MaxDeltaMS <= 0:
		return fmt.Errorf("%w: physics.max_delta_ms must be positive", ErrInvalid)
	case c.Physics.DashDamping < 0 || c.Physics.DashDamping > 1:
		return fmt.Errorf("%w: physics.dash_damping must be in [0,1]", ErrInvalid)
	case c.Physics.DampingFPS <= 0:
		return fmt.Errorf("%w: physics.damping_fps must be positive", ErrInvalid)
	case c.Obstacles.Bar.Width <= 0 || c.Obstacles.Bar.Height <= 0:
		return fmt.Errorf("%w: obstacles.bar needs a positive size", ErrInvalid)
	case c.Obstacles.Gate.Width <= 0 || c.Obstacles.Gate.Height <= 0:
		return fmt.Errorf("%w: obstacles.gate needs a positive size", ErrInvalid)
	case c.Obstacles.BarChance < 0 || c.Obstacles.BarChance > 1:
		return fmt.Errorf("%w: obstacles.bar_chance must be in [0,1]", ErrInvalid)
	case c.Obstacles.MinInterval <= 0:
		return fmt.Errorf("%w: obstacles.min_interval must be positive", ErrInvalid)
	case c.Obstacles.JitterMin <= 0 || c.Obstacles.JitterMin > c.Obstacles.JitterMax:
		return fmt.Errorf("%w: obstacles jitter range [%v, %v] is empty", ErrInvalid, c.Obstacles.JitterMin, c.Obstacles.JitterMax)
	case c.Difficulty.Ramp < 0:
		return fmt.Errorf("%w: difficulty.ramp cannot be negative", ErrInvalid)
	case c.Particles.FadeMS <= 0:
		return fmt.Errorf("%w: particles.fade_ms must be positive", ErrInvalid)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalid)
	}
	return nil
}

// ApplyDodgerPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyDodgerPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Ramp = RampForPreset(preset)
}
