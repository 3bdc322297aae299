package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

func TestLoadConfigPresets(t *testing.T) {
	defer func() { flagDifficulty, flagConfig = "", "" }()

	tests := []struct {
		difficulty string
		wantPreset config.DifficultyPreset
		wantRamp   float64
		wantErr    bool
	}{
		{"", "", config.DefaultDodgerConfig().Difficulty.Ramp, false},
		{"hard", config.DifficultyHard, config.RampForPreset(config.DifficultyHard), false},
		{"fixed", config.DifficultyFixed, 0, false},
		{"insane", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			flagDifficulty = tt.difficulty
			flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
			if !tt.wantErr {
				// Point at a real file so the user's own config is not picked up
				if err := os.WriteFile(flagConfig, []byte("player:\n  size: 26\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			cfg, preset, err := loadConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() failed: %v", err)
			}
			if preset != tt.wantPreset {
				t.Errorf("preset = %q, want %q", preset, tt.wantPreset)
			}
			if cfg.Difficulty.Ramp != tt.wantRamp {
				t.Errorf("ramp = %v, want %v", cfg.Difficulty.Ramp, tt.wantRamp)
			}
		})
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	defer func() { flagConfig = "" }()

	flagConfig = filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(flagConfig, []byte("player:\n  size: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadConfig(); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("loadConfig() = %v, want ErrInvalid", err)
	}
}

func TestNewLogger(t *testing.T) {
	defer func() { flagLogLevel, flagLogFile = "info", "" }()

	flagLogLevel = "loud"
	if _, _, err := newLogger(true, "dodger"); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "dodger.log")
	logger, closeLog, err := newLogger(true, "dodger")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("run started", "seed", 7)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "run started") {
		t.Errorf("log file = %q", data)
	}
}

func TestRuntimeConfig(t *testing.T) {
	defer func() { flagFPS, flagSeed, flagScale = 60, 0, 0 }()

	flagFPS, flagSeed, flagScale = 0, 42, 2
	rt := runtimeConfig(120, 40)
	if rt.ScreenW != 120 || rt.ScreenH != 40 || rt.Seed != 42 || rt.Scale != 2 {
		t.Errorf("runtimeConfig = %+v", rt)
	}
	if rt.TickRate != 60 {
		t.Errorf("TickRate = %d, want the default 60 for --fps 0", rt.TickRate)
	}
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDefaultConfig(&buf); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dodger.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	defer func() { flagDifficulty, flagConfig = "", "" }()
	flagConfig = path

	cfg, _, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig(printed defaults): %v", err)
	}
	if !reflect.DeepEqual(cfg, config.DefaultDodgerConfig()) {
		t.Errorf("printed config loads as %+v, want defaults", cfg)
	}
}
