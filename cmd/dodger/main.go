// dodger is Neon Dodger, a three-lane endless dodging game for the
// terminal, SSH and a desktop window.
//
// Usage:
//
//	dodger                   - Play in the terminal (same as dodger play)
//	dodger menu              - Start menu with difficulty choice and scores
//	dodger serve             - Start SSH server for remote play
//	dodger window            - Play in a desktop window
//	dodger scores            - Show top runs and stats
//	dodger share             - Copy the best score share text
//	dodger controls          - Show the controls
//	dodger config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.dodger/scores.db)
//	--config <path>       - Load a YAML or TOML game config
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
	"github.com/vovakirdan/neon-dodger/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScale      float64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Neon Dodger - dash between lanes and jump the gates",
	Long: `Neon Dodger is an endless three-lane dodging game. Bars block a lane,
gates must be jumped, and the speed ramps up the longer you survive.

Available commands:
  play      - Play in the terminal (default)
  menu      - Start menu with difficulty choice and high scores
  serve     - Start SSH server for remote play
  window    - Play in a desktop window
  scores    - View top runs and stats
  share     - Copy your best score to the clipboard
  controls  - Show the controls
  config    - Print the default game config

Examples:
  dodger
  dodger play --difficulty hard
  dodger menu
  dodger serve --addr :2222
  dodger window --scale 2`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Float64Var(&flagScale, "scale", 0, "Device pixel ratio for the window (0 = monitor scale)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(controlsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from --log-level and --log-file. Full-screen
// terminal commands pass quiet so logs never draw over the game: without a
// log file their output is discarded. The returned close func is never nil.
func newLogger(quiet bool, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game config and applies --difficulty.
func loadConfig() (config.DodgerConfig, config.DifficultyPreset, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.DodgerConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return config.DodgerConfig{}, "", err
	}
	config.ApplyDodgerPreset(&cfg, preset)
	return cfg, preset, nil
}

// runtimeConfig returns the runtime settings for a screen size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.Seed = flagSeed
	rt.Scale = flagScale
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	return rt
}

// openStore opens the scores database. Games still work without it, so a
// failure is logged and nil is returned.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, best scores stay in memory", "error", err)
		return nil
	}
	return store
}

// closeStore closes a store opened by openStore.
func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
