package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run right away in the terminal.

Controls:
  Left/Right, A/D  - Dash between lanes
  Space/Up, W      - Jump
  Mouse click      - Jump (top third), dash left/right (halves)
  P                - Pause
  R                - Restart
  C                - Copy share text (after game over)
  ?                - Show controls
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow difficulty ramp
  normal - Default ramp
  hard   - Fast ramp
  fixed  - No progression, stays at the starting speed

Examples:
  dodger play
  dodger play --difficulty hard
  dodger play --config ./my-dodger.toml
  dodger play --seed 42 --log-file dodger.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true, "dodger")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	defer closeStore(store, logger)

	return tui.Run(tui.GameOptions{
		Dodger:    cfg,
		Runtime:   runtimeConfig(width, height),
		Preset:    preset,
		Store:     store,
		Logger:    logger,
		Clipboard: true,
	})
}
