package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-dodger/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with difficulty choice and high scores",
	Long: `Open the start menu. Pick a difficulty with Left/Right, then play,
browse the high scores or quit. After a run, Esc or B returns to the menu.

Examples:
  dodger menu
  dodger menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true, "dodger")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	defer closeStore(store, logger)

	return tui.RunMenu(tui.GameOptions{
		Dodger:    cfg,
		Runtime:   runtimeConfig(width, height),
		Preset:    preset,
		Store:     store,
		Logger:    logger,
		Clipboard: true,
	})
}
