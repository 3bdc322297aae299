package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodger/internal/platform/desktop"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Neon Dodger in a resizable desktop window.

Keys work as in the terminal. Click or touch the top third of the window
to jump, the left or right half to dash. Esc or Q closes the window.

Examples:
  dodger window
  dodger window --width 720 --height 960
  dodger window --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowW, "width", 540, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 720, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false, "dodger")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	defer closeStore(store, logger)

	return desktop.Run(desktop.Options{
		Dodger:  cfg,
		Runtime: runtimeConfig(flagWindowW, flagWindowH),
		Preset:  preset,
		Store:   store,
		Logger:  logger,
	})
}
