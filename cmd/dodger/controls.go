package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodger/internal/games/dodger"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the controls",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(dodger.Title)
		fmt.Println()
		fmt.Println(dodger.ControlsText)
	},
}
