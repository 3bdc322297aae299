package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodger/internal/games/dodger"
	"github.com/vovakirdan/neon-dodger/internal/storage"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Copy your best score to the clipboard",
	Long: `Copy "I scored N in Neon Dodger!" with your best score to the
clipboard. When no clipboard is available the text is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runShare,
}

func runShare(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	best, err := store.Best(storage.DefaultBestKey)
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}

	text := dodger.ShareText(best)
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Println(text)
		return nil
	}
	fmt.Println("Copied to clipboard:", text)
	return nil
}
