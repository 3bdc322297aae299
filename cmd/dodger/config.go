package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long:  "Print the default game config as YAML. Redirect it to a file, edit it and pass it back with --config.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return writeDefaultConfig(os.Stdout)
	},
}

func writeDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}
