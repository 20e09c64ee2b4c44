package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge-arcade/internal/config"
	"github.com/vovakirdan/merge-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config for a game",
	Long: `Prints the built-in YAML config for a game mode. Save it to
~/.arcade/configs/fruitmerge.yaml or pass it with --config to override it.

Examples:
  arcade config fruitmerge > ~/.arcade/configs/fruitmerge.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: %s has no config\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
