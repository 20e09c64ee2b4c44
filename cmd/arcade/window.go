package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/games/fruitmerge"
	"github.com/vovakirdan/merge-arcade/internal/platform/window"
	"github.com/vovakirdan/merge-arcade/internal/registry"
	"github.com/vovakirdan/merge-arcade/internal/storage"
)

var flagWindowSize int

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game mode.

The window always simulates at 60 ticks per second; --fps only applies
to the terminal.

Controls:
  Mouse        - Aim
  Click/Space  - Drop
  R            - Restart (the finished run is saved)
  Esc/Q        - Quit

Examples:
  arcade window fruitmerge
  arcade window fruitmerge_classic --size 600`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagWindowSize, "size", 800, "Window width and height in pixels")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	checkGameFlags(gameID)

	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()
	configureGame(logger)

	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*fruitmerge.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q has no window frontend\n", gameID)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	game.Reset(cfg)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := window.Run(game, store, logger, flagWindowSize)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
