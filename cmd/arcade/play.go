package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/merge-arcade/internal/config"
	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/platform/tui"
	"github.com/vovakirdan/merge-arcade/internal/registry"
	"github.com/vovakirdan/merge-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game mode in the terminal.

Controls:
  Mouse            - Aim
  Click            - Drop
  Left/Right/A/D   - Move the cursor
  Space/Enter      - Drop
  R                - Restart (the finished run is saved)
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Bigger fruits unlock twice as late
  normal - Reference unlock points
  hard   - Bigger fruits unlock twice as early
  fixed  - Cherries only, no progression

Examples:
  arcade play fruitmerge
  arcade play fruitmerge --difficulty easy
  arcade play fruitmerge_classic
  arcade play fruitmerge --config ./my-fruitmerge.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// checkGameFlags validates game id and difficulty before the screen is taken.
func checkGameFlags(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	checkDifficulty()
}

func checkDifficulty() {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	checkGameFlags(gameID)

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()
	configureGame(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
