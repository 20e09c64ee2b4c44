// arcade is a fruit merge game for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	arcade list              - List available game modes
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade menu              - Start menu to pick a mode interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade config <game>     - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>         - Set terminal tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file instead of discarding them
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge-arcade/internal/games/fruitmerge"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by play, window and menu
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Fruit Merge - drop, merge, grow a watermelon",
	Long: `Fruit Merge drops fruits into a box. Two touching fruits of the same
kind merge into the next, bigger fruit; two watermelons vanish for a bonus.

Available commands:
  list     - Show all game modes
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default config

Examples:
  arcade list
  arcade play fruitmerge
  arcade window fruitmerge_classic
  arcade menu
  arcade serve --ssh :2222
  arcade scores fruitmerge`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, ok := parseLevel(flagLogLevel); !ok {
			return fmt.Errorf("unknown log level %q", flagLogLevel)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the config and difficulty flags on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// configureGame hands the game flags and logger to the fruit merge package.
func configureGame(logger *log.Logger) {
	fruitmerge.SetConfigPath(flagConfig)
	fruitmerge.SetDifficultyPreset(flagDifficulty)
	fruitmerge.SetLogger(logger)
}

func parseLevel(s string) (log.Level, bool) {
	level, err := log.ParseLevel(s)
	return level, err == nil
}

// newLogger builds the process logger. Terminal hosts own the screen, so
// without --log-file they pass fallback as io.Discard.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		path := flagLogFile
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				out = f
				closeFn = func() { f.Close() }
			} else {
				fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
			}
		}
	}

	level, _ := parseLevel(flagLogLevel)
	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return logger, closeFn
}
