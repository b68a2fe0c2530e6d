// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman                  - Play in the terminal (same as "hangman play")
//	hangman play [--plain]   - Play in the terminal
//	hangman serve            - Start SSH server for remote play
//	hangman words [--all]    - Show which word list would be used
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.hangman/configs, ./configs)
//	--words <path>      - Word list, one word per line
//	--seed <value>      - RNG seed for reproducible word picks
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var (
	// Global flags
	flagConfig   string
	flagWords    string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the figure is complete",
	Long: `Hangman picks a secret word and you guess it one letter at a time.
Each wrong letter adds a body part to the figure; the seventh one ends
the round.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  words    - Show the word list in use

Examples:
  hangman
  hangman --words ./animals.txt
  hangman play --plain
  hangman serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to word list (default: config, then "+words.SystemDictPath+", then built-in)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wordsCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() config.HangmanConfig {
	cfg, err := config.LoadHangman(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagWords != "" {
		cfg.Words.Path = flagWords
	}
	return cfg
}

// newLogger writes to --log-file when set, otherwise to fallback.
// The returned cleanup closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, cleanup := fallback, func() {}
	if flagLogFile != "" {
		path, pathErr := config.ExpandHome(flagLogFile)
		if pathErr != nil {
			exitCannotOpen(flagLogFile)
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			exitCannotOpen(flagLogFile)
		}
		out, cleanup = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "hangman",
		ReportTimestamp: true,
	})
	return logger, cleanup
}

// loadDictionary resolves the word list and exits on failure.
func loadDictionary(cfg config.HangmanConfig, logger *log.Logger) (*words.Dictionary, string) {
	path, err := config.ExpandHome(cfg.Words.Path)
	if err != nil {
		exitCannotOpen(cfg.Words.Path)
	}

	entries, origin, err := words.Resolve(path)
	if err != nil {
		var srcErr *words.SourceError
		if errors.As(err, &srcErr) {
			logger.Error("word source unavailable", "path", srcErr.Path, "error", srcErr.Err)
			exitCannotOpen(srcErr.Path)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dict, err := words.New(entries, words.NewSource(flagSeed))
	if errors.Is(err, words.ErrNoValidWords) {
		fmt.Fprintf(os.Stderr, "No usable words in %s. Exiting.\n", origin)
		os.Exit(1)
	}
	logger.Debug("word list loaded", "origin", origin, "entries", len(entries), "valid", dict.Len())
	return dict, origin
}

func exitCannotOpen(path string) {
	fmt.Fprintf(os.Stderr, "Cannot open file: %s. Exiting.\n", path)
	os.Exit(1)
}
