package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hangman in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  a-z      - Guess a letter
  y / n    - Play again or quit once a round is over
  Ctrl+C   - Quit

The --plain mode skips the Bubble Tea runtime and drives the raw
terminal directly, redrawing after every key.

Examples:
  hangman play
  hangman play --plain
  hangman play --words ./animals.txt --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	const usage = "Use the plain raw-terminal loop instead of Bubble Tea"
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, usage)
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, usage)
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The game owns the terminal, so logs only go to --log-file.
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	dict, _ := loadDictionary(cfg, logger)
	theme := tui.NewTheme(cfg.Theme, nil)

	var err error
	if flagPlain {
		err = tui.RunPlain(dict, theme, logger, os.Stdin, os.Stdout)
	} else {
		rc := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rc.ScreenW = w
			rc.ScreenH = h
		}
		err = tui.Run(dict, theme, rc, logger)
	}

	if err != nil && !errors.Is(err, hangman.ErrInterrupted) {
		logger.Error("game stopped", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Good Bye!")
}
