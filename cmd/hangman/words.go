package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var flagAllWords bool

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the word list the game would use",
	Long: `Resolve the word list the same way "play" does and report where it
came from and how many entries are usable. Entries shorter than three
letters, hyphenated entries and entries with characters that cannot be
typed are skipped.

Examples:
  hangman words
  hangman words --words ./animals.txt --all`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().BoolVar(&flagAllWords, "all", false, "List every usable word")
}

func runWords(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	dict, origin := loadDictionary(cfg, logger)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Source: %s\n", origin)
	fmt.Fprintf(out, "Usable words: %d\n", dict.Len())

	if flagAllWords {
		fmt.Fprintln(out)
		for _, w := range dict.Words() {
			fmt.Fprintf(out, "  %s\n", w)
		}
	}
}
