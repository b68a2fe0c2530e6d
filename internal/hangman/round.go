package hangman

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Placeholder marks an unrevealed position in the guess mask.
const Placeholder = '-'

// MaxWrongGuesses is the number of misses that completes the figure.
const MaxWrongGuesses = 7

// Outcome is the derived result of a round.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// RoundState tracks the secret word, the revealed mask, the letters tried so
// far and the number of misses for one round.
type RoundState struct {
	word   []rune
	mask   []rune
	used   map[rune]struct{}
	misses int
}

// NewRoundState starts a round for the given word.
func NewRoundState(word string) *RoundState {
	r := &RoundState{}
	r.Reset(word)
	return r
}

// Reset starts over with a new word: all-placeholder mask, no used
// letters, no misses.
func (r *RoundState) Reset(word string) {
	r.word = []rune(word)
	r.mask = []rune(strings.Repeat(string(Placeholder), len(r.word)))
	r.used = make(map[rune]struct{})
	r.misses = 0
}

// Word returns the secret word.
func (r *RoundState) Word() string {
	return string(r.word)
}

// Mask returns the current guess mask.
func (r *RoundState) Mask() string {
	return string(r.mask)
}

// Contains reports whether the letter occurs anywhere in the word.
func (r *RoundState) Contains(letter rune) bool {
	return slices.Contains(r.word, letter)
}

// Used reports whether the letter was already submitted this round.
func (r *RoundState) Used(letter rune) bool {
	_, ok := r.used[letter]
	return ok
}

// RecordLetter marks a letter as submitted. Callers check Used first.
func (r *RoundState) RecordLetter(letter rune) {
	r.used[letter] = struct{}{}
}

// UsedLetters returns the submitted letters in sorted order.
func (r *RoundState) UsedLetters() []rune {
	letters := lo.Keys(r.used)
	slices.Sort(letters)
	return letters
}

// ApplyCorrectGuess reveals every position holding the letter.
func (r *RoundState) ApplyCorrectGuess(letter rune) {
	for i, c := range r.word {
		if c == letter {
			r.mask[i] = letter
		}
	}
}

// RegisterWrongGuess counts a miss. It returns false once the round is
// lost; further calls leave the count at MaxWrongGuesses.
func (r *RoundState) RegisterWrongGuess() bool {
	if r.misses >= MaxWrongGuesses {
		return false
	}
	r.misses++
	return r.misses < MaxWrongGuesses
}

// WrongGuesses returns the number of misses so far.
func (r *RoundState) WrongGuesses() int {
	return r.misses
}

// IsSolved reports whether no placeholder remains in the mask.
func (r *RoundState) IsSolved() bool {
	return !slices.Contains(r.mask, Placeholder)
}

// Outcome derives the round result from the mask and the miss count.
func (r *RoundState) Outcome() Outcome {
	switch {
	case r.IsSolved():
		return Won
	case r.misses >= MaxWrongGuesses:
		return Lost
	default:
		return InProgress
	}
}
