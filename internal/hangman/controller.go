// Package hangman implements the word-guessing game: round state, the
// figure drawing state machine and the per-keystroke round controller.
// It has no terminal dependency; frontends feed keys and display a
// core.Screen.
package hangman

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Status line texts.
const (
	MsgRepeated = "Repeated Character: "
	MsgLost     = "Game Over :-(, Play again? [y/n]"
	MsgWon      = "You Won :-), Play again? [y/n]"
)

// Answer keys accepted once a round is over.
const (
	KeyRestart = 'y'
	KeyQuit    = 'n'
)

// ErrInterrupted is returned by a KeyReader when the player aborts the game
// with Ctrl+C. It is a quit request, not a fault.
var ErrInterrupted = errors.New("hangman: interrupted")

// Renderer draws the game. Implementations own the display surface.
type Renderer interface {
	// AdvanceFigure draws the next body part and reports whether the round
	// may continue.
	AdvanceFigure() bool
	// EraseFigure removes every body part.
	EraseFigure()
	// DrawMask renders text into the guess-word region.
	DrawMask(mask string)
	// ShowMessage renders the status line with a semantic style.
	ShowMessage(text string, style core.Style)
	// ClearMessage blanks the status line.
	ClearMessage()
}

// KeyReader blocks until the player presses a key. Returned keys are
// lowercase printable ASCII; anything else is discarded before returning.
type KeyReader interface {
	ReadKey() (rune, error)
}

// WordPicker supplies secret words. *words.Dictionary satisfies it.
type WordPicker interface {
	PickWord() string
}

// State is the controller's round lifecycle state.
type State int

const (
	AwaitingGuess State = iota
	RoundOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "awaiting guess"
	case RoundOver:
		return "round over"
	default:
		return "unknown"
	}
}

// Result tells the caller whether to keep feeding keys.
type Result int

const (
	Continue Result = iota
	Quit
)

// Controller owns the round state and drives the renderer one keystroke
// at a time.
type Controller struct {
	words    WordPicker
	renderer Renderer
	logger   *log.Logger

	round       *RoundState
	state       State
	canContinue bool
	rounds      int
}

// NewController creates a controller. A nil logger discards output.
func NewController(words WordPicker, renderer Renderer, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		words:    words,
		renderer: renderer,
		logger:   logger,
	}
}

// Start begins the first round.
func (c *Controller) Start() {
	c.newRound()
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Round returns the current round, nil before Start.
func (c *Controller) Round() *RoundState {
	return c.round
}

// Rounds returns the number of rounds started.
func (c *Controller) Rounds() int {
	return c.rounds
}

// Run reads keys until the player quits. It returns nil on a quit answer
// and the reader's error otherwise, including ErrInterrupted.
func (c *Controller) Run(keys KeyReader) error {
	if c.round == nil {
		c.Start()
	}
	for {
		key, err := keys.ReadKey()
		if err != nil {
			return err
		}
		if c.HandleKey(key) == Quit {
			return nil
		}
	}
}

// HandleKey applies one keystroke. Non-printable keys are ignored.
func (c *Controller) HandleKey(key rune) Result {
	key, ok := core.NormalizeKey(key)
	if !ok {
		return Continue
	}
	if c.round == nil {
		c.Start()
	}

	if c.state == RoundOver {
		return c.handleAnswer(key)
	}
	c.handleGuess(key)
	return Continue
}

func (c *Controller) handleGuess(key rune) {
	c.renderer.ClearMessage()

	if c.round.Used(key) {
		c.renderer.ShowMessage(MsgRepeated+string(key), core.StyleWarning)
		return
	}
	c.round.RecordLetter(key)

	if !c.round.Contains(key) {
		c.round.RegisterWrongGuess()
		c.canContinue = c.renderer.AdvanceFigure()
		c.logger.Debug("wrong guess", "letter", string(key), "misses", c.round.WrongGuesses())
		if !c.canContinue {
			c.renderer.ShowMessage(MsgLost, core.StyleFailure)
		}
	} else {
		c.round.ApplyCorrectGuess(key)
		c.renderer.DrawMask(c.round.Mask())
		c.logger.Debug("correct guess", "letter", string(key), "mask", c.round.Mask())
		if c.round.IsSolved() {
			c.renderer.ShowMessage(MsgWon, core.StyleSuccess)
		}
	}

	if !(c.canContinue && !c.round.IsSolved()) {
		c.renderer.DrawMask(c.round.Word())
		c.state = RoundOver
		c.logger.Info("round over",
			"round", c.rounds,
			"outcome", c.round.Outcome(),
			"word", c.round.Word(),
			"misses", c.round.WrongGuesses(),
			"used", string(c.round.UsedLetters()),
		)
	}
}

func (c *Controller) handleAnswer(key rune) Result {
	switch key {
	case KeyRestart:
		c.newRound()
	case KeyQuit:
		c.logger.Debug("player quit", "rounds", c.rounds)
		return Quit
	}
	return Continue
}

// newRound replaces the round state with a fresh word and wipes the board.
func (c *Controller) newRound() {
	word := c.words.PickWord()
	c.round = NewRoundState(word)
	c.state = AwaitingGuess
	c.canContinue = true
	c.rounds++

	c.renderer.EraseFigure()
	c.renderer.DrawMask(c.round.Mask())
	c.renderer.ClearMessage()
	c.logger.Debug("round started", "round", c.rounds, "length", len([]rune(word)))
}
