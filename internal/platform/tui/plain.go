package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

const (
	escape        = 0x1b
	enterAltScr   = "\x1b[?1049h"
	exitAltScr    = "\x1b[?1049l"
	hideCursor    = "\x1b[?25l"
	showCursor    = "\x1b[?25h"
	cursorHome    = "\x1b[H"
	clearScreen   = "\x1b[2J"
	defaultWidth  = 80
	defaultHeight = 24
)

// SizeFunc reports the terminal size.
type SizeFunc func() (width, height int, err error)

// PlainTerminal is a hangman.KeyReader over a raw-mode terminal. It paints
// the screen before every blocking read, so the game runs as a plain
// synchronous loop without Bubble Tea.
type PlainTerminal struct {
	in       *bufio.Reader
	out      io.Writer
	renderer *hangman.ScreenRenderer
	theme    Theme
	size     SizeFunc
}

// NewPlainTerminal wraps raw input and output. size may be nil when the
// terminal cannot be resized.
func NewPlainTerminal(in io.Reader, out io.Writer, renderer *hangman.ScreenRenderer, theme Theme, size SizeFunc) *PlainTerminal {
	return &PlainTerminal{
		in:       bufio.NewReader(in),
		out:      out,
		renderer: renderer,
		theme:    theme,
		size:     size,
	}
}

// ReadKey flushes the screen and blocks for the next printable key.
// Control codes, escape sequences and non-ASCII input are discarded, as is
// every key pressed while the terminal is too small for the board.
func (p *PlainTerminal) ReadKey() (rune, error) {
	if err := p.flush(); err != nil {
		return 0, err
	}
	for {
		r, _, err := p.in.ReadRune()
		if err != nil {
			return 0, err
		}
		switch r {
		case core.KeyInterrupt:
			return 0, hangman.ErrInterrupted
		case escape:
			p.skipEscapeSequence()
			continue
		}
		key, ok := core.NormalizeKey(r)
		if !ok {
			continue
		}
		// The board is hidden, so drop the key and check the size again.
		if p.renderer.TooSmall() {
			if err := p.flush(); err != nil {
				return 0, err
			}
			continue
		}
		return key, nil
	}
}

// skipEscapeSequence drops the rest of a CSI/SS3 sequence (arrow keys and
// the like). A lone Esc arrives without trailing bytes and is left as is.
func (p *PlainTerminal) skipEscapeSequence() {
	if p.in.Buffered() == 0 {
		return
	}
	b, err := p.in.ReadByte()
	if err != nil || (b != '[' && b != 'O') {
		return
	}
	for p.in.Buffered() > 0 {
		b, err = p.in.ReadByte()
		if err != nil || (b >= 0x40 && b <= 0x7e) {
			return
		}
	}
}

func (p *PlainTerminal) flush() error {
	if p.size != nil {
		if w, h, err := p.size(); err == nil &&
			(w != p.renderer.Screen().Width() || h != p.renderer.Screen().Height()) {
			p.renderer.Resize(w, h)
			if _, err := io.WriteString(p.out, clearScreen); err != nil {
				return err
			}
		}
	}

	var frame string
	if p.renderer.TooSmall() {
		frame = fmt.Sprintf("Terminal too small: need at least %dx%d.", hangman.MinScreenW, hangman.MinScreenH)
	} else {
		frame = RenderScreen(p.renderer.Screen(), p.theme)
	}
	// Raw mode does not translate newlines
	_, err := io.WriteString(p.out, cursorHome+strings.ReplaceAll(frame, "\n", "\r\n"))
	return err
}

// RunPlain plays on the given terminal files in raw mode until the player
// quits. Ctrl+C returns hangman.ErrInterrupted.
func RunPlain(words hangman.WordPicker, theme Theme, logger *log.Logger, in, out *os.File) error {
	inFd, outFd := int(in.Fd()), int(out.Fd())
	size := func() (int, int, error) { return term.GetSize(outFd) }

	width, height := defaultWidth, defaultHeight
	if w, h, err := size(); err == nil {
		width, height = w, h
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("cannot enter raw mode: %w", err)
	}
	defer term.Restore(inFd, state) //nolint:errcheck // Best-effort restore on exit

	fmt.Fprint(out, enterAltScr+hideCursor+clearScreen)
	defer fmt.Fprint(out, showCursor+exitAltScr)

	renderer := hangman.NewScreenRenderer(width, height)
	controller := hangman.NewController(words, renderer, logger)
	return controller.Run(NewPlainTerminal(in, out, renderer, theme, size))
}
