package hangman

import (
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Screen layout. Rows given as offsets are counted from the bottom edge.
const (
	// MinScreenW keeps the longest status line clear of the post.
	MinScreenW = textCol + postWidth + len(MsgLost)
	MinScreenH = 21

	textCol         = 2
	guessWordOffset = 8
	messageOffset   = 6
	beamRows        = 5
	beamLeftOffset  = 5
	postWidth       = 11
	floorHeight     = 3

	brickRune       = '▒'
	guessWordPrefix = "Guess Word: "
)

// ScreenRenderer draws the game into a core.Screen. It keeps the mask,
// message and figure step so it can repaint after a resize.
type ScreenRenderer struct {
	screen       *core.Screen
	figure       Figure
	mask         string
	message      string
	messageStyle core.Style
}

// NewScreenRenderer creates a renderer with the board and gallows drawn.
func NewScreenRenderer(width, height int) *ScreenRenderer {
	r := &ScreenRenderer{screen: core.NewScreen(width, height)}
	r.repaint()
	return r
}

// Screen returns the buffer the renderer draws into.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Figure returns the figure state machine.
func (r *ScreenRenderer) Figure() *Figure {
	return &r.figure
}

// Mask returns the text last drawn in the guess-word region.
func (r *ScreenRenderer) Mask() string {
	return r.mask
}

// Message returns the current status line and its style.
func (r *ScreenRenderer) Message() (string, core.Style) {
	return r.message, r.messageStyle
}

// TooSmall reports whether the screen cannot hold the board.
func (r *ScreenRenderer) TooSmall() bool {
	return r.screen.Width() < MinScreenW || r.screen.Height() < MinScreenH
}

// Resize changes the screen size and repaints from retained state.
func (r *ScreenRenderer) Resize(width, height int) {
	r.screen.Resize(width, height)
	r.repaint()
}

// AdvanceFigure draws the next body part.
func (r *ScreenRenderer) AdvanceFigure() bool {
	return r.figure.Advance(r.screen, r.centerX())
}

// EraseFigure removes all body parts.
func (r *ScreenRenderer) EraseFigure() {
	r.figure.Erase(r.screen, r.centerX())
}

// DrawMask renders text into the guess-word region.
func (r *ScreenRenderer) DrawMask(mask string) {
	r.mask = mask
	r.drawLine(r.guessWordRow(), guessWordPrefix+mask, core.StyleDefault)
}

// ShowMessage renders the status line.
func (r *ScreenRenderer) ShowMessage(text string, style core.Style) {
	r.message = text
	r.messageStyle = style
	r.drawLine(r.messageRow(), text, style)
}

// ClearMessage blanks the status line.
func (r *ScreenRenderer) ClearMessage() {
	r.ShowMessage("", core.StyleNeutral)
}

func (r *ScreenRenderer) repaint() {
	r.screen.Clear()
	r.drawGallows()
	r.figure.Redraw(r.screen, r.centerX())
	r.DrawMask(r.mask)
	r.ShowMessage(r.message, r.messageStyle)
}

func (r *ScreenRenderer) drawGallows() {
	w, h := r.screen.Width(), r.screen.Height()
	r.screen.DrawRect(core.RectSpan(0, w/2-beamLeftOffset, beamRows, w), brickRune)
	r.screen.DrawRect(core.RectSpan(beamRows, w-postWidth, h-1, w), brickRune)
	r.screen.DrawRect(core.RectSpan(h-1-floorHeight, 0, h-1, w), brickRune)
}

// drawLine owns the text row between the left margin and the post.
func (r *ScreenRenderer) drawLine(y int, text string, style core.Style) {
	width := r.screen.Width() - postWidth - textCol
	if width <= 0 {
		return
	}
	if runes := []rune(text); len(runes) > width {
		text = string(runes[:width])
	}
	r.screen.DrawTextStyled(textCol, y, strings.Repeat(" ", width), core.StyleDefault)
	r.screen.DrawTextStyled(textCol, y, text, style)
}

func (r *ScreenRenderer) centerX() int {
	return r.screen.Width() / 2
}

func (r *ScreenRenderer) guessWordRow() int {
	return r.screen.Height() - guessWordOffset
}

func (r *ScreenRenderer) messageRow() int {
	return r.screen.Height() - messageOffset
}
