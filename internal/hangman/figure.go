package hangman

import "github.com/vovakirdan/tui-hangman/internal/core"

// Part is one segment of the hanged figure.
type Part int

// Parts in drawing order. The order is fixed regardless of which letter
// was missed.
const (
	LeftLeg Part = iota
	RightLeg
	Torso
	LeftArm
	RightArm
	Head
	Rope
	partCount
)

// String returns a human-readable name for the part.
func (p Part) String() string {
	switch p {
	case LeftLeg:
		return "left leg"
	case RightLeg:
		return "right leg"
	case Torso:
		return "torso"
	case LeftArm:
		return "left arm"
	case RightArm:
		return "right arm"
	case Head:
		return "head"
	case Rope:
		return "rope"
	default:
		return "unknown"
	}
}

// Figure rows, counted from the top of the screen.
const (
	ropeTopRow = 5
	headRow    = 8
	armRow     = 9
	legRow     = 11
)

const (
	limbLeftRune  = '/'
	limbRightRune = '\\'
	lineRune      = '│'
	headRune      = 'O'
	eraseRune     = ' '
)

type partFunc func(s *core.Screen, cx int, erase bool)

// parts is indexed by the figure step that draws it.
var parts = [partCount]partFunc{
	LeftLeg:  func(s *core.Screen, cx int, erase bool) { leftLimb(s, legRow, cx, erase) },
	RightLeg: func(s *core.Screen, cx int, erase bool) { rightLimb(s, legRow, cx+2, erase) },
	Torso:    drawTorso,
	LeftArm:  func(s *core.Screen, cx int, erase bool) { leftLimb(s, armRow, cx, erase) },
	RightArm: func(s *core.Screen, cx int, erase bool) { rightLimb(s, armRow, cx+2, erase) },
	Head:     drawHead,
	Rope:     drawRope,
}

func pick(erase bool, r rune) rune {
	if erase {
		return eraseRune
	}
	return r
}

func leftLimb(s *core.Screen, y, x int, erase bool) {
	ch := pick(erase, limbLeftRune)
	for i := 0; i < 2; i++ {
		s.Set(x-i, y+i, ch)
	}
}

func rightLimb(s *core.Screen, y, x int, erase bool) {
	ch := pick(erase, limbRightRune)
	for i := 0; i < 2; i++ {
		s.Set(x+i, y+i, ch)
	}
}

func drawTorso(s *core.Screen, cx int, erase bool) {
	s.DrawVLine(cx+1, armRow, 2, pick(erase, lineRune))
}

func drawHead(s *core.Screen, cx int, erase bool) {
	s.Set(cx+1, headRow, pick(erase, headRune))
}

// drawRope tightens the rope and tilts the head one column to the left.
func drawRope(s *core.Screen, cx int, erase bool) {
	s.DrawVLine(cx+1, ropeTopRow, 3, pick(erase, lineRune))
	s.Set(cx+1, headRow, eraseRune)
	s.Set(cx, headRow, pick(erase, headRune))
}

// Figure tracks how many parts have been drawn in the current round.
type Figure struct {
	step int
}

// Step returns the number of parts drawn so far.
func (f *Figure) Step() int {
	return f.step
}

// Complete reports whether every part has been drawn.
func (f *Figure) Complete() bool {
	return f.step >= int(partCount)
}

// Advance draws the next part around column cx. It returns false when the
// figure is complete after the call, and is a no-op once it already is.
func (f *Figure) Advance(s *core.Screen, cx int) bool {
	if f.Complete() {
		return false
	}
	parts[f.step](s, cx, false)
	f.step++
	return !f.Complete()
}

// Erase removes every part unconditionally and rewinds to step 0.
func (f *Figure) Erase(s *core.Screen, cx int) {
	for _, p := range parts {
		p(s, cx, true)
	}
	f.step = 0
}

// Redraw paints the parts drawn so far, e.g. after a resize.
func (f *Figure) Redraw(s *core.Screen, cx int) {
	for i := 0; i < f.step; i++ {
		parts[i](s, cx, false)
	}
}
