package hangman

import (
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

const testCX = 40

// figureCells lists the cells each part draws with cx = 40.
var figureCells = map[Part][]struct {
	x, y int
	r    rune
}{
	LeftLeg:  {{40, 11, '/'}, {39, 12, '/'}},
	RightLeg: {{42, 11, '\\'}, {43, 12, '\\'}},
	Torso:    {{41, 9, '│'}, {41, 10, '│'}},
	LeftArm:  {{40, 9, '/'}, {39, 10, '/'}},
	RightArm: {{42, 9, '\\'}, {43, 10, '\\'}},
	Head:     {{41, 8, 'O'}},
	Rope:     {{41, 5, '│'}, {41, 6, '│'}, {41, 7, '│'}, {40, 8, 'O'}},
}

func countNonBlank(s *core.Screen) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				n++
			}
		}
	}
	return n
}

func TestFigureAdvanceOrder(t *testing.T) {
	s := core.NewScreen(80, 24)
	var f Figure

	for i := 0; i < MaxWrongGuesses; i++ {
		part := Part(i)
		more := f.Advance(s, testCX)
		if want := i < MaxWrongGuesses-1; more != want {
			t.Errorf("Advance #%d (%v) = %v, want %v", i+1, part, more, want)
		}
		if f.Step() != i+1 {
			t.Errorf("Step() = %d, want %d", f.Step(), i+1)
		}
		for _, c := range figureCells[part] {
			if got := s.Get(c.x, c.y); got != c.r {
				t.Errorf("%v: cell (%d, %d) = %q, want %q", part, c.x, c.y, got, c.r)
			}
		}
	}

	// The rope moves the head one column left
	if s.Get(41, 8) != ' ' {
		t.Errorf("head should leave (41, 8) once the rope is drawn, got %q", s.Get(41, 8))
	}
	if !f.Complete() {
		t.Error("figure should be complete after seven steps")
	}
}

func TestFigureAdvanceAfterCompleteIsNoop(t *testing.T) {
	s := core.NewScreen(80, 24)
	var f Figure
	for i := 0; i < MaxWrongGuesses; i++ {
		f.Advance(s, testCX)
	}
	before := s.String()

	if f.Advance(s, testCX) {
		t.Error("eighth Advance should return false")
	}
	if f.Step() != MaxWrongGuesses {
		t.Errorf("Step() = %d, want %d", f.Step(), MaxWrongGuesses)
	}
	if s.String() != before {
		t.Error("eighth Advance should not draw")
	}
}

func TestFigureEraseAfterAnySteps(t *testing.T) {
	for steps := 0; steps <= MaxWrongGuesses+1; steps++ {
		s := core.NewScreen(80, 24)
		var f Figure
		for i := 0; i < steps; i++ {
			f.Advance(s, testCX)
		}

		f.Erase(s, testCX)

		if f.Step() != 0 {
			t.Errorf("after %d steps, Erase left step %d", steps, f.Step())
		}
		if n := countNonBlank(s); n != 0 {
			t.Errorf("after %d steps, Erase left %d drawn cells", steps, n)
		}
	}
}

func TestFigureEraseKeepsOtherCells(t *testing.T) {
	s := core.NewScreen(80, 24)
	s.DrawText(2, 16, "Guess Word: ---")
	var f Figure
	f.Advance(s, testCX)
	f.Erase(s, testCX)

	if s.Row(16)[2:17] != "Guess Word: ---" {
		t.Errorf("Erase touched cells it does not own: %q", s.Row(16))
	}
}

func TestFigureRedraw(t *testing.T) {
	drawn := core.NewScreen(80, 24)
	var f Figure
	for i := 0; i < 4; i++ {
		f.Advance(drawn, testCX)
	}

	repainted := core.NewScreen(80, 24)
	f.Redraw(repainted, testCX)

	if drawn.String() != repainted.String() {
		t.Error("Redraw should reproduce the incrementally drawn figure")
	}
}

func TestFigureStepIdempotentDraw(t *testing.T) {
	once := core.NewScreen(80, 24)
	parts[Torso](once, testCX, false)

	twice := core.NewScreen(80, 24)
	parts[Torso](twice, testCX, false)
	parts[Torso](twice, testCX, false)

	if once.String() != twice.String() {
		t.Error("drawing a part twice should look like drawing it once")
	}
}
