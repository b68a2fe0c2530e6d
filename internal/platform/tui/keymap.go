package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// KeyMap holds the bindings shown in the help footer. Guess only documents
// the letters; any printable key is sent to the controller.
type KeyMap struct {
	Guess   key.Binding
	Restart key.Binding
	Leave   key.Binding
	Quit    key.Binding
}

// NewKeyMap creates the default bindings for an in-progress round.
func NewKeyMap() KeyMap {
	km := KeyMap{
		Guess: key.NewBinding(
			key.WithKeys(letterKeys()...),
			key.WithHelp("a-z", "guess a letter"),
		),
		Restart: key.NewBinding(
			key.WithKeys(string(hangman.KeyRestart)),
			key.WithHelp("y", "play again"),
		),
		Leave: key.NewBinding(
			key.WithKeys(string(hangman.KeyQuit)),
			key.WithHelp("n", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
	km.SetState(hangman.AwaitingGuess)
	return km
}

func letterKeys() []string {
	keys := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, string(r))
	}
	return keys
}

// SetState shows the bindings that apply in the given controller state.
func (km *KeyMap) SetState(s hangman.State) {
	over := s == hangman.RoundOver
	km.Guess.SetEnabled(!over)
	km.Restart.SetEnabled(over)
	km.Leave.SetEnabled(over)
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Guess, km.Restart, km.Leave, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// KeyRune extracts the single character a key message types.
// Multi-rune input such as pastes and alt-modified keys yields false.
func KeyRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt || msg.Paste {
			return 0, false
		}
		return msg.Runes[0], true
	}
	return 0, false
}
