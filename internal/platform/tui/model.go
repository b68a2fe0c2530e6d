// Package tui provides the terminal frontends for hangman: a Bubble Tea
// program, a plain raw-terminal loop and an SSH server.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// footerHeight is the row reserved below the board for key help.
const footerHeight = 1

// Model is the Bubble Tea model hosting one game.
type Model struct {
	controller *hangman.Controller
	renderer   *hangman.ScreenRenderer
	theme      Theme
	keys       KeyMap
	help       help.Model
	quitting   bool
}

// NewModel creates a model and starts the first round.
func NewModel(words hangman.WordPicker, theme Theme, cfg core.RuntimeConfig, logger *log.Logger) Model {
	renderer := hangman.NewScreenRenderer(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 0))
	controller := hangman.NewController(words, renderer, logger)
	controller.Start()

	h := help.New()
	h.Styles.ShortKey = theme.footer
	h.Styles.ShortDesc = theme.footer
	h.Styles.ShortSeparator = theme.footer

	return Model{
		controller: controller,
		renderer:   renderer,
		theme:      theme,
		keys:       NewKeyMap(),
		help:       h,
	}
}

// Controller returns the round controller.
func (m Model) Controller() *hangman.Controller {
	return m.controller
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, core.Max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	// The board is hidden, so guesses would be blind.
	if m.renderer.TooSmall() {
		return m, nil
	}

	r, ok := KeyRune(msg)
	if !ok {
		return m, nil
	}
	if m.controller.HandleKey(r) == hangman.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.keys.SetState(m.controller.State())
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.renderer.TooSmall() {
		return fmt.Sprintf("Terminal too small: need at least %dx%d.\nPress ctrl+c to quit.",
			hangman.MinScreenW, hangman.MinScreenH+footerHeight)
	}
	return RenderScreen(m.renderer.Screen(), m.theme) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(words hangman.WordPicker, theme Theme, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(words, theme, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
