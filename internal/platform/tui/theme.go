package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Theme maps core.Style tags to lipgloss styles.
type Theme struct {
	styles map[core.Style]lipgloss.Style
	footer lipgloss.Style
}

// NewTheme builds a theme from config colors. A nil renderer uses the
// default lipgloss renderer; SSH sessions pass their own so the color
// profile matches the remote terminal.
func NewTheme(cfg config.ThemeConfig, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	board := r.NewStyle().Background(lipgloss.Color(cfg.Background))

	return Theme{
		styles: map[core.Style]lipgloss.Style{
			core.StyleDefault: board.Foreground(lipgloss.Color(cfg.Foreground)),
			core.StyleNeutral: board.Foreground(lipgloss.Color(cfg.Neutral)),
			core.StyleWarning: board.Foreground(lipgloss.Color(cfg.Warning)).Bold(true),
			core.StyleSuccess: board.Foreground(lipgloss.Color(cfg.Success)).Bold(true),
			core.StyleFailure: board.Foreground(lipgloss.Color(cfg.Failure)).Bold(true),
		},
		footer: r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Style returns the lipgloss style for a tag, falling back to the board style.
func (t Theme) Style(s core.Style) lipgloss.Style {
	if style, ok := t.styles[s]; ok {
		return style
	}
	return t.styles[core.StyleDefault]
}
