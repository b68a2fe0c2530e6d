package core

// Style is a semantic tag attached to every screen cell.
// The platform layer maps tags to concrete terminal colors.
type Style uint8

const (
	StyleDefault Style = iota // board, gallows and figure
	StyleNeutral              // informational status line
	StyleWarning              // rejected input, e.g. a repeated letter
	StyleSuccess              // round won
	StyleFailure              // round lost
)

// String returns a human-readable name for the style.
func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleNeutral:
		return "neutral"
	case StyleWarning:
		return "warning"
	case StyleSuccess:
		return "success"
	case StyleFailure:
		return "failure"
	default:
		return "unknown"
	}
}
