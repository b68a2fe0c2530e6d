package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// DefaultHangmanConfig returns the default configuration.
func DefaultHangmanConfig() HangmanConfig {
	return HangmanConfig{
		Theme: ThemeConfig{
			Foreground: "0",
			Background: "2",
			Neutral:    "0",
			Warning:    "1",
			Success:    "4",
			Failure:    "1",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
