// Package config provides YAML-based configuration loading for hangman.
package config

import "time"

// HangmanConfig contains all configuration for the game and its frontends.
type HangmanConfig struct {
	Words  WordsConfig  `yaml:"words"`
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
}

// WordsConfig selects the word list.
type WordsConfig struct {
	// Path to a newline-delimited word file. Empty means the system
	// dictionary, or the built-in list when that is missing.
	Path string `yaml:"path"`
}

// ThemeConfig maps style tags to terminal colors (ANSI numbers or hex).
type ThemeConfig struct {
	Foreground string `yaml:"foreground"` // board, gallows and figure
	Background string `yaml:"background"`
	Neutral    string `yaml:"neutral"`
	Warning    string `yaml:"warning"`
	Success    string `yaml:"success"`
	Failure    string `yaml:"failure"`
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // auto-generated under ~/.hangman when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
