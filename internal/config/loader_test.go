package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadHangmanEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadHangman("")
	if err != nil {
		t.Fatalf("LoadHangman() failed: %v", err)
	}
	if cfg != DefaultHangmanConfig() {
		t.Errorf("embedded YAML and DefaultHangmanConfig disagree:\n%+v\n%+v", cfg, DefaultHangmanConfig())
	}
}

func TestLoadHangmanCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "words:\n  path: /tmp/words.txt\nserver:\n  idle_timeout: 5m\n")

	cfg, err := LoadHangman(path)
	if err != nil {
		t.Fatalf("LoadHangman() failed: %v", err)
	}
	if cfg.Words.Path != "/tmp/words.txt" {
		t.Errorf("Words.Path = %q", cfg.Words.Path)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.Server.IdleTimeout)
	}
	// Missing keys keep defaults
	if cfg.Theme != DefaultHangmanConfig().Theme {
		t.Errorf("Theme = %+v, want defaults", cfg.Theme)
	}
	if cfg.Server.Address != ":23235" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
}

func TestLoadHangmanCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadHangman(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "theme: [not, a, map")
	if _, err := LoadHangman(bad); err == nil {
		t.Error("invalid custom config should fail")
	}
}

func TestLoadHangmanSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "hangman.yaml"), "theme:\n  warning: \"3\"\n")

	cfg, err := LoadHangman("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Warning != "3" {
		t.Errorf("local config not used, Warning = %q", cfg.Theme.Warning)
	}

	// User config wins over the local one
	writeFile(t, filepath.Join(home, ".hangman", "configs", "hangman.yaml"), "theme:\n  warning: \"5\"\n")
	cfg, err = LoadHangman("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Warning != "5" {
		t.Errorf("user config not preferred, Warning = %q", cfg.Theme.Warning)
	}
}

func TestLoadHangmanSkipsInvalidUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".hangman", "configs", "hangman.yaml"), "::::")

	cfg, err := LoadHangman("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultHangmanConfig() {
		t.Errorf("invalid user config should fall through to defaults, got %+v", cfg)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	got, err := ExpandHome("~/.hangman/host_key")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".hangman", "host_key"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("~"); got != home {
		t.Errorf("ExpandHome(~) = %q, want %q", got, home)
	}

	for _, path := range []string{"/etc/words", "~alice/words", "words~"} {
		if got, _ := ExpandHome(path); got != path {
			t.Errorf("ExpandHome(%q) = %q, want it unchanged", path, got)
		}
	}
}
