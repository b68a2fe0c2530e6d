package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// SystemDictPath is the word list looked up when no path is configured.
const SystemDictPath = "/usr/share/dict/words"

// OriginEmbedded names the built-in list in Resolve results.
const OriginEmbedded = "embedded"

//go:embed default_words.txt
var embeddedWords string

// SourceError reports a word source that could not be opened or read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("words: cannot open file %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Load reads one entry per line.
func Load(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadFile reads a newline-delimited word file.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	entries, err := Load(f)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return entries, nil
}

// Default returns the built-in word list.
func Default() []string {
	return strings.Split(strings.TrimSpace(embeddedWords), "\n")
}

// Resolve loads the configured word list. An explicit path must be
// readable. With no path the system dictionary is used when present,
// otherwise the built-in list. origin names where the entries came from.
func Resolve(path string) (entries []string, origin string, err error) {
	if path != "" {
		entries, err = LoadFile(path)
		return entries, path, err
	}

	entries, err = LoadFile(SystemDictPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), OriginEmbedded, nil
	}
	return entries, SystemDictPath, err
}
