// Package words holds the candidate word list and picks secret words from it.
package words

import (
	"encoding/binary"
	"errors"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// MinWordLength is the shortest word the game accepts.
const MinWordLength = 3

// ErrNoValidWords is returned when a word source has no usable entry.
var ErrNoValidWords = errors.New("words: no valid words in source")

// Source is the random source used to pick words.
// *frand.RNG and *rand.Rand satisfy it.
type Source interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int { return frand.Intn(n) }

// NewSource returns a deterministic source for a non-zero seed and a
// fast unseeded source otherwise.
func NewSource(seed int64) Source {
	if seed == 0 {
		return frandSource{}
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	return frand.NewCustom(key[:], 1024, 12)
}

// Dictionary is a read-only list of valid secret words.
type Dictionary struct {
	words []string
	src   Source
}

// New builds a dictionary from raw entries. Entries are trimmed of trailing
// whitespace and lower-cased; entries that are not valid words are dropped.
// Duplicates are kept so picks follow the source's distribution.
func New(entries []string, src Source) (*Dictionary, error) {
	valid := lo.FilterMap(entries, func(entry string, _ int) (string, bool) {
		w := Normalize(entry)
		return w, Valid(w)
	})
	if len(valid) == 0 {
		return nil, ErrNoValidWords
	}
	if src == nil {
		src = NewSource(0)
	}
	return &Dictionary{words: valid, src: src}, nil
}

// Normalize trims trailing whitespace and lower-cases an entry.
func Normalize(entry string) string {
	return strings.ToLower(strings.TrimRightFunc(entry, unicode.IsSpace))
}

// Valid reports whether a normalized entry can be a secret word: at least
// MinWordLength characters, no hyphen, and every character typeable as a
// guess.
func Valid(w string) bool {
	if len(w) < MinWordLength || strings.ContainsRune(w, '-') {
		return false
	}
	for _, r := range w {
		if key, ok := core.NormalizeKey(r); !ok || key != r {
			return false
		}
	}
	return true
}

// PickWord returns a uniformly random valid word.
func (d *Dictionary) PickWord() string {
	return d.words[d.src.Intn(len(d.words))]
}

// WithSource returns a dictionary sharing the same words but drawing from
// another random source.
func (d *Dictionary) WithSource(src Source) *Dictionary {
	return &Dictionary{words: d.words, src: src}
}

// Len returns the number of valid entries, duplicates included.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the valid entries.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}
