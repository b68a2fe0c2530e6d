package core

import "unicode"

// KeyInterrupt is the byte a raw terminal delivers for Ctrl+C.
const KeyInterrupt rune = 0x03

// NormalizeKey maps a keystroke to the lowercase printable ASCII character
// the game consumes. ok is false for control codes and anything outside the
// printable ASCII range; callers discard such keys and read again.
func NormalizeKey(r rune) (key rune, ok bool) {
	if r < 0x20 || r > 0x7e {
		return 0, false
	}
	return unicode.ToLower(r), true
}
