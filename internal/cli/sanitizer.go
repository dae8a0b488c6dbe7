package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeGuess rejects oversized or invalid UTF-8 lines and strips control
// characters (ANSI escapes, NUL, BEL) so they never reach the server or the logs.
// A limit of zero or less disables the size check.
func SanitizeGuess(input string, limit int) (string, error) {
	if limit > 0 && len(input) > limit {
		// Rejected rather than truncated: a cut word is a different guess.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// Fast path: if no control chars, return as is.
	if strings.IndexFunc(input, unicode.IsControl) < 0 {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
