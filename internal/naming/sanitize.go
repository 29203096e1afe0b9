// Package naming provides filename sanitization, date-prefix handling,
// and collision resolution for a single rename run.
package naming

import "strings"

// FallbackName is used when sanitization empties a filename entirely.
const FallbackName = "untitled"

// illegal reports whether r may not appear in a filename on common
// filesystems (Windows reserved characters plus control characters).
func illegal(r rune) bool {
	switch r {
	case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
		return true
	}
	return r < 0x20 || r == 0x7f
}

// Sanitize replaces filesystem-illegal characters with underscores and
// trims surrounding whitespace. The result is never empty: a name that
// sanitizes away completely becomes FallbackName. Sanitize is idempotent.
func Sanitize(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if illegal(r) {
			return '_'
		}
		return r
	}, name)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return FallbackName
	}

	return cleaned
}
