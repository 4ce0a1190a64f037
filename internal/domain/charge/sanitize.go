package charge

import (
	"strings"
	"unicode"
)

// Sanitize trims surrounding whitespace and drops control characters.
func Sanitize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw)
	return strings.TrimSpace(cleaned)
}

// SanitizeNumber keeps only the ASCII digits of raw. Used for identifiers
// such as tax ids and postal codes.
func SanitizeNumber(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
