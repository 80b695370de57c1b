package keysquare

import (
	"strings"
	"unicode"
)

// Clean lowercases text, removes every rune that does not fold to an ASCII
// letter and replaces a.Merged with a.Substitute.
//
// Cleaning is idempotent: Clean(Clean(s, a), a) == Clean(s, a).
// Complexity: O(n) time and memory.
func Clean(text string, a Alphabet) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if r < 'a' || r > 'z' {
			continue
		}
		c := byte(r)
		if c == a.Merged {
			c = a.Substitute
		}
		b.WriteByte(c)
	}
	return b.String()
}
