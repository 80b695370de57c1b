// Package textnorm folds accented Latin letters to their base letters so that
// "Crème brûlée" reaches the cipher as "Creme brulee" instead of losing the
// accented letters during cleaning.
package textnorm

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold decomposes s, drops nonspacing marks and recomposes the rest.
// Letters without a decomposition (æ, ø, ß) pass through unchanged.
func Fold(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return out, nil
}
