// Package keysquare builds the 5×5 key square of the Playfair cipher.
//
// What:
//
//   - Alphabet describes the 25-letter alphabet: one letter (conventionally 'j')
//     is merged into another (conventionally 'i') so 26 letters fit 25 cells.
//   - Clean lowercases text, drops everything that is not an ASCII letter and
//     substitutes the merged letter.
//   - New walks the cleaned keyword, placing each unseen letter, then fills the
//     remaining cells with the rest of the alphabet in natural order.
//   - Square answers cell lookups in both directions: At(row, col) and Locate(letter).
//
// Why:
//
//   - The square is the only key material of the cipher; the digraph codec in
//     package playfair never needs anything else.
//
// Complexity:
//
//   - Clean:  O(n) time, O(n) memory.
//   - New:    O(k + 26) time for a keyword of length k, O(1) extra memory.
//   - Locate: O(1) through a reverse index.
//
// Errors:
//
//   - ErrInvalidKeyword: the keyword has no letters left after cleaning.
//   - ErrInvalidAlphabet: merged/substitute letters are not distinct lowercase ASCII letters.
//
// A Square is immutable once built and safe for concurrent use.
package keysquare
