// Package playfair implements the classical Playfair digraph cipher on top of
// the 5×5 key square built by package keysquare.
//
// What:
//
//   - Encrypt/Decrypt: one-shot helpers taking the keyword on every call.
//   - Cipher: a reusable, read-only value holding a built square and filler.
//   - Split: the encryption segmentation of cleaned text into digraphs.
//   - StripFiller: opt-in removal of padding letters from decrypted text.
//
// Segmentation (encryption):
//
//  1. Take the next letter a.
//  2. If a following letter b exists and b ≠ a, emit (a, b) and advance by two.
//  3. Otherwise emit (a, filler) and advance by one; a repeated letter is not
//     consumed and starts the next digraph.
//
// A doubled letter at the end of odd-length text ("…cc") therefore becomes
// (c, filler)(c, filler). A doubled filler letter is emitted as (filler, filler).
//
// Substitution:
//
//   - Same row:    each letter moves one cell right (decrypt: left), wrapping.
//   - Same column: each letter moves one cell down (decrypt: up), wrapping.
//   - Rectangle:   each letter takes the column of the other, keeping its row.
//
// A digraph of two equal letters sits in one row and follows the row rule.
//
// Decryption never removes filler letters; the cipher cannot tell them apart
// from real ones. StripFiller applies the usual heuristic when asked to.
//
// Errors:
//
//   - ErrInvalidKeyword:    the keyword has no letters after cleaning.
//   - ErrInvalidCipherText: the cleaned ciphertext has an odd number of letters.
//   - ErrInvalidFiller:     the filler is not a letter of the square.
//   - ErrInvalidAlphabet:   a custom alphabet is malformed.
//
// Complexity: O(n) time and memory for both directions.
package playfair
