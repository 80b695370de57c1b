// Package playfair is the module root of a Go implementation of the classical
// Playfair cipher, the first literal digraph substitution cipher (Wheatstone,
// 1854; promoted by Lord Playfair).
//
// What:
//
//	keysquare/ — the 5×5 key square: alphabet, text cleaning, letter lookup
//	playfair/  — the digraph codec: segmentation, Encrypt, Decrypt, StripFiller
//	cmd/playfair — command-line tool (encrypt, decrypt, square, version)
//	examples/  — a runnable walk-through
//
// Why:
//
//   - Teaching and puzzles. Playfair offers no security against modern
//     cryptanalysis and must not protect real data.
//
// Quick example:
//
//	ct, _ := playfair.Encrypt("playfair example", "hide the gold in the tree stump", 'x')
//	// bmodzbxdnabekudmuixmmouvif
//
//	pt, _ := playfair.Decrypt("playfair example", ct)
//	// hidethegoldinthetrexestump  (filler 'x' splits the doubled "ee")
//
//	go install github.com/katalvlaran/playfair/cmd/playfair@latest
package playfair
