package playfair

import (
	"errors"

	"github.com/katalvlaran/playfair/keysquare"
)

var (
	// ErrInvalidKeyword indicates the keyword has no letters after cleaning.
	ErrInvalidKeyword = keysquare.ErrInvalidKeyword
	// ErrInvalidAlphabet indicates a malformed merged/substitute letter pair.
	ErrInvalidAlphabet = keysquare.ErrInvalidAlphabet
	// ErrInvalidCipherText indicates a ciphertext with an odd number of letters after cleaning.
	ErrInvalidCipherText = errors.New("playfair: ciphertext must contain an even number of letters")
	// ErrInvalidFiller indicates a filler that is not a single letter of the square.
	ErrInvalidFiller = errors.New("playfair: filler must be a single letter")
)
