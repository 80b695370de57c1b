package keysquare

import "errors"

var (
	// ErrInvalidKeyword indicates the keyword contains no usable letters after cleaning.
	ErrInvalidKeyword = errors.New("keysquare: keyword must contain at least one letter")
	// ErrInvalidAlphabet indicates a merged/substitute pair that cannot shape a 25-letter alphabet.
	ErrInvalidAlphabet = errors.New("keysquare: merged and substitute letters must be distinct lowercase ASCII letters")
)
