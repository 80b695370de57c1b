package playfair

import (
	"fmt"

	"github.com/katalvlaran/playfair/keysquare"
)

// Cipher holds a key square and filler letter. It is immutable after New
// and safe for concurrent use.
type Cipher struct {
	square *keysquare.Square
	filler byte
}

// New builds a Cipher for key.
//
// Returns ErrInvalidAlphabet or ErrInvalidKeyword when the square cannot be
// built, ErrInvalidFiller when the filler does not clean to exactly one letter.
func New(key string, opts ...Option) (*Cipher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sq, err := keysquare.NewWithAlphabet(key, o.alphabet)
	if err != nil {
		return nil, err
	}

	filler := sq.Clean(string(o.filler))
	if len(filler) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFiller, o.filler)
	}

	return &Cipher{square: sq, filler: filler[0]}, nil
}

// Square returns the key square.
func (c *Cipher) Square() *keysquare.Square {
	return c.square
}

// Filler returns the cleaned padding letter.
func (c *Cipher) Filler() byte {
	return c.filler
}

// Digraphs returns the encryption segmentation of text after cleaning.
func (c *Cipher) Digraphs(text string) []Digraph {
	return Split(c.square.Clean(text), c.filler)
}

// Encrypt cleans text, splits it into digraphs and substitutes each one.
// The result has even length and contains only lowercase letters.
func (c *Cipher) Encrypt(text string) string {
	return apply(c.square, c.Digraphs(text), forward)
}

// Decrypt cleans text and inverts the substitution pair by pair.
// Filler letters stay in the output; see StripFiller.
//
// Returns ErrInvalidCipherText when the cleaned text has odd length.
func (c *Cipher) Decrypt(text string) (string, error) {
	cleaned := c.square.Clean(text)
	if len(cleaned)%2 != 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidCipherText, len(cleaned))
	}
	return apply(c.square, pairs(cleaned), backward), nil
}

// StripFiller removes the cipher's filler letter from decrypted text; see the
// package-level StripFiller.
func (c *Cipher) StripFiller(plain string) string {
	return stripFiller(plain, c.filler)
}

// Encrypt enciphers text under key, padding with filler.
//
// Example:
//
//	ct, err := playfair.Encrypt("playfair example", "hide the gold in the tree stump", 'x')
//	// ct == "bmodzbxdnabekudmuixmmouvif"
func Encrypt(key, text string, filler rune) (string, error) {
	c, err := New(key, WithFiller(filler))
	if err != nil {
		return "", err
	}
	return c.Encrypt(text), nil
}

// Decrypt deciphers text under key.
//
// Example:
//
//	pt, err := playfair.Decrypt("playfair example", "bmodzbxdnabekudmuixmmouvif")
//	// pt == "hidethegoldinthetrexestump"
func Decrypt(key, text string) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(text)
}
