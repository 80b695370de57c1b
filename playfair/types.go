package playfair

import "github.com/katalvlaran/playfair/keysquare"

// DefaultFiller is the padding letter used when no WithFiller option is given.
const DefaultFiller = 'x'

// Digraph is an ordered pair of letters substituted as one unit.
type Digraph struct {
	First, Second byte
}

// String returns the two letters of the digraph.
func (d Digraph) String() string {
	return string([]byte{d.First, d.Second})
}

// Option configures a Cipher built by New.
type Option func(*options)

type options struct {
	filler   rune
	alphabet keysquare.Alphabet
}

func defaultOptions() options {
	return options{
		filler:   DefaultFiller,
		alphabet: keysquare.DefaultAlphabet(),
	}
}

// WithFiller sets the padding letter. Uppercase is folded and the merged
// letter is substituted, so 'J' behaves as 'i' under the default alphabet.
func WithFiller(filler rune) Option {
	return func(o *options) { o.filler = filler }
}

// WithAlphabet replaces the default j→i merge.
func WithAlphabet(a keysquare.Alphabet) Option {
	return func(o *options) { o.alphabet = a }
}

// direction selects the shift applied by the row and column rules.
type direction int

const (
	forward  direction = iota // encrypt: right / down
	backward                  // decrypt: left / up
)
