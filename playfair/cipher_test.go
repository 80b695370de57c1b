package playfair_test

import (
	"testing"

	"github.com/katalvlaran/playfair/keysquare"
	"github.com/katalvlaran/playfair/playfair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vectors = []struct {
	key, plain, cipher, decrypted string
}{
	{"playfair test", "never gonna give you up", "otxrecqowtbexrexvzpi", "nevergonnagiveyouxup"},
	{"test", "testing example", "esaekidayskrks", "testingexample"},
	{"playfair example", "hide the gold in the tree stump", "bmodzbxdnabekudmuixmmouvif", "hidethegoldinthetrexestump"},
	{"secretj", "rust is awesomej", "tqesgiheceuhsa", "rustisawesomei"},
	{"1t2Q4GOrzPE", "mgk", "wenu", "mgkx"},
}

// TestEncrypt_Vectors checks the reference vectors with filler 'x'.
func TestEncrypt_Vectors(t *testing.T) {
	for _, v := range vectors {
		t.Run(v.key, func(t *testing.T) {
			got, err := playfair.Encrypt(v.key, v.plain, 'x')
			require.NoError(t, err)
			assert.Equal(t, v.cipher, got)
		})
	}
}

// TestDecrypt_Vectors checks that decryption keeps padding artifacts.
func TestDecrypt_Vectors(t *testing.T) {
	for _, v := range vectors {
		t.Run(v.key, func(t *testing.T) {
			got, err := playfair.Decrypt(v.key, v.cipher)
			require.NoError(t, err)
			assert.Equal(t, v.decrypted, got)
		})
	}
}

// TestDecrypt_OddLength verifies ErrInvalidCipherText for odd cleaned length.
func TestDecrypt_OddLength(t *testing.T) {
	_, err := playfair.Decrypt("key", "abc")
	assert.ErrorIs(t, err, playfair.ErrInvalidCipherText)

	_, err = playfair.Decrypt("playfair", "oddnumberofchar")
	assert.ErrorIs(t, err, playfair.ErrInvalidCipherText)

	// odd raw length, even once cleaned
	got, err := playfair.Decrypt("playfair example", "bm od!")
	require.NoError(t, err)
	assert.Equal(t, "hide", got)
}

// TestInvalidKeyword verifies both directions reject keywords without letters.
func TestInvalidKeyword(t *testing.T) {
	_, err := playfair.Encrypt("", "hello", 'x')
	assert.ErrorIs(t, err, playfair.ErrInvalidKeyword)

	_, err = playfair.Decrypt("1234 !", "abcd")
	assert.ErrorIs(t, err, playfair.ErrInvalidKeyword)

	// keyword error wins over a malformed ciphertext
	_, err = playfair.Decrypt("", "abc")
	assert.ErrorIs(t, err, playfair.ErrInvalidKeyword)
}

// TestInvalidFiller verifies that the filler must clean to one letter.
func TestInvalidFiller(t *testing.T) {
	for _, f := range []rune{'1', ' ', '-', 'é'} {
		_, err := playfair.Encrypt("key", "hello", f)
		assert.ErrorIs(t, err, playfair.ErrInvalidFiller, "filler %q", f)
	}
}

// TestFiller_Folding verifies uppercase and merged fillers are normalised.
func TestFiller_Folding(t *testing.T) {
	c, err := playfair.New("key", playfair.WithFiller('Q'))
	require.NoError(t, err)
	assert.Equal(t, byte('q'), c.Filler())

	c, err = playfair.New("key", playfair.WithFiller('j'))
	require.NoError(t, err)
	assert.Equal(t, byte('i'), c.Filler())

	c, err = playfair.New("key")
	require.NoError(t, err)
	assert.Equal(t, byte(playfair.DefaultFiller), c.Filler())
}

// TestSubstitutionRules exercises the row, column and rectangle rules with
// their wrap-around on the "playfair example" square:
//
//	p l a y f
//	i r e x m
//	b c d g h
//	k n o q s
//	t u v w z
func TestSubstitutionRules(t *testing.T) {
	c, err := playfair.New("playfair example")
	require.NoError(t, err)

	cases := []struct {
		name, plain, cipher string
	}{
		{"row", "pl", "la"},
		{"row wraps", "fp", "pl"},
		{"column", "pi", "ib"},
		{"column wraps", "tp", "pi"},
		{"rectangle", "hi", "bm"},
		{"rectangle reversed", "ih", "mb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.cipher, c.Encrypt(tc.plain))
			got, err := c.Decrypt(tc.cipher)
			require.NoError(t, err)
			assert.Equal(t, tc.plain, got)
		})
	}
}

// TestDoubledFiller pins the canonical rule for a doubled filler letter:
// "xx" splits into (x,x)(x,x), each pair takes the row rule.
func TestDoubledFiller(t *testing.T) {
	c, err := playfair.New("playfair example", playfair.WithFiller('x'))
	require.NoError(t, err)

	assert.Equal(t, []playfair.Digraph{{'x', 'x'}, {'x', 'x'}}, c.Digraphs("xx"))
	assert.Equal(t, "mmmm", c.Encrypt("xx"))

	got, err := c.Decrypt("mmmm")
	require.NoError(t, err)
	assert.Equal(t, "xxxx", got)
}

// TestEmptyText verifies empty input maps to empty output both ways.
func TestEmptyText(t *testing.T) {
	ct, err := playfair.Encrypt("key", " 123 ", 'x')
	require.NoError(t, err)
	assert.Empty(t, ct)

	pt, err := playfair.Decrypt("key", "")
	require.NoError(t, err)
	assert.Empty(t, pt)
}

// TestCustomAlphabet runs a round trip with 'q' merged into 'k'.
func TestCustomAlphabet(t *testing.T) {
	c, err := playfair.New("quick", playfair.WithAlphabet(keysquare.Alphabet{Merged: 'q', Substitute: 'k'}))
	require.NoError(t, err)

	ct := c.Encrypt("quiet")
	assert.NotContains(t, ct, "q")

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "kuietx", pt)

	_, err = playfair.New("quick", playfair.WithAlphabet(keysquare.Alphabet{Merged: 'q', Substitute: 'q'}))
	assert.ErrorIs(t, err, playfair.ErrInvalidAlphabet)
}

// TestCipher_Square exposes the square the cipher was built with.
func TestCipher_Square(t *testing.T) {
	c, err := playfair.New("playfair example")
	require.NoError(t, err)
	assert.Equal(t, "playfirexmbcdghknoqstuvwz", c.Square().Letters())
}
