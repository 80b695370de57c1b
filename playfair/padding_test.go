package playfair_test

import (
	"testing"

	"github.com/katalvlaran/playfair/playfair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFiller(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hidethegoldinthetrexestump", "hidethegoldinthetreestump"},
		{"nevergonnagiveyouxup", "nevergonnagiveyouup"},
		{"mgkx", "mgk"},
		{"balxloon", "balloon"},
		// x at an even index is a real letter
		{"xaxa", "xaxa"},
		// x between different letters is kept
		{"abxc", "abxc"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, playfair.StripFiller(tc.in, 'x'), "input %q", tc.in)
	}
}

func TestStripFiller_NonLetter(t *testing.T) {
	assert.Equal(t, "mgkx", playfair.StripFiller("mgkx", '#'))
	assert.Equal(t, "mgk", playfair.StripFiller("mgkx", 'X'))
}

// TestCipher_StripFiller recovers the cleaned plaintext of the textbook example.
func TestCipher_StripFiller(t *testing.T) {
	c, err := playfair.New("playfair example")
	require.NoError(t, err)

	pt, err := c.Decrypt(c.Encrypt("Hide the gold in the tree stump"))
	require.NoError(t, err)
	assert.Equal(t, "hidethegoldinthetreestump", c.StripFiller(pt))
}
