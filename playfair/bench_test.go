package playfair_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/playfair/playfair"
)

// BenchmarkCipher_Encrypt measures encryption of ~10 KiB with a prebuilt square.
// Complexity: O(n)
func BenchmarkCipher_Encrypt(b *testing.B) {
	c, err := playfair.New("playfair example")
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	text := strings.Repeat("hide the gold in the tree stump ", 320)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Encrypt(text)
	}
}

// BenchmarkDecrypt measures the one-shot helper, square construction included.
func BenchmarkDecrypt(b *testing.B) {
	ct := strings.Repeat("bmodzbxdnabekudmuixmmouvif", 400)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := playfair.Decrypt("playfair example", ct); err != nil {
			b.Fatal(err)
		}
	}
}
