// Command playfair encrypts and decrypts text with the Playfair cipher.
package main

import (
	"os"

	"github.com/katalvlaran/playfair/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
