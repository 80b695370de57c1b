package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/playfair/internal/textnorm"
	"github.com/katalvlaran/playfair/playfair"
)

// readText joins args with spaces, or reads stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// normalize applies accent folding when it is enabled.
func (a *app) normalize(s string) (string, error) {
	if !a.cfg.FoldAccents {
		return s, nil
	}
	return textnorm.Fold(s)
}

// cipher builds the Cipher for the configured key and filler.
func (a *app) cipher() (*playfair.Cipher, error) {
	if err := a.cfg.RequireKey(); err != nil {
		return nil, err
	}
	key, err := a.normalize(a.cfg.Key)
	if err != nil {
		return nil, err
	}
	c, err := playfair.New(key, playfair.WithFiller(a.cfg.Filler))
	if err != nil {
		return nil, err
	}
	a.log.Debug("key square built", "filler", string(c.Filler()))
	return c, nil
}

// input reads and normalises the command's text argument.
func (a *app) input(cmd *cobra.Command, args []string) (string, error) {
	text, err := readText(cmd, args)
	if err != nil {
		return "", err
	}
	return a.normalize(text)
}
