package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *app) newEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [text...]",
		Aliases: []string{"enc", "e"},
		Short:   "Encrypt text (arguments or stdin)",
		Long: `Encrypt cleans the text (lowercase, letters only, j written as i),
splits it into digraphs padded with the filler letter and substitutes each pair.`,
		RunE: a.runEncrypt,
	}
}

func (a *app) runEncrypt(cmd *cobra.Command, args []string) error {
	c, err := a.cipher()
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	text, err := a.input(cmd, args)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	start := time.Now()
	digraphs := c.Digraphs(text)
	ct := c.Encrypt(text)
	a.log.Debug("encrypted", "digraphs", len(digraphs), "letters", len(ct), "elapsed", time.Since(start))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ct)
	return err
}
