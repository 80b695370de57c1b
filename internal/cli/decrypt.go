package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/playfair/internal/config"
)

func (a *app) newDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [text...]",
		Aliases: []string{"dec", "d"},
		Short:   "Decrypt text (arguments or stdin)",
		Long: `Decrypt inverts the substitution pair by pair. Filler letters inserted
during encryption stay in the output unless --strip-filler is given; stripping
may also drop genuine filler letters.`,
		RunE: a.runDecrypt,
	}
	cmd.Flags().Bool(config.KeyStripFiller, false, "remove filler letters between doubled letters and at the end")
	return cmd
}

func (a *app) runDecrypt(cmd *cobra.Command, args []string) error {
	c, err := a.cipher()
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	text, err := a.input(cmd, args)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	start := time.Now()
	pt, err := c.Decrypt(text)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	if a.cfg.StripFiller {
		pt = c.StripFiller(pt)
	}
	a.log.Debug("decrypted", "letters", len(pt), "strip_filler", a.cfg.StripFiller, "elapsed", time.Since(start))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), pt)
	return err
}
