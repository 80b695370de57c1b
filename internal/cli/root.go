// Package cli wires the playfair command-line tool: cobra commands on top of
// the viper configuration in internal/config.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/playfair/internal/config"
	"github.com/katalvlaran/playfair/internal/logging"
)

// app is shared by all commands of one root; PersistentPreRunE fills cfg and log.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "playfair",
		Short: "Encrypt and decrypt text with the Playfair cipher",
		Long: `playfair enciphers letters two at a time on a 5x5 key square built from a keyword.

Configuration is read from flags, PLAYFAIR_* environment variables and
.playfair.yaml, in that order of precedence.

Examples:
  playfair encrypt -k "playfair example" hide the gold in the tree stump
  echo bmodzbxdnabekudmuixmmouvif | playfair decrypt -k "playfair example" --strip-filler
  playfair square -k "playfair example" --format yaml`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .playfair.yaml)")
	pf.StringP(config.KeyKey, "k", "", "keyword the key square is built from")
	pf.String(config.KeyFiller, "x", "padding letter for doubled and trailing letters")
	pf.StringP(config.KeyLogLevel, "l", "warn", "log level (debug, info, warn, error)")
	pf.String(config.KeyLogFormat, "text", "log format (text, json)")
	pf.Bool(config.KeyFoldAccents, false, "fold accented letters to their base letter before cleaning")

	root.AddCommand(
		a.newEncryptCommand(),
		a.newDecryptCommand(),
		a.newSquareCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With("command", cmd.Name())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config file loaded", "path", used)
	}
	return nil
}
