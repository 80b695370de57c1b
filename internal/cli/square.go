package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/playfair/keysquare"
)

// squareView is the serialised form of a key square.
type squareView struct {
	Letters string   `json:"letters" yaml:"letters"`
	Rows    []string `json:"rows" yaml:"rows"`
	Merged  string   `json:"merged" yaml:"merged"`
}

func newSquareView(sq *keysquare.Square) squareView {
	a := sq.Alphabet()
	return squareView{
		Letters: sq.Letters(),
		Rows:    sq.Rows(),
		Merged:  fmt.Sprintf("%c=%c", a.Merged, a.Substitute),
	}
}

func (a *app) newSquareCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "square",
		Aliases: []string{"grid"},
		Short:   "Print the key square built from the keyword",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.cipher()
			if err != nil {
				return fmt.Errorf("square: %w", err)
			}
			return writeSquare(cmd, c.Square(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")
	return cmd
}

func writeSquare(cmd *cobra.Command, sq *keysquare.Square, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "text":
		_, err := fmt.Fprintln(out, sq.String())
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newSquareView(sq))
	case "yaml":
		b, err := yaml.Marshal(newSquareView(sq))
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}
