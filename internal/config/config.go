// Package config loads command-line settings through viper.
//
// Sources, highest priority first:
//
//  1. command-line flags (--key, --filler, --log-level, ...)
//  2. PLAYFAIR_* environment variables (PLAYFAIR_KEY, PLAYFAIR_LOG_LEVEL, ...)
//  3. a YAML config file: --config, or .playfair.yaml in the working directory
//  4. defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/playfair/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PLAYFAIR"

// Setting keys. Flag names match the keys.
const (
	KeyKey         = "key"
	KeyFiller      = "filler"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyFoldAccents = "fold-accents"
	KeyStripFiller = "strip-filler"
)

var (
	// ErrMissingKey indicates no keyword was configured.
	ErrMissingKey = errors.New("config: key is required (use --key or PLAYFAIR_KEY)")
	// ErrInvalidFiller indicates a filler setting that is not a single character.
	ErrInvalidFiller = errors.New("config: filler must be exactly one character")
)

// Config is the resolved configuration of one command invocation.
type Config struct {
	Key         string
	Filler      rune
	LogLevel    string
	LogFormat   string
	FoldAccents bool
	StripFiller bool
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyFiller, "x")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyFoldAccents, false)
	v.SetDefault(KeyStripFiller, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag of fs whose name is a setting key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case KeyKey, KeyFiller, KeyLogLevel, KeyLogFormat, KeyFoldAccents, KeyStripFiller:
			if bindErr := v.BindPFlag(f.Name, f); bindErr != nil && err == nil {
				err = bindErr
			}
		}
	})
	return err
}

// ReadFile reads path, or .playfair.yaml from the working directory when path
// is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".playfair")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	filler := v.GetString(KeyFiller)
	if utf8.RuneCountInString(filler) != 1 {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidFiller, filler)
	}
	r, _ := utf8.DecodeRuneInString(filler)

	cfg := Config{
		Key:         v.GetString(KeyKey),
		Filler:      r,
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		FoldAccents: v.GetBool(KeyFoldAccents),
		StripFiller: v.GetBool(KeyStripFiller),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the logging settings. The key is checked separately by
// RequireKey since not every command needs one.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logging.ValidateFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RequireKey returns ErrMissingKey when no keyword is configured.
func (c Config) RequireKey() error {
	if strings.TrimSpace(c.Key) == "" {
		return ErrMissingKey
	}
	return nil
}
