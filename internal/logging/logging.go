// Package logging builds the slog.Logger used by the command-line tool.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrUnknownLevel indicates a level name other than debug, info, warn or error.
	ErrUnknownLevel = errors.New("logging: unknown level")
	// ErrUnknownFormat indicates a format other than text or json.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// Formats lists the accepted handler formats.
var Formats = []string{"text", "json"}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// ValidateFormat returns ErrUnknownFormat unless format is "text" or "json".
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// New returns a logger writing to w with a text or JSON handler.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}
