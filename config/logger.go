package config

import (
	"io"
	"log/slog"
	"strings"
)

// SlogLevel parses Level ("debug", "info", "warn", "error"; case-insensitive).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level)))

	return lvl, err
}

// NewLogger builds a slog.Logger writing to w in the configured format.
// An unparsable level falls back to info; Validate reports it beforehand.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.EqualFold(l.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", "mazepath"))
}
