package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// newLogger builds the process logger. The terminal is the UI, so records go
// to the log file as JSON when one is set, otherwise to stderr as text.
func newLogger(level, file string) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if file == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, opts)), f.Close, nil
}
