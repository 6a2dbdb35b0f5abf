// Package terminal reads user input for the quiz shell, either through an
// interactive readline session or a plain line scanner.
package terminal

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Terminal is a line-oriented input source. Both read methods return io.EOF
// once the input is closed.
type Terminal interface {
	// ReadCommand reads a shell command and records it in the history
	ReadCommand(prompt string) (string, error)
	// ReadLine reads an answer, with def pre-filled in the edit buffer where supported
	ReadLine(prompt, def string) (string, error)
	// Writer is where output must go so it does not clobber the prompt
	Writer() io.Writer
	Close() error
}

type Config struct {
	HistoryFile string `mapstructure:"history_file"`
	Color       string `mapstructure:"color"` // auto, always, never
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// UseColor resolves the color setting against the attached terminal
func (c Config) UseColor() bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// Open returns a readline terminal when attached to a TTY and a line scanner otherwise
func Open(c Config, log *slog.Logger) (Terminal, error) {
	if IsInteractive() {
		rl, err := NewReadline(c.HistoryFile, log)
		if err != nil {
			return nil, err
		}
		return rl, nil
	}
	return NewLine(os.Stdin, os.Stdout), nil
}
