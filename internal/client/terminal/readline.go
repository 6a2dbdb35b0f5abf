package terminal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chzyer/readline"
)

// Readline is an interactive terminal with line editing and command history
type Readline struct {
	rl        *readline.Instance
	save      func(string) error
	log       *slog.Logger
	closed    atomic.Bool
	closeOnce sync.Once
}

func NewReadline(historyFile string, log *slog.Logger) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:            historyFile,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Readline{rl: rl, save: rl.SaveHistory, log: log}, nil
}

func (r *Readline) ReadCommand(prompt string) (string, error) {
	line, err := r.read(prompt, "")
	if err != nil {
		return "", err
	}
	r.remember(line)
	return line, nil
}

// remember appends a non-blank command to the history file
func (r *Readline) remember(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if err := r.save(line); err != nil {
		r.log.Debug("terminal: failed to save history", "error", err)
	}
}

func (r *Readline) ReadLine(prompt, def string) (string, error) {
	return r.read(prompt, def)
}

// read blocks for one line. Ctrl-C drops the partial line and reads again.
func (r *Readline) read(prompt, def string) (string, error) {
	for {
		if r.closed.Load() {
			return "", io.EOF
		}

		r.rl.SetPrompt(prompt)
		line, err := r.rl.ReadlineWithDefault(def)
		switch {
		case err == nil:
			return line, nil
		case r.closed.Load(), errors.Is(err, io.EOF):
			return "", io.EOF
		case errors.Is(err, readline.ErrInterrupt):
			continue
		default:
			return "", fmt.Errorf("read line: %w", err)
		}
	}
}

func (r *Readline) Writer() io.Writer {
	return r.rl.Stdout()
}

func (r *Readline) Close() error {
	var err error
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		err = r.rl.Close()
	})
	return err
}
