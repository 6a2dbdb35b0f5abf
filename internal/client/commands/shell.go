package commands

import (
	"context"
	"errors"
	"io"

	"quiz/internal/client/display"
	"quiz/internal/client/terminal"
)

// Shell is the read-eval loop of the quiz client
type Shell struct {
	term     terminal.Terminal
	registry *Registry
	out      *display.Console
	prompt   string
}

func NewShell(t terminal.Terminal, r *Registry, out *display.Console) *Shell {
	return &Shell{
		term:     t,
		registry: r,
		out:      out,
		prompt:   out.Prompt("quiz"),
	}
}

// Run reads and executes commands until quit or closed input. The prompt is
// shown once per command, at the top of the loop, whatever way the previous
// command ended.
func (s *Shell) Run(ctx context.Context) error {
	for {
		line, err := s.term.ReadCommand(s.prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = s.registry.Execute(ctx, line)
		if errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// Welcome prints the banner shown before the first prompt
func (s *Shell) Welcome() {
	s.out.Banner("Quiz", display.Cyan)
	s.out.Line("Type 'help' for commands")
	s.out.Line("")
}
