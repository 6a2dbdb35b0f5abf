// FILE: internal/client/commands/registry.go
package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"quiz/internal/client/display"
	"quiz/internal/client/game"
	"quiz/internal/client/session"
)

// ErrQuit is returned by the quit command to stop the shell
var ErrQuit = errors.New("quit")

// Command defines a shell command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	// Args is how many argument tokens are passed to the handler. Missing
	// tokens are passed as "".
	Args    int
	Handler func(ctx context.Context, args []string) error
}

type Config struct {
	Session *session.Commands
	Game    *game.Engine
	Console *display.Console
	Logger  *slog.Logger
}

// Registry maps command names to handlers
type Registry struct {
	commands map[string]*Command
	order    []*Command
	out      *display.Console
	log      *slog.Logger
}

func NewRegistry(c Config) *Registry {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	r := &Registry{
		commands: make(map[string]*Command),
		out:      c.Console,
		log:      log,
	}

	r.Register(r.helpCommand())
	r.registerQuizCommands(c.Session, c.Game)
	r.Register(r.creditsCommand())
	r.Register(r.quitCommand())

	return r
}

func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
	r.order = append(r.order, cmd)
}

// Lookup returns the command registered under name or short name
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Execute runs one input line. Command failures are rendered and logged
// here; only ErrQuit and io.EOF are returned.
func (r *Registry) Execute(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmdName := parts[0]
	cmd, exists := r.commands[cmdName]
	if !exists {
		r.out.ErrorLine("Unknown command: " + cmdName)
		r.out.Line("Type 'help' for available commands")
		return nil
	}

	args := make([]string, cmd.Args)
	copy(args, parts[1:])

	err := cmd.Handler(ctx, args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQuit), errors.Is(err, io.EOF):
		return err
	default:
		r.log.DebugContext(ctx, "commands: command failed", "command", cmd.Name, "error", err)
		r.out.Error(err)
		return nil
	}
}

func (r *Registry) registerQuizCommands(s *session.Commands, g *game.Engine) {
	r.Register(&Command{
		Name:        "list",
		Description: "List the existing quizzes",
		Usage:       "list",
		Handler: func(ctx context.Context, _ []string) error {
			return s.List(ctx)
		},
	})

	r.Register(&Command{
		Name:        "show",
		Description: "Show the question and answer of a quiz",
		Usage:       "show <id>",
		Args:        1,
		Handler: func(ctx context.Context, args []string) error {
			return s.Show(ctx, args[0])
		},
	})

	r.Register(&Command{
		Name:        "add",
		Description: "Add a new quiz interactively",
		Usage:       "add",
		Handler: func(ctx context.Context, _ []string) error {
			return s.Add(ctx)
		},
	})

	r.Register(&Command{
		Name:        "delete",
		Description: "Delete a quiz",
		Usage:       "delete <id>",
		Args:        1,
		Handler: func(ctx context.Context, args []string) error {
			return s.Delete(ctx, args[0])
		},
	})

	r.Register(&Command{
		Name:        "edit",
		Description: "Edit a quiz",
		Usage:       "edit <id>",
		Args:        1,
		Handler: func(ctx context.Context, args []string) error {
			return s.Edit(ctx, args[0])
		},
	})

	r.Register(&Command{
		Name:        "test",
		Description: "Test yourself on a quiz",
		Usage:       "test <id>",
		Args:        1,
		Handler: func(ctx context.Context, args []string) error {
			return s.Test(ctx, args[0])
		},
	})

	r.Register(&Command{
		Name:        "play",
		ShortName:   "p",
		Description: "Play all quizzes in random order",
		Usage:       "play",
		Handler: func(ctx context.Context, _ []string) error {
			_, err := g.Play(ctx)
			return err
		},
	})
}
