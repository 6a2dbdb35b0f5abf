package commands

import (
	"context"
	"fmt"

	"quiz/internal/client/display"
)

// Authors are listed by the credits command
var Authors = []string{
	"Isabel Rodríguez Ruiz",
	"Jorge Calatayud Maeso",
}

func (r *Registry) helpCommand() *Command {
	return &Command{
		Name:        "help",
		ShortName:   "h",
		Description: "Show this help",
		Usage:       "help",
		Handler:     r.helpHandler,
	}
}

func (r *Registry) creditsCommand() *Command {
	return &Command{
		Name:        "credits",
		Description: "Show the credits",
		Usage:       "credits",
		Handler:     r.creditsHandler,
	}
}

func (r *Registry) quitCommand() *Command {
	return &Command{
		Name:        "quit",
		ShortName:   "q",
		Description: "Quit the program",
		Usage:       "quit",
		Handler:     r.quitHandler,
	}
}

func (r *Registry) helpHandler(_ context.Context, _ []string) error {
	r.out.Line("Commands:")
	for _, cmd := range r.order {
		usage := cmd.Usage
		if cmd.ShortName != "" {
			usage = cmd.ShortName + "|" + usage
		}
		r.out.Line(fmt.Sprintf("  %-16s - %s.", usage, cmd.Description))
	}
	return nil
}

func (r *Registry) creditsHandler(_ context.Context, _ []string) error {
	r.out.Line("Authors:")
	for _, name := range Authors {
		r.out.Line(r.out.Style(name, display.Green))
	}
	return nil
}

func (r *Registry) quitHandler(_ context.Context, _ []string) error {
	r.out.Line(r.out.Style("Bye!", display.Cyan))
	return ErrQuit
}
