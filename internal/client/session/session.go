// FILE: internal/client/session/session.go
package session

import (
	"context"
	"log/slog"

	"quiz/internal/client/display"
	"quiz/internal/core"
)

// Repository stores quiz records
type Repository interface {
	FindAll(ctx context.Context) ([]core.Quiz, error)
	FindByID(ctx context.Context, id core.ID) (*core.Quiz, error)
	Create(ctx context.Context, question, answer string) (*core.Quiz, error)
	Save(ctx context.Context, q *core.Quiz) (*core.Quiz, error)
	Destroy(ctx context.Context, id core.ID) error
	Count(ctx context.Context) (int, error)
}

// Asker reads one trimmed answer per call
type Asker interface {
	Ask(ctx context.Context, text string) (string, error)
	AskWithDefault(ctx context.Context, text, current string) (string, error)
}

type Config struct {
	Repository Repository
	Prompter   Asker
	Console    *display.Console
	Logger     *slog.Logger
}

// Commands implements the single record commands of the quiz shell. Every
// command returns its failure instead of rendering it.
type Commands struct {
	repo Repository
	ask  Asker
	out  *display.Console
	log  *slog.Logger
}

func New(c Config) *Commands {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Commands{
		repo: c.Repository,
		ask:  c.Prompter,
		out:  c.Console,
		log:  log,
	}
}

// find validates raw and loads the quiz it names
func (c *Commands) find(ctx context.Context, raw string) (*core.Quiz, error) {
	id, err := core.ValidateID(raw)
	if err != nil {
		return nil, err
	}

	q, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, core.ErrNotFound(id)
	}
	return q, nil
}

func (c *Commands) render(q *core.Quiz) string {
	return q.Question + " " + c.out.Style("=>", display.Magenta) + " " + q.Answer
}
