package storage

import (
	"context"
	"fmt"

	"quiz/internal/core"
)

// DefaultQuizzes are loaded into an empty repository on first start
var DefaultQuizzes = []struct{ Question, Answer string }{
	{"Capital of Italy", "Rome"},
	{"Capital of France", "Paris"},
	{"Capital of Spain", "Madrid"},
	{"Capital of Portugal", "Lisbon"},
}

type seeder interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, question, answer string) (*core.Quiz, error)
}

// Seed inserts DefaultQuizzes if the repository holds no quizzes. It returns
// the number of quizzes inserted.
func Seed(ctx context.Context, repo seeder) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for i, q := range DefaultQuizzes {
		if _, err := repo.Create(ctx, q.Question, q.Answer); err != nil {
			return i, fmt.Errorf("seed quiz %q: %w", q.Question, err)
		}
	}
	return len(DefaultQuizzes), nil
}
