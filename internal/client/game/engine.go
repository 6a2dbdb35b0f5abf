package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"quiz/internal/client/display"
	"quiz/internal/core"
)

// Source provides the quizzes a game is played over
type Source interface {
	FindAll(ctx context.Context) ([]core.Quiz, error)
	FindByID(ctx context.Context, id core.ID) (*core.Quiz, error)
}

type Asker interface {
	Ask(ctx context.Context, text string) (string, error)
}

type Config struct {
	Source   Source
	Prompter Asker
	Console  *display.Console
	Logger   *slog.Logger
	// Seed makes question order reproducible. Zero picks a random seed.
	Seed uint64
}

// Engine plays randomized games: every quiz is asked at most once per game
// and the first wrong answer ends it
type Engine struct {
	src  Source
	ask  Asker
	out  *display.Console
	log  *slog.Logger
	rand *rand.Rand
}

func New(c Config) *Engine {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Engine{
		src:  c.Source,
		ask:  c.Prompter,
		out:  c.Console,
		log:  log,
		rand: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Result is the outcome of a finished game
type Result struct {
	Phase Phase
	Score int
	Asked []core.ID // in the order they were asked
}

// Play runs one game to a terminal phase. The snapshot of ids is taken once
// at start; quizzes added during the game are not asked. The only error is
// closed input or a failure to take the snapshot.
func (e *Engine) Play(ctx context.Context) (Result, error) {
	quizzes, err := e.src.FindAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load quizzes: %w", err)
	}
	ids := make([]core.ID, len(quizzes))
	for i, q := range quizzes {
		ids[i] = q.ID
	}

	runID := uuid.New().String()
	log := e.log.With("run_id", runID)
	log.InfoContext(ctx, "game: started", "pool", len(ids))

	state := NewState(ids)
	var asked []core.ID
	for {
		id, next, ok := state.Draw(e.rand.IntN)
		state = next
		if !ok {
			e.out.Line("No more questions.")
			break
		}

		q, err := e.resolve(ctx, id)
		if err != nil {
			e.out.Error(err)
			log.WarnContext(ctx, "game: quiz unavailable", "quiz_id", id, "error", err)
			state = state.Abort()
			break
		}

		asked = append(asked, id)
		answer, err := e.ask.Ask(ctx, fmt.Sprintf("%s: ", q.Question))
		if err != nil {
			log.InfoContext(ctx, "game: input closed", "score", state.Score)
			return Result{Phase: state.Phase, Score: state.Score, Asked: asked}, err
		}

		state = state.Answer(q.Check(answer))
		if state.Terminal() {
			e.out.Line("INCORRECT.")
			break
		}
		e.out.Linef("CORRECT - %d correct answers so far.", state.Score)
		e.out.Banner("CORRECT", display.Green)
	}

	e.out.Line("End of game. Score:")
	e.out.Banner(fmt.Sprint(state.Score), display.Magenta)

	log.InfoContext(ctx, "game: finished", "phase", state.Phase, "score", state.Score)
	return Result{Phase: state.Phase, Score: state.Score, Asked: asked}, nil
}

func (e *Engine) resolve(ctx context.Context, id core.ID) (*core.Quiz, error) {
	q, err := e.src.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, core.ErrNotFound(id)
	}
	return q, nil
}
