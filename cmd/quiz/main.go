// Package main runs the interactive quiz trainer.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"quiz/internal/client/commands"
	"quiz/internal/client/display"
	"quiz/internal/client/game"
	"quiz/internal/client/session"
	"quiz/internal/client/terminal"
	"quiz/internal/config"
	"quiz/internal/storage"
)

type repository interface {
	session.Repository
	Close() error
}

func main() {
	c, err := loadConfig()
	if err != nil {
		log.Fatalf("Load config failed: %v", err)
	}

	logger, closeLog, err := newLogger(c.Log.Level, c.Log.File)
	if err != nil {
		log.Fatalf("Init logger failed: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	repo, release, err := openRepository(ctx, c)
	if err != nil {
		log.Fatalf("Open storage failed: %v", err)
	}
	defer release()

	term, err := terminal.Open(c.Terminal, logger)
	if err != nil {
		release()
		log.Fatalf("Open terminal failed: %v", err)
	}

	console := display.NewConsole(term.Writer(), c.Terminal.UseColor())
	prompter := terminal.NewPrompter(term, console, display.Red)

	registry := commands.NewRegistry(commands.Config{
		Session: session.New(session.Config{
			Repository: repo,
			Prompter:   prompter,
			Console:    console,
			Logger:     logger,
		}),
		Game: game.New(game.Config{
			Source:   repo,
			Prompter: prompter,
			Console:  console,
			Logger:   logger,
			Seed:     c.Game.Seed,
		}),
		Console: console,
		Logger:  logger,
	})
	shell := commands.NewShell(term, registry, console)
	shell.Welcome()

	// Closing the terminal is the only way to stop a running command
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return shell.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		return term.Close()
	})

	if err := g.Wait(); err != nil {
		slog.Error("quiz: shell stopped", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}

func loadConfig() (config.Config, error) {
	c := config.Default()

	if err := config.Load(os.Getenv("QUIZ_CONFIG"), &c); err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}

	return c, nil
}

// openRepository returns the SQLite store, or the memory store when no
// storage path is configured. The release function closes it.
func openRepository(ctx context.Context, c config.Config) (repository, func(), error) {
	var (
		repo   repository
		unlock = func() {}
	)

	if c.Storage.Path == "" {
		slog.Info("quiz: persistent storage disabled, quizzes are kept in memory")
		repo = storage.NewMemory()
	} else {
		if c.Storage.Lock {
			var err error
			if unlock, err = lockStorage(c.Storage.Path); err != nil {
				return nil, nil, err
			}
		}

		store, err := storage.NewStore(c.Storage.Path, c.Storage.WAL)
		if err != nil {
			unlock()
			return nil, nil, err
		}
		if err := store.InitDB(); err != nil {
			unlock()
			return nil, nil, errors.Join(err, store.Close())
		}
		slog.Info("quiz: storage opened", "path", store.Path())
		repo = store
	}

	if c.Storage.Seed {
		n, err := storage.Seed(ctx, repo)
		if err != nil {
			unlock()
			return nil, nil, errors.Join(err, repo.Close())
		}
		if n > 0 {
			slog.Info("quiz: seeded default quizzes", "count", n)
		}
	}

	release := func() {
		if err := repo.Close(); err != nil {
			slog.Warn("quiz: failed to close storage cleanly", "error", err)
		}
		unlock()
	}
	return repo, release, nil
}
