package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"quiz/internal/core"
	"quiz/internal/storage"
)

type repository interface {
	FindAll(ctx context.Context) ([]core.Quiz, error)
	FindByID(ctx context.Context, id core.ID) (*core.Quiz, error)
	Create(ctx context.Context, question, answer string) (*core.Quiz, error)
	Save(ctx context.Context, q *core.Quiz) (*core.Quiz, error)
	Destroy(ctx context.Context, id core.ID) error
	Count(ctx context.Context) (int, error)
	Close() error
}

func makeStore(t *testing.T) *storage.Store {
	t.Helper()

	s, err := storage.NewStore(filepath.Join(t.TempDir(), "quiz.db"), false)
	require.NoError(t, err)
	require.NoError(t, s.InitDB())
	t.Cleanup(func() { s.Close() })
	return s
}

func repositories(t *testing.T) map[string]repository {
	return map[string]repository{
		"sqlite": makeStore(t),
		"memory": storage.NewMemory(),
	}
}

func TestRepository_CRUD(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			q, err := repo.Create(ctx, "Capital of Spain", "Madrid")
			require.NoError(t, err)
			require.Greater(t, int64(q.ID), int64(0))

			got, err := repo.FindByID(ctx, q.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, "Capital of Spain", got.Question)
			require.Equal(t, "Madrid", got.Answer)

			got.Answer = "madrid"
			saved, err := repo.Save(ctx, got)
			require.NoError(t, err)
			require.Equal(t, "madrid", saved.Answer)

			got, err = repo.FindByID(ctx, q.ID)
			require.NoError(t, err)
			require.Equal(t, "madrid", got.Answer)

			n, err := repo.Count(ctx)
			require.NoError(t, err)
			require.Equal(t, 1, n)

			require.NoError(t, repo.Destroy(ctx, q.ID))
			got, err = repo.FindByID(ctx, q.ID)
			require.NoError(t, err)
			require.Nil(t, got)
		})
	}
}

func TestRepository_DestroyMissingIsNotAnError(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Destroy(context.Background(), 999))
		})
	}
}

func TestRepository_FieldValidation(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := repo.Create(ctx, "", "")
			require.Error(t, err)

			e := core.Convert(err)
			require.Equal(t, core.KindFieldValidation, e.Kind)
			require.Equal(t, []string{"question must not be empty", "answer must not be empty"}, e.Messages)

			n, err := repo.Count(ctx)
			require.NoError(t, err)
			require.Zero(t, n, "invalid quiz should not be stored")

			q, err := repo.Create(ctx, "q", "a")
			require.NoError(t, err)
			q.Question = ""
			_, err = repo.Save(ctx, q)
			require.Equal(t, core.KindFieldValidation, core.KindOf(err))
		})
	}
}

func TestRepository_SaveMissing(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Save(context.Background(), &core.Quiz{ID: 42, Question: "q", Answer: "a"})
			require.Equal(t, core.KindNotFound, core.KindOf(err))
		})
	}
}

func TestRepository_FindAllKeepsGaps(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var ids []core.ID
			for _, text := range []string{"a", "b", "c"} {
				q, err := repo.Create(ctx, text, text)
				require.NoError(t, err)
				ids = append(ids, q.ID)
			}
			require.NoError(t, repo.Destroy(ctx, ids[1]))

			all, err := repo.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			require.Equal(t, ids[0], all[0].ID)
			require.Equal(t, ids[2], all[1].ID)

			// ids are not reused after a delete
			q, err := repo.Create(ctx, "d", "d")
			require.NoError(t, err)
			require.Greater(t, int64(q.ID), int64(ids[2]))
		})
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemory()

	n, err := storage.Seed(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, len(storage.DefaultQuizzes), n)

	n, err = storage.Seed(ctx, repo)
	require.NoError(t, err)
	require.Zero(t, n, "should not seed a non-empty repository")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(storage.DefaultQuizzes), count)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "quiz.db")

	s, err := storage.NewStore(path, true)
	require.NoError(t, err)
	require.NoError(t, s.InitDB())
	q, err := s.Create(ctx, "Capital of Italy", "Rome")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = storage.NewStore(path, true)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.InitDB())

	got, err := s.FindByID(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Rome", got.Answer)
}
