// FILE: internal/storage/store.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"quiz/internal/core"
)

// Store is the SQLite backed quiz repository
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewStore opens the database at dataSourceName
func NewStore(dataSourceName string, walMode bool) (*Store, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if walMode {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// One interactive user, one flow at a time. A single connection also
	// keeps ":memory:" databases from splitting across the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{
		db:   db,
		path: dataSourceName,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// InitDB creates the database schema
func (s *Store) InitDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return tx.Commit()
}

// Path returns the data source the store was opened with
func (s *Store) Path() string {
	return s.path
}

const selectQuiz = `SELECT quiz_id, question, answer, created_at, updated_at FROM quizzes`

type scanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row scanner) (core.Quiz, error) {
	var q core.Quiz
	err := row.Scan(&q.ID, &q.Question, &q.Answer, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

// FindAll returns every quiz ordered by id
func (s *Store) FindAll(ctx context.Context) ([]core.Quiz, error) {
	rows, err := s.db.QueryContext(ctx, selectQuiz+` ORDER BY quiz_id`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var quizzes []core.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		quizzes = append(quizzes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return quizzes, nil
}

// FindByID returns the quiz with the given id, or nil if there is none
func (s *Store) FindByID(ctx context.Context, id core.ID) (*core.Quiz, error) {
	q, err := scanQuiz(s.db.QueryRowContext(ctx, selectQuiz+` WHERE quiz_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find quiz %d: %w", id, err)
	}
	return &q, nil
}

// Create validates and inserts a new quiz
func (s *Store) Create(ctx context.Context, question, answer string) (*core.Quiz, error) {
	now := s.now()
	q := &core.Quiz{Question: question, Answer: answer, CreatedAt: now, UpdatedAt: now}
	if err := checkQuiz(q); err != nil {
		return nil, err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO quizzes (question, answer, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			q.Question, q.Answer, q.CreatedAt, q.UpdatedAt,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		q.ID = core.ID(id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert quiz: %w", err)
	}
	return q, nil
}

// Save validates and writes back the question and answer of an existing quiz
func (s *Store) Save(ctx context.Context, q *core.Quiz) (*core.Quiz, error) {
	if err := checkQuiz(q); err != nil {
		return nil, err
	}

	updated := *q
	updated.UpdatedAt = s.now()

	var affected int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE quizzes SET question = ?, answer = ?, updated_at = ? WHERE quiz_id = ?`,
			updated.Question, updated.Answer, updated.UpdatedAt, updated.ID,
		)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update quiz %d: %w", q.ID, err)
	}
	if affected == 0 {
		return nil, core.ErrNotFound(q.ID)
	}

	*q = updated
	return q, nil
}

// Destroy deletes the quiz with the given id. Missing ids are not an error.
func (s *Store) Destroy(ctx context.Context, id core.ID) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM quizzes WHERE quiz_id = ?`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete quiz %d: %w", id, err)
	}
	return nil
}

// Count returns the number of stored quizzes
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quizzes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	return n, nil
}

// withTx runs fn in a transaction, committing only if fn succeeds
func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
