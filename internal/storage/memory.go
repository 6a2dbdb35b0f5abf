package storage

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"quiz/internal/core"
)

// Memory is a non-persistent quiz repository, used when no storage path is configured
type Memory struct {
	mu      sync.RWMutex
	quizzes map[core.ID]core.Quiz
	nextID  core.ID
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		quizzes: make(map[core.ID]core.Quiz),
		nextID:  1,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (m *Memory) FindAll(_ context.Context) ([]core.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quizzes := make([]core.Quiz, 0, len(m.quizzes))
	for _, q := range m.quizzes {
		quizzes = append(quizzes, q)
	}
	slices.SortFunc(quizzes, func(a, b core.Quiz) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return quizzes, nil
}

func (m *Memory) FindByID(_ context.Context, id core.ID) (*core.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q, ok := m.quizzes[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (m *Memory) Create(_ context.Context, question, answer string) (*core.Quiz, error) {
	now := m.now()
	q := core.Quiz{Question: question, Answer: answer, CreatedAt: now, UpdatedAt: now}
	if err := checkQuiz(&q); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	q.ID = m.nextID
	m.nextID++
	m.quizzes[q.ID] = q
	return &q, nil
}

func (m *Memory) Save(_ context.Context, q *core.Quiz) (*core.Quiz, error) {
	if err := checkQuiz(q); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.quizzes[q.ID]
	if !ok {
		return nil, core.ErrNotFound(q.ID)
	}
	stored.Question = q.Question
	stored.Answer = q.Answer
	stored.UpdatedAt = m.now()
	m.quizzes[q.ID] = stored

	*q = stored
	return q, nil
}

func (m *Memory) Destroy(_ context.Context, id core.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.quizzes, id)
	return nil
}

func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.quizzes), nil
}

func (m *Memory) Close() error {
	return nil
}
