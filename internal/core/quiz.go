// FILE: internal/core/quiz.go
package core

import (
	"fmt"
	"strings"
	"time"
)

// Quiz is one question/answer record owned by the repository
type Quiz struct {
	ID        ID        `db:"quiz_id"`
	Question  string    `db:"question" validate:"required,max=500"`
	Answer    string    `db:"answer" validate:"required,max=500"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (q Quiz) String() string {
	return fmt.Sprintf("%d: %s => %s", q.ID, q.Question, q.Answer)
}

// Check reports whether answer matches the stored answer, ignoring case and
// surrounding whitespace
func (q Quiz) Check(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.Answer))
}
