// FILE: internal/storage/schema.go
package storage

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS quizzes (
	quiz_id INTEGER PRIMARY KEY AUTOINCREMENT,
	question TEXT NOT NULL CHECK(length(question) > 0),
	answer TEXT NOT NULL CHECK(length(answer) > 0),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_quizzes_question ON quizzes(question);
`
