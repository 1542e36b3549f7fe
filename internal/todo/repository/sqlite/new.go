package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/rainerkim/ai-todo-manager/internal/todo/repository"
	"github.com/rainerkim/ai-todo-manager/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the todo domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the todos table when it does not exist yet.
func Migrate(db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS todos (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			create_date TIMESTAMP NOT NULL,
			due_date    TEXT NOT NULL DEFAULT '',
			priority    TEXT NOT NULL DEFAULT 'medium',
			category    TEXT NOT NULL DEFAULT '개인',
			completed   INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_id);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate todos schema: %w", err)
	}
	return nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/sqlite.%s", method)
}
