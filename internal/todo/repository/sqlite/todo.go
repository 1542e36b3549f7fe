package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	repo "github.com/rainerkim/ai-todo-manager/internal/todo/repository"
)

const todoColumns = `id, user_id, title, description, create_date, due_date, priority, category, completed`

// CreateTodo inserts a new todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	const query = `
		INSERT INTO todos (id, user_id, title, description, create_date, due_date, priority, category, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)
		RETURNING ` + todoColumns

	id := uuid.NewString()
	createDate := time.Now().UTC()

	var t model.Todo
	err := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.Title, opt.Description, createDate, opt.DueDate, opt.Priority, opt.Category,
	).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreateDate,
		&t.DueDate, &t.Priority, &t.Category, &t.Completed,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return model.Todo{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTodo retrieves a single todo owned by opt.UserID.
// Returns zero-value Todo (ID == "") when not found.
func (r *implRepository) GetTodo(ctx context.Context, opt repo.GetTodoOptions) (model.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND user_id = ? LIMIT 1`

	var t model.Todo
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreateDate,
		&t.DueDate, &t.Priority, &t.Category, &t.Completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTodo"), err)
		return model.Todo{}, repo.ErrFailedToQuery
	}
	return t, nil
}

// ListTodos returns the filtered, sorted page of todos plus the total count
// matching the filters.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, int, error) {
	where, args := buildListWhere(opt)

	countQuery := `SELECT COUNT(*) FROM todos ` + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: count: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToQuery
	}

	query := fmt.Sprintf(`SELECT %s FROM todos %s %s LIMIT ? OFFSET ?`,
		todoColumns, where, buildListOrder(opt))
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToQuery
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreateDate,
			&t.DueDate, &t.Priority, &t.Category, &t.Completed,
		); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListTodos"), err)
			return nil, 0, repo.ErrFailedToQuery
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToQuery
	}

	return todos, total, nil
}

// UpdateTodo applies the non-nil fields and returns the updated entity.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	set, args := buildUpdateSet(opt)
	if len(set) == 0 {
		return r.GetTodo(ctx, repo.GetTodoOptions{ID: opt.ID, UserID: opt.UserID})
	}

	query := fmt.Sprintf(`UPDATE todos SET %s WHERE id = ? AND user_id = ? RETURNING %s`,
		set, todoColumns)
	args = append(args, opt.ID, opt.UserID)

	var t model.Todo
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreateDate,
		&t.DueDate, &t.Priority, &t.Category, &t.Completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Todo{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return model.Todo{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTodo removes the todo owned by opt.UserID.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	const query = `DELETE FROM todos WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
