package repository

import "github.com/rainerkim/ai-todo-manager/internal/model"

// CreateTodoOptions carries the fields for inserting a new todo.
type CreateTodoOptions struct {
	UserID      string
	Title       string
	Description string
	DueDate     string
	Priority    model.Priority
	Category    model.Category
}

// GetTodoOptions filters a single-todo lookup. UserID scopes the query to
// the owner; lookups never cross user boundaries.
type GetTodoOptions struct {
	ID     string
	UserID string
}

// ListTodosOptions filters and sorts a todo listing.
type ListTodosOptions struct {
	UserID    string
	Category  string
	Priority  string
	Completed *bool
	Query     string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

// UpdateTodoOptions is a partial update; nil fields are left untouched.
type UpdateTodoOptions struct {
	ID          string
	UserID      string
	Title       *string
	Description *string
	DueDate     *string
	Priority    *model.Priority
	Category    *model.Category
	Completed   *bool
}

// DeleteTodoOptions identifies the todo to remove.
type DeleteTodoOptions struct {
	ID     string
	UserID string
}
