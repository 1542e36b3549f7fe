package repository

import (
	"context"

	"github.com/rainerkim/ai-todo-manager/internal/model"
)

// Repository is the persistence contract for the todo domain.
type Repository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)

	// GetTodo returns a zero-value Todo (ID == "") when not found; it does
	// not return an error for not-found.
	GetTodo(ctx context.Context, opt GetTodoOptions) (model.Todo, error)

	ListTodos(ctx context.Context, opt ListTodosOptions) ([]model.Todo, int, error)

	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Todo, error)

	DeleteTodo(ctx context.Context, opt DeleteTodoOptions) error
}
