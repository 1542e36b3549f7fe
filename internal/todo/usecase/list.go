package usecase

import (
	"context"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
	"github.com/rainerkim/ai-todo-manager/internal/todo/repository"
)

// List returns the scoped user's todos with optional filters and sorting.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	todos, total, err := uc.repo.ListTodos(ctx, repository.ListTodosOptions{
		UserID:    sc.UserID,
		Category:  input.Category,
		Priority:  input.Priority,
		Completed: input.Completed,
		Query:     input.Query,
		SortBy:    input.SortBy,
		Order:     input.Order,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return todo.ListOutput{}, err
	}

	return todo.ListOutput{
		Todos:  todos,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
