package usecase

import (
	"context"
	"errors"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
	"github.com/rainerkim/ai-todo-manager/internal/todo/repository"
)

// Detail returns a single todo owned by the scoped user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.DetailOutput, error) {
	found, err := uc.repo.GetTodo(ctx, repository.GetTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		return todo.DetailOutput{}, err
	}
	if found.ID == "" {
		return todo.DetailOutput{}, todo.ErrTodoNotFound
	}
	return todo.DetailOutput{Todo: found}, nil
}

// Update applies a partial update to a todo owned by the scoped user.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error) {
	if input.Priority != nil && !input.Priority.IsValid() {
		return todo.UpdateOutput{}, todo.ErrInvalidPayload
	}
	if input.Category != nil && !input.Category.IsValid() {
		return todo.UpdateOutput{}, todo.ErrInvalidPayload
	}

	updated, err := uc.repo.UpdateTodo(ctx, repository.UpdateTodoOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Category:    input.Category,
		Completed:   input.Completed,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}
	if err != nil {
		return todo.UpdateOutput{}, err
	}

	return todo.UpdateOutput{Todo: updated}, nil
}

// Delete removes a todo owned by the scoped user.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.DeleteTodo(ctx, repository.DeleteTodoOptions{ID: id, UserID: sc.UserID})
	if errors.Is(err, repository.ErrNotFound) {
		return todo.ErrTodoNotFound
	}
	return err
}

// ToggleComplete flips the completed flag of a todo owned by the scoped user.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (todo.UpdateOutput, error) {
	found, err := uc.repo.GetTodo(ctx, repository.GetTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		return todo.UpdateOutput{}, err
	}
	if found.ID == "" {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}

	completed := !found.Completed
	updated, err := uc.repo.UpdateTodo(ctx, repository.UpdateTodoOptions{
		ID:        id,
		UserID:    sc.UserID,
		Completed: &completed,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}
	if err != nil {
		return todo.UpdateOutput{}, err
	}

	return todo.UpdateOutput{Todo: updated}, nil
}
