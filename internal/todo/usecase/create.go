package usecase

import (
	"context"
	"strings"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
	"github.com/rainerkim/ai-todo-manager/internal/todo/repository"
)

// Create persists a new todo for the scoped user. Priority and category are
// clamped to their closed sets so the store never holds out-of-domain values.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateOutput{}, todo.ErrInvalidPayload
	}

	priority := input.Priority
	if !priority.IsValid() {
		priority = model.DefaultPriority
	}
	category := input.Category
	if !category.IsValid() {
		category = model.DefaultCategory
	}

	created, err := uc.repo.CreateTodo(ctx, repository.CreateTodoOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     strings.TrimSpace(input.DueDate),
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		return todo.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "Create: user=%s todo=%s", sc.UserID, created.ID)

	return todo.CreateOutput{Todo: created}, nil
}
