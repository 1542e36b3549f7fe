package todo

import (
	"context"

	"github.com/rainerkim/ai-todo-manager/internal/model"
)

// UseCase defines the business logic interface for the todo domain.
type UseCase interface {
	// Parse converts a free-text sentence into a structured todo via the
	// generative model. It never persists anything; the caller owns the result.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// Todo CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (UpdateOutput, error)
}
