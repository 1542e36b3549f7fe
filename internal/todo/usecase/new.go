package usecase

import (
	"context"
	"time"

	"github.com/rainerkim/ai-todo-manager/internal/todo/repository"
	"github.com/rainerkim/ai-todo-manager/pkg/datemath"
	"github.com/rainerkim/ai-todo-manager/pkg/gemini"
	pkgLog "github.com/rainerkim/ai-todo-manager/pkg/log"
)

// LLMClient is the slice of the Gemini client the usecase depends on.
type LLMClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      LLMClient
	repo     repository.Repository
	resolver *datemath.Resolver

	// now is injected so pure date logic stays deterministic under test.
	now func() time.Time
}

// New creates a new todo UseCase instance. llm may be nil when the
// generative service is not configured; Parse then fails with
// todo.ErrNotConfigured without attempting a call.
func New(
	l pkgLog.Logger,
	llm LLMClient,
	repo repository.Repository,
	resolver *datemath.Resolver,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		resolver: resolver,
		now:      time.Now,
	}
}
