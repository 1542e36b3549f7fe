package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
	"github.com/rainerkim/ai-todo-manager/pkg/gemini"
)

const (
	// Low temperature keeps the JSON output deterministic.
	parseTemperature = 0.2
	parseMaxTokens   = 1024
)

// Parse converts a free-text sentence into a structured todo via Gemini.
// The pipeline is resolver → prompt → model call → interpretation; the model
// call is the only suspend point and carries the request context.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input todo.ParseInput) (todo.ParseOutput, error) {
	raw := strings.TrimSpace(input.RawText)
	if raw == "" {
		return todo.ParseOutput{}, todo.ErrEmptyInput
	}
	if uc.llm == nil {
		return todo.ParseOutput{}, todo.ErrNotConfigured
	}

	uc.l.Infof(ctx, "Parse: user=%s input_length=%d", sc.UserID, len(raw))

	now := uc.now().In(uc.resolver.Location())
	anchors := uc.resolver.Resolve(now)
	prompt := gemini.BuildParseTodoPrompt(raw, anchors, now)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     parseTemperature,
			MaxOutputTokens: parseMaxTokens,
		},
	})
	if err != nil {
		return todo.ParseOutput{}, fmt.Errorf("generate content: %w", err)
	}

	parsed, err := uc.interpretResponse(ctx, resp.Text(), raw)
	if err != nil {
		return todo.ParseOutput{}, err
	}

	uc.l.Infof(ctx, "Parse: extracted title=%q category=%s priority=%s",
		parsed.Title, parsed.Category, parsed.Priority)

	return todo.ParseOutput{Todo: parsed}, nil
}
