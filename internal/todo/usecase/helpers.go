package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
)

// titleFallbackRunes caps the fallback title taken from the raw input.
const titleFallbackRunes = 50

// rawParsedTodo carries the five prompt-schema fields before validation.
type rawParsedTodo struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Category    string
}

// interpretResponse extracts and validates the JSON object from free-form
// model output. Only locating or decoding failures are fatal for the call;
// field-level anomalies, wrong-typed values included, are silently
// normalized to safe defaults.
func (uc *implUseCase) interpretResponse(ctx context.Context, text, originalInput string) (todo.ParsedTodo, error) {
	span, ok := extractJSONObject(text)
	if !ok {
		uc.l.Errorf(ctx, "interpretResponse: no JSON object in model output: %q", text)
		return todo.ParsedTodo{}, todo.ErrUnparsableResponse
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(span), &fields); err != nil {
		// Models occasionally emit almost-JSON (trailing commas, single
		// quotes); try a repair pass before giving up.
		repaired, repairErr := jsonrepair.JSONRepair(span)
		if repairErr != nil || json.Unmarshal([]byte(repaired), &fields) != nil {
			uc.l.Errorf(ctx, "interpretResponse: malformed JSON in model output: %q", text)
			return todo.ParsedTodo{}, todo.ErrUnparsableResponse
		}
	}

	raw := rawParsedTodo{
		Title:       stringField(fields, "title"),
		Description: stringField(fields, "description"),
		DueDate:     stringField(fields, "due_date"),
		Priority:    stringField(fields, "priority"),
		Category:    stringField(fields, "category"),
	}
	return validateParsed(raw, originalInput), nil
}

// stringField reads a field as a string. Absent, null, or wrong-typed
// values come back empty and are defaulted downstream, never escalated.
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// extractJSONObject returns the first-'{' to last-'}' span of text. The
// greedy span tolerates code fences and surrounding commentary the model
// may add despite instructions.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// validateParsed clamps every field to its allowed domain. It never fails:
// a partially wrong classification beats a failed request.
func validateParsed(raw rawParsedTodo, originalInput string) todo.ParsedTodo {
	parsed := todo.ParsedTodo{
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		DueDate:     strings.TrimSpace(raw.DueDate),
		Priority:    model.Priority(raw.Priority),
		Category:    model.Category(raw.Category),
	}

	if parsed.Title == "" {
		parsed.Title = titleFallback(originalInput)
	}
	if !parsed.Priority.IsValid() {
		parsed.Priority = model.DefaultPriority
	}
	if !parsed.Category.IsValid() {
		parsed.Category = model.DefaultCategory
	}

	return parsed
}

// titleFallback returns the first titleFallbackRunes runes of the input.
func titleFallback(input string) string {
	runes := []rune(strings.TrimSpace(input))
	if len(runes) > titleFallbackRunes {
		runes = runes[:titleFallbackRunes]
	}
	return string(runes)
}
