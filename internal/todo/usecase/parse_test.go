package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
	"github.com/rainerkim/ai-todo-manager/pkg/datemath"
	"github.com/rainerkim/ai-todo-manager/pkg/gemini"
)

func newParseFixture(t *testing.T, llm *mockLLM, ref time.Time) *implUseCase {
	t.Helper()

	resolver, err := datemath.NewResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	var uc *implUseCase
	if llm == nil {
		uc = New(&mockLogger{}, nil, nil, resolver)
	} else {
		uc = New(&mockLogger{}, llm, nil, resolver)
	}
	uc.now = func() time.Time { return ref }
	return uc
}

func seoulTime(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}

func TestParseEmptyInput(t *testing.T) {
	llm := &mockLLM{responseText: "{}"}
	uc := newParseFixture(t, llm, seoulTime(t, 2025, time.March, 3, 9, 0))

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := uc.Parse(context.Background(), model.Scope{UserID: "u1"}, todo.ParseInput{RawText: input})
		if !errors.Is(err, todo.ErrEmptyInput) {
			t.Errorf("input %q: err = %v, want ErrEmptyInput", input, err)
		}
	}

	if llm.calls != 0 {
		t.Errorf("LLM called %d times for empty input, want 0", llm.calls)
	}
}

func TestParseNotConfigured(t *testing.T) {
	uc := newParseFixture(t, nil, seoulTime(t, 2025, time.March, 3, 9, 0))

	_, err := uc.Parse(context.Background(), model.Scope{}, todo.ParseInput{RawText: "내일 회의"})
	if !errors.Is(err, todo.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestParseFencedOutputWithInvalidEnums(t *testing.T) {
	llm := &mockLLM{responseText: "Sure, here is the result:\n```json\n" +
		`{"title":"Buy milk","priority":"urgent","category":"space"}` +
		"\n```\nLet me know if you need anything else."}
	uc := newParseFixture(t, llm, seoulTime(t, 2025, time.March, 3, 9, 0))

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "u1"}, todo.ParseInput{RawText: "우유 사기"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := out.Todo
	if got.Title != "Buy milk" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("Priority = %s, want medium (invalid enum replaced)", got.Priority)
	}
	if got.Category != model.CategoryPersonal {
		t.Errorf("Category = %s, want 개인 (invalid enum replaced)", got.Category)
	}
	if got.Description != "" || got.DueDate != "" {
		t.Errorf("Description/DueDate should be absent, got %q / %q", got.Description, got.DueDate)
	}
}

func TestParseNoJSONObject(t *testing.T) {
	llm := &mockLLM{responseText: "죄송하지만 할 일을 찾을 수 없습니다."}
	uc := newParseFixture(t, llm, seoulTime(t, 2025, time.March, 3, 9, 0))

	_, err := uc.Parse(context.Background(), model.Scope{}, todo.ParseInput{RawText: "내일 회의"})
	if !errors.Is(err, todo.ErrUnparsableResponse) {
		t.Errorf("err = %v, want ErrUnparsableResponse", err)
	}
}

func TestParseRepairableJSON(t *testing.T) {
	// Trailing comma: json.Unmarshal rejects it, the repair pass fixes it.
	llm := &mockLLM{responseText: `{"title":"보고서 작성","priority":"high",}`}
	uc := newParseFixture(t, llm, seoulTime(t, 2025, time.March, 3, 9, 0))

	out, err := uc.Parse(context.Background(), model.Scope{}, todo.ParseInput{RawText: "보고서"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Todo.Title != "보고서 작성" || out.Todo.Priority != model.PriorityHigh {
		t.Errorf("unexpected result after repair: %+v", out.Todo)
	}
}

func TestParseWrongTypedFields(t *testing.T) {
	// A syntactically valid object with wrong-typed fields must still
	// produce a todo; bad values are defaulted, never escalated.
	llm := &mockLLM{responseText: `{"title":"Buy milk","description":123,"priority":1,"category":"개인"}`}
	uc := newParseFixture(t, llm, seoulTime(t, 2025, time.March, 3, 9, 0))

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "u1"}, todo.ParseInput{RawText: "우유 사기"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := out.Todo
	if got.Title != "Buy milk" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("Priority = %s, want medium (numeric value defaulted)", got.Priority)
	}
	if got.Description != "" {
		t.Errorf("Description = %q, want absent (numeric value dropped)", got.Description)
	}
	if got.Category != model.CategoryPersonal {
		t.Errorf("Category = %s, want 개인", got.Category)
	}

	// All five fields wrong-typed at once: the call still succeeds with
	// every field at its default.
	uc2 := newParseFixture(t, &mockLLM{
		responseText: `{"title":7,"description":[],"due_date":{},"priority":true,"category":99}`,
	}, seoulTime(t, 2025, time.March, 3, 9, 0))

	out, err = uc2.Parse(context.Background(), model.Scope{}, todo.ParseInput{RawText: "장보기"})
	if err != nil {
		t.Fatalf("Parse all wrong-typed: %v", err)
	}
	if out.Todo.Title != "장보기" {
		t.Errorf("Title = %q, want input fallback", out.Todo.Title)
	}
	if out.Todo.Priority != model.DefaultPriority || out.Todo.Category != model.DefaultCategory {
		t.Errorf("Priority/Category = %s/%s, want defaults", out.Todo.Priority, out.Todo.Category)
	}
	if out.Todo.DueDate != "" {
		t.Errorf("DueDate = %q, want absent", out.Todo.DueDate)
	}
}

func TestParseTitleFallback(t *testing.T) {
	llm := &mockLLM{responseText: `{"title":"","category":"업무"}`}
	uc := newParseFixture(t, llm, seoulTime(t, 2025, time.March, 3, 9, 0))

	input := strings.Repeat("가", 80)
	out, err := uc.Parse(context.Background(), model.Scope{}, todo.ParseInput{RawText: input})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := []rune(out.Todo.Title); len(got) != 50 {
		t.Errorf("fallback title length = %d runes, want 50", len(got))
	}
	if out.Todo.Category != model.CategoryWork {
		t.Errorf("Category = %s, want 업무", out.Todo.Category)
	}
}

func TestParseFridayEveningScenario(t *testing.T) {
	// Monday, March 3, 2025 in Seoul: nearest Friday is March 7.
	ref := seoulTime(t, 2025, time.March, 3, 9, 30)

	llm := &mockLLM{responseText: `{
  "title": "친구와 저녁 약속",
  "description": null,
  "due_date": "2025-03-07 18:00",
  "priority": "medium",
  "category": "개인"
}`}
	uc := newParseFixture(t, llm, ref)

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "u1"},
		todo.ParseInput{RawText: "이번주 금요일 저녁에 친구랑 저녁 약속"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// The composed prompt must carry the independently resolved date.
	if !strings.Contains(llm.lastPrompt, "2025-03-07 18:00") {
		t.Errorf("prompt missing resolved Friday evening anchor")
	}
	if !strings.Contains(llm.lastPrompt, "이번주 금요일 저녁에 친구랑 저녁 약속") {
		t.Errorf("prompt missing the raw utterance")
	}

	got := out.Todo
	if got.Title != "친구와 저녁 약속" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.DueDate != "2025-03-07 18:00" {
		t.Errorf("DueDate = %q, want 2025-03-07 18:00", got.DueDate)
	}
	if got.Priority != model.PriorityMedium || got.Category != model.CategoryPersonal {
		t.Errorf("Priority/Category = %s/%s", got.Priority, got.Category)
	}
	if got.Description != "" {
		t.Errorf("Description = %q, want absent (model sent null)", got.Description)
	}
}

func TestParseUpstreamErrorPropagates(t *testing.T) {
	llm := &mockLLM{err: &gemini.APIError{StatusCode: 429, Kind: gemini.ErrorKindQuota}}
	uc := newParseFixture(t, llm, seoulTime(t, 2025, time.March, 3, 9, 0))

	_, err := uc.Parse(context.Background(), model.Scope{}, todo.ParseInput{RawText: "내일 회의"})

	var apiErr *gemini.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected wrapped *APIError, got %v", err)
	}
	if apiErr.Kind != gemini.ErrorKindQuota {
		t.Errorf("Kind = %s, want quota", apiErr.Kind)
	}
}

func TestInterpretIdempotent(t *testing.T) {
	uc := newParseFixture(t, &mockLLM{}, seoulTime(t, 2025, time.March, 3, 9, 0))
	ctx := context.Background()

	first, err := uc.interpretResponse(ctx,
		`{"title":"요가 수업","due_date":"2025-03-05","priority":"low","category":"건강"}`, "요가")
	if err != nil {
		t.Fatalf("interpretResponse: %v", err)
	}

	// Serialize the validated object back into model format and re-run.
	back, _ := json.Marshal(map[string]any{
		"title":       first.Title,
		"description": first.Description,
		"due_date":    first.DueDate,
		"priority":    string(first.Priority),
		"category":    string(first.Category),
	})
	second, err := uc.interpretResponse(ctx, string(back), "요가")
	if err != nil {
		t.Fatalf("interpretResponse round 2: %v", err)
	}

	if first != second {
		t.Errorf("interpretation not idempotent: %+v vs %+v", first, second)
	}
}
