package http

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
)

func TestNewTodoResp(t *testing.T) {
	created := time.Date(2025, 1, 15, 9, 30, 0, 0, time.Local)

	resp := newTodoResp(model.Todo{
		ID:         "todo-1",
		UserID:     "user-1",
		Title:      "보고서 작성",
		CreateDate: created,
		Priority:   model.PriorityHigh,
		Category:   model.CategoryWork,
	})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	body := string(b)

	if !strings.Contains(body, `"create_date":"2025-01-15 09:30"`) {
		t.Errorf("create_date not in datetime format: %s", body)
	}
	if !strings.Contains(body, `"description":null`) {
		t.Errorf("empty description should serialize as null: %s", body)
	}
	if !strings.Contains(body, `"due_date":null`) {
		t.Errorf("empty due_date should serialize as null: %s", body)
	}
}

func TestNewParseRespNullableFields(t *testing.T) {
	resp := newParseResp(todo.ParseOutput{Todo: todo.ParsedTodo{
		Title:    "회의 준비",
		DueDate:  "2025-03-07 18:00",
		Priority: model.PriorityMedium,
		Category: model.CategoryPersonal,
	}})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	body := string(b)

	if !strings.Contains(body, `"description":null`) {
		t.Errorf("absent description should serialize as null: %s", body)
	}
	if !strings.Contains(body, `"due_date":"2025-03-07 18:00"`) {
		t.Errorf("due_date missing: %s", body)
	}
}
