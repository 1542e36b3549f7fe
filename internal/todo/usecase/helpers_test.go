package usecase

import (
	"testing"

	"github.com/rainerkim/ai-todo-manager/internal/model"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			text:   `{"title":"x"}`,
			want:   `{"title":"x"}`,
			wantOK: true,
		},
		{
			name:   "code fence and prose",
			text:   "Here:\n```json\n{\"title\":\"x\"}\n```\ndone",
			want:   `{"title":"x"}`,
			wantOK: true,
		},
		{
			name:   "greedy span keeps nested objects",
			text:   `prefix {"a":{"b":1}} suffix`,
			want:   `{"a":{"b":1}}`,
			wantOK: true,
		},
		{
			name:   "no braces",
			text:   "no json here",
			wantOK: false,
		},
		{
			name:   "closing brace before opening",
			text:   `} nothing {`,
			wantOK: false,
		},
		{
			name:   "empty string",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("span = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleFallback(t *testing.T) {
	if got := titleFallback("  짧은 입력  "); got != "짧은 입력" {
		t.Errorf("short input: %q", got)
	}

	long := "이번주 금요일 저녁에 친구랑 저녁 약속을 잡고 다음주 월요일 아침에는 팀 회의 보고서를 작성해야 한다"
	got := []rune(titleFallback(long))
	if len(got) != 50 {
		t.Errorf("long input truncated to %d runes, want 50", len(got))
	}
}

func TestValidateParsedDefaults(t *testing.T) {
	tests := []struct {
		name         string
		raw          rawParsedTodo
		wantPriority model.Priority
		wantCategory model.Category
	}{
		{"valid enums pass through", rawParsedTodo{Title: "t", Priority: "high", Category: "건강"},
			model.PriorityHigh, model.CategoryHealth},
		{"unknown enums replaced", rawParsedTodo{Title: "t", Priority: "urgent", Category: "space"},
			model.PriorityMedium, model.CategoryPersonal},
		{"missing enums replaced", rawParsedTodo{Title: "t"},
			model.PriorityMedium, model.CategoryPersonal},
		{"english category replaced", rawParsedTodo{Title: "t", Category: "work"},
			model.PriorityMedium, model.CategoryPersonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateParsed(tt.raw, "원본 입력")
			if got.Priority != tt.wantPriority {
				t.Errorf("Priority = %s, want %s", got.Priority, tt.wantPriority)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", got.Category, tt.wantCategory)
			}
		})
	}
}
