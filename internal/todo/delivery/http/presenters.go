package http

import (
	"strings"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/internal/todo"
	"github.com/rainerkim/ai-todo-manager/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Input string `json:"input"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return todo.ErrEmptyInput
	}
	return nil
}

func (r parseReq) toInput() todo.ParseInput {
	return todo.ParseInput{RawText: r.Input}
}

// ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	DueDate     string `json:"due_date"    binding:"max=16"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    string `json:"category"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    model.Priority(r.Priority),
		Category:    model.Category(r.Category),
	}
}

// ---

type listReq struct {
	Category  string `form:"category"`
	Priority  string `form:"priority"`
	Completed *bool  `form:"completed"`
	Query     string `form:"q"`
	SortBy    string `form:"sort_by"`
	Order     string `form:"order"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{
		Category:  r.Category,
		Priority:  r.Priority,
		Completed: r.Completed,
		Query:     r.Query,
		SortBy:    r.SortBy,
		Order:     r.Order,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	DueDate     *string `json:"due_date"    binding:"omitempty,max=16"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    *string `json:"category"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() todo.UpdateInput {
	input := todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		input.Category = &c
	}
	return input
}

// --- Response DTOs ---

// parseResp mirrors the extractor's five-key contract. Description and
// due_date serialize as null when absent.
type parseResp struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
}

func newParseResp(output todo.ParseOutput) parseResp {
	return parseResp{
		Title:       output.Todo.Title,
		Description: nullable(output.Todo.Description),
		DueDate:     nullable(output.Todo.DueDate),
		Priority:    string(output.Todo.Priority),
		Category:    string(output.Todo.Category),
	}
}

type todoResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	CreateDate  response.DateTime `json:"create_date"`
	DueDate     *string           `json:"due_date"`
	Priority    string            `json:"priority"`
	Category    string            `json:"category"`
	Completed   bool              `json:"completed"`
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: nullable(t.Description),
		CreateDate:  response.DateTime(t.CreateDate),
		DueDate:     nullable(t.DueDate),
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		Completed:   t.Completed,
	}
}

type listResp struct {
	Todos  []todoResp `json:"todos"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func newListResp(output todo.ListOutput) listResp {
	todos := make([]todoResp, 0, len(output.Todos))
	for _, t := range output.Todos {
		todos = append(todos, newTodoResp(t))
	}
	return listResp{
		Todos:  todos,
		Total:  output.Total,
		Limit:  output.Limit,
		Offset: output.Offset,
	}
}

// nullable maps empty strings onto JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
