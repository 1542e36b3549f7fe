package todo

import "github.com/rainerkim/ai-todo-manager/internal/model"

// ParseInput is the input for natural-language todo extraction.
type ParseInput struct {
	RawText string // free-text sentence from the user
}

// ParsedTodo is the validated extraction result. Description and DueDate are
// empty when the model reported them absent; Priority and Category are always
// inside their closed enumerations.
type ParsedTodo struct {
	Title       string
	Description string
	DueDate     string // "YYYY-MM-DD" or "YYYY-MM-DD HH:MM"
	Priority    model.Priority
	Category    model.Category
}

// ParseOutput is the result of the Parse operation.
type ParseOutput struct {
	Todo ParsedTodo
}

// CreateInput is the input for creating a todo.
type CreateInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    model.Priority
	Category    model.Category
}

// ListInput holds optional filters and sorting for listing todos.
type ListInput struct {
	Category  string
	Priority  string
	Completed *bool
	Query     string // free-text match on title/description
	SortBy    string // due_date | create_date | priority
	Order     string // asc | desc
	Limit     int
	Offset    int
}

// UpdateInput is a partial update; empty fields are left untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *string
	Priority    *model.Priority
	Category    *model.Category
	Completed   *bool
}

// --- Outputs ---

type CreateOutput struct {
	Todo model.Todo
}

type ListOutput struct {
	Todos  []model.Todo
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Todo model.Todo
}

type UpdateOutput struct {
	Todo model.Todo
}
