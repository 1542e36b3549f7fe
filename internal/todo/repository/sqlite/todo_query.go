package sqlite

import (
	"fmt"
	"strings"

	repo "github.com/rainerkim/ai-todo-manager/internal/todo/repository"
)

// buildListWhere assembles the WHERE clause for ListTodos from the
// optional filters. Conditions are ANDed.
func buildListWhere(opt repo.ListTodosOptions) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, opt.Priority)
	}
	if opt.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Query != "" {
		conds = append(conds, "(title LIKE ? OR description LIKE ?)")
		pattern := "%" + opt.Query + "%"
		args = append(args, pattern, pattern)
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// buildUpdateSet assembles the SET clause for UpdateTodo from the non-nil
// fields. Returns an empty clause when nothing is set.
func buildUpdateSet(opt repo.UpdateTodoOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *opt.DueDate)
	}
	if opt.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *opt.Priority)
	}
	if opt.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *opt.Category)
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *opt.Completed)
	}

	return strings.Join(sets, ", "), args
}

// buildListOrder maps the sort input onto a whitelisted ORDER BY clause.
// Column and direction never come from user input verbatim.
func buildListOrder(opt repo.ListTodosOptions) string {
	column := "create_date"
	switch opt.SortBy {
	case "due_date":
		// Empty due dates sort last regardless of direction.
		column = "CASE WHEN due_date = '' THEN 1 ELSE 0 END, due_date"
	case "priority":
		// Rank ascends low to high so the default DESC lists high first.
		column = `CASE priority WHEN 'high' THEN 2 WHEN 'medium' THEN 1 ELSE 0 END`
	case "create_date", "":
	}

	direction := "DESC"
	if strings.EqualFold(opt.Order, "asc") {
		direction = "ASC"
	}

	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}
