package model

import "time"

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when the extractor or a client supplies an
// out-of-domain priority value.
const DefaultPriority = PriorityMedium

// IsValid reports whether p is one of the closed priority set.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Category is the classification bucket of a todo. Values are the Korean
// labels the extraction prompt instructs the model to emit.
type Category string

const (
	CategoryWork     Category = "업무"
	CategoryPersonal Category = "개인"
	CategoryHealth   Category = "건강"
	CategoryStudy    Category = "학습"
)

// DefaultCategory is used when the extractor or a client supplies an
// out-of-domain category value.
const DefaultCategory = CategoryPersonal

// IsValid reports whether c is one of the closed category set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryStudy:
		return true
	}
	return false
}

// Todo is a single task owned by a user.
//
// DueDate keeps the extractor's serialized form: "YYYY-MM-DD" or
// "YYYY-MM-DD HH:MM" (24-hour, no timezone suffix), empty when absent.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string // empty when absent
	CreateDate  time.Time
	DueDate     string
	Priority    Priority
	Category    Category
	Completed   bool
}
