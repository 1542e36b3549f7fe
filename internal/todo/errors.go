package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyInput         = errors.New("input text is empty")
	ErrNotConfigured      = errors.New("ai service is not configured")
	ErrUnparsableResponse = errors.New("no parsable JSON object in model response")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrInvalidPayload     = errors.New("invalid payload")
)
