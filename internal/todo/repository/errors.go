package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert todo")
	ErrFailedToQuery  = errors.New("failed to query todos")
	ErrFailedToUpdate = errors.New("failed to update todo")
	ErrFailedToDelete = errors.New("failed to delete todo")
	ErrNotFound       = errors.New("todo row not found")
)
