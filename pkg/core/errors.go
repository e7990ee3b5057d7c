package core

import "errors"

// Common errors.
var (
	ErrNotFound     = errors.New("entry not found")
	ErrReadOnly     = errors.New("store is in read-only mode")
	ErrEmptyTitle   = errors.New("entry title cannot be empty")
	ErrInvalidTitle = errors.New("entry title contains a path separator")
	ErrEmptyStore   = errors.New("store has no entries")
)
