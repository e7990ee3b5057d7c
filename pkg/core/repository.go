package core

import "context"

// Repository defines the contract for storing and retrieving entries.
// Implementations keep the core independent of where entries live.
type Repository interface {
	// Save persists an entry. It creates if not exists, or fully overwrites if it does.
	Save(ctx context.Context, e Entry) error
	// Get retrieves an entry by its exact title. Missing entries yield ErrNotFound.
	Get(ctx context.Context, title string) (Entry, error)
	// List returns every title, sorted.
	List(ctx context.Context) ([]string, error)
	// Initialize ensures the underlying storage is ready (e.g., create directories).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report changes.
type Watchable interface {
	// Watch streams entry events until ctx is cancelled. The pattern filters filenames.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
