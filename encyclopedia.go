package encyclopedia

import (
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/encyclopedia/internal/platform"
	"github.com/aretw0/encyclopedia/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring the encyclopedia.
type Option = platform.Option

// WithAutoInit creates the entries directory when missing. Enabled by default.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the entries directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly rejects all writes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithEntriesDir overrides the entries directory name (default "entries").
func WithEntriesDir(name string) Option {
	return platform.WithEntriesDir(name)
}

// WithRand fixes the random source used by PickRandomEntry.
func WithRand(r *rand.Rand) Option {
	return platform.WithRand(r)
}

// --- Factory ---

// New creates a new encyclopedia Service rooted at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes the entry store explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Utils ---

// FindRoot looks upwards from startDir for a directory holding entries/
// or encyclopedia.yaml.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
