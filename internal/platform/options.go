package platform

import (
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/encyclopedia/pkg/core"
)

// options holds the internal configuration for the encyclopedia service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	autoInit   bool
	mustExist  bool
	readOnly   bool
	entriesDir string
	rand       *rand.Rand
}

// Option defines a functional option for configuring the service.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		autoInit: true,
	}
}

// WithAutoInit creates the entries directory when it is missing. Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist ensures the entries directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithReadOnly rejects every write with core.ErrReadOnly and skips directory creation.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithEntriesDir overrides the directory name, relative to the root, holding entries.
func WithEntriesDir(name string) Option {
	return func(o *options) {
		o.entriesDir = name
	}
}

// WithRand fixes the random source used for random entry selection.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}
