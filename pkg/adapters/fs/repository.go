package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/encyclopedia/pkg/core"
)

const (
	// DefaultEntriesDir is the directory, relative to the root, holding entry files.
	DefaultEntriesDir = "entries"
	// DefaultPattern selects entry files inside the entries directory.
	DefaultPattern = "*.md"
	// Ext is the extension every entry file carries.
	Ext = ".md"
	// MaxNameBytes is the longest file name most filesystems accept.
	MaxNameBytes = 255
)

// Repository implements core.Repository over a flat directory of Markdown files.
// Each entry lives in <root>/<entries dir>/<title>.md.
type Repository struct {
	Path   string
	dir    string
	config Config

	mu            sync.RWMutex
	readOnly      bool
	watcherActive bool
	lastListed    int
	lastListedAt  *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	EntriesDir   string // e.g. "entries"
	Pattern      string // glob matched against filenames, e.g. "*.md"
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher errors
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.EntriesDir == "" {
		config.EntriesDir = DefaultEntriesDir
	}
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	return &Repository{
		Path:     config.Path,
		dir:      filepath.Join(config.Path, config.EntriesDir),
		config:   config,
		readOnly: config.ReadOnly,
	}
}

// Dir returns the directory entries are stored in.
func (r *Repository) Dir() string {
	return r.dir
}

// Initialize performs the necessary setup for the repository (mkdir).
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist || r.readOnly {
		info, err := os.Stat(r.dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("entries directory does not exist: %s", r.dir)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("entries path is not a directory: %s", r.dir)
		}
		return nil
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create entries directory: %w", err)
	}
	return nil
}

// Save writes the entry to <title>.md, replacing any previous content.
// The write is atomic but there is no locking: concurrent saves of the same
// title resolve as last-writer-wins.
func (r *Repository) Save(ctx context.Context, e core.Entry) error {
	if r.readOnly {
		return core.ErrReadOnly
	}
	if err := validateTitle(e.Title); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := writeFileAtomic(r.filename(e.Title), []byte(e.Content), 0644); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", e.Title, err)
	}

	r.config.Logger.Debug("entry saved", "title", e.Title, "bytes", len(e.Content))
	return nil
}

// Get retrieves an entry by its literal title. Lookup is case-sensitive.
func (r *Repository) Get(ctx context.Context, title string) (core.Entry, error) {
	if err := validateTitle(title); err != nil {
		return core.Entry{}, err
	}

	data, err := os.ReadFile(r.filename(title))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Entry{}, fmt.Errorf("%w: %s", core.ErrNotFound, title)
		}
		return core.Entry{}, fmt.Errorf("failed to read entry %s: %w", title, err)
	}

	return core.Entry{Title: title, Content: string(data)}, nil
}

// List scans the entries directory and returns every title, sorted.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(r.dir), r.config.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	titles := make([]string, 0, len(matches))
	for _, name := range matches {
		if !isEntryFile(name) {
			continue
		}
		titles = append(titles, strings.TrimSuffix(name, Ext))
	}
	slices.Sort(titles)

	now := time.Now()
	r.mu.Lock()
	r.lastListed = len(titles)
	r.lastListedAt = &now
	r.mu.Unlock()

	return titles, nil
}

func (r *Repository) filename(title string) string {
	return filepath.Join(r.dir, title+Ext)
}

// isEntryFile reports whether a directory-relative name is an entry file.
func isEntryFile(name string) bool {
	if strings.ContainsRune(name, '/') {
		return false
	}
	if strings.HasPrefix(name, TempFilePrefix) {
		return false
	}
	return strings.HasSuffix(name, Ext) && name != Ext
}

// validateTitle rejects titles that cannot be mapped to a single file name.
func validateTitle(title string) error {
	if title == "" {
		return core.ErrEmptyTitle
	}
	if strings.ContainsAny(title, `/\`) || strings.ContainsRune(title, 0) || title == "." || title == ".." {
		return fmt.Errorf("%w: %q", core.ErrInvalidTitle, title)
	}
	// Temp names are hidden from List, so such an entry could never be found again.
	if strings.HasPrefix(title, TempFilePrefix) {
		return fmt.Errorf("%w: %q", core.ErrInvalidTitle, title)
	}
	if len(title)+len(Ext) > MaxNameBytes {
		return fmt.Errorf("%w: title is %d bytes", core.ErrInvalidTitle, len(title))
	}
	return nil
}
