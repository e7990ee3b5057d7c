package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	EntriesDir    string     `json:"entries_dir"`
	Pattern       string     `json:"pattern"`
	ReadOnly      bool       `json:"read_only"`
	WatcherActive bool       `json:"watcher_active"`
	LastListed    int        `json:"last_listed"`
	LastListedAt  *time.Time `json:"last_listed_at,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Path,
		EntriesDir:    r.dir,
		Pattern:       r.config.Pattern,
		ReadOnly:      r.readOnly,
		WatcherActive: r.watcherActive,
		LastListed:    r.lastListed,
		LastListedAt:  r.lastListedAt,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
