package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/encyclopedia/pkg/core"
)

const watchBuffer = 64

// Watch streams entry changes until ctx is cancelled. The channel is closed
// when the watcher stops. An empty pattern falls back to the configured one.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = r.config.Pattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	known, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.dir, err)
	}

	events := make(chan core.Event, watchBuffer)
	w := newWatchWorker(r, pattern, watcher, events, known)

	r.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(w.handleError))

	return events, nil
}

type watchWorker struct {
	repo    *Repository
	pattern string
	watcher *fsnotify.Watcher
	events  chan core.Event
	known   map[string]bool
}

func newWatchWorker(repo *Repository, pattern string, watcher *fsnotify.Watcher, events chan core.Event, titles []string) *watchWorker {
	known := make(map[string]bool, len(titles))
	for _, t := range titles {
		known[t] = true
	}
	return &watchWorker{
		repo:    repo,
		pattern: pattern,
		watcher: watcher,
		events:  events,
		known:   known,
	}
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := w.translate(event)
			if !ok {
				continue
			}
			select {
			case w.events <- e:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleError(wErr)
		}
	}
}

// translate maps a filesystem event onto an entry event.
// Atomic saves surface as a Create of the final name, so a Create for a title
// already seen is reported as a modification.
func (w *watchWorker) translate(event fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(event.Name)
	if !isEntryFile(name) {
		return core.Event{}, false
	}
	if ok, _ := doublestar.Match(w.pattern, name); !ok {
		return core.Event{}, false
	}
	title := strings.TrimSuffix(name, Ext)

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
		if w.known[title] {
			eType = core.EventModify
		}
		w.known[title] = true
	case event.Has(fsnotify.Write):
		eType = core.EventModify
		w.known[title] = true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
		delete(w.known, title)
	default:
		return core.Event{}, false
	}

	w.repo.config.Logger.Debug("entry event", "type", eType, "title", title)
	return core.Event{Type: eType, Title: title, Timestamp: time.Now().Unix()}, true
}

func (w *watchWorker) handleError(err error) {
	w.repo.config.Logger.Error("watcher error", "error", err)
	if w.repo.config.ErrorHandler != nil {
		w.repo.config.ErrorHandler(err)
	}
}
