package core

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// Service handles the business logic for entries.
type Service struct {
	repo Repository
	mu   sync.RWMutex
	rand *rand.Rand
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRand sets the random source used by PickRandomEntry.
func WithRand(r *rand.Rand) ServiceOption {
	return func(s *Service) {
		s.rand = r
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repository returns the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}

// ListEntries returns every title, sorted.
func (s *Service) ListEntries(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

// GetEntry retrieves an entry by its exact title.
func (s *Service) GetEntry(ctx context.Context, title string) (Entry, error) {
	if title == "" {
		return Entry{}, ErrEmptyTitle
	}
	return s.repo.Get(ctx, title)
}

// SaveEntry creates or overwrites an entry. Prior content is discarded.
func (s *Service) SaveEntry(ctx context.Context, title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return s.repo.Save(ctx, Entry{Title: title, Content: content})
}

// Exists reports whether an entry with exactly this title is stored.
func (s *Service) Exists(ctx context.Context, title string) (bool, error) {
	titles, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, t := range titles {
		if t == title {
			return true, nil
		}
	}
	return false, nil
}

// FindMatches returns the titles matching query case-insensitively.
func (s *Service) FindMatches(ctx context.Context, query string) ([]string, error) {
	titles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return MatchTitles(titles, query), nil
}

// TitleIsAvailable reports whether no stored title equals title ignoring case.
func (s *Service) TitleIsAvailable(ctx context.Context, title string) (bool, error) {
	titles, err := s.repo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list entries: %w", err)
	}
	return !TitleTaken(titles, title), nil
}

// PickRandomEntry returns a random title different from excluding whenever
// more than one entry exists. The caller owns excluding; the service keeps no
// memory of previous picks.
func (s *Service) PickRandomEntry(ctx context.Context, excluding string) (string, error) {
	titles, err := s.repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list entries: %w", err)
	}
	return PickTitle(titles, excluding, s.intn)
}

func (s *Service) intn(n int) int {
	if s.rand == nil {
		return rand.IntN(n)
	}
	// *rand.Rand is not safe for concurrent use.
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.IntN(n)
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, fmt.Errorf("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}
