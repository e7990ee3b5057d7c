package core_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/aretw0/encyclopedia/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockRepository struct {
	entries map[string]string
}

func NewMockRepository(titles ...string) *MockRepository {
	m := &MockRepository{
		entries: make(map[string]string),
	}
	for _, t := range titles {
		m.entries[t] = "# " + t
	}
	return m
}

func (m *MockRepository) Save(ctx context.Context, e core.Entry) error {
	m.entries[e.Title] = e.Content
	return nil
}

func (m *MockRepository) Get(ctx context.Context, title string) (core.Entry, error) {
	content, ok := m.entries[title]
	if !ok {
		return core.Entry{}, core.ErrNotFound
	}
	return core.Entry{Title: title, Content: content}, nil
}

func (m *MockRepository) List(ctx context.Context) ([]string, error) {
	titles := make([]string, 0, len(m.entries))
	for title := range m.entries {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles, nil
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func TestService_CRUD(t *testing.T) {
	service := core.NewService(NewMockRepository())
	ctx := context.TODO()

	// 1. Save
	if err := service.SaveEntry(ctx, "Go", "content1"); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	// 2. Get
	entry, err := service.GetEntry(ctx, "Go")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if entry.Content != "content1" {
		t.Errorf("expected content 'content1', got '%s'", entry.Content)
	}

	// 3. Overwrite discards prior content
	_ = service.SaveEntry(ctx, "Go", "content2")
	entry, _ = service.GetEntry(ctx, "Go")
	if entry.Content != "content2" {
		t.Errorf("expected content 'content2', got '%s'", entry.Content)
	}

	// 4. List
	_ = service.SaveEntry(ctx, "CSS", "styles")
	titles, err := service.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(titles) != 2 || titles[0] != "CSS" || titles[1] != "Go" {
		t.Errorf("expected [CSS Go], got %v", titles)
	}

	// 5. Missing
	if _, err := service.GetEntry(ctx, "Rust"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SaveEntry_EmptyTitle(t *testing.T) {
	service := core.NewService(NewMockRepository())

	err := service.SaveEntry(context.TODO(), "  ", "content")
	if !errors.Is(err, core.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestService_FindMatches(t *testing.T) {
	service := core.NewService(NewMockRepository("HTML", "CSS", "JavaScript"))

	got, err := service.FindMatches(context.TODO(), "html")
	if err != nil {
		t.Fatalf("FindMatches failed: %v", err)
	}
	if len(got) != 1 || got[0] != "HTML" {
		t.Errorf("expected [HTML], got %v", got)
	}

	got, _ = service.FindMatches(context.TODO(), "s")
	if len(got) != 2 || got[0] != "CSS" || got[1] != "JavaScript" {
		t.Errorf("expected [CSS JavaScript], got %v", got)
	}

	got, _ = service.FindMatches(context.TODO(), "python")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

func TestService_TitleIsAvailable(t *testing.T) {
	service := core.NewService(NewMockRepository("Python"))
	ctx := context.TODO()

	for _, candidate := range []string{"Python", "python", "PYTHON", "pYtHoN"} {
		ok, err := service.TitleIsAvailable(ctx, candidate)
		if err != nil {
			t.Fatalf("TitleIsAvailable failed: %v", err)
		}
		if ok {
			t.Errorf("expected %q to be taken", candidate)
		}
	}

	ok, _ := service.TitleIsAvailable(ctx, "Pythonic")
	if !ok {
		t.Error("expected 'Pythonic' to be available")
	}
}

func TestService_Exists(t *testing.T) {
	service := core.NewService(NewMockRepository("Python"))

	ok, _ := service.Exists(context.TODO(), "Python")
	if !ok {
		t.Error("expected exact title to exist")
	}
	ok, _ = service.Exists(context.TODO(), "python")
	if ok {
		t.Error("existence check must be case-sensitive")
	}
}

func TestService_PickRandomEntry(t *testing.T) {
	t.Run("Never Repeats With Two Or More Entries", func(t *testing.T) {
		service := core.NewService(
			NewMockRepository("CSS", "Go", "HTML"),
			core.WithRand(rand.New(rand.NewPCG(1, 2))),
		)

		last := ""
		for i := 0; i < 200; i++ {
			title, err := service.PickRandomEntry(context.TODO(), last)
			if err != nil {
				t.Fatalf("PickRandomEntry failed: %v", err)
			}
			if title == last {
				t.Fatalf("iteration %d: repeated %q", i, title)
			}
			last = title
		}
	})

	t.Run("Single Entry Returns Itself", func(t *testing.T) {
		service := core.NewService(NewMockRepository("Only"))

		title, err := service.PickRandomEntry(context.TODO(), "Only")
		if err != nil {
			t.Fatalf("PickRandomEntry failed: %v", err)
		}
		if title != "Only" {
			t.Errorf("expected 'Only', got %q", title)
		}
	})

	t.Run("Empty Store", func(t *testing.T) {
		service := core.NewService(NewMockRepository())

		_, err := service.PickRandomEntry(context.TODO(), "")
		if !errors.Is(err, core.ErrEmptyStore) {
			t.Errorf("expected ErrEmptyStore, got %v", err)
		}
	})
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := core.NewService(NewMockRepository())

	_, err := service.Watch(context.TODO(), "*")
	if err == nil {
		t.Fatal("expected error for non-watchable repo")
	}
	if err.Error() != "repository does not support watching" {
		t.Errorf("unexpected error msg: %v", err)
	}
}
