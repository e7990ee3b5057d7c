package platform

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/encyclopedia/pkg/core"
)

type stubRepo struct{ entries map[string]string }

func (s *stubRepo) Initialize(ctx context.Context) error { return nil }
func (s *stubRepo) Save(ctx context.Context, e core.Entry) error {
	s.entries[e.Title] = e.Content
	return nil
}
func (s *stubRepo) Get(ctx context.Context, title string) (core.Entry, error) {
	c, ok := s.entries[title]
	if !ok {
		return core.Entry{}, core.ErrNotFound
	}
	return core.Entry{Title: title, Content: c}, nil
}
func (s *stubRepo) List(ctx context.Context) ([]string, error) {
	var titles []string
	for t := range s.entries {
		titles = append(titles, t)
	}
	return titles, nil
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Entries Dir", func(t *testing.T) {
		root := t.TempDir()
		svc, err := New(root)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "entries")); err != nil {
			t.Fatalf("entries dir not created: %v", err)
		}
		if err := svc.SaveEntry(ctx, "Go", "# Go"); err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	})

	t.Run("Custom Entries Dir", func(t *testing.T) {
		root := t.TempDir()
		if _, err := New(root, WithEntriesDir("pages")); err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "pages")); err != nil {
			t.Fatalf("pages dir not created: %v", err)
		}
	})

	t.Run("Must Exist", func(t *testing.T) {
		root := t.TempDir()
		if _, err := New(root, WithMustExist(true)); err == nil {
			t.Fatal("expected error for missing entries dir")
		}
		if _, err := New(root, WithAutoInit(false)); err == nil {
			t.Fatal("expected error with auto init disabled")
		}
	})

	t.Run("Read Only", func(t *testing.T) {
		root := t.TempDir()
		if err := os.Mkdir(filepath.Join(root, "entries"), 0755); err != nil {
			t.Fatal(err)
		}
		svc, err := New(root, WithReadOnly(true))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := svc.SaveEntry(ctx, "Go", "x"); !errors.Is(err, core.ErrReadOnly) {
			t.Errorf("expected ErrReadOnly, got %v", err)
		}
	})

	t.Run("Injected Repository", func(t *testing.T) {
		repo := &stubRepo{entries: map[string]string{"CSS": "css"}}
		svc, err := New("/nonexistent", WithRepository(repo), WithRand(rand.New(rand.NewPCG(1, 2))))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		title, err := svc.PickRandomEntry(ctx, "")
		if err != nil || title != "CSS" {
			t.Errorf("PickRandomEntry = %q, %v", title, err)
		}
	})
}

func TestInit(t *testing.T) {
	root := t.TempDir()
	repo, err := Init(root)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	titles, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(titles) != 0 {
		t.Errorf("expected empty store, got %v", titles)
	}
}
