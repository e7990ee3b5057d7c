package encyclopedia_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/encyclopedia"
)

// Example_basic demonstrates how to create an entry store, save an entry and read it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "encyclopedia-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := encyclopedia.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if err := svc.SaveEntry(ctx, "Git", "# Git\n\nGit is a version control tool."); err != nil {
		log.Fatal(err)
	}

	entry, err := svc.GetEntry(ctx, "Git")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found entry: %s\n", entry.Title)
	// Output:
	// Found entry: Git
}

// Example_search shows case-insensitive title matching.
func Example_search() {
	tmpDir, err := os.MkdirTemp("", "encyclopedia-search-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := encyclopedia.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, title := range []string{"CSS", "HTML", "Python"} {
		if err := svc.SaveEntry(ctx, title, "# "+title); err != nil {
			log.Fatal(err)
		}
	}

	matches, err := svc.FindMatches(ctx, "t")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(matches)

	available, err := svc.TitleIsAvailable(ctx, "css")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(available)
	// Output:
	// [HTML Python]
	// false
}
