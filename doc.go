// Package encyclopedia is the composition root for a small Markdown wiki.
//
// Entries are plain Markdown files, one per title, stored under
// <root>/entries/<title>.md. The core package owns the domain rules
// (lookup, title availability, random selection) and talks to storage only
// through core.Repository; the default adapter is the local filesystem.
//
// Features:
//
//   - Case-insensitive substring and regular expression title search.
//   - Atomic whole-file writes with last-writer-wins semantics. There is no history.
//   - Random entry selection that never repeats the previous pick when another exists.
//   - File watching through fsnotify for live tooling.
//
// Usage:
//
//	svc, err := encyclopedia.New("./wiki",
//		encyclopedia.WithLogger(logger),
//	)
//
//	err = svc.SaveEntry(ctx, "Python", "# Python\n...")
//
// The web front end lives in pkg/web and the student roster tools in pkg/roster.
package encyclopedia
