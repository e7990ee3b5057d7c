// Package core holds the encyclopedia domain: entries, the storage contract
// and the service that answers lookups against it.
package core

import "fmt"

// Entry is the central entity of the domain.
// It is a titled unit of Markdown text. The title is the storage key.
type Entry struct {
	Title   string
	Content string
}

// EventType represents the type of change observed in the entry namespace.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to an entry.
type Event struct {
	Type      EventType
	Title     string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Title)
}
