// Package forms validates the fields submitted by the wiki's HTML forms.
//
// Each form is a plain struct with a Validate method; handlers call it
// directly and turn the result into per-field messages with Errors.
package forms

import (
	"errors"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/aretw0/encyclopedia/pkg/adapters/fs"
)

// Form field names, as posted by the templates.
const (
	FieldLookup     = "lookup"
	FieldTitle      = "newEntryTitle"
	FieldContent    = "newEntryContent"
	FieldEditedPage = "editedPage"
)

// MaxTitleLength bounds entry titles in characters.
const MaxTitleLength = 200

// MaxTitleBytes bounds entry titles in UTF-8 bytes so <title>.md fits in a file name.
const MaxTitleBytes = fs.MaxNameBytes - len(fs.Ext)

// Search is the search bar present on every page.
type Search struct {
	Lookup string
}

// Validate ensures a query was entered.
func (f Search) Validate() error {
	return validation.Errors{
		FieldLookup: validation.Validate(f.Lookup, validation.Required.Error("enter something to search for")),
	}.Filter()
}

// NewPage creates an entry.
type NewPage struct {
	Title   string
	Content string
}

// Validate checks both fields are present and the title maps to a file name.
func (f NewPage) Validate() error {
	return validation.Errors{
		FieldTitle: validation.Validate(f.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, MaxTitleLength),
			validation.By(fileName),
		),
		FieldContent: validation.Validate(f.Content, validation.Required.Error("content is required")),
	}.Filter()
}

// EditPage replaces the content of an existing entry.
type EditPage struct {
	Content string
}

// Validate ensures the edited content is not blank.
func (f EditPage) Validate() error {
	return validation.Errors{
		FieldEditedPage: validation.Validate(f.Content, validation.Required.Error("content is required")),
	}.Filter()
}

// SearchFromRequest reads the search form from a parsed request.
func SearchFromRequest(r *http.Request) Search {
	return Search{Lookup: strings.TrimSpace(r.PostFormValue(FieldLookup))}
}

// NewPageFromRequest reads the creation form from a parsed request.
func NewPageFromRequest(r *http.Request) NewPage {
	return NewPage{
		Title:   strings.TrimSpace(r.PostFormValue(FieldTitle)),
		Content: r.PostFormValue(FieldContent),
	}
}

// EditPageFromRequest reads the edit form from a parsed request.
func EditPageFromRequest(r *http.Request) EditPage {
	return EditPage{Content: r.PostFormValue(FieldEditedPage)}
}

// Errors flattens a validation error into field -> message.
// Errors that are not field errors are reported under the empty key.
func Errors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := map[string]string{}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for field, fe := range fieldErrs {
			if fe != nil {
				out[field] = fe.Error()
			}
		}
		return out
	}
	out[""] = err.Error()
	return out
}

// fileName rejects titles the entry store cannot keep as a single visible file.
func fileName(value any) error {
	s, _ := value.(string)
	switch {
	case strings.ContainsAny(s, `/\`):
		return validation.NewError("validation_title_separator", "title cannot contain / or \\")
	case strings.ContainsRune(s, 0):
		return validation.NewError("validation_title_nul", "title cannot contain a NUL character")
	case s == "." || s == "..":
		return validation.NewError("validation_title_dots", "title cannot be . or ..")
	case strings.HasPrefix(s, fs.TempFilePrefix):
		return validation.NewError("validation_title_reserved", "title cannot start with "+fs.TempFilePrefix)
	case len(s) > MaxTitleBytes:
		return validation.NewError("validation_title_bytes", "title is too long")
	}
	return nil
}
