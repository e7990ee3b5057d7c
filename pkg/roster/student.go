// Package roster imports student records from CSV into a relational table and
// reports them by house.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// ErrInvalidName is returned for names with fewer than two words.
var ErrInvalidName = errors.New("name needs at least a first and last name")

// Student is a row of the students table. The table is provisioned outside
// this package with exactly these five columns and no key.
type Student struct {
	bun.BaseModel `bun:"table:students"`

	First  string  `bun:"first,notnull"`
	Middle *string `bun:"middle"`
	Last   string  `bun:"last,notnull"`
	House  string  `bun:"house"`
	Birth  int     `bun:"birth"`
}

// SplitName breaks a full name on whitespace. Two words give first and last;
// three give first, middle and last. Longer names keep the first and last
// words and join everything between them, single-spaced, as the middle name.
func SplitName(full string) (first string, middle *string, last string, err error) {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return "", nil, "", fmt.Errorf("%w: %q", ErrInvalidName, full)
	}

	first, last = parts[0], parts[len(parts)-1]
	if inner := parts[1 : len(parts)-1]; len(inner) > 0 {
		m := strings.Join(inner, " ")
		middle = &m
	}
	return first, middle, last, nil
}

// FormatLine renders a student as "First [Middle ]Last, born YYYY".
func FormatLine(s Student) string {
	if s.Middle != nil {
		return fmt.Sprintf("%s %s %s, born %d", s.First, *s.Middle, s.Last, s.Birth)
	}
	return fmt.Sprintf("%s %s, born %d", s.First, s.Last, s.Birth)
}
