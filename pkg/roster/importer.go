package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Header columns the importer reads. Extra columns are ignored.
const (
	ColumnName  = "name"
	ColumnHouse = "house"
	ColumnBirth = "birth"
)

// Result summarises an import run.
type Result struct {
	Inserted int
	Skipped  int
}

// Importer loads CSV rows into a Store.
type Importer struct {
	store  *Store
	logger *slog.Logger
}

// NewImporter creates an Importer. A nil logger discards output.
func NewImporter(store *Store, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Importer{store: store, logger: logger}
}

// Import reads a CSV with a header row naming name, house and birth columns
// and inserts one student per row. Rows with an unusable name or birth year
// are skipped and logged; the rest are inserted in one transaction.
func (i *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	students, skipped, err := i.parse(r)
	if err != nil {
		return Result{}, err
	}
	if err := i.store.InsertAll(ctx, students); err != nil {
		return Result{}, err
	}
	return Result{Inserted: len(students), Skipped: skipped}, nil
}

func (i *Importer) parse(r io.Reader) ([]Student, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("csv is empty")
		}
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}

	cols := map[string]int{}
	for idx, h := range headers {
		cols[strings.ToLower(strings.TrimSpace(h))] = idx
	}
	for _, required := range []string{ColumnName, ColumnHouse, ColumnBirth} {
		if _, ok := cols[required]; !ok {
			return nil, 0, fmt.Errorf("csv missing '%s' column", required)
		}
	}

	var students []Student
	skipped := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read csv line %d: %w", line, err)
		}

		first, middle, last, err := SplitName(row[cols[ColumnName]])
		if err != nil {
			i.logger.Warn("skipping row", "line", line, "error", err)
			skipped++
			continue
		}

		birth, err := strconv.Atoi(strings.TrimSpace(row[cols[ColumnBirth]]))
		if err != nil {
			i.logger.Warn("skipping row", "line", line, "error", fmt.Errorf("invalid birth year %q", row[cols[ColumnBirth]]))
			skipped++
			continue
		}

		students = append(students, Student{
			First:  first,
			Middle: middle,
			Last:   last,
			House:  strings.TrimSpace(row[cols[ColumnHouse]]),
			Birth:  birth,
		})
	}
	return students, skipped, nil
}

// Report writes one formatted line per student of house to w.
func Report(ctx context.Context, store *Store, house string, w io.Writer) error {
	students, err := store.ListByHouse(ctx, house)
	if err != nil {
		return err
	}
	for _, s := range students {
		if _, err := fmt.Fprintln(w, FormatLine(s)); err != nil {
			return err
		}
	}
	return nil
}
