package roster

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Open connects to the SQLite database at dsn (a path or a sqlite3 URI).
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Store reads and writes the students table.
type Store struct {
	db *bun.DB
}

// NewStore wraps db.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// CreateSchema creates the students table if it does not exist.
// Normal runs expect the table to be provisioned already.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*Student)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create students table: %w", err)
	}
	return nil
}

// columns are the students table columns every insert writes.
var columns = []string{"first", "middle", "last", "house", "birth"}

// Insert adds one student.
func (s *Store) Insert(ctx context.Context, student *Student) error {
	if _, err := insertStudent(s.db, student).Exec(ctx); err != nil {
		return fmt.Errorf("insert student %s %s: %w", student.First, student.Last, err)
	}
	return nil
}

// InsertAll adds students in a single transaction.
func (s *Store) InsertAll(ctx context.Context, students []Student) error {
	if len(students) == 0 {
		return nil
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for i := range students {
			if _, err := insertStudent(tx, &students[i]).Exec(ctx); err != nil {
				return fmt.Errorf("insert student %s %s: %w", students[i].First, students[i].Last, err)
			}
		}
		return nil
	})
}

// insertStudent writes only the five table columns and asks for nothing back.
func insertStudent(db bun.IDB, student *Student) *bun.InsertQuery {
	return db.NewInsert().
		Model(student).
		Column(columns...).
		Returning("NULL")
}

// ListByHouse returns the distinct students of house ordered by last then
// first name. Only First, Middle, Last and Birth are populated.
func (s *Store) ListByHouse(ctx context.Context, house string) ([]Student, error) {
	var students []Student
	err := s.db.NewSelect().
		Model(&students).
		Distinct().
		Column("first", "middle", "last", "birth").
		Where("house = ?", house).
		Order("last ASC", "first ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students of %s: %w", house, err)
	}
	return students, nil
}
