package roster

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, NewStore(db).CreateSchema(context.Background()))
	return db
}

// newProvisionedDB creates the students table by hand, as an operator would.
func newProvisionedDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(context.Background(),
		"CREATE TABLE students (first TEXT, middle TEXT, last TEXT, house TEXT, birth INTEGER)")
	require.NoError(t, err)
	return db
}

func ptr(s string) *string { return &s }

func TestSplitName(t *testing.T) {
	tests := []struct {
		in     string
		first  string
		middle *string
		last   string
		err    bool
	}{
		{in: "Harry Potter", first: "Harry", last: "Potter"},
		{in: "Harry James Potter", first: "Harry", middle: ptr("James"), last: "Potter"},
		{in: "  Luna   Lovegood ", first: "Luna", last: "Lovegood"},
		{in: "Albus Percival Wulfric Brian Dumbledore", first: "Albus", middle: ptr("Percival Wulfric Brian"), last: "Dumbledore"},
		{in: "Dobby", err: true},
		{in: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			first, middle, last, err := SplitName(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.middle, middle)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "Harry James Potter, born 1980",
		FormatLine(Student{First: "Harry", Middle: ptr("James"), Last: "Potter", Birth: 1980}))
	assert.Equal(t, "Hermione Granger, born 1979",
		FormatLine(Student{First: "Hermione", Last: "Granger", Birth: 1979}))
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewStore(db)

	csvData := strings.Join([]string{
		"name,house,birth",
		"Harry Potter,Gryffindor,1980",
		"Harry James Potter,Gryffindor,1980",
		"Dobby,Hufflepuff,1983",
		"Draco Malfoy,Slytherin,not-a-year",
		"Luna Lovegood,Ravenclaw,1981",
	}, "\n")

	res, err := NewImporter(store, nil).Import(ctx, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: 3, Skipped: 2}, res)

	var rows []Student
	require.NoError(t, db.NewSelect().Model(&rows).OrderExpr("rowid ASC").Scan(ctx))
	require.Len(t, rows, 3)

	assert.Equal(t, "Harry", rows[0].First)
	assert.Nil(t, rows[0].Middle)
	assert.Equal(t, "Potter", rows[0].Last)
	assert.Equal(t, "Gryffindor", rows[0].House)
	assert.Equal(t, 1980, rows[0].Birth)

	require.NotNil(t, rows[1].Middle)
	assert.Equal(t, "James", *rows[1].Middle)
}

func TestImport_HeaderErrors(t *testing.T) {
	store := NewStore(newTestDB(t))
	importer := NewImporter(store, nil)

	_, err := importer.Import(context.Background(), strings.NewReader(""))
	assert.Error(t, err)

	_, err = importer.Import(context.Background(), strings.NewReader("name,birth\nHarry Potter,1980\n"))
	assert.ErrorContains(t, err, "house")
}

func TestImport_HeaderOrderAndCase(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	_, err := NewImporter(store, nil).Import(ctx, strings.NewReader("Birth,House,Name\n1981,Ravenclaw,Luna Lovegood\n"))
	require.NoError(t, err)

	students, err := store.ListByHouse(ctx, "Ravenclaw")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Luna Lovegood, born 1981", FormatLine(students[0]))
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	require.NoError(t, store.InsertAll(ctx, []Student{
		{First: "Harry", Middle: ptr("James"), Last: "Potter", House: "Gryffindor", Birth: 1980},
		{First: "Hermione", Last: "Granger", House: "Gryffindor", Birth: 1979},
		{First: "Harry", Middle: ptr("James"), Last: "Potter", House: "Gryffindor", Birth: 1980},
		{First: "Draco", Last: "Malfoy", House: "Slytherin", Birth: 1980},
	}))

	var out bytes.Buffer
	require.NoError(t, Report(ctx, store, "Gryffindor", &out))
	assert.Equal(t, "Hermione Granger, born 1979\nHarry James Potter, born 1980\n", out.String())

	out.Reset()
	require.NoError(t, Report(ctx, store, "Hufflepuff", &out))
	assert.Empty(t, out.String())
}

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	s := &Student{First: "Cho", Last: "Chang", House: "Ravenclaw", Birth: 1979}
	require.NoError(t, store.Insert(ctx, s))

	students, err := store.ListByHouse(ctx, "Ravenclaw")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Cho Chang, born 1979", FormatLine(students[0]))
}

func TestImport_ProvisionedTable(t *testing.T) {
	ctx := context.Background()
	db := newProvisionedDB(t)
	store := NewStore(db)

	csvData := "name,house,birth\nHarry James Potter,Gryffindor,1980\nHermione Granger,Gryffindor,1979\n"
	res, err := NewImporter(store, nil).Import(ctx, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: 2}, res)

	var out bytes.Buffer
	require.NoError(t, Report(ctx, store, "Gryffindor", &out))
	assert.Equal(t, "Hermione Granger, born 1979\nHarry James Potter, born 1980\n", out.String())

	require.NoError(t, store.Insert(ctx, &Student{First: "Neville", Last: "Longbottom", House: "Gryffindor", Birth: 1980}))
	var count int
	require.NoError(t, db.NewSelect().Table("students").ColumnExpr("count(*)").Scan(ctx, &count))
	assert.Equal(t, 3, count)
}
