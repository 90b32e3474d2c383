// Package datarecording stores simulation records in a SQLite database.
package datarecording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// FileExtension is appended to the database name to form the file name.
const FileExtension = ".sqlite3"

// DataRecorder is a backend that can record and store data
type DataRecorder interface {
	// CreateTable creates a new table whose columns are the fields of
	// sampleEntry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers an entry for a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all tables, sorted.
	ListTables() []string

	// Flush writes all the buffered entries into the database.
	Flush()

	// Close flushes and closes the database.
	Close() error
}

// New creates a DataRecorder that writes to path + ".sqlite3". An empty path
// generates a unique name. Buffered data is flushed when the process exits
// through atexit.
func New(path string) DataRecorder {
	w := &SQLiteWriter{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	w.Init()

	atexit.Register(func() { w.Flush() })

	return w
}

// NewWithDB creates a new DataRecorder with a given database.
func NewWithDB(db *sql.DB) DataRecorder {
	w := &SQLiteWriter{
		DB:        db,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	entries    []any
}

// SQLiteWriter is the writer that writes data into SQLite database
type SQLiteWriter struct {
	*sql.DB

	dbName     string
	tables     map[string]*table
	batchSize  int
	entryCount int
	closed     bool
}

// FileName returns the name of the database file, or an empty string if the
// writer was created over an existing connection.
func (t *SQLiteWriter) FileName() string {
	if t.dbName == "" {
		return ""
	}

	return t.dbName + FileExtension
}

// Init establishes a connection to the database.
func (t *SQLiteWriter) Init() {
	if t.dbName == "" {
		t.dbName = "dramkit_recording_" + xid.New().String()
	}

	filename := t.FileName()

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	t.DB = db
}

// columnType returns the SQLite type that stores values of the given kind.
// Unsigned 64-bit values are stored as INTEGER holding the same bits, so
// values of 2^63 and above read back as negative int64.
func columnType(kind reflect.Kind) (string, bool) {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		return "INTEGER", true
	case reflect.Float32, reflect.Float64:
		return "REAL", true
	case reflect.String:
		return "TEXT", true
	default:
		return "", false
	}
}

// columnValue converts a field into a value the SQLite driver accepts.
func columnValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint64:
		return int64(v.Uint())
	default:
		return v.Interface()
	}
}

// columns returns the column definitions of a table holding entries like
// sampleEntry.
func columns(sampleEntry any) ([]string, error) {
	types := reflect.TypeOf(sampleEntry)
	if types == nil || types.Kind() != reflect.Struct {
		return nil, errors.New("entry must be a struct")
	}

	names := structs.Names(sampleEntry)
	if len(names) != types.NumField() {
		return nil, fmt.Errorf("%s has unexported fields", types)
	}

	defs := make([]string, 0, len(names))

	for i, name := range names {
		field := types.Field(i)

		sqlType, ok := columnType(field.Type.Kind())
		if !ok {
			return nil, fmt.Errorf("field %s of type %s cannot be recorded",
				field.Name, field.Type)
		}

		defs = append(defs, name+" "+sqlType)
	}

	return defs, nil
}

// CreateTable creates a table with one column per field of sampleEntry.
func (t *SQLiteWriter) CreateTable(tableName string, sampleEntry any) {
	defs, err := columns(sampleEntry)
	if err != nil {
		panic(err)
	}

	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + strings.Join(defs, ", \n\t") + "\n" + `);`
	t.mustExecute(createTableSQL)

	t.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

// InsertData buffers entry. The buffer is flushed once it holds batchSize
// entries.
func (t *SQLiteWriter) InsertData(tableName string, entry any) {
	table, exists := t.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != table.structType {
		panic(fmt.Sprintf("entry of type %T does not match table %s",
			entry, tableName))
	}

	table.entries = append(table.entries, entry)

	t.entryCount++
	if t.entryCount >= t.batchSize {
		t.Flush()
	}
}

// ListTables returns the names of the tables created so far.
func (t *SQLiteWriter) ListTables() []string {
	tables := make([]string, 0, len(t.tables))
	for table := range t.tables {
		tables = append(tables, table)
	}

	sort.Strings(tables)

	return tables
}

// Flush writes the buffered entries in a single transaction. A failed
// insert rolls the whole batch back before panicking.
func (t *SQLiteWriter) Flush() {
	if t.entryCount == 0 || t.closed {
		return
	}

	if err := t.flushTables(); err != nil {
		panic(err)
	}

	t.entryCount = 0
}

func (t *SQLiteWriter) flushTables() error {
	tx, err := t.Begin()
	if err != nil {
		return err
	}

	for tableName, table := range t.tables {
		if len(table.entries) == 0 {
			continue
		}

		err = t.insertEntries(tx, tableName, table.entries)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("flushing %s: %w", tableName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	for _, table := range t.tables {
		table.entries = nil
	}

	return nil
}

func (t *SQLiteWriter) insertEntries(
	tx *sql.Tx,
	tableName string,
	entries []any,
) error {
	placeholders := strings.TrimSuffix(
		strings.Repeat("?, ", reflect.TypeOf(entries[0]).NumField()), ", ")
	sqlStr := "INSERT INTO " + tableName + " VALUES (" + placeholders + ")"

	stmt, err := tx.Prepare(sqlStr)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, entry := range entries {
		values := reflect.ValueOf(entry)
		v := make([]any, values.NumField())

		for i := range v {
			v[i] = columnValue(values.Field(i))
		}

		if _, err := stmt.Exec(v...); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes the buffered entries and closes the database.
func (t *SQLiteWriter) Close() error {
	if t.closed {
		return nil
	}

	t.Flush()
	t.closed = true

	return t.DB.Close()
}

func (t *SQLiteWriter) mustExecute(query string) sql.Result {
	res, err := t.Exec(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}
