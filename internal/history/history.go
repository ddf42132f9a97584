// Package history persists a log of completed pip operations.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Operation names as stored in the log.
const (
	OpInstall   = "install"
	OpUpgrade   = "upgrade"
	OpUninstall = "uninstall"
)

// Output excerpts longer than this are truncated before storage.
const maxOutputLen = 4000

// Record is one completed (not rejected) operation.
type Record struct {
	ID        int64
	Operation string
	Package   string
	SourceURL string
	Success   bool
	Output    string
	CreatedAt time.Time
}

// Store represents the history database with separate read/write pools
type Store struct {
	write *sql.DB
	read  *sql.DB
	path  string
}

// New creates a new history store with separate read/write pools
func New(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	// Connection string with pragmas
	connStr := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)

	// Write pool: MUST be 1 connection only
	write, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open write connection: %w", err)
	}
	write.SetMaxOpenConns(1)
	write.SetMaxIdleConns(1)
	write.SetConnMaxIdleTime(time.Minute)
	write.SetConnMaxLifetime(time.Hour)

	read, err := sql.Open("sqlite", connStr)
	if err != nil {
		write.Close()
		return nil, fmt.Errorf("open read connection: %w", err)
	}
	read.SetMaxOpenConns(10)
	read.SetMaxIdleConns(5)
	read.SetConnMaxIdleTime(time.Minute)
	read.SetConnMaxLifetime(time.Hour)

	s := &Store{
		write: write,
		read:  read,
		path:  dbPath,
	}

	if err := s.initSchema(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes both database connections
func (s *Store) Close() error {
	writeErr := s.write.Close()
	readErr := s.read.Close()
	if writeErr != nil {
		return writeErr
	}
	return readErr
}

// initSchema creates the schema if it doesn't exist
func (s *Store) initSchema(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS operations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    operation TEXT NOT NULL,
    package TEXT NOT NULL,
    source_url TEXT,
    success INTEGER NOT NULL,
    output TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_operations_package ON operations(package);
CREATE INDEX IF NOT EXISTS idx_operations_created_at ON operations(created_at);
	`

	_, err := s.write.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Append records a completed operation. The output excerpt is truncated
// so a verbose pip run cannot bloat the database.
func (s *Store) Append(ctx context.Context, rec *Record) error {
	output := rec.Output
	if len(output) > maxOutputLen {
		output = output[:maxOutputLen]
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
INSERT INTO operations (operation, package, source_url, success, output, created_at)
VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := s.write.ExecContext(ctx, query,
		rec.Operation,
		rec.Package,
		rec.SourceURL,
		rec.Success,
		output,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	rec.ID = id

	return nil
}

// Recent retrieves the most recent records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	query := `
SELECT id, operation, package, source_url, success, output, created_at
FROM operations ORDER BY created_at DESC, id DESC LIMIT ?
	`

	rows, err := s.read.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		err := rows.Scan(
			&rec.ID,
			&rec.Operation,
			&rec.Package,
			&rec.SourceURL,
			&rec.Success,
			&rec.Output,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}
