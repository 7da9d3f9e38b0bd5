// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS relay_requests (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    test_type TEXT NOT NULL,
    status INTEGER NOT NULL,
    essay_length INTEGER NOT NULL DEFAULT 0,
    output TEXT NOT NULL DEFAULT '',
    error TEXT NOT NULL DEFAULT '',
    duration_ms INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_relay_requests_created_at ON relay_requests(created_at);
`

// timeLayout has a fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO relay_requests (id, kind, test_type, status, essay_length, output, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.TestType, rec.Status, rec.EssayLength,
		rec.Output, rec.Error, rec.DurationMs,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// ListRecords returns the most recent records first. limit is clamped to
// [1, MaxListLimit].
func (s *SQLiteStore) ListRecords(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, test_type, status, essay_length, output, error, duration_ms, created_at
		FROM relay_requests
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) GetRecord(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, test_type, status, essay_length, output, error, duration_ms, created_at
		FROM relay_requests
		WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var createdAt string
	if err := sc.Scan(
		&rec.ID, &rec.Kind, &rec.TestType, &rec.Status, &rec.EssayLength,
		&rec.Output, &rec.Error, &rec.DurationMs, &createdAt,
	); err != nil {
		return Record{}, err
	}

	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = t
	return rec, nil
}
