// Package sqlite persists record collections in a single SQLite table, one
// row per named blob.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/example/community-records/internal/persistence"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	blob       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Storage implements persistence.Adapter on top of a SQLite database file.
type Storage struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if necessary) the database at dsn and ensures the
// collections table exists.
func Open(dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", dsn, err)
	}

	// The adapter is consumed from a single execution context; a second
	// connection would only invite SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return &Storage{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Read returns the blob stored for the collection, or
// persistence.ErrNotFound when the collection has never been written.
func (s *Storage) Read(collection string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT blob FROM collections WHERE name = ?`, collection).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: read %q: %w", collection, err)
	}
	if blob == nil {
		blob = []byte{}
	}
	return blob, nil
}

// Write stores the blob under the collection name, replacing any previous
// payload.
func (s *Storage) Write(collection string, blob []byte) error {
	if blob == nil {
		blob = []byte{}
	}
	_, err := s.db.Exec(
		`INSERT INTO collections (name, blob, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		collection, blob, s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("sqlite: write %q: %w", collection, err)
	}
	return nil
}

// Delete removes the collection row. Deleting an absent collection is a
// no-op.
func (s *Storage) Delete(collection string) error {
	if _, err := s.db.Exec(`DELETE FROM collections WHERE name = ?`, collection); err != nil {
		return fmt.Errorf("sqlite: delete %q: %w", collection, err)
	}
	return nil
}
