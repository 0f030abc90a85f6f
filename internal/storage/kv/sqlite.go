package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// SQLiteStore is the default Store driver: a single local database file, the
// durable equivalent of the browser storage the facade was designed around.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and initializes if needed) a SQLite-backed store at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	// Single writer, so one connection avoids SQLITE_BUSY entirely.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize sqlite store schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("error reading key %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value
func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		if isSQLiteFull(err) {
			return ErrStoreFull
		}
		return fmt.Errorf("error writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("error deleting key %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isSQLiteFull reports whether err is a disk-full or quota condition
func isSQLiteFull(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrFull || sqliteErr.Code == sqlite3.ErrTooBig)
}
