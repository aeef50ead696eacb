// Package sqlite implements storage.Provider on a single SQLite file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kiliankoe/wingscore/internal/storage"
	"github.com/kiliankoe/wingscore/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store is a key-value table in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Provider = (*Store)(nil)

// Open opens the database at path and applies bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

func (s *Store) Get(key string) (string, bool, error) {
	if s.sqlDB == nil {
		return "", false, storage.ErrClosed
	}
	var value string
	err := s.sqlDB.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	if s.sqlDB == nil {
		return storage.ErrClosed
	}
	_, err := s.sqlDB.Exec(`
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) error {
	if s.sqlDB == nil {
		return storage.ErrClosed
	}
	if _, err := s.sqlDB.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
