package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const dbFile = ".crossfeed/onboarding.db"

// SQLiteStore keeps the tracker record in a single-row key/value table in a
// local SQLite database. Useful when the surrounding tooling already keeps
// its state in SQLite and a stray JSON file is unwelcome.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite-backed store under
// baseDir.
func OpenSQLite(baseDir string) (*SQLiteStore, error) {
	path := filepath.Join(baseDir, dbFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL for concurrent readers while writes are serialized
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLiteStore{conn: conn}, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Load reads the stored record. An absent row yields the default state with
// no error.
func (s *SQLiteStore) Load() (State, error) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM kv WHERE key = ?", StorageKey).Scan(&value)
	if err == sql.ErrNoRows {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read tracker record: %w", err)
	}
	return decode([]byte(value))
}

// Save upserts the record under the well-known key.
func (s *SQLiteStore) Save(st State) error {
	data, err := encode(st)
	if err != nil {
		return fmt.Errorf("encode tracker record: %w", err)
	}
	_, err = s.conn.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		StorageKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("write tracker record: %w", err)
	}
	return nil
}

// Wipe deletes the record row. A missing row is not an error.
func (s *SQLiteStore) Wipe() error {
	if _, err := s.conn.Exec("DELETE FROM kv WHERE key = ?", StorageKey); err != nil {
		return fmt.Errorf("delete tracker record: %w", err)
	}
	return nil
}
