package capstore

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists capture sets to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite capture store.
// The path should be a file path (e.g., "./captures.db") or ":memory:"
// for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS capture_sets (
			set_id TEXT PRIMARY KEY,
			timestamp TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create capture_sets table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bindings (
			set_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			group_key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (set_id, kind, group_key)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create bindings table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bindings_set_id
		ON bindings(set_id)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(setID string, b Bindings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO capture_sets (set_id, timestamp) VALUES (?, ?)
		ON CONFLICT(set_id) DO UPDATE SET timestamp = excluded.timestamp
	`, setID, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("save capture set: %w", err)
	}

	// Replace all bindings for the set.
	if _, err := tx.Exec(`DELETE FROM bindings WHERE set_id = ?`, setID); err != nil {
		return fmt.Errorf("clear bindings: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bindings (set_id, kind, group_key, value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare binding insert: %w", err)
	}
	defer stmt.Close()

	for name, value := range b.Named {
		if _, err := stmt.Exec(setID, "name", name, value); err != nil {
			return fmt.Errorf("save named binding: %w", err)
		}
	}
	for index, value := range b.Indexed {
		if _, err := stmt.Exec(setID, "index", strconv.Itoa(index), value); err != nil {
			return fmt.Errorf("save indexed binding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(setID string) (Bindings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Bindings{}, ErrStoreClosed
	}

	var exists int
	err := s.db.QueryRow(`
		SELECT 1 FROM capture_sets WHERE set_id = ?
	`, setID).Scan(&exists)
	if err == sql.ErrNoRows {
		return Bindings{}, ErrNotFound
	}
	if err != nil {
		return Bindings{}, fmt.Errorf("load capture set: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT kind, group_key, value FROM bindings WHERE set_id = ?
	`, setID)
	if err != nil {
		return Bindings{}, fmt.Errorf("load bindings: %w", err)
	}
	defer rows.Close()

	b := Bindings{
		Named:   make(map[string]string),
		Indexed: make(map[int]string),
	}
	for rows.Next() {
		var kind, key, value string
		if err := rows.Scan(&kind, &key, &value); err != nil {
			return Bindings{}, fmt.Errorf("scan binding: %w", err)
		}
		switch kind {
		case "name":
			b.Named[key] = value
		case "index":
			index, err := strconv.Atoi(key)
			if err != nil {
				return Bindings{}, fmt.Errorf("corrupt index binding %q: %w", key, err)
			}
			b.Indexed[index] = value
		}
	}
	if err := rows.Err(); err != nil {
		return Bindings{}, fmt.Errorf("iterate bindings: %w", err)
	}

	return b, nil
}

// List implements Store.
func (s *SQLiteStore) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT s.set_id, s.timestamp, COUNT(b.group_key)
		FROM capture_sets s
		LEFT JOIN bindings b ON b.set_id = s.set_id
		GROUP BY s.set_id
		ORDER BY s.timestamp, s.set_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list capture sets: %w", err)
	}
	defer rows.Close()

	infos := make([]Info, 0)
	for rows.Next() {
		var info Info
		var timestamp string
		if err := rows.Scan(&info.SetID, &timestamp, &info.Groups); err != nil {
			return nil, fmt.Errorf("scan capture set info: %w", err)
		}
		info.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate capture sets: %w", err)
	}

	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(setID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM bindings WHERE set_id = ?`, setID); err != nil {
		return fmt.Errorf("delete bindings: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM capture_sets WHERE set_id = ?`, setID); err != nil {
		return fmt.Errorf("delete capture set: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
