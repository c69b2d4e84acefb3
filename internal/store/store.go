// Package store persists bookmarks per multiplexer session in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Nacho114/harpoon/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
    session    TEXT NOT NULL,
    position   INTEGER NOT NULL,
    tab_name   TEXT NOT NULL,
    pane_title TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (session, position)
);
`

// Store wraps a SQLite database holding saved bookmarks.
type Store struct {
	db *sql.DB
}

// DefaultPath returns $XDG_STATE_HOME/harpoon/state.db, creating the
// directory if needed.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateHome, "harpoon")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

// Open creates or opens the bookmark database at the default path.
func Open() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt creates or opens the bookmark database at path.
func OpenAt(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// WAL mode for safe concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the bookmarks for a session with the given ordered list.
// The replace is transactional so a crash never leaves a partial list.
func (s *Store) Save(session string, bookmarks []model.Bookmark) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM bookmarks WHERE session = ?", session); err != nil {
		return err
	}
	for i, b := range bookmarks {
		_, err := tx.Exec(`
			INSERT INTO bookmarks (session, position, tab_name, pane_title)
			VALUES (?, ?, ?, ?)
		`, session, i, b.TabName, b.PaneTitle)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns the saved bookmarks for a session in their saved order.
// A session with nothing saved yields an empty slice, not an error.
func (s *Store) Load(session string) ([]model.Bookmark, error) {
	rows, err := s.db.Query(`
		SELECT tab_name, pane_title FROM bookmarks
		WHERE session = ? ORDER BY position
	`, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(&b.TabName, &b.PaneTitle); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// Clear drops all bookmarks for a session.
func (s *Store) Clear(session string) error {
	_, err := s.db.Exec("DELETE FROM bookmarks WHERE session = ?", session)
	return err
}
