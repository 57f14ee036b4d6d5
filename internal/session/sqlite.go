package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists session tokens in a local SQLite file, one row
// per username. INSERT OR REPLACE inside a single-writer connection
// gives the atomic overwrite the Store contract requires.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the session database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	// Session cookies are credentials; keep the file owner-only.
	if err := os.Chmod(path, 0o600); err != nil {
		db.Close()
		return nil, fmt.Errorf("restrict session db perms: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			username   TEXT PRIMARY KEY,
			cookies    TEXT NOT NULL,
			issued_at  INTEGER NOT NULL,
			expires_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate sessions: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load(username string) (*Token, error) {
	var (
		cookieJSON string
		issuedAt   int64
		expiresAt  int64
	)
	err := s.db.QueryRow(
		"SELECT cookies, issued_at, expires_at FROM sessions WHERE username = ?",
		username,
	).Scan(&cookieJSON, &issuedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	tok := &Token{
		IssuedAt:  time.Unix(issuedAt, 0),
		ExpiresAt: time.Unix(expiresAt, 0),
	}
	if err := json.Unmarshal([]byte(cookieJSON), &tok.Cookies); err != nil {
		// Unreadable row is as good as no row; evict it.
		s.Invalidate(username)
		return nil, ErrNotFound
	}
	if !tok.Valid(time.Now()) {
		s.Invalidate(username)
		return nil, ErrNotFound
	}
	return tok, nil
}

func (s *SQLiteStore) Save(username string, token *Token) error {
	if token == nil {
		return errors.New("nil token")
	}
	cookieJSON, err := json.Marshal(token.Cookies)
	if err != nil {
		return fmt.Errorf("encode cookies: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO sessions (username, cookies, issued_at, expires_at) VALUES (?, ?, ?, ?)",
		username, string(cookieJSON), token.IssuedAt.Unix(), token.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Invalidate(username string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
