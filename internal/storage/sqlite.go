// Package storage provides SQLite-based persistence for the surface
// session journal. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/surface"
)

// ErrNotFound is returned when a session ID does not exist.
var ErrNotFound = errors.New("storage: session not found")

const timeLayout = time.RFC3339Nano

// Store manages the SQLite database connection for the session journal.
// It implements surface.Journal.
type Store struct {
	db *sql.DB
}

var _ surface.Journal = (*Store)(nil)

// SessionEntry is one recorded attach attempt.
type SessionEntry struct {
	ID            int64
	OS            string
	Platform      ghostty.PlatformTag
	Handle        uint64
	Scale         float64
	AttachedAt    time.Time
	DetachedAt    time.Time // zero while attached, or if the process died
	KeysForwarded int
	KeysConsumed  int
	TextBytes     int
	Error         string // set when the attach failed
}

// Failed reports whether the attach never produced a surface.
func (e SessionEntry) Failed() bool { return e.Error != "" }

// Duration returns how long the surface lived, or 0 if it is still open.
func (e SessionEntry) Duration() time.Duration {
	if e.DetachedAt.IsZero() {
		return 0
	}
	return e.DetachedAt.Sub(e.AttachedAt)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			os TEXT NOT NULL,
			platform INTEGER NOT NULL DEFAULT 0,
			handle INTEGER NOT NULL DEFAULT 0,
			scale REAL NOT NULL DEFAULT 1,
			attached_at TEXT NOT NULL,
			detached_at TEXT,
			keys_forwarded INTEGER NOT NULL DEFAULT 0,
			keys_consumed INTEGER NOT NULL DEFAULT 0,
			text_bytes INTEGER NOT NULL DEFAULT 0,
			error TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_attached_at ON sessions(attached_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SurfaceAttached records an attach attempt and returns its ID. Failed
// attempts are recorded too, with their error.
func (s *Store) SurfaceAttached(sess surface.Session) (int64, error) {
	var errText sql.NullString
	if sess.Err != nil {
		errText = sql.NullString{String: sess.Err.Error(), Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (os, platform, handle, scale, attached_at, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.OS,
		int64(sess.Platform),
		int64(sess.Handle),
		sess.Scale,
		sess.AttachedAt.UTC().Format(timeLayout),
		errText,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SurfaceDetached closes a session with its input counters.
func (s *Store) SurfaceDetached(id int64, stats surface.Stats) error {
	res, err := s.db.Exec(
		`UPDATE sessions
		 SET detached_at = ?, keys_forwarded = ?, keys_consumed = ?, text_bytes = ?
		 WHERE id = ?`,
		stats.DetachedAt.UTC().Format(timeLayout),
		stats.KeysForwarded,
		stats.KeysConsumed,
		stats.TextBytes,
		id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot close session %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot close session %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

const sessionColumns = `id, os, platform, handle, scale, attached_at, detached_at,
	keys_forwarded, keys_consumed, text_bytes, error`

// RecentSessions retrieves the latest N sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY attached_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SessionByID retrieves one session.
func (s *Store) SessionByID(id int64) (SessionEntry, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	e, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionEntry{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, err
}

// CountSessions returns the number of recorded sessions.
func (s *Store) CountSessions() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return n, nil
}

// ClearSessions deletes all sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(r scanner) (SessionEntry, error) {
	var e SessionEntry
	var platform, handle int64
	var attachedAt string
	var detachedAt, errText sql.NullString

	err := r.Scan(&e.ID, &e.OS, &platform, &handle, &e.Scale, &attachedAt, &detachedAt,
		&e.KeysForwarded, &e.KeysConsumed, &e.TextBytes, &errText)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	e.Platform = ghostty.PlatformTag(platform)
	e.Handle = uint64(handle)
	e.AttachedAt = parseTime(attachedAt)
	if detachedAt.Valid {
		e.DetachedAt = parseTime(detachedAt.String)
	}
	e.Error = errText.String
	return e, nil
}

func parseTime(v string) time.Time {
	if t, err := time.Parse(timeLayout, v); err == nil {
		return t
	}
	return time.Time{}
}
