package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"datacat/internal/domain"
	"datacat/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// SessionKey is the kv key holding the authenticated user marker.
const SessionKey = "authUser"

// SessionStore implements ports.SessionStore using SQLite
type SessionStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure SessionStore implements SessionStore
var _ ports.SessionStore = (*SessionStore)(nil)

// OpenSessionStore opens (creating if needed) the store at dbPath. An empty
// path means DefaultPath().
func OpenSessionStore(dbPath string) (*SessionStore, error) {
	if dbPath == "" {
		dbPath = DefaultPath()
	}
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &SessionStore{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}
	return s, nil
}

// DefaultPath returns $XDG_DATA_HOME/datacat/session.db
func DefaultPath() string {
	return filepath.Join(DataDir(), "session.db")
}

// DataDir returns the XDG data directory for datacat.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "datacat")
}

// Path returns the database file path.
func (s *SessionStore) Path() string {
	return s.dbPath
}

// Load returns the persisted user, or nil when there is no session.
func (s *SessionStore) Load(ctx context.Context) (*domain.User, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, SessionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("corrupt session marker: %w", err)
	}
	return &user, nil
}

// Save persists user as the session marker, replacing any previous one.
func (s *SessionStore) Save(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *kvTx) error {
		return tx.put(SessionKey, string(raw))
	})
}

// Clear removes the session marker.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.withTx(ctx, func(tx *kvTx) error {
		return tx.delete(SessionKey)
	})
}

// Close closes the database connection
func (s *SessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SchemaVersion returns the stored schema version.
func (s *SessionStore) SchemaVersion() (string, error) {
	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	return version, err
}

// migrate records the schema version. A store written by a different schema
// drops its kv contents so stale markers are never misread.
func (s *SessionStore) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if version == schemaVersion {
		return nil
	}

	return s.withTx(context.Background(), func(tx *kvTx) error {
		if version != "" {
			if _, err := tx.tx.Exec(`DELETE FROM kv`); err != nil {
				return err
			}
		}
		_, err := tx.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
		return err
	})
}

func (s *SessionStore) withTx(ctx context.Context, fn func(*kvTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&kvTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// kvTx wraps a transaction over the kv table
type kvTx struct {
	tx *sql.Tx
}

func (t *kvTx) put(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (t *kvTx) delete(key string) error {
	_, err := t.tx.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
