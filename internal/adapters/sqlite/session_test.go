package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"datacat/internal/domain"
)

func openTestStore(t *testing.T, path string) *SessionStore {
	t.Helper()

	s, err := OpenSessionStore(path)
	if err != nil {
		t.Fatalf("OpenSessionStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	s := openTestStore(t, path)

	user, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on empty store error = %v", err)
	}
	if user != nil {
		t.Fatalf("Load() on empty store = %+v, want nil", user)
	}

	want := domain.User{Username: "admin", Password: "admin123"}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got, _ := s.Load(ctx); got != nil {
		t.Errorf("Load() after Clear = %+v, want nil", got)
	}
}

func TestSessionStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := OpenSessionStore(path)
	if err != nil {
		t.Fatalf("OpenSessionStore() error = %v", err)
	}
	if err := first.Save(ctx, domain.User{Username: "user", Password: "user123"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second := openTestStore(t, path)
	got, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil || got.Username != "user" {
		t.Errorf("Load() after reopen = %+v", got)
	}

	version, err := second.SchemaVersion()
	if err != nil || version != schemaVersion {
		t.Errorf("SchemaVersion() = %q, %v", version, err)
	}
}

func TestSessionStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "session.db"))

	s.Save(ctx, domain.User{Username: "admin", Password: "admin123"})
	s.Save(ctx, domain.User{Username: "test", Password: "test123"})

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if n != 1 {
		t.Errorf("kv rows = %d, want 1", n)
	}
	got, _ := s.Load(ctx)
	if got == nil || got.Username != "test" {
		t.Errorf("Load() = %+v, want test", got)
	}
}

func TestSessionStore_CorruptMarker(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "session.db"))

	if _, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, 'not json')`, SessionKey); err != nil {
		t.Fatalf("insert error = %v", err)
	}
	if _, err := s.Load(ctx); err == nil {
		t.Error("Load() expected error for corrupt marker")
	}
}

func TestSessionStore_SchemaChangeDropsMarker(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := OpenSessionStore(path)
	if err != nil {
		t.Fatalf("OpenSessionStore() error = %v", err)
	}
	s.Save(ctx, domain.User{Username: "admin", Password: "admin123"})
	s.db.Exec(`UPDATE meta SET value = '0' WHERE key = 'schema_version'`)
	s.Close()

	reopened := openTestStore(t, path)
	if got, _ := reopened.Load(ctx); got != nil {
		t.Errorf("Load() after schema change = %+v, want nil", got)
	}
}

func TestDefaultPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	if got, want := DefaultPath(), filepath.Join(dir, "datacat", "session.db"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
