package store

import (
	"context"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "customers"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "customers", `[{"id":"a"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "customers", `[{"id":"b"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := s.Set(ctx, "jobs", `[]`); err != nil {
		t.Fatalf("set jobs: %v", err)
	}
	v, ok, err := s.Get(ctx, "customers")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"b"}]` {
		t.Fatalf("expected overwritten value, got %s", v)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, key := range []string{"customers", "jobs"} {
		if _, ok, _ := s.Get(ctx, key); ok {
			t.Fatalf("expected %s cleared", key)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := s.Set(context.Background(), "jobs", `[{"id":"j1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	v, ok, err := reopened.Get(context.Background(), "jobs")
	if err != nil || !ok || v != `[{"id":"j1"}]` {
		t.Fatalf("expected persisted jobs, got %q ok=%v err=%v", v, ok, err)
	}
}
