package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"studydesk/pkg/domain"
	"testing"
)

func TestSQLiteStorePersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	store, err := NewStore(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	ctx := context.Background()
	if _, err := store.Get(ctx, domain.CollectionTasks); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on fresh db, got %v", err)
	}
	if err := store.Put(ctx, domain.CollectionTasks, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, domain.CollectionTasks, []byte(`[{"id":"2"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	t.Cleanup(func() { _ = reloaded.Close() })
	got, err := reloaded.Get(ctx, domain.CollectionTasks)
	if err != nil || string(got) != `[{"id":"2"}]` {
		t.Fatalf("reloaded payload %q %v", got, err)
	}
	var rows int
	if err := reloaded.DB().QueryRow(`SELECT COUNT(*) FROM state`).Scan(&rows); err != nil || rows != 1 {
		t.Fatalf("expected a single upserted row, got %d %v", rows, err)
	}
	if reloaded.Path() != path || reloaded.Driver() != domain.DriverSQLite {
		t.Fatalf("unexpected path/driver")
	}
}

func TestSQLiteStoreErrorsAfterClose(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	_ = store.Close()
	if err := store.Put(context.Background(), "k", []byte("v")); err == nil {
		t.Fatalf("expected error writing to closed db")
	}
	if _, err := store.Get(context.Background(), "k"); err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected non-NotFound error on closed db, got %v", err)
	}
}
