package memory

import (
	"context"
	"errors"
	"studydesk/pkg/domain"
	"testing"
)

func TestStore_MissingKey(t *testing.T) {
	store := New()
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_PutGetOverwrite(t *testing.T) {
	store := New()
	ctx := context.Background()
	if err := store.Put(ctx, "tasks", []byte(`[1]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "tasks", []byte(`[2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Get(ctx, "tasks")
	if err != nil || string(got) != `[2]` {
		t.Fatalf("get: %q %v", got, err)
	}
	got[0] = 'x'
	again, _ := store.Get(ctx, "tasks")
	if string(again) != `[2]` {
		t.Fatalf("Get must return a copy, store now holds %q", again)
	}
	if keys := store.Keys(); len(keys) != 1 || keys[0] != "tasks" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestStore_FailWritesAndDriver(t *testing.T) {
	store := New()
	if store.Driver() != domain.DriverMemory {
		t.Fatalf("expected memory driver")
	}
	quota := errors.New("quota exceeded")
	store.FailWrites(quota)
	if err := store.Put(context.Background(), "k", []byte("v")); !errors.Is(err, quota) {
		t.Fatalf("expected quota error, got %v", err)
	}
	store.FailWrites(nil)
	if err := store.Put(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("put after restore: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
