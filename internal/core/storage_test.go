package core

import (
	"context"
	"os"
	"path/filepath"
	"studydesk/internal/config"
	"studydesk/pkg/domain"
	"testing"
)

type recordingLogger struct {
	noopLogger
	warnings []string
}

func (l *recordingLogger) Warn(msg string, _ ...any) { l.warnings = append(l.warnings, msg) }

// blockedPath returns a path whose parent is a regular file, so nothing can be created under it.
func blockedPath(t *testing.T) string {
	t.Helper()
	parent := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(parent, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return filepath.Join(parent, "data")
}

func TestOpenPersistentStoreDrivers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cases := []struct {
		cfg  config.StorageConfig
		want domain.Driver
	}{
		{config.StorageConfig{Driver: "memory"}, domain.DriverMemory},
		{config.StorageConfig{Driver: "file", FileDir: filepath.Join(dir, "files")}, domain.DriverFile},
		{config.StorageConfig{Driver: "sqlite", SQLitePath: filepath.Join(dir, "db", "studydesk.db")}, domain.DriverSQLite},
	}
	for _, tc := range cases {
		st, err := OpenPersistentStore(ctx, tc.cfg, nil)
		if err != nil {
			t.Fatalf("%s: %v", tc.cfg.Driver, err)
		}
		if st.Driver() != tc.want || st.Fallback || st.Requested != tc.want {
			t.Fatalf("%s: unexpected storage %+v", tc.cfg.Driver, st)
		}
		if err := st.Close(); err != nil {
			t.Fatalf("%s close: %v", tc.cfg.Driver, err)
		}
	}
}

func TestOpenPersistentStoreFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	logger := &recordingLogger{}
	cfg := config.StorageConfig{Driver: "file", FileDir: blockedPath(t), Fallback: true}
	st, err := OpenPersistentStore(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("expected fallback, got %v", err)
	}
	if !st.Fallback || st.Driver() != domain.DriverMemory || st.Requested != domain.DriverFile {
		t.Fatalf("unexpected storage %+v", st)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("expected one warning, got %v", logger.warnings)
	}
	s := NewStore(ctx, st)
	if _, err := s.AddTask(ctx, domain.Task{Title: "ephemeral"}); err != nil {
		t.Fatalf("memory fallback should accept writes: %v", err)
	}
}

func TestOpenPersistentStoreWithoutFallbackFails(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{Driver: "sqlite", SQLitePath: filepath.Join(blockedPath(t), "x.db")}
	if _, err := OpenPersistentStore(ctx, cfg, nil); err == nil {
		t.Fatalf("expected open error")
	}
	if _, err := OpenKV(ctx, config.StorageConfig{Driver: "bogus"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}
