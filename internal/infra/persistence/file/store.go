// Package file stores each collection as <dir>/<key>.json. Writes go through a
// temp file and rename so readers never observe a partial payload, and an
// advisory lock file serialises writers across processes.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"studydesk/pkg/domain"
	"time"

	"github.com/gofrs/flock"
)

var _ domain.KV = (*Store)(nil)

const (
	defaultDir    = "./studydesk-data"
	lockName      = ".studydesk.lock"
	lockRetry     = 25 * time.Millisecond
	defaultLockTO = 5 * time.Second
)

// Locker is the subset of *flock.Flock used by the store.
type Locker interface {
	TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	Unlock() error
}

// Store implements domain.KV on a directory.
type Store struct {
	dir         string
	lock        Locker
	lockTimeout time.Duration
}

// Option customises a Store.
type Option func(*Store)

// WithLocker replaces the flock-based lock (tests).
func WithLocker(l Locker) Option { return func(s *Store) { s.lock = l } }

// WithLockTimeout bounds how long Put waits for the lock.
func WithLockTimeout(d time.Duration) Option { return func(s *Store) { s.lockTimeout = d } }

// New returns a store rooted at dir, creating it if needed.
func New(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{dir: dir, lockTimeout: defaultLockTO}
	for _, opt := range opts {
		opt(s)
	}
	if s.lock == nil {
		s.lock = flock.New(filepath.Join(dir, lockName))
	}
	return s, nil
}

// Driver returns the backend identifier.
func (s *Store) Driver() domain.Driver { return domain.DriverFile }

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// sanitizeKey keeps keys flat: no separators, no traversal.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key contains '..'")
	}
	if strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key %q: separators not allowed", key)
	}
	return key, nil
}

func (s *Store) pathFor(key string) (string, error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, k+".json"), nil
}

// Get reads <dir>/<key>.json.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path) // #nosec G304 -- path is confined to s.dir by sanitizeKey
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("key %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Put atomically replaces <dir>/<key>.json while holding the directory lock.
func (s *Store) Put(ctx context.Context, key string, value []byte) (retErr error) {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()
	locked, err := s.lock.TryLockContext(lockCtx, lockRetry)
	if err != nil {
		return fmt.Errorf("lock %s: %w", s.dir, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", s.dir)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil && retErr == nil {
			retErr = fmt.Errorf("unlock %s: %w", s.dir, err)
		}
	}()

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Close is a no-op; the lock is only held for the duration of Put.
func (s *Store) Close() error { return nil }
