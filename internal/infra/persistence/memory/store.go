// Package memory provides a process-local key-value store used for tests and
// as the fallback when no durable backend can be opened.
package memory

import (
	"context"
	"fmt"
	"sort"
	"studydesk/pkg/domain"
	"sync"
)

// Compile-time contract assertion.
var _ domain.KV = (*Store)(nil)

// Store keeps values in a map guarded by a RWMutex. Values are copied on the
// way in and out so callers never share backing arrays with the store.
type Store struct {
	mu   sync.RWMutex
	objs map[string][]byte
	// failPut forces Put to fail; see FailWrites.
	failPut error
}

// New returns an empty in-memory store.
func New() *Store { return &Store{objs: make(map[string][]byte)} }

// Driver returns the backend identifier.
func (s *Store) Driver() domain.Driver { return domain.DriverMemory }

// Get returns a copy of the stored value or a wrapped domain.ErrNotFound.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	v, ok := s.objs[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, domain.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Put replaces the value stored under key.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPut != nil {
		return s.failPut
	}
	s.objs[key] = append([]byte(nil), value...)
	return nil
}

// Keys lists stored keys in ascending order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.objs))
	for k := range s.objs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FailWrites makes every subsequent Put return err (nil restores normal
// behaviour). It simulates a full quota in tests.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	s.failPut = err
	s.mu.Unlock()
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
