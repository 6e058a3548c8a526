package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"studydesk/pkg/domain"
	"sync"
)

// Collection is an ordered set of records persisted as one JSON array under
// its name. Every mutation re-encodes and writes the whole array; memory is
// only updated once the write succeeds.
type Collection[T domain.Record[T]] struct {
	name    string
	kv      domain.KV
	ids     IDGenerator
	logger  Logger
	metrics *Metrics

	mu      sync.RWMutex
	items   []T
	version uint64
}

func newCollection[T domain.Record[T]](name string, kv domain.KV, o options) *Collection[T] {
	return &Collection[T]{
		name:    name,
		kv:      kv,
		ids:     o.ids,
		logger:  o.logger,
		metrics: o.metrics,
		items:   []T{},
	}
}

// load replaces the in-memory items with the stored array. A missing key or an
// undecodable payload leaves the collection empty; neither is reported to the caller.
func (c *Collection[T]) load(ctx context.Context) {
	items := []T{}
	data, err := c.kv.Get(ctx, c.name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.logger.Debug("collection not persisted yet", "collection", c.name)
	case err != nil:
		c.logger.Warn("collection read failed, starting empty", "collection", c.name, "error", err)
		c.metrics.loadFallback(c.name)
	default:
		var decoded []T
		if err := json.Unmarshal(data, &decoded); err != nil {
			c.logger.Warn("collection payload malformed, starting empty", "collection", c.name, "error", err)
			c.metrics.loadFallback(c.name)
		} else if decoded != nil {
			items = decoded
		}
	}
	c.mu.Lock()
	c.items = items
	c.version++
	c.mu.Unlock()
	c.metrics.setRecords(c.name, len(items))
}

// Name returns the persistence key.
func (c *Collection[T]) Name() string { return c.name }

// List returns a copy of the records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Get returns the record with id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version increases on every load and committed mutation. Consumers may key
// derived-view caches on it.
func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Add stores rec under a freshly generated id and returns the stored copy.
// Any id already set on rec is ignored.
func (c *Collection[T]) Add(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.ids.NewID()
	for c.indexOf(id) >= 0 {
		id = c.ids.NewID()
	}
	rec = rec.WithID(id)
	next := append(slices.Clone(c.items), rec)
	if err := c.commit(ctx, "add", next); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update replaces the record whose id matches rec. Unknown ids are ignored.
func (c *Collection[T]) Update(ctx context.Context, rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(rec.RecordID())
	if i < 0 {
		c.logger.Debug("update of unknown id ignored", "collection", c.name, "id", rec.RecordID())
		return nil
	}
	next := slices.Clone(c.items)
	next[i] = rec
	return c.commit(ctx, "update", next)
}

// Delete removes the record with id. Unknown ids are ignored.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		c.logger.Debug("delete of unknown id ignored", "collection", c.name, "id", id)
		return nil
	}
	next := slices.Delete(slices.Clone(c.items), i, i+1)
	return c.commit(ctx, "delete", next)
}

// commit persists next and, on success, makes it the current state. Callers hold c.mu.
func (c *Collection[T]) commit(ctx context.Context, op string, next []T) error {
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.kv.Put(ctx, c.name, payload); err != nil {
		c.metrics.persistFailure(c.name)
		c.logger.Error("persist collection failed", "collection", c.name, "op", op, "error", err)
		return fmt.Errorf("persist %s: %w", c.name, err)
	}
	c.items = next
	c.version++
	c.metrics.mutation(c.name, op)
	c.metrics.setRecords(c.name, len(next))
	c.logger.Debug("collection persisted", "collection", c.name, "op", op, "records", len(next))
	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(r T) bool { return r.RecordID() == id })
}
