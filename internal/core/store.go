package core

import (
	"context"
	"fmt"
	"studydesk/pkg/domain"
)

type options struct {
	logger  Logger
	metrics *Metrics
	ids     IDGenerator
}

// Option configures a Store.
type Option func(*options)

// WithLogger routes store diagnostics to l.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records mutations and load fallbacks on m.
func WithMetrics(m *Metrics) Option { return func(o *options) { o.metrics = m } }

// WithIDGenerator replaces the default timestamp id generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) {
		if g != nil {
			o.ids = g
		}
	}
}

// Store owns the task, event and mark collections and persists each of them
// under its own key in a domain.KV.
type Store struct {
	kv     domain.KV
	logger Logger

	tasks  *Collection[domain.Task]
	events *Collection[domain.Event]
	marks  *Collection[domain.Mark]
}

// NewStore loads every collection from kv. Missing or unreadable collections
// start empty, so construction itself never fails.
func NewStore(ctx context.Context, kv domain.KV, opts ...Option) *Store {
	o := options{logger: noopLogger{}, ids: NewTimestampIDs(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store{
		kv:     kv,
		logger: o.logger,
		tasks:  newCollection[domain.Task](domain.CollectionTasks, kv, o),
		events: newCollection[domain.Event](domain.CollectionEvents, kv, o),
		marks:  newCollection[domain.Mark](domain.CollectionMarks, kv, o),
	}
	s.tasks.load(ctx)
	s.events.load(ctx)
	s.marks.load(ctx)
	s.logger.Debug("store loaded", "driver", kv.Driver(),
		"tasks", s.tasks.Len(), "events", s.events.Len(), "marks", s.marks.Len())
	return s
}

// Tasks exposes the task collection.
func (s *Store) Tasks() *Collection[domain.Task] { return s.tasks }

// Events exposes the event collection.
func (s *Store) Events() *Collection[domain.Event] { return s.events }

// Marks exposes the mark collection.
func (s *Store) Marks() *Collection[domain.Mark] { return s.marks }

// State returns a snapshot of all three collections.
func (s *Store) State() domain.State {
	return domain.State{
		Tasks:  s.tasks.List(),
		Events: s.events.List(),
		Marks:  s.marks.List(),
	}
}

// Close releases the underlying backend.
func (s *Store) Close() error { return s.kv.Close() }

// AddTask stores a new task and returns it with its assigned id.
func (s *Store) AddTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	return s.tasks.Add(ctx, t)
}

// UpdateTask replaces the task carrying the same id.
func (s *Store) UpdateTask(ctx context.Context, t domain.Task) error {
	return s.tasks.Update(ctx, t)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// ToggleTask flips the completion flag of a task and returns the updated
// record. Unknown ids return false without writing.
func (s *Store) ToggleTask(ctx context.Context, id string) (domain.Task, bool, error) {
	t, ok := s.tasks.Get(id)
	if !ok {
		return domain.Task{}, false, nil
	}
	t.Completed = !t.Completed
	if err := s.tasks.Update(ctx, t); err != nil {
		return domain.Task{}, true, fmt.Errorf("toggle task %s: %w", id, err)
	}
	return t, true, nil
}

// AddEvent stores a new event.
func (s *Store) AddEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	return s.events.Add(ctx, e)
}

// UpdateEvent replaces the event carrying the same id.
func (s *Store) UpdateEvent(ctx context.Context, e domain.Event) error {
	return s.events.Update(ctx, e)
}

// DeleteEvent removes an event.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

// AddMark stores a new mark.
func (s *Store) AddMark(ctx context.Context, m domain.Mark) (domain.Mark, error) {
	return s.marks.Add(ctx, m)
}

// UpdateMark replaces the mark carrying the same id.
func (s *Store) UpdateMark(ctx context.Context, m domain.Mark) error {
	return s.marks.Update(ctx, m)
}

// DeleteMark removes a mark.
func (s *Store) DeleteMark(ctx context.Context, id string) error {
	return s.marks.Delete(ctx, id)
}
