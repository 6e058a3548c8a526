package core

import (
	"strconv"
	"studydesk/internal/config"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator hands out record identifiers.
type IDGenerator interface {
	NewID() string
}

// TimestampIDs issues decimal Unix-millisecond ids. Ids are strictly
// increasing: a tick that does not advance past the previous id is bumped to
// previous+1, so several adds within one millisecond stay distinct.
type TimestampIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestampIDs returns a generator reading the given clock (time.Now when nil).
func NewTimestampIDs(now func() time.Time) *TimestampIDs {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDs{now: now}
}

// NewID implements IDGenerator.
func (g *TimestampIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}

// UUIDIDs issues random version 4 UUIDs.
type UUIDIDs struct{}

// NewID implements IDGenerator.
func (UUIDIDs) NewID() string { return uuid.NewString() }

// IDGeneratorFor maps a configured strategy name to a generator.
func IDGeneratorFor(strategy string) IDGenerator {
	if strategy == config.IDsUUID {
		return UUIDIDs{}
	}
	return NewTimestampIDs(nil)
}
