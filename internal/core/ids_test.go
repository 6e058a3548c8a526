package core

import (
	"strconv"
	"studydesk/internal/config"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTimestampIDsMonotonic(t *testing.T) {
	ticks := []int64{1000, 1000, 999, 1005, 1005}
	i := 0
	g := NewTimestampIDs(func() time.Time {
		ms := ticks[i]
		i++
		return time.UnixMilli(ms)
	})
	want := []string{"1000", "1001", "1002", "1005", "1006"}
	for _, w := range want {
		if got := g.NewID(); got != w {
			t.Fatalf("expected %s, got %s", w, got)
		}
	}
}

func TestTimestampIDsUseUnixMillis(t *testing.T) {
	before := time.Now().UnixMilli()
	id := NewTimestampIDs(nil).NewID()
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		t.Fatalf("id %q is not decimal: %v", id, err)
	}
	if n < before || n > time.Now().UnixMilli() {
		t.Fatalf("id %d outside wall clock window", n)
	}
}

func TestIDGeneratorFor(t *testing.T) {
	if _, ok := IDGeneratorFor(config.IDsTimestamp).(*TimestampIDs); !ok {
		t.Fatalf("expected timestamp generator")
	}
	if _, ok := IDGeneratorFor("").(*TimestampIDs); !ok {
		t.Fatalf("expected timestamp generator as default")
	}
	g := IDGeneratorFor(config.IDsUUID)
	a, b := g.NewID(), g.NewID()
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected uuid, got %q: %v", a, err)
	}
	if a == b {
		t.Fatalf("uuid generator repeated %s", a)
	}
}
