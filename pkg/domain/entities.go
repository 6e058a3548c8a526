// Package domain defines the records, value types and persistence contract
// shared by every studydesk layer.
package domain

import (
	"fmt"
	"strings"
)

// Collection names double as persistence keys.
const (
	CollectionTasks  = "tasks"
	CollectionEvents = "events"
	CollectionMarks  = "marks"
)

// Priority ranks a task.
type Priority string

// Supported task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority matches the value preselected on task entry.
const DefaultPriority = PriorityMedium

// ParsePriority validates a priority name, case-insensitively. An empty
// name yields DefaultPriority.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultPriority, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// Rank orders priorities for display: high first. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Record is implemented by every stored entity. WithID returns a copy
// carrying the supplied identifier.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// Task is a to-do item with a due date.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     Date     `json:"dueDate"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
}

// RecordID implements Record.
func (t Task) RecordID() string { return t.ID }

// WithID implements Record.
func (t Task) WithID(id string) Task {
	t.ID = id
	return t
}

// Event is a calendar entry bounded by a start and end time on one day.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        Date      `json:"date"`
	StartTime   TimeOfDay `json:"startTime"`
	EndTime     TimeOfDay `json:"endTime"`
}

// RecordID implements Record.
func (e Event) RecordID() string { return e.ID }

// WithID implements Record.
func (e Event) WithID(id string) Event {
	e.ID = id
	return e
}

// Mark is a single graded test result. MaxScore is expected to be positive.
type Mark struct {
	ID       string  `json:"id"`
	Subject  string  `json:"subject"`
	TestName string  `json:"testName"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
	Date     Date    `json:"date"`
}

// RecordID implements Record.
func (m Mark) RecordID() string { return m.ID }

// WithID implements Record.
func (m Mark) WithID(id string) Mark {
	m.ID = id
	return m
}

// Percentage returns Score relative to MaxScore on a 0-100 scale.
func (m Mark) Percentage() float64 {
	return m.Score / m.MaxScore * 100
}

// State is a read-only view over all three collections.
type State struct {
	Tasks  []Task
	Events []Event
	Marks  []Mark
}
