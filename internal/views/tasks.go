// Package views derives the read-only presentations shown to users: filtered
// and sorted task lists and the dashboard summary.
package views

import (
	"fmt"
	"slices"
	"studydesk/pkg/domain"
)

// Filter restricts a task list by completion.
type Filter string

// Task filters.
const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Sort orders a task list.
type Sort string

// Task sorts.
const (
	SortDate     Sort = "date"
	SortPriority Sort = "priority"
)

// ParseFilter validates a filter name. Empty selects FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q: want all, active or completed", s)
	}
}

// ParseSort validates a sort name. Empty selects SortDate.
func ParseSort(s string) (Sort, error) {
	switch o := Sort(s); o {
	case "":
		return SortDate, nil
	case SortDate, SortPriority:
		return o, nil
	default:
		return "", fmt.Errorf("unknown sort %q: want date or priority", s)
	}
}

// FilterTasks returns the tasks matching f, in input order.
func FilterTasks(tasks []domain.Task, f Filter) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		switch f {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SortTasks returns a sorted copy: by due date ascending, or by priority
// high to low. Equal keys keep input order.
func SortTasks(tasks []domain.Task, s Sort) []domain.Task {
	out := slices.Clone(tasks)
	if s == SortPriority {
		slices.SortStableFunc(out, func(a, b domain.Task) int { return a.Priority.Rank() - b.Priority.Rank() })
		return out
	}
	slices.SortStableFunc(out, func(a, b domain.Task) int { return a.DueDate.Compare(b.DueDate) })
	return out
}

// TaskList filters then sorts.
func TaskList(tasks []domain.Task, f Filter, s Sort) []domain.Task {
	return SortTasks(FilterTasks(tasks, f), s)
}

// EmptyMessage is shown when TaskList yields nothing for f.
func EmptyMessage(f Filter) string {
	switch f {
	case FilterActive:
		return "No active tasks. Great job!"
	case FilterCompleted:
		return "No completed tasks yet."
	default:
		return "No tasks yet. Add your first task to get started!"
	}
}
