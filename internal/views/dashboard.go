package views

import (
	"math"
	"slices"
	"studydesk/internal/marks"
	"studydesk/pkg/domain"
)

// DashboardLimit caps each list on the dashboard.
const DashboardLimit = 3

// Dashboard is the landing summary.
type Dashboard struct {
	UpcomingTasks  []domain.Task
	UpcomingEvents []domain.Event
	RecentMarks    []domain.Mark

	CompletedTasks int
	TotalTasks     int
	// CompletionRate is a whole percentage; 0 when there are no tasks.
	CompletionRate int
	// AverageMark is the mean percentage of every mark.
	AverageMark float64
}

// Summarize builds the dashboard for today. Upcoming tasks are the open
// tasks with the earliest due dates; upcoming events are those on or after
// today; recent marks are the newest by date.
func Summarize(st domain.State, today domain.Date) Dashboard {
	open := FilterTasks(st.Tasks, FilterActive)
	tasks := SortTasks(open, SortDate)

	var events []domain.Event
	for _, e := range st.Events {
		if !e.Date.Before(today) {
			events = append(events, e)
		}
	}
	slices.SortStableFunc(events, func(a, b domain.Event) int { return a.Date.Compare(b.Date) })

	recent := marks.Query{Field: marks.FieldDate, Order: marks.Desc}.Apply(st.Marks)

	d := Dashboard{
		UpcomingTasks:  head(tasks, DashboardLimit),
		UpcomingEvents: head(events, DashboardLimit),
		RecentMarks:    head(recent, DashboardLimit),
		TotalTasks:     len(st.Tasks),
		CompletedTasks: len(st.Tasks) - len(open),
		AverageMark:    marks.Aggregate(st.Marks).Overall,
	}
	if d.TotalTasks > 0 {
		d.CompletionRate = int(math.Round(float64(d.CompletedTasks) / float64(d.TotalTasks) * 100))
	}
	return d
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[:n]
	}
	return slices.Clip(s)
}
