package calendar

import "studydesk/pkg/domain"

// DefaultItemLimit is how many items a day cell shows before collapsing the
// rest into a "+N more" counter.
const DefaultItemLimit = 3

// ItemsOn returns the tasks due on day and the events scheduled on it, in
// their input order.
func ItemsOn(day domain.Date, tasks []domain.Task, events []domain.Event) ([]domain.Task, []domain.Event) {
	var dt []domain.Task
	for _, t := range tasks {
		if t.DueDate == day {
			dt = append(dt, t)
		}
	}
	var de []domain.Event
	for _, e := range events {
		if e.Date == day {
			de = append(de, e)
		}
	}
	return dt, de
}

// Shown is the part of a day's items that fits in its cell.
type Shown struct {
	Tasks  []domain.Task
	Events []domain.Event
	Hidden int
}

// Visible picks what a cell displays. Events reserve room first; tasks take
// whatever remains and are listed before events. limit <= 0 uses
// DefaultItemLimit.
func Visible(tasks []domain.Task, events []domain.Event, limit int) Shown {
	if limit <= 0 {
		limit = DefaultItemLimit
	}
	nt := min(len(tasks), max(0, limit-len(events)))
	ne := min(len(events), limit-nt)
	return Shown{
		Tasks:  tasks[:nt:nt],
		Events: events[:ne:ne],
		Hidden: len(tasks) + len(events) - nt - ne,
	}
}

// Day is a grid cell with the records that fall on it.
type Day struct {
	Cell
	Tasks  []domain.Task
	Events []domain.Event
}

// Total is the number of items on the day.
func (d Day) Total() int { return len(d.Tasks) + len(d.Events) }

// Visible applies Visible to the day's items.
func (d Day) Visible(limit int) Shown { return Visible(d.Tasks, d.Events, limit) }

// Populate attaches tasks and events to every cell of g, week by week.
func (g Grid) Populate(tasks []domain.Task, events []domain.Event) [][]Day {
	byTask := make(map[domain.Date][]domain.Task)
	for _, t := range tasks {
		byTask[t.DueDate] = append(byTask[t.DueDate], t)
	}
	byEvent := make(map[domain.Date][]domain.Event)
	for _, e := range events {
		byEvent[e.Date] = append(byEvent[e.Date], e)
	}
	out := make([][]Day, len(g.Weeks))
	for i, week := range g.Weeks {
		out[i] = make([]Day, len(week))
		for j, c := range week {
			out[i][j] = Day{Cell: c, Tasks: byTask[c.Date], Events: byEvent[c.Date]}
		}
	}
	return out
}
