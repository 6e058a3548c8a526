package calendar

import (
	"studydesk/pkg/domain"
	"testing"
	"time"
)

func tasksN(n int, due domain.Date) []domain.Task {
	out := make([]domain.Task, n)
	for i := range out {
		out[i] = domain.Task{ID: string(rune('a' + i)), DueDate: due}
	}
	return out
}

func eventsN(n int, on domain.Date) []domain.Event {
	out := make([]domain.Event, n)
	for i := range out {
		out[i] = domain.Event{ID: string(rune('A' + i)), Date: on}
	}
	return out
}

func TestVisible(t *testing.T) {
	day := domain.NewDate(2026, time.October, 14)
	cases := []struct {
		name                string
		tasks, events       int
		wantT, wantE, wantH int
	}{
		{"empty", 0, 0, 0, 0, 0},
		{"tasks only", 5, 0, 3, 0, 2},
		{"events only", 0, 4, 0, 3, 1},
		{"events reserve room", 2, 2, 1, 2, 1},
		{"events exceed limit", 2, 4, 0, 3, 3},
		{"fits", 1, 2, 1, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Visible(tasksN(tc.tasks, day), eventsN(tc.events, day), DefaultItemLimit)
			if len(s.Tasks) != tc.wantT || len(s.Events) != tc.wantE || s.Hidden != tc.wantH {
				t.Fatalf("got tasks=%d events=%d hidden=%d", len(s.Tasks), len(s.Events), s.Hidden)
			}
			if len(s.Tasks)+len(s.Events)+s.Hidden != tc.tasks+tc.events {
				t.Fatalf("items lost")
			}
		})
	}
	if s := Visible(tasksN(4, day), nil, 0); len(s.Tasks) != DefaultItemLimit {
		t.Fatalf("non-positive limit should use default, got %d", len(s.Tasks))
	}
}

func TestItemsOnMatchesCalendarDay(t *testing.T) {
	day := domain.NewDate(2026, time.October, 14)
	other := day.AddDays(1)
	tasks := []domain.Task{{ID: "1", DueDate: day}, {ID: "2", DueDate: other}, {ID: "3", DueDate: day}}
	events := []domain.Event{{ID: "e1", Date: other}, {ID: "e2", Date: day}}
	dt, de := ItemsOn(day, tasks, events)
	if len(dt) != 2 || dt[0].ID != "1" || dt[1].ID != "3" {
		t.Fatalf("tasks %+v", dt)
	}
	if len(de) != 1 || de[0].ID != "e2" {
		t.Fatalf("events %+v", de)
	}
}

func TestPopulate(t *testing.T) {
	today := domain.NewDate(2026, time.October, 14)
	g := MonthGrid(today, today)
	tasks := []domain.Task{
		{ID: "due", DueDate: today},
		{ID: "lead", DueDate: domain.NewDate(2026, time.September, 28)},
		{ID: "outside", DueDate: domain.NewDate(2027, time.January, 1)},
	}
	events := []domain.Event{{ID: "ev", Date: today}}
	days := g.Populate(tasks, events)
	if len(days) != WeeksPerGrid {
		t.Fatalf("weeks %d", len(days))
	}
	total := 0
	var todayCell Day
	for _, w := range days {
		for _, d := range w {
			total += d.Total()
			if d.IsToday {
				todayCell = d
			}
		}
	}
	if total != 3 {
		t.Fatalf("expected 3 items placed on the grid, got %d", total)
	}
	if len(todayCell.Tasks) != 1 || len(todayCell.Events) != 1 {
		t.Fatalf("today cell %+v", todayCell)
	}
	if s := todayCell.Visible(DefaultItemLimit); s.Hidden != 0 || len(s.Tasks) != 1 {
		t.Fatalf("today visible %+v", s)
	}
	if days[0][1].Tasks[0].ID != "lead" {
		t.Fatalf("leading cell missing its task: %+v", days[0][1])
	}
}
