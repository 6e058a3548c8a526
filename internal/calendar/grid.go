// Package calendar builds the fixed six-week month grid and buckets tasks and
// events onto its days.
package calendar

import (
	"fmt"
	"studydesk/pkg/domain"
	"time"
)

const (
	// WeeksPerGrid is the number of rows in every month grid.
	WeeksPerGrid = 6
	// DaysPerWeek is the number of columns, Sunday first.
	DaysPerWeek = 7
	cellsPerGrid = WeeksPerGrid * DaysPerWeek
)

// Weekdays is the column header, Sunday first.
var Weekdays = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one day of a month grid. Cells outside the displayed month never
// carry IsToday.
type Cell struct {
	Date           domain.Date
	IsCurrentMonth bool
	IsToday        bool
}

// Grid is a month laid out as WeeksPerGrid rows of DaysPerWeek cells.
type Grid struct {
	Year  int
	Month time.Month
	Weeks [][]Cell
}

// MonthGrid lays out the month containing ref. Leading cells repeat the last
// days of the previous month, trailing cells start at day 1 of the next month.
func MonthGrid(ref, today domain.Date) Grid {
	first := domain.NewDate(ref.Year, ref.Month, 1)
	lead := int(first.Weekday())
	daysInMonth := domain.NewDate(ref.Year, ref.Month+1, 0).Day

	cells := make([]Cell, 0, cellsPerGrid)
	for i := lead; i > 0; i-- {
		cells = append(cells, Cell{Date: first.AddDays(-i)})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := domain.NewDate(ref.Year, ref.Month, d)
		cells = append(cells, Cell{Date: date, IsCurrentMonth: true, IsToday: date == today})
	}
	next := domain.NewDate(ref.Year, ref.Month+1, 1)
	for i := 0; len(cells) < cellsPerGrid; i++ {
		cells = append(cells, Cell{Date: next.AddDays(i)})
	}

	weeks := make([][]Cell, 0, WeeksPerGrid)
	for i := 0; i < cellsPerGrid; i += DaysPerWeek {
		weeks = append(weeks, cells[i:i+DaysPerWeek:i+DaysPerWeek])
	}
	return Grid{Year: first.Year, Month: first.Month, Weeks: weeks}
}

// Cells returns the grid in row-major order.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, cellsPerGrid)
	for _, w := range g.Weeks {
		out = append(out, w...)
	}
	return out
}

// Title renders the heading, e.g. "October 2026".
func (g Grid) Title() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// First returns the first day of the displayed month.
func (g Grid) First() domain.Date { return domain.NewDate(g.Year, g.Month, 1) }

// PrevMonth returns the first day of the month before ref.
func PrevMonth(ref domain.Date) domain.Date {
	return domain.NewDate(ref.Year, ref.Month-1, 1)
}

// NextMonth returns the first day of the month after ref.
func NextMonth(ref domain.Date) domain.Date {
	return domain.NewDate(ref.Year, ref.Month+1, 1)
}

// ParseMonth reads a YYYY-MM value and returns the first day of that month.
func ParseMonth(s string) (domain.Date, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	return domain.NewDate(t.Year(), t.Month(), 1), nil
}
