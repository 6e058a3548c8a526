package main

import (
	"fmt"
	"strings"
	"studydesk/internal/calendar"
	"studydesk/internal/views"

	"github.com/spf13/cobra"
)

func (a *app) calendarCmd() *cobra.Command {
	var month string
	var limit int
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month with its tasks and events",
		Long: `Print the six-week grid of a month, Sunday first, followed by the
items on each day of that month. Days outside the month are shown in
parentheses and today is marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			today := a.today()
			ref := today
			if month != "" {
				m, err := calendar.ParseMonth(month)
				if err != nil {
					return err
				}
				ref = m
			}
			g := calendar.MonthGrid(ref, today)
			st := a.store.State()
			days := g.Populate(st.Tasks, st.Events)

			fmt.Fprintf(a.out, "%s\n\n", g.Title())
			tbl := newTable(a.out, calendar.Weekdays[:]...)
			for _, week := range days {
				cols := make([]string, len(week))
				for i, d := range week {
					cols[i] = dayLabel(d)
				}
				tbl.row(cols...)
			}
			if err := tbl.flush(); err != nil {
				return err
			}

			for _, week := range days {
				for _, d := range week {
					if !d.IsCurrentMonth || d.Total() == 0 {
						continue
					}
					shown := d.Visible(limit)
					fmt.Fprintf(a.out, "\n%s (%d items)\n", views.FormatDate(d.Date), d.Total())
					for _, t := range shown.Tasks {
						fmt.Fprintf(a.out, "  %s %s [%s]\n", check(t.Completed), t.Title, t.Priority)
					}
					for _, e := range shown.Events {
						fmt.Fprintf(a.out, "  @ %s %s-%s\n", e.Title, e.StartTime, e.EndTime)
					}
					if shown.Hidden > 0 {
						fmt.Fprintf(a.out, "  +%d more...\n", shown.Hidden)
					}
				}
			}
			fmt.Fprintf(a.out, "\nprev: %s  next: %s\n",
				calendar.PrevMonth(g.First()).Time().Format("2006-01"),
				calendar.NextMonth(g.First()).Time().Format("2006-01"))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to show, YYYY-MM (default current month)")
	cmd.Flags().IntVar(&limit, "limit", calendar.DefaultItemLimit, "Items listed per day before collapsing")
	return cmd
}

func dayLabel(d calendar.Day) string {
	var b strings.Builder
	if d.IsCurrentMonth {
		fmt.Fprintf(&b, "%2d", d.Date.Day)
	} else {
		fmt.Fprintf(&b, "(%d)", d.Date.Day)
	}
	if d.IsToday {
		b.WriteByte('*')
	}
	if d.IsCurrentMonth && d.Total() > 0 {
		fmt.Fprintf(&b, "+%d", d.Total())
	}
	return b.String()
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarise upcoming work and recent results",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			d := views.Summarize(a.store.State(), a.today())
			fmt.Fprintf(a.out, "Tasks completion: %d%% (%d of %d)\n", d.CompletionRate, d.CompletedTasks, d.TotalTasks)
			fmt.Fprintf(a.out, "Upcoming events:  %d\n", len(d.UpcomingEvents))
			fmt.Fprintf(a.out, "Average mark:     %s\n", views.FormatPercent(d.AverageMark))

			fmt.Fprintln(a.out, "\nUpcoming tasks")
			if len(d.UpcomingTasks) == 0 {
				fmt.Fprintln(a.out, "  Nothing due. Add a task to get started!")
			}
			for _, t := range d.UpcomingTasks {
				fmt.Fprintf(a.out, "  %s  due %s [%s]\n", t.Title, views.FormatDate(t.DueDate), t.Priority)
			}

			fmt.Fprintln(a.out, "\nUpcoming events")
			if len(d.UpcomingEvents) == 0 {
				fmt.Fprintln(a.out, "  No events found.")
			}
			for _, e := range d.UpcomingEvents {
				fmt.Fprintf(a.out, "  %s  %s %s-%s\n", e.Title, views.FormatDate(e.Date), e.StartTime, e.EndTime)
			}

			fmt.Fprintln(a.out, "\nRecent marks")
			if len(d.RecentMarks) == 0 {
				fmt.Fprintln(a.out, "  No marks recorded yet.")
			}
			for _, m := range d.RecentMarks {
				fmt.Fprintf(a.out, "  %s %s  %s  %s\n", m.Subject, m.TestName, views.FormatPercent(m.Percentage()), views.FormatDate(m.Date))
			}
			return nil
		},
	}
}
