package main

import (
	"fmt"
	"slices"
	"studydesk/internal/views"
	"studydesk/pkg/domain"

	"github.com/spf13/cobra"
)

func (a *app) eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}
	cmd.AddCommand(a.eventAddCmd(), a.eventListCmd(), a.eventDeleteCmd())
	return cmd
}

func (a *app) eventAddCmd() *cobra.Command {
	var title, description, date, start, end string
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add an event",
		Example: `  studydesk event add --title "Study group" --date 2026-10-16 --start 14:00 --end 15:30`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := required("title", title)
			if err != nil {
				return err
			}
			d, err := dateOr(date, a.today())
			if err != nil {
				return err
			}
			st, err := domain.ParseTimeOfDay(start)
			if err != nil {
				return err
			}
			et, err := domain.ParseTimeOfDay(end)
			if err != nil {
				return err
			}
			ev, err := a.store.AddEvent(cmd.Context(), domain.Event{
				Title:       t,
				Description: description,
				Date:        d,
				StartTime:   st,
				EndTime:     et,
			})
			if err != nil {
				return fmt.Errorf("add event: %w", err)
			}
			fmt.Fprintf(a.out, "Added event %s: %s on %s %s-%s\n", ev.ID, ev.Title, views.FormatDate(ev.Date), ev.StartTime, ev.EndTime)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Event title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Longer description")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&start, "start", "09:00", "Start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "10:00", "End time HH:MM")
	return cmd
}

func (a *app) eventListCmd() *cobra.Command {
	var upcoming bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events by date",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			events := a.store.Events().List()
			if upcoming {
				today := a.today()
				events = slices.DeleteFunc(events, func(e domain.Event) bool { return e.Date.Before(today) })
			}
			slices.SortStableFunc(events, func(x, y domain.Event) int {
				if c := x.Date.Compare(y.Date); c != 0 {
					return c
				}
				return compareStrings(string(x.StartTime), string(y.StartTime))
			})
			if len(events) == 0 {
				fmt.Fprintln(a.out, "No events found.")
				return nil
			}
			tbl := newTable(a.out, "ID", "DATE", "TIME", "TITLE")
			for _, e := range events {
				tbl.row(e.ID, views.FormatDate(e.Date), fmt.Sprintf("%s-%s", e.StartTime, e.EndTime), truncate(e.Title, 40))
			}
			return tbl.flush()
		},
	}
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only events from today on")
	return cmd
}

func (a *app) eventDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an event",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.store.Events().Get(args[0]); !ok {
				return fmt.Errorf("event %s not found", args[0])
			}
			if err := a.store.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete event: %w", err)
			}
			fmt.Fprintf(a.out, "Deleted event %s\n", args[0])
			return nil
		},
	}
}

func compareStrings(x, y string) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
