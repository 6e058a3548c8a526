package main

import (
	"fmt"
	"studydesk/internal/views"
	"studydesk/pkg/domain"

	"github.com/spf13/cobra"
)

func (a *app) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(a.taskAddCmd(), a.taskListCmd(), a.taskDoneCmd(), a.taskUpdateCmd(), a.taskDeleteCmd())
	return cmd
}

type taskFields struct {
	title       string
	description string
	due         string
	priority    string
}

func (f *taskFields) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Longer description")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Priority: low, medium or high (default medium)")
}

func (a *app) taskAddCmd() *cobra.Command {
	var f taskFields
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `  studydesk task add --title "Essay draft" --due 2026-10-20 --priority high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, err := required("title", f.title)
			if err != nil {
				return err
			}
			due, err := dateOr(f.due, a.today())
			if err != nil {
				return err
			}
			prio, err := domain.ParsePriority(f.priority)
			if err != nil {
				return err
			}
			t, err := a.store.AddTask(cmd.Context(), domain.Task{
				Title:       title,
				Description: f.description,
				DueDate:     due,
				Priority:    prio,
			})
			if err != nil {
				return fmt.Errorf("add task: %w", err)
			}
			fmt.Fprintf(a.out, "Added task %s: %s (due %s)\n", t.ID, t.Title, views.FormatDate(t.DueDate))
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) taskListCmd() *cobra.Command {
	var filter, sort string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks filtered by completion and sorted by due date or priority.

Examples:
  studydesk task list                      # all tasks, earliest due first
  studydesk task list --filter active      # open tasks only
  studydesk task list --sort priority      # high priority first`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			f, err := views.ParseFilter(filter)
			if err != nil {
				return err
			}
			s, err := views.ParseSort(sort)
			if err != nil {
				return err
			}
			tasks := views.TaskList(a.store.Tasks().List(), f, s)
			if len(tasks) == 0 {
				fmt.Fprintln(a.out, views.EmptyMessage(f))
				return nil
			}
			tbl := newTable(a.out, "ID", "DONE", "TITLE", "DUE", "PRIORITY")
			for _, t := range tasks {
				tbl.row(t.ID, check(t.Completed), truncate(t.Title, 40), views.FormatDate(t.DueDate), string(t.Priority))
			}
			return tbl.flush()
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "all, active or completed")
	cmd.Flags().StringVar(&sort, "sort", "date", "date or priority")
	return cmd
}

func (a *app) taskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok, err := a.store.ToggleTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("task %s not found", args[0])
			}
			state := "open"
			if t.Completed {
				state = "completed"
			}
			fmt.Fprintf(a.out, "Task %s marked %s\n", t.ID, state)
			return nil
		},
	}
}

func (a *app) taskUpdateCmd() *cobra.Command {
	var (
		f         taskFields
		completed bool
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := a.store.Tasks().Get(args[0])
			if !ok {
				return fmt.Errorf("task %s not found", args[0])
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				title, err := required("title", f.title)
				if err != nil {
					return err
				}
				t.Title = title
			}
			if flags.Changed("description") {
				t.Description = f.description
			}
			if flags.Changed("due") {
				due, err := domain.ParseDate(f.due)
				if err != nil {
					return err
				}
				t.DueDate = due
			}
			if flags.Changed("priority") {
				prio, err := domain.ParsePriority(f.priority)
				if err != nil {
					return err
				}
				t.Priority = prio
			}
			if flags.Changed("completed") {
				t.Completed = completed
			}
			if err := a.store.UpdateTask(cmd.Context(), t); err != nil {
				return fmt.Errorf("update task: %w", err)
			}
			fmt.Fprintf(a.out, "Updated task %s\n", t.ID)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&completed, "completed", false, "Set completion state")
	return cmd
}

func (a *app) taskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.store.Tasks().Get(args[0]); !ok {
				return fmt.Errorf("task %s not found", args[0])
			}
			if err := a.store.DeleteTask(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete task: %w", err)
			}
			fmt.Fprintf(a.out, "Deleted task %s\n", args[0])
			return nil
		},
	}
}
