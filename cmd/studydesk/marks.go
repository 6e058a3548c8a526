package main

import (
	"fmt"
	"studydesk/internal/marks"
	"studydesk/internal/views"
	"studydesk/pkg/domain"

	"github.com/spf13/cobra"
)

func (a *app) markCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Record and review test marks",
	}
	cmd.AddCommand(a.markAddCmd(), a.markListCmd(), a.markStatsCmd(), a.markDeleteCmd())
	return cmd
}

func (a *app) markAddCmd() *cobra.Command {
	var (
		subject, testName, date string
		score, maxScore         float64
	)
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Record a mark",
		Example: `  studydesk mark add --subject Math --test "Midterm" --score 42 --max 50`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, err := required("subject", subject)
			if err != nil {
				return err
			}
			name, err := required("test", testName)
			if err != nil {
				return err
			}
			if score < 0 {
				return fmt.Errorf("--score must be at least 0")
			}
			if maxScore < 1 {
				return fmt.Errorf("--max must be at least 1")
			}
			d, err := dateOr(date, a.today())
			if err != nil {
				return err
			}
			m, err := a.store.AddMark(cmd.Context(), domain.Mark{
				Subject:  sub,
				TestName: name,
				Score:    score,
				MaxScore: maxScore,
				Date:     d,
			})
			if err != nil {
				return fmt.Errorf("add mark: %w", err)
			}
			p := m.Percentage()
			fmt.Fprintf(a.out, "Added mark %s: %s %s %s (%s)\n", m.ID, m.Subject, m.TestName, views.FormatPercent(p), marks.Grade(p))
			return nil
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject")
	cmd.Flags().StringVar(&testName, "test", "", "Test name")
	cmd.Flags().Float64Var(&score, "score", 0, "Score obtained")
	cmd.Flags().Float64Var(&maxScore, "max", 100, "Maximum score")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")
	return cmd
}

func (a *app) markListCmd() *cobra.Command {
	var field, order, subject string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marks",
		Long: `List marks, newest first by default.

Examples:
  studydesk mark list --sort score            # best percentage first
  studydesk mark list --sort subject --order asc
  studydesk mark list --subject Math`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			f, err := marks.ParseField(field)
			if err != nil {
				return err
			}
			o, err := marks.ParseOrder(order)
			if err != nil {
				return err
			}
			ms := marks.Query{Field: f, Order: o, Subject: subject}.Apply(a.store.Marks().List())
			if len(ms) == 0 {
				fmt.Fprintln(a.out, "No marks recorded yet.")
				return nil
			}
			tbl := newTable(a.out, "ID", "DATE", "SUBJECT", "TEST", "SCORE", "PERCENT", "GRADE")
			for _, m := range ms {
				p := m.Percentage()
				tbl.row(m.ID, views.FormatDate(m.Date), m.Subject, truncate(m.TestName, 30),
					fmt.Sprintf("%g/%g", m.Score, m.MaxScore), views.FormatPercent(p), marks.Grade(p))
			}
			return tbl.flush()
		},
	}
	cmd.Flags().StringVar(&field, "sort", "date", "date, subject or score")
	cmd.Flags().StringVar(&order, "order", "desc", "asc or desc")
	cmd.Flags().StringVar(&subject, "subject", "", "Only this subject")
	return cmd
}

func (a *app) markStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-subject performance",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			st := marks.Aggregate(a.store.Marks().List())
			fmt.Fprintf(a.out, "Based on %d recorded marks\n", st.Count)
			if st.Count == 0 {
				fmt.Fprintln(a.out, "No marks yet. Add your first mark!")
				return nil
			}
			fmt.Fprintf(a.out, "Overall average: %s (%s)\n", views.FormatPercent(st.Overall), marks.BandOf(st.Overall))
			fmt.Fprintf(a.out, "Best subject:    %s\n", st.Best)
			fmt.Fprintf(a.out, "Needs work:      %s\n\n", st.Worst)
			tbl := newTable(a.out, "SUBJECT", "AVERAGE", "HIGHEST", "LOWEST", "MARKS")
			for _, s := range st.Subjects {
				tbl.row(s.Subject, views.FormatPercent(s.Average), views.FormatPercent(s.Highest),
					views.FormatPercent(s.Lowest), fmt.Sprint(s.Count))
			}
			if err := tbl.flush(); err != nil {
				return err
			}
			if rep := st.Repeated(); len(rep) > 0 {
				fmt.Fprintln(a.out, "\nTrend")
				for _, s := range rep {
					fmt.Fprintf(a.out, "  %s: %s to %s\n", s.Subject, views.FormatPercent(s.Lowest), views.FormatPercent(s.Highest))
				}
			}
			return nil
		},
	}
}

func (a *app) markDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a mark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.store.Marks().Get(args[0]); !ok {
				return fmt.Errorf("mark %s not found", args[0])
			}
			if err := a.store.DeleteMark(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete mark: %w", err)
			}
			fmt.Fprintf(a.out, "Deleted mark %s\n", args[0])
			return nil
		},
	}
}
