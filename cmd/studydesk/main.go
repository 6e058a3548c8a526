// Command studydesk tracks tasks, calendar events and academic marks from the
// terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "studydesk"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, time.Now).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer, now func() time.Time) *cobra.Command {
	a := &app{out: stdout, errOut: stderr, now: now}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Personal tasks, calendar and marks",
		Long: `Studydesk keeps three collections: tasks with due dates and priorities,
calendar events with start and end times, and graded test marks.

Every change is written through to the configured storage backend
(file, sqlite, postgres, s3 or memory).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.open(cmd.Context()) },
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.flags.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&a.flags.driver, "driver", "", "Storage driver (memory, sqlite, postgres, file, s3)")
	flags.StringVar(&a.flags.fileDir, "data-dir", "", "Data directory for the file driver")
	flags.StringVar(&a.flags.sqlitePath, "sqlite-path", "", "Database file for the sqlite driver")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	version := &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}

	cmd.AddCommand(
		a.taskCmd(),
		a.eventCmd(),
		a.markCmd(),
		a.calendarCmd(),
		a.dashboardCmd(),
		version,
	)
	return cmd
}
