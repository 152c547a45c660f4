package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/focusday/internal/calendar"
	"github.com/alexanderramin/focusday/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar integration",
	}

	cmd.AddCommand(newCalendarTestCmd(app))

	return cmd
}

func newCalendarTestCmd(app *App) *cobra.Command {
	var calendarID string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Fetch today's busy intervals to verify the calendar source",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Calendar == nil {
				fmt.Println(formatter.Dim("No calendar configured. Set [calendar] in the config file or FOCUSDAY_CALENDAR_SOURCE."))
				return nil
			}

			now := time.Now()
			start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			end := start.Add(24 * time.Hour)

			intervals, err := app.Calendar.FetchBusyIntervals(context.Background(), calendarID, start, end)
			if err != nil {
				var fetchErr *calendar.FetchError
				if errors.As(err, &fetchErr) {
					return fmt.Errorf("calendar check failed: %s after %d attempts: %w",
						fetchErr.Category, fetchErr.Attempts, fetchErr.Err)
				}
				return err
			}

			fmt.Printf("Calendar %q reachable: %d busy interval(s) today.\n", calendarID, len(intervals))
			for _, iv := range intervals {
				fmt.Printf("  %s  %s\n",
					formatter.ClockRange(iv.Start, iv.End),
					formatter.Dim(iv.Summary),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "primary", "Calendar to check")

	return cmd
}
