package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/focusday/internal/cli/formatter"
	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"
)

func newPlanCmd(app *App) *cobra.Command {
	var dateStr, calendarID string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an energy-aware plan for one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parsePlanDate(dateStr, time.Now())
			if err != nil {
				return err
			}

			req := contract.NewPlanRequest(date)
			if cmd.Flags().Changed("calendar") {
				req.CalendarID = calendarID
			}

			resp, err := generatePlan(app, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "today", "Day to plan: today, tomorrow, or YYYY-MM-DD")
	cmd.Flags().StringVar(&calendarID, "calendar", "primary", "Calendar to pull commitments from")

	return cmd
}

// generatePlan runs the plan use case, with an animated spinner when the
// terminal is interactive.
func generatePlan(app *App, req contract.PlanRequest) (*contract.PlanResponse, error) {
	ctx := context.Background()
	if !app.interactive() {
		return app.Plan.Generate(ctx, req)
	}
	return runWithSpinner("Planning your day...", func() (*contract.PlanResponse, error) {
		return app.Plan.Generate(ctx, req)
	})
}

// parsePlanDate accepts an explicit YYYY-MM-DD date or a natural phrase like
// "today" or "next monday", always resolving forward in time.
func parsePlanDate(input string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return t, nil
	}
	t, err := naturaldate.Parse(input, now, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q (use today, tomorrow, or YYYY-MM-DD)", input)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), nil
}
