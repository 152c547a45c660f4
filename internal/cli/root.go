package cli

import (
	"github.com/alexanderramin/focusday/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan  service.PlanService
	Tasks service.TaskService
	Prefs service.PrefsService

	// Calendar is nil when no calendar source is configured.
	Calendar service.BusyFetcher

	// IsInteractive reports whether stdout is a terminal; it gates the
	// planning spinner and the prefs form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "focusday" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "focusday",
		Short: "Energy-aware daily planner",
	}

	root.AddCommand(
		newPlanCmd(app),
		newTaskCmd(app),
		newDepCmd(app),
		newPrefsCmd(app),
		newCalendarCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
