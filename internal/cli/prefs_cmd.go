package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/focusday/internal/cli/formatter"
	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage scheduling preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsEditCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current scheduling preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Prefs.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPrefs(prefs))
			return nil
		},
	}
}

func newPrefsEditCmd(app *App) *cobra.Command {
	var morningStr, afternoonStr, workStart, workEnd, preferredStr string
	var sessionMin int

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit scheduling preferences",
		Long:  "Edit scheduling preferences interactively, or via flags when the terminal is not interactive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.interactive() && cmd.Flags().NFlag() == 0 {
				return runPrefsForm(ctx, app)
			}

			var req contract.UpdatePrefsRequest
			if morningStr != "" {
				energy, err := domain.ParseEnergyLevel(strings.ToUpper(morningStr))
				if err != nil {
					return err
				}
				req.MorningEnergy = &energy
			}
			if afternoonStr != "" {
				energy, err := domain.ParseEnergyLevel(strings.ToUpper(afternoonStr))
				if err != nil {
					return err
				}
				req.AfternoonEnergy = &energy
			}
			if workStart != "" {
				req.WorkStart = &workStart
			}
			if workEnd != "" {
				req.WorkEnd = &workEnd
			}
			if cmd.Flags().Changed("session") {
				req.FocusSessionMin = &sessionMin
			}
			if cmd.Flags().Changed("preferred-focus") {
				req.SetPreferred = true
				for _, part := range strings.Split(preferredStr, ",") {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					focus, err := domain.ParseFocusType(strings.ToUpper(part))
					if err != nil {
						return err
					}
					req.PreferredFocus = append(req.PreferredFocus, focus)
				}
			}

			prefs, err := app.Prefs.Update(ctx, req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPrefs(prefs))
			return nil
		},
	}

	cmd.Flags().StringVar(&morningStr, "morning", "", "Morning energy: high, medium, low")
	cmd.Flags().StringVar(&afternoonStr, "afternoon", "", "Afternoon energy: high, medium, low")
	cmd.Flags().StringVar(&workStart, "start", "", "Work window start (HH:MM)")
	cmd.Flags().StringVar(&workEnd, "end", "", "Work window end (HH:MM)")
	cmd.Flags().IntVar(&sessionMin, "session", 0, "Focus session length in minutes")
	cmd.Flags().StringVar(&preferredStr, "preferred-focus", "", "Comma-separated focus types (empty clears)")

	return cmd
}

// focusdayHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func focusdayHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func energyOptions() []huh.Option[domain.EnergyLevel] {
	return []huh.Option[domain.EnergyLevel]{
		huh.NewOption("High", domain.EnergyHigh),
		huh.NewOption("Medium", domain.EnergyMedium),
		huh.NewOption("Low", domain.EnergyLow),
	}
}

// runPrefsForm walks through all preferences with a huh form pre-filled from
// the stored profile, then persists the result.
func runPrefsForm(ctx context.Context, app *App) error {
	current, err := app.Prefs.Get(ctx)
	if err != nil {
		return err
	}

	morning := current.MorningEnergy
	afternoon := current.AfternoonEnergy
	workStart := current.WorkStart
	workEnd := current.WorkEnd
	sessionStr := strconv.Itoa(current.FocusSessionMin)
	preferred := append([]domain.FocusType(nil), current.PreferredFocus...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.EnergyLevel]().
				Title("Morning Energy").
				Description("How sharp are you before noon?").
				Options(energyOptions()...).
				Value(&morning),
			huh.NewSelect[domain.EnergyLevel]().
				Title("Afternoon Energy").
				Description("How sharp are you after noon?").
				Options(energyOptions()...).
				Value(&afternoon),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Work Start").
				Description("HH:MM, e.g. 09:00").
				Value(&workStart),
			huh.NewInput().
				Title("Work End").
				Description("HH:MM, e.g. 17:00").
				Value(&workEnd),
			huh.NewInput().
				Title("Focus Session (minutes)").
				Value(&sessionStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number of minutes")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewMultiSelect[domain.FocusType]().
				Title("Preferred Focus Types").
				Options(
					huh.NewOption("Creative", domain.FocusCreative),
					huh.NewOption("Technical", domain.FocusTechnical),
					huh.NewOption("Administrative", domain.FocusAdministrative),
					huh.NewOption("Social", domain.FocusSocial),
				).
				Value(&preferred),
		),
	).WithTheme(focusdayHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	sessionMin, err := strconv.Atoi(strings.TrimSpace(sessionStr))
	if err != nil {
		return fmt.Errorf("invalid session length %q", sessionStr)
	}

	prefs, err := app.Prefs.Update(ctx, contract.UpdatePrefsRequest{
		MorningEnergy:   &morning,
		AfternoonEnergy: &afternoon,
		WorkStart:       &workStart,
		WorkEnd:         &workEnd,
		FocusSessionMin: &sessionMin,
		PreferredFocus:  preferred,
		SetPreferred:    true,
	})
	if err != nil {
		return err
	}

	fmt.Print(formatter.FormatPrefs(prefs))
	return nil
}
