package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusday/internal/cli/formatter"
	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/spf13/cobra"
)

// resolveTaskID accepts a full task id or a unique id prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskEditCmd(app),
		newTaskStatusCmd(app, "start", domain.TaskInProgress, "Mark a task as in progress"),
		newTaskStatusCmd(app, "done", domain.TaskDone, "Mark a task as done"),
		newTaskStatusCmd(app, "block", domain.TaskBlocked, "Mark a task as blocked"),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var description, energyStr, focusStr, deadlineStr string
	var priority, estimate int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.CreateTaskRequest{
				Title:        args[0],
				Description:  description,
				EstimatedMin: estimate,
			}

			if cmd.Flags().Changed("priority") {
				req.Priority = &priority
			}
			if energyStr != "" {
				energy, err := domain.ParseEnergyLevel(strings.ToUpper(energyStr))
				if err != nil {
					return err
				}
				req.Energy = &energy
			}
			if focusStr != "" {
				focus, err := domain.ParseFocusType(strings.ToUpper(focusStr))
				if err != nil {
					return err
				}
				req.Focus = &focus
			}
			if deadlineStr != "" {
				deadline, err := parseDeadline(deadlineStr)
				if err != nil {
					return err
				}
				req.HardDeadline = &deadline
			}

			task, err := app.Tasks.Create(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", task.Title, task.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority 1 (low) to 5 (high)")
	cmd.Flags().StringVar(&energyStr, "energy", "", "Energy requirement: high, medium, low")
	cmd.Flags().StringVar(&focusStr, "focus", "", "Focus type: creative, technical, administrative, social")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes (default 30 when unset)")
	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "Hard deadline: YYYY-MM-DD or RFC3339")

	return cmd
}

func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q (use YYYY-MM-DD or RFC3339)", s)
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, description, energyStr, focusStr, deadlineStr string
	var priority, estimate int
	var clearPriority, clearEnergy, clearFocus, clearDeadline bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an existing task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.UpdateTaskRequest{
				ID:            id,
				ClearPriority: clearPriority,
				ClearEnergy:   clearEnergy,
				ClearFocus:    clearFocus,
				ClearDeadline: clearDeadline,
			}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				req.Description = &description
			}
			if cmd.Flags().Changed("priority") {
				req.Priority = &priority
			}
			if cmd.Flags().Changed("estimate") {
				req.EstimatedMin = &estimate
			}
			if energyStr != "" {
				energy, err := domain.ParseEnergyLevel(strings.ToUpper(energyStr))
				if err != nil {
					return err
				}
				req.Energy = &energy
			}
			if focusStr != "" {
				focus, err := domain.ParseFocusType(strings.ToUpper(focusStr))
				if err != nil {
					return err
				}
				req.Focus = &focus
			}
			if deadlineStr != "" {
				deadline, err := parseDeadline(deadlineStr)
				if err != nil {
					return err
				}
				req.HardDeadline = &deadline
			}

			task, err := app.Tasks.Update(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTask(task, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority 1 (low) to 5 (high)")
	cmd.Flags().StringVar(&energyStr, "energy", "", "Energy requirement: high, medium, low")
	cmd.Flags().StringVar(&focusStr, "focus", "", "Focus type: creative, technical, administrative, social")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")
	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "Hard deadline: YYYY-MM-DD or RFC3339")
	cmd.Flags().BoolVar(&clearPriority, "clear-priority", false, "Unset the priority")
	cmd.Flags().BoolVar(&clearEnergy, "clear-energy", false, "Unset the energy requirement")
	cmd.Flags().BoolVar(&clearFocus, "clear-focus", false, "Unset the focus type")
	cmd.Flags().BoolVar(&clearDeadline, "clear-deadline", false, "Unset the deadline")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskList(tasks, time.Now()))
			return nil
		},
	}
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTask(task, time.Now()))
			return nil
		},
	}
}

func newTaskStatusCmd(app *App, use string, status domain.TaskStatus, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetStatus(ctx, id, status); err != nil {
				return err
			}
			fmt.Printf("Task %s is now %s\n", id[:8], status)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task and its dependency edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted task %s\n", id[:8])
			return nil
		},
	}
}
