package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/focusday/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage task dependencies",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepRemoveCmd(app),
		newDepListCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <task> <prerequisite>",
		Short: "Make a task depend on a prerequisite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			prereqID, err := resolveTaskID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Tasks.AddDependency(ctx, taskID, prereqID); err != nil {
				return err
			}
			fmt.Printf("Task %s now depends on %s\n", taskID[:8], prereqID[:8])
			return nil
		},
	}
}

func newDepRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task> <prerequisite>",
		Short: "Remove a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			prereqID, err := resolveTaskID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Tasks.RemoveDependency(ctx, taskID, prereqID); err != nil {
				return err
			}
			fmt.Printf("Removed dependency of %s on %s\n", taskID[:8], prereqID[:8])
			return nil
		},
	}
}

func newDepListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all dependency edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			edges, err := app.Tasks.ListDependencies(ctx)
			if err != nil {
				return err
			}
			if len(edges) == 0 {
				fmt.Println(formatter.Dim("No dependencies."))
				return nil
			}

			tasks, err := app.Tasks.List(ctx)
			if err != nil {
				return err
			}
			titles := make(map[string]string, len(tasks))
			for _, t := range tasks {
				titles[t.ID] = t.Title
			}

			for _, e := range edges {
				fmt.Printf("%s %s %s %s\n",
					formatter.Bold(titles[e.TaskID]),
					formatter.Dim("depends on"),
					formatter.Bold(titles[e.DependsOnTaskID]),
					formatter.Dim(fmt.Sprintf("(%s → %s)", e.TaskID[:8], e.DependsOnTaskID[:8])),
				)
			}
			return nil
		},
	}
}
