package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
	"work-tracker/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks visible to the acting identity",
		Long: `List the tasks the acting identity may see.

Employers and admins see every task in the organization. A team leader
additionally sees tasks assigned to their team's members. Everyone else
sees tasks they created or are assigned to.

Examples:
  wt list --as bob@corp.test
  wt list --as bob@corp.test --status in_progress
  wt list --as boss@corp.test --overdue`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				status, _ := cmd.Flags().GetString("status")
				overdue, _ := cmd.Flags().GetBool("overdue")

				filter := services.ListFilter{OverdueOnly: overdue}
				if status != "" {
					s := domain.Status(status)
					filter.Status = &s
				}
				return NewListCommand(r.app).Execute(ctx, actor, filter)
			})
		},
	}

	cmd.Flags().String("status", "", "Filter by status: pending, in_progress or completed")
	cmd.Flags().Bool("overdue", false, "Show only overdue tasks")

	return cmd
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, actor domain.Actor, filter services.ListFilter) error {
	tasks, err := c.app.api.ListTasksVisibleTo(ctx, actor, filter)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	now := timeNow().UTC()
	for _, task := range tasks {
		fmt.Println(formatTaskLine(task, now))
	}
	return nil
}

// formatTaskLine renders one task as a single list row
func formatTaskLine(task domain.Task, now time.Time) string {
	line := fmt.Sprintf("%s  [%s]  %-11s  %s", task.ID, task.Priority, task.Status, task.Title)
	if task.IsOverdue(now) {
		line += "  (overdue)"
	}
	if len(task.Assignees) > 0 {
		line += "  -> " + strings.Join(task.Assignees, ", ")
	}
	return line
}
