package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status [task-id] [new-status]",
		Short: "Move a task through its workflow",
		Long: `Move a task to a new status. Legal moves are pending to in_progress
and in_progress to completed; a pending task cannot jump straight to
completed. Only assignees, employers and admins may move a task.

Examples:
  wt status 4f1f... in_progress --as bob@corp.test
  wt status 4f1f... completed --as bob@corp.test`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				return NewStatusCommand(r.app).Execute(ctx, actor, args[0], domain.Status(args[1]))
			})
		},
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, actor domain.Actor, id string, next domain.Status) error {
	task, err := c.app.api.TransitionTaskStatus(ctx, actor, id, next)
	if err != nil {
		if c.errorHandler.IsConflictError(err) {
			return c.errorHandler.Handle("transition task (the task changed underneath you, re-check its status)", err)
		}
		return c.errorHandler.Handle("transition task", err)
	}

	fmt.Printf("Task %s is now %s\n", task.ID, task.Status)
	return nil
}
