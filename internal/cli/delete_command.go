package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task and its history",
		Long: `Permanently delete a task with its history, comments and attachments.
Only employers and admins may delete. This operation cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				return NewDeleteCommand(r.app).Execute(ctx, actor, args[0])
			})
		},
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, actor domain.Actor, id string) error {
	if err := c.app.api.DeleteTask(ctx, actor, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %s\n", id)
	return nil
}
