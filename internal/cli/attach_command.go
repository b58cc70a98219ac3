package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
)

// AttachCommand handles the attach command
type AttachCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAttachCommand creates a new attach command handler
func NewAttachCommand(app *App) *AttachCommand {
	return &AttachCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach [task-id] [name] [url]",
		Short: "Attach a file reference to a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				return NewAttachCommand(r.app).Execute(ctx, actor, args[0], args[1], args[2])
			})
		},
	}
}

// Execute runs the attach command
func (c *AttachCommand) Execute(ctx context.Context, actor domain.Actor, id, name, url string) error {
	attachment, err := c.app.api.AddTaskAttachment(ctx, actor, id, name, url)
	if err != nil {
		return c.errorHandler.Handle("add attachment", err)
	}

	fmt.Printf("Attached %s to task %s\n", attachment.Name, attachment.TaskID)
	return nil
}
