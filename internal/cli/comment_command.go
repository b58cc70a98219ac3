package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
)

// CommentCommand handles the comment command
type CommentCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCommentCommand creates a new comment command handler
func NewCommentCommand(app *App) *CommentCommand {
	return &CommentCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newCommentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comment [task-id] [text...]",
		Short: "Add a comment to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				return NewCommentCommand(r.app).Execute(ctx, actor, args[0], strings.Join(args[1:], " "))
			})
		},
	}
}

// Execute runs the comment command
func (c *CommentCommand) Execute(ctx context.Context, actor domain.Actor, id, text string) error {
	comment, err := c.app.api.AddTaskComment(ctx, actor, id, text)
	if err != nil {
		return c.errorHandler.Handle("add comment", err)
	}

	fmt.Printf("Comment #%d added to task %s\n", comment.ID, comment.TaskID)
	return nil
}
