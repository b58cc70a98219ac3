package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
)

// AssigneesCommand handles delegate team management
type AssigneesCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAssigneesCommand creates a new assignees command handler
func NewAssigneesCommand(app *App) *AssigneesCommand {
	return &AssigneesCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newAssigneesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assignees [task-id] [email...]",
		Short: "Replace a delegate task's assignee set",
		Long: `Replace a delegate task's assignee set with the given emails. Only the
delegate lead may do this, the lead must remain in the set, and only
delegate tasks can be re-assembled this way.

Example:
  wt assignees 4f1f... lead@corp.test bob@corp.test carol@corp.test --as lead@corp.test`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				return NewAssigneesCommand(r.app).Execute(ctx, actor, args[0], args[1:])
			})
		},
	}
}

// Execute runs the assignees command
func (c *AssigneesCommand) Execute(ctx context.Context, actor domain.Actor, id string, emails []string) error {
	task, err := c.app.api.ManageTaskTeam(ctx, actor, id, emails)
	if err != nil {
		return c.errorHandler.Handle("manage task team", err)
	}

	fmt.Printf("Task %s assignees: %s\n", task.ID, strings.Join(task.Assignees, ", "))
	return nil
}
