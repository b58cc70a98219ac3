package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/services"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [task-id]",
		Short: "Edit a task's descriptive fields",
		Long: `Edit a task's descriptive fields. Only employers and admins may edit.
Fields not given are left unchanged; the audit history records which
fields changed.

Examples:
  wt update 4f1f... --as boss@corp.test --title "Annual report"
  wt update 4f1f... --as boss@corp.test --priority low --due 2025-09-30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				handler := NewUpdateCommand(r.app)
				patch, err := handler.patchFromFlags(cmd)
				if err != nil {
					return err
				}
				return handler.Execute(ctx, actor, args[0], patch)
			})
		},
	}

	flags := cmd.Flags()
	flags.String("title", "", "New title")
	flags.String("description", "", "New description")
	flags.String("priority", "", "New priority: low, medium or high")
	flags.String("due", "", "New due date, YYYY-MM-DD")
	flags.String("category", "", "New category")
	flags.StringSlice("tags", nil, "New tags (replaces the tag list)")
	flags.Float64("hours", 0, "New estimated hours")

	return cmd
}

// patchFromFlags assembles the field patch from the flags the caller set
func (c *UpdateCommand) patchFromFlags(cmd *cobra.Command) (services.FieldPatch, error) {
	var patch services.FieldPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		patch.Title = &title
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		patch.Description = &description
	}
	if flags.Changed("priority") {
		priority, _ := flags.GetString("priority")
		p := domain.Priority(priority)
		patch.Priority = &p
	}
	if flags.Changed("due") {
		due, _ := flags.GetString("due")
		dueDate, err := time.Parse("2006-01-02", due)
		if err != nil {
			return patch, errors.NewInvalidInputError("--due", due, "expected YYYY-MM-DD")
		}
		patch.DueDate = &dueDate
	}
	if flags.Changed("category") {
		category, _ := flags.GetString("category")
		patch.Category = &category
	}
	if flags.Changed("tags") {
		tags, _ := flags.GetStringSlice("tags")
		patch.Tags = tags
	}
	if flags.Changed("hours") {
		hours, _ := flags.GetFloat64("hours")
		patch.EstimatedHours = &hours
	}

	return patch, nil
}

// Execute runs the update command
func (c *UpdateCommand) Execute(ctx context.Context, actor domain.Actor, id string, patch services.FieldPatch) error {
	task, err := c.app.api.UpdateTaskFields(ctx, actor, id, patch)
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	fmt.Printf("Updated task %s (%s)\n", task.ID, task.Title)
	return nil
}
