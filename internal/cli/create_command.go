package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/services"
)

// CreateCommand handles the create command
type CreateCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCreateCommand creates a new create command handler
func NewCreateCommand(app *App) *CreateCommand {
	return &CreateCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a new task",
		Long: `Create a new task with the given title.

The assignment type decides how --assignees is interpreted:
  individual  the listed emails, as given
  team        the members of --team plus its leader (--assignees ignored)
  delegate    a single lead who then builds the team with 'wt assignees'

Examples:
  wt create "Quarterly report" --as boss@corp.test --type individual --assignees bob@corp.test
  wt create "Close the books" --as boss@corp.test --type team --team finance
  wt create "Organize offsite" --as boss@corp.test --type delegate --assignees lead@corp.test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				handler := NewCreateCommand(r.app)
				draft, err := handler.draftFromFlags(cmd, args[0])
				if err != nil {
					return err
				}
				return handler.Execute(ctx, actor, draft)
			})
		},
	}

	flags := cmd.Flags()
	flags.String("type", "individual", "Assignment type: individual, team or delegate")
	flags.StringSlice("assignees", nil, "Assignee emails (individual) or the delegate lead")
	flags.String("team", "", "Team id (team assignment)")
	flags.String("description", "", "Task description")
	flags.String("priority", "", "Priority: low, medium or high")
	flags.String("due", "", "Due date, YYYY-MM-DD")
	flags.String("category", "", "Task category")
	flags.StringSlice("tags", nil, "Task tags")
	flags.Float64("hours", 0, "Estimated hours")

	return cmd
}

// draftFromFlags assembles the task draft from command flags
func (c *CreateCommand) draftFromFlags(cmd *cobra.Command, title string) (services.TaskDraft, error) {
	flags := cmd.Flags()

	assignmentType, _ := flags.GetString("type")
	assignees, _ := flags.GetStringSlice("assignees")
	teamID, _ := flags.GetString("team")
	description, _ := flags.GetString("description")
	priority, _ := flags.GetString("priority")
	due, _ := flags.GetString("due")
	category, _ := flags.GetString("category")
	tags, _ := flags.GetStringSlice("tags")
	hours, _ := flags.GetFloat64("hours")

	draft := services.TaskDraft{
		Title:          title,
		Description:    description,
		Priority:       domain.Priority(priority),
		AssignmentType: domain.AssignmentType(assignmentType),
		AssigneeEmails: assignees,
		TeamID:         teamID,
		Category:       category,
		Tags:           tags,
		EstimatedHours: hours,
	}

	if due != "" {
		dueDate, err := time.Parse("2006-01-02", due)
		if err != nil {
			return draft, errors.NewInvalidInputError("--due", due, "expected YYYY-MM-DD")
		}
		draft.DueDate = &dueDate
	}

	return draft, nil
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context, actor domain.Actor, draft services.TaskDraft) error {
	task, err := c.app.api.CreateTask(ctx, actor, draft)
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	fmt.Printf("Created task %s: %s\n", task.ID, task.Title)
	fmt.Printf("Assigned to: %s\n", strings.Join(task.Assignees, ", "))
	return nil
}
