package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a task with its history, comments and attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithActor(cmd, func(ctx context.Context, actor domain.Actor) error {
				return NewShowCommand(r.app).Execute(ctx, actor, args[0])
			})
		},
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, actor domain.Actor, id string) error {
	detail, err := c.app.api.GetTask(ctx, actor, id)
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}

	task := detail.Task
	fmt.Printf("Task:        %s\n", task.ID)
	fmt.Printf("Title:       %s\n", task.Title)
	if task.Description != "" {
		fmt.Printf("Description: %s\n", task.Description)
	}
	fmt.Printf("Status:      %s\n", task.Status)
	fmt.Printf("Priority:    %s\n", task.Priority)
	fmt.Printf("Type:        %s\n", task.AssignmentType)
	fmt.Printf("Assignees:   %s\n", strings.Join(task.Assignees, ", "))
	if task.TeamID != "" {
		fmt.Printf("Team:        %s\n", task.TeamID)
	}
	fmt.Printf("Creator:     %s\n", task.CreatorEmail)
	if task.DueDate != nil {
		fmt.Printf("Due:         %s\n", task.DueDate.Format("2006-01-02"))
	}
	if task.Category != "" {
		fmt.Printf("Category:    %s\n", task.Category)
	}
	if len(task.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(task.Tags, ", "))
	}
	if task.EstimatedHours > 0 {
		fmt.Printf("Estimated:   %.1fh\n", task.EstimatedHours)
	}

	if len(detail.History) > 0 {
		fmt.Println("\nHistory:")
		for _, entry := range detail.History {
			fmt.Printf("  %s  %-13s  %s  %s\n",
				entry.Timestamp.Format("2006-01-02 15:04"), entry.Type, entry.Actor, entry.Detail)
		}
	}
	if len(detail.Comments) > 0 {
		fmt.Println("\nComments:")
		for _, comment := range detail.Comments {
			fmt.Printf("  %s  %s: %s\n",
				comment.Timestamp.Format("2006-01-02 15:04"), comment.Actor, comment.Text)
		}
	}
	if len(detail.Attachments) > 0 {
		fmt.Println("\nAttachments:")
		for _, attachment := range detail.Attachments {
			fmt.Printf("  %s (%s)\n", attachment.Name, attachment.URL)
		}
	}
	return nil
}
