package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// InboxCommand handles the inbox command
type InboxCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewInboxCommand creates a new inbox command handler
func NewInboxCommand(app *App) *InboxCommand {
	return &InboxCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newInboxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inbox [email]",
		Short: "List a recipient's notices",
		Long: `List the notices addressed to a recipient, newest first. Notices reach
a recipient directly (assignment, overdue) or through their directory
role (completion notices go to the employer audience).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(ctx context.Context) error {
				org, _ := cmd.Flags().GetString("org")
				return NewInboxCommand(r.app).Execute(ctx, r.app.Org(org), args[0])
			})
		},
	}
}

// Execute runs the inbox command
func (c *InboxCommand) Execute(ctx context.Context, orgID, email string) error {
	notices, err := c.app.api.ListInbox(ctx, orgID, email)
	if err != nil {
		return c.errorHandler.Handle("list inbox", err)
	}

	if len(notices) == 0 {
		fmt.Println("No notices")
		return nil
	}
	for _, notice := range notices {
		fmt.Printf("%s  %-18s  %s\n",
			notice.CreatedAt.Format("2006-01-02 15:04"), notice.Title, notice.Message)
	}
	return nil
}
