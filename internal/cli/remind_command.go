package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// RemindCommand handles the remind command
type RemindCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRemindCommand creates a new remind command handler
func NewRemindCommand(app *App) *RemindCommand {
	return &RemindCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newRemindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Dispatch overdue notices",
		Long: `Sweep for non-completed tasks past their due date and dispatch overdue
notices to their assignees. Due dates stay advisory: the sweep never
changes task state.

With --once the sweep runs a single time and exits. Without it, the
command stays in the foreground and runs on the configured schedule
(WT_REMINDER_DAILY_AT or WT_REMINDER_INTERVAL) until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			once, _ := cmd.Flags().GetBool("once")
			handler := NewRemindCommand(r.app)
			if once {
				return r.run(handler.ExecuteOnce)
			}
			// The daemon outlives the application timeout on purpose.
			return handler.ExecuteDaemon(context.Background())
		},
	}

	cmd.Flags().Bool("once", false, "Run one sweep and exit")
	return cmd
}

// ExecuteOnce runs a single overdue sweep
func (c *RemindCommand) ExecuteOnce(ctx context.Context) error {
	count, err := c.app.api.RunOverdueSweep(ctx)
	if err != nil {
		return c.errorHandler.Handle("run overdue sweep", err)
	}

	fmt.Printf("Dispatched overdue notices for %d tasks\n", count)
	return nil
}

// ExecuteDaemon runs the scheduled sweep until interrupted
func (c *RemindCommand) ExecuteDaemon(ctx context.Context) error {
	if err := c.app.api.StartReminderDaemon(ctx); err != nil {
		return c.errorHandler.Handle("start reminder daemon", err)
	}
	defer c.app.api.StopReminderDaemon()

	fmt.Println("Reminder daemon running, press Ctrl+C to stop")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	fmt.Println("Stopping reminder daemon")
	return nil
}
