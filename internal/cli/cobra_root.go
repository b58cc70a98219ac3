package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"work-tracker/internal/api"
	"work-tracker/internal/config"
	"work-tracker/internal/domain"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewAppWithConfig(apiInstance, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "wt",
		Short: "A command-line work and task orchestration tool",
		Long: `Work Tracker (wt) tracks work directives from creation through team
assembly, status transitions and completion, with a full audit history
and an in-app notification inbox.

Every task-affecting command acts as a directory identity given with
--as; authorization is enforced server-side from that identity's role,
capabilities and team.

EXAMPLES:
  wt employee add alice@corp.test --name "Alice" --role employer
  wt create "Quarterly report" --as alice@corp.test --type individual --assignees bob@corp.test
  wt list --as bob@corp.test --status pending
  wt status <task-id> in_progress --as bob@corp.test
  wt comment <task-id> "halfway there" --as bob@corp.test
  wt inbox bob@corp.test
  wt remind --once

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

  WT_DB_DIR                   Database directory (default: ~/.wt)
  WT_DB_FILENAME              Database filename (default: wt.db)
  WT_CONFIG_FILE              Config file path (default: ~/.wt/config.yaml)
  WT_APP_DEFAULT_ORG          Default organization (default: default)
  WT_APP_TIMEOUT              Application timeout (default: 60s)
  WT_NOTIFY_COMPLETION_AUDIENCE  Role addressed by completion notices (default: employer)
  WT_REMINDER_DAILY_AT        Daily overdue sweep time HH:MM (default: 09:00)
  WT_REMINDER_INTERVAL        Fixed-interval sweep, overrides daily time
  WT_DEBUG                    Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("as", "", "Acting identity email (required for task commands)")
	flags.String("org", "", "Organization (overrides WT_APP_DEFAULT_ORG)")
	flags.String("db-dir", "", "Database directory (overrides WT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WT_DB_FILENAME)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides WT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides WT_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newCreateCommand(),
		r.newListCommand(),
		r.newShowCommand(),
		r.newStatusCommand(),
		r.newUpdateCommand(),
		r.newAssigneesCommand(),
		r.newCommentCommand(),
		r.newAttachCommand(),
		r.newDeleteCommand(),
		r.newEmployeeCommand(),
		r.newTeamCommand(),
		r.newInboxCommand(),
		r.newRemindCommand(),
	)
}

// runWithActor resolves the acting identity from the global flags and
// invokes the handler under the application timeout.
func (r *RootCommand) runWithActor(cmd *cobra.Command, run func(ctx context.Context, actor domain.Actor) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	email, _ := cmd.Flags().GetString("as")
	org, _ := cmd.Flags().GetString("org")

	actor, err := r.app.ResolveActor(ctx, org, email)
	if err != nil {
		return NewErrorHandler().Handle("resolve acting identity", err)
	}
	return run(ctx, actor)
}

// run invokes an actor-less handler under the application timeout
func (r *RootCommand) run(handler func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()
	return handler(ctx)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if org, _ := flags.GetString("org"); org != "" {
		r.config.Application.DefaultOrg = org
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
