package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"work-tracker/internal/domain"
)

// DirectoryCommand handles directory and team administration
type DirectoryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDirectoryCommand creates a new directory command handler
func NewDirectoryCommand(app *App) *DirectoryCommand {
	return &DirectoryCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func (r *RootCommand) newEmployeeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the employee directory",
	}

	addCmd := &cobra.Command{
		Use:   "add [email]",
		Short: "Add or update a directory record",
		Long: `Add an employee to the directory, or replace their record.

Examples:
  wt employee add alice@corp.test --name "Alice" --role employer
  wt employee add bob@corp.test --name "Bob" --role employee --team finance
  wt employee add carol@corp.test --name "Carol" --role employee --capabilities assign_tasks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(ctx context.Context) error {
				flags := cmd.Flags()
				name, _ := flags.GetString("name")
				role, _ := flags.GetString("role")
				team, _ := flags.GetString("team")
				capabilities, _ := flags.GetStringSlice("capabilities")
				org, _ := cmd.Flags().GetString("org")

				employee := domain.Employee{
					Email:  args[0],
					Name:   name,
					OrgID:  r.app.Org(org),
					Role:   domain.Role(role),
					TeamID: team,
				}
				for _, c := range capabilities {
					employee.Capabilities = append(employee.Capabilities, domain.Capability(c))
				}
				return NewDirectoryCommand(r.app).ExecuteEmployeeAdd(ctx, employee)
			})
		},
	}
	addCmd.Flags().String("name", "", "Display name")
	addCmd.Flags().String("role", "employee", "Role: employer, admin or employee")
	addCmd.Flags().String("team", "", "Team id the employee belongs to")
	addCmd.Flags().StringSlice("capabilities", nil, "Extra capabilities (assign_tasks)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the employee directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(ctx context.Context) error {
				org, _ := cmd.Flags().GetString("org")
				return NewDirectoryCommand(r.app).ExecuteEmployeeList(ctx, r.app.Org(org))
			})
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}

func (r *RootCommand) newTeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage team definitions",
	}

	setCmd := &cobra.Command{
		Use:   "set [team-id]",
		Short: "Create or replace a team definition",
		Long: `Create or replace a team with its leader and members.

Example:
  wt team set finance --name "Finance" --leader lead@corp.test --members bob@corp.test,carol@corp.test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(ctx context.Context) error {
				flags := cmd.Flags()
				name, _ := flags.GetString("name")
				leader, _ := flags.GetString("leader")
				members, _ := flags.GetStringSlice("members")
				org, _ := cmd.Flags().GetString("org")

				team := domain.Team{
					ID:           args[0],
					OrgID:        r.app.Org(org),
					Name:         name,
					LeaderEmail:  leader,
					MemberEmails: members,
				}
				return NewDirectoryCommand(r.app).ExecuteTeamSet(ctx, team)
			})
		},
	}
	setCmd.Flags().String("name", "", "Team name")
	setCmd.Flags().String("leader", "", "Team leader email")
	setCmd.Flags().StringSlice("members", nil, "Team member emails")

	showCmd := &cobra.Command{
		Use:   "show [team-id]",
		Short: "Show a team definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(ctx context.Context) error {
				org, _ := cmd.Flags().GetString("org")
				return NewDirectoryCommand(r.app).ExecuteTeamShow(ctx, r.app.Org(org), args[0])
			})
		},
	}

	cmd.AddCommand(setCmd, showCmd)
	return cmd
}

// ExecuteEmployeeAdd adds or replaces a directory record
func (c *DirectoryCommand) ExecuteEmployeeAdd(ctx context.Context, employee domain.Employee) error {
	if err := c.app.api.UpsertEmployee(ctx, employee); err != nil {
		return c.errorHandler.Handle("add employee", err)
	}

	fmt.Printf("Recorded %s (%s)\n", employee.Email, employee.Role)
	return nil
}

// ExecuteEmployeeList lists the directory
func (c *DirectoryCommand) ExecuteEmployeeList(ctx context.Context, orgID string) error {
	employees, err := c.app.api.ListEmployees(ctx, orgID)
	if err != nil {
		return c.errorHandler.Handle("list employees", err)
	}

	if len(employees) == 0 {
		fmt.Println("No employees found")
		return nil
	}
	for _, employee := range employees {
		line := fmt.Sprintf("%-30s  %-8s  %s", employee.Email, employee.Role, employee.Name)
		if employee.TeamID != "" {
			line += "  (team " + employee.TeamID + ")"
		}
		fmt.Println(line)
	}
	return nil
}

// ExecuteTeamSet creates or replaces a team definition
func (c *DirectoryCommand) ExecuteTeamSet(ctx context.Context, team domain.Team) error {
	if err := c.app.api.UpsertTeam(ctx, team); err != nil {
		return c.errorHandler.Handle("set team", err)
	}

	fmt.Printf("Team %s: leader %s, %d members\n", team.ID, team.LeaderEmail, len(team.MemberEmails))
	return nil
}

// ExecuteTeamShow shows a team definition
func (c *DirectoryCommand) ExecuteTeamShow(ctx context.Context, orgID, teamID string) error {
	team, err := c.app.api.GetTeam(ctx, orgID, teamID)
	if err != nil {
		return c.errorHandler.Handle("show team", err)
	}

	fmt.Printf("Team:    %s (%s)\n", team.ID, team.Name)
	fmt.Printf("Leader:  %s\n", team.LeaderEmail)
	fmt.Printf("Members: %s\n", strings.Join(team.MemberEmails, ", "))
	return nil
}
