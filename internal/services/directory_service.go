package services

import (
	"context"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/repository/sqlite"
	"work-tracker/internal/validation"
)

// directoryServiceImpl is the repository-backed reference implementation
// of the Directory and TeamRegistry collaborators. A deployment embedded
// in a larger product would swap in that product's directory instead.
type directoryServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TaskValidator
}

// NewDirectoryService creates a new DirectoryService instance
func NewDirectoryService(repo sqlite.Repository) DirectoryService {
	return &directoryServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTaskValidator(),
	}
}

// GetEmployee retrieves a single directory record
func (d *directoryServiceImpl) GetEmployee(ctx context.Context, orgID, email string) (*domain.Employee, error) {
	dbEmployee, err := d.repo.GetEmployee(ctx, orgID, email)
	if err != nil {
		return nil, err
	}
	employee := d.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

// ListEmployees retrieves every directory record in the organization
func (d *directoryServiceImpl) ListEmployees(ctx context.Context, orgID string) ([]domain.Employee, error) {
	dbEmployees, err := d.repo.ListEmployees(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return d.mapper.Employee.FromDatabaseSlice(dbEmployees), nil
}

// GetTeam retrieves a team definition with its member list
func (d *directoryServiceImpl) GetTeam(ctx context.Context, orgID, teamID string) (*domain.Team, error) {
	dbTeam, err := d.repo.GetTeam(ctx, orgID, teamID)
	if err != nil {
		return nil, err
	}
	team := d.mapper.Team.FromDatabase(*dbTeam)
	return &team, nil
}

// UpsertEmployee creates or replaces a directory record
func (d *directoryServiceImpl) UpsertEmployee(ctx context.Context, employee domain.Employee) error {
	if err := d.validator.ValidateEmails("email", []string{employee.Email}); err != nil {
		return errors.NewValidationError("invalid email", err)
	}
	if !employee.Role.IsValid() {
		return errors.NewValidationError("unknown role: "+string(employee.Role), nil)
	}
	for _, capability := range employee.Capabilities {
		if !capability.IsValid() {
			return errors.NewValidationError("unknown capability: "+string(capability), nil)
		}
	}

	dbEmployee := d.mapper.Employee.ToDatabase(employee)
	return d.repo.UpsertEmployee(ctx, &dbEmployee)
}

// UpsertTeam creates or replaces a team definition
func (d *directoryServiceImpl) UpsertTeam(ctx context.Context, team domain.Team) error {
	if team.ID == "" {
		return errors.NewValidationError("team id is required", nil)
	}
	if team.Name == "" {
		return errors.NewValidationError("team name is required", nil)
	}
	if team.LeaderEmail != "" {
		if err := d.validator.ValidateEmails("leader", []string{team.LeaderEmail}); err != nil {
			return errors.NewValidationError("invalid leader email", err)
		}
	}
	if len(team.MemberEmails) > 0 {
		if err := d.validator.ValidateEmails("members", team.MemberEmails); err != nil {
			return errors.NewValidationError("invalid member emails", err)
		}
	}

	dbTeam := d.mapper.Team.ToDatabase(team)
	return d.repo.UpsertTeam(ctx, &dbTeam)
}
