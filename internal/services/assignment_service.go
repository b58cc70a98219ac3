package services

import (
	"context"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
)

// assignmentServiceImpl implements the AssignmentService interface
type assignmentServiceImpl struct {
	directory Directory
	teams     TeamRegistry
}

// NewAssignmentService creates a new AssignmentService instance
func NewAssignmentService(directory Directory, teams TeamRegistry) AssignmentService {
	return &assignmentServiceImpl{
		directory: directory,
		teams:     teams,
	}
}

// Resolve expands the draft's caller-supplied assignment into the
// effective ordered assignee set and gates it against what the actor is
// allowed to assign. The caller-supplied emails are never trusted as-is.
func (s *assignmentServiceImpl) Resolve(ctx context.Context, actor domain.Actor, draft TaskDraft) ([]string, error) {
	scope, err := s.assignmentScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if scope == scopeNone {
		return nil, errors.NewPermissionError("create task", actor.Email)
	}

	var resolved []string
	switch draft.AssignmentType {
	case domain.AssignmentTeam:
		if draft.TeamID == "" {
			return nil, errors.NewValidationError("team assignment requires a team id", nil)
		}
		if scope == scopeOwnTeam && draft.TeamID != actor.TeamID {
			return nil, errors.NewPermissionError("assign outside own team", actor.Email)
		}
		team, err := s.teams.GetTeam(ctx, actor.OrgID, draft.TeamID)
		if err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
				return nil, errors.NewValidationError("unknown team: "+draft.TeamID, err)
			}
			return nil, err
		}
		resolved = team.EffectiveMembers()

	case domain.AssignmentIndividual:
		if len(draft.AssigneeEmails) == 0 {
			return nil, errors.NewValidationError("individual assignment requires at least one assignee", nil)
		}
		resolved = dedupe(draft.AssigneeEmails)

	case domain.AssignmentDelegate:
		if len(draft.AssigneeEmails) != 1 {
			return nil, errors.NewValidationError("delegate assignment requires exactly one lead", nil)
		}
		resolved = []string{draft.AssigneeEmails[0]}

	default:
		return nil, errors.NewValidationError("unknown assignment type: "+string(draft.AssignmentType), nil)
	}

	if err := s.gate(ctx, actor, scope, resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// ReResolve applies a delegate lead's requested assignee delta. Only the
// delegate pattern re-resolves; the lead stays at index 0 and can never
// be removed.
func (s *assignmentServiceImpl) ReResolve(ctx context.Context, actor domain.Actor, task domain.Task, newEmails []string) ([]string, error) {
	if task.AssignmentType != domain.AssignmentDelegate {
		return nil, errors.NewValidationError("only delegate tasks re-resolve their assignees", nil)
	}

	lead := task.DelegateLead()
	if actor.Email != lead {
		return nil, errors.NewPermissionError("manage task team", actor.Email)
	}

	if !contains(newEmails, lead) {
		return nil, errors.NewValidationError("the delegate lead cannot be removed", nil)
	}

	// Normalize with the lead first, then the others in request order.
	resolved := []string{lead}
	for _, email := range dedupe(newEmails) {
		if email != lead {
			resolved = append(resolved, email)
		}
	}

	if err := s.requireInDirectory(ctx, actor.OrgID, resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// assignmentScope is the reach of an actor's assignment right
type assignmentScope int

const (
	scopeNone assignmentScope = iota
	scopeOwnTeam
	scopeOrganization
)

// assignmentScope decides how far the actor may assign. Employers,
// admins and holders of the assign_tasks capability reach the whole
// organization; a team leader without it reaches only their own team.
func (s *assignmentServiceImpl) assignmentScope(ctx context.Context, actor domain.Actor) (assignmentScope, error) {
	if actor.HasCapability(domain.CapabilityAssignTasks) {
		return scopeOrganization, nil
	}
	if actor.TeamID == "" {
		return scopeNone, nil
	}

	team, err := s.teams.GetTeam(ctx, actor.OrgID, actor.TeamID)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return scopeNone, nil
		}
		return scopeNone, err
	}
	if team.LeaderEmail == actor.Email {
		return scopeOwnTeam, nil
	}
	return scopeNone, nil
}

// gate verifies every resolved assignee falls within the actor's scope
func (s *assignmentServiceImpl) gate(ctx context.Context, actor domain.Actor, scope assignmentScope, resolved []string) error {
	switch scope {
	case scopeOrganization:
		return s.requireInDirectory(ctx, actor.OrgID, resolved)
	case scopeOwnTeam:
		team, err := s.teams.GetTeam(ctx, actor.OrgID, actor.TeamID)
		if err != nil {
			return err
		}
		for _, email := range resolved {
			if !team.HasMember(email) {
				return errors.NewPermissionError("assign outside own team", actor.Email)
			}
		}
		return nil
	}
	return errors.NewPermissionError("create task", actor.Email)
}

// requireInDirectory checks each email against the directory, turning a
// missing record into a validation error. Directory outages propagate.
func (s *assignmentServiceImpl) requireInDirectory(ctx context.Context, orgID string, emails []string) error {
	for _, email := range emails {
		if _, err := s.directory.GetEmployee(ctx, orgID, email); err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
				return errors.NewValidationError("not in directory: "+email, err)
			}
			return err
		}
	}
	return nil
}

func dedupe(emails []string) []string {
	seen := make(map[string]bool, len(emails))
	result := make([]string, 0, len(emails))
	for _, email := range emails {
		if !seen[email] {
			seen[email] = true
			result = append(result, email)
		}
	}
	return result
}

func contains(emails []string, email string) bool {
	for _, e := range emails {
		if e == email {
			return true
		}
	}
	return false
}
