package services

import (
	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
)

// validateTransition checks the requested edge against the workflow
// state machine. Completed is terminal and Pending can never skip
// straight to Completed.
func validateTransition(from, to domain.Status) error {
	if !to.IsValid() {
		return errors.NewValidationError("unknown status: "+string(to), nil)
	}
	if from == to {
		return errors.NewConflictError("task status", string(from), "already "+string(to))
	}
	if from.IsTerminal() {
		return errors.NewValidationError("completed tasks cannot change status", nil)
	}
	if !from.CanTransitionTo(to) {
		return errors.NewValidationError("illegal transition "+string(from)+" -> "+string(to), nil)
	}
	return nil
}

// authorizeTransition gates who may drive a task through the workflow:
// its assignees, or employer/admin roles.
func authorizeTransition(actor domain.Actor, task domain.Task) error {
	if actor.Role.IsManagement() {
		return nil
	}
	if task.IsAssignee(actor.Email) {
		return nil
	}
	return errors.NewPermissionError("transition task status", actor.Email)
}

// canView applies the visibility rule: management sees every task in
// the organization; a team leader additionally sees tasks any of
// their team's members is assigned to; everyone else sees tasks they
// created or are assigned to. The leader's team member set is passed in
// by the caller and is nil for non-leaders.
func canView(actor domain.Actor, task domain.Task, leaderTeamMembers []string) bool {
	if actor.Role.IsManagement() {
		return true
	}
	if task.CreatorEmail == actor.Email || task.IsAssignee(actor.Email) {
		return true
	}
	for _, member := range leaderTeamMembers {
		if task.IsAssignee(member) {
			return true
		}
	}
	return false
}
