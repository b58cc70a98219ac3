package domain

import (
	"time"
)

// Status represents the workflow state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// legalTransitions holds the only edges the workflow state machine accepts.
// Pending cannot skip straight to Completed and no backward edges exist.
var legalTransitions = map[Status]Status{
	StatusPending:    StatusInProgress,
	StatusInProgress: StatusCompleted,
}

// IsValid checks if the status is one of the recognized workflow states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo returns true if the workflow permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	return legalTransitions[s] == next
}

// IsTerminal returns true if no actor-driven transition can leave this state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is one of the recognized levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// AssignmentType represents how a task's assignee set is assembled.
// It is fixed at creation; changing it means creating a new task.
type AssignmentType string

const (
	AssignmentIndividual AssignmentType = "individual"
	AssignmentTeam       AssignmentType = "team"
	AssignmentDelegate   AssignmentType = "delegate"
)

// IsValid checks if the assignment type is recognized.
func (at AssignmentType) IsValid() bool {
	switch at {
	case AssignmentIndividual, AssignmentTeam, AssignmentDelegate:
		return true
	}
	return false
}

// Task represents a work directive in the domain model.
// This is a pure domain model without database-specific concerns.
// History, comments and attachments are kept in separate append-only
// logs keyed by the task id rather than embedded in the aggregate.
type Task struct {
	ID             string
	OrgID          string
	Title          string
	Description    string
	Status         Status
	Priority       Priority
	DueDate        *time.Time
	AssignmentType AssignmentType
	Assignees      []string // ordered; index 0 is the lead for delegate tasks
	TeamID         string   // set only for team assignment
	CreatorEmail   string
	CreatedAt      time.Time
	Category       string
	Tags           []string
	EstimatedHours float64
}

// IsAssignee returns true if the given email is in the assignee set.
func (t Task) IsAssignee(email string) bool {
	for _, a := range t.Assignees {
		if a == email {
			return true
		}
	}
	return false
}

// DelegateLead returns the privileged lead of a delegate task, or empty
// for other assignment types.
func (t Task) DelegateLead() string {
	if t.AssignmentType != AssignmentDelegate || len(t.Assignees) == 0 {
		return ""
	}
	return t.Assignees[0]
}

// IsOverdue returns true if the task has a due date in the past and has
// not been completed. Due dates are advisory and never block transitions.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// IsValid checks if the task has valid core data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Status.IsValid() && t.AssignmentType.IsValid() && len(t.Assignees) > 0
}
