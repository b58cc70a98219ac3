package services

import (
	"context"
	"time"

	"work-tracker/internal/domain"
)

// TaskDraft carries the caller-supplied fields for a new task. The
// assignee emails are interpreted by the assignment resolver according
// to the assignment type; they are never trusted as-is.
type TaskDraft struct {
	Title          string
	Description    string
	Priority       domain.Priority
	DueDate        *time.Time
	AssignmentType domain.AssignmentType
	AssigneeEmails []string
	TeamID         string
	Category       string
	Tags           []string
	EstimatedHours float64
}

// FieldPatch is a partial update of a task's descriptive fields. Nil
// pointers mean "leave unchanged"; the patch merges at field-group
// granularity with last writer wins.
type FieldPatch struct {
	Title          *string
	Description    *string
	Priority       *domain.Priority
	DueDate        *time.Time
	Category       *string
	Tags           []string
	EstimatedHours *float64
}

// ChangedKeys returns the names of the fields the patch sets, in a
// fixed order, for the Update history entry detail.
func (p FieldPatch) ChangedKeys() []string {
	var keys []string
	if p.Title != nil {
		keys = append(keys, "title")
	}
	if p.Description != nil {
		keys = append(keys, "description")
	}
	if p.Priority != nil {
		keys = append(keys, "priority")
	}
	if p.DueDate != nil {
		keys = append(keys, "dueDate")
	}
	if p.Category != nil {
		keys = append(keys, "category")
	}
	if p.Tags != nil {
		keys = append(keys, "tags")
	}
	if p.EstimatedHours != nil {
		keys = append(keys, "estimatedHours")
	}
	return keys
}

// IsEmpty returns true if the patch sets no fields.
func (p FieldPatch) IsEmpty() bool {
	return len(p.ChangedKeys()) == 0
}

// ListFilter narrows the task list view after the visibility rule has
// been applied.
type ListFilter struct {
	Status      *domain.Status
	OverdueOnly bool
}

// TaskDetail bundles a task with its append-only sub-collections for
// the detail view.
type TaskDetail struct {
	Task        domain.Task
	History     []domain.HistoryEntry
	Comments    []domain.Comment
	Attachments []domain.Attachment
}

// Directory supplies employee records. The surrounding product owns the
// directory; the engine only reads it to resolve and gate assignments.
type Directory interface {
	GetEmployee(ctx context.Context, orgID, email string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, orgID string) ([]domain.Employee, error)
}

// TeamRegistry supplies team definitions for team-typed assignment
// resolution and leader visibility.
type TeamRegistry interface {
	GetTeam(ctx context.Context, orgID, teamID string) (*domain.Team, error)
}

// NotificationSink delivers a single addressed notice. Delivery is
// best-effort; the dispatcher logs and swallows sink failures.
type NotificationSink interface {
	Send(ctx context.Context, notice domain.Notice) error
}

// NotificationOutbox is a sink that persists notices as a read model,
// plus the inbox view over them.
type NotificationOutbox interface {
	NotificationSink
	ListInbox(ctx context.Context, orgID, email string, role domain.Role) ([]domain.Notice, error)
}

// AssignmentService expands and gates the assignee set for a task
type AssignmentService interface {
	Resolve(ctx context.Context, actor domain.Actor, draft TaskDraft) ([]string, error)
	ReResolve(ctx context.Context, actor domain.Actor, task domain.Task, newEmails []string) ([]string, error)
}

// TaskService handles the task lifecycle and workflow operations
type TaskService interface {
	CreateTask(ctx context.Context, actor domain.Actor, draft TaskDraft) (*domain.Task, error)
	GetTask(ctx context.Context, actor domain.Actor, id string) (*TaskDetail, error)
	ListTasks(ctx context.Context, actor domain.Actor, filter ListFilter) ([]domain.Task, error)
	UpdateTaskFields(ctx context.Context, actor domain.Actor, id string, patch FieldPatch) (*domain.Task, error)
	TransitionStatus(ctx context.Context, actor domain.Actor, id string, next domain.Status) (*domain.Task, error)
	ManageTeam(ctx context.Context, actor domain.Actor, id string, newEmails []string) (*domain.Task, error)
	AddComment(ctx context.Context, actor domain.Actor, id string, text string) (*domain.Comment, error)
	AddAttachment(ctx context.Context, actor domain.Actor, id string, name, url string) (*domain.Attachment, error)
	DeleteTask(ctx context.Context, actor domain.Actor, id string) error
}

// NotificationService fans lifecycle events out as addressed notices.
// Every method is fire-and-forget: failures are logged, never returned.
type NotificationService interface {
	NotifyCreated(ctx context.Context, task domain.Task)
	NotifyCompleted(ctx context.Context, task domain.Task, actor domain.Actor)
	NotifyOverdue(ctx context.Context, task domain.Task)
}

// DirectoryService manages the in-repo directory and team registry
// reference implementation on top of the repository.
type DirectoryService interface {
	Directory
	TeamRegistry
	UpsertEmployee(ctx context.Context, employee domain.Employee) error
	UpsertTeam(ctx context.Context, team domain.Team) error
}

// ReminderService sweeps for overdue tasks and dispatches overdue notices
type ReminderService interface {
	RunSweep(ctx context.Context) (int, error)
	Start(ctx context.Context) error
	Stop()
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	AssignmentService   AssignmentService
	TaskService         TaskService
	NotificationService NotificationService
	DirectoryService    DirectoryService
	ReminderService     ReminderService
	Outbox              NotificationOutbox
}
