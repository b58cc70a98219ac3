package services

import (
	"context"
	"strings"
	"time"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/repository/sqlite"
	"work-tracker/internal/validation"

	"github.com/google/uuid"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	assignments   AssignmentService
	teams         TeamRegistry
	notifications NotificationService
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	now           func() time.Time
	newID         func() string
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, assignments AssignmentService, teams TeamRegistry, notifications NotificationService) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		assignments:   assignments,
		teams:         teams,
		notifications: notifications,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// CreateTask validates the draft, resolves its assignee set and stores
// the new task with its Created history entry. Assignment notices fan
// out best-effort after the store commit.
func (t *taskServiceImpl) CreateTask(ctx context.Context, actor domain.Actor, draft TaskDraft) (*domain.Task, error) {
	title, err := t.taskValidator.GetValidTitle(draft.Title)
	if err != nil {
		return nil, errors.NewValidationError("invalid title", err)
	}
	if err := t.taskValidator.ValidateAssignmentType(draft.AssignmentType); err != nil {
		return nil, errors.NewValidationError("invalid assignment type", err)
	}
	if draft.Priority == "" {
		draft.Priority = domain.PriorityMedium
	}
	if err := t.taskValidator.ValidatePriority(draft.Priority); err != nil {
		return nil, errors.NewValidationError("invalid priority", err)
	}
	if len(draft.AssigneeEmails) > 0 {
		if err := t.taskValidator.ValidateEmails("assignees", draft.AssigneeEmails); err != nil {
			return nil, errors.NewValidationError("invalid assignees", err)
		}
	}

	assignees, err := t.assignments.Resolve(ctx, actor, draft)
	if err != nil {
		return nil, err
	}

	now := t.now().UTC()
	task := domain.Task{
		ID:             t.newID(),
		OrgID:          actor.OrgID,
		Title:          title,
		Description:    draft.Description,
		Status:         domain.StatusPending,
		Priority:       draft.Priority,
		DueDate:        draft.DueDate,
		AssignmentType: draft.AssignmentType,
		Assignees:      assignees,
		TeamID:         draft.TeamID,
		CreatorEmail:   actor.Email,
		CreatedAt:      now,
		Category:       draft.Category,
		Tags:           draft.Tags,
		EstimatedHours: draft.EstimatedHours,
	}
	if draft.AssignmentType != domain.AssignmentTeam {
		task.TeamID = ""
	}

	entry := t.historyEntry(task.ID, domain.EventCreated, actor.Email, "Task created", now)
	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask, &entry); err != nil {
		return nil, err
	}

	t.notifications.NotifyCreated(ctx, task)
	return &task, nil
}

// GetTask retrieves a task with its history, comments and attachments,
// subject to the caller's visibility
func (t *taskServiceImpl) GetTask(ctx context.Context, actor domain.Actor, id string) (*TaskDetail, error) {
	task, err := t.visibleTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	dbHistory, err := t.repo.ListHistory(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	dbComments, err := t.repo.ListComments(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	dbAttachments, err := t.repo.ListAttachments(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	return &TaskDetail{
		Task:        *task,
		History:     t.mapper.History.FromDatabaseSlice(dbHistory),
		Comments:    t.mapper.Comment.FromDatabaseSlice(dbComments),
		Attachments: t.mapper.Attachment.FromDatabaseSlice(dbAttachments),
	}, nil
}

// ListTasks lists the tasks the actor may see, narrowed by the filter
func (t *taskServiceImpl) ListTasks(ctx context.Context, actor domain.Actor, filter ListFilter) ([]domain.Task, error) {
	if filter.Status != nil {
		if err := t.taskValidator.ValidateStatus(*filter.Status); err != nil {
			return nil, errors.NewValidationError("invalid status filter", err)
		}
	}

	dbTasks, err := t.repo.ListTasks(ctx, actor.OrgID)
	if err != nil {
		return nil, err
	}
	tasks := t.mapper.Task.FromDatabaseSlice(dbTasks)

	leaderMembers, err := t.leaderTeamMembers(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := t.now().UTC()
	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !canView(actor, task, leaderMembers) {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.OverdueOnly && !task.IsOverdue(now) {
			continue
		}
		visible = append(visible, task)
	}
	return visible, nil
}

// UpdateTaskFields merges a partial edit of the descriptive fields.
// Employer and admin only; the Update history entry names the changed
// field keys.
func (t *taskServiceImpl) UpdateTaskFields(ctx context.Context, actor domain.Actor, id string, patch FieldPatch) (*domain.Task, error) {
	if !actor.Role.IsManagement() {
		return nil, errors.NewPermissionError("update task fields", actor.Email)
	}
	if patch.IsEmpty() {
		return nil, errors.NewValidationError("no fields to update", nil)
	}

	task, err := t.loadTask(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title, err := t.taskValidator.GetValidTitle(*patch.Title)
		if err != nil {
			return nil, errors.NewValidationError("invalid title", err)
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		if err := t.taskValidator.ValidatePriority(*patch.Priority); err != nil {
			return nil, errors.NewValidationError("invalid priority", err)
		}
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Tags != nil {
		task.Tags = patch.Tags
	}
	if patch.EstimatedHours != nil {
		task.EstimatedHours = *patch.EstimatedHours
	}

	entry := t.historyEntry(task.ID, domain.EventUpdate, actor.Email,
		strings.Join(patch.ChangedKeys(), ", "), t.now().UTC())
	dbTask := t.mapper.Task.ToDatabase(*task)
	if err := t.repo.UpdateTaskFields(ctx, &dbTask, &entry); err != nil {
		return nil, err
	}
	return task, nil
}

// TransitionStatus drives a task through the workflow with a
// compare-and-set against the status the actor observed. The losing
// side of a race gets a conflict. Completion notifies the management
// audience without ever rolling back the transition.
func (t *taskServiceImpl) TransitionStatus(ctx context.Context, actor domain.Actor, id string, next domain.Status) (*domain.Task, error) {
	task, err := t.loadTask(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransition(actor, *task); err != nil {
		return nil, err
	}
	if err := validateTransition(task.Status, next); err != nil {
		return nil, err
	}

	entry := t.historyEntry(task.ID, domain.EventStatusChange, actor.Email,
		string(task.Status)+" -> "+string(next), t.now().UTC())
	err = t.repo.TransitionTaskStatus(ctx, actor.OrgID, task.ID, string(task.Status), string(next), &entry)
	if err != nil {
		return nil, err
	}

	task.Status = next
	if next == domain.StatusCompleted {
		t.notifications.NotifyCompleted(ctx, *task, actor)
	}
	return task, nil
}

// ManageTeam replaces a delegate task's assignee set with the lead's
// accepted delta
func (t *taskServiceImpl) ManageTeam(ctx context.Context, actor domain.Actor, id string, newEmails []string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateEmails("assignees", newEmails); err != nil {
		return nil, errors.NewValidationError("invalid assignees", err)
	}

	task, err := t.loadTask(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}

	assignees, err := t.assignments.ReResolve(ctx, actor, *task, newEmails)
	if err != nil {
		return nil, err
	}

	entry := t.historyEntry(task.ID, domain.EventTeamUpdated, actor.Email,
		strings.Join(assignees, ", "), t.now().UTC())
	if err := t.repo.ReplaceAssignees(ctx, actor.OrgID, task.ID, assignees, &entry); err != nil {
		return nil, err
	}

	task.Assignees = assignees
	return task, nil
}

// AddComment appends a comment; any actor who can see the task may comment
func (t *taskServiceImpl) AddComment(ctx context.Context, actor domain.Actor, id string, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError("comment text is required", nil)
	}

	task, err := t.visibleTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		TaskID:    task.ID,
		Actor:     actor.Email,
		Text:      text,
		Timestamp: t.now().UTC(),
	}
	entry := t.historyEntry(task.ID, domain.EventComment, actor.Email, comment.Preview(), comment.Timestamp)
	dbComment := t.mapper.Comment.ToDatabase(comment)
	if err := t.repo.AddComment(ctx, &dbComment, &entry); err != nil {
		return nil, err
	}
	comment.ID = dbComment.ID
	return &comment, nil
}

// AddAttachment appends a file reference; any actor who can see the
// task may attach
func (t *taskServiceImpl) AddAttachment(ctx context.Context, actor domain.Actor, id string, name, url string) (*domain.Attachment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("attachment name is required", nil)
	}
	if strings.TrimSpace(url) == "" {
		return nil, errors.NewValidationError("attachment url is required", nil)
	}

	task, err := t.visibleTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	attachment := domain.Attachment{
		TaskID:    task.ID,
		Name:      name,
		URL:       url,
		Actor:     actor.Email,
		Timestamp: t.now().UTC(),
	}
	entry := t.historyEntry(task.ID, domain.EventAttachment, actor.Email, name, attachment.Timestamp)
	dbAttachment := t.mapper.Attachment.ToDatabase(attachment)
	if err := t.repo.AddAttachment(ctx, &dbAttachment, &entry); err != nil {
		return nil, err
	}
	attachment.ID = dbAttachment.ID
	return &attachment, nil
}

// DeleteTask hard-deletes a task and its sub-collections. Employer and
// admin only.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.Role.IsManagement() {
		return errors.NewPermissionError("delete task", actor.Email)
	}
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}
	return t.repo.DeleteTask(ctx, actor.OrgID, id)
}

// loadTask fetches a task in the actor's organization
func (t *taskServiceImpl) loadTask(ctx context.Context, orgID, id string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	dbTask, err := t.repo.GetTask(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// visibleTask fetches a task and applies the visibility rule. A task the
// actor may not see is reported as not found rather than forbidden.
func (t *taskServiceImpl) visibleTask(ctx context.Context, actor domain.Actor, id string) (*domain.Task, error) {
	task, err := t.loadTask(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}

	leaderMembers, err := t.leaderTeamMembers(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !canView(actor, *task, leaderMembers) {
		return nil, errors.NewNotFoundError("task", id)
	}
	return task, nil
}

// leaderTeamMembers returns the actor's team member set when the actor
// leads their team, nil otherwise
func (t *taskServiceImpl) leaderTeamMembers(ctx context.Context, actor domain.Actor) ([]string, error) {
	if actor.Role.IsManagement() || actor.TeamID == "" {
		return nil, nil
	}
	team, err := t.teams.GetTeam(ctx, actor.OrgID, actor.TeamID)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if team.LeaderEmail != actor.Email {
		return nil, nil
	}
	return team.EffectiveMembers(), nil
}

func (t *taskServiceImpl) historyEntry(taskID string, eventType domain.EventType, actor, detail string, at time.Time) sqlite.HistoryEntry {
	return t.mapper.History.ToDatabase(domain.NewHistoryEntry(taskID, eventType, actor, detail, at))
}
