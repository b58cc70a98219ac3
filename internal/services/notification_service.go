package services

import (
	"context"
	"time"

	"work-tracker/internal/domain"
	"work-tracker/internal/logging"
	"work-tracker/internal/repository/sqlite"

	"github.com/google/uuid"
)

// notificationServiceImpl implements the NotificationService interface.
// It addresses one notice per recipient and pushes them through the
// sink. A failing sink is logged and swallowed; dispatch never affects
// the store operation that triggered it.
type notificationServiceImpl struct {
	sink              NotificationSink
	completedAudience domain.Role
	now               func() time.Time
}

// NewNotificationService creates a new NotificationService instance.
// completedAudience is the role completion notices are addressed to.
func NewNotificationService(sink NotificationSink, completedAudience domain.Role) NotificationService {
	return &notificationServiceImpl{
		sink:              sink,
		completedAudience: completedAudience,
		now:               time.Now,
	}
}

// NotifyCreated sends one individually addressed notice per initial assignee
func (n *notificationServiceImpl) NotifyCreated(ctx context.Context, task domain.Task) {
	for _, email := range task.Assignees {
		n.send(ctx, domain.Notice{
			ID:          uuid.NewString(),
			OrgID:       task.OrgID,
			Title:       "New Task Assigned",
			Message:     "You have been assigned: " + task.Title,
			TargetEmail: email,
			TaskID:      task.ID,
			CreatedAt:   n.now().UTC(),
		})
	}
}

// NotifyCompleted sends one role-addressed notice naming the actor and task
func (n *notificationServiceImpl) NotifyCompleted(ctx context.Context, task domain.Task, actor domain.Actor) {
	n.send(ctx, domain.Notice{
		ID:         uuid.NewString(),
		OrgID:      task.OrgID,
		Title:      "Task Completed",
		Message:    actor.Email + " completed: " + task.Title,
		TargetRole: n.completedAudience,
		TaskID:     task.ID,
		CreatedAt:  n.now().UTC(),
	})
}

// NotifyOverdue sends one individually addressed notice per assignee of
// an overdue task
func (n *notificationServiceImpl) NotifyOverdue(ctx context.Context, task domain.Task) {
	for _, email := range task.Assignees {
		n.send(ctx, domain.Notice{
			ID:          uuid.NewString(),
			OrgID:       task.OrgID,
			Title:       "Task Overdue",
			Message:     "Past due: " + task.Title,
			TargetEmail: email,
			TaskID:      task.ID,
			CreatedAt:   n.now().UTC(),
		})
	}
}

func (n *notificationServiceImpl) send(ctx context.Context, notice domain.Notice) {
	if err := n.sink.Send(ctx, notice); err != nil {
		logging.Errorf("notification dispatch failed for task %s: %v", notice.TaskID, err)
	}
}

// outboxSink implements NotificationOutbox by writing notices to the
// repository's notices table, the read model behind the inbox view.
type outboxSink struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewOutboxSink creates a repository-backed NotificationOutbox
func NewOutboxSink(repo sqlite.Repository) NotificationOutbox {
	return &outboxSink{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Send persists the notice
func (o *outboxSink) Send(ctx context.Context, notice domain.Notice) error {
	dbNotice := o.mapper.Notice.ToDatabase(notice)
	return o.repo.CreateNotice(ctx, &dbNotice)
}

// ListInbox retrieves the notices addressed to a recipient directly or
// through their role, newest first
func (o *outboxSink) ListInbox(ctx context.Context, orgID, email string, role domain.Role) ([]domain.Notice, error) {
	dbNotices, err := o.repo.ListNotices(ctx, orgID, email, string(role))
	if err != nil {
		return nil, err
	}
	return o.mapper.Notice.FromDatabaseSlice(dbNotices), nil
}
