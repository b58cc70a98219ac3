package services

import (
	"context"
	"testing"
	"time"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink records every notice it is handed, optionally failing
type captureSink struct {
	notices []domain.Notice
	fail    bool
}

func (c *captureSink) Send(_ context.Context, notice domain.Notice) error {
	if c.fail {
		return errors.NewDependencyError("notification sink", nil)
	}
	c.notices = append(c.notices, notice)
	return nil
}

func TestNotificationService_NotifyCreated(t *testing.T) {
	sink := &captureSink{}
	service := NewNotificationService(sink, domain.RoleEmployer)

	task := domain.Task{
		ID:        "task-1",
		OrgID:     "acme",
		Title:     "Prepare quarterly report",
		Assignees: []string{"lead@acme.test", "member@acme.test"},
	}
	service.NotifyCreated(context.Background(), task)

	require.Len(t, sink.notices, 2)
	assert.Equal(t, "lead@acme.test", sink.notices[0].TargetEmail)
	assert.Equal(t, "member@acme.test", sink.notices[1].TargetEmail)
	for _, notice := range sink.notices {
		assert.Equal(t, "New Task Assigned", notice.Title)
		assert.Equal(t, "task-1", notice.TaskID)
		assert.Equal(t, "acme", notice.OrgID)
		assert.NotEmpty(t, notice.ID)
		assert.False(t, notice.IsRoleAddressed())
	}
}

func TestNotificationService_NotifyCompleted(t *testing.T) {
	sink := &captureSink{}
	service := NewNotificationService(sink, domain.RoleEmployer)

	task := domain.Task{ID: "task-1", OrgID: "acme", Title: "Prepare quarterly report"}
	actor := domain.Actor{Email: "member@acme.test", OrgID: "acme", Role: domain.RoleEmployee}
	service.NotifyCompleted(context.Background(), task, actor)

	require.Len(t, sink.notices, 1)
	notice := sink.notices[0]
	assert.Equal(t, domain.RoleEmployer, notice.TargetRole)
	assert.Empty(t, notice.TargetEmail)
	assert.True(t, notice.IsRoleAddressed())
	assert.Contains(t, notice.Message, "member@acme.test")
	assert.Contains(t, notice.Message, "Prepare quarterly report")
}

func TestNotificationService_NotifyOverdue(t *testing.T) {
	sink := &captureSink{}
	service := NewNotificationService(sink, domain.RoleEmployer)

	task := domain.Task{
		ID:        "task-1",
		OrgID:     "acme",
		Title:     "Prepare quarterly report",
		Assignees: []string{"member@acme.test"},
	}
	service.NotifyOverdue(context.Background(), task)

	require.Len(t, sink.notices, 1)
	assert.Equal(t, "Task Overdue", sink.notices[0].Title)
	assert.Equal(t, "member@acme.test", sink.notices[0].TargetEmail)
}

func TestNotificationService_SinkFailureIsSwallowed(t *testing.T) {
	sink := &captureSink{fail: true}
	service := NewNotificationService(sink, domain.RoleEmployer)

	task := domain.Task{ID: "task-1", OrgID: "acme", Title: "t", Assignees: []string{"a@acme.test"}}

	// None of these must panic or surface the sink error.
	service.NotifyCreated(context.Background(), task)
	service.NotifyCompleted(context.Background(), task, domain.Actor{Email: "a@acme.test"})
	service.NotifyOverdue(context.Background(), task)

	assert.Empty(t, sink.notices)
}

func TestOutboxSink_SendAndListInbox(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	notice := domain.Notice{
		ID:          "n-1",
		OrgID:       "acme",
		Title:       "New Task Assigned",
		Message:     "You have been assigned: t",
		TargetEmail: "member@acme.test",
		TaskID:      "task-1",
		CreatedAt:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.outbox.Send(ctx, notice))

	inbox, err := f.outbox.ListInbox(ctx, "acme", "member@acme.test", domain.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, notice.Title, inbox[0].Title)
	assert.False(t, inbox[0].Read)

	// Not addressed to anyone else.
	inbox, err = f.outbox.ListInbox(ctx, "acme", "solo@acme.test", domain.RoleEmployee)
	require.NoError(t, err)
	assert.Empty(t, inbox)
}
