package api

import (
	"context"
	"testing"
	"time"

	"work-tracker/internal/config"
	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/repository/sqlite"
	"work-tracker/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) API {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	a, err := New(repo, config.NewConfig())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, a.UpsertEmployee(ctx, domain.Employee{
		Email: "boss@acme.test", Name: "Bo Boss", OrgID: "acme", Role: domain.RoleEmployer,
	}))
	require.NoError(t, a.UpsertEmployee(ctx, domain.Employee{
		Email: "member@acme.test", Name: "Mel Member", OrgID: "acme", Role: domain.RoleEmployee,
	}))
	return a
}

func TestAPI_EndToEndLifecycle(t *testing.T) {
	a := newTestAPI(t)
	ctx := context.Background()

	boss, err := a.ResolveActor(ctx, "acme", "boss@acme.test")
	require.NoError(t, err)
	member, err := a.ResolveActor(ctx, "acme", "member@acme.test")
	require.NoError(t, err)

	task, err := a.CreateTask(ctx, boss, services.TaskDraft{
		Title:          "Prepare quarterly report",
		AssignmentType: domain.AssignmentIndividual,
		AssigneeEmails: []string{"member@acme.test"},
	})
	require.NoError(t, err)

	_, err = a.TransitionTaskStatus(ctx, member, task.ID, domain.StatusInProgress)
	require.NoError(t, err)
	_, err = a.AddTaskComment(ctx, member, task.ID, "drafting now")
	require.NoError(t, err)
	_, err = a.TransitionTaskStatus(ctx, member, task.ID, domain.StatusCompleted)
	require.NoError(t, err)

	detail, err := a.GetTask(ctx, boss, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, detail.Task.Status)
	assert.Len(t, detail.History, 4)
	assert.Equal(t, domain.EventCreated, detail.History[0].Type)

	// The assignment notice reached the member and the completion notice
	// reached the employer role.
	inbox, err := a.ListInbox(ctx, "acme", "member@acme.test")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "New Task Assigned", inbox[0].Title)

	inbox, err = a.ListInbox(ctx, "acme", "boss@acme.test")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Task Completed", inbox[0].Title)
}

func TestAPI_ResolveActorUnknown(t *testing.T) {
	a := newTestAPI(t)

	_, err := a.ResolveActor(context.Background(), "acme", "ghost@acme.test")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestAPI_RunOverdueSweep(t *testing.T) {
	a := newTestAPI(t)
	ctx := context.Background()

	boss, err := a.ResolveActor(ctx, "acme", "boss@acme.test")
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	_, err = a.CreateTask(ctx, boss, services.TaskDraft{
		Title:          "Overdue chores",
		AssignmentType: domain.AssignmentIndividual,
		AssigneeEmails: []string{"member@acme.test"},
		DueDate:        &past,
	})
	require.NoError(t, err)

	count, err := a.RunOverdueSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	inbox, err := a.ListInbox(ctx, "acme", "member@acme.test")
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "Task Overdue", inbox[0].Title)
}
