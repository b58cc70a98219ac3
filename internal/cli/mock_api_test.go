package cli

import (
	"context"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/services"
)

// mockAPI is a hand-written mock of api.API with per-method hooks.
// Unset hooks return a not-found error so tests fail loudly.
type mockAPI struct {
	resolveActorFunc         func(ctx context.Context, orgID, email string) (domain.Actor, error)
	createTaskFunc           func(ctx context.Context, actor domain.Actor, draft services.TaskDraft) (*domain.Task, error)
	getTaskFunc              func(ctx context.Context, actor domain.Actor, id string) (*services.TaskDetail, error)
	listTasksFunc            func(ctx context.Context, actor domain.Actor, filter services.ListFilter) ([]domain.Task, error)
	updateTaskFieldsFunc     func(ctx context.Context, actor domain.Actor, id string, patch services.FieldPatch) (*domain.Task, error)
	transitionTaskFunc       func(ctx context.Context, actor domain.Actor, id string, next domain.Status) (*domain.Task, error)
	manageTaskTeamFunc       func(ctx context.Context, actor domain.Actor, id string, newEmails []string) (*domain.Task, error)
	addTaskCommentFunc       func(ctx context.Context, actor domain.Actor, id string, text string) (*domain.Comment, error)
	addTaskAttachmentFunc    func(ctx context.Context, actor domain.Actor, id string, name, url string) (*domain.Attachment, error)
	deleteTaskFunc           func(ctx context.Context, actor domain.Actor, id string) error
	upsertEmployeeFunc       func(ctx context.Context, employee domain.Employee) error
	listEmployeesFunc        func(ctx context.Context, orgID string) ([]domain.Employee, error)
	upsertTeamFunc           func(ctx context.Context, team domain.Team) error
	getTeamFunc              func(ctx context.Context, orgID, teamID string) (*domain.Team, error)
	listInboxFunc            func(ctx context.Context, orgID, email string) ([]domain.Notice, error)
	runOverdueSweepFunc      func(ctx context.Context) (int, error)
	startReminderDaemonFunc  func(ctx context.Context) error
	stopReminderDaemonCalled bool
}

func (m *mockAPI) ResolveActor(ctx context.Context, orgID, email string) (domain.Actor, error) {
	if m.resolveActorFunc != nil {
		return m.resolveActorFunc(ctx, orgID, email)
	}
	return domain.Actor{Email: email, OrgID: orgID, Role: domain.RoleEmployee}, nil
}

func (m *mockAPI) CreateTask(ctx context.Context, actor domain.Actor, draft services.TaskDraft) (*domain.Task, error) {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(ctx, actor, draft)
	}
	return nil, errors.NewNotFoundError("mock", "CreateTask")
}

func (m *mockAPI) GetTask(ctx context.Context, actor domain.Actor, id string) (*services.TaskDetail, error) {
	if m.getTaskFunc != nil {
		return m.getTaskFunc(ctx, actor, id)
	}
	return nil, errors.NewNotFoundError("mock", "GetTask")
}

func (m *mockAPI) ListTasksVisibleTo(ctx context.Context, actor domain.Actor, filter services.ListFilter) ([]domain.Task, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(ctx, actor, filter)
	}
	return nil, errors.NewNotFoundError("mock", "ListTasksVisibleTo")
}

func (m *mockAPI) UpdateTaskFields(ctx context.Context, actor domain.Actor, id string, patch services.FieldPatch) (*domain.Task, error) {
	if m.updateTaskFieldsFunc != nil {
		return m.updateTaskFieldsFunc(ctx, actor, id, patch)
	}
	return nil, errors.NewNotFoundError("mock", "UpdateTaskFields")
}

func (m *mockAPI) TransitionTaskStatus(ctx context.Context, actor domain.Actor, id string, next domain.Status) (*domain.Task, error) {
	if m.transitionTaskFunc != nil {
		return m.transitionTaskFunc(ctx, actor, id, next)
	}
	return nil, errors.NewNotFoundError("mock", "TransitionTaskStatus")
}

func (m *mockAPI) ManageTaskTeam(ctx context.Context, actor domain.Actor, id string, newEmails []string) (*domain.Task, error) {
	if m.manageTaskTeamFunc != nil {
		return m.manageTaskTeamFunc(ctx, actor, id, newEmails)
	}
	return nil, errors.NewNotFoundError("mock", "ManageTaskTeam")
}

func (m *mockAPI) AddTaskComment(ctx context.Context, actor domain.Actor, id string, text string) (*domain.Comment, error) {
	if m.addTaskCommentFunc != nil {
		return m.addTaskCommentFunc(ctx, actor, id, text)
	}
	return nil, errors.NewNotFoundError("mock", "AddTaskComment")
}

func (m *mockAPI) AddTaskAttachment(ctx context.Context, actor domain.Actor, id string, name, url string) (*domain.Attachment, error) {
	if m.addTaskAttachmentFunc != nil {
		return m.addTaskAttachmentFunc(ctx, actor, id, name, url)
	}
	return nil, errors.NewNotFoundError("mock", "AddTaskAttachment")
}

func (m *mockAPI) DeleteTask(ctx context.Context, actor domain.Actor, id string) error {
	if m.deleteTaskFunc != nil {
		return m.deleteTaskFunc(ctx, actor, id)
	}
	return errors.NewNotFoundError("mock", "DeleteTask")
}

func (m *mockAPI) UpsertEmployee(ctx context.Context, employee domain.Employee) error {
	if m.upsertEmployeeFunc != nil {
		return m.upsertEmployeeFunc(ctx, employee)
	}
	return nil
}

func (m *mockAPI) ListEmployees(ctx context.Context, orgID string) ([]domain.Employee, error) {
	if m.listEmployeesFunc != nil {
		return m.listEmployeesFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockAPI) UpsertTeam(ctx context.Context, team domain.Team) error {
	if m.upsertTeamFunc != nil {
		return m.upsertTeamFunc(ctx, team)
	}
	return nil
}

func (m *mockAPI) GetTeam(ctx context.Context, orgID, teamID string) (*domain.Team, error) {
	if m.getTeamFunc != nil {
		return m.getTeamFunc(ctx, orgID, teamID)
	}
	return nil, errors.NewNotFoundError("team", teamID)
}

func (m *mockAPI) ListInbox(ctx context.Context, orgID, email string) ([]domain.Notice, error) {
	if m.listInboxFunc != nil {
		return m.listInboxFunc(ctx, orgID, email)
	}
	return nil, nil
}

func (m *mockAPI) RunOverdueSweep(ctx context.Context) (int, error) {
	if m.runOverdueSweepFunc != nil {
		return m.runOverdueSweepFunc(ctx)
	}
	return 0, nil
}

func (m *mockAPI) StartReminderDaemon(ctx context.Context) error {
	if m.startReminderDaemonFunc != nil {
		return m.startReminderDaemonFunc(ctx)
	}
	return nil
}

func (m *mockAPI) StopReminderDaemon() {
	m.stopReminderDaemonCalled = true
}
