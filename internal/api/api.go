package api

import (
	"context"

	"work-tracker/internal/config"
	"work-tracker/internal/domain"
	"work-tracker/internal/repository/sqlite"
	"work-tracker/internal/services"
)

// API is the operation surface of the engine, consumed by the CLI.
// Every task operation takes the trusted actor identity; the engine
// authorizes but never authenticates.
type API interface {
	// Actor resolution
	ResolveActor(ctx context.Context, orgID, email string) (domain.Actor, error)

	// Task operations
	CreateTask(ctx context.Context, actor domain.Actor, draft services.TaskDraft) (*domain.Task, error)
	GetTask(ctx context.Context, actor domain.Actor, id string) (*services.TaskDetail, error)
	ListTasksVisibleTo(ctx context.Context, actor domain.Actor, filter services.ListFilter) ([]domain.Task, error)
	UpdateTaskFields(ctx context.Context, actor domain.Actor, id string, patch services.FieldPatch) (*domain.Task, error)
	TransitionTaskStatus(ctx context.Context, actor domain.Actor, id string, next domain.Status) (*domain.Task, error)
	ManageTaskTeam(ctx context.Context, actor domain.Actor, id string, newEmails []string) (*domain.Task, error)
	AddTaskComment(ctx context.Context, actor domain.Actor, id string, text string) (*domain.Comment, error)
	AddTaskAttachment(ctx context.Context, actor domain.Actor, id string, name, url string) (*domain.Attachment, error)
	DeleteTask(ctx context.Context, actor domain.Actor, id string) error

	// Directory administration
	UpsertEmployee(ctx context.Context, employee domain.Employee) error
	ListEmployees(ctx context.Context, orgID string) ([]domain.Employee, error)
	UpsertTeam(ctx context.Context, team domain.Team) error
	GetTeam(ctx context.Context, orgID, teamID string) (*domain.Team, error)

	// Notifications
	ListInbox(ctx context.Context, orgID, email string) ([]domain.Notice, error)

	// Reminders
	RunOverdueSweep(ctx context.Context) (int, error)
	StartReminderDaemon(ctx context.Context) error
	StopReminderDaemon()
}

type apiImpl struct {
	services *services.ServiceContainer
}

// New wires the full service stack over the repository and returns the
// engine's operation surface.
func New(repo sqlite.Repository, cfg *config.Config) (API, error) {
	directory := services.NewDirectoryService(repo)
	outbox := services.NewOutboxSink(repo)
	notifications := services.NewNotificationService(outbox, domain.Role(cfg.Notifications.CompletionAudience))
	assignments := services.NewAssignmentService(directory, directory)
	tasks := services.NewTaskService(repo, assignments, directory, notifications)
	reminder, err := services.NewReminderService(repo, notifications, cfg.Reminder)
	if err != nil {
		return nil, err
	}

	return &apiImpl{
		services: &services.ServiceContainer{
			AssignmentService:   assignments,
			TaskService:         tasks,
			NotificationService: notifications,
			DirectoryService:    directory,
			ReminderService:     reminder,
			Outbox:              outbox,
		},
	}, nil
}

// ResolveActor builds the trusted caller identity from the directory
func (a *apiImpl) ResolveActor(ctx context.Context, orgID, email string) (domain.Actor, error) {
	employee, err := a.services.DirectoryService.GetEmployee(ctx, orgID, email)
	if err != nil {
		return domain.Actor{}, err
	}
	return employee.Actor(), nil
}

func (a *apiImpl) CreateTask(ctx context.Context, actor domain.Actor, draft services.TaskDraft) (*domain.Task, error) {
	return a.services.TaskService.CreateTask(ctx, actor, draft)
}

func (a *apiImpl) GetTask(ctx context.Context, actor domain.Actor, id string) (*services.TaskDetail, error) {
	return a.services.TaskService.GetTask(ctx, actor, id)
}

func (a *apiImpl) ListTasksVisibleTo(ctx context.Context, actor domain.Actor, filter services.ListFilter) ([]domain.Task, error) {
	return a.services.TaskService.ListTasks(ctx, actor, filter)
}

func (a *apiImpl) UpdateTaskFields(ctx context.Context, actor domain.Actor, id string, patch services.FieldPatch) (*domain.Task, error) {
	return a.services.TaskService.UpdateTaskFields(ctx, actor, id, patch)
}

func (a *apiImpl) TransitionTaskStatus(ctx context.Context, actor domain.Actor, id string, next domain.Status) (*domain.Task, error) {
	return a.services.TaskService.TransitionStatus(ctx, actor, id, next)
}

func (a *apiImpl) ManageTaskTeam(ctx context.Context, actor domain.Actor, id string, newEmails []string) (*domain.Task, error) {
	return a.services.TaskService.ManageTeam(ctx, actor, id, newEmails)
}

func (a *apiImpl) AddTaskComment(ctx context.Context, actor domain.Actor, id string, text string) (*domain.Comment, error) {
	return a.services.TaskService.AddComment(ctx, actor, id, text)
}

func (a *apiImpl) AddTaskAttachment(ctx context.Context, actor domain.Actor, id string, name, url string) (*domain.Attachment, error) {
	return a.services.TaskService.AddAttachment(ctx, actor, id, name, url)
}

func (a *apiImpl) DeleteTask(ctx context.Context, actor domain.Actor, id string) error {
	return a.services.TaskService.DeleteTask(ctx, actor, id)
}

func (a *apiImpl) UpsertEmployee(ctx context.Context, employee domain.Employee) error {
	return a.services.DirectoryService.UpsertEmployee(ctx, employee)
}

func (a *apiImpl) ListEmployees(ctx context.Context, orgID string) ([]domain.Employee, error) {
	return a.services.DirectoryService.ListEmployees(ctx, orgID)
}

func (a *apiImpl) UpsertTeam(ctx context.Context, team domain.Team) error {
	return a.services.DirectoryService.UpsertTeam(ctx, team)
}

func (a *apiImpl) GetTeam(ctx context.Context, orgID, teamID string) (*domain.Team, error) {
	return a.services.DirectoryService.GetTeam(ctx, orgID, teamID)
}

// ListInbox lists the notices addressed to the given recipient, directly
// or through their directory role
func (a *apiImpl) ListInbox(ctx context.Context, orgID, email string) ([]domain.Notice, error) {
	role := domain.Role("")
	if employee, err := a.services.DirectoryService.GetEmployee(ctx, orgID, email); err == nil {
		role = employee.Role
	}
	return a.services.Outbox.ListInbox(ctx, orgID, email, role)
}

func (a *apiImpl) RunOverdueSweep(ctx context.Context) (int, error) {
	return a.services.ReminderService.RunSweep(ctx)
}

func (a *apiImpl) StartReminderDaemon(ctx context.Context) error {
	return a.services.ReminderService.Start(ctx)
}

func (a *apiImpl) StopReminderDaemon() {
	a.services.ReminderService.Stop()
}
