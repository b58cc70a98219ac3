package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"work-tracker/internal/config"
	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/logging"
	"work-tracker/internal/repository/sqlite"

	"github.com/robfig/cron/v3"
)

// reminderServiceImpl implements the ReminderService interface. It
// periodically sweeps for non-completed tasks past their due date and
// dispatches overdue notices through the notification service. Due
// dates stay advisory: the sweep never touches task state.
type reminderServiceImpl struct {
	repo          sqlite.Repository
	notifications NotificationService
	mapper        *domain.Mapper
	spec          string
	scheduler     *cron.Cron
	now           func() time.Time
}

// NewReminderService creates a new ReminderService instance from the
// reminder configuration: a fixed interval when set, otherwise a daily
// run at the configured HH:MM.
func NewReminderService(repo sqlite.Repository, notifications NotificationService, cfg config.ReminderConfig) (ReminderService, error) {
	spec, err := cronSpec(cfg)
	if err != nil {
		return nil, err
	}
	return &reminderServiceImpl{
		repo:          repo,
		notifications: notifications,
		mapper:        domain.NewMapper(),
		spec:          spec,
		now:           time.Now,
	}, nil
}

// RunSweep performs one overdue sweep and returns the number of tasks
// it dispatched notices for
func (r *reminderServiceImpl) RunSweep(ctx context.Context) (int, error) {
	dbTasks, err := r.repo.ListOverdueTasks(ctx, r.now().UTC())
	if err != nil {
		return 0, err
	}

	tasks := r.mapper.Task.FromDatabaseSlice(dbTasks)
	for _, task := range tasks {
		r.notifications.NotifyOverdue(ctx, task)
	}
	return len(tasks), nil
}

// Start schedules the recurring sweep. It returns once the scheduler is
// running; Stop shuts it down.
func (r *reminderServiceImpl) Start(ctx context.Context) error {
	if r.scheduler != nil {
		return errors.NewValidationError("reminder scheduler already started", nil)
	}

	r.scheduler = cron.New()
	_, err := r.scheduler.AddFunc(r.spec, func() {
		count, err := r.RunSweep(ctx)
		if err != nil {
			logging.Errorf("overdue sweep failed: %v", err)
			return
		}
		logging.Debugf("overdue sweep dispatched notices for %d tasks", count)
	})
	if err != nil {
		r.scheduler = nil
		return errors.NewValidationError("invalid reminder schedule: "+r.spec, err)
	}

	r.scheduler.Start()
	return nil
}

// Stop halts the recurring sweep, waiting for a running sweep to finish
func (r *reminderServiceImpl) Stop() {
	if r.scheduler == nil {
		return
	}
	<-r.scheduler.Stop().Done()
	r.scheduler = nil
}

// cronSpec maps the reminder configuration onto a cron expression
func cronSpec(cfg config.ReminderConfig) (string, error) {
	if cfg.Interval > 0 {
		return "@every " + cfg.Interval.String(), nil
	}

	parts := strings.SplitN(cfg.DailyAt, ":", 2)
	if len(parts) != 2 {
		return "", errors.NewValidationError("reminder daily_at must be HH:MM: "+cfg.DailyAt, nil)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(cfg.DailyAt, "%d:%d", &hour, &minute); err != nil {
		return "", errors.NewValidationError("reminder daily_at must be HH:MM: "+cfg.DailyAt, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", errors.NewValidationError("reminder daily_at out of range: "+cfg.DailyAt, nil)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
