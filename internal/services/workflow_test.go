package services

import (
	"testing"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.Status
		to        domain.Status
		errorType *errors.ErrorType
	}{
		{
			name: "pending to in_progress is legal",
			from: domain.StatusPending,
			to:   domain.StatusInProgress,
		},
		{
			name: "in_progress to completed is legal",
			from: domain.StatusInProgress,
			to:   domain.StatusCompleted,
		},
		{
			name:      "pending cannot skip to completed",
			from:      domain.StatusPending,
			to:        domain.StatusCompleted,
			errorType: errorTypePtr(errors.ErrorTypeValidation),
		},
		{
			name:      "no backward transition",
			from:      domain.StatusInProgress,
			to:        domain.StatusPending,
			errorType: errorTypePtr(errors.ErrorTypeValidation),
		},
		{
			name:      "completed is terminal",
			from:      domain.StatusCompleted,
			to:        domain.StatusInProgress,
			errorType: errorTypePtr(errors.ErrorTypeValidation),
		},
		{
			name:      "same status is a conflict",
			from:      domain.StatusInProgress,
			to:        domain.StatusInProgress,
			errorType: errorTypePtr(errors.ErrorTypeConflict),
		},
		{
			name:      "unknown status rejected",
			from:      domain.StatusPending,
			to:        domain.Status("archived"),
			errorType: errorTypePtr(errors.ErrorTypeValidation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransition(tt.from, tt.to)

			if tt.errorType == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorType(err, *tt.errorType))
			}
		})
	}
}

func TestAuthorizeTransition(t *testing.T) {
	task := domain.Task{
		ID:        "task-1",
		Assignees: []string{"member@acme.test"},
	}

	tests := []struct {
		name    string
		actor   domain.Actor
		allowed bool
	}{
		{
			name:    "assignee may transition",
			actor:   domain.Actor{Email: "member@acme.test", Role: domain.RoleEmployee},
			allowed: true,
		},
		{
			name:    "employer may transition",
			actor:   domain.Actor{Email: "boss@acme.test", Role: domain.RoleEmployer},
			allowed: true,
		},
		{
			name:    "admin may transition",
			actor:   domain.Actor{Email: "admin@acme.test", Role: domain.RoleAdmin},
			allowed: true,
		},
		{
			name:    "unrelated employee rejected",
			actor:   domain.Actor{Email: "other@acme.test", Role: domain.RoleEmployee},
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeTransition(tt.actor, task)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
			}
		})
	}
}

func TestCanView(t *testing.T) {
	task := domain.Task{
		ID:           "task-1",
		CreatorEmail: "creator@acme.test",
		Assignees:    []string{"member@acme.test"},
	}

	tests := []struct {
		name          string
		actor         domain.Actor
		leaderMembers []string
		visible       bool
	}{
		{
			name:    "management sees everything",
			actor:   domain.Actor{Email: "boss@acme.test", Role: domain.RoleEmployer},
			visible: true,
		},
		{
			name:    "creator sees own task",
			actor:   domain.Actor{Email: "creator@acme.test", Role: domain.RoleEmployee},
			visible: true,
		},
		{
			name:    "assignee sees assigned task",
			actor:   domain.Actor{Email: "member@acme.test", Role: domain.RoleEmployee},
			visible: true,
		},
		{
			name:          "leader sees a team member's task",
			actor:         domain.Actor{Email: "lead@acme.test", Role: domain.RoleEmployee},
			leaderMembers: []string{"lead@acme.test", "member@acme.test"},
			visible:       true,
		},
		{
			name:    "unrelated employee sees nothing",
			actor:   domain.Actor{Email: "other@acme.test", Role: domain.RoleEmployee},
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, canView(tt.actor, task, tt.leaderMembers))
		})
	}
}

func errorTypePtr(et errors.ErrorType) *errors.ErrorType {
	return &et
}
