package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Status
		to       Status
		expected bool
	}{
		{"pending to in progress", StatusPending, StatusInProgress, true},
		{"in progress to completed", StatusInProgress, StatusCompleted, true},
		{"pending straight to completed is forbidden", StatusPending, StatusCompleted, false},
		{"no backward transition from in progress", StatusInProgress, StatusPending, false},
		{"no backward transition from completed", StatusCompleted, StatusInProgress, false},
		{"completed is terminal", StatusCompleted, StatusPending, false},
		{"no self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestAssignmentType_IsValid(t *testing.T) {
	assert.True(t, AssignmentIndividual.IsValid())
	assert.True(t, AssignmentTeam.IsValid())
	assert.True(t, AssignmentDelegate.IsValid())
	assert.False(t, AssignmentType("group").IsValid())
}

func TestTask_IsAssignee(t *testing.T) {
	task := Task{Assignees: []string{"a@x.com", "b@x.com"}}

	assert.True(t, task.IsAssignee("a@x.com"))
	assert.True(t, task.IsAssignee("b@x.com"))
	assert.False(t, task.IsAssignee("c@x.com"))
}

func TestTask_DelegateLead(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected string
	}{
		{
			name:     "delegate task returns first assignee",
			task:     Task{AssignmentType: AssignmentDelegate, Assignees: []string{"lead@x.com", "e@x.com"}},
			expected: "lead@x.com",
		},
		{
			name:     "individual task has no lead",
			task:     Task{AssignmentType: AssignmentIndividual, Assignees: []string{"a@x.com"}},
			expected: "",
		},
		{
			name:     "delegate task with empty assignees",
			task:     Task{AssignmentType: AssignmentDelegate},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.DelegateLead())
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"past due pending task", Task{Status: StatusPending, DueDate: &past}, true},
		{"past due in progress task", Task{Status: StatusInProgress, DueDate: &past}, true},
		{"past due completed task is not overdue", Task{Status: StatusCompleted, DueDate: &past}, false},
		{"future due date", Task{Status: StatusPending, DueDate: &future}, false},
		{"no due date", Task{Status: StatusPending}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsOverdue(now))
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	valid := Task{
		Title:          "Ship report",
		Status:         StatusPending,
		AssignmentType: AssignmentIndividual,
		Assignees:      []string{"a@x.com"},
	}
	assert.True(t, valid.IsValid())

	noTitle := valid
	noTitle.Title = ""
	assert.False(t, noTitle.IsValid())

	noAssignees := valid
	noAssignees.Assignees = nil
	assert.False(t, noAssignees.IsValid())
}
