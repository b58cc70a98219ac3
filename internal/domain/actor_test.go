package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsManagement(t *testing.T) {
	assert.True(t, RoleEmployer.IsManagement())
	assert.True(t, RoleAdmin.IsManagement())
	assert.False(t, RoleEmployee.IsManagement())
}

func TestActor_HasCapability(t *testing.T) {
	tests := []struct {
		name     string
		actor    Actor
		expected bool
	}{
		{
			name:     "employer implicitly holds every capability",
			actor:    Actor{Role: RoleEmployer},
			expected: true,
		},
		{
			name:     "admin implicitly holds every capability",
			actor:    Actor{Role: RoleAdmin},
			expected: true,
		},
		{
			name:     "employee with explicit capability",
			actor:    Actor{Role: RoleEmployee, Capabilities: []Capability{CapabilityAssignTasks}},
			expected: true,
		},
		{
			name:     "employee without capability",
			actor:    Actor{Role: RoleEmployee},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.actor.HasCapability(CapabilityAssignTasks))
		})
	}
}

func TestEmployee_Actor(t *testing.T) {
	emp := Employee{
		Email:        "lead@x.com",
		OrgID:        "acme",
		Role:         RoleEmployee,
		Capabilities: []Capability{CapabilityAssignTasks},
		TeamID:       "team-1",
	}

	actor := emp.Actor()
	assert.Equal(t, "lead@x.com", actor.Email)
	assert.Equal(t, "acme", actor.OrgID)
	assert.Equal(t, RoleEmployee, actor.Role)
	assert.Equal(t, "team-1", actor.TeamID)
	assert.True(t, actor.HasCapability(CapabilityAssignTasks))
}

func TestTeam_EffectiveMembers(t *testing.T) {
	tests := []struct {
		name     string
		team     Team
		expected []string
	}{
		{
			name:     "leader first then members",
			team:     Team{LeaderEmail: "l@x.com", MemberEmails: []string{"m1@x.com", "m2@x.com"}},
			expected: []string{"l@x.com", "m1@x.com", "m2@x.com"},
		},
		{
			name:     "leader duplicated in members is deduplicated",
			team:     Team{LeaderEmail: "l@x.com", MemberEmails: []string{"m1@x.com", "l@x.com"}},
			expected: []string{"l@x.com", "m1@x.com"},
		},
		{
			name:     "duplicate members collapse",
			team:     Team{LeaderEmail: "l@x.com", MemberEmails: []string{"m1@x.com", "m1@x.com"}},
			expected: []string{"l@x.com", "m1@x.com"},
		},
		{
			name:     "team with no members",
			team:     Team{LeaderEmail: "l@x.com"},
			expected: []string{"l@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.team.EffectiveMembers())
		})
	}
}

func TestTeam_HasMember(t *testing.T) {
	team := Team{LeaderEmail: "l@x.com", MemberEmails: []string{"m1@x.com"}}

	assert.True(t, team.HasMember("l@x.com"))
	assert.True(t, team.HasMember("m1@x.com"))
	assert.False(t, team.HasMember("outsider@x.com"))
}
