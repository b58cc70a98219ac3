package domain

import (
	"time"
)

// Notice is an addressed notification record produced by the dispatcher.
// Exactly one of TargetEmail or TargetRole is set: assignment and overdue
// notices address an individual, completion notices address a role audience.
type Notice struct {
	ID          string
	OrgID       string
	Title       string
	Message     string
	TargetEmail string
	TargetRole  Role
	TaskID      string
	Read        bool
	CreatedAt   time.Time
}

// IsRoleAddressed returns true if the notice targets a role audience
// rather than an individual recipient.
func (n Notice) IsRoleAddressed() bool {
	return n.TargetRole != ""
}
