package domain

// Role represents the directory role of an actor.
type Role string

const (
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// IsValid checks if the role is recognized.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployer, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// IsManagement returns true for roles that may edit, delete and see every
// task in their organization.
func (r Role) IsManagement() bool {
	return r == RoleEmployer || r == RoleAdmin
}

// Capability is a closed enum of fine-grained permissions an employee can
// hold beyond their role. The set of recognized capabilities is centralized
// here so checks stay exhaustive.
type Capability string

const (
	// CapabilityAssignTasks lets a non-management actor create tasks for
	// any employee in the organization.
	CapabilityAssignTasks Capability = "assign_tasks"
)

// IsValid checks if the capability is recognized.
func (c Capability) IsValid() bool {
	return c == CapabilityAssignTasks
}

// Actor is the authenticated caller identity supplied by the request
// context. The core never authenticates; it only authorizes a trusted
// actor against the operation being requested.
type Actor struct {
	Email        string
	OrgID        string
	Role         Role
	Capabilities []Capability
	TeamID       string // team membership from the directory, empty if none
}

// HasCapability reports whether the actor holds the given capability.
// Management roles implicitly hold every capability.
func (a Actor) HasCapability(c Capability) bool {
	if a.Role.IsManagement() {
		return true
	}
	for _, held := range a.Capabilities {
		if held == c {
			return true
		}
	}
	return false
}
