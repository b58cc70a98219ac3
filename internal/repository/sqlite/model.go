package sqlite

import "time"

// Task is the database representation of a work directive.
// Assignees are stored in the task_assignees table ordered by position
// and loaded alongside the row; tags are stored comma-joined.
type Task struct {
	ID             string
	OrgID          string
	Title          string
	Description    string
	Status         string
	Priority       string
	DueDate        *time.Time
	AssignmentType string
	TeamID         string
	CreatorEmail   string
	CreatedAt      time.Time
	Category       string
	Tags           string
	EstimatedHours float64
	Assignees      []string
}

// HistoryEntry is a row in the append-only task_history log.
type HistoryEntry struct {
	ID        int64
	TaskID    string
	EventType string
	Actor     string
	Detail    string
	CreatedAt time.Time
}

// Comment is a row in the append-only task_comments log.
type Comment struct {
	ID        int64
	TaskID    string
	Actor     string
	Body      string
	CreatedAt time.Time
}

// Attachment is a row in the append-only task_attachments log.
type Attachment struct {
	ID        int64
	TaskID    string
	Name      string
	URL       string
	Actor     string
	CreatedAt time.Time
}

// Employee is the database representation of a directory record.
// Capabilities are stored comma-joined.
type Employee struct {
	OrgID        string
	Email        string
	Name         string
	Role         string
	Capabilities string
	TeamID       string
}

// Team is the database representation of a team definition.
// Members are stored in the team_members table.
type Team struct {
	ID           string
	OrgID        string
	Name         string
	LeaderEmail  string
	MemberEmails []string
}

// Notice is the database representation of an addressed notification.
type Notice struct {
	ID          string
	OrgID       string
	Title       string
	Message     string
	TargetEmail string
	TargetRole  string
	TaskID      string
	Read        bool
	CreatedAt   time.Time
}
