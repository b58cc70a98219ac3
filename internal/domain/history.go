package domain

import (
	"time"
)

// EventType identifies the kind of activity recorded in a task's history.
type EventType string

const (
	EventCreated      EventType = "created"
	EventStatusChange EventType = "status_change"
	EventTeamUpdated  EventType = "team_updated"
	EventUpdate       EventType = "update"
	EventComment      EventType = "comment"
	EventAttachment   EventType = "attachment"
)

// IsValid checks if the event type is recognized.
func (et EventType) IsValid() bool {
	switch et {
	case EventCreated, EventStatusChange, EventTeamUpdated, EventUpdate, EventComment, EventAttachment:
		return true
	}
	return false
}

// HistoryEntry is a single record in a task's append-only audit trail.
// Entries are never deleted or reordered.
type HistoryEntry struct {
	ID        int64
	TaskID    string
	Type      EventType
	Actor     string
	Detail    string
	Timestamp time.Time
}

// NewHistoryEntry creates a history entry for the given task and event.
func NewHistoryEntry(taskID string, eventType EventType, actor, detail string, at time.Time) HistoryEntry {
	return HistoryEntry{
		TaskID:    taskID,
		Type:      eventType,
		Actor:     actor,
		Detail:    detail,
		Timestamp: at,
	}
}

// Comment is an append-only remark left on a task by an actor.
type Comment struct {
	ID        int64
	TaskID    string
	Actor     string
	Text      string
	Timestamp time.Time
}

// commentPreviewLimit caps the comment excerpt recorded in history detail.
const commentPreviewLimit = 30

// Preview returns a truncated excerpt of the comment text suitable for a
// history entry detail, at most 30 characters plus an ellipsis.
func (c Comment) Preview() string {
	runes := []rune(c.Text)
	if len(runes) <= commentPreviewLimit {
		return c.Text
	}
	return string(runes[:commentPreviewLimit]) + "..."
}

// Attachment is an append-only file reference attached to a task.
type Attachment struct {
	ID        int64
	TaskID    string
	Name      string
	URL       string
	Actor     string
	Timestamp time.Time
}
