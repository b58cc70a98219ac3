package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanMultiple collects rows using a single-row scan function.
func scanMultiple[T any](rows Rows, scanFunc func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		result, err := scanFunc(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanTask scans a single task from a database row (assignees are loaded separately)
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var dueDate sql.NullString
	var createdAt string

	err := scanner.Scan(
		&task.ID,
		&task.OrgID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&dueDate,
		&task.AssignmentType,
		&task.TeamID,
		&task.CreatorEmail,
		&createdAt,
		&task.Category,
		&task.Tags,
		&task.EstimatedHours,
	)
	if err != nil {
		return nil, err
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		due, err := ParseTimeFromDB(dueDate.String)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return scanMultiple(rows, ScanTask)
}

// ScanHistoryEntry scans a single history entry from a database row
func ScanHistoryEntry(scanner Scanner) (*HistoryEntry, error) {
	entry := &HistoryEntry{}
	var createdAt string

	err := scanner.Scan(&entry.ID, &entry.TaskID, &entry.EventType, &entry.Actor, &entry.Detail, &createdAt)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ScanHistoryEntries scans multiple history entries from database rows
func ScanHistoryEntries(rows Rows) ([]*HistoryEntry, error) {
	return scanMultiple(rows, ScanHistoryEntry)
}

// ScanComment scans a single comment from a database row
func ScanComment(scanner Scanner) (*Comment, error) {
	comment := &Comment{}
	var createdAt string

	err := scanner.Scan(&comment.ID, &comment.TaskID, &comment.Actor, &comment.Body, &createdAt)
	if err != nil {
		return nil, err
	}

	comment.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ScanComments scans multiple comments from database rows
func ScanComments(rows Rows) ([]*Comment, error) {
	return scanMultiple(rows, ScanComment)
}

// ScanAttachment scans a single attachment from a database row
func ScanAttachment(scanner Scanner) (*Attachment, error) {
	attachment := &Attachment{}
	var createdAt string

	err := scanner.Scan(&attachment.ID, &attachment.TaskID, &attachment.Name, &attachment.URL, &attachment.Actor, &createdAt)
	if err != nil {
		return nil, err
	}

	attachment.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	return attachment, nil
}

// ScanAttachments scans multiple attachments from database rows
func ScanAttachments(rows Rows) ([]*Attachment, error) {
	return scanMultiple(rows, ScanAttachment)
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	err := scanner.Scan(&employee.OrgID, &employee.Email, &employee.Name, &employee.Role, &employee.Capabilities, &employee.TeamID)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	return scanMultiple(rows, ScanEmployee)
}

// ScanTeam scans a single team from a database row (members are loaded separately)
func ScanTeam(scanner Scanner) (*Team, error) {
	team := &Team{}
	err := scanner.Scan(&team.ID, &team.OrgID, &team.Name, &team.LeaderEmail)
	if err != nil {
		return nil, err
	}
	return team, nil
}

// ScanNotice scans a single notice from a database row
func ScanNotice(scanner Scanner) (*Notice, error) {
	notice := &Notice{}
	var createdAt string
	var read int

	err := scanner.Scan(
		&notice.ID,
		&notice.OrgID,
		&notice.Title,
		&notice.Message,
		&notice.TargetEmail,
		&notice.TargetRole,
		&notice.TaskID,
		&read,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	notice.Read = read != 0
	notice.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	return notice, nil
}

// ScanNotices scans multiple notices from database rows
func ScanNotices(rows Rows) ([]*Notice, error) {
	return scanMultiple(rows, ScanNotice)
}
