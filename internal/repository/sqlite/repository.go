package sqlite

import (
	"context"
	"database/sql"
	"time"

	"work-tracker/internal/errors"
	"work-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const taskColumns = `id, org_id, title, description, status, priority, due_date,
	assignment_type, team_id, creator_email, created_at, category, tags, estimated_hours`

// Repository defines the interface for database operations.
// All mutations that change visible task state take the history entry
// describing them and append it in the same transaction.
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task, entry *HistoryEntry) error
	GetTask(ctx context.Context, orgID, id string) (*Task, error)
	ListTasks(ctx context.Context, orgID string) ([]*Task, error)
	ListOverdueTasks(ctx context.Context, asOf time.Time) ([]*Task, error)
	UpdateTaskFields(ctx context.Context, task *Task, entry *HistoryEntry) error
	TransitionTaskStatus(ctx context.Context, orgID, id, fromStatus, toStatus string, entry *HistoryEntry) error
	ReplaceAssignees(ctx context.Context, orgID, id string, emails []string, entry *HistoryEntry) error
	DeleteTask(ctx context.Context, orgID, id string) error

	// Append-only sub-collections
	AddComment(ctx context.Context, comment *Comment, entry *HistoryEntry) error
	AddAttachment(ctx context.Context, attachment *Attachment, entry *HistoryEntry) error
	ListHistory(ctx context.Context, taskID string) ([]*HistoryEntry, error)
	ListComments(ctx context.Context, taskID string) ([]*Comment, error)
	ListAttachments(ctx context.Context, taskID string) ([]*Attachment, error)

	// Directory operations
	UpsertEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, orgID, email string) (*Employee, error)
	ListEmployees(ctx context.Context, orgID string) ([]*Employee, error)
	UpsertTeam(ctx context.Context, team *Team) error
	GetTeam(ctx context.Context, orgID, id string) (*Team, error)

	// Notification outbox
	CreateNotice(ctx context.Context, notice *Notice) error
	ListNotices(ctx context.Context, orgID, targetEmail, targetRole string) ([]*Notice, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task, its assignee set and its Created history
// entry in one transaction.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task, entry *HistoryEntry) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		err := Execute(ctx, tx, query,
			task.ID, task.OrgID, task.Title, task.Description, task.Status,
			task.Priority, FormatTimePtrForDB(task.DueDate), task.AssignmentType,
			task.TeamID, task.CreatorEmail, FormatTimeForDB(task.CreatedAt),
			task.Category, task.Tags, task.EstimatedHours)
		if err != nil {
			return err
		}

		if err := insertAssignees(ctx, tx, task.ID, task.Assignees); err != nil {
			return err
		}

		return appendHistory(ctx, tx, entry)
	})
}

// GetTask retrieves a task by ID with its ordered assignee set
func (r *SQLiteRepository) GetTask(ctx context.Context, orgID, id string) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE org_id = ? AND id = ?`

	task, err := QuerySingle(ctx, r.db, query, ScanTask, "task", id, orgID, id)
	if err != nil {
		return nil, err
	}

	task.Assignees, err = r.loadAssignees(ctx, r.db, task.ID)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks retrieves all tasks for an organization, newest first
func (r *SQLiteRepository) ListTasks(ctx context.Context, orgID string) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE org_id = ? ORDER BY created_at DESC`

	tasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", orgID)
	if err != nil {
		return nil, err
	}
	return r.attachAssignees(ctx, tasks)
}

// ListOverdueTasks retrieves non-completed tasks past their due date
// across all organizations, for the reminder sweep
func (r *SQLiteRepository) ListOverdueTasks(ctx context.Context, asOf time.Time) ([]*Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE due_date IS NOT NULL AND due_date < ? AND status != ?
	ORDER BY due_date ASC`

	tasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", FormatTimeForDB(asOf), "completed")
	if err != nil {
		return nil, err
	}
	return r.attachAssignees(ctx, tasks)
}

// UpdateTaskFields rewrites the mutable descriptive columns and appends
// the Update history entry in one transaction. Last writer wins at this
// field-group granularity.
func (r *SQLiteRepository) UpdateTaskFields(ctx context.Context, task *Task, entry *HistoryEntry) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		query := `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, due_date = ?, category = ?, tags = ?, estimated_hours = ?
		WHERE org_id = ? AND id = ?`

		err := ExecuteWithRowsAffected(ctx, tx, query, "task", task.ID,
			task.Title, task.Description, task.Priority, FormatTimePtrForDB(task.DueDate),
			task.Category, task.Tags, task.EstimatedHours, task.OrgID, task.ID)
		if err != nil {
			return err
		}

		return appendHistory(ctx, tx, entry)
	})
}

// TransitionTaskStatus applies a compare-and-set status update together
// with its StatusChange history entry. A missing task yields NotFound; a
// task whose status no longer matches fromStatus yields Conflict.
func (r *SQLiteRepository) TransitionTaskStatus(ctx context.Context, orgID, id, fromStatus, toStatus string, entry *HistoryEntry) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		query := `UPDATE tasks SET status = ? WHERE org_id = ? AND id = ? AND status = ?`

		result, err := tx.ExecContext(ctx, query, toStatus, orgID, id, fromStatus)
		if err != nil {
			return HandleDatabaseError("transition status", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return HandleDatabaseError("get rows affected", err)
		}
		if rows == 0 {
			// Distinguish a vanished task from a lost compare-and-set.
			var current string
			err := tx.QueryRowContext(ctx, `SELECT status FROM tasks WHERE org_id = ? AND id = ?`, orgID, id).Scan(&current)
			if err == sql.ErrNoRows {
				return errors.NewNotFoundError("task", id)
			}
			if err != nil {
				return HandleDatabaseError("read current status", err)
			}
			return errors.NewConflictError("task", id, "status is "+current+", expected "+fromStatus)
		}

		return appendHistory(ctx, tx, entry)
	})
}

// ReplaceAssignees swaps the ordered assignee set and appends the
// TeamUpdated history entry in one transaction.
func (r *SQLiteRepository) ReplaceAssignees(ctx context.Context, orgID, id string, emails []string, entry *HistoryEntry) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		// Confirm the task exists before touching the assignee rows.
		var existing string
		err := tx.QueryRowContext(ctx, `SELECT id FROM tasks WHERE org_id = ? AND id = ?`, orgID, id).Scan(&existing)
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("task", id)
		}
		if err != nil {
			return HandleDatabaseError("read task", err)
		}

		if err := Execute(ctx, tx, `DELETE FROM task_assignees WHERE task_id = ?`, id); err != nil {
			return err
		}
		if err := insertAssignees(ctx, tx, id, emails); err != nil {
			return err
		}

		return appendHistory(ctx, tx, entry)
	})
}

// DeleteTask permanently removes a task and all its sub-collections
func (r *SQLiteRepository) DeleteTask(ctx context.Context, orgID, id string) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		err := ExecuteWithRowsAffected(ctx, tx, `DELETE FROM tasks WHERE org_id = ? AND id = ?`, "task", id, orgID, id)
		if err != nil {
			return err
		}

		for _, query := range []string{
			`DELETE FROM task_assignees WHERE task_id = ?`,
			`DELETE FROM task_history WHERE task_id = ?`,
			`DELETE FROM task_comments WHERE task_id = ?`,
			`DELETE FROM task_attachments WHERE task_id = ?`,
		} {
			if err := Execute(ctx, tx, query, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddComment appends a comment and its Comment history entry in one transaction
func (r *SQLiteRepository) AddComment(ctx context.Context, comment *Comment, entry *HistoryEntry) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO task_comments (task_id, actor, body, created_at) VALUES (?, ?, ?, ?)`

		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			comment.TaskID, comment.Actor, comment.Body, FormatTimeForDB(comment.CreatedAt))
		if err != nil {
			return err
		}
		comment.ID = id

		return appendHistory(ctx, tx, entry)
	})
}

// AddAttachment appends an attachment and its Attachment history entry in one transaction
func (r *SQLiteRepository) AddAttachment(ctx context.Context, attachment *Attachment, entry *HistoryEntry) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO task_attachments (task_id, name, url, actor, created_at) VALUES (?, ?, ?, ?, ?)`

		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			attachment.TaskID, attachment.Name, attachment.URL, attachment.Actor, FormatTimeForDB(attachment.CreatedAt))
		if err != nil {
			return err
		}
		attachment.ID = id

		return appendHistory(ctx, tx, entry)
	})
}

// ListHistory retrieves a task's history entries in append order
func (r *SQLiteRepository) ListHistory(ctx context.Context, taskID string) ([]*HistoryEntry, error) {
	query := `
	SELECT id, task_id, event_type, actor, detail, created_at
	FROM task_history
	WHERE task_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanHistoryEntries, "history entries", taskID)
}

// ListComments retrieves a task's comments in append order
func (r *SQLiteRepository) ListComments(ctx context.Context, taskID string) ([]*Comment, error) {
	query := `
	SELECT id, task_id, actor, body, created_at
	FROM task_comments
	WHERE task_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanComments, "comments", taskID)
}

// ListAttachments retrieves a task's attachments in append order
func (r *SQLiteRepository) ListAttachments(ctx context.Context, taskID string) ([]*Attachment, error) {
	query := `
	SELECT id, task_id, name, url, actor, created_at
	FROM task_attachments
	WHERE task_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanAttachments, "attachments", taskID)
}

// UpsertEmployee creates or replaces a directory record
func (r *SQLiteRepository) UpsertEmployee(ctx context.Context, employee *Employee) error {
	query := `
	INSERT INTO employees (org_id, email, name, role, capabilities, team_id)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (org_id, email) DO UPDATE
	SET name = excluded.name, role = excluded.role, capabilities = excluded.capabilities, team_id = excluded.team_id`

	return Execute(ctx, r.db, query,
		employee.OrgID, employee.Email, employee.Name, employee.Role, employee.Capabilities, employee.TeamID)
}

// GetEmployee retrieves a directory record by email
func (r *SQLiteRepository) GetEmployee(ctx context.Context, orgID, email string) (*Employee, error) {
	query := `
	SELECT org_id, email, name, role, capabilities, team_id
	FROM employees
	WHERE org_id = ? AND email = ?`

	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", email, orgID, email)
}

// ListEmployees retrieves all directory records for an organization
func (r *SQLiteRepository) ListEmployees(ctx context.Context, orgID string) ([]*Employee, error) {
	query := `
	SELECT org_id, email, name, role, capabilities, team_id
	FROM employees
	WHERE org_id = ?
	ORDER BY email ASC`

	return QueryMultiple(ctx, r.db, query, ScanEmployees, "employees", orgID)
}

// UpsertTeam creates or replaces a team definition and its member list
func (r *SQLiteRepository) UpsertTeam(ctx context.Context, team *Team) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		query := `
		INSERT INTO teams (id, org_id, name, leader_email)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET name = excluded.name, leader_email = excluded.leader_email`

		if err := Execute(ctx, tx, query, team.ID, team.OrgID, team.Name, team.LeaderEmail); err != nil {
			return err
		}

		if err := Execute(ctx, tx, `DELETE FROM team_members WHERE team_id = ?`, team.ID); err != nil {
			return err
		}
		for _, email := range team.MemberEmails {
			if err := Execute(ctx, tx, `INSERT INTO team_members (team_id, email) VALUES (?, ?)`, team.ID, email); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetTeam retrieves a team definition with its member list
func (r *SQLiteRepository) GetTeam(ctx context.Context, orgID, id string) (*Team, error) {
	query := `SELECT id, org_id, name, leader_email FROM teams WHERE org_id = ? AND id = ?`

	team, err := QuerySingle(ctx, r.db, query, ScanTeam, "team", id, orgID, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT email FROM team_members WHERE team_id = ? ORDER BY email ASC`, id)
	if err != nil {
		return nil, HandleDatabaseError("query team members", err)
	}
	defer rows.Close()

	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, HandleDatabaseError("scan team member", err)
		}
		team.MemberEmails = append(team.MemberEmails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleDatabaseError("scan team members", err)
	}
	return team, nil
}

// CreateNotice appends an addressed notification record to the outbox
func (r *SQLiteRepository) CreateNotice(ctx context.Context, notice *Notice) error {
	query := `
	INSERT INTO notices (id, org_id, title, message, target_email, target_role, task_id, read, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	read := 0
	if notice.Read {
		read = 1
	}
	return Execute(ctx, r.db, query,
		notice.ID, notice.OrgID, notice.Title, notice.Message,
		notice.TargetEmail, notice.TargetRole, notice.TaskID, read, FormatTimeForDB(notice.CreatedAt))
}

// ListNotices retrieves notices addressed to the given email or role,
// newest first
func (r *SQLiteRepository) ListNotices(ctx context.Context, orgID, targetEmail, targetRole string) ([]*Notice, error) {
	query := `
	SELECT id, org_id, title, message, target_email, target_role, task_id, read, created_at
	FROM notices
	WHERE org_id = ? AND (target_email = ? OR (target_role != '' AND target_role = ?))
	ORDER BY created_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanNotices, "notices", orgID, targetEmail, targetRole)
}

// loadAssignees reads the ordered assignee set for a task
func (r *SQLiteRepository) loadAssignees(ctx context.Context, db DBTX, taskID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT email FROM task_assignees WHERE task_id = ? ORDER BY position ASC`, taskID)
	if err != nil {
		return nil, HandleDatabaseError("query assignees", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, HandleDatabaseError("scan assignee", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleDatabaseError("scan assignees", err)
	}
	return emails, nil
}

// attachAssignees loads the assignee set for each listed task
func (r *SQLiteRepository) attachAssignees(ctx context.Context, tasks []*Task) ([]*Task, error) {
	for _, task := range tasks {
		assignees, err := r.loadAssignees(ctx, r.db, task.ID)
		if err != nil {
			return nil, err
		}
		task.Assignees = assignees
	}
	return tasks, nil
}

// insertAssignees writes the ordered assignee rows for a task
func insertAssignees(ctx context.Context, tx *sql.Tx, taskID string, emails []string) error {
	for position, email := range emails {
		err := Execute(ctx, tx, `INSERT INTO task_assignees (task_id, position, email) VALUES (?, ?, ?)`, taskID, position, email)
		if err != nil {
			return err
		}
	}
	return nil
}

// appendHistory writes a history entry inside the caller's transaction
func appendHistory(ctx context.Context, tx *sql.Tx, entry *HistoryEntry) error {
	if entry == nil {
		return nil
	}

	query := `INSERT INTO task_history (task_id, event_type, actor, detail, created_at) VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, tx, query,
		entry.TaskID, entry.EventType, entry.Actor, entry.Detail, FormatTimeForDB(entry.CreatedAt))
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}
