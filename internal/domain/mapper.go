package domain

import (
	"work-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:             domainTask.ID,
		OrgID:          domainTask.OrgID,
		Title:          domainTask.Title,
		Description:    domainTask.Description,
		Status:         string(domainTask.Status),
		Priority:       string(domainTask.Priority),
		DueDate:        domainTask.DueDate,
		AssignmentType: string(domainTask.AssignmentType),
		TeamID:         domainTask.TeamID,
		CreatorEmail:   domainTask.CreatorEmail,
		CreatedAt:      domainTask.CreatedAt,
		Category:       domainTask.Category,
		Tags:           sqlite.JoinListForDB(domainTask.Tags),
		EstimatedHours: domainTask.EstimatedHours,
		Assignees:      domainTask.Assignees,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:             dbTask.ID,
		OrgID:          dbTask.OrgID,
		Title:          dbTask.Title,
		Description:    dbTask.Description,
		Status:         Status(dbTask.Status),
		Priority:       Priority(dbTask.Priority),
		DueDate:        dbTask.DueDate,
		AssignmentType: AssignmentType(dbTask.AssignmentType),
		TeamID:         dbTask.TeamID,
		CreatorEmail:   dbTask.CreatorEmail,
		CreatedAt:      dbTask.CreatedAt,
		Category:       dbTask.Category,
		Tags:           sqlite.SplitListFromDB(dbTask.Tags),
		EstimatedHours: dbTask.EstimatedHours,
		Assignees:      dbTask.Assignees,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// HistoryMapper handles conversion between domain and database history models.
type HistoryMapper struct{}

// NewHistoryMapper creates a new HistoryMapper instance.
func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

// ToDatabase converts a domain HistoryEntry to a database HistoryEntry.
func (m *HistoryMapper) ToDatabase(domainEntry HistoryEntry) sqlite.HistoryEntry {
	return sqlite.HistoryEntry{
		ID:        domainEntry.ID,
		TaskID:    domainEntry.TaskID,
		EventType: string(domainEntry.Type),
		Actor:     domainEntry.Actor,
		Detail:    domainEntry.Detail,
		CreatedAt: domainEntry.Timestamp,
	}
}

// FromDatabase converts a database HistoryEntry to a domain HistoryEntry.
func (m *HistoryMapper) FromDatabase(dbEntry sqlite.HistoryEntry) HistoryEntry {
	return HistoryEntry{
		ID:        dbEntry.ID,
		TaskID:    dbEntry.TaskID,
		Type:      EventType(dbEntry.EventType),
		Actor:     dbEntry.Actor,
		Detail:    dbEntry.Detail,
		Timestamp: dbEntry.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database HistoryEntries to domain ones.
func (m *HistoryMapper) FromDatabaseSlice(dbEntries []*sqlite.HistoryEntry) []HistoryEntry {
	domainEntries := make([]HistoryEntry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntries[i] = m.FromDatabase(*entry)
	}
	return domainEntries
}

// CommentMapper handles conversion between domain and database Comment models.
type CommentMapper struct{}

// NewCommentMapper creates a new CommentMapper instance.
func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

// ToDatabase converts a domain Comment to a database Comment.
func (m *CommentMapper) ToDatabase(domainComment Comment) sqlite.Comment {
	return sqlite.Comment{
		ID:        domainComment.ID,
		TaskID:    domainComment.TaskID,
		Actor:     domainComment.Actor,
		Body:      domainComment.Text,
		CreatedAt: domainComment.Timestamp,
	}
}

// FromDatabase converts a database Comment to a domain Comment.
func (m *CommentMapper) FromDatabase(dbComment sqlite.Comment) Comment {
	return Comment{
		ID:        dbComment.ID,
		TaskID:    dbComment.TaskID,
		Actor:     dbComment.Actor,
		Text:      dbComment.Body,
		Timestamp: dbComment.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Comments to domain Comments.
func (m *CommentMapper) FromDatabaseSlice(dbComments []*sqlite.Comment) []Comment {
	domainComments := make([]Comment, len(dbComments))
	for i, comment := range dbComments {
		domainComments[i] = m.FromDatabase(*comment)
	}
	return domainComments
}

// AttachmentMapper handles conversion between domain and database Attachment models.
type AttachmentMapper struct{}

// NewAttachmentMapper creates a new AttachmentMapper instance.
func NewAttachmentMapper() *AttachmentMapper {
	return &AttachmentMapper{}
}

// ToDatabase converts a domain Attachment to a database Attachment.
func (m *AttachmentMapper) ToDatabase(domainAttachment Attachment) sqlite.Attachment {
	return sqlite.Attachment{
		ID:        domainAttachment.ID,
		TaskID:    domainAttachment.TaskID,
		Name:      domainAttachment.Name,
		URL:       domainAttachment.URL,
		Actor:     domainAttachment.Actor,
		CreatedAt: domainAttachment.Timestamp,
	}
}

// FromDatabase converts a database Attachment to a domain Attachment.
func (m *AttachmentMapper) FromDatabase(dbAttachment sqlite.Attachment) Attachment {
	return Attachment{
		ID:        dbAttachment.ID,
		TaskID:    dbAttachment.TaskID,
		Name:      dbAttachment.Name,
		URL:       dbAttachment.URL,
		Actor:     dbAttachment.Actor,
		Timestamp: dbAttachment.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Attachments to domain ones.
func (m *AttachmentMapper) FromDatabaseSlice(dbAttachments []*sqlite.Attachment) []Attachment {
	domainAttachments := make([]Attachment, len(dbAttachments))
	for i, attachment := range dbAttachments {
		domainAttachments[i] = m.FromDatabase(*attachment)
	}
	return domainAttachments
}

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(domainEmployee Employee) sqlite.Employee {
	capabilities := make([]string, len(domainEmployee.Capabilities))
	for i, c := range domainEmployee.Capabilities {
		capabilities[i] = string(c)
	}
	return sqlite.Employee{
		OrgID:        domainEmployee.OrgID,
		Email:        domainEmployee.Email,
		Name:         domainEmployee.Name,
		Role:         string(domainEmployee.Role),
		Capabilities: sqlite.JoinListForDB(capabilities),
		TeamID:       domainEmployee.TeamID,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee sqlite.Employee) Employee {
	raw := sqlite.SplitListFromDB(dbEmployee.Capabilities)
	capabilities := make([]Capability, len(raw))
	for i, c := range raw {
		capabilities[i] = Capability(c)
	}
	return Employee{
		OrgID:        dbEmployee.OrgID,
		Email:        dbEmployee.Email,
		Name:         dbEmployee.Name,
		Role:         Role(dbEmployee.Role),
		Capabilities: capabilities,
		TeamID:       dbEmployee.TeamID,
	}
}

// FromDatabaseSlice converts a slice of database Employees to domain ones.
func (m *EmployeeMapper) FromDatabaseSlice(dbEmployees []*sqlite.Employee) []Employee {
	domainEmployees := make([]Employee, len(dbEmployees))
	for i, employee := range dbEmployees {
		domainEmployees[i] = m.FromDatabase(*employee)
	}
	return domainEmployees
}

// TeamMapper handles conversion between domain and database Team models.
type TeamMapper struct{}

// NewTeamMapper creates a new TeamMapper instance.
func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

// ToDatabase converts a domain Team to a database Team.
func (m *TeamMapper) ToDatabase(domainTeam Team) sqlite.Team {
	return sqlite.Team{
		ID:           domainTeam.ID,
		OrgID:        domainTeam.OrgID,
		Name:         domainTeam.Name,
		LeaderEmail:  domainTeam.LeaderEmail,
		MemberEmails: domainTeam.MemberEmails,
	}
}

// FromDatabase converts a database Team to a domain Team.
func (m *TeamMapper) FromDatabase(dbTeam sqlite.Team) Team {
	return Team{
		ID:           dbTeam.ID,
		OrgID:        dbTeam.OrgID,
		Name:         dbTeam.Name,
		LeaderEmail:  dbTeam.LeaderEmail,
		MemberEmails: dbTeam.MemberEmails,
	}
}

// NoticeMapper handles conversion between domain and database Notice models.
type NoticeMapper struct{}

// NewNoticeMapper creates a new NoticeMapper instance.
func NewNoticeMapper() *NoticeMapper {
	return &NoticeMapper{}
}

// ToDatabase converts a domain Notice to a database Notice.
func (m *NoticeMapper) ToDatabase(domainNotice Notice) sqlite.Notice {
	return sqlite.Notice{
		ID:          domainNotice.ID,
		OrgID:       domainNotice.OrgID,
		Title:       domainNotice.Title,
		Message:     domainNotice.Message,
		TargetEmail: domainNotice.TargetEmail,
		TargetRole:  string(domainNotice.TargetRole),
		TaskID:      domainNotice.TaskID,
		Read:        domainNotice.Read,
		CreatedAt:   domainNotice.CreatedAt,
	}
}

// FromDatabase converts a database Notice to a domain Notice.
func (m *NoticeMapper) FromDatabase(dbNotice sqlite.Notice) Notice {
	return Notice{
		ID:          dbNotice.ID,
		OrgID:       dbNotice.OrgID,
		Title:       dbNotice.Title,
		Message:     dbNotice.Message,
		TargetEmail: dbNotice.TargetEmail,
		TargetRole:  Role(dbNotice.TargetRole),
		TaskID:      dbNotice.TaskID,
		Read:        dbNotice.Read,
		CreatedAt:   dbNotice.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Notices to domain Notices.
func (m *NoticeMapper) FromDatabaseSlice(dbNotices []*sqlite.Notice) []Notice {
	domainNotices := make([]Notice, len(dbNotices))
	for i, notice := range dbNotices {
		domainNotices[i] = m.FromDatabase(*notice)
	}
	return domainNotices
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task       *TaskMapper
	History    *HistoryMapper
	Comment    *CommentMapper
	Attachment *AttachmentMapper
	Employee   *EmployeeMapper
	Team       *TeamMapper
	Notice     *NoticeMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:       NewTaskMapper(),
		History:    NewHistoryMapper(),
		Comment:    NewCommentMapper(),
		Attachment: NewAttachmentMapper(),
		Employee:   NewEmployeeMapper(),
		Team:       NewTeamMapper(),
		Notice:     NewNoticeMapper(),
	}
}
