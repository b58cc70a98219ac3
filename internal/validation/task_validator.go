package validation

import (
	"work-tracker/internal/domain"
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateEmails validates a list of actor email identifiers
func (tv *TaskValidator) ValidateEmails(field string, emails []string) error {
	validationError := NewValidationError()

	if len(emails) == 0 {
		validationError.AddRequiredError(field)
		return validationError
	}

	for _, email := range emails {
		if !tv.validator.IsValidEmail(email) {
			validationError.AddInvalidFormatError(field, email, "actor email address")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}

// ValidatePriority validates a task priority value
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if !priority.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", string(priority), "must be low, medium or high")
		return validationError
	}
	return nil
}

// ValidateStatus validates a workflow status value
func (tv *TaskValidator) ValidateStatus(status domain.Status) error {
	if !status.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", string(status), "must be pending, in_progress or completed")
		return validationError
	}
	return nil
}

// ValidateAssignmentType validates an assignment type value
func (tv *TaskValidator) ValidateAssignmentType(at domain.AssignmentType) error {
	if !at.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("assignment_type", string(at), "must be individual, team or delegate")
		return validationError
	}
	return nil
}

// GetValidTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimString(title), nil
}
