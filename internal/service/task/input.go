package task

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

const maxTitleLen = 40

// ---------------------------------------------------------------------------
// CreateTaskInput
// ---------------------------------------------------------------------------

// RecurrenceInput holds the optional recurrence rule for a new task.
// A task created with it becomes a recurring template.
type RecurrenceInput struct {
	Frequency      domain.Frequency
	Interval       int
	NextOccurrence time.Time
}

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    domain.Priority
	DueDate     *time.Time
	Reminder    *time.Time
	CategoryID  *uuid.UUID
	TagIDs      []uuid.UUID
	Recurrence  *RecurrenceInput
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	trimmed := strings.TrimSpace(i.Title)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 40)"})
	}

	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}

	if i.DueDate != nil && i.DueDate.Before(now) {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "must not be in the past"})
	}

	if i.Reminder != nil && i.DueDate != nil && i.Reminder.After(*i.DueDate) {
		errs = append(errs, domain.FieldError{Field: "reminder", Message: "must not be after due date"})
	}

	for idx, id := range i.TagIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{
				Field:   fieldIndex("tag_ids", idx),
				Message: "required",
			})
		}
	}

	if i.Recurrence != nil {
		if !i.Recurrence.Frequency.IsValid() {
			errs = append(errs, domain.FieldError{Field: "recurrence.frequency", Message: "unknown frequency"})
		}
		if i.Recurrence.Interval < 1 {
			errs = append(errs, domain.FieldError{Field: "recurrence.interval", Message: "must be >= 1"})
		}
		if i.Recurrence.NextOccurrence.IsZero() {
			errs = append(errs, domain.FieldError{Field: "recurrence.next_occurrence", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// AddSubtaskInput
// ---------------------------------------------------------------------------

// AddSubtaskInput holds the parameters for adding a subtask to a task.
type AddSubtaskInput struct {
	TaskID uuid.UUID
	Title  string
}

// Validate checks all fields and collects all errors.
func (i AddSubtaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}

	trimmed := strings.TrimSpace(i.Title)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 40)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// fieldIndex formats an indexed field path like "tag_ids[0]".
func fieldIndex(parent string, idx int) string {
	return parent + "[" + strconv.Itoa(idx) + "]"
}
