package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single unit of work owned by a user.
//
// A task with IsRecurring=true and ParentRecurringTask=nil is a template:
// it is never completed or expired itself, only the instances it spawns
// are. Instances always point back at their template, so the
// template/instance relationship is a single-level tree.
type Task struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Title               string
	Description         *string
	Priority            Priority
	DueDate             *time.Time
	Reminder            *time.Time
	IsCompleted         bool
	CompletedAt         *time.Time
	Expired             bool
	IsRecurring         bool
	ParentRecurringTask *uuid.UUID
	CategoryID          *uuid.UUID
	TagIDs              []uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsTemplate reports whether the task is a recurring template rather
// than a dated instance.
func (t *Task) IsTemplate() bool {
	return t.IsRecurring && t.ParentRecurringTask == nil
}

// SubTask is a checklist item under a task.
type SubTask struct {
	ID           uuid.UUID
	ParentTaskID uuid.UUID
	Title        string
	IsCompleted  bool
}

// RecurrenceRule describes when a template spawns its next instance.
// It is owned one-to-one by its template task and advanced in place;
// NextOccurrence only ever moves forward.
type RecurrenceRule struct {
	ID             uuid.UUID
	TaskID         uuid.UUID
	Frequency      Frequency
	Interval       int
	NextOccurrence time.Time
}

// RecurringTemplate pairs a template task with its recurrence rule for
// the generation pass.
type RecurringTemplate struct {
	Task Task
	Rule RecurrenceRule
}

// DueReminder is a task whose reminder has fired, joined with the
// owner's email.
type DueReminder struct {
	Task  Task
	Email string
}

// TaskFilter defines parameters for listing a user's tasks. Recurring
// templates never appear in listings; only plain tasks and generated
// instances do.
type TaskFilter struct {
	// Completed filters by completion state. nil means both.
	Completed *bool

	// Expired filters by the expired flag. nil means both.
	Expired *bool

	// Priority filters by exact priority.
	Priority *Priority

	// CategoryID filters tasks in the given category.
	CategoryID *uuid.UUID

	// Limit caps the number of tasks returned; the storage layer
	// applies its default when zero.
	Limit int

	// Offset is the number of tasks to skip.
	Offset int
}

// Category groups tasks; names are unique per owner.
type Category struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Tag is a free-form label attached to tasks.
type Tag struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}
