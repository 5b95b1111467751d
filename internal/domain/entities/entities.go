package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNoOccurrences  = errors.New("total occurrences must be positive")
	ErrMissingDueDate = errors.New("deadline task requires a due date")
)

// UnsupportedKindError is returned by the factory when asked to build a
// task of a kind it does not know about.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported task kind: %q", e.Kind)
}

// Enums and types
type Kind string

const (
	KindBasic     Kind = "basic"
	KindDeadline  Kind = "deadline"
	KindRecurring Kind = "recurring"
	KindChecklist Kind = "checklist"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

// Task is the common surface of all task variants. Variants share TaskBase
// and add their own fields; behavior that differs per variant (Complete,
// Summary) is dispatched through this interface rather than a kind switch
// at every call site.
type Task interface {
	// Base exposes the shared mutable field set.
	Base() *TaskBase

	// Kind returns the variant discriminator.
	Kind() Kind

	// Complete marks progress on the task. It reports whether work still
	// remains afterwards: false for every variant except a recurring task
	// with occurrences left.
	Complete(now time.Time) bool

	// Clone returns a deep copy. Used for observer snapshots and for the
	// delete command's restore payload.
	Clone() Task

	// Summary renders a short human-readable line for the task.
	Summary() string
}

// TaskBase holds the fields every variant shares. ID and CreatedAt are
// immutable after construction.
type TaskBase struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// BasicTask is a plain unit of work with no extra fields.
type BasicTask struct {
	TaskBase
}

func (t *BasicTask) Base() *TaskBase { return &t.TaskBase }
func (t *BasicTask) Kind() Kind      { return KindBasic }

func (t *BasicTask) Complete(now time.Time) bool {
	t.Completed = true
	return false
}

func (t *BasicTask) Clone() Task {
	c := *t
	return &c
}

func (t *BasicTask) Summary() string {
	return fmt.Sprintf("[%d] %s (%s)", t.ID, t.Title, t.Priority)
}

// DeadlineTask is a task that must be finished before a due date.
type DeadlineTask struct {
	TaskBase
	DueAt time.Time `json:"due_at"`
}

func (t *DeadlineTask) Base() *TaskBase { return &t.TaskBase }
func (t *DeadlineTask) Kind() Kind      { return KindDeadline }

func (t *DeadlineTask) Complete(now time.Time) bool {
	t.Completed = true
	return false
}

// IsOverdue reports whether the due date has passed without completion.
func (t *DeadlineTask) IsOverdue(now time.Time) bool {
	return now.After(t.DueAt) && !t.Completed
}

// RemainingDays returns the number of days until the due date, rounded up.
// Negative once the deadline has passed.
func (t *DeadlineTask) RemainingDays(now time.Time) int {
	remaining := t.DueAt.Sub(now)
	days := remaining / (24 * time.Hour)
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

func (t *DeadlineTask) Clone() Task {
	c := *t
	return &c
}

func (t *DeadlineTask) Summary() string {
	return fmt.Sprintf("[%d] %s (%s) due %s", t.ID, t.Title, t.Priority, t.DueAt.Format("2006-01-02"))
}

// RecurringTask repeats for a fixed number of occurrences.
type RecurringTask struct {
	TaskBase
	Interval          Interval `json:"interval"`
	TotalOccurrences  int      `json:"total_occurrences"`
	CurrentOccurrence int      `json:"current_occurrence"`
}

func (t *RecurringTask) Base() *TaskBase { return &t.TaskBase }
func (t *RecurringTask) Kind() Kind      { return KindRecurring }

// Complete advances to the next occurrence. The task only flips to
// completed once every occurrence has been consumed; the return value
// reports whether occurrences remain.
func (t *RecurringTask) Complete(now time.Time) bool {
	t.CurrentOccurrence++
	if t.CurrentOccurrence > t.TotalOccurrences {
		t.Completed = true
		return false
	}
	return true
}

func (t *RecurringTask) Clone() Task {
	c := *t
	return &c
}

func (t *RecurringTask) Summary() string {
	return fmt.Sprintf("[%d] %s (%s) %s %d/%d", t.ID, t.Title, t.Priority, t.Interval, t.CurrentOccurrence, t.TotalOccurrences)
}

// Subtask is a single checklist item.
type Subtask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ChecklistTask carries an ordered list of subtasks. The parent flips to
// completed when the last open subtask is completed; it is never flipped
// back automatically.
type ChecklistTask struct {
	TaskBase
	Subtasks []Subtask `json:"subtasks"`
}

func (t *ChecklistTask) Base() *TaskBase { return &t.TaskBase }
func (t *ChecklistTask) Kind() Kind      { return KindChecklist }

func (t *ChecklistTask) Complete(now time.Time) bool {
	t.Completed = true
	return false
}

// AddSubtask appends a new subtask with a freshly generated id.
func (t *ChecklistTask) AddSubtask(title, description string) Subtask {
	sub := Subtask{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
	t.Subtasks = append(t.Subtasks, sub)
	return sub
}

// CompleteSubtask marks one subtask complete and cascades to the parent
// when all subtasks are done. Returns false if the subtask id is unknown.
func (t *ChecklistTask) CompleteSubtask(id string) bool {
	found := false
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == id {
			t.Subtasks[i].Completed = true
			found = true
			break
		}
	}
	if !found {
		return false
	}

	for _, sub := range t.Subtasks {
		if !sub.Completed {
			return true
		}
	}
	t.Completed = true
	return true
}

func (t *ChecklistTask) Clone() Task {
	c := *t
	c.Subtasks = make([]Subtask, len(t.Subtasks))
	copy(c.Subtasks, t.Subtasks)
	return &c
}

func (t *ChecklistTask) Summary() string {
	done := 0
	for _, sub := range t.Subtasks {
		if sub.Completed {
			done++
		}
	}
	return fmt.Sprintf("[%d] %s (%s) %d/%d subtasks", t.ID, t.Title, t.Priority, done, len(t.Subtasks))
}

// TaskFields is the field bag handed to the factory when creating a task.
// Variant-specific fields are ignored by variants that do not use them.
type TaskFields struct {
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description"`
	Priority         Priority   `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueAt            *time.Time `json:"due_at"`
	Interval         Interval   `json:"interval" validate:"omitempty,oneof=daily weekly monthly"`
	TotalOccurrences int        `json:"total_occurrences" validate:"omitempty,gt=0"`
}

// TaskChanges is a partial update: only non-nil fields are applied. DueAt
// is only meaningful for deadline tasks and is skipped for other variants.
type TaskChanges struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}

// IsEmpty reports whether the change set carries no fields.
func (c TaskChanges) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Priority == nil && c.Completed == nil && c.DueAt == nil
}

// Utility methods
func (k Kind) IsValid() bool {
	switch k {
	case KindBasic, KindDeadline, KindRecurring, KindChecklist:
		return true
	default:
		return false
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func (i Interval) IsValid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	default:
		return false
	}
}
