package entities

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Factory builds task variants from a kind tag and a field bag. It stamps
// CreatedAt from its clock but never assigns IDs; the store owns the id
// sequence.
type Factory struct {
	clock    Clock
	validate *validator.Validate
}

// NewFactory creates a task factory using the given clock.
func NewFactory(clock Clock) *Factory {
	return &Factory{
		clock:    clock,
		validate: validator.New(),
	}
}

// Create builds a new task of the given kind. The kind tag is matched
// case-insensitively; an unknown tag yields *UnsupportedKindError.
func (f *Factory) Create(kind string, fields TaskFields) (Task, error) {
	if err := f.validate.Struct(fields); err != nil {
		return nil, fmt.Errorf("invalid task fields: %w", err)
	}

	base := TaskBase{
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    fields.Priority,
		CreatedAt:   f.clock.Now(),
	}
	if base.Priority == "" {
		base.Priority = PriorityMedium
	}

	switch Kind(strings.ToLower(kind)) {
	case KindBasic:
		return &BasicTask{TaskBase: base}, nil

	case KindDeadline:
		if fields.DueAt == nil {
			return nil, ErrMissingDueDate
		}
		return &DeadlineTask{TaskBase: base, DueAt: *fields.DueAt}, nil

	case KindRecurring:
		if fields.TotalOccurrences <= 0 {
			return nil, ErrNoOccurrences
		}
		interval := fields.Interval
		if interval == "" {
			interval = IntervalDaily
		}
		return &RecurringTask{
			TaskBase:          base,
			Interval:          interval,
			TotalOccurrences:  fields.TotalOccurrences,
			CurrentOccurrence: 1,
		}, nil

	case KindChecklist:
		return &ChecklistTask{TaskBase: base}, nil

	default:
		return nil, &UnsupportedKindError{Kind: kind}
	}
}
