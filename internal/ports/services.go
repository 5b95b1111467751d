package ports

import "github.com/taskforge/core/internal/domain/entities"

// Strategy is a pure, order-preserving filter over a task sequence.
// Implementations must not mutate their input. Strategies compose by
// chaining: the store folds them left to right.
type Strategy interface {
	Apply(tasks []entities.Task) []entities.Task
}

// TaskManager is the store's public surface: command-wrapped mutations
// with linear undo/redo, direct queries, and observer subscription.
type TaskManager interface {
	// RunCreate builds a task and applies it through the command history,
	// returning the created task.
	RunCreate(kind string, fields entities.TaskFields) (entities.Task, error)

	// RunUpdate applies a reversible partial update. False if the task
	// does not exist or the change set is empty.
	RunUpdate(id int, changes entities.TaskChanges) bool

	// RunDelete removes a task through the command history. False if the
	// task does not exist.
	RunDelete(id int) bool

	// Undo reverts the most recently applied command. False when there is
	// nothing to undo or the revert could not be applied.
	Undo() bool

	// Redo re-applies the most recently undone command. False when there
	// is nothing to redo or the apply could not be performed.
	Redo() bool

	// GetTask returns the live task for id, or false if absent.
	GetTask(id int) (entities.Task, bool)

	// ListTasks returns all tasks in insertion order, filtered by the
	// given strategies applied left to right.
	ListTasks(strategies ...Strategy) []entities.Task

	// Statistics aggregates counts over the current collection.
	Statistics() Statistics

	// Subscribe registers an observer. Re-subscribing the same observer
	// is a no-op.
	Subscribe(observer Observer)

	// Unsubscribe removes an observer by identity.
	Unsubscribe(observer Observer)
}

// Statistics aggregates the task collection by completion, kind and
// priority.
type Statistics struct {
	Total      int                       `json:"total"`
	Completed  int                       `json:"completed"`
	Pending    int                       `json:"pending"`
	ByKind     map[entities.Kind]int     `json:"by_kind"`
	ByPriority map[entities.Priority]int `json:"by_priority"`
}
