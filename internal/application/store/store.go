// Package store implements the task store: the single owner of the task
// collection, the id sequence, the observer set and the command history.
// Direct mutation methods perform the raw change and emit the matching
// event; Run* methods wrap the same change in a reversible command.
package store

import (
	"sync"

	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/infrastructure/logger"
	"github.com/taskforge/core/internal/ports"
)

// Store owns all mutable state of the task kernel. Its mutation methods
// lock the collection so the store stays consistent if it is ever shared
// across goroutines, although the expected usage is a single caller.
type Store struct {
	mu        sync.RWMutex
	tasks     map[int]entities.Task
	order     []int
	nextID    int
	observers []ports.Observer

	factory *entities.Factory
	clock   entities.Clock
	history *History
	logger  *logger.Logger
}

var _ ports.TaskManager = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by the store and its history.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) { s.logger = log }
}

// WithClock sets the clock used for creation stamps and deadline checks.
func WithClock(clock entities.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// New creates an independent store. Most callers should use Default; New
// exists for dependency injection and tests.
func New(opts ...Option) *Store {
	s := &Store{
		tasks: make(map[int]entities.Task),
		clock: entities.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	s.factory = entities.NewFactory(s.clock)
	s.history = newHistory(s.logger)
	return s
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the process-wide store instance, creating it on first
// use. Every call returns the same instance.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// Create builds and inserts a task directly, outside the command history.
// The mutation is not undoable.
func (s *Store) Create(kind string, fields entities.TaskFields) (entities.Task, error) {
	task, err := s.factory.Create(kind, fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.nextID++
	task.Base().ID = s.nextID
	s.tasks[task.Base().ID] = task
	s.order = append(s.order, task.Base().ID)
	s.mu.Unlock()

	s.logger.Debugw("task created", "task_id", task.Base().ID, "kind", task.Kind(), "title", task.Base().Title)
	s.notify(ports.EventCreated, task)
	return task, nil
}

// Update applies a partial update directly, outside the command history.
// False if the task does not exist or the change set is empty.
func (s *Store) Update(id int, changes entities.TaskChanges) bool {
	if changes.IsEmpty() {
		return false
	}
	_, ok := s.applyChanges(id, changes, ports.EventUpdated)
	return ok
}

// Delete removes a task directly, outside the command history. False if
// the task does not exist.
func (s *Store) Delete(id int) bool {
	_, ok := s.deleteTask(id)
	return ok
}

// Complete advances a task's completion state via its variant behavior.
// remaining reports whether work remains (true only for a recurring task
// with occurrences left); ok is false when the id is unknown.
func (s *Store) Complete(id int) (remaining bool, ok bool) {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return false, false
	}
	remaining = task.Complete(s.clock.Now())
	s.mu.Unlock()

	s.notify(ports.EventUpdated, task)
	return remaining, true
}

// AddSubtask appends a subtask to a checklist task. False if the id is
// unknown or the task is not a checklist.
func (s *Store) AddSubtask(id int, title, description string) (entities.Subtask, bool) {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return entities.Subtask{}, false
	}
	checklist, ok := task.(*entities.ChecklistTask)
	if !ok {
		s.mu.Unlock()
		return entities.Subtask{}, false
	}
	sub := checklist.AddSubtask(title, description)
	s.mu.Unlock()

	s.notify(ports.EventUpdated, task)
	return sub, true
}

// CompleteSubtask marks a checklist subtask complete, cascading to the
// parent when all subtasks are done.
func (s *Store) CompleteSubtask(id int, subtaskID string) bool {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	checklist, ok := task.(*entities.ChecklistTask)
	if !ok {
		s.mu.Unlock()
		return false
	}
	done := checklist.CompleteSubtask(subtaskID)
	s.mu.Unlock()

	if !done {
		return false
	}
	s.notify(ports.EventUpdated, task)
	return true
}

// RunCreate creates a task through the command history so it can be
// undone. Returns the created task.
func (s *Store) RunCreate(kind string, fields entities.TaskFields) (entities.Task, error) {
	cmd := &createCommand{store: s, kind: kind, fields: fields}
	if !s.history.Execute(cmd) {
		return nil, cmd.err
	}
	return cmd.task, nil
}

// RunUpdate updates a task through the command history.
func (s *Store) RunUpdate(id int, changes entities.TaskChanges) bool {
	if changes.IsEmpty() {
		return false
	}
	return s.history.Execute(&updateCommand{store: s, id: id, changes: changes})
}

// RunDelete deletes a task through the command history.
func (s *Store) RunDelete(id int) bool {
	return s.history.Execute(&deleteCommand{store: s, id: id})
}

// Undo reverts the most recently applied command.
func (s *Store) Undo() bool { return s.history.Undo() }

// Redo re-applies the most recently undone command.
func (s *Store) Redo() bool { return s.history.Redo() }

// GetTask returns the live task for id.
func (s *Store) GetTask(id int) (entities.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	return task, ok
}

// ListTasks returns the tasks in insertion order, filtered by the given
// strategies applied left to right. No strategies means all tasks.
func (s *Store) ListTasks(strategies ...ports.Strategy) []entities.Task {
	s.mu.RLock()
	tasks := make([]entities.Task, 0, len(s.order))
	for _, id := range s.order {
		if task, ok := s.tasks[id]; ok {
			tasks = append(tasks, task)
		}
	}
	s.mu.RUnlock()

	for _, strategy := range strategies {
		tasks = strategy.Apply(tasks)
	}
	return tasks
}

// Statistics aggregates counts over the current collection.
func (s *Store) Statistics() ports.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ports.Statistics{
		ByKind:     make(map[entities.Kind]int),
		ByPriority: make(map[entities.Priority]int),
	}
	for _, task := range s.tasks {
		stats.Total++
		if task.Base().Completed {
			stats.Completed++
		}
		stats.ByKind[task.Kind()]++
		stats.ByPriority[task.Base().Priority]++
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// applyChanges mutates the fields present in the change set that exist on
// the task, returning a change set holding the prior values of exactly
// those fields. The event parameter lets update commands emit "updated" on
// apply and "reverted" on revert through the same path.
func (s *Store) applyChanges(id int, changes entities.TaskChanges, event ports.EventName) (entities.TaskChanges, bool) {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return entities.TaskChanges{}, false
	}

	var prev entities.TaskChanges
	base := task.Base()
	if changes.Title != nil {
		old := base.Title
		prev.Title = &old
		base.Title = *changes.Title
	}
	if changes.Description != nil {
		old := base.Description
		prev.Description = &old
		base.Description = *changes.Description
	}
	if changes.Priority != nil {
		old := base.Priority
		prev.Priority = &old
		base.Priority = *changes.Priority
	}
	if changes.Completed != nil {
		old := base.Completed
		prev.Completed = &old
		base.Completed = *changes.Completed
	}
	if changes.DueAt != nil {
		// DueAt only exists on deadline tasks; skipped elsewhere.
		if deadline, isDeadline := task.(*entities.DeadlineTask); isDeadline {
			old := deadline.DueAt
			prev.DueAt = &old
			deadline.DueAt = *changes.DueAt
		}
	}
	s.mu.Unlock()

	s.notify(event, task)
	return prev, true
}

// deleteTask removes a task and returns the removed record verbatim.
func (s *Store) deleteTask(id int) (entities.Task, bool) {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return nil, false
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.logger.Debugw("task deleted", "task_id", id)
	s.notify(ports.EventDeleted, task)
	return task, true
}

// reinsert puts a previously removed task back under its original id. The
// id sequence is never rewound, so a reinserted id cannot collide with a
// fresh allocation.
func (s *Store) reinsert(task entities.Task, event ports.EventName) bool {
	if task == nil {
		return false
	}
	id := task.Base().ID

	s.mu.Lock()
	if _, exists := s.tasks[id]; exists {
		s.mu.Unlock()
		return false
	}
	s.tasks[id] = task
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.logger.Debugw("task reinserted", "task_id", id, "event", event)
	s.notify(event, task)
	return true
}
