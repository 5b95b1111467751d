package store

import (
	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/ports"
)

// Command is a single reversible store mutation. Apply and Revert return
// false when the mutation can no longer be performed (for example the
// target task was removed by another path); they never panic and never
// leave the store partially mutated.
//
// A command cycles pending -> applied -> reverted -> applied for as long
// as it sits in the history. Intent fields are fixed at construction; the
// undo payload is captured during the first Apply.
type Command interface {
	Apply() bool
	Revert() bool
	Name() string
}

type createCommand struct {
	store  *Store
	kind   string
	fields entities.TaskFields

	// filled in on first apply
	task entities.Task
	err  error
}

func (c *createCommand) Name() string { return "create" }

func (c *createCommand) Apply() bool {
	if c.task == nil {
		task, err := c.store.Create(c.kind, c.fields)
		if err != nil {
			c.err = err
			return false
		}
		c.task = task
		return true
	}
	// Redo reinserts the originally created record so the task keeps its
	// id and creation stamp across undo/redo cycles.
	return c.store.reinsert(c.task, ports.EventCreated)
}

func (c *createCommand) Revert() bool {
	if c.task == nil {
		return false
	}
	_, ok := c.store.deleteTask(c.task.Base().ID)
	return ok
}

type updateCommand struct {
	store   *Store
	id      int
	changes entities.TaskChanges

	// prev holds the prior values of exactly the fields the change set
	// touched. Captured on the first apply only; redo reapplies the same
	// new values without re-snapshotting.
	prev *entities.TaskChanges
}

func (c *updateCommand) Name() string { return "update" }

func (c *updateCommand) Apply() bool {
	prev, ok := c.store.applyChanges(c.id, c.changes, ports.EventUpdated)
	if !ok {
		return false
	}
	if c.prev == nil {
		c.prev = &prev
	}
	return true
}

func (c *updateCommand) Revert() bool {
	if c.prev == nil {
		return false
	}
	_, ok := c.store.applyChanges(c.id, *c.prev, ports.EventReverted)
	return ok
}

type deleteCommand struct {
	store *Store
	id    int

	// snapshot is the removed record, reinserted verbatim on revert.
	snapshot entities.Task
}

func (c *deleteCommand) Name() string { return "delete" }

func (c *deleteCommand) Apply() bool {
	task, ok := c.store.deleteTask(c.id)
	if !ok {
		return false
	}
	c.snapshot = task
	return true
}

func (c *deleteCommand) Revert() bool {
	return c.store.reinsert(c.snapshot, ports.EventRestored)
}
