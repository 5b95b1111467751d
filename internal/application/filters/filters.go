// Package filters provides the built-in listing strategies: by completion
// state, by priority and by task kind. Each strategy is a pure,
// order-preserving filter and never mutates its input slice.
package filters

import (
	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/ports"
)

type completedFilter struct {
	completed bool
}

func (f completedFilter) Apply(tasks []entities.Task) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Base().Completed == f.completed {
			out = append(out, t)
		}
	}
	return out
}

// ByCompleted keeps tasks whose completion flag matches.
func ByCompleted(completed bool) ports.Strategy {
	return completedFilter{completed: completed}
}

type priorityFilter struct {
	priority entities.Priority
}

func (f priorityFilter) Apply(tasks []entities.Task) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Base().Priority == f.priority {
			out = append(out, t)
		}
	}
	return out
}

// ByPriority keeps tasks with the given priority.
func ByPriority(priority entities.Priority) ports.Strategy {
	return priorityFilter{priority: priority}
}

type kindFilter struct {
	kind entities.Kind
}

func (f kindFilter) Apply(tasks []entities.Task) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Kind() == f.kind {
			out = append(out, t)
		}
	}
	return out
}

// ByKind keeps tasks of the given variant kind.
func ByKind(kind entities.Kind) ports.Strategy {
	return kindFilter{kind: kind}
}

// Chain folds strategies left to right over the input.
func Chain(tasks []entities.Task, strategies ...ports.Strategy) []entities.Task {
	for _, s := range strategies {
		tasks = s.Apply(tasks)
	}
	return tasks
}
