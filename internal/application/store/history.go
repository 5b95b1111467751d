package store

import "github.com/taskforge/core/internal/infrastructure/logger"

// History implements linear undo/redo over commands with two LIFO stacks.
// A command sits on at most one stack at a time; executing a new command
// clears the reverted stack, since a new timeline invalidates every
// previously undone branch.
type History struct {
	applied  []Command
	reverted []Command
	logger   *logger.Logger
}

func newHistory(log *logger.Logger) *History {
	return &History{logger: log}
}

// Execute applies the command. On success it is pushed onto the applied
// stack and the reverted stack is cleared; on failure the command is
// discarded and the history is unchanged.
func (h *History) Execute(cmd Command) bool {
	if !cmd.Apply() {
		h.logger.Debugw("command apply failed", "command", cmd.Name())
		return false
	}
	h.applied = append(h.applied, cmd)
	h.reverted = h.reverted[:0]
	h.logger.Debugw("command executed", "command", cmd.Name(), "applied", len(h.applied))
	return true
}

// Undo reverts the most recently applied command. On revert failure the
// command is pushed back so the history is left as it was.
func (h *History) Undo() bool {
	if len(h.applied) == 0 {
		return false
	}
	cmd := h.applied[len(h.applied)-1]
	h.applied = h.applied[:len(h.applied)-1]

	if !cmd.Revert() {
		h.applied = append(h.applied, cmd)
		h.logger.Debugw("undo failed", "command", cmd.Name())
		return false
	}
	h.reverted = append(h.reverted, cmd)
	h.logger.Debugw("command undone", "command", cmd.Name())
	return true
}

// Redo re-applies the most recently undone command. Symmetric to Undo.
func (h *History) Redo() bool {
	if len(h.reverted) == 0 {
		return false
	}
	cmd := h.reverted[len(h.reverted)-1]
	h.reverted = h.reverted[:len(h.reverted)-1]

	if !cmd.Apply() {
		h.reverted = append(h.reverted, cmd)
		h.logger.Debugw("redo failed", "command", cmd.Name())
		return false
	}
	h.applied = append(h.applied, cmd)
	h.logger.Debugw("command redone", "command", cmd.Name())
	return true
}

// CanUndo reports whether an applied command is available.
func (h *History) CanUndo() bool { return len(h.applied) > 0 }

// CanRedo reports whether an undone command is available.
func (h *History) CanRedo() bool { return len(h.reverted) > 0 }
