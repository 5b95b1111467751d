package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforge/core/internal/infrastructure/logger"
)

// stubCommand records apply/revert calls and can be told to fail either.
type stubCommand struct {
	name        string
	failApply   bool
	failRevert  bool
	applyCalls  int
	revertCalls int
}

func (c *stubCommand) Name() string { return c.name }

func (c *stubCommand) Apply() bool {
	c.applyCalls++
	return !c.failApply
}

func (c *stubCommand) Revert() bool {
	c.revertCalls++
	return !c.failRevert
}

func TestHistoryExecutePushesApplied(t *testing.T) {
	h := newHistory(logger.Nop())
	cmd := &stubCommand{name: "a"}

	require.True(t, h.Execute(cmd))
	assert.Equal(t, 1, cmd.applyCalls)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryExecuteDiscardsFailedCommand(t *testing.T) {
	h := newHistory(logger.Nop())

	require.False(t, h.Execute(&stubCommand{name: "a", failApply: true}))
	assert.False(t, h.CanUndo())
}

func TestHistoryUndoRedoAreLIFO(t *testing.T) {
	h := newHistory(logger.Nop())
	a := &stubCommand{name: "a"}
	b := &stubCommand{name: "b"}
	require.True(t, h.Execute(a))
	require.True(t, h.Execute(b))

	require.True(t, h.Undo())
	assert.Equal(t, 1, b.revertCalls, "most recent command is undone first")
	assert.Zero(t, a.revertCalls)

	require.True(t, h.Undo())
	assert.Equal(t, 1, a.revertCalls)

	require.True(t, h.Redo())
	assert.Equal(t, 2, a.applyCalls, "last undone command is redone first")

	require.True(t, h.Redo())
	assert.Equal(t, 2, b.applyCalls)
	assert.False(t, h.Redo())
}

func TestHistoryExecuteClearsRevertedStack(t *testing.T) {
	h := newHistory(logger.Nop())
	a := &stubCommand{name: "a"}
	require.True(t, h.Execute(a))
	require.True(t, h.Undo())
	require.True(t, h.CanRedo())

	require.True(t, h.Execute(&stubCommand{name: "b"}))
	assert.False(t, h.CanRedo(), "a new command invalidates the undone branch")
	assert.False(t, h.Redo())
}

func TestHistoryUndoFailurePushesCommandBack(t *testing.T) {
	h := newHistory(logger.Nop())
	cmd := &stubCommand{name: "a", failRevert: true}
	require.True(t, h.Execute(cmd))

	assert.False(t, h.Undo())
	assert.True(t, h.CanUndo(), "command stays on the applied stack after a failed revert")
	assert.False(t, h.CanRedo())
}

func TestHistoryRedoFailurePushesCommandBack(t *testing.T) {
	h := newHistory(logger.Nop())
	cmd := &stubCommand{name: "a"}
	require.True(t, h.Execute(cmd))
	require.True(t, h.Undo())

	cmd.failApply = true
	assert.False(t, h.Redo())
	assert.True(t, h.CanRedo(), "command stays on the reverted stack after a failed apply")
	assert.False(t, h.CanUndo())
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := newHistory(logger.Nop())
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
}
