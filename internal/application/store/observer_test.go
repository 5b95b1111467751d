package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/ports"
)

// recordingObserver remembers every notification it receives.
type recordingObserver struct {
	events []ports.EventName
	tasks  []entities.Task
}

func (o *recordingObserver) Notify(event ports.EventName, task entities.Task) error {
	o.events = append(o.events, event)
	o.tasks = append(o.tasks, task)
	return nil
}

func TestStoreEmitsEventSequence(t *testing.T) {
	s := newTestStore(t)
	rec := &recordingObserver{}
	s.Subscribe(rec)

	task, err := s.RunCreate("basic", entities.TaskFields{Title: "watch me"})
	require.NoError(t, err)
	id := task.Base().ID

	high := entities.PriorityHigh
	require.True(t, s.RunUpdate(id, entities.TaskChanges{Priority: &high}))
	require.True(t, s.Undo()) // update revert
	require.True(t, s.RunDelete(id))
	require.True(t, s.Undo()) // delete revert

	want := []ports.EventName{
		ports.EventCreated,
		ports.EventUpdated,
		ports.EventReverted,
		ports.EventDeleted,
		ports.EventRestored,
	}
	assert.Equal(t, want, rec.events)
}

func TestUndoOfCreateEmitsDeleted(t *testing.T) {
	s := newTestStore(t)
	rec := &recordingObserver{}
	s.Subscribe(rec)

	_, err := s.RunCreate("basic", entities.TaskFields{Title: "short-lived"})
	require.NoError(t, err)
	require.True(t, s.Undo())
	require.True(t, s.Redo())

	want := []ports.EventName{ports.EventCreated, ports.EventDeleted, ports.EventCreated}
	assert.Equal(t, want, rec.events)
}

func TestFailingObserverDoesNotBlockOthers(t *testing.T) {
	s := newTestStore(t)

	failing := ports.NewFuncObserver(func(ports.EventName, entities.Task) error {
		return errors.New("observer exploded")
	})
	panicking := ports.NewFuncObserver(func(ports.EventName, entities.Task) error {
		panic("observer panicked")
	})
	rec := &recordingObserver{}

	s.Subscribe(failing)
	s.Subscribe(panicking)
	s.Subscribe(rec)

	task, err := s.RunCreate("basic", entities.TaskFields{Title: "resilient"})
	require.NoError(t, err, "observer failures must not fail the mutation")
	require.NotNil(t, task)

	require.Len(t, rec.events, 1, "later observers still receive the event")
	assert.Equal(t, ports.EventCreated, rec.events[0])
}

func TestSubscribeIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	rec := &recordingObserver{}
	s.Subscribe(rec)
	s.Subscribe(rec)

	_, err := s.Create("basic", entities.TaskFields{Title: "once"})
	require.NoError(t, err)

	assert.Len(t, rec.events, 1, "re-subscribing the same observer must be a no-op")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := newTestStore(t)
	rec := &recordingObserver{}
	s.Subscribe(rec)

	_, err := s.Create("basic", entities.TaskFields{Title: "first"})
	require.NoError(t, err)

	s.Unsubscribe(rec)
	_, err = s.Create("basic", entities.TaskFields{Title: "second"})
	require.NoError(t, err)

	assert.Len(t, rec.events, 1)
}

func TestObserverReceivesSnapshotNotLiveTask(t *testing.T) {
	s := newTestStore(t)
	rec := &recordingObserver{}
	s.Subscribe(rec)

	task, err := s.Create("basic", entities.TaskFields{Title: "original"})
	require.NoError(t, err)

	require.Len(t, rec.tasks, 1)
	rec.tasks[0].Base().Title = "tampered"

	live, ok := s.GetTask(task.Base().ID)
	require.True(t, ok)
	assert.Equal(t, "original", live.Base().Title, "mutating the snapshot must not reach the store")
}

func TestNotifyWithNoObservers(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create("basic", entities.TaskFields{Title: "quiet"})
	assert.NoError(t, err)
}
