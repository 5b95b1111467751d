package ports

import "github.com/taskforge/core/internal/domain/entities"

// EventName identifies a store mutation event delivered to observers.
type EventName string

const (
	EventCreated  EventName = "created"
	EventUpdated  EventName = "updated"
	EventDeleted  EventName = "deleted"
	EventReverted EventName = "reverted"
	EventRestored EventName = "restored"
)

// Observer receives (event, task snapshot) notifications from the store.
// The snapshot is a deep copy; observers may inspect it freely but changes
// to it never reach the store. An observer may return an error or panic;
// the dispatcher isolates either and keeps delivering to the remaining
// observers.
type Observer interface {
	Notify(event EventName, task entities.Task) error
}

// FuncObserver adapts a plain function to the Observer interface. Each
// value has its own identity, so two FuncObservers wrapping the same
// function count as distinct subscribers.
type FuncObserver struct {
	fn func(event EventName, task entities.Task) error
}

// NewFuncObserver wraps fn as an Observer.
func NewFuncObserver(fn func(event EventName, task entities.Task) error) *FuncObserver {
	return &FuncObserver{fn: fn}
}

func (o *FuncObserver) Notify(event EventName, task entities.Task) error {
	return o.fn(event, task)
}
