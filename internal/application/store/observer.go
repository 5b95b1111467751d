package store

import (
	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/ports"
)

// Subscribe registers an observer for store events. Observers are tracked
// by identity; re-subscribing the same observer is a no-op. Delivery order
// follows subscription order.
func (s *Store) Subscribe(observer ports.Observer) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.observers {
		if existing == observer {
			return
		}
	}
	s.observers = append(s.observers, observer)
}

// Unsubscribe removes an observer by identity. Unknown observers are
// ignored.
func (s *Store) Unsubscribe(observer ports.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// notify fans an event out to every subscriber. Each delivery is isolated:
// an observer that returns an error or panics is logged and skipped, and
// never affects the mutation that triggered the event or delivery to the
// remaining observers.
func (s *Store) notify(event ports.EventName, task entities.Task) {
	s.mu.RLock()
	observers := make([]ports.Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	if len(observers) == 0 {
		return
	}

	snapshot := task.Clone()
	for _, observer := range observers {
		s.deliver(observer, event, snapshot)
	}
}

func (s *Store) deliver(observer ports.Observer, event ports.EventName, snapshot entities.Task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("observer panicked",
				"event", event,
				"task_id", snapshot.Base().ID,
				"panic", r,
			)
		}
	}()
	if err := observer.Notify(event, snapshot); err != nil {
		s.logger.Errorw("observer failed",
			"event", event,
			"task_id", snapshot.Base().ID,
			"error", err.Error(),
		)
	}
}
