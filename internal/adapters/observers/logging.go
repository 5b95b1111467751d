// Package observers provides ready-made store observers: a structured-log
// sink and a prometheus metrics sink.
package observers

import (
	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/infrastructure/logger"
	"github.com/taskforge/core/internal/ports"
)

// LoggingObserver writes one structured log line per store event.
type LoggingObserver struct {
	logger *logger.Logger
}

var _ ports.Observer = (*LoggingObserver)(nil)

// NewLoggingObserver creates a logging observer on the given logger.
func NewLoggingObserver(log *logger.Logger) *LoggingObserver {
	return &LoggingObserver{
		logger: log.WithComponent("task-events"),
	}
}

func (o *LoggingObserver) Notify(event ports.EventName, task entities.Task) error {
	o.logger.Infow("task event",
		"event", event,
		"task_id", task.Base().ID,
		"kind", task.Kind(),
		"title", task.Base().Title,
		"completed", task.Base().Completed,
	)
	return nil
}
