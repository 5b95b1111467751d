package observers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/ports"
)

// MetricsObserver counts store events in a prometheus counter, labeled by
// event name and task kind. The registry is injected so multiple stores
// (and tests) never fight over the default registry.
type MetricsObserver struct {
	events *prometheus.CounterVec
}

var _ ports.Observer = (*MetricsObserver)(nil)

// NewMetricsObserver creates a metrics observer and registers its
// collectors with the given registry.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskforge",
			Name:      "task_events_total",
			Help:      "Number of task store events by event name and task kind.",
		},
		[]string{"event", "kind"},
	)
	if err := reg.Register(events); err != nil {
		return nil, err
	}
	return &MetricsObserver{events: events}, nil
}

func (o *MetricsObserver) Notify(event ports.EventName, task entities.Task) error {
	o.events.WithLabelValues(string(event), string(task.Kind())).Inc()
	return nil
}
