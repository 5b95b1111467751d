package commands

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taskforge/core/internal/application/store"
	"github.com/taskforge/core/internal/domain/entities"
)

// seedFile is the YAML shape accepted by --seed.
type seedFile struct {
	Tasks []seedTask `yaml:"tasks"`
}

type seedTask struct {
	Kind             string            `yaml:"kind"`
	Title            string            `yaml:"title"`
	Description      string            `yaml:"description"`
	Priority         entities.Priority `yaml:"priority"`
	DueInDays        int               `yaml:"due_in_days"`
	Interval         entities.Interval `yaml:"interval"`
	TotalOccurrences int               `yaml:"total_occurrences"`
	Subtasks         []seedSubtask     `yaml:"subtasks"`
}

type seedSubtask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// seedTasks pre-loads tasks from a YAML file through the store's direct
// create path, so seeding is not part of the undoable history.
func seedTasks(s *store.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, st := range seed.Tasks {
		fields := entities.TaskFields{
			Title:            st.Title,
			Description:      st.Description,
			Priority:         st.Priority,
			Interval:         st.Interval,
			TotalOccurrences: st.TotalOccurrences,
		}
		if st.DueInDays > 0 {
			dueAt := time.Now().Add(time.Duration(st.DueInDays) * 24 * time.Hour)
			fields.DueAt = &dueAt
		}

		task, err := s.Create(st.Kind, fields)
		if err != nil {
			return i, fmt.Errorf("seed task %d (%q): %w", i, st.Title, err)
		}
		for _, sub := range st.Subtasks {
			s.AddSubtask(task.Base().ID, sub.Title, sub.Description)
		}
	}

	return len(seed.Tasks), nil
}
