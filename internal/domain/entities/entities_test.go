package entities

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBasicCompleteIsUnconditional(t *testing.T) {
	task := &BasicTask{TaskBase: TaskBase{ID: 1, Title: "write docs"}}

	remaining := task.Complete(testNow)

	if remaining {
		t.Error("expected no remaining work after completing a basic task")
	}
	if !task.Completed {
		t.Error("expected task to be completed")
	}
}

func TestDeadlineIsOverdue(t *testing.T) {
	tests := []struct {
		name      string
		dueAt     time.Time
		completed bool
		want      bool
	}{
		{"due in the future", testNow.Add(24 * time.Hour), false, false},
		{"past due and open", testNow.Add(-time.Hour), false, true},
		{"past due but completed", testNow.Add(-time.Hour), true, false},
		{"due exactly now", testNow, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &DeadlineTask{
				TaskBase: TaskBase{ID: 1, Title: "ship release", Completed: tt.completed},
				DueAt:    tt.dueAt,
			}
			if got := task.IsOverdue(testNow); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeadlineRemainingDaysRoundsUp(t *testing.T) {
	tests := []struct {
		name  string
		dueAt time.Time
		want  int
	}{
		{"36 hours away", testNow.Add(36 * time.Hour), 2},
		{"exactly one day", testNow.Add(24 * time.Hour), 1},
		{"one hour away", testNow.Add(time.Hour), 1},
		{"36 hours overdue", testNow.Add(-36 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &DeadlineTask{DueAt: tt.dueAt}
			if got := task.RemainingDays(testNow); got != tt.want {
				t.Errorf("RemainingDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecurringCompleteSequence(t *testing.T) {
	task := &RecurringTask{
		TaskBase:          TaskBase{ID: 1, Title: "water plants"},
		Interval:          IntervalWeekly,
		TotalOccurrences:  3,
		CurrentOccurrence: 1,
	}

	wantOccurrences := []int{2, 3, 4}
	wantRemaining := []bool{true, true, false}

	for i := 0; i < 3; i++ {
		remaining := task.Complete(testNow)
		if task.CurrentOccurrence != wantOccurrences[i] {
			t.Errorf("call %d: CurrentOccurrence = %d, want %d", i+1, task.CurrentOccurrence, wantOccurrences[i])
		}
		if remaining != wantRemaining[i] {
			t.Errorf("call %d: remaining = %v, want %v", i+1, remaining, wantRemaining[i])
		}
		if i < 2 && task.Completed {
			t.Errorf("call %d: task completed too early", i+1)
		}
	}

	if !task.Completed {
		t.Error("expected task to be completed after the final occurrence")
	}
}

func TestChecklistCompletionCascade(t *testing.T) {
	task := &ChecklistTask{TaskBase: TaskBase{ID: 1, Title: "pack bags"}}
	a := task.AddSubtask("passport", "")
	b := task.AddSubtask("tickets", "print at home")
	c := task.AddSubtask("charger", "")

	if a.ID == b.ID || b.ID == c.ID {
		t.Fatal("expected distinct subtask ids")
	}

	if !task.CompleteSubtask(a.ID) {
		t.Fatal("expected subtask completion to succeed")
	}
	if !task.CompleteSubtask(b.ID) {
		t.Fatal("expected subtask completion to succeed")
	}
	if task.Completed {
		t.Error("parent must not complete while a subtask is open")
	}

	if !task.CompleteSubtask(c.ID) {
		t.Fatal("expected subtask completion to succeed")
	}
	if !task.Completed {
		t.Error("parent must complete once every subtask is done")
	}
}

func TestChecklistCompleteUnknownSubtask(t *testing.T) {
	task := &ChecklistTask{TaskBase: TaskBase{ID: 1, Title: "pack bags"}}
	task.AddSubtask("passport", "")

	if task.CompleteSubtask("no-such-id") {
		t.Error("expected false for an unknown subtask id")
	}
	if task.Completed {
		t.Error("parent must stay open")
	}
}

func TestChecklistCloneIsDeep(t *testing.T) {
	task := &ChecklistTask{TaskBase: TaskBase{ID: 1, Title: "pack bags"}}
	sub := task.AddSubtask("passport", "")

	clone := task.Clone().(*ChecklistTask)
	clone.CompleteSubtask(sub.ID)

	if task.Subtasks[0].Completed {
		t.Error("completing a subtask on the clone must not touch the original")
	}
	if task.Completed {
		t.Error("original parent must stay open")
	}
}

func TestTaskChangesIsEmpty(t *testing.T) {
	if !(TaskChanges{}).IsEmpty() {
		t.Error("zero change set should be empty")
	}

	title := "new title"
	if (TaskChanges{Title: &title}).IsEmpty() {
		t.Error("change set with a title should not be empty")
	}
}
