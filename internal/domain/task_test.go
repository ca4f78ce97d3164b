package domain

import "testing"

func TestNewTask(t *testing.T) {
	task := NewTask("Write report", 3)

	if task.ID == "" {
		t.Error("NewTask() ID is empty")
	}
	if task.Title != "Write report" {
		t.Errorf("Title = %q, want %q", task.Title, "Write report")
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.PomodorosCompleted != 0 {
		t.Errorf("PomodorosCompleted = %v, want 0", task.PomodorosCompleted)
	}
	if task.EstimatedPomodoros != 3 {
		t.Errorf("EstimatedPomodoros = %v, want 3", task.EstimatedPomodoros)
	}
	if task.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestNewTask_BumpsZeroEstimate(t *testing.T) {
	task := NewTask("Quick fix", 0)

	if task.EstimatedPomodoros != 1 {
		t.Errorf("EstimatedPomodoros = %v, want 1", task.EstimatedPomodoros)
	}
}

func TestTask_Apply(t *testing.T) {
	task := NewTask("Draft", 2)
	originalID := task.ID
	originalCreated := task.CreatedAt

	title := "Final draft"
	completed := true
	done := 4
	task.Apply(TaskPatch{
		Title:              &title,
		Completed:          &completed,
		PomodorosCompleted: &done,
	})

	if task.Title != "Final draft" {
		t.Errorf("Title = %q, want %q", task.Title, "Final draft")
	}
	if !task.Completed {
		t.Error("Completed should be true")
	}
	if task.PomodorosCompleted != 4 {
		t.Errorf("PomodorosCompleted = %v, want 4", task.PomodorosCompleted)
	}
	if task.EstimatedPomodoros != 2 {
		t.Errorf("EstimatedPomodoros = %v, want 2 (unchanged)", task.EstimatedPomodoros)
	}
	if task.ID != originalID || !task.CreatedAt.Equal(originalCreated) {
		t.Error("ID and CreatedAt must be immutable")
	}
}
