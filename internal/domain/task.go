// Package domain contains the core entities for FocusNest.
// These entities represent the fundamental concepts of the timer engine
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrTaskNotFound   = errors.New("task not found")
)

// Task represents a discrete work item that pomodoro sessions can be
// attributed to.
type Task struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Completed          bool      `json:"completed"`
	PomodorosCompleted int       `json:"pomodorosCompleted"`
	EstimatedPomodoros int       `json:"estimatedPomodoros"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewTask creates a new task with the given title and estimate.
// An estimate below one pomodoro is bumped to one.
func NewTask(title string, estimatedPomodoros int) *Task {
	if estimatedPomodoros < 1 {
		estimatedPomodoros = 1
	}
	return &Task{
		ID:                 generateID(),
		Title:              title,
		Completed:          false,
		PomodorosCompleted: 0,
		EstimatedPomodoros: estimatedPomodoros,
		CreatedAt:          time.Now(),
	}
}

// TaskPatch is a partial task update. ID and CreatedAt are immutable and
// deliberately absent.
type TaskPatch struct {
	Title              *string
	Completed          *bool
	PomodorosCompleted *int
	EstimatedPomodoros *int
}

// Apply merges the patch over the task.
func (t *Task) Apply(p TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.PomodorosCompleted != nil {
		t.PomodorosCompleted = *p.PomodorosCompleted
	}
	if p.EstimatedPomodoros != nil {
		t.EstimatedPomodoros = *p.EstimatedPomodoros
	}
}
