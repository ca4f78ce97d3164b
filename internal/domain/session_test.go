package domain

import (
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	taskID := "task-123"
	s := NewSession(ModePomodoro, 25, &taskID)

	if s.ID == "" {
		t.Error("NewSession() ID is empty")
	}
	if s.Type != ModePomodoro {
		t.Errorf("Type = %v, want %v", s.Type, ModePomodoro)
	}
	if s.Duration != 25 {
		t.Errorf("Duration = %v, want 25", s.Duration)
	}
	if s.TaskID == nil || *s.TaskID != taskID {
		t.Errorf("TaskID = %v, want %v", s.TaskID, taskID)
	}
}

func TestSession_Completed(t *testing.T) {
	s := NewSession(ModeShortBreak, 5, nil)
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	done := s.Completed(at)

	if done.ID != s.ID || done.Type != s.Type || done.Duration != s.Duration {
		t.Errorf("Completed() = %+v, should mirror session %+v", done, s)
	}
	if done.TaskID != nil {
		t.Error("TaskID should stay nil")
	}
	if !done.CompletedAt.Equal(at) {
		t.Errorf("CompletedAt = %v, want %v", done.CompletedAt, at)
	}
}
