package domain

import "time"

// Session is an open (started but not yet completed or discarded) timer
// interval. At most one open session exists at any instant; it is owned
// exclusively by the engine.
type Session struct {
	ID       string  `json:"id"`
	Type     Mode    `json:"type"`
	Duration int     `json:"duration"` // minutes
	TaskID   *string `json:"taskId,omitempty"`
}

// NewSession opens a session for the given mode and duration. taskID is the
// task the session will be attributed to on completion, if any.
func NewSession(mode Mode, duration int, taskID *string) *Session {
	return &Session{
		ID:       generateID(),
		Type:     mode,
		Duration: duration,
		TaskID:   taskID,
	}
}

// CompletedSession is the immutable record appended to history when a
// session finishes.
type CompletedSession struct {
	ID          string    `json:"id"`
	Type        Mode      `json:"type"`
	Duration    int       `json:"duration"` // minutes
	TaskID      *string   `json:"taskId,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// Completed builds the history record for this session.
func (s *Session) Completed(at time.Time) CompletedSession {
	return CompletedSession{
		ID:          s.ID,
		Type:        s.Type,
		Duration:    s.Duration,
		TaskID:      s.TaskID,
		CompletedAt: at,
	}
}
