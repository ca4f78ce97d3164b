package engine

import (
	"encoding/json"
	"time"

	"github.com/xvierd/focusnest/internal/domain"
)

// StorageKey is the single blob-store key the engine state lives under.
const StorageKey = "focusnest-data"

// snapshotTimeLayout renders timestamps as ISO-8601 UTC with millisecond
// precision, the format the stored snapshots have always used.
const snapshotTimeLayout = "2006-01-02T15:04:05.000Z"

type taskJSON struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Completed          bool   `json:"completed"`
	PomodorosCompleted int    `json:"pomodorosCompleted"`
	EstimatedPomodoros int    `json:"estimatedPomodoros"`
	CreatedAt          string `json:"createdAt"`
}

type sessionJSON struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Duration    int     `json:"duration"`
	TaskID      *string `json:"taskId,omitempty"`
	CompletedAt string  `json:"completedAt"`
}

// snapshotOut is the written form: every field is always present.
type snapshotOut struct {
	Settings          domain.Settings `json:"settings"`
	Tasks             []taskJSON      `json:"tasks"`
	CompletedSessions []sessionJSON   `json:"completedSessions"`
	PomodoroCount     int             `json:"pomodoroCount"`
	ActiveTaskID      *string         `json:"activeTaskId"`
}

// snapshotIn is the read form: every top-level field may be absent.
// RawMessage distinguishes an absent key from an explicit null.
type snapshotIn struct {
	Settings          *domain.SettingsPatch `json:"settings"`
	Tasks             *[]taskJSON           `json:"tasks"`
	CompletedSessions *[]sessionJSON        `json:"completedSessions"`
	PomodoroCount     json.RawMessage       `json:"pomodoroCount"`
	ActiveTaskID      json.RawMessage       `json:"activeTaskId"`
}

// persistLocked writes the full state snapshot to the blob store. A write
// failure is logged and otherwise ignored: the in-memory state stays
// authoritative and is not rolled back.
func (e *Engine) persistLocked() {
	snap := snapshotOut{
		Settings:          e.settings,
		Tasks:             make([]taskJSON, 0, len(e.tasks)),
		CompletedSessions: make([]sessionJSON, 0, len(e.history)),
		PomodoroCount:     e.pomodoroCount,
		ActiveTaskID:      e.activeTaskID,
	}
	for _, t := range e.tasks {
		snap.Tasks = append(snap.Tasks, taskJSON{
			ID:                 t.ID,
			Title:              t.Title,
			Completed:          t.Completed,
			PomodorosCompleted: t.PomodorosCompleted,
			EstimatedPomodoros: t.EstimatedPomodoros,
			CreatedAt:          t.CreatedAt.UTC().Format(snapshotTimeLayout),
		})
	}
	for _, s := range e.history {
		snap.CompletedSessions = append(snap.CompletedSessions, sessionJSON{
			ID:          s.ID,
			Type:        string(s.Type),
			Duration:    s.Duration,
			TaskID:      s.TaskID,
			CompletedAt: s.CompletedAt.UTC().Format(snapshotTimeLayout),
		})
	}

	data, err := json.Marshal(snap)
	if err != nil {
		e.logger.Error("failed to encode state snapshot", "error", err)
		return
	}
	if err := e.store.Set(StorageKey, string(data)); err != nil {
		e.logger.Warn("failed to save state", "key", StorageKey, "error", err)
	}
}

// Load seeds the engine from the blob store. It runs once at startup, before
// any other operation. An absent key leaves the defaults untouched. A parse
// or shape failure is logged and the stored key removed, so the same
// corrupted blob is not retried on every start; defaults stay in place.
func (e *Engine) Load() {
	e.mu.Lock()
	defer e.mu.Unlock()

	raw, ok, err := e.store.Get(StorageKey)
	if err != nil {
		e.logger.Warn("failed to read stored state", "key", StorageKey, "error", err)
		return
	}
	if !ok {
		return
	}

	var snap snapshotIn
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		e.discardCorruptLocked(err)
		return
	}

	// Decode everything before mutating anything, so a shape failure leaves
	// the default state fully intact.
	var tasks []*domain.Task
	if snap.Tasks != nil {
		tasks = make([]*domain.Task, 0, len(*snap.Tasks))
		for _, tj := range *snap.Tasks {
			createdAt, err := time.Parse(time.RFC3339, tj.CreatedAt)
			if err != nil {
				e.discardCorruptLocked(err)
				return
			}
			tasks = append(tasks, &domain.Task{
				ID:                 tj.ID,
				Title:              tj.Title,
				Completed:          tj.Completed,
				PomodorosCompleted: tj.PomodorosCompleted,
				EstimatedPomodoros: tj.EstimatedPomodoros,
				CreatedAt:          createdAt,
			})
		}
	}

	var history []domain.CompletedSession
	if snap.CompletedSessions != nil {
		history = make([]domain.CompletedSession, 0, len(*snap.CompletedSessions))
		for _, sj := range *snap.CompletedSessions {
			completedAt, err := time.Parse(time.RFC3339, sj.CompletedAt)
			if err != nil {
				e.discardCorruptLocked(err)
				return
			}
			history = append(history, domain.CompletedSession{
				ID:          sj.ID,
				Type:        domain.Mode(sj.Type),
				Duration:    sj.Duration,
				TaskID:      sj.TaskID,
				CompletedAt: completedAt,
			})
		}
	}

	var activeTaskID *string
	if len(snap.ActiveTaskID) > 0 {
		if err := json.Unmarshal(snap.ActiveTaskID, &activeTaskID); err != nil {
			e.discardCorruptLocked(err)
			return
		}
	}

	if snap.Settings != nil {
		e.settings.Apply(*snap.Settings)
	}
	if snap.Tasks != nil {
		e.tasks = tasks
	}
	if snap.CompletedSessions != nil {
		e.history = history
	}
	if len(snap.PomodoroCount) > 0 {
		// A non-numeric count is skipped, not treated as corruption.
		var n float64
		if err := json.Unmarshal(snap.PomodoroCount, &n); err == nil {
			e.pomodoroCount = int(n)
		}
	}
	if len(snap.ActiveTaskID) > 0 {
		// Presence of the key applies the value, including explicit null.
		e.activeTaskID = activeTaskID
	}

	e.remaining = e.settings.DurationFor(e.mode) * 60
}

func (e *Engine) discardCorruptLocked(cause error) {
	e.logger.Error("discarding corrupted stored state", "key", StorageKey, "error", cause)
	if err := e.store.Remove(StorageKey); err != nil {
		e.logger.Warn("failed to remove corrupted state", "key", StorageKey, "error", err)
	}
}
