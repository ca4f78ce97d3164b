// Package engine implements the FocusNest timer state engine: the mode and
// session state machine, completion bookkeeping with auto-chaining, the task
// registry, the settings store, and the persistence codec. The engine is the
// single owner of all timer state; callers drive it through the exported
// operations and an external driver decrements the remaining time.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/xvierd/focusnest/internal/domain"
	"github.com/xvierd/focusnest/internal/ports"
)

// DefaultAutoStartDelay is the pause between an auto-chained mode switch and
// the automatic start, leaving completion feedback time to render. It must
// never be zero.
const DefaultAutoStartDelay = time.Second

// Engine is the timer state engine. All exported methods are safe to call
// from the single logical caller sequence plus the engine's own deferred
// auto-start callback; a mutex serializes the two.
type Engine struct {
	mu sync.Mutex

	settings      domain.Settings
	mode          domain.Mode
	running       bool
	remaining     int // seconds
	current       *domain.Session
	history       []domain.CompletedSession
	pomodoroCount int
	tasks         []*domain.Task
	activeTaskID  *string

	store          ports.BlobStore
	notifier       ports.Notifier
	logger         *slog.Logger
	clock          func() time.Time
	autoStartDelay time.Duration

	// Pending auto-start. autoGen invalidates a scheduled callback when any
	// cancelling transition runs before the delay elapses; autoWanted is
	// re-checked when the timer fires.
	autoTimer  *time.Timer
	autoGen    uint64
	autoWanted func() bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier sets the notification/tone collaborator. Without one, the
// side effects are skipped and logged as unavailable.
func WithNotifier(n ports.Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithLogger sets the logger for swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithAutoStartDelay overrides the auto-chain start delay.
func WithAutoStartDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.autoStartDelay = d
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// New creates an engine with default settings, pomodoro mode selected, and a
// full timer. Call Load to seed it from the blob store before anything else.
func New(store ports.BlobStore, opts ...Option) *Engine {
	e := &Engine{
		settings:       domain.DefaultSettings(),
		mode:           domain.ModePomodoro,
		store:          store,
		logger:         slog.Default(),
		clock:          time.Now,
		autoStartDelay: DefaultAutoStartDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.remaining = e.settings.DurationFor(e.mode) * 60
	return e
}

// Close cancels any pending auto-start. It does not close the blob store,
// which the engine does not own.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelAutoStartLocked()
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() domain.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// Mode returns the currently selected mode.
func (e *Engine) Mode() domain.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// IsRunning reports whether the timer is running.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Remaining returns the remaining time of the current interval, in seconds.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// CurrentDuration returns the configured duration for the current mode, in
// minutes.
func (e *Engine) CurrentDuration() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.DurationFor(e.mode)
}

// CurrentSession returns a copy of the open session, or nil.
func (e *Engine) CurrentSession() *domain.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return nil
	}
	s := *e.current
	return &s
}

// PomodoroCount returns the number of completed pomodoros in the current
// long-break cycle counter.
func (e *Engine) PomodoroCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pomodoroCount
}

// IsLongBreakDue reports whether the next break should be a long one.
func (e *Engine) IsLongBreakDue() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isLongBreakDueLocked()
}

func (e *Engine) isLongBreakDueLocked() bool {
	interval := e.settings.LongBreakInterval
	if interval < 1 {
		interval = 1
	}
	return e.pomodoroCount > 0 && e.pomodoroCount%interval == 0
}

// CompletedSessions returns a copy of the completed-session history, in
// insertion order.
func (e *Engine) CompletedSessions() []domain.CompletedSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.CompletedSession, len(e.history))
	copy(out, e.history)
	return out
}

// TotalCompletedPomodoros counts pomodoro-type sessions in history.
func (e *Engine) TotalCompletedPomodoros() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, s := range e.history {
		if s.Type == domain.ModePomodoro {
			n++
		}
	}
	return n
}

// TodayCompletedPomodoros counts pomodoro-type sessions completed on the
// current calendar day.
func (e *Engine) TodayCompletedPomodoros() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	y, m, d := e.clock().Date()
	n := 0
	for _, s := range e.history {
		sy, sm, sd := s.CompletedAt.Date()
		if s.Type == domain.ModePomodoro && sy == y && sm == m && sd == d {
			n++
		}
	}
	return n
}

// ResetAllData clears tasks, history, counters and the open session, restores
// default settings, and removes the persisted snapshot.
func (e *Engine) ResetAllData() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelAutoStartLocked()
	e.tasks = nil
	e.history = nil
	e.pomodoroCount = 0
	e.activeTaskID = nil
	e.current = nil
	e.running = false
	e.settings = domain.DefaultSettings()
	e.remaining = e.settings.DurationFor(e.mode) * 60
	if err := e.store.Remove(StorageKey); err != nil {
		e.logger.Warn("failed to remove stored data", "key", StorageKey, "error", err)
	}
}
