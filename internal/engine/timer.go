package engine

import (
	"time"

	"github.com/xvierd/focusnest/internal/domain"
)

// SetMode selects a mode and resets the remaining time to its configured
// duration. The running flag and the open session are left untouched.
func (e *Engine) SetMode(mode domain.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setModeLocked(mode)
}

func (e *Engine) setModeLocked(mode domain.Mode) {
	e.mode = mode
	e.remaining = e.settings.DurationFor(mode) * 60
}

// Start sets the timer running and opens a new session for the current mode.
// An already-open session is silently replaced. The session is attributed to
// the active task when task tracking is enabled and an active task is set.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startLocked()
}

func (e *Engine) startLocked() {
	var taskID *string
	if e.settings.EnableTasks && e.activeTaskID != nil {
		id := *e.activeTaskID
		taskID = &id
	}
	e.running = true
	e.current = domain.NewSession(e.mode, e.settings.DurationFor(e.mode), taskID)
}

// Pause stops the countdown but keeps the open session, so it can be
// resumed. A pending auto-start is cancelled.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelAutoStartLocked()
	e.running = false
}

// Resume continues a paused session. Without an open session it is a no-op.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return
	}
	e.running = true
}

// Stop halts the timer and discards the open session. Unlike Pause, the
// session is not recoverable. A pending auto-start is cancelled.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelAutoStartLocked()
	e.running = false
	e.current = nil
}

// Reset halts the timer, discards the open session, and refills the
// remaining time from the current mode's duration. A pending auto-start is
// cancelled.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelAutoStartLocked()
	e.running = false
	e.current = nil
	e.remaining = e.settings.DurationFor(e.mode) * 60
}

// Tick is the hook for the external countdown driver: it decrements the
// remaining time by one second while the timer is running and returns the
// new value. The driver is expected to call Complete when it reaches zero.
func (e *Engine) Tick() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running && e.remaining > 0 {
		e.remaining--
	}
	return e.remaining
}

func (e *Engine) scheduleAutoStartLocked(stillWanted func() bool) {
	e.autoGen++
	gen := e.autoGen
	if e.autoTimer != nil {
		e.autoTimer.Stop()
	}
	e.autoWanted = stillWanted
	e.autoTimer = time.AfterFunc(e.autoStartDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.autoGen {
			return
		}
		e.autoTimer = nil
		e.autoWanted = nil
		if !stillWanted() {
			return
		}
		e.startLocked()
	})
}

func (e *Engine) cancelAutoStartLocked() {
	e.autoGen++
	e.autoWanted = nil
	if e.autoTimer != nil {
		e.autoTimer.Stop()
		e.autoTimer = nil
	}
}
