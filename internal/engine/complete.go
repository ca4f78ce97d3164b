package engine

import "github.com/xvierd/focusnest/internal/domain"

// Complete finalizes the open session: it appends the history record,
// updates the pomodoro and task counters, decides the auto-chain, fires the
// notification and tone side effects, clears the session, and persists.
// Without an open session it is a no-op.
func (e *Engine) Complete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return
	}

	done := e.current.Completed(e.clock())
	e.history = append(e.history, done)

	if done.Type == domain.ModePomodoro {
		e.pomodoroCount++
		if e.settings.EnableTasks && e.activeTaskID != nil {
			// The active task reference may dangle after a deletion raced
			// through another surface; tolerate it.
			if t := e.findTaskLocked(*e.activeTaskID); t != nil {
				t.PomodorosCompleted++
			}
		}
	}

	e.running = false

	if done.Type == domain.ModePomodoro {
		if e.settings.AutoStartBreaks {
			next := domain.ModeShortBreak
			if e.isLongBreakDueLocked() {
				next = domain.ModeLongBreak
			}
			e.setModeLocked(next)
			// The flag is checked again before scheduling. Redundant while
			// nothing can mutate settings inside this call, but the
			// scheduled start depends on it staying true, so the second
			// check is kept.
			if e.settings.AutoStartBreaks {
				e.scheduleAutoStartLocked(func() bool { return e.settings.AutoStartBreaks })
			}
		}
	} else if e.settings.AutoStartPomodoros {
		e.setModeLocked(domain.ModePomodoro)
		e.scheduleAutoStartLocked(func() bool { return e.settings.AutoStartPomodoros })
	}

	// The message reflects the mode after the auto-chain decision, matching
	// the historical behavior of the web store.
	title, body := completionMessage(e.mode)
	if e.settings.Notifications {
		e.notify(title, body)
	}
	if e.settings.SoundEffects {
		e.playTone()
	}

	e.current = nil
	e.persistLocked()
}

func completionMessage(mode domain.Mode) (title, body string) {
	if mode == domain.ModePomodoro {
		return "Pomodoro Complete!", "Time for a break! Great work! 🍅"
	}
	return "Break Time Over!", "Break's over. Ready for another pomodoro? 💪"
}

func (e *Engine) notify(title, body string) {
	if e.notifier == nil {
		e.logger.Debug("notification capability unavailable")
		return
	}
	n := e.notifier
	go func() {
		if err := n.Notify(title, body); err != nil {
			e.logger.Warn("failed to deliver notification", "error", err)
		}
	}()
}

func (e *Engine) playTone() {
	if e.notifier == nil {
		e.logger.Debug("audio capability unavailable")
		return
	}
	n := e.notifier
	go func() {
		if err := n.PlayTone(); err != nil {
			e.logger.Warn("failed to play completion tone", "error", err)
		}
	}()
}
