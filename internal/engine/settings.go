package engine

import (
	"math/rand/v2"

	"github.com/xvierd/focusnest/internal/domain"
)

// UpdateSettings merges the patch over the current settings and persists.
// When the update disables the flag a pending auto-start was scheduled for,
// the pending start is cancelled.
func (e *Engine) UpdateSettings(patch domain.SettingsPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Apply(patch)
	if e.autoTimer != nil && e.autoWanted != nil && !e.autoWanted() {
		e.cancelAutoStartLocked()
	}
	e.persistLocked()
}

// ResetSettings restores the documented defaults and persists.
func (e *Engine) ResetSettings() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = domain.DefaultSettings()
	e.persistLocked()
}

// RandomizeSettings assigns each duration a bounded pseudo-random value, for
// demos and testing: pomodoro 15-50, short break 3-12, long break 15-40
// minutes, long-break interval 3-8.
func (e *Engine) RandomizeSettings() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.PomodoroDuration = 15 + rand.IntN(36)
	e.settings.ShortBreakDuration = 3 + rand.IntN(10)
	e.settings.LongBreakDuration = 15 + rand.IntN(26)
	e.settings.LongBreakInterval = 3 + rand.IntN(6)
	e.persistLocked()
}
