package domain

import "time"

// Settings holds the user-configurable timer durations and behavior flags.
// Durations are whole minutes, matching the persisted snapshot format.
type Settings struct {
	PomodoroDuration   int  `json:"pomodoroDuration"`
	ShortBreakDuration int  `json:"shortBreakDuration"`
	LongBreakDuration  int  `json:"longBreakDuration"`
	LongBreakInterval  int  `json:"longBreakInterval"`
	EnableTasks        bool `json:"enableTasks"`
	AutoStartBreaks    bool `json:"autoStartBreaks"`
	AutoStartPomodoros bool `json:"autoStartPomodoros"`
	Notifications      bool `json:"notifications"`
	SoundEffects       bool `json:"soundEffects"`
}

// DefaultSettings returns the documented default configuration.
func DefaultSettings() Settings {
	return Settings{
		PomodoroDuration:   25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
		LongBreakInterval:  4,
		EnableTasks:        true,
		AutoStartBreaks:    false,
		AutoStartPomodoros: false,
		Notifications:      true,
		SoundEffects:       true,
	}
}

// DurationFor returns the configured duration for a mode, in minutes.
func (s Settings) DurationFor(m Mode) int {
	switch m {
	case ModeShortBreak:
		return s.ShortBreakDuration
	case ModeLongBreak:
		return s.LongBreakDuration
	default:
		return s.PomodoroDuration
	}
}

// TimerDuration returns the configured duration for a mode as a time.Duration.
func (s Settings) TimerDuration(m Mode) time.Duration {
	return time.Duration(s.DurationFor(m)) * time.Minute
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
// The JSON tags match the persisted snapshot, so the same type drives both
// UpdateSettings and the merge-on-load path.
type SettingsPatch struct {
	PomodoroDuration   *int  `json:"pomodoroDuration"`
	ShortBreakDuration *int  `json:"shortBreakDuration"`
	LongBreakDuration  *int  `json:"longBreakDuration"`
	LongBreakInterval  *int  `json:"longBreakInterval"`
	EnableTasks        *bool `json:"enableTasks"`
	AutoStartBreaks    *bool `json:"autoStartBreaks"`
	AutoStartPomodoros *bool `json:"autoStartPomodoros"`
	Notifications      *bool `json:"notifications"`
	SoundEffects       *bool `json:"soundEffects"`
}

// Apply merges the patch over the settings, last write wins per field.
// LongBreakInterval is clamped to at least 1: it is used as a modulus.
func (s *Settings) Apply(p SettingsPatch) {
	if p.PomodoroDuration != nil {
		s.PomodoroDuration = *p.PomodoroDuration
	}
	if p.ShortBreakDuration != nil {
		s.ShortBreakDuration = *p.ShortBreakDuration
	}
	if p.LongBreakDuration != nil {
		s.LongBreakDuration = *p.LongBreakDuration
	}
	if p.LongBreakInterval != nil {
		s.LongBreakInterval = *p.LongBreakInterval
		if s.LongBreakInterval < 1 {
			s.LongBreakInterval = 1
		}
	}
	if p.EnableTasks != nil {
		s.EnableTasks = *p.EnableTasks
	}
	if p.AutoStartBreaks != nil {
		s.AutoStartBreaks = *p.AutoStartBreaks
	}
	if p.AutoStartPomodoros != nil {
		s.AutoStartPomodoros = *p.AutoStartPomodoros
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.SoundEffects != nil {
		s.SoundEffects = *p.SoundEffects
	}
}
