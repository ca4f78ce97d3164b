package domain

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.PomodoroDuration != 25 {
		t.Errorf("PomodoroDuration = %v, want 25", s.PomodoroDuration)
	}
	if s.ShortBreakDuration != 5 {
		t.Errorf("ShortBreakDuration = %v, want 5", s.ShortBreakDuration)
	}
	if s.LongBreakDuration != 15 {
		t.Errorf("LongBreakDuration = %v, want 15", s.LongBreakDuration)
	}
	if s.LongBreakInterval != 4 {
		t.Errorf("LongBreakInterval = %v, want 4", s.LongBreakInterval)
	}
	if s.AutoStartBreaks || s.AutoStartPomodoros {
		t.Error("auto-start flags should default to false")
	}
	if !s.EnableTasks || !s.Notifications || !s.SoundEffects {
		t.Error("enableTasks, notifications and soundEffects should default to true")
	}
}

func TestSettings_Apply_MergesOnlyGivenFields(t *testing.T) {
	s := DefaultSettings()
	pomodoro := 50
	auto := true

	s.Apply(SettingsPatch{
		PomodoroDuration: &pomodoro,
		AutoStartBreaks:  &auto,
	})

	if s.PomodoroDuration != 50 {
		t.Errorf("PomodoroDuration = %v, want 50", s.PomodoroDuration)
	}
	if !s.AutoStartBreaks {
		t.Error("AutoStartBreaks should be true")
	}
	// Unspecified fields are unchanged.
	if s.ShortBreakDuration != 5 || s.LongBreakDuration != 15 || s.LongBreakInterval != 4 {
		t.Errorf("untouched durations changed: %+v", s)
	}
	if s.AutoStartPomodoros || !s.Notifications {
		t.Errorf("untouched flags changed: %+v", s)
	}
}

func TestSettings_Apply_ClampsInterval(t *testing.T) {
	s := DefaultSettings()
	zero := 0

	s.Apply(SettingsPatch{LongBreakInterval: &zero})

	if s.LongBreakInterval != 1 {
		t.Errorf("LongBreakInterval = %v, want 1 (clamped)", s.LongBreakInterval)
	}
}

func TestSettings_DurationFor(t *testing.T) {
	s := Settings{
		PomodoroDuration:   30,
		ShortBreakDuration: 7,
		LongBreakDuration:  20,
	}

	tests := []struct {
		mode Mode
		want int
	}{
		{ModePomodoro, 30},
		{ModeShortBreak, 7},
		{ModeLongBreak, 20},
	}
	for _, tt := range tests {
		if got := s.DurationFor(tt.mode); got != tt.want {
			t.Errorf("DurationFor(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
