package domain

import "fmt"

// Mode identifies which of the three timer intervals is selected.
type Mode string

const (
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "short"
	ModeLongBreak  Mode = "long"
)

// ValidModes lists all supported mode values.
var ValidModes = []Mode{
	ModePomodoro,
	ModeShortBreak,
	ModeLongBreak,
}

// ParseMode checks if a string is a valid timer mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	for _, valid := range ValidModes {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q: must be one of pomodoro, short, long", s)
}

// Label returns a human-readable label.
func (m Mode) Label() string {
	switch m {
	case ModePomodoro:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak returns true for either break mode.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}
