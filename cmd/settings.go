package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/focusnest/internal/domain"
)

var (
	setPomodoro      int
	setShortBreak    int
	setLongBreak     int
	setInterval      int
	setEnableTasks   bool
	setAutoBreaks    bool
	setAutoPomodoros bool
	setNotifications bool
	setSoundEffects  bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the timer settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSettings()
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Partially update the timer settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch domain.SettingsPatch
		flags := cmd.Flags()

		// Only flags the user actually passed enter the patch; everything
		// else is left unchanged.
		if flags.Changed("pomodoro") {
			patch.PomodoroDuration = &setPomodoro
		}
		if flags.Changed("short-break") {
			patch.ShortBreakDuration = &setShortBreak
		}
		if flags.Changed("long-break") {
			patch.LongBreakDuration = &setLongBreak
		}
		if flags.Changed("interval") {
			patch.LongBreakInterval = &setInterval
		}
		if flags.Changed("tasks") {
			patch.EnableTasks = &setEnableTasks
		}
		if flags.Changed("auto-breaks") {
			patch.AutoStartBreaks = &setAutoBreaks
		}
		if flags.Changed("auto-pomodoros") {
			patch.AutoStartPomodoros = &setAutoPomodoros
		}
		if flags.Changed("notifications") {
			patch.Notifications = &setNotifications
		}
		if flags.Changed("sound") {
			patch.SoundEffects = &setSoundEffects
		}

		eng.UpdateSettings(patch)
		return printSettings()
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng.ResetSettings()
		return printSettings()
	},
}

var settingsRandomizeCmd = &cobra.Command{
	Use:   "randomize",
	Short: "Assign random durations (for demos and testing)",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng.RandomizeSettings()
		return printSettings()
	},
}

func init() {
	flags := settingsSetCmd.Flags()
	flags.IntVar(&setPomodoro, "pomodoro", 25, "Pomodoro duration in minutes")
	flags.IntVar(&setShortBreak, "short-break", 5, "Short break duration in minutes")
	flags.IntVar(&setLongBreak, "long-break", 15, "Long break duration in minutes")
	flags.IntVar(&setInterval, "interval", 4, "Pomodoros between long breaks")
	flags.BoolVar(&setEnableTasks, "tasks", true, "Enable task tracking")
	flags.BoolVar(&setAutoBreaks, "auto-breaks", false, "Automatically chain into breaks")
	flags.BoolVar(&setAutoPomodoros, "auto-pomodoros", false, "Automatically chain back into pomodoros")
	flags.BoolVar(&setNotifications, "notifications", true, "Show completion notifications")
	flags.BoolVar(&setSoundEffects, "sound", true, "Play the completion tone")

	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsRandomizeCmd)
}

func printSettings() error {
	s := eng.Settings()
	if jsonOutput {
		return printJSON(s)
	}
	fmt.Printf("Pomodoro:        %d min\n", s.PomodoroDuration)
	fmt.Printf("Short break:     %d min\n", s.ShortBreakDuration)
	fmt.Printf("Long break:      %d min\n", s.LongBreakDuration)
	fmt.Printf("Long break every %d pomodoros\n", s.LongBreakInterval)
	fmt.Printf("Tasks:           %s\n", onOff(s.EnableTasks))
	fmt.Printf("Auto breaks:     %s\n", onOff(s.AutoStartBreaks))
	fmt.Printf("Auto pomodoros:  %s\n", onOff(s.AutoStartPomodoros))
	fmt.Printf("Notifications:   %s\n", onOff(s.Notifications))
	fmt.Printf("Sound:           %s\n", onOff(s.SoundEffects))
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
