package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	gitdetect "github.com/xvierd/focusnest/internal/adapters/git"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current timer state",
	RunE:  printStatus,
}

func printStatus(cmd *cobra.Command, args []string) error {
	if jsonOutput {
		result := map[string]any{
			"mode":             string(eng.Mode()),
			"running":          eng.IsRunning(),
			"remainingSeconds": eng.Remaining(),
			"pomodoroCount":    eng.PomodoroCount(),
			"longBreakDue":     eng.IsLongBreakDue(),
			"todayPomodoros":   eng.TodayCompletedPomodoros(),
			"totalPomodoros":   eng.TotalCompletedPomodoros(),
		}
		if task := eng.ActiveTask(); task != nil {
			result["activeTask"] = task
		}
		return printJSON(result)
	}

	fmt.Printf("Mode:      %s\n", eng.Mode().Label())
	fmt.Printf("Remaining: %02d:%02d\n", eng.Remaining()/60, eng.Remaining()%60)
	fmt.Printf("Today:     %d pomodoros\n", eng.TodayCompletedPomodoros())
	fmt.Printf("Total:     %d pomodoros\n", eng.TotalCompletedPomodoros())

	if task := eng.ActiveTask(); task != nil {
		fmt.Printf("Task:      %s (%d/%d)\n", task.Title, task.PomodorosCompleted, task.EstimatedPomodoros)
	}

	if wd, err := os.Getwd(); err == nil {
		if info, err := gitdetect.NewDetector().Detect(wd); err == nil {
			branch := info.Branch
			if info.Dirty {
				branch += "*"
			}
			fmt.Printf("Git:       %s @ %s\n", branch, info.Commit)
		}
	}
	return nil
}
