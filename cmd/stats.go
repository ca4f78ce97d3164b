package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completed-session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		history := eng.CompletedSessions()

		if jsonOutput {
			return printJSON(map[string]any{
				"todayPomodoros":    eng.TodayCompletedPomodoros(),
				"totalPomodoros":    eng.TotalCompletedPomodoros(),
				"completedSessions": history,
			})
		}

		fmt.Printf("Today: %d pomodoros\n", eng.TodayCompletedPomodoros())
		fmt.Printf("Total: %d pomodoros, %d sessions overall\n\n", eng.TotalCompletedPomodoros(), len(history))

		if len(history) == 0 {
			return nil
		}

		start := 0
		if statsLimit > 0 && len(history) > statsLimit {
			start = len(history) - statsLimit
		}
		tasks := taskTitles()
		for _, s := range history[start:] {
			line := fmt.Sprintf("%s  %-11s %3d min", s.CompletedAt.Local().Format("2006-01-02 15:04"), s.Type.Label(), s.Duration)
			if s.TaskID != nil {
				if title, ok := tasks[*s.TaskID]; ok {
					line += "  " + title
				}
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "Number of recent sessions to list (0 for all)")
}

func taskTitles() map[string]string {
	titles := make(map[string]string)
	for _, t := range eng.Tasks() {
		titles[t.ID] = t.Title
	}
	return titles
}
