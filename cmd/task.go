package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/xvierd/focusnest/internal/domain"
)

var (
	taskEstimate int
	taskFilter   string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return domain.ErrEmptyTaskTitle
		}
		task := eng.AddTask(title, taskEstimate)
		if jsonOutput {
			return printJSON(task)
		}
		fmt.Printf("Added task %s (%s)\n", task.Title, shortID(task.ID))
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := eng.Tasks()
		if taskFilter != "" {
			tasks = filterTasks(tasks, taskFilter)
		}
		if jsonOutput {
			return printJSON(tasks)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks.")
			return nil
		}
		active := eng.ActiveTaskID()
		for _, t := range tasks {
			marker := " "
			if active != nil && *active == t.ID {
				marker = "*"
			}
			state := " "
			if t.Completed {
				state = "x"
			}
			fmt.Printf("%s [%s] %-40s %d/%d  %s\n",
				marker, state, t.Title, t.PomodorosCompleted, t.EstimatedPomodoros, shortID(t.ID))
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := resolveTask(args[0])
		if err != nil {
			return err
		}
		completed := true
		eng.UpdateTask(task.ID, domain.TaskPatch{Completed: &completed})
		fmt.Printf("Completed %s\n", task.Title)
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := resolveTask(args[0])
		if err != nil {
			return err
		}
		eng.DeleteTask(task.ID)
		fmt.Printf("Deleted %s\n", task.Title)
		return nil
	},
}

var taskUseCmd = &cobra.Command{
	Use:   "use [id]",
	Short: "Select the active task (no argument clears the selection)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			eng.SetActiveTask(nil)
			fmt.Println("Cleared active task.")
			return nil
		}
		task, err := resolveTask(args[0])
		if err != nil {
			return err
		}
		eng.SetActiveTask(&task.ID)
		fmt.Printf("Now working on %s\n", task.Title)
		return nil
	},
}

func init() {
	taskAddCmd.Flags().IntVar(&taskEstimate, "estimate", 1, "Estimated pomodoros to finish the task")
	taskListCmd.Flags().StringVar(&taskFilter, "filter", "", "Fuzzy-filter tasks by title")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(taskUseCmd)
}

// filterTasks does a fuzzy search over task titles, best matches first.
func filterTasks(tasks []domain.Task, query string) []domain.Task {
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	matches := fuzzy.Find(query, titles)

	out := make([]domain.Task, 0, len(matches))
	for _, match := range matches {
		out = append(out, tasks[match.Index])
	}
	return out
}

// resolveTask finds a task by full ID or unique ID prefix.
func resolveTask(idOrPrefix string) (*domain.Task, error) {
	tasks := eng.Tasks()
	var found *domain.Task
	for i := range tasks {
		if tasks[i].ID == idOrPrefix {
			return &tasks[i], nil
		}
		if strings.HasPrefix(tasks[i].ID, idOrPrefix) {
			if found != nil {
				return nil, fmt.Errorf("task id %q is ambiguous", idOrPrefix)
			}
			found = &tasks[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, idOrPrefix)
	}
	return found, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
