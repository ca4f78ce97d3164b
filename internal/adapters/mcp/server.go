// Package mcp exposes the timer engine over the Model Context Protocol so
// agent tooling can read and drive the timer.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/focusnest/internal/domain"
	"github.com/xvierd/focusnest/internal/engine"
)

// Server wraps an MCP stdio server around the engine.
type Server struct {
	server *server.MCPServer
	engine *engine.Engine
}

// NewServer creates an MCP server bound to the engine.
func NewServer(eng *engine.Engine) *Server {
	s := &Server{engine: eng}

	s.server = server.NewMCPServer(
		"focusnest",
		"1.0.0",
		server.WithLogging(),
	)
	s.registerTools()

	return s
}

// Start serves MCP requests via stdio until the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_state",
			mcp.WithDescription("Get the current timer state: mode, running flag, remaining time, pomodoro counters, settings and the active task"),
		),
		s.handleGetState,
	)

	s.server.AddTool(
		mcp.NewTool(
			"list_tasks",
			mcp.WithDescription("List all tasks with their pomodoro counts"),
		),
		s.handleListTasks,
	)

	addTaskTool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Create a new task"),
		mcp.WithString(
			"title",
			mcp.Required(),
			mcp.Description("The title of the task"),
		),
		mcp.WithNumber(
			"estimated_pomodoros",
			mcp.Description("Estimated pomodoros to finish the task (default: 1)"),
		),
	)
	s.server.AddTool(addTaskTool, s.handleAddTask)

	completeTaskTool := mcp.NewTool(
		"complete_task",
		mcp.WithDescription("Mark a task as completed"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to complete"),
		),
	)
	s.server.AddTool(completeTaskTool, s.handleCompleteTask)

	deleteTaskTool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task; deleting the active task clears the active selection"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to delete"),
		),
	)
	s.server.AddTool(deleteTaskTool, s.handleDeleteTask)

	setActiveTool := mcp.NewTool(
		"set_active_task",
		mcp.WithDescription("Select the task new pomodoro sessions are attributed to; omit task_id to clear the selection"),
		mcp.WithString(
			"task_id",
			mcp.Description("The ID of the task to make active"),
		),
	)
	s.server.AddTool(setActiveTool, s.handleSetActiveTask)

	setModeTool := mcp.NewTool(
		"set_mode",
		mcp.WithDescription("Select the timer mode and reset the remaining time"),
		mcp.WithString(
			"mode",
			mcp.Required(),
			mcp.Description("Timer mode"),
			mcp.Enum("pomodoro", "short", "long"),
		),
	)
	s.server.AddTool(setModeTool, s.handleSetMode)

	s.server.AddTool(
		mcp.NewTool("start_session", mcp.WithDescription("Start the timer, opening a new session in the current mode")),
		s.handleStartSession,
	)
	s.server.AddTool(
		mcp.NewTool("pause_session", mcp.WithDescription("Pause the timer, keeping the open session resumable")),
		s.handlePauseSession,
	)
	s.server.AddTool(
		mcp.NewTool("resume_session", mcp.WithDescription("Resume a paused session")),
		s.handleResumeSession,
	)
	s.server.AddTool(
		mcp.NewTool("stop_session", mcp.WithDescription("Stop the timer and discard the open session")),
		s.handleStopSession,
	)
	s.server.AddTool(
		mcp.NewTool("reset_timer", mcp.WithDescription("Stop the timer, discard the open session and refill the remaining time")),
		s.handleResetTimer,
	)
	s.server.AddTool(
		mcp.NewTool("complete_session", mcp.WithDescription("Finalize the open session: record it, update counters, auto-chain and notify")),
		s.handleCompleteSession,
	)

	updateSettingsTool := mcp.NewTool(
		"update_settings",
		mcp.WithDescription("Partially update the timer settings; omitted fields are unchanged"),
		mcp.WithNumber("pomodoro_duration", mcp.Description("Pomodoro duration in minutes")),
		mcp.WithNumber("short_break_duration", mcp.Description("Short break duration in minutes")),
		mcp.WithNumber("long_break_duration", mcp.Description("Long break duration in minutes")),
		mcp.WithNumber("long_break_interval", mcp.Description("Pomodoros between long breaks")),
		mcp.WithBoolean("enable_tasks", mcp.Description("Enable task tracking")),
		mcp.WithBoolean("auto_start_breaks", mcp.Description("Automatically chain into breaks")),
		mcp.WithBoolean("auto_start_pomodoros", mcp.Description("Automatically chain back into pomodoros")),
		mcp.WithBoolean("notifications", mcp.Description("Show completion notifications")),
		mcp.WithBoolean("sound_effects", mcp.Description("Play the completion tone")),
	)
	s.server.AddTool(updateSettingsTool, s.handleUpdateSettings)

	s.server.AddTool(
		mcp.NewTool("reset_settings", mcp.WithDescription("Restore the default timer settings")),
		s.handleResetSettings,
	)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) stateMap() map[string]interface{} {
	settings := s.engine.Settings()
	result := map[string]interface{}{
		"mode":              string(s.engine.Mode()),
		"running":           s.engine.IsRunning(),
		"remaining_seconds": s.engine.Remaining(),
		"pomodoro_count":    s.engine.PomodoroCount(),
		"long_break_due":    s.engine.IsLongBreakDue(),
		"today_pomodoros":   s.engine.TodayCompletedPomodoros(),
		"total_pomodoros":   s.engine.TotalCompletedPomodoros(),
		"settings":          settings,
		"active_task":       nil,
		"open_session":      nil,
	}
	if task := s.engine.ActiveTask(); task != nil {
		result["active_task"] = taskMap(*task)
	}
	if session := s.engine.CurrentSession(); session != nil {
		sessionData := map[string]interface{}{
			"id":               session.ID,
			"type":             string(session.Type),
			"duration_minutes": session.Duration,
		}
		if session.TaskID != nil {
			sessionData["task_id"] = *session.TaskID
		}
		result["open_session"] = sessionData
	}
	return result
}

func taskMap(t domain.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":                  t.ID,
		"title":               t.Title,
		"completed":           t.Completed,
		"pomodoros_completed": t.PomodorosCompleted,
		"estimated_pomodoros": t.EstimatedPomodoros,
		"created_at":          t.CreatedAt.Format("2006-01-02T15:04:05"),
	}
}

func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.stateMap())
}

func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks := s.engine.Tasks()
	list := make([]map[string]interface{}, 0, len(tasks))
	for _, t := range tasks {
		list = append(list, taskMap(t))
	}
	return jsonResult(map[string]interface{}{
		"tasks":       list,
		"total_count": len(list),
	})
}

func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required: " + err.Error()), nil
	}
	estimated := request.GetInt("estimated_pomodoros", 1)
	task := s.engine.AddTask(title, estimated)
	return jsonResult(taskMap(task))
}

func (s *Server) handleCompleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}
	completed := true
	s.engine.UpdateTask(taskID, domain.TaskPatch{Completed: &completed})
	return jsonResult(map[string]interface{}{"task_id": taskID, "completed": true})
}

func (s *Server) handleDeleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}
	s.engine.DeleteTask(taskID)
	return jsonResult(map[string]interface{}{"task_id": taskID, "deleted": true})
}

func (s *Server) handleSetActiveTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := request.GetString("task_id", "")
	if taskID == "" {
		s.engine.SetActiveTask(nil)
	} else {
		s.engine.SetActiveTask(&taskID)
	}
	return jsonResult(s.stateMap())
}

func (s *Server) handleSetMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError("mode is required: " + err.Error()), nil
	}
	mode, err := domain.ParseMode(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.engine.SetMode(mode)
	return jsonResult(s.stateMap())
}

func (s *Server) handleStartSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.Start()
	return jsonResult(s.stateMap())
}

func (s *Server) handlePauseSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.Pause()
	return jsonResult(s.stateMap())
}

func (s *Server) handleResumeSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.Resume()
	return jsonResult(s.stateMap())
}

func (s *Server) handleStopSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.Stop()
	return jsonResult(s.stateMap())
}

func (s *Server) handleResetTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.Reset()
	return jsonResult(s.stateMap())
}

func (s *Server) handleCompleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.Complete()
	return jsonResult(s.stateMap())
}

func (s *Server) handleUpdateSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	var patch domain.SettingsPatch

	if v, ok := args["pomodoro_duration"].(float64); ok {
		n := int(v)
		patch.PomodoroDuration = &n
	}
	if v, ok := args["short_break_duration"].(float64); ok {
		n := int(v)
		patch.ShortBreakDuration = &n
	}
	if v, ok := args["long_break_duration"].(float64); ok {
		n := int(v)
		patch.LongBreakDuration = &n
	}
	if v, ok := args["long_break_interval"].(float64); ok {
		n := int(v)
		patch.LongBreakInterval = &n
	}
	if v, ok := args["enable_tasks"].(bool); ok {
		patch.EnableTasks = &v
	}
	if v, ok := args["auto_start_breaks"].(bool); ok {
		patch.AutoStartBreaks = &v
	}
	if v, ok := args["auto_start_pomodoros"].(bool); ok {
		patch.AutoStartPomodoros = &v
	}
	if v, ok := args["notifications"].(bool); ok {
		patch.Notifications = &v
	}
	if v, ok := args["sound_effects"].(bool); ok {
		patch.SoundEffects = &v
	}

	s.engine.UpdateSettings(patch)
	return jsonResult(s.engine.Settings())
}

func (s *Server) handleResetSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.ResetSettings()
	return jsonResult(s.engine.Settings())
}
