// Package tui provides the terminal timer view using the Bubbletea
// framework. It is also the engine's external countdown driver: every tick
// decrements the remaining time and completion is invoked when it hits zero.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/focusnest/internal/config"
	"github.com/xvierd/focusnest/internal/domain"
	"github.com/xvierd/focusnest/internal/engine"
	"github.com/xvierd/focusnest/internal/ports"
)

// tickMsg is sent on every timer tick.
type tickMsg time.Time

const completedFlashTicks = 3

// Model is the Bubbletea model for the timer view.
type Model struct {
	engine   *engine.Engine
	progress progress.Model
	theme    config.ThemeConfig
	gitInfo  *ports.GitInfo

	width  int
	height int

	// completedFlash counts down the ticks the "session complete" banner
	// stays visible.
	completedFlash int
	completedMode  domain.Mode
}

// NewModel creates the timer view bound to an engine. gitInfo may be nil.
func NewModel(eng *engine.Engine, theme config.ThemeConfig, gitInfo *ports.GitInfo) Model {
	return Model{
		engine:   eng,
		progress: progress.New(progress.WithDefaultGradient()),
		theme:    theme,
		gitInfo:  gitInfo,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-8, 50)
		return m, nil

	case tickMsg:
		if m.completedFlash > 0 {
			m.completedFlash--
		}
		if m.engine.IsRunning() {
			if m.engine.Tick() == 0 {
				mode := m.engine.Mode()
				m.engine.Complete()
				m.completedFlash = completedFlashTicks
				m.completedMode = mode
			}
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s", "enter":
		m.engine.Start()
	case " ", "p":
		if m.engine.IsRunning() {
			m.engine.Pause()
		} else if m.engine.CurrentSession() != nil {
			m.engine.Resume()
		}
	case "x":
		m.engine.Stop()
	case "r":
		m.engine.Reset()
	case "m":
		m.engine.SetMode(nextMode(m.engine.Mode()))
	case "1":
		m.engine.SetMode(domain.ModePomodoro)
	case "2":
		m.engine.SetMode(domain.ModeShortBreak)
	case "3":
		m.engine.SetMode(domain.ModeLongBreak)
	case "t":
		m.cycleActiveTask()
	}
	return m, nil
}

// cycleActiveTask rotates the active-task selection through the open tasks,
// ending on no selection.
func (m Model) cycleActiveTask() {
	if !m.engine.Settings().EnableTasks {
		return
	}
	tasks := m.engine.Tasks()
	var open []domain.Task
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return
	}

	active := m.engine.ActiveTaskID()
	if active == nil {
		m.engine.SetActiveTask(&open[0].ID)
		return
	}
	for i, t := range open {
		if t.ID == *active {
			if i+1 < len(open) {
				m.engine.SetActiveTask(&open[i+1].ID)
			} else {
				m.engine.SetActiveTask(nil)
			}
			return
		}
	}
	// Dangling reference: start over from the first open task.
	m.engine.SetActiveTask(&open[0].ID)
}

func nextMode(m domain.Mode) domain.Mode {
	switch m {
	case domain.ModePomodoro:
		return domain.ModeShortBreak
	case domain.ModeShortBreak:
		return domain.ModeLongBreak
	default:
		return domain.ModePomodoro
	}
}

func formatRemaining(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run launches the fullscreen timer and blocks until the user quits.
func Run(eng *engine.Engine, theme config.ThemeConfig, gitInfo *ports.GitInfo) error {
	model := NewModel(eng, theme, gitInfo)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

var _ tea.Model = Model{}

func (m Model) statusColor() lipgloss.Color {
	if !m.engine.IsRunning() && m.engine.CurrentSession() != nil {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	if m.engine.Mode().IsBreak() {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorPomodoro)
}
