package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/focusnest/internal/domain"
)

// View renders the timer screen.
func (m Model) View() string {
	accent := m.statusColor()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	timerStyle := lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))

	var b strings.Builder

	b.WriteString(titleStyle.Render("🍅 FocusNest"))
	if m.gitInfo != nil {
		branch := m.gitInfo.Branch
		if m.gitInfo.Dirty {
			branch += "*"
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  🌿 %s @ %s", branch, m.gitInfo.Commit)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderModeTabs(accent))
	b.WriteString("\n")

	remaining := m.engine.Remaining()
	b.WriteString(timerStyle.Render(renderBigTime(formatRemaining(remaining))))
	b.WriteString("\n")

	total := m.engine.CurrentDuration() * 60
	ratio := 0.0
	if total > 0 {
		ratio = 1.0 - float64(remaining)/float64(total)
	}
	b.WriteString(m.progress.ViewAs(ratio))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatusLine(dimStyle))
	b.WriteString("\n")

	if m.completedFlash > 0 {
		done := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorBreak))
		if m.completedMode == domain.ModePomodoro {
			b.WriteString(done.Render("Pomodoro complete! 🍅"))
		} else {
			b.WriteString(done.Render("Break over! 💪"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s start · space pause/resume · r reset · x stop · m mode · t task · q quit"))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) renderModeTabs(accent lipgloss.Color) string {
	activeTab := lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true)
	inactiveTab := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	mode := m.engine.Mode()
	var tabs []string
	for _, candidate := range domain.ValidModes {
		label := candidate.Label()
		if candidate == mode {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}
	return strings.Join(tabs, "   ")
}

func (m Model) renderStatusLine(dim lipgloss.Style) string {
	var parts []string

	switch {
	case m.engine.IsRunning():
		parts = append(parts, "running")
	case m.engine.CurrentSession() != nil:
		parts = append(parts, "⏸ paused")
	default:
		parts = append(parts, "idle")
	}

	parts = append(parts, fmt.Sprintf("today %d · total %d pomodoros",
		m.engine.TodayCompletedPomodoros(), m.engine.TotalCompletedPomodoros()))

	if m.engine.Settings().EnableTasks {
		if task := m.engine.ActiveTask(); task != nil {
			parts = append(parts, fmt.Sprintf("📋 %s (%d/%d)",
				task.Title, task.PomodorosCompleted, task.EstimatedPomodoros))
		}
	}

	return dim.Render(strings.Join(parts, "   "))
}

// renderBigTime spaces out the digits so the countdown reads at a glance
// without a full bitmap font.
func renderBigTime(s string) string {
	out := make([]rune, 0, len(s)*2)
	for i, r := range s {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
