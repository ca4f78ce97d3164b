package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/focusnest/internal/adapters/blobstore"
	"github.com/xvierd/focusnest/internal/config"
	"github.com/xvierd/focusnest/internal/domain"
	"github.com/xvierd/focusnest/internal/engine"
)

func newTestModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()
	eng := engine.New(blobstore.NewMemory())
	t.Cleanup(eng.Close)
	return NewModel(eng, config.DefaultThemeConfig(), nil), eng
}

func TestNextMode(t *testing.T) {
	assert.Equal(t, domain.ModeShortBreak, nextMode(domain.ModePomodoro))
	assert.Equal(t, domain.ModeLongBreak, nextMode(domain.ModeShortBreak))
	assert.Equal(t, domain.ModePomodoro, nextMode(domain.ModeLongBreak))
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "25:00", formatRemaining(25*60))
	assert.Equal(t, "04:09", formatRemaining(4*60+9))
	assert.Equal(t, "00:00", formatRemaining(0))
}

func TestTick_DrivesCompletion(t *testing.T) {
	m, eng := newTestModel(t)
	eng.Start()
	for eng.Remaining() > 1 {
		eng.Tick()
	}

	updated, _ := m.Update(tickMsg{})

	model := updated.(Model)
	assert.Equal(t, completedFlashTicks, model.completedFlash)
	assert.Equal(t, domain.ModePomodoro, model.completedMode)
	assert.Len(t, eng.CompletedSessions(), 1)
	assert.False(t, eng.IsRunning())
}

func TestTick_NoCompletionWhileIdle(t *testing.T) {
	m, eng := newTestModel(t)

	updated, _ := m.Update(tickMsg{})

	model := updated.(Model)
	assert.Zero(t, model.completedFlash)
	assert.Empty(t, eng.CompletedSessions())
}

func TestCycleActiveTask(t *testing.T) {
	m, eng := newTestModel(t)
	first := eng.AddTask("First", 1)
	second := eng.AddTask("Second", 1)
	done := eng.AddTask("Done", 1)
	completed := true
	eng.UpdateTask(done.ID, domain.TaskPatch{Completed: &completed})

	m.cycleActiveTask()
	require.NotNil(t, eng.ActiveTaskID())
	assert.Equal(t, first.ID, *eng.ActiveTaskID())

	m.cycleActiveTask()
	require.NotNil(t, eng.ActiveTaskID())
	assert.Equal(t, second.ID, *eng.ActiveTaskID())

	// Completed tasks are skipped; after the last open task the selection
	// clears.
	m.cycleActiveTask()
	assert.Nil(t, eng.ActiveTaskID())
}

func TestCycleActiveTask_NoOpWithoutOpenTasks(t *testing.T) {
	m, eng := newTestModel(t)

	m.cycleActiveTask()

	assert.Nil(t, eng.ActiveTaskID())
}
