package engine

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/focusnest/internal/adapters/blobstore"
	"github.com/xvierd/focusnest/internal/domain"
)

// fakeNotifier records delivered notifications and tones.
type fakeNotifier struct {
	mu            sync.Mutex
	notifications []string
	tones         int
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, title)
	return nil
}

func (f *fakeNotifier) PlayTone() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tones++
	return nil
}

func (f *fakeNotifier) notified() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.notifications))
	copy(out, f.notifications)
	return out
}

func (f *fakeNotifier) toneCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tones
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{
		WithLogger(quietLogger()),
		WithAutoStartDelay(10 * time.Millisecond),
	}, opts...)
	e := New(blobstore.NewMemory(), opts...)
	t.Cleanup(e.Close)
	return e
}

func ptr[T any](v T) *T { return &v }

func TestNew_Defaults(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, domain.ModePomodoro, e.Mode())
	assert.False(t, e.IsRunning())
	assert.Equal(t, 25*60, e.Remaining())
	assert.Equal(t, 25, e.CurrentDuration())
	assert.Nil(t, e.CurrentSession())
	assert.Equal(t, 0, e.PomodoroCount())
	assert.Empty(t, e.CompletedSessions())
}

func TestIsLongBreakDue(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		interval int
		want     bool
	}{
		{"zero completed", 0, 4, false},
		{"mid cycle", 3, 4, false},
		{"cycle boundary", 4, 4, true},
		{"second cycle boundary", 8, 4, true},
		{"past boundary", 5, 4, false},
		{"interval one", 1, 1, true},
		{"interval clamped to one", 2, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.settings.LongBreakInterval = tt.interval
			e.pomodoroCount = tt.count
			assert.Equal(t, tt.want, e.IsLongBreakDue())
		})
	}
}

func TestTodayCompletedPomodoros(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	e := newTestEngine(t, WithClock(func() time.Time { return now }))

	e.history = []domain.CompletedSession{
		{ID: "a", Type: domain.ModePomodoro, Duration: 25, CompletedAt: now.Add(-2 * time.Hour)},
		{ID: "b", Type: domain.ModeShortBreak, Duration: 5, CompletedAt: now.Add(-time.Hour)},
		{ID: "c", Type: domain.ModePomodoro, Duration: 25, CompletedAt: now.AddDate(0, 0, -1)},
		{ID: "d", Type: domain.ModePomodoro, Duration: 25, CompletedAt: now.Add(-time.Minute)},
	}

	assert.Equal(t, 2, e.TodayCompletedPomodoros())
	assert.Equal(t, 3, e.TotalCompletedPomodoros())
}

func TestResetAllData(t *testing.T) {
	store := blobstore.NewMemory()
	e := New(store, WithLogger(quietLogger()))
	t.Cleanup(e.Close)

	e.AddTask("One", 1)
	e.UpdateSettings(domain.SettingsPatch{PomodoroDuration: ptr(50)})
	e.Start()
	e.Complete()
	require.Equal(t, 1, e.PomodoroCount())

	e.ResetAllData()

	assert.Empty(t, e.Tasks())
	assert.Empty(t, e.CompletedSessions())
	assert.Equal(t, 0, e.PomodoroCount())
	assert.Nil(t, e.ActiveTaskID())
	assert.Nil(t, e.CurrentSession())
	assert.False(t, e.IsRunning())
	assert.Equal(t, domain.DefaultSettings(), e.Settings())
	assert.Equal(t, 25*60, e.Remaining())

	_, ok, err := store.Get(StorageKey)
	require.NoError(t, err)
	assert.False(t, ok, "stored snapshot should be removed")
}

// failingStore rejects every write, for checking that persistence failures
// never disturb in-memory state.
type failingStore struct{}

func (failingStore) Get(key string) (string, bool, error) { return "", false, nil }
func (failingStore) Set(key, value string) error          { return errors.New("disk full") }
func (failingStore) Remove(key string) error              { return errors.New("disk full") }
func (failingStore) Close() error                         { return nil }

func TestWriteFailureKeepsStateAuthoritative(t *testing.T) {
	e := New(failingStore{}, WithLogger(quietLogger()))
	t.Cleanup(e.Close)

	task := e.AddTask("Survives", 2)
	e.Start()
	e.Complete()

	require.Len(t, e.Tasks(), 1)
	assert.Equal(t, task.ID, e.Tasks()[0].ID)
	assert.Equal(t, 1, e.PomodoroCount())
	assert.Len(t, e.CompletedSessions(), 1)
}
