package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/focusnest/internal/adapters/blobstore"
	"github.com/xvierd/focusnest/internal/domain"
)

func TestUpdateSettings_AppliesAndPersists(t *testing.T) {
	store := blobstore.NewMemory()
	e := New(store, WithLogger(quietLogger()))
	t.Cleanup(e.Close)

	e.UpdateSettings(domain.SettingsPatch{
		PomodoroDuration: ptr(45),
		SoundEffects:     ptr(false),
	})

	settings := e.Settings()
	assert.Equal(t, 45, settings.PomodoroDuration)
	assert.False(t, settings.SoundEffects)

	_, ok, err := store.Get(StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateSettings_RefillsRemainingOnNextReset(t *testing.T) {
	e := newTestEngine(t)

	e.UpdateSettings(domain.SettingsPatch{PomodoroDuration: ptr(10)})

	// A settings change does not touch the live countdown; the next refill
	// picks it up.
	assert.Equal(t, 25*60, e.Remaining())
	e.Reset()
	assert.Equal(t, 10*60, e.Remaining())
}

func TestUpdateSettings_CancelsAutoStartWhenFlagDisabled(t *testing.T) {
	e := newTestEngine(t)
	e.UpdateSettings(domain.SettingsPatch{AutoStartBreaks: ptr(true)})
	e.Start()
	e.Complete()
	require.False(t, e.IsRunning())

	e.UpdateSettings(domain.SettingsPatch{AutoStartBreaks: ptr(false)})

	time.Sleep(50 * time.Millisecond)
	assert.False(t, e.IsRunning(), "disabling the flag must cancel the pending start")
}

func TestUpdateSettings_KeepsAutoStartWhenUnrelatedFieldChanges(t *testing.T) {
	e := newTestEngine(t)
	e.UpdateSettings(domain.SettingsPatch{AutoStartBreaks: ptr(true)})
	e.Start()
	e.Complete()

	e.UpdateSettings(domain.SettingsPatch{SoundEffects: ptr(false)})

	require.Eventually(t, e.IsRunning, time.Second, 5*time.Millisecond,
		"an unrelated settings change must not cancel the pending start")
}

func TestResetSettings(t *testing.T) {
	e := newTestEngine(t)
	e.UpdateSettings(domain.SettingsPatch{
		PomodoroDuration: ptr(99),
		Notifications:    ptr(false),
	})

	e.ResetSettings()

	assert.Equal(t, domain.DefaultSettings(), e.Settings())
}

func TestRandomizeSettings_StaysWithinBounds(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 20; i++ {
		e.RandomizeSettings()
		s := e.Settings()
		assert.GreaterOrEqual(t, s.PomodoroDuration, 15)
		assert.LessOrEqual(t, s.PomodoroDuration, 50)
		assert.GreaterOrEqual(t, s.ShortBreakDuration, 3)
		assert.LessOrEqual(t, s.ShortBreakDuration, 12)
		assert.GreaterOrEqual(t, s.LongBreakDuration, 15)
		assert.LessOrEqual(t, s.LongBreakDuration, 40)
		assert.GreaterOrEqual(t, s.LongBreakInterval, 3)
		assert.LessOrEqual(t, s.LongBreakInterval, 8)
	}
}
