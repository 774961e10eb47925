package storage

import (
	"errors"
	"io"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct {
	err error
}

func (b failingBackend) GetUint32(string) (uint32, error) { return 0, b.err }
func (b failingBackend) SetUint32(string, uint32) error   { return b.err }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestReadBeforeWriteReturnsDefaults(t *testing.T) {
	m := NewManager(NewMemoryBackend(), quietLogger())

	settings := m.LoadSettings()
	assert.Equal(t, uint32(10000), settings.RefreshInterval)
	assert.False(t, settings.Silent)

	select {
	case d := <-m.Diagnostics():
		t.Fatalf("absent keys must not produce diagnostics, got %+v", d)
	default:
	}
}

func TestIntervalRoundTrip(t *testing.T) {
	m := NewManager(NewMemoryBackend(), quietLogger())

	m.SaveInterval(60000)
	assert.Equal(t, uint32(60000), m.ReadUint32(KeyRefreshInterval, 10000))
	assert.Equal(t, uint32(60000), m.LoadSettings().RefreshInterval)
}

func TestSilentRoundTrip(t *testing.T) {
	m := NewManager(NewMemoryBackend(), quietLogger())

	m.SaveSilent(true)
	assert.True(t, m.ReadBool(KeySilent, false))

	m.SaveSilent(false)
	assert.False(t, m.ReadBool(KeySilent, true))
}

func TestBoolStoredAsZeroOrOne(t *testing.T) {
	backend := NewMemoryBackend()
	m := NewManager(backend, quietLogger())

	m.WriteBool(KeySilent, true)
	v, err := backend.GetUint32(KeySilent)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	m.WriteBool(KeySilent, false)
	v, err = backend.GetUint32(KeySilent)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)
}

func TestZeroIntervalFallsBackToDefault(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.SetUint32(KeyRefreshInterval, 0))

	m := NewManager(backend, quietLogger())
	assert.Equal(t, uint32(10000), m.LoadSettings().RefreshInterval)
}

func TestReadFailureReturnsDefaultAndReports(t *testing.T) {
	boom := errors.New("access denied")
	m := NewManager(failingBackend{err: boom}, quietLogger())

	assert.Equal(t, uint32(42), m.ReadUint32(KeyRefreshInterval, 42))

	select {
	case d := <-m.Diagnostics():
		assert.Equal(t, "read", d.Op)
		assert.Equal(t, KeyRefreshInterval, d.Key)
		assert.ErrorIs(t, d.Err, boom)
		assert.NotEmpty(t, d.ID.String())
	default:
		t.Fatal("expected a diagnostic")
	}
}

func TestWriteFailureIsSwallowedAndReported(t *testing.T) {
	boom := errors.New("read-only hive")
	m := NewManager(failingBackend{err: boom}, quietLogger())

	m.SaveInterval(60000)

	d := <-m.Diagnostics()
	assert.Equal(t, "write", d.Op)
	assert.Equal(t, KeyRefreshInterval, d.Key)
}

func TestDiagnosticsDropWhenFull(t *testing.T) {
	m := NewManager(failingBackend{err: errors.New("nope")}, quietLogger())

	for i := 0; i < diagnosticsBuffer*2; i++ {
		m.SaveSilent(true)
	}
	assert.Len(t, m.Diagnostics(), diagnosticsBuffer)
}

func TestPreferencesBackend(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	backend := NewPreferencesBackend(a.Preferences())

	_, err := backend.GetUint32("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, backend.SetUint32(KeyRefreshInterval, 300000))
	v, err := backend.GetUint32(KeyRefreshInterval)
	require.NoError(t, err)
	assert.Equal(t, uint32(300000), v)

	m := NewManager(backend, quietLogger())
	m.SaveSilent(true)
	assert.True(t, m.LoadSettings().Silent)
}

func TestPreferencesBackendWithoutPreferences(t *testing.T) {
	backend := NewPreferencesBackend(nil)

	_, err := backend.GetUint32(KeySilent)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Error(t, backend.SetUint32(KeySilent, 1))
}
