package storage

import (
	"errors"
	"time"

	"chucktray/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Keys under which settings are stored
const (
	KeyRefreshInterval = "NotificationInterval"
	KeySilent          = "SilentNotifications"
)

const diagnosticsBuffer = 16

// Diagnostic describes a persistence failure that was swallowed
type Diagnostic struct {
	ID  uuid.UUID
	Op  string // "read" or "write"
	Key string
	Err error
	At  time.Time
}

// Manager handles settings persistence. Reads fall back to the supplied
// default and writes never return an error; failures are reported on the
// Diagnostics channel and in the log instead.
type Manager struct {
	backend     Backend
	log         *logrus.Entry
	diagnostics chan Diagnostic
}

// NewManager creates a new storage manager over backend
func NewManager(backend Backend, logger *logrus.Logger) *Manager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Manager{
		backend:     backend,
		log:         logger.WithField("component", "storage"),
		diagnostics: make(chan Diagnostic, diagnosticsBuffer),
	}
}

// Diagnostics returns the channel on which swallowed failures are published.
// Events are dropped when nobody drains it.
func (m *Manager) Diagnostics() <-chan Diagnostic {
	return m.diagnostics
}

// ReadUint32 returns the stored value for key, or def
func (m *Manager) ReadUint32(key string, def uint32) uint32 {
	v, err := m.backend.GetUint32(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.report("read", key, err)
		}
		return def
	}
	return v
}

// WriteUint32 stores value under key, best effort
func (m *Manager) WriteUint32(key string, value uint32) {
	if err := m.backend.SetUint32(key, value); err != nil {
		m.report("write", key, err)
	}
}

// ReadBool returns the stored flag for key, or def
func (m *Manager) ReadBool(key string, def bool) bool {
	fallback := uint32(0)
	if def {
		fallback = 1
	}
	return m.ReadUint32(key, fallback) != 0
}

// WriteBool stores value under key as 0 or 1, best effort
func (m *Manager) WriteBool(key string, value bool) {
	v := uint32(0)
	if value {
		v = 1
	}
	m.WriteUint32(key, v)
}

// LoadSettings reads all settings, substituting defaults for anything missing
func (m *Manager) LoadSettings() *models.Settings {
	settings := models.DefaultSettings()
	settings.RefreshInterval = m.ReadUint32(KeyRefreshInterval, settings.RefreshInterval)
	settings.Silent = m.ReadBool(KeySilent, settings.Silent)

	if settings.RefreshInterval == 0 {
		m.log.Warn("stored refresh interval is zero, using default")
		settings.RefreshInterval = models.DefaultIntervalMillis
	}
	return settings
}

// SaveInterval persists the refresh interval in milliseconds
func (m *Manager) SaveInterval(millis uint32) {
	m.WriteUint32(KeyRefreshInterval, millis)
}

// SaveSilent persists the silent notifications flag
func (m *Manager) SaveSilent(silent bool) {
	m.WriteBool(KeySilent, silent)
}

func (m *Manager) report(op, key string, err error) {
	d := Diagnostic{
		ID:  uuid.New(),
		Op:  op,
		Key: key,
		Err: err,
		At:  time.Now(),
	}

	m.log.WithFields(logrus.Fields{
		"id":  d.ID.String(),
		"op":  op,
		"key": key,
	}).WithError(err).Warn("settings store failure")

	select {
	case m.diagnostics <- d:
	default:
	}
}
