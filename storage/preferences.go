package storage

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
)

// absent is returned by IntWithFallback when the key was never written.
// Stored values are always within uint32 range, so it cannot collide.
const absent = -1

// PreferencesBackend stores values in the fyne application preferences.
// It is the persistent store on platforms without a registry.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend wraps the given fyne preferences
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

func (b *PreferencesBackend) GetUint32(key string) (uint32, error) {
	if b.prefs == nil {
		return 0, fmt.Errorf("preferences unavailable")
	}

	v := b.prefs.IntWithFallback(key, absent)
	if v == absent {
		return 0, ErrNotFound
	}
	if v < 0 || int64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d for %s out of range", v, key)
	}
	return uint32(v), nil
}

func (b *PreferencesBackend) SetUint32(key string, value uint32) error {
	if b.prefs == nil {
		return fmt.Errorf("preferences unavailable")
	}

	b.prefs.SetInt(key, int(value))
	return nil
}
