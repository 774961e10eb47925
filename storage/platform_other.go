//go:build !windows

package storage

import "fyne.io/fyne/v2"

// NewPlatformBackend returns a backend over the fyne preferences, or an
// in-memory one when no preferences are available.
func NewPlatformBackend(prefs fyne.Preferences) Backend {
	if prefs == nil {
		return NewMemoryBackend()
	}
	return NewPreferencesBackend(prefs)
}
