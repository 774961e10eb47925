//go:build windows

package storage

import "fyne.io/fyne/v2"

// NewPlatformBackend returns the registry backend; prefs is unused on Windows.
func NewPlatformBackend(prefs fyne.Preferences) Backend {
	return NewRegistryBackend()
}
