package models

import "time"

// Settings represents application settings
type Settings struct {
	RefreshInterval uint32 // in milliseconds
	Silent          bool   // notifications without sound
}

// DefaultSettings returns default application settings
func DefaultSettings() *Settings {
	return &Settings{
		RefreshInterval: DefaultIntervalMillis,
		Silent:          false,
	}
}

// Interval returns the refresh interval as a duration
func (s Settings) Interval() time.Duration {
	return time.Duration(s.RefreshInterval) * time.Millisecond
}
