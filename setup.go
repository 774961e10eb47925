package main

import (
	"chucktray/icons"
	"chucktray/logging"
	"chucktray/notify"

	"github.com/sirupsen/logrus"
)

// notificationIcon writes the notification icon to disk for the native
// notifiers and returns its path, or "" when that fails.
func notificationIcon(logger *logrus.Logger) string {
	dir, err := logging.Dir()
	if err != nil {
		logger.WithError(err).Warn("notifications without icon")
		return ""
	}
	path, err := icons.WriteFile(icons.Notification(), dir)
	if err != nil {
		logger.WithError(err).Warn("notifications without icon")
		return ""
	}
	return path
}

// newNotifier returns the native notifier backed by secondary
func newNotifier(secondary notify.Notifier, logger *logrus.Logger) notify.Notifier {
	native := notify.NewNativeNotifier(notificationIcon(logger))
	return notify.NewFallback(native, secondary, logger)
}
