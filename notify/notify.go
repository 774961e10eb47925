// Package notify shows desktop notifications. Each platform has a native
// notifier; the fyne notifier is used when the native one fails.
package notify

import (
	"errors"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"
)

// AppID identifies the application to the notification center
const AppID = "Chuck Norust"

// Notification is a single desktop notification
type Notification struct {
	Title   string
	Message string
	Silent  bool
}

// Notifier displays notifications
type Notifier interface {
	Notify(n Notification) error
}

// FyneNotifier sends notifications through the fyne app. fyne has no notion
// of silent notifications, so the flag is ignored.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier creates a notifier backed by app
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

func (n *FyneNotifier) Notify(notification Notification) error {
	if n.app == nil {
		return errors.New("no fyne app")
	}
	n.app.SendNotification(fyne.NewNotification(notification.Title, notification.Message))
	return nil
}

// Fallback tries the primary notifier first and the secondary when it fails
type Fallback struct {
	primary   Notifier
	secondary Notifier
	log       *logrus.Entry
}

// NewFallback chains two notifiers
func NewFallback(primary, secondary Notifier, logger *logrus.Logger) *Fallback {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Fallback{
		primary:   primary,
		secondary: secondary,
		log:       logger.WithField("component", "notify"),
	}
}

func (f *Fallback) Notify(n Notification) error {
	err := f.primary.Notify(n)
	if err == nil || f.secondary == nil {
		return err
	}
	f.log.WithError(err).Warn("native notification failed, falling back")
	return f.secondary.Notify(n)
}
