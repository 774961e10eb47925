//go:build windows

package notify

import (
	"fmt"

	"github.com/go-toast/toast"
)

// NativeNotifier shows Windows toast notifications
type NativeNotifier struct {
	iconPath string
}

// NewNativeNotifier creates a toast notifier. iconPath may be empty.
func NewNativeNotifier(iconPath string) *NativeNotifier {
	return &NativeNotifier{iconPath: iconPath}
}

func (n *NativeNotifier) Notify(notification Notification) error {
	t := toast.Notification{
		AppID:   AppID,
		Title:   notification.Title,
		Message: notification.Message,
		Icon:    n.iconPath,
		Audio:   toast.Default,
	}
	if notification.Silent {
		t.Audio = toast.Silent
	}
	if err := t.Push(); err != nil {
		return fmt.Errorf("toast notification failed: %w", err)
	}
	return nil
}
