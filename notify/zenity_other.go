//go:build !windows

package notify

import (
	"fmt"

	"github.com/ncruces/zenity"
)

// NativeNotifier shows notifications through the desktop notification
// daemon. The daemon decides about sound, so Silent is not honoured here.
type NativeNotifier struct {
	iconPath string
}

// NewNativeNotifier creates a notifier. iconPath may be empty.
func NewNativeNotifier(iconPath string) *NativeNotifier {
	return &NativeNotifier{iconPath: iconPath}
}

func (n *NativeNotifier) Notify(notification Notification) error {
	opts := []zenity.Option{zenity.Title(notification.Title)}
	if n.iconPath != "" {
		opts = append(opts, zenity.Icon(n.iconPath))
	} else {
		opts = append(opts, zenity.InfoIcon)
	}
	if err := zenity.Notify(notification.Message, opts...); err != nil {
		return fmt.Errorf("zenity notification failed: %w", err)
	}
	return nil
}
