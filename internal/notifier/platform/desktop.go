package platform

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Replaced in tests.
var (
	beeepNotify = func(title, message string) error { return beeep.Notify(title, message, "") }
	beeepAlert  = func(title, message string) error { return beeep.Alert(title, message, "") }
)

// DesktopNotifier shows notifications on the local desktop through beeep,
// which covers macOS, Windows and Linux (D-Bus with notify-send fallback).
type DesktopNotifier struct {
	sound bool
}

// NewDesktopNotifier creates a desktop notifier. With sound enabled the
// notification is raised as an alert, which also beeps.
func NewDesktopNotifier(sound bool) *DesktopNotifier {
	return &DesktopNotifier{sound: sound}
}

func (n *DesktopNotifier) Notify(title, message, url string) error {
	if url != "" {
		message = fmt.Sprintf("%s\n\nOrder: %s", message, url)
	}

	var err error
	if n.sound {
		err = beeepAlert(title, message)
	} else {
		err = beeepNotify(title, message)
	}
	if err != nil {
		return fmt.Errorf("desktop notification failed: %w", err)
	}
	return nil
}
