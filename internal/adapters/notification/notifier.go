// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/ports"
)

// SessionCompleteTitle is the fixed title of the completion notification.
const SessionCompleteTitle = "Session complete"

// sendFunc delivers one notification.
type sendFunc func(title, message string) error

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify sendFunc
	alert  sendFunc
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:    cfg,
		notify: func(title, message string) error { return beeep.Notify(title, message, "") },
		alert:  func(title, message string) error { return beeep.Alert(title, message, "") },
	}
}

// Notify displays a desktop notification if enabled. With sound on it
// goes through beeep.Alert, which also plays the system alert sound.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if n.cfg.Sound {
		return n.alert(title, message)
	}
	return n.notify(title, message)
}

// NotifySessionComplete displays a notification when a focus session ends.
func (n *Notifier) NotifySessionComplete(task string) error {
	message := fmt.Sprintf("Great job! You finished \"%s\".", task)
	return n.Notify(SessionCompleteTitle, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
