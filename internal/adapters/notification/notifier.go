// Package notification provides desktop notification and tone playback
// through the system notification facilities.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/xvierd/focusnest/internal/ports"
)

// Notifier delivers desktop notifications and the completion tone.
type Notifier struct{}

var _ ports.Notifier = (*Notifier)(nil)

// New creates a notifier.
func New() *Notifier {
	return &Notifier{}
}

// Notify displays a desktop notification.
func (n *Notifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// PlayTone plays a short completion tone.
func (n *Notifier) PlayTone() error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}
