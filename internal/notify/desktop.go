package notify

import "fmt"

// Desktop mirrors messages to a Notifier. Each message replaces the
// previous bubble so at most one is shown, like the in-terminal toasts.
type Desktop struct {
	notifier Notifier
	lastID   uint32
	// Timeout is passed to the notification server, in ms.
	Timeout int32
}

// NewDesktop wraps a Notifier. A nil notifier makes Send a no-op.
func NewDesktop(n Notifier) *Desktop {
	return &Desktop{notifier: n, Timeout: int32(VisibleDuration.Milliseconds())}
}

// Send shows title and body, replacing the previous notification.
func (d *Desktop) Send(title, body, icon string) error {
	if d == nil || d.notifier == nil {
		return nil
	}
	id, err := d.notifier.Notify(Notification{
		Title:      title,
		Body:       body,
		Icon:       icon,
		Timeout:    d.Timeout,
		ReplacesID: d.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	if id != 0 {
		d.lastID = id
	}
	return nil
}

// Close removes the last notification, if any.
func (d *Desktop) Close() error {
	if d == nil || d.notifier == nil || d.lastID == 0 {
		return nil
	}
	id := d.lastID
	d.lastID = 0
	return d.notifier.Close(id)
}
