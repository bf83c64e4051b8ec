// Package notify shows transient toasts in the terminal and mirrors selected
// ones as desktop notifications over D-Bus.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop bubble.
type Notification struct {
	Title      string
	Body       string
	Icon       string // image path or icon name
	Timeout    int32  // ms; -1 lets the server decide, 0 never expires
	ReplacesID uint32 // id of a bubble to update in place
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns the id the server gave it, or 0 when
	// notifications are unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// nopNotifier stands in when there is no notification server.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (nopNotifier) Close(uint32) error                  { return nil }
