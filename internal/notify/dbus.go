//go:build linux

package notify

import "github.com/godbus/dbus/v5"

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = dbus.ObjectPath("/org/freedesktop/Notifications")

	appName = "Flicks"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one, notifications are silently
// dropped rather than failing startup.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // no session bus, no bubbles
	}
	return &dbusNotifier{obj: conn.Object(notificationsName, notificationsPath)}, nil
}

func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant("flicks"),
		"category":      dbus.MakeVariant("x-flicks.playback"),
	}
	var id uint32
	err := d.obj.Call(notificationsName+".Notify", 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body, []string{}, hints, n.Timeout,
	).Store(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (d *dbusNotifier) Close(id uint32) error {
	return d.obj.Call(notificationsName+".CloseNotification", 0, id).Err
}
