package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NeverFails(t *testing.T) {
	// With or without a session bus, startup must not fail on notifications.
	n, err := New()
	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestNopNotifier(t *testing.T) {
	var n Notifier = nopNotifier{}
	id, err := n.Notify(Notification{Title: "Up next"})
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Close(7))
}

func TestUrgencyMatchesFreedesktop(t *testing.T) {
	assert.Equal(t, []byte{0, 1, 2}, []byte{byte(UrgencyLow), byte(UrgencyNormal), byte(UrgencyCritical)})
}
