package player

// EventKind names a media lifecycle notification.
type EventKind int

const (
	EventMetadata EventKind = iota
	EventPlay
	EventPause
	EventWaiting
	EventCanPlay
	EventEnded
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventMetadata:
		return "metadata"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventWaiting:
		return "waiting"
	case EventCanPlay:
		return "canplay"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification. Err is set for EventError. Load is the
// element's LoadID at emit time, so events still buffered from a replaced
// file can be told apart.
type Event struct {
	Kind EventKind
	Err  error
	Load uint64
}

// eventBuffer bounds the number of undelivered events. New events are
// dropped while the buffer is full.
const eventBuffer = 16

type events chan Event

// emit sends without blocking; the speaker goroutine must never stall.
func (ch events) emit(e Event) {
	select {
	case ch <- e:
	default:
	}
}
