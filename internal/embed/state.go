package embed

// WidgetState is the playback state a widget reports.
type WidgetState int

const (
	StateUnstarted WidgetState = -1
	StateEnded     WidgetState = 0
	StatePlaying   WidgetState = 1
	StatePaused    WidgetState = 2
	StateBuffering WidgetState = 3
	StateCued      WidgetState = 5
)

func (s WidgetState) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateEnded:
		return "ended"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateBuffering:
		return "buffering"
	case StateCued:
		return "cued"
	default:
		return "unknown"
	}
}
