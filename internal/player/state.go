package player

import "strconv"

// State represents the playback state machine.
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │
//	└──────────┘                 └──────────┘
//	     ▲                          │    ▲
//	     │ end / close         play │    │ pause
//	     │                          ▼    │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Playing │
//	                             └──────────┘
//
// A loaded file always starts Paused; Play on a Stopped player with nothing
// loaded fails with ErrNothingLoaded. Reaching the end of the stream returns
// to Stopped with the position left at the end, like a finished video.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

var stateNames = [...]string{Stopped: "stopped", Playing: "playing", Paused: "paused"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}
