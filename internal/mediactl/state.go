package mediactl

// State is the controller's transient playback UI state.
type State struct {
	// Playing mirrors the element; it follows lifecycle events and successful
	// play requests, never intent alone.
	Playing bool
	Volume  float64
	Muted   bool
	// PreviousVolume is the level saved right before muting.
	PreviousVolume  float64
	Dragging        bool
	ControlsVisible bool
}

// Surface holds everything the control surface displays.
type Surface struct {
	Playing         bool // pause icon when true, play icon otherwise
	Elapsed         string
	Remaining       string
	Total           string
	Fill            float64 // percent, 0-100
	Volume          float64
	Muted           bool
	Fullscreen      bool
	ControlsVisible bool
	Buffering       bool
}

// Ratio returns the fill as a 0-1 ratio.
func (s Surface) Ratio() float64 {
	return clamp(s.Fill/100, 0, 1)
}
