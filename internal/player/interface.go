package player

import "github.com/llehouerou/flicks/internal/mediactl"

// Interface is the media element contract the watch view depends on.
type Interface interface {
	mediactl.Element
	Load(path string) error
	Close()
	Events() <-chan Event
	LoadID() uint64
	Title() string
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
