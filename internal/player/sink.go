package player

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// sink is where decoded audio goes. The speaker is process global, so
// every Player shares defaultSink.
type sink interface {
	// Init prepares the output and returns the rate it runs at.
	Init(rate beep.SampleRate) (beep.SampleRate, error)
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

var defaultSink sink = &speakerSink{}

type speakerSink struct {
	rate beep.SampleRate
}

func (s *speakerSink) Init(rate beep.SampleRate) (beep.SampleRate, error) {
	if s.rate != 0 {
		return s.rate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	s.rate = rate
	return rate, nil
}

func (s *speakerSink) Play(st beep.Streamer) { speaker.Play(st) }
func (s *speakerSink) Clear()                { speaker.Clear() }
func (s *speakerSink) Lock()                 { speaker.Lock() }
func (s *speakerSink) Unlock()               { speaker.Unlock() }
