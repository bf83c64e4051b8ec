package player

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

var errMP4Codec = errors.New("mp4: no AAC or ALAC audio track")

// alacFrameSize is the ALAC encoder default.
const alacFrameSize = 4096

// mp4Stream plays the audio track of an MP4 container. Samples are read
// one container sample at a time and decoded with faad2 (AAC) or alac.
type mp4Stream struct {
	track    *m4a.Reader
	rate     beep.SampleRate
	channels int
	width    int
	length   int

	aac  *faad2.Decoder
	alac *alac.Alac

	next int
	pcm  pcmFrames
	err  error
}

func decodeMP4(f *os.File) (beep.StreamSeekCloser, beep.Format, string, error) {
	track, err := m4a.Open(f)
	if err != nil {
		return nil, beep.Format{}, "", err
	}

	s := &mp4Stream{
		track:    track,
		rate:     beep.SampleRate(track.SampleRate()),
		channels: int(track.Channels()),
		width:    int(track.SampleSize()) / 8,
	}
	s.length = s.rate.N(track.Duration())

	ctx := context.Background()
	switch track.Codec() {
	case m4a.CodecAAC:
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, "", err
		}
		if err := dec.Init(ctx, track.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, "", err
		}
		s.aac = dec
		s.width = 2
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  int(track.SampleRate()),
			SampleSize:  int(track.SampleSize()),
			NumChannels: s.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, "", err
		}
		s.alac = dec
	default:
		return nil, beep.Format{}, "", errMP4Codec
	}

	format := beep.Format{SampleRate: s.rate, NumChannels: 2, Precision: s.width}
	return s, format, track.Codec().String(), nil
}

func (s *mp4Stream) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && s.err == nil {
		if s.pcm.empty() && !s.decodeNext() {
			break
		}
		n += s.pcm.drain(samples[n:])
	}
	return n, n > 0
}

// decodeNext decodes the next container sample into the frame buffer.
func (s *mp4Stream) decodeNext() bool {
	if s.next >= s.track.SampleCount() {
		return false
	}
	data, err := s.track.ReadSample(s.next)
	if err != nil {
		s.err = err
		return false
	}
	s.next++

	if s.aac != nil {
		pcm, err := s.aac.Decode(context.Background(), data)
		if err != nil {
			s.err = err
			return false
		}
		s.pcm.fillInt16(pcm, s.channels)
		return true
	}
	s.pcm.fillPacked(s.alac.Decode(data), s.width, s.channels)
	return true
}

func (s *mp4Stream) Err() error { return s.err }

func (s *mp4Stream) Len() int { return s.length }

func (s *mp4Stream) Position() int {
	pos := s.rate.N(s.track.SampleTime(s.next))
	return max(pos-(len(s.pcm.buf)-s.pcm.off), 0)
}

// Seek lands on the container sample that holds p.
func (s *mp4Stream) Seek(p int) error {
	p = min(max(p, 0), s.length)
	at := time.Duration(float64(p) / float64(s.rate) * float64(time.Second))
	s.next = s.track.SeekToTime(at)
	s.pcm.reset()
	s.err = nil
	return nil
}

// Close releases the AAC decoder. The player owns the file.
func (s *mp4Stream) Close() error {
	if s.aac != nil {
		s.aac.Close(context.Background())
	}
	return nil
}
