package player

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// mp3Stream adapts go-mp3, which seeks to an exact sample, to beep.
// The decoder always produces 16-bit stereo.
type mp3Stream struct {
	dec *mp3.Decoder
	raw []byte
	err error
}

func decodeMP3(f *os.File) (beep.StreamSeekCloser, beep.Format, string, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, beep.Format{}, "", err
	}
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, beep.Format{}, "", errors.New("mp3: invalid sample rate")
	}
	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
	return &mp3Stream{dec: dec}, format, "MP3", nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	need := len(samples) * 4
	if cap(s.raw) < need {
		s.raw = make([]byte, need)
	}
	s.raw = s.raw[:need]

	read, err := io.ReadFull(s.dec, s.raw)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}
	n := read / 4
	for i := range n {
		l := int16(binary.LittleEndian.Uint16(s.raw[i*4:]))   //nolint:gosec // pcm
		r := int16(binary.LittleEndian.Uint16(s.raw[i*4+2:])) //nolint:gosec // pcm
		samples[i] = [2]float64{float64(l) / 32768, float64(r) / 32768}
	}
	return n, n > 0
}

func (s *mp3Stream) Err() error { return s.err }

func (s *mp3Stream) Len() int {
	return max(int(s.dec.SampleCount()), 0)
}

func (s *mp3Stream) Position() int {
	return int(s.dec.SamplePosition())
}

func (s *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

// Close is a no-op: the player owns the file.
func (s *mp3Stream) Close() error { return nil }
