package player

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"sort"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"
)

var (
	errOggCapture = errors.New("ogg: missing capture pattern")
	errOggVersion = errors.New("ogg: unsupported version")
	errOggCodec   = errors.New("ogg: stream is neither Vorbis nor Opus")
	errOggHeaders = errors.New("ogg: incomplete codec headers")
)

const (
	oggContinued = 0x01

	// opusRate is the only rate the Opus decoder produces.
	opusRate = 48000
	// opusMaxFrame is 120ms at 48kHz.
	opusMaxFrame = 5760
)

// oggPage is one page of a physical stream with its lacing segments.
type oggPage struct {
	flags    byte
	segments []byte
	body     []byte
}

func readOggPage(r io.Reader) (oggPage, error) {
	var hdr [27]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return oggPage{}, err
	}
	if string(hdr[:4]) != "OggS" {
		return oggPage{}, errOggCapture
	}
	if hdr[4] != 0 {
		return oggPage{}, errOggVersion
	}
	pg := oggPage{
		flags:    hdr[5],
		segments: make([]byte, hdr[26]),
	}
	if _, err := io.ReadFull(r, pg.segments); err != nil {
		return oggPage{}, noEOF(err)
	}
	size := 0
	for _, s := range pg.segments {
		size += int(s)
	}
	pg.body = make([]byte, size)
	if _, err := io.ReadFull(r, pg.body); err != nil {
		return oggPage{}, noEOF(err)
	}
	return pg, nil
}

// noEOF turns a clean EOF inside a page into a truncation error.
func noEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// oggPackets reassembles packets across page boundaries.
type oggPackets struct {
	r     io.Reader
	queue [][]byte
	carry []byte
}

func (o *oggPackets) next() ([]byte, error) {
	for len(o.queue) == 0 {
		pg, err := readOggPage(o.r)
		if err != nil {
			return nil, err
		}
		var pkt []byte
		if pg.flags&oggContinued != 0 {
			pkt = o.carry
		}
		off := 0
		for _, seg := range pg.segments {
			pkt = append(pkt, pg.body[off:off+int(seg)]...)
			off += int(seg)
			if seg < 255 {
				o.queue = append(o.queue, pkt)
				pkt = nil
			}
		}
		o.carry = pkt
	}
	pkt := o.queue[0]
	o.queue = o.queue[1:]
	return pkt, nil
}

func (o *oggPackets) reset(r io.Reader) {
	o.r = r
	o.queue = nil
	o.carry = nil
}

// oggCodec decodes the packets of one logical stream.
type oggCodec interface {
	// header consumes a setup packet and reports whether audio follows.
	header(pkt []byte) (bool, error)
	decode(pkt []byte, out *pcmFrames) error
	rate() int
	preSkip() int
	reset()
	name() string
}

func newOggCodec(first []byte) (oggCodec, error) {
	switch {
	case len(first) >= 19 && string(first[:8]) == "OpusHead":
		channels := int(first[9])
		dec, err := opus.NewDecoder(opusRate, channels)
		if err != nil {
			return nil, err
		}
		return &opusCodec{
			dec:      dec,
			channels: channels,
			skip:     int(binary.LittleEndian.Uint16(first[10:12])),
			pcm:      make([]float32, opusMaxFrame*channels),
		}, nil
	case len(first) >= 16 && first[0] == 1 && string(first[1:7]) == "vorbis":
		c := &vorbisCodec{
			dec:        &vorbis.Decoder{},
			channels:   int(first[11]),
			sampleRate: int(binary.LittleEndian.Uint32(first[12:16])),
		}
		if err := c.dec.ReadHeader(first); err != nil {
			return nil, err
		}
		c.seen = 1
		return c, nil
	}
	return nil, errOggCodec
}

type opusCodec struct {
	dec      *opus.Decoder
	channels int
	skip     int
	pcm      []float32
}

// header swallows OpusTags, the second and last Opus header.
func (c *opusCodec) header([]byte) (bool, error) { return true, nil }

func (c *opusCodec) decode(pkt []byte, out *pcmFrames) error {
	n, err := c.dec.DecodeFloat32(pkt, c.pcm)
	if err != nil {
		return err
	}
	out.fillFloat32(c.pcm[:n*c.channels], c.channels)
	return nil
}

func (c *opusCodec) rate() int    { return opusRate }
func (c *opusCodec) preSkip() int { return c.skip }
func (c *opusCodec) reset()       {}
func (c *opusCodec) name() string { return "OPUS" }

type vorbisCodec struct {
	dec        *vorbis.Decoder
	channels   int
	sampleRate int
	seen       int
}

// header feeds the comment and setup packets.
func (c *vorbisCodec) header(pkt []byte) (bool, error) {
	if err := c.dec.ReadHeader(pkt); err != nil {
		return false, err
	}
	c.seen++
	return c.seen == 3, nil
}

func (c *vorbisCodec) decode(pkt []byte, out *pcmFrames) error {
	pcm, err := c.dec.Decode(pkt)
	if err != nil {
		return err
	}
	out.fillFloat32(pcm, c.channels)
	return nil
}

func (c *vorbisCodec) rate() int    { return c.sampleRate }
func (c *vorbisCodec) preSkip() int { return 0 }
func (c *vorbisCodec) reset()       { c.dec.Clear() }
func (c *vorbisCodec) name() string { return "VORBIS" }

// oggMark is where a page starts and the granule reached before it.
type oggMark struct {
	offset int64
	before int64
}

// oggStream plays the first logical stream of an Ogg file. Pages are indexed
// at open so that seeking is a lookup followed by a short decode-and-drop.
type oggStream struct {
	f       *os.File
	codec   oggCodec
	packets oggPackets
	marks   []oggMark
	length  int

	pos  int
	drop int
	pcm  pcmFrames
	err  error
}

func decodeOgg(f *os.File) (beep.StreamSeekCloser, beep.Format, string, error) {
	s := &oggStream{f: f}
	s.packets.reset(f)

	first, err := s.packets.next()
	if err != nil {
		return nil, beep.Format{}, "", err
	}
	codec, err := newOggCodec(first)
	if err != nil {
		return nil, beep.Format{}, "", err
	}
	for done := false; !done; {
		pkt, err := s.packets.next()
		if err != nil {
			return nil, beep.Format{}, "", errOggHeaders
		}
		if done, err = codec.header(pkt); err != nil {
			return nil, beep.Format{}, "", err
		}
	}
	s.codec = codec

	if err := s.index(); err != nil {
		return nil, beep.Format{}, "", err
	}
	if err := s.Seek(0); err != nil {
		return nil, beep.Format{}, "", err
	}

	format := beep.Format{SampleRate: beep.SampleRate(codec.rate()), NumChannels: 2, Precision: 2}
	return s, format, codec.name(), nil
}

// index records every audio page from the current offset to the end.
func (s *oggStream) index() error {
	start, err := s.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	var granule int64
	offset := start
	for {
		var hdr [27]byte
		if _, err := s.f.ReadAt(hdr[:], offset); err != nil {
			break
		}
		if string(hdr[:4]) != "OggS" {
			break
		}
		segs := make([]byte, hdr[26])
		if _, err := s.f.ReadAt(segs, offset+27); err != nil {
			break
		}
		size := int64(27 + len(segs))
		for _, v := range segs {
			size += int64(v)
		}
		s.marks = append(s.marks, oggMark{offset: offset, before: granule})
		if g := int64(binary.LittleEndian.Uint64(hdr[6:14])); g > 0 { //nolint:gosec // -1 is skipped
			granule = g
		}
		offset += size
	}
	if len(s.marks) == 0 {
		s.marks = []oggMark{{offset: start}}
	}
	s.length = max(int(granule)-s.codec.preSkip(), 0)
	return nil
}

func (s *oggStream) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && s.err == nil {
		if s.pcm.empty() && !s.decodeNext() {
			break
		}
		if s.drop > 0 {
			s.drop -= s.pcm.skip(s.drop)
			continue
		}
		w := s.pcm.drain(samples[n:])
		n += w
		s.pos += w
	}
	return n, n > 0
}

func (s *oggStream) decodeNext() bool {
	for {
		pkt, err := s.packets.next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			return false
		}
		if err := s.codec.decode(pkt, &s.pcm); err != nil {
			// A corrupt packet costs its own samples only.
			continue
		}
		if !s.pcm.empty() {
			return true
		}
	}
}

func (s *oggStream) Err() error { return s.err }

func (s *oggStream) Len() int { return s.length }

func (s *oggStream) Position() int { return s.pos }

// Seek restarts decoding at the last page that begins at or before p, then
// drops samples up to p. Granules count the Opus pre-skip, positions do not.
func (s *oggStream) Seek(p int) error {
	p = min(max(p, 0), s.length)
	target := int64(p + s.codec.preSkip())
	i := sort.Search(len(s.marks), func(i int) bool { return s.marks[i].before > target }) - 1
	i = max(i, 0)
	mark := s.marks[i]

	if _, err := s.f.Seek(mark.offset, io.SeekStart); err != nil {
		return err
	}
	s.packets.reset(s.f)
	s.codec.reset()
	s.pcm.reset()
	s.drop = int(target - mark.before)
	s.pos = p
	s.err = nil
	return nil
}

// Close is a no-op: the player owns the file.
func (s *oggStream) Close() error { return nil }
