package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

// decoder turns an open file into a stream and names the codec it found.
type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, string, error)

var decoders = map[string]decoder{
	".mp3":  decodeMP3,
	".flac": decodeFLAC,
	".wav":  decodeWAV,
	".ogg":  decodeOgg,
	".oga":  decodeOgg,
	".ogv":  decodeOgg,
	".opus": decodeOgg,
	".mp4":  decodeMP4,
	".m4a":  decodeMP4,
	".m4v":  decodeMP4,
}

// IsMediaFile reports whether path has an extension the player decodes.
func IsMediaFile(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// open decodes path. The caller owns both the file and the streamer.
func open(path string) (*os.File, beep.StreamSeekCloser, beep.Format, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, nil, beep.Format{}, "", fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, "", err
	}

	streamer, format, codec, err := decode(f)
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, "", fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return f, streamer, format, codec, nil
}

func decodeFLAC(f *os.File) (beep.StreamSeekCloser, beep.Format, string, error) {
	// Skip ID3v2 tag if present (some taggers add it to FLAC files)
	if err := skipID3v2(f); err != nil {
		return nil, beep.Format{}, "", err
	}
	s, format, err := flac.Decode(f)
	return s, format, "FLAC", err
}

func decodeWAV(f *os.File) (beep.StreamSeekCloser, beep.Format, string, error) {
	s, format, err := wav.Decode(f)
	return s, format, "WAV", err
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
// Some FLAC files have ID3v2 tags prepended, which the FLAC decoder doesn't handle.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer in bytes 6-9
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

// pcmFrames buffers decoded frames between codec packets.
type pcmFrames struct {
	buf [][2]float64
	off int
}

func (b *pcmFrames) empty() bool { return b.off >= len(b.buf) }

func (b *pcmFrames) reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

// drain copies buffered frames into samples and reports how many it wrote.
func (b *pcmFrames) drain(samples [][2]float64) int {
	n := copy(samples, b.buf[b.off:])
	b.off += n
	return n
}

// skip drops up to n buffered frames and returns how many were dropped.
func (b *pcmFrames) skip(n int) int {
	n = min(n, len(b.buf)-b.off)
	b.off += n
	return n
}

// fillInt16 replaces the buffer with interleaved 16-bit samples. Mono is
// duplicated, channels past the second are dropped.
func (b *pcmFrames) fillInt16(pcm []int16, channels int) {
	b.reset()
	if channels <= 0 {
		return
	}
	for i := 0; i+channels <= len(pcm); i += channels {
		l := float64(pcm[i]) / 32768
		r := l
		if channels > 1 {
			r = float64(pcm[i+1]) / 32768
		}
		b.buf = append(b.buf, [2]float64{l, r})
	}
}

// fillFloat32 is fillInt16 for float samples.
func (b *pcmFrames) fillFloat32(pcm []float32, channels int) {
	b.reset()
	if channels <= 0 {
		return
	}
	for i := 0; i+channels <= len(pcm); i += channels {
		l := float64(pcm[i])
		r := l
		if channels > 1 {
			r = float64(pcm[i+1])
		}
		b.buf = append(b.buf, [2]float64{l, r})
	}
}

// fillPacked decodes little-endian signed PCM of the given byte width.
func (b *pcmFrames) fillPacked(data []byte, width, channels int) {
	b.reset()
	if channels <= 0 || width <= 0 {
		return
	}
	scale := float64(int64(1) << (8*width - 1))
	sample := func(off int) float64 {
		var v int64
		for i := width - 1; i >= 0; i-- {
			v = v<<8 | int64(data[off+i])
		}
		if v&(1<<(8*width-1)) != 0 {
			v -= 1 << (8 * width)
		}
		return float64(v) / scale
	}
	frame := width * channels
	for off := 0; off+frame <= len(data); off += frame {
		l := sample(off)
		r := l
		if channels > 1 {
			r = sample(off + width)
		}
		b.buf = append(b.buf, [2]float64{l, r})
	}
}
