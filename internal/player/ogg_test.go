package player

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oggPageBytes builds a page whose lacing table is given explicitly.
func oggPageBytes(flags byte, granule int64, lacing []byte, body []byte) []byte {
	hdr := make([]byte, 27)
	copy(hdr, "OggS")
	hdr[5] = flags
	binary.LittleEndian.PutUint64(hdr[6:14], uint64(granule)) //nolint:gosec // test data
	hdr[26] = byte(len(lacing))
	out := append(hdr, lacing...)
	return append(out, body...)
}

func TestOggPackets(t *testing.T) {
	long := bytes.Repeat([]byte{'x'}, 255)
	var data []byte
	// Two packets, then the start of a third that continues on the next page.
	data = append(data, oggPageBytes(0, 10, []byte{2, 3, 255}, append([]byte("aabbb"), long...))...)
	data = append(data, oggPageBytes(oggContinued, 20, []byte{1}, []byte("y"))...)

	o := oggPackets{r: bytes.NewReader(data)}

	pkt, err := o.next()
	require.NoError(t, err)
	assert.Equal(t, "aa", string(pkt))

	pkt, err = o.next()
	require.NoError(t, err)
	assert.Equal(t, "bbb", string(pkt))

	pkt, err = o.next()
	require.NoError(t, err)
	assert.Len(t, pkt, 256)
	assert.Equal(t, byte('y'), pkt[255])

	_, err = o.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadOggPage_Errors(t *testing.T) {
	_, err := readOggPage(bytes.NewReader([]byte("NotAnOggPage-----------------")))
	require.ErrorIs(t, err, errOggCapture)

	page := oggPageBytes(0, 0, []byte{4}, []byte("ab"))
	_, err = readOggPage(bytes.NewReader(page))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestNewOggCodec_Unknown(t *testing.T) {
	_, err := newOggCodec([]byte("FLAC stream header"))
	assert.ErrorIs(t, err, errOggCodec)
}

func TestNewOggCodec_Vorbis(t *testing.T) {
	ident := make([]byte, 30)
	ident[0] = 1
	copy(ident[1:], "vorbis")
	ident[11] = 2
	binary.LittleEndian.PutUint32(ident[12:16], 44100)
	ident[28] = 0xB8 // blocksizes 256/2048
	ident[29] = 1    // framing bit

	codec, err := newOggCodec(ident)
	require.NoError(t, err)
	assert.Equal(t, 44100, codec.rate())
	assert.Equal(t, 0, codec.preSkip())
	assert.Equal(t, "VORBIS", codec.name())
}
