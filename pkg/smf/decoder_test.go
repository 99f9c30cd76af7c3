package smf

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFile(format, division uint16, tracks ...[]byte) []byte {
	var buf bytes.Buffer
	buf.Write(headerChunkID[:])
	binary.Write(&buf, binary.BigEndian, uint32(6))
	binary.Write(&buf, binary.BigEndian, format)
	binary.Write(&buf, binary.BigEndian, uint16(len(tracks)))
	binary.Write(&buf, binary.BigEndian, division)

	for _, track := range tracks {
		buf.Write(trackChunkID[:])
		binary.Write(&buf, binary.BigEndian, uint32(len(track)))
		buf.Write(track)
	}
	return buf.Bytes()
}

var (
	tempoTrack = []byte{
		0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20, // 500000 us per quarter
		0x00, 0xFF, 0x03, 0x04, 't', 'e', 's', 't',
		0x00, 0xFF, 0x2F, 0x00,
	}
	notesTrack = []byte{
		0x00, 0x90, 0x3C, 0x64,
		0x60, 0x3C, 0x00, // running status
		0x81, 0x00, 0xC0, 0x05,
		0x00, 0xF0, 0x03, 0x43, 0x10, 0xF7,
		0x00, 0xE0, 0x00, 0x40,
		0x00, 0xFF, 0x2F, 0x00,
	}
	controlTrack = []byte{
		0x00, 0xB0, 0x20, 0x01,
		0x60, 0x80, 0x3C, 0x40,
		0x00, 0xFF, 0x2F, 0x00,
	}
)

func decodeBytes(t *testing.T, data []byte) (*Decoder, error) {
	t.Helper()
	d := NewDecoder(bytes.NewReader(data))
	return d, d.Decode()
}

func TestDecoder_Decode(t *testing.T) {
	d, err := decodeBytes(t, buildFile(1, 96, tempoTrack, notesTrack, controlTrack))
	require.NoError(t, err)

	assert.Equal(t, uint16(1), d.Format)
	assert.Equal(t, uint16(96), d.TicksPerQuarterNote)
	assert.Equal(t, MetricalTF, d.TimeFormat)
	require.Len(t, d.Tracks, 3)

	assert.Empty(t, d.Tracks[0].Messages)
	assert.Equal(t, []TempoChange{{Tick: 0, MicrosPerQuarter: 500000}}, d.Tempos)

	assert.Equal(t, []Message{
		{Tick: 0, Track: 1, Data: []byte{0x90, 0x3C, 0x64}},
		{Tick: 96, Track: 1, Data: []byte{0x90, 0x3C, 0x00}},
		{Tick: 224, Track: 1, Data: []byte{0xC0, 0x05}},
		{Tick: 224, Track: 1, Data: []byte{0xE0, 0x00, 0x40}},
	}, d.Tracks[1].Messages)

	assert.Equal(t, []Message{
		{Tick: 0, Track: 2, Data: []byte{0xB0, 0x20, 0x01}},
		{Tick: 96, Track: 2, Data: []byte{0x80, 0x3C, 0x40}},
	}, d.Tracks[2].Messages)
}

func TestDecoder_Merged(t *testing.T) {
	d, err := decodeBytes(t, buildFile(1, 96, tempoTrack, notesTrack, controlTrack))
	require.NoError(t, err)

	var got [][]byte
	var cables []int
	for _, m := range d.Merged() {
		got = append(got, m.Data)
		cables = append(cables, m.Track)
	}

	assert.Equal(t, [][]byte{
		{0x90, 0x3C, 0x64},
		{0xB0, 0x20, 0x01},
		{0x90, 0x3C, 0x00},
		{0x80, 0x3C, 0x40},
		{0xC0, 0x05},
		{0xE0, 0x00, 0x40},
	}, got)
	assert.Equal(t, []int{1, 2, 1, 2, 1, 1}, cables)
}

func TestDecoder_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mid")
	require.NoError(t, os.WriteFile(path, buildFile(0, 480, notesTrack), 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoder := NewDecoder(f)
	require.NoError(t, decoder.Decode())

	require.Len(t, decoder.Tracks, 1)
	assert.Len(t, decoder.Tracks[0].Messages, 4)

	// decoding twice gives the same result
	require.NoError(t, decoder.Decode())
	assert.Len(t, decoder.Tracks, 1)
}

func TestDecoder_UnknownChunkSkipped(t *testing.T) {
	data := buildFile(0, 96, notesTrack)
	alien := []byte{'X', 'Y', 'Z', 'W', 0, 0, 0, 2, 0xAA, 0xBB}
	data = append(data[:14:14], append(alien, data[14:]...)...)

	d, err := decodeBytes(t, data)
	require.NoError(t, err)
	require.Len(t, d.Tracks, 1)
	assert.Len(t, d.Tracks[0].Messages, 4)
}

func TestDecoder_Errors(t *testing.T) {
	t.Run("not a midi file", func(t *testing.T) {
		_, err := decodeBytes(t, []byte("RIFF\x00\x00\x00\x06abcdef"))
		assert.ErrorIs(t, err, ErrFmtNotSupported)
	})

	t.Run("header size", func(t *testing.T) {
		data := buildFile(0, 96, notesTrack)
		data[7] = 8
		_, err := decodeBytes(t, data)
		assert.ErrorIs(t, err, ErrFmtNotSupported)
	})

	t.Run("data without status", func(t *testing.T) {
		_, err := decodeBytes(t, buildFile(0, 96, []byte{0x00, 0x3C, 0x64}))
		assert.ErrorIs(t, err, ErrUnexpectedData)
	})

	t.Run("truncated track", func(t *testing.T) {
		_, err := decodeBytes(t, buildFile(0, 96, []byte{0x00, 0x90, 0x3C}))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("track count", func(t *testing.T) {
		data := buildFile(1, 96, notesTrack)
		data[11] = 2
		_, err := decodeBytes(t, data)
		assert.ErrorIs(t, err, ErrUnexpectedData)
	})
}

func TestDecoder_TimeCode(t *testing.T) {
	d, err := decodeBytes(t, buildFile(0, 0xE728, notesTrack))
	require.NoError(t, err)
	assert.Equal(t, TimeCodeTF, d.TimeFormat)
	assert.Equal(t, uint16(0), d.TicksPerQuarterNote)
}

func TestDecodeVarint(t *testing.T) {
	tests := []struct {
		in   []byte
		want uint32
		n    int
	}{
		{[]byte{0x00}, 0, 1},
		{[]byte{0x7F}, 127, 1},
		{[]byte{0x81, 0x00}, 128, 2},
		{[]byte{0xFF, 0x7F}, 16383, 2},
		{[]byte{0x81, 0x80, 0x80, 0x00}, 0x200000, 4},
		{nil, 0, 0},
	}

	for _, tt := range tests {
		x, n := decodeVarint(tt.in)
		assert.Equal(t, tt.want, x, "%x", tt.in)
		assert.Equal(t, tt.n, n, "%x", tt.in)
	}
}
