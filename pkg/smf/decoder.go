package smf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

type nextChunkType int

const (
	eventChunk nextChunkType = iota + 1
	trackChunk
)

type timeFormat int

const (
	MetricalTF timeFormat = iota + 1
	TimeCodeTF
)

const (
	metaEvent     = 0xFF
	sysExEvent    = 0xF0
	sysExEscape   = 0xF7
	metaTempo     = 0x51
	metaEndTrack  = 0x2F
	noRunning     = 0
	statusBitMask = 0x80
)

var (
	headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64}
	trackChunkID  = [4]byte{0x4D, 0x54, 0x72, 0x6B}

	// ErrFmtNotSupported is a generic error reporting an unknown format.
	ErrFmtNotSupported = errors.New("format not supported")
	// ErrUnexpectedData is a generic error reporting that the parser encountered unexpected data.
	ErrUnexpectedData = errors.New("unexpected data content")
)

// Message is one channel message of a track, framed the way it would
// arrive on a cable. Tick is absolute from the start of the track.
type Message struct {
	Tick  uint64
	Track int
	Data  []byte
}

// TempoChange is a set tempo meta event.
type TempoChange struct {
	Tick             uint64
	MicrosPerQuarter uint32
}

type Track struct {
	Messages []Message
}

type Decoder struct {
	r            io.ReadSeeker
	offset       int64
	trackEnd     int64
	ticks        uint64
	running      byte
	currentTrack *Track

	Format              uint16
	TicksPerQuarterNote uint16
	TimeFormat          timeFormat
	Tracks              []*Track
	Tempos              []TempoChange
}

func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{r: r, offset: 0}
}

func (d *Decoder) Decode() error {
	if _, err := d.r.Seek(0, io.SeekStart); err != nil {
		return err
	}

	d.offset = 0
	d.Tracks = nil
	d.Tempos = nil

	id, size, err := d.IDnSize()
	if err != nil {
		return err
	}

	if id != headerChunkID {
		return fmt.Errorf("%w - %v", ErrFmtNotSupported, id)
	}

	if size != 6 {
		return fmt.Errorf("%w - expected header size to be 6, was %d", ErrFmtNotSupported, size)
	}

	var header struct {
		Format    uint16
		NumTracks uint16
		Division  uint16
	}
	if err := binary.Read(d.r, binary.BigEndian, &header); err != nil {
		return err
	}
	d.offset += 2 + 2 + 2 // uint16 Format + uint16 NumTracks + uint16 Division

	d.Format = header.Format
	if (header.Division & 0x8000) == 0 {
		d.TicksPerQuarterNote = header.Division & 0x7FFF
		d.TimeFormat = MetricalTF
	} else {
		d.TimeFormat = TimeCodeTF
	}

	nextChunk := trackChunk
	for err != io.EOF {
		switch nextChunk {
		case eventChunk:
			nextChunk, err = d.parseEvent()
		case trackChunk:
			nextChunk, err = d.parseTrack()
		}

		if err != nil && err != io.EOF {
			return err
		}
	}

	if header.NumTracks != 0 && int(header.NumTracks) != len(d.Tracks) {
		return fmt.Errorf("%w - header announces %d tracks, found %d", ErrUnexpectedData, header.NumTracks, len(d.Tracks))
	}

	_, err = d.r.Seek(0, io.SeekStart)
	return err
}

func (d *Decoder) parseTrack() (nextChunkType, error) {
	id, size, err := d.IDnSize()
	if err != nil {
		return trackChunk, err
	}

	// unknown chunks are skipped
	if id != trackChunkID {
		d.offset += int64(size)
		if _, err := d.r.Seek(d.offset, io.SeekStart); err != nil {
			return trackChunk, err
		}
		return trackChunk, nil
	}

	d.currentTrack = new(Track)
	d.Tracks = append(d.Tracks, d.currentTrack)
	d.trackEnd = d.offset + int64(size)
	d.ticks = 0
	d.running = noRunning

	return d.next(), nil
}

func (d *Decoder) next() nextChunkType {
	if d.offset >= d.trackEnd {
		return trackChunk
	}
	return eventChunk
}

func (d *Decoder) parseEvent() (nextChunkType, error) {
	timeDelta, err := d.varLen()
	if err != nil {
		return eventChunk, unexpectedEOF(err)
	}
	d.ticks += uint64(timeDelta)

	// status byte give us the msg type and channel.
	statusByte, err := d.readByte()
	if err != nil {
		return eventChunk, unexpectedEOF(err)
	}

	if statusByte&statusBitMask == 0 {
		if d.running == noRunning {
			return eventChunk, fmt.Errorf("%w - data byte %#x without status at offset %d", ErrUnexpectedData, statusByte, d.offset-1)
		}

		statusByte = d.running
		d.offset -= 1
		if _, err := d.r.Seek(-1, io.SeekCurrent); err != nil {
			return eventChunk, err
		}
	}

	switch {
	case statusByte == metaEvent:
		d.running = noRunning
		return d.parseMetaMsg()

	case statusByte == sysExEvent || statusByte == sysExEscape:
		d.running = noRunning
		if err := d.varLenTxt(); err != nil {
			return eventChunk, unexpectedEOF(err)
		}

	case statusByte >= sysExEvent:
		return eventChunk, fmt.Errorf("%w - status %#x at offset %d", ErrUnexpectedData, statusByte, d.offset-1)

	default:
		d.running = statusByte
		data := []byte{statusByte, 0, 0}[:dataLen(statusByte)+1]
		if _, err := io.ReadFull(d.r, data[1:]); err != nil {
			return eventChunk, unexpectedEOF(err)
		}
		d.offset += int64(len(data) - 1)

		d.currentTrack.Messages = append(d.currentTrack.Messages, Message{
			Tick:  d.ticks,
			Track: len(d.Tracks) - 1,
			Data:  data,
		})
	}

	return d.next(), nil
}

func (d *Decoder) parseMetaMsg() (nextChunkType, error) {
	metaType, err := d.readByte()
	if err != nil {
		return eventChunk, unexpectedEOF(err)
	}

	switch metaType {
	case metaTempo:
		l, err := d.varLen()
		if err != nil {
			return eventChunk, unexpectedEOF(err)
		}
		if l != 3 {
			return eventChunk, fmt.Errorf("%w - tempo length %d", ErrUnexpectedData, l)
		}
		var b [3]byte
		if _, err := io.ReadFull(d.r, b[:]); err != nil {
			return eventChunk, unexpectedEOF(err)
		}
		d.offset += 3
		d.Tempos = append(d.Tempos, TempoChange{
			Tick:             d.ticks,
			MicrosPerQuarter: uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		})

	case metaEndTrack:
		d.offset = d.trackEnd
		if _, err := d.r.Seek(d.offset, io.SeekStart); err != nil {
			return trackChunk, err
		}
		return trackChunk, nil

	default:
		if err := d.varLenTxt(); err != nil {
			return eventChunk, unexpectedEOF(err)
		}
	}

	return d.next(), nil
}

// Merged returns the messages of all tracks ordered by tick. Messages on
// the same tick keep track order.
func (d *Decoder) Merged() []Message {
	var all []Message
	for _, track := range d.Tracks {
		all = append(all, track.Messages...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Tick < all[j].Tick
	})
	return all
}

func dataLen(status byte) int {
	switch status >> 4 {
	case 0xC, 0xD:
		return 1
	}
	return 2
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
