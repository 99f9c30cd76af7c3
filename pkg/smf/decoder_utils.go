package smf

import (
	"encoding/binary"
	"io"
)

// maxVarLenBytes bounds a variable length quantity, the largest allowed is 0x0FFFFFFF.
const maxVarLenBytes = 4

// add offset
func (d *Decoder) readByte() (byte, error) {
	var b byte
	err := binary.Read(d.r, binary.BigEndian, &b)
	if err == nil {
		d.offset += 1 // read byte
	}
	return b, err
}

// VarLen returns the variable length value at the exact parser location.
func (d *Decoder) varLen() (val uint32, err error) {
	buf := make([]byte, 0, maxVarLenBytes)
	var lastByte bool

	for !lastByte {
		if len(buf) == maxVarLenBytes {
			return 0, ErrUnexpectedData
		}
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		buf = append(buf, b)
		lastByte = b>>7 == 0x0
	}

	val, _ = decodeVarint(buf)
	return val, nil
}

// varLenTxt skips a length prefixed payload.
func (d *Decoder) varLenTxt() error {
	l, err := d.varLen()
	if err != nil {
		return err
	}
	d.offset += int64(l)
	_, err = d.r.Seek(d.offset, io.SeekStart)
	return err
}

func (d *Decoder) IDnSize() ([4]byte, uint32, error) {
	var ID [4]byte
	if err := binary.Read(d.r, binary.BigEndian, &ID); err != nil {
		return ID, 0, err
	}
	d.offset += 4 // [4]byte ID

	var size uint32
	if err := binary.Read(d.r, binary.BigEndian, &size); err != nil {
		return ID, 0, unexpectedEOF(err)
	}
	d.offset += 4 // uint32 blockSize

	return ID, size, nil
}
