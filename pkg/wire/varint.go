package wire

import (
	"encoding/binary"
	"io"
)

// VarInt discriminant bytes.
const (
	varIntMarker16 = 0xfd
	varIntMarker32 = 0xfe
	varIntMarker64 = 0xff
)

// VarIntSize returns the number of bytes WriteVarInt uses for n.
func VarIntSize(n uint64) int {
	switch {
	case n < varIntMarker16:
		return 1
	case n < 1<<16:
		return 3
	case n < 1<<32:
		return 5
	default:
		return 9
	}
}

// PutVarInt encodes n into buf and returns the number of bytes written.
// buf must be at least VarIntSize(n) bytes long.
func PutVarInt(buf []byte, n uint64) int {
	switch {
	case n < varIntMarker16:
		buf[0] = byte(n)
		return 1
	case n < 1<<16:
		buf[0] = varIntMarker16
		binary.BigEndian.PutUint16(buf[1:], uint16(n))
		return 3
	case n < 1<<32:
		buf[0] = varIntMarker32
		binary.BigEndian.PutUint32(buf[1:], uint32(n))
		return 5
	default:
		buf[0] = varIntMarker64
		binary.BigEndian.PutUint64(buf[1:], n)
		return 9
	}
}

// WriteVarInt writes n using the smallest encoding that holds it.
func WriteVarInt(w io.Writer, n uint64) (int, error) {
	var buf [9]byte
	size := PutVarInt(buf[:], n)
	return w.Write(buf[:size])
}

// ReadVarInt reads a VarInt. Non-canonical encodings (a small value in a
// wider form) are accepted.
func ReadVarInt(r io.Reader) (uint64, error) {
	var buf [9]byte
	if err := ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}
	return readVarIntTail(buf[0], func(tail []byte) error {
		return ReadFull(r, tail)
	}, buf[1:])
}

// PeekVarInt reads a VarInt through the replay buffer of p, so a following
// Read sees the same bytes again unless p.Commit is called. A stream that is
// already exhausted yields io.EOF.
func PeekVarInt(p *PeekReader) (uint64, error) {
	var buf [9]byte
	if err := p.Peek(buf[:1]); err != nil {
		return 0, err
	}
	return readVarIntTail(buf[0], func(tail []byte) error {
		if err := p.Peek(tail); err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		return nil
	}, buf[1:])
}

// readVarIntTail decodes the magnitude that follows the discriminant byte.
func readVarIntTail(discriminant byte, read func([]byte) error, scratch []byte) (uint64, error) {
	switch discriminant {
	case varIntMarker64:
		if err := read(scratch[:8]); err != nil {
			return 0, err
		}
		return binary.BigEndian.Uint64(scratch[:8]), nil
	case varIntMarker32:
		if err := read(scratch[:4]); err != nil {
			return 0, err
		}
		return uint64(binary.BigEndian.Uint32(scratch[:4])), nil
	case varIntMarker16:
		if err := read(scratch[:2]); err != nil {
			return 0, err
		}
		return uint64(binary.BigEndian.Uint16(scratch[:2])), nil
	default:
		return uint64(discriminant), nil
	}
}
