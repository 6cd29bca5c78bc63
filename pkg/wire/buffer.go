package wire

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// allocChunk bounds the up-front allocation for a length read off the wire.
// Longer payloads grow as bytes actually arrive.
const allocChunk = 64 * 1024

// Buffer is a variable-length byte string encoded as VarInt(len) followed by
// the bytes. Encoding writes the slice as is; decoding allocates a new one.
type Buffer []byte

// Encode implements Item.
func (b *Buffer) Encode(w io.Writer) (int, error) {
	n, err := WriteVarInt(w, uint64(len(*b)))
	if err != nil {
		return n, err
	}
	m, err := w.Write(*b)
	return n + m, err
}

// Decode implements Item.
func (b *Buffer) Decode(r io.Reader) error {
	length, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	data, err := readBytes(r, length)
	if err != nil {
		return err
	}
	*b = data
	return nil
}

// String returns the buffer length and contents in hex.
func (b Buffer) String() string {
	return fmt.Sprintf("%d:%x", len(b), []byte(b))
}

// ExtBuffer is a byte string carried as an extension record payload. It has
// no inner length prefix; the record supplies the length.
type ExtBuffer []byte

// EncodeExtension implements ExtensionItem.
func (b *ExtBuffer) EncodeExtension(w io.Writer) (int, error) {
	return w.Write(*b)
}

// DecodeExtension implements ExtensionItem.
func (b *ExtBuffer) DecodeExtension(r io.Reader, length uint64) error {
	data, err := readBytes(r, length)
	if err != nil {
		return err
	}
	*b = data
	return nil
}

// readBytes reads exactly n bytes without trusting n for the allocation
// size.
func readBytes(r io.Reader, n uint64) ([]byte, error) {
	if n > math.MaxInt64 {
		return nil, io.ErrUnexpectedEOF
	}
	if n == 0 {
		return []byte{}, nil
	}
	if n <= allocChunk {
		buf := make([]byte, n)
		if err := ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	var buf bytes.Buffer
	buf.Grow(allocChunk)
	copied, err := io.CopyN(&buf, r, int64(n))
	if err != nil {
		if err == io.EOF || copied < int64(n) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// skipBytes discards exactly n bytes. Lengths beyond math.MaxInt64 can
// never be satisfied and fail without reading.
func skipBytes(r io.Reader, n uint64) error {
	if n > math.MaxInt64 {
		return io.ErrUnexpectedEOF
	}
	copied, err := io.CopyN(io.Discard, r, int64(n))
	if err != nil {
		if err == io.EOF || copied < int64(n) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ Item          = (*Buffer)(nil)
	_ ExtensionItem = (*ExtBuffer)(nil)
)
