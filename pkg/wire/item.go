package wire

import (
	"encoding/binary"
	"io"
)

// Item is a value with a self-contained encoding, used for the required
// fields of a message. Decode is called on a pointer and overwrites the
// value. For every valid value v, decoding the output of Encode yields v.
type Item interface {
	// Encode writes the value and returns the number of bytes written.
	Encode(w io.Writer) (int, error)

	// Decode reads the value.
	Decode(r io.Reader) error
}

// ExtensionItem is a value carried as the payload of an extension record.
// Its length is supplied by the enclosing record instead of being encoded by
// the value itself.
type ExtensionItem interface {
	// EncodeExtension writes the payload bytes and returns their count.
	EncodeExtension(w io.Writer) (int, error)

	// DecodeExtension reads a payload of exactly length bytes.
	DecodeExtension(r io.Reader, length uint64) error
}

// AsExtension adapts an Item for use inside the extension stream. The record
// length is not needed since the item's own encoding is self-describing.
func AsExtension(item Item) ExtensionItem {
	return itemExtension{item}
}

type itemExtension struct {
	item Item
}

func (e itemExtension) EncodeExtension(w io.Writer) (int, error) {
	return e.item.Encode(w)
}

func (e itemExtension) DecodeExtension(r io.Reader, _ uint64) error {
	return e.item.Decode(r)
}

// Fixed-width integer items. Each is a named integer type so that message
// structs can keep native Go fields and bind them with the helpers below.
type (
	U8  uint8
	I8  int8
	U16 uint16
	I16 int16
	U32 uint32
	I32 int32
	U64 uint64
	I64 int64
)

// Uint8 binds a uint8 field as an Item.
func Uint8(v *uint8) Item { return (*U8)(v) }

// Int8 binds an int8 field as an Item.
func Int8(v *int8) Item { return (*I8)(v) }

// Uint16 binds a uint16 field as an Item.
func Uint16(v *uint16) Item { return (*U16)(v) }

// Int16 binds an int16 field as an Item.
func Int16(v *int16) Item { return (*I16)(v) }

// Uint32 binds a uint32 field as an Item.
func Uint32(v *uint32) Item { return (*U32)(v) }

// Int32 binds an int32 field as an Item.
func Int32(v *int32) Item { return (*I32)(v) }

// Uint64 binds a uint64 field as an Item.
func Uint64(v *uint64) Item { return (*U64)(v) }

// Int64 binds an int64 field as an Item.
func Int64(v *int64) Item { return (*I64)(v) }

func (v *U8) Encode(w io.Writer) (int, error) {
	return w.Write([]byte{byte(*v)})
}

func (v *U8) Decode(r io.Reader) error {
	var b [1]byte
	if err := ReadFull(r, b[:]); err != nil {
		return err
	}
	*v = U8(b[0])
	return nil
}

func (v *I8) Encode(w io.Writer) (int, error) {
	return w.Write([]byte{byte(*v)})
}

func (v *I8) Decode(r io.Reader) error {
	var b [1]byte
	if err := ReadFull(r, b[:]); err != nil {
		return err
	}
	*v = I8(b[0])
	return nil
}

func (v *U16) Encode(w io.Writer) (int, error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(*v))
	return w.Write(b[:])
}

func (v *U16) Decode(r io.Reader) error {
	var b [2]byte
	if err := ReadFull(r, b[:]); err != nil {
		return err
	}
	*v = U16(binary.BigEndian.Uint16(b[:]))
	return nil
}

func (v *I16) Encode(w io.Writer) (int, error) {
	u := U16(*v)
	return u.Encode(w)
}

func (v *I16) Decode(r io.Reader) error {
	var u U16
	if err := u.Decode(r); err != nil {
		return err
	}
	*v = I16(u)
	return nil
}

func (v *U32) Encode(w io.Writer) (int, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(*v))
	return w.Write(b[:])
}

func (v *U32) Decode(r io.Reader) error {
	var b [4]byte
	if err := ReadFull(r, b[:]); err != nil {
		return err
	}
	*v = U32(binary.BigEndian.Uint32(b[:]))
	return nil
}

func (v *I32) Encode(w io.Writer) (int, error) {
	u := U32(*v)
	return u.Encode(w)
}

func (v *I32) Decode(r io.Reader) error {
	var u U32
	if err := u.Decode(r); err != nil {
		return err
	}
	*v = I32(u)
	return nil
}

func (v *U64) Encode(w io.Writer) (int, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(*v))
	return w.Write(b[:])
}

func (v *U64) Decode(r io.Reader) error {
	var b [8]byte
	if err := ReadFull(r, b[:]); err != nil {
		return err
	}
	*v = U64(binary.BigEndian.Uint64(b[:]))
	return nil
}

func (v *I64) Encode(w io.Writer) (int, error) {
	u := U64(*v)
	return u.Encode(w)
}

func (v *I64) Decode(r io.Reader) error {
	var u U64
	if err := u.Decode(r); err != nil {
		return err
	}
	*v = I64(u)
	return nil
}

// Uint128 is an unsigned 128-bit integer split into big-endian halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

func (v *Uint128) Encode(w io.Writer) (int, error) {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	return w.Write(b[:])
}

func (v *Uint128) Decode(r io.Reader) error {
	var b [16]byte
	if err := ReadFull(r, b[:]); err != nil {
		return err
	}
	v.Hi = binary.BigEndian.Uint64(b[:8])
	v.Lo = binary.BigEndian.Uint64(b[8:])
	return nil
}

// Int128 is a two's complement 128-bit integer. Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

func (v *Int128) Encode(w io.Writer) (int, error) {
	u := Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
	return u.Encode(w)
}

func (v *Int128) Decode(r io.Reader) error {
	var u Uint128
	if err := u.Decode(r); err != nil {
		return err
	}
	v.Hi = int64(u.Hi)
	v.Lo = u.Lo
	return nil
}

// Unit is the empty value. It encodes as zero bytes.
type Unit struct{}

func (*Unit) Encode(io.Writer) (int, error) { return 0, nil }

func (*Unit) Decode(io.Reader) error { return nil }

// Compile-time interface satisfaction checks.
var (
	_ Item          = (*U8)(nil)
	_ Item          = (*I8)(nil)
	_ Item          = (*U16)(nil)
	_ Item          = (*I16)(nil)
	_ Item          = (*U32)(nil)
	_ Item          = (*I32)(nil)
	_ Item          = (*U64)(nil)
	_ Item          = (*I64)(nil)
	_ Item          = (*Uint128)(nil)
	_ Item          = (*Int128)(nil)
	_ Item          = (*Unit)(nil)
	_ ExtensionItem = itemExtension{}
)
