package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MessageTypeSize is the length of the type tag that starts every message.
const MessageTypeSize = 2

// MessageType is the 16-bit tag identifying a message shape.
type MessageType uint16

// String returns the tag in decimal. Protocol packages provide named types
// with richer output.
func (t MessageType) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// Message is a type-tagged record with required fields followed by an
// extension stream of optional fields.
//
// Fields and Extensions return bindings to the message's own fields, so the
// result must be requested from a pointer and used before the message is
// copied. Extensions must be sorted by strictly ascending tag.
type Message interface {
	// MsgType returns the constant tag for this message shape.
	MsgType() MessageType

	// Fields returns the required fields in wire order.
	Fields() []Item

	// Extensions returns the optional fields in ascending tag order.
	Extensions() []Extension
}

// Extension binds an optional message field to its extension tag.
type Extension struct {
	// Tag is the extension record tag.
	Tag uint64

	present func() bool
	encode  func(w io.Writer) (int, error)
	decode  func(r io.Reader, length uint64) error
	clear   func()
}

// Optional binds a pointer field holding an Item to tag. A nil field is
// absent and writes nothing.
//
//	wire.Optional(5, &m.MaxFee) // m.MaxFee is *wire.SatPerKWeight
func Optional[T any, P interface {
	*T
	Item
}](tag uint64, field **T) Extension {
	return Extension{
		Tag:     tag,
		present: func() bool { return *field != nil },
		encode: func(w io.Writer) (int, error) {
			return P(*field).Encode(w)
		},
		decode: func(r io.Reader, _ uint64) error {
			v := new(T)
			if err := P(v).Decode(r); err != nil {
				return err
			}
			*field = v
			return nil
		},
		clear: func() { *field = nil },
	}
}

// OptionalExt binds a pointer field holding an ExtensionItem to tag. The
// payload length is passed to DecodeExtension.
func OptionalExt[T any, P interface {
	*T
	ExtensionItem
}](tag uint64, field **T) Extension {
	return Extension{
		Tag:     tag,
		present: func() bool { return *field != nil },
		encode: func(w io.Writer) (int, error) {
			return P(*field).EncodeExtension(w)
		},
		decode: func(r io.Reader, length uint64) error {
			v := new(T)
			if err := P(v).DecodeExtension(r, length); err != nil {
				return err
			}
			*field = v
			return nil
		},
		clear: func() { *field = nil },
	}
}

// Present reports whether the bound field holds a value.
func (e Extension) Present() bool {
	return e.present != nil && e.present()
}

// validateExtensions checks that tags are strictly ascending.
func validateExtensions(exts []Extension) error {
	for i := 1; i < len(exts); i++ {
		if exts[i].Tag <= exts[i-1].Tag {
			return fmt.Errorf("%w: extension tag %d follows %d",
				ErrInvalidSchema, exts[i].Tag, exts[i-1].Tag)
		}
	}
	return nil
}

// WriteMessage writes msg: its type tag, each required field in order, then
// one record per present extension. It returns the total bytes written.
func WriteMessage(w io.Writer, msg Message) (int, error) {
	exts := msg.Extensions()
	if err := validateExtensions(exts); err != nil {
		return 0, err
	}

	var tag [MessageTypeSize]byte
	binary.BigEndian.PutUint16(tag[:], uint16(msg.MsgType()))
	total, err := w.Write(tag[:])
	if err != nil {
		return total, err
	}

	for _, field := range msg.Fields() {
		n, err := field.Encode(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	var payload bytes.Buffer
	for _, ext := range exts {
		if !ext.Present() {
			continue
		}
		payload.Reset()
		if _, err := ext.encode(&payload); err != nil {
			return total, err
		}
		n, err := writeRecord(w, ext.Tag, payload.Bytes())
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// writeRecord writes one extension record.
func writeRecord(w io.Writer, tag uint64, payload []byte) (int, error) {
	var hdr [18]byte
	n := PutVarInt(hdr[:], tag)
	n += PutVarInt(hdr[n:], uint64(len(payload)))
	written, err := w.Write(hdr[:n])
	if err != nil {
		return written, err
	}
	m, err := w.Write(payload)
	return written + m, err
}

// ReadMessageType reads a message type tag. A stream that is already at its
// end yields io.EOF; one that ends inside the tag yields io.ErrUnexpectedEOF.
func ReadMessageType(r io.Reader) (MessageType, error) {
	var tag [MessageTypeSize]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return 0, err
	}
	return MessageType(binary.BigEndian.Uint16(tag[:])), nil
}

// ReadMessage decodes into msg. If checkType is set the type tag is read
// first and must match msg.MsgType(); otherwise the caller has already
// consumed it.
//
// Required fields are decoded in order. Extensions are then resolved by an
// ordered scan: records with tags below the next expected field are skipped,
// a matching record is decoded, and a higher tag marks the field absent
// without consuming the record. The scan stops at the end of the stream,
// leaving the remaining fields absent. Messages without extensions never
// read past their last required field.
func ReadMessage(r io.Reader, msg Message, checkType bool) error {
	exts := msg.Extensions()
	if err := validateExtensions(exts); err != nil {
		return err
	}

	p := NewPeekReader(r)
	if checkType {
		t, err := ReadMessageType(p)
		if err != nil {
			return err
		}
		if t != msg.MsgType() {
			return invalidData("message type %d, want %d", t, msg.MsgType())
		}
	}

	for i, field := range msg.Fields() {
		if err := field.Decode(p); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("field %d: %w", i, err)
		}
	}

	for _, ext := range exts {
		ext.clear()
	}
	return scanExtensions(p, exts)
}

func scanExtensions(p *PeekReader, exts []Extension) error {
	for i := 0; i < len(exts); {
		ext := exts[i]

		t, err := PeekVarInt(p)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case t > ext.Tag:
			// Absent. The record belongs to a later field or is unknown.
			p.Rewind()
			i++

		case t == ext.Tag:
			p.Commit()
			if err := readRecordPayload(p, ext); err != nil {
				return err
			}
			i++

		default:
			p.Commit()
			length, err := ReadVarInt(p)
			if err != nil {
				return err
			}
			if err := skipBytes(p, length); err != nil {
				return fmt.Errorf("skip extension %d: %w", t, err)
			}
		}
	}
	return nil
}

// readRecordPayload reads a record's length and payload, then decodes ext
// from exactly those bytes.
func readRecordPayload(r io.Reader, ext Extension) error {
	length, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	payload, err := readBytes(r, length)
	if err != nil {
		return fmt.Errorf("extension %d: %w", ext.Tag, err)
	}

	pr := bytes.NewReader(payload)
	if err := ext.decode(pr, length); err != nil {
		if errors.Is(err, ErrInvalidData) {
			return fmt.Errorf("extension %d: %w", ext.Tag, err)
		}
		return invalidData("extension %d: %v", ext.Tag, err)
	}
	if pr.Len() != 0 {
		return invalidData("extension %d: %d of %d payload bytes unused",
			ext.Tag, pr.Len(), length)
	}
	return nil
}

// EncodeMessage returns the wire encoding of msg.
func EncodeMessage(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteMessage(&buf, msg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMessage decodes data, including its type tag, into msg.
func DecodeMessage(data []byte, msg Message) error {
	err := ReadMessage(bytes.NewReader(data), msg, true)
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
