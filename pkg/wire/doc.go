// Package wire implements the binary message framework used by the watchtower
// protocol.
//
// A message on the wire is laid out as
//
//	[u16 type][required fields in declared order][extension records]
//
// Required fields are Items: values with a fixed, self-contained encoding.
// Extension records are optional fields appended after the required ones:
//
//	[VarInt tag][VarInt length][length bytes of payload]
//
// Records appear in strictly ascending tag order. Readers skip records they
// do not know and stop scanning at end of input, so new optional fields can
// be added without breaking older peers.
//
// # Integers
//
// All fixed-width integers are big-endian. VarInt is a CompactSize-style
// encoding whose multi-byte magnitudes are also big-endian:
//
//	n < 0xfd          1 byte
//	n < 0x10000       0xfd + u16
//	n < 0x100000000   0xfe + u32
//	otherwise         0xff + u64
//
// # Messages
//
// A message type declares its layout through the Message interface: a
// constant type tag, the list of required Items and the list of optional
// Extensions. WriteMessage and ReadMessage implement the encode and decode
// contracts once for every message shape, so concrete messages never carry
// hand-written loops. The watchtower catalog in package wtwire is generated
// from a YAML schema by cmd/wtwire-gen.
//
// # Errors
//
// Malformed input is reported with errors wrapping ErrInvalidData. Input that
// ends early is reported as io.ErrUnexpectedEOF. Errors from the underlying
// writer are returned unchanged.
package wire
