package log

import (
	"time"
)

// Event is a protocol event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID identifies the connection (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	Direction Direction `cbor:"3,keyasint"`
	Layer     Layer     `cbor:"4,keyasint"`
	Category  Category  `cbor:"5,keyasint"`

	// LocalRole is the role of the endpoint that recorded the event.
	LocalRole Role `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the peer address, if known.
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// Exactly one of the following is set.
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"`
	Message     *MessageEvent     `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"`
}

// Direction indicates message flow relative to the local endpoint.
type Direction uint8

const (
	DirectionIn  Direction = 0
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the framing layer (raw bytes).
	LayerTransport Layer = 0
	// LayerWire is the message codec layer.
	LayerWire Layer = 1
	// LayerSession is the session state machine above the codec.
	LayerSession Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event.
type Category uint8

const (
	CategoryMessage Category = 0
	CategoryState   Category = 2
	CategoryError   Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Role is the local endpoint's side of the protocol.
type Role uint8

const (
	RoleClient Role = 0
	RoleTower  Role = 1
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleClient:
		return "CLIENT"
	case RoleTower:
		return "TOWER"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures raw frame data at the transport layer.
type FrameEvent struct {
	// Size is the frame size in bytes, including the length prefix.
	Size int `cbor:"1,keyasint"`

	// Data is the frame payload, possibly truncated.
	Data []byte `cbor:"2,keyasint,omitempty"`

	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MessageEvent captures a decoded watchtower message.
type MessageEvent struct {
	// Type is the wire message type tag.
	Type uint16 `cbor:"1,keyasint"`

	// Name is the message name, e.g. "CreateSession".
	Name string `cbor:"2,keyasint,omitempty"`

	// Size is the encoded message length in bytes.
	Size int `cbor:"3,keyasint"`

	// Code is the error or reply code, for messages that carry one.
	Code *uint16 `cbor:"4,keyasint,omitempty"`

	// SeqNum is set for StateUpdate.
	SeqNum *uint16 `cbor:"5,keyasint,omitempty"`

	// LastApplied is set for messages that acknowledge updates.
	LastApplied *uint16 `cbor:"6,keyasint,omitempty"`

	// Summary is a one-line human readable rendering of the fields.
	Summary string `cbor:"7,keyasint,omitempty"`
}

// StateChangeEvent captures connection and session lifecycle changes.
type StateChangeEvent struct {
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	NewState string `cbor:"3,keyasint"`

	// Reason for the change, if available.
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what changed state.
type StateEntity uint8

const (
	StateEntityConnection StateEntity = 0
	StateEntitySession    StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntitySession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures an error at any layer.
type ErrorEventData struct {
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`

	// Code is the protocol error code, if applicable.
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes the operation that failed.
	Context string `cbor:"4,keyasint,omitempty"`
}
