package transport

import "github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"

// MessageConn exchanges watchtower messages.
// Implemented by Conn.
type MessageConn interface {
	// Send writes one message.
	Send(msg wtwire.Message) error

	// Receive reads one message.
	Receive() (wtwire.Message, error)

	// Close closes the connection.
	Close() error
}

// FrameReadWriter provides length-prefixed frame I/O.
// Implemented by Framer.
type FrameReadWriter interface {
	// ReadFrame reads a length-prefixed frame.
	ReadFrame() ([]byte, error)

	// WriteFrame writes a length-prefixed frame.
	WriteFrame(data []byte) error
}

// Compile-time interface satisfaction checks.
var (
	_ MessageConn     = (*Conn)(nil)
	_ FrameReadWriter = (*Framer)(nil)
)
