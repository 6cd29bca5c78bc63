package wtwire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
)

// Message is any watchtower message. The set of implementations is closed.
type Message interface {
	wire.Message
	watchtowerMessage()
}

// ErrUnknownChainHash is returned by CheckRemoteInit when the peer operates
// on a different chain.
var ErrUnknownChainHash = errors.New("unknown chain hash")

// TypeOf returns the message type of msg.
func TypeOf(msg Message) MessageType {
	return MessageType(msg.MsgType())
}

// ReadMessage reads one message, dispatching on its type tag. A stream that
// ends cleanly before the tag yields io.EOF.
func ReadMessage(r io.Reader) (Message, error) {
	t, err := wire.ReadMessageType(r)
	if err != nil {
		return nil, err
	}
	msg, err := MakeEmptyMessage(MessageType(t))
	if err != nil {
		return nil, err
	}
	if err := wire.ReadMessage(r, msg, false); err != nil {
		return nil, fmt.Errorf("decode %s: %w", MessageType(t), err)
	}
	return msg, nil
}

// WriteMessage writes msg including its type tag and returns the number of
// bytes written.
func WriteMessage(w io.Writer, msg Message) (int, error) {
	return wire.WriteMessage(w, msg)
}

// Encode returns the wire encoding of msg.
func Encode(msg Message) ([]byte, error) {
	return wire.EncodeMessage(msg)
}

// Decode decodes a single message from data.
func Decode(data []byte) (Message, error) {
	msg, err := ReadMessage(bytes.NewReader(data))
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	return msg, err
}

// NewInitMessage returns an Init advertising features on chainHash.
func NewInitMessage(features *wire.FeatureVector, chainHash wire.ChainHash) *Init {
	m := &Init{ChainHash: chainHash}
	if features != nil {
		for _, f := range features.Features() {
			m.ConnFeatures.Set(f)
		}
	}
	return m
}

// CheckRemoteInit verifies that the peer's Init selects the same chain as
// ours.
func (m *Init) CheckRemoteInit(remote *Init) error {
	if m.ChainHash != remote.ChainHash {
		return fmt.Errorf("%w: remote %s, local %s",
			ErrUnknownChainHash, remote.ChainHash, m.ChainHash)
	}
	return nil
}

// NewErrorMessage returns an Error carrying code and data.
func NewErrorMessage(code ErrorCode, data []byte) *Error {
	return &Error{Code: code, Data: data}
}
