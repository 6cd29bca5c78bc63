package wtwire

import (
	"io"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
)

// ErrorCode is a 16-bit result code. The code space is split into
// namespaces: base codes usable in any reply, then one range per operation.
//
//	0, 40, 50   base
//	60-64       CreateSession
//	70-72       StateUpdate
//	80          DeleteSession
//
// A non-OK ErrorCode can be returned as an error.
type ErrorCode uint16

const (
	// CodeOK signals that the request was processed successfully.
	CodeOK ErrorCode = 0

	// CodeTemporaryFailure signals that the tower is temporarily
	// unavailable and the client may retry later.
	CodeTemporaryFailure ErrorCode = 40

	// CodePermanentFailure signals that the tower has failed permanently
	// and further communication should be avoided.
	CodePermanentFailure ErrorCode = 50
)

// IsOK reports whether c is CodeOK.
func (c ErrorCode) IsOK() bool {
	return c == CodeOK
}

// String returns the code name, looked up in the base, CreateSession,
// StateUpdate and DeleteSession namespaces in that order. Codes outside
// every namespace are "Unknown".
func (c ErrorCode) String() string {
	if s, ok := baseCodeName(c); ok {
		return s
	}
	if s, ok := CreateSessionCode(c).name(); ok {
		return s
	}
	if s, ok := StateUpdateCode(c).name(); ok {
		return s
	}
	if s, ok := DeleteSessionCode(c).name(); ok {
		return s
	}
	return "Unknown"
}

// Error implements error.
func (c ErrorCode) Error() string {
	return "watchtower: " + c.String()
}

// Encode implements wire.Item.
func (c *ErrorCode) Encode(w io.Writer) (int, error) {
	v := wire.U16(*c)
	return v.Encode(w)
}

// Decode implements wire.Item. Any value is accepted.
func (c *ErrorCode) Decode(r io.Reader) error {
	var v wire.U16
	if err := v.Decode(r); err != nil {
		return err
	}
	*c = ErrorCode(v)
	return nil
}

func baseCodeName(c ErrorCode) (string, bool) {
	switch c {
	case CodeOK:
		return "CodeOK", true
	case CodeTemporaryFailure:
		return "CodeTemporaryFailure", true
	case CodePermanentFailure:
		return "CodePermanentFailure", true
	default:
		return "", false
	}
}

// CreateSessionCode is the optional result of a CreateSession request. The
// zero value, CreateSessionCodeOK, means no error and is encoded as CodeOK.
type CreateSessionCode uint16

const (
	// CreateSessionCodeOK means the session was created.
	CreateSessionCodeOK CreateSessionCode = 0

	// CreateSessionCodeAlreadyExists is returned when a session is already
	// active for the client's key. The reply carries the reward address in
	// case the original reply was lost.
	CreateSessionCodeAlreadyExists CreateSessionCode = 60

	// CreateSessionCodeRejectMaxUpdates means the tower rejected the
	// proposed maximum number of updates.
	CreateSessionCodeRejectMaxUpdates CreateSessionCode = 61

	// CreateSessionCodeRejectRewardRate means the tower rejected the
	// proposed reward rate.
	CreateSessionCodeRejectRewardRate CreateSessionCode = 62

	// CreateSessionCodeRejectSweepFeeRate means the tower rejected the
	// proposed sweep fee rate.
	CreateSessionCodeRejectSweepFeeRate CreateSessionCode = 63

	// CreateSessionCodeRejectBlobType means the tower does not support the
	// proposed blob type.
	CreateSessionCodeRejectBlobType CreateSessionCode = 64
)

func (c CreateSessionCode) name() (string, bool) {
	switch c {
	case CreateSessionCodeAlreadyExists:
		return "CreateSessionCodeAlreadyExists", true
	case CreateSessionCodeRejectMaxUpdates:
		return "CreateSessionCodeRejectMaxUpdates", true
	case CreateSessionCodeRejectRewardRate:
		return "CreateSessionCodeRejectRewardRate", true
	case CreateSessionCodeRejectSweepFeeRate:
		return "CreateSessionCodeRejectSweepFeeRate", true
	case CreateSessionCodeRejectBlobType:
		return "CreateSessionCodeRejectBlobType", true
	default:
		return "", false
	}
}

// IsOK reports whether c carries no error.
func (c CreateSessionCode) IsOK() bool { return c == CreateSessionCodeOK }

// ErrorCode returns c as a raw code.
func (c CreateSessionCode) ErrorCode() ErrorCode { return ErrorCode(c) }

// String returns the code name.
func (c CreateSessionCode) String() string { return ErrorCode(c).String() }

// Encode implements wire.Item.
func (c *CreateSessionCode) Encode(w io.Writer) (int, error) {
	return encodeCode(w, ErrorCode(*c))
}

// Decode implements wire.Item. It accepts CodeOK and the CreateSession
// namespace only.
func (c *CreateSessionCode) Decode(r io.Reader) error {
	code, err := decodeCode(r, "create session", func(c ErrorCode) bool {
		_, ok := CreateSessionCode(c).name()
		return ok
	})
	if err != nil {
		return err
	}
	*c = CreateSessionCode(code)
	return nil
}

// StateUpdateCode is the optional result of a StateUpdate. The zero value,
// StateUpdateCodeOK, means no error.
type StateUpdateCode uint16

const (
	// StateUpdateCodeOK means the update was accepted.
	StateUpdateCodeOK StateUpdateCode = 0

	// StateUpdateCodeClientBehind means the client's sequence number is
	// behind the tower's LastApplied. The client should resume from the
	// LastApplied in the reply.
	//
	// Repeated occurrences may be an attempt to siphon updates from the
	// client and can be grounds for abandoning the tower.
	StateUpdateCodeClientBehind StateUpdateCode = 70

	// StateUpdateCodeMaxUpdatesExceeded means the sequence number exceeds
	// the session's negotiated MaxUpdates.
	StateUpdateCodeMaxUpdatesExceeded StateUpdateCode = 71

	// StateUpdateCodeSeqNumOutOfOrder means the update did not increment
	// the sequence number by one.
	StateUpdateCodeSeqNumOutOfOrder StateUpdateCode = 72
)

func (c StateUpdateCode) name() (string, bool) {
	switch c {
	case StateUpdateCodeClientBehind:
		return "StateUpdateCodeClientBehind", true
	case StateUpdateCodeMaxUpdatesExceeded:
		return "StateUpdateCodeMaxUpdatesExceeded", true
	case StateUpdateCodeSeqNumOutOfOrder:
		return "StateUpdateCodeSeqNumOutOfOrder", true
	default:
		return "", false
	}
}

// IsOK reports whether c carries no error.
func (c StateUpdateCode) IsOK() bool { return c == StateUpdateCodeOK }

// ErrorCode returns c as a raw code.
func (c StateUpdateCode) ErrorCode() ErrorCode { return ErrorCode(c) }

// String returns the code name.
func (c StateUpdateCode) String() string { return ErrorCode(c).String() }

// Encode implements wire.Item.
func (c *StateUpdateCode) Encode(w io.Writer) (int, error) {
	return encodeCode(w, ErrorCode(*c))
}

// Decode implements wire.Item. It accepts CodeOK and the StateUpdate
// namespace only.
func (c *StateUpdateCode) Decode(r io.Reader) error {
	code, err := decodeCode(r, "state update", func(c ErrorCode) bool {
		_, ok := StateUpdateCode(c).name()
		return ok
	})
	if err != nil {
		return err
	}
	*c = StateUpdateCode(code)
	return nil
}

// DeleteSessionCode is the optional result of a DeleteSession request. The
// zero value, DeleteSessionCodeOK, means no error.
type DeleteSessionCode uint16

const (
	// DeleteSessionCodeOK means the session was deleted.
	DeleteSessionCodeOK DeleteSessionCode = 0

	// DeleteSessionCodeNotFound means the tower does not know the session.
	// It may already have been deleted by a request whose reply was lost.
	DeleteSessionCodeNotFound DeleteSessionCode = 80
)

func (c DeleteSessionCode) name() (string, bool) {
	if c == DeleteSessionCodeNotFound {
		return "DeleteSessionCodeNotFound", true
	}
	return "", false
}

// IsOK reports whether c carries no error.
func (c DeleteSessionCode) IsOK() bool { return c == DeleteSessionCodeOK }

// ErrorCode returns c as a raw code.
func (c DeleteSessionCode) ErrorCode() ErrorCode { return ErrorCode(c) }

// String returns the code name.
func (c DeleteSessionCode) String() string { return ErrorCode(c).String() }

// Encode implements wire.Item.
func (c *DeleteSessionCode) Encode(w io.Writer) (int, error) {
	return encodeCode(w, ErrorCode(*c))
}

// Decode implements wire.Item. It accepts CodeOK and the DeleteSession
// namespace only.
func (c *DeleteSessionCode) Decode(r io.Reader) error {
	code, err := decodeCode(r, "delete session", func(c ErrorCode) bool {
		_, ok := DeleteSessionCode(c).name()
		return ok
	})
	if err != nil {
		return err
	}
	*c = DeleteSessionCode(code)
	return nil
}

func encodeCode(w io.Writer, c ErrorCode) (int, error) {
	return c.Encode(w)
}

// decodeCode reads a raw code and maps CodeOK to zero. Any other value must
// satisfy inRange.
func decodeCode(r io.Reader, namespace string, inRange func(ErrorCode) bool) (ErrorCode, error) {
	var c ErrorCode
	if err := c.Decode(r); err != nil {
		return 0, err
	}
	if c.IsOK() {
		return 0, nil
	}
	if !inRange(c) {
		return 0, wire.InvalidData("code %d outside %s namespace", uint16(c), namespace)
	}
	return c, nil
}

var (
	_ wire.Item = (*ErrorCode)(nil)
	_ wire.Item = (*CreateSessionCode)(nil)
	_ wire.Item = (*StateUpdateCode)(nil)
	_ wire.Item = (*DeleteSessionCode)(nil)
	_ error     = CodeTemporaryFailure
)
