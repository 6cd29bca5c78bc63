package wire

import (
	"errors"
	"fmt"
	"io"
)

// Codec errors.
var (
	// ErrInvalidData indicates bytes that cannot be interpreted: a type tag
	// mismatch, an unknown enumerated value, reserved bits that must be
	// clear, or an extension record whose length does not fit its payload.
	ErrInvalidData = errors.New("invalid data")

	// ErrInvalidSchema indicates a message whose extension list is not
	// strictly ascending by tag.
	ErrInvalidSchema = errors.New("invalid message schema")
)

// invalidData wraps ErrInvalidData with context.
func invalidData(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, fmt.Sprintf(format, args...))
}

// InvalidData returns an error wrapping ErrInvalidData, for use by item
// implementations outside this package.
func InvalidData(format string, args ...any) error {
	return invalidData(format, args...)
}

// ReadFull reads exactly len(buf) bytes. A stream that ends before any byte
// is read is reported as io.ErrUnexpectedEOF, since every caller expects a
// value to be present. Items outside this package use it for fixed-width
// fields.
func ReadFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}
