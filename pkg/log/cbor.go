package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Encoder and decoder modes for capture files. Encoding is canonical so
// identical events produce identical bytes; timestamps keep nanoseconds.
var (
	eventEncMode cbor.EncMode
	eventDecMode cbor.DecMode
)

func init() {
	var err error

	eventEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: cbor encoder mode: %v", err))
	}

	// Capture files may be written by newer versions; unknown keys are ignored.
	eventDecMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: cbor decoder mode: %v", err))
	}
}

// EncodeEvent encodes an Event to CBOR.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes a single CBOR-encoded Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns a CBOR encoder for events that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder returns a CBOR decoder for events that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
