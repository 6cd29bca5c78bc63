package log

import (
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects events. Zero-valued criteria match everything.
type Filter struct {
	ConnectionID string
	Direction    *Direction
	Layer        *Layer
	Category     *Category

	// MessageType matches message events with this wire type. Events of
	// other kinds never match when it is set.
	MessageType *uint16

	// TimeStart matches events at or after this time.
	TimeStart *time.Time

	// TimeEnd matches events before this time.
	TimeEnd *time.Time
}

// Matches reports whether event satisfies every criterion.
func (f *Filter) Matches(event Event) bool {
	if f.ConnectionID != "" && event.ConnectionID != f.ConnectionID {
		return false
	}
	if f.Direction != nil && event.Direction != *f.Direction {
		return false
	}
	if f.Layer != nil && event.Layer != *f.Layer {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.MessageType != nil && (event.Message == nil || event.Message.Type != *f.MessageType) {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader streams events from a capture file.
type Reader struct {
	closer  io.Closer
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens a capture file and reads every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a capture file and reads events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewStreamReader(f, filter)
	r.closer = f
	return r, nil
}

// NewStreamReader reads events matching filter from r.
func NewStreamReader(r io.Reader, filter Filter) *Reader {
	return &Reader{decoder: NewDecoder(r), filter: filter}
}

// Next returns the next matching event, or io.EOF at the end of the input.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file, if the Reader opened one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
