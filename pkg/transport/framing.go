package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
)

const (
	// LengthPrefixSize is the size of the frame length prefix in bytes.
	LengthPrefixSize = 4

	// DefaultMaxMessageSize matches the largest payload a Lightning peer
	// connection carries in one message.
	DefaultMaxMessageSize = 65535

	// MaxLogFrameDataSize caps the payload bytes copied into frame events.
	MaxLogFrameDataSize = 4096
)

var (
	// ErrMessageTooLarge indicates a frame longer than the configured maximum.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrMessageEmpty indicates a zero-length frame. Every watchtower message
	// carries at least its type tag.
	ErrMessageEmpty = errors.New("message is empty")

	// ErrFrameTruncated indicates the stream ended inside a frame.
	ErrFrameTruncated = errors.New("frame truncated")
)

// frameTap records frames to a protocol logger.
type frameTap struct {
	logger log.Logger
	connID string
	role   log.Role
}

func (t *frameTap) record(payload []byte, dir log.Direction) {
	if t.logger == nil {
		return
	}
	data, truncated := payload, false
	if len(data) > MaxLogFrameDataSize {
		data, truncated = data[:MaxLogFrameDataSize], true
	}
	t.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: t.connID,
		Direction:    dir,
		Layer:        log.LayerTransport,
		Category:     log.CategoryMessage,
		LocalRole:    t.role,
		Frame: &log.FrameEvent{
			Size:      FrameSize(len(payload)),
			Data:      data,
			Truncated: truncated,
		},
	})
}

// FrameWriter writes length-prefixed frames. It is safe for concurrent use.
type FrameWriter struct {
	mu      sync.Mutex
	w       io.Writer
	maxSize uint32
	tap     frameTap
}

// NewFrameWriter returns a writer enforcing DefaultMaxMessageSize.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return NewFrameWriterWithMaxSize(w, DefaultMaxMessageSize)
}

// NewFrameWriterWithMaxSize returns a writer enforcing maxSize.
func NewFrameWriterWithMaxSize(w io.Writer, maxSize uint32) *FrameWriter {
	return &FrameWriter{w: w, maxSize: maxSize}
}

// SetLogger records written frames to logger under connID. Pass nil to
// stop recording.
func (fw *FrameWriter) SetLogger(logger log.Logger, connID string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.tap.logger = logger
	fw.tap.connID = connID
}

// WriteFrame writes data as one frame. The prefix and payload go out in a
// single write so that concurrent writers never interleave.
func (fw *FrameWriter) WriteFrame(data []byte) error {
	if len(data) == 0 {
		return ErrMessageEmpty
	}
	if uint64(len(data)) > uint64(fw.maxSize) {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, len(data), fw.maxSize)
	}

	frame := make([]byte, LengthPrefixSize+len(data))
	binary.BigEndian.PutUint32(frame, uint32(len(data)))
	copy(frame[LengthPrefixSize:], data)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, err := fw.w.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	fw.tap.record(data, log.DirectionOut)
	return nil
}

// FrameReader reads length-prefixed frames. It is not safe for concurrent
// use.
type FrameReader struct {
	r       io.Reader
	maxSize uint32
	prefix  [LengthPrefixSize]byte
	tap     frameTap
}

// NewFrameReader returns a reader enforcing DefaultMaxMessageSize.
func NewFrameReader(r io.Reader) *FrameReader {
	return NewFrameReaderWithMaxSize(r, DefaultMaxMessageSize)
}

// NewFrameReaderWithMaxSize returns a reader enforcing maxSize.
func NewFrameReaderWithMaxSize(r io.Reader, maxSize uint32) *FrameReader {
	return &FrameReader{r: r, maxSize: maxSize}
}

// SetLogger records read frames to logger under connID. Pass nil to stop
// recording.
func (fr *FrameReader) SetLogger(logger log.Logger, connID string) {
	fr.tap.logger = logger
	fr.tap.connID = connID
}

// SetMaxMessageSize updates the maximum accepted payload size.
func (fr *FrameReader) SetMaxMessageSize(size uint32) {
	fr.maxSize = size
}

// ReadFrame returns the next frame payload. A stream that ends cleanly
// between frames yields io.EOF.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.prefix[:]); err != nil {
		switch {
		case err == io.EOF:
			return nil, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, ErrFrameTruncated
		default:
			return nil, fmt.Errorf("read length prefix: %w", err)
		}
	}

	length := binary.BigEndian.Uint32(fr.prefix[:])
	if length == 0 {
		return nil, ErrMessageEmpty
	}
	if length > fr.maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, length, fr.maxSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("read payload: %w", err)
	}

	fr.tap.record(payload, log.DirectionIn)
	return payload, nil
}

// Framer reads and writes frames over one stream.
type Framer struct {
	*FrameReader
	*FrameWriter
}

// NewFramer returns a Framer enforcing DefaultMaxMessageSize.
func NewFramer(rw io.ReadWriter) *Framer {
	return NewFramerWithMaxSize(rw, DefaultMaxMessageSize)
}

// NewFramerWithMaxSize returns a Framer enforcing maxSize in both
// directions.
func NewFramerWithMaxSize(rw io.ReadWriter, maxSize uint32) *Framer {
	return &Framer{
		FrameReader: NewFrameReaderWithMaxSize(rw, maxSize),
		FrameWriter: NewFrameWriterWithMaxSize(rw, maxSize),
	}
}

// SetLogger configures recording for both directions.
func (f *Framer) SetLogger(logger log.Logger, connID string) {
	f.FrameReader.SetLogger(logger, connID)
	f.FrameWriter.SetLogger(logger, connID)
}

// setRole tags recorded frames with the local role.
func (f *Framer) setRole(role log.Role) {
	f.FrameReader.tap.role = role
	f.FrameWriter.mu.Lock()
	f.FrameWriter.tap.role = role
	f.FrameWriter.mu.Unlock()
}

// FrameSize returns the total frame size including the length prefix.
func FrameSize(payloadSize int) int {
	return LengthPrefixSize + payloadSize
}
