package log

import (
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileExt is the conventional extension of capture files.
const FileExt = ".wtlog"

// FileLogger appends CBOR-encoded events to a file or stream.
// It is safe for concurrent use.
type FileLogger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	encoder *cbor.Encoder
	closed  bool
}

// NewFileLogger opens path for appending, creating it with mode 0644 if
// needed.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	l := NewStreamLogger(f)
	l.closer = f
	return l, nil
}

// NewStreamLogger writes events to w. Close does not close w.
func NewStreamLogger(w io.Writer) *FileLogger {
	return &FileLogger{w: w, encoder: NewEncoder(w)}
}

// Log writes an event. Encoding errors are dropped so that capture never
// disrupts the connection being observed.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	_ = l.encoder.Encode(event)
}

// Close stops logging and closes the file. Later calls to Log are ignored
// and later calls to Close return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

var _ Logger = (*FileLogger)(nil)
