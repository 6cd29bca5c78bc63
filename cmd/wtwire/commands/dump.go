package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/transport"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"
)

// DumpOptions configures RunDump.
type DumpOptions struct {
	// Raw reads back-to-back messages with no frame prefix. Raw input can
	// only hold messages without extension fields, since nothing marks
	// where one message's extensions end.
	Raw bool

	// KeepGoing skips frames that fail to decode instead of stopping.
	// It has no effect on raw input.
	KeepGoing bool

	// Logger receives events for every frame and message (optional).
	Logger log.Logger

	// Direction and Role label recorded events.
	Direction log.Direction
	Role      log.Role
}

// readOnly adapts a reader for APIs that expect a stream.
type readOnly struct {
	io.Reader
}

func (readOnly) Write([]byte) (int, error) {
	return 0, errors.New("read-only stream")
}

// RunDump decodes every message in r and describes each on w. It returns
// the number of messages decoded.
func RunDump(r io.Reader, opts DumpOptions, w io.Writer) (int, error) {
	if opts.Raw {
		return dumpRaw(r, w)
	}

	conn := transport.NewConn(readOnly{r}, transport.ConnConfig{
		Role:           opts.Role,
		ProtocolLogger: directional(opts.Logger, opts.Direction),
	})

	count := 0
	for {
		msg, err := conn.Receive()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			if opts.KeepGoing && wtwireError(err) {
				fmt.Fprintf(w, "error: %v\n\n", err)
				continue
			}
			return count, fmt.Errorf("message %d: %w", count+1, err)
		}
		describe(w, msg)
		count++
	}
}

func dumpRaw(r io.Reader, w io.Writer) (int, error) {
	count := 0
	for {
		msg, err := wtwire.ReadMessage(r)
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("message %d: %w", count+1, err)
		}
		describe(w, msg)
		count++
	}
}

func describe(w io.Writer, msg wtwire.Message) {
	data, err := wtwire.Encode(msg)
	size := len(data)
	if err != nil {
		size = 0
	}
	formatMessage(w, log.NewMessageEvent(msg, size))
	fmt.Fprintln(w)
}

// wtwireError reports whether err came from decoding a complete frame, so
// the stream is still aligned on the next frame.
func wtwireError(err error) bool {
	return !errors.Is(err, transport.ErrFrameTruncated) &&
		!errors.Is(err, transport.ErrMessageTooLarge) &&
		!errors.Is(err, transport.ErrMessageEmpty)
}

// directionLogger relabels events. A dump only ever reads, but the capture
// may come from either side of the connection.
type directionLogger struct {
	next log.Logger
	dir  log.Direction
}

func (d directionLogger) Log(event log.Event) {
	if event.Category != log.CategoryState {
		event.Direction = d.dir
	}
	d.next.Log(event)
}

func directional(l log.Logger, dir log.Direction) log.Logger {
	if l == nil {
		return nil
	}
	return directionLogger{next: l, dir: dir}
}
