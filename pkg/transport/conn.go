package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"
)

// ConnectionState is the lifecycle state of a Conn.
type ConnectionState int32

const (
	// StateOpen is a connection that has not completed the Init exchange.
	StateOpen ConnectionState = iota

	// StateReady is a connection whose peers agreed on the chain.
	StateReady

	// StateClosed is a closed connection.
	StateClosed
)

// String returns the state name.
func (s ConnectionState) String() string {
	switch s {
	case StateOpen:
		return "OPEN"
	case StateReady:
		return "READY"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrConnectionClosed is returned by operations on a closed Conn.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrUnexpectedMessage is returned by Handshake when the peer's first
	// message is not Init.
	ErrUnexpectedMessage = errors.New("unexpected message")
)

// ConnConfig configures a Conn.
type ConnConfig struct {
	// MaxMessageSize bounds encoded messages in both directions
	// (default: DefaultMaxMessageSize).
	MaxMessageSize uint32

	// Role is the local side, recorded in protocol events.
	Role log.Role

	// ReadTimeout bounds each Receive when the stream supports deadlines
	// (0 = no timeout).
	ReadTimeout time.Duration

	// WriteTimeout bounds each Send when the stream supports deadlines
	// (0 = no timeout).
	WriteTimeout time.Duration

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger records frames, messages and state changes (optional).
	ProtocolLogger log.Logger

	// Metrics counts traffic (optional).
	Metrics *Metrics
}

// DefaultConnConfig returns the default connection configuration.
func DefaultConnConfig() ConnConfig {
	return ConnConfig{
		MaxMessageSize: DefaultMaxMessageSize,
		Role:           log.RoleClient,
	}
}

type deadliner interface {
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// Conn exchanges watchtower messages over a byte stream, one message per
// frame. Send may be called concurrently with Receive; concurrent Receive
// calls are not allowed.
type Conn struct {
	config ConnConfig
	id     string
	rw     io.ReadWriter
	framer *Framer
	remote string

	logger   *slog.Logger
	protocol log.Logger

	state     atomic.Int32
	closeOnce sync.Once
}

// NewConn wraps rw. If rw is a net.Conn its deadlines and remote address
// are used. A stream that is neither an io.Closer nor supports deadlines
// cannot be interrupted: a blocked Send or Receive returns only when the
// stream itself does.
func NewConn(rw io.ReadWriter, config ConnConfig) *Conn {
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = DefaultMaxMessageSize
	}

	c := &Conn{
		config:   config,
		id:       uuid.New().String(),
		rw:       rw,
		framer:   NewFramerWithMaxSize(rw, config.MaxMessageSize),
		logger:   config.Logger,
		protocol: log.OrNoop(config.ProtocolLogger),
	}
	if nc, ok := rw.(net.Conn); ok && nc.RemoteAddr() != nil {
		c.remote = nc.RemoteAddr().String()
	}
	if config.ProtocolLogger != nil {
		c.framer.SetLogger(config.ProtocolLogger, c.id)
		c.framer.setRole(config.Role)
	}
	c.state.Store(int32(StateOpen))
	return c
}

// ID returns the connection identifier used in log events.
func (c *Conn) ID() string {
	return c.id
}

// State returns the current connection state.
func (c *Conn) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

// RemoteAddr returns the peer address, or "" if unknown.
func (c *Conn) RemoteAddr() string {
	return c.remote
}

// Send encodes msg and writes it as one frame.
func (c *Conn) Send(msg wtwire.Message) error {
	if c.State() == StateClosed {
		return ErrConnectionClosed
	}

	data, err := wtwire.Encode(msg)
	if err != nil {
		c.logError(err, "encode "+wtwire.TypeOf(msg).String())
		return fmt.Errorf("encode %s: %w", wtwire.TypeOf(msg), err)
	}

	if d, ok := c.rw.(deadliner); ok && c.config.WriteTimeout > 0 {
		_ = d.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
		defer func() { _ = d.SetWriteDeadline(time.Time{}) }()
	}

	if err := c.framer.WriteFrame(data); err != nil {
		c.logError(err, "send "+wtwire.TypeOf(msg).String())
		return err
	}

	c.config.Metrics.sent(wtwire.TypeOf(msg).String(), len(data))
	c.logMessage(msg, len(data), log.DirectionOut)
	if c.logger != nil {
		c.logger.Debug("Send: message written",
			"conn_id", c.id,
			"type", wtwire.TypeOf(msg).String(),
			"size", len(data))
	}
	return nil
}

// Receive reads and decodes the next message. A stream that ends cleanly
// between messages yields io.EOF. Decode failures wrap wire.ErrInvalidData
// or io.ErrUnexpectedEOF; the frame is consumed either way, so the caller
// may keep reading.
func (c *Conn) Receive() (wtwire.Message, error) {
	if c.State() == StateClosed {
		return nil, ErrConnectionClosed
	}

	if d, ok := c.rw.(deadliner); ok && c.config.ReadTimeout > 0 {
		_ = d.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
		defer func() { _ = d.SetReadDeadline(time.Time{}) }()
	}

	data, err := c.framer.ReadFrame()
	if err != nil {
		if err != io.EOF {
			c.config.Metrics.decodeFailed(err)
			c.logError(err, "receive frame")
		}
		return nil, err
	}

	msg, err := wtwire.Decode(data)
	if err != nil {
		c.config.Metrics.decodeFailed(err)
		c.logError(err, "decode frame")
		if c.logger != nil {
			c.logger.Debug("Receive: failed to decode message",
				"conn_id", c.id,
				"size", len(data),
				"error", err)
		}
		return nil, err
	}

	c.config.Metrics.received(wtwire.TypeOf(msg).String(), len(data))
	c.logMessage(msg, len(data), log.DirectionIn)
	return msg, nil
}

// Handshake exchanges Init messages and checks that the peer operates on
// the same chain. Both sides send before reading, so either may call it
// first. Cancelling ctx aborts the exchange only if the stream supports
// deadlines. A failed handshake closes the connection. If the stream can be
// neither closed nor given deadlines, a failed handshake returns without
// waiting for the pending send of the local Init.
func (c *Conn) Handshake(ctx context.Context, local *wtwire.Init) (*wtwire.Init, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.State() != StateOpen {
		return nil, fmt.Errorf("handshake in state %s", c.State())
	}

	_, interruptible := c.rw.(io.Closer)
	stop := func() bool { return true }
	if d, ok := c.rw.(deadliner); ok {
		interruptible = true
		stop = context.AfterFunc(ctx, func() {
			past := time.Unix(1, 0)
			_ = d.SetReadDeadline(past)
			_ = d.SetWriteDeadline(past)
		})
	}

	sent := make(chan error, 1)
	go func() { sent <- c.Send(local) }()

	remote, err := c.receiveInit(local)
	if err != nil {
		stop()
		c.Close()
		if interruptible {
			<-sent
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("handshake: %w", err)
	}
	if err := <-sent; err != nil {
		stop()
		c.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	if !stop() {
		// Cancelled after the exchange; the deadlines are already poisoned.
		c.Close()
		return nil, ctx.Err()
	}

	c.setState(StateOpen, StateReady, "init exchanged")
	return remote, nil
}

func (c *Conn) receiveInit(local *wtwire.Init) (*wtwire.Init, error) {
	msg, err := c.Receive()
	if err != nil {
		return nil, err
	}
	remote, ok := msg.(*wtwire.Init)
	if !ok {
		return nil, fmt.Errorf("%w: %s before Init", ErrUnexpectedMessage, wtwire.TypeOf(msg))
	}
	if err := local.CheckRemoteInit(remote); err != nil {
		return nil, err
	}
	return remote, nil
}

// Close closes the connection and, if the stream is an io.Closer, the
// stream. Closing twice is a no-op.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		old := ConnectionState(c.state.Swap(int32(StateClosed)))
		c.emitState(old, StateClosed, "")
		if closer, ok := c.rw.(io.Closer); ok {
			err = closer.Close()
		}
	})
	return err
}

func (c *Conn) setState(from, to ConnectionState, reason string) {
	if c.state.CompareAndSwap(int32(from), int32(to)) {
		c.emitState(from, to, reason)
	}
}

func (c *Conn) emitState(from, to ConnectionState, reason string) {
	c.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Layer:        log.LayerSession,
		Category:     log.CategoryState,
		LocalRole:    c.config.Role,
		RemoteAddr:   c.remote,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityConnection,
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
}

func (c *Conn) logMessage(msg wtwire.Message, size int, dir log.Direction) {
	c.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Direction:    dir,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		LocalRole:    c.config.Role,
		RemoteAddr:   c.remote,
		Message:      log.NewMessageEvent(msg, size),
	})
}

func (c *Conn) logError(err error, op string) {
	c.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Layer:        log.LayerWire,
		Category:     log.CategoryError,
		LocalRole:    c.config.Role,
		RemoteAddr:   c.remote,
		Error: &log.ErrorEventData{
			Layer:   log.LayerWire,
			Message: err.Error(),
			Context: op,
		},
	})
}
