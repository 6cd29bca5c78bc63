// Package transport carries watchtower messages over a byte stream.
//
// Each encoded message travels in one frame:
//
//	┌────────────────────┬──────────────────────────────┐
//	│ length (4B, BE)    │ message (type tag + fields)  │
//	└────────────────────┴──────────────────────────────┘
//
// The stream is assumed to be secured already; this package adds no
// authentication or encryption. A Conn wraps any io.ReadWriter, with
// deadlines and addresses taken from a net.Conn when available, and
// records frames, messages and state changes to an optional
// log.Logger. Metrics, when configured, count traffic per message type.
//
// A typical exchange opens with Handshake, which swaps Init messages and
// rejects peers on a different chain:
//
//	conn, err := transport.Dial(ctx, "tower.example:9911", transport.DefaultConnConfig())
//	if err != nil { ... }
//	remote, err := conn.Handshake(ctx, wtwire.NewInitMessage(features, chainHash))
package transport
