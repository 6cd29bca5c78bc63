// Package log captures watchtower protocol events for later inspection.
//
// Protocol capture is separate from operational logging (slog). It records a
// machine-readable trace of every frame and message on a connection so that
// a session can be replayed and filtered after the fact.
//
//	// Console output during development
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// Binary capture file
//	fl, _ := log.NewFileLogger("/var/log/wtclient/tower.wtlog")
//	cfg.ProtocolLogger = fl
//
//	// Both
//	cfg.ProtocolLogger = log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// Events are recorded at three layers: raw frames (FrameEvent), decoded
// messages (MessageEvent) and session state (StateChangeEvent). Failures at
// any layer are ErrorEventData.
//
// Capture files are a sequence of CBOR-encoded events with integer map keys.
// The wtwire CLI reads and filters them.
package log
