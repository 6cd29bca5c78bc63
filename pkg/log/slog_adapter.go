package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter writing to logger, or to slog.Default
// if logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("conn_id", event.ConnectionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
		slog.String("role", event.LocalRole.String()),
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}

	switch {
	case event.Frame != nil:
		attrs = append(attrs,
			slog.Int("frame_size", event.Frame.Size),
			slog.Bool("truncated", event.Frame.Truncated),
		)
	case event.Message != nil:
		m := event.Message
		attrs = append(attrs,
			slog.Uint64("msg_type", uint64(m.Type)),
			slog.String("msg_name", m.Name),
			slog.Int("msg_size", m.Size),
		)
		if m.Code != nil {
			attrs = append(attrs, slog.Uint64("code", uint64(*m.Code)))
		}
		if m.SeqNum != nil {
			attrs = append(attrs, slog.Uint64("seq_num", uint64(*m.SeqNum)))
		}
		if m.LastApplied != nil {
			attrs = append(attrs, slog.Uint64("last_applied", uint64(*m.LastApplied)))
		}
		if m.Summary != "" {
			attrs = append(attrs, slog.String("summary", m.Summary))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
