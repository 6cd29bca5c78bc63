package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logJSON(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsFrameEvent(t *testing.T) {
	entry := logJSON(t, Event{
		Timestamp:    time.Now(),
		ConnectionID: "conn-123",
		Direction:    DirectionIn,
		Layer:        LayerTransport,
		Category:     CategoryMessage,
		Frame:        &FrameEvent{Size: 256, Data: []byte{0x01, 0x02}},
	})

	if entry["conn_id"] != "conn-123" {
		t.Errorf("conn_id: got %v", entry["conn_id"])
	}
	if entry["direction"] != "IN" {
		t.Errorf("direction: got %v", entry["direction"])
	}
	if entry["layer"] != "TRANSPORT" {
		t.Errorf("layer: got %v", entry["layer"])
	}
	if entry["frame_size"] != float64(256) {
		t.Errorf("frame_size: got %v", entry["frame_size"])
	}
	if entry["msg"] != "protocol" {
		t.Errorf("msg: got %v", entry["msg"])
	}
}

func TestSlogAdapterLogsMessageEvent(t *testing.T) {
	code := uint16(62)
	last := uint16(3)
	entry := logJSON(t, Event{
		ConnectionID: "conn-1",
		Direction:    DirectionOut,
		Layer:        LayerWire,
		LocalRole:    RoleTower,
		RemoteAddr:   "127.0.0.1:9911",
		Message: &MessageEvent{
			Type:        603,
			Name:        "CreateSessionReply",
			Size:        9,
			Code:        &code,
			LastApplied: &last,
			Summary:     "code=CreateSessionCodeRejectRewardRate",
		},
	})

	want := map[string]any{
		"role":         "TOWER",
		"remote":       "127.0.0.1:9911",
		"msg_type":     float64(603),
		"msg_name":     "CreateSessionReply",
		"msg_size":     float64(9),
		"code":         float64(62),
		"last_applied": float64(3),
		"summary":      "code=CreateSessionCodeRejectRewardRate",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["seq_num"]; ok {
		t.Error("seq_num should be omitted")
	}
}

func TestSlogAdapterLogsStateAndError(t *testing.T) {
	entry := logJSON(t, Event{
		Category:    CategoryState,
		StateChange: &StateChangeEvent{Entity: StateEntitySession, OldState: "ACTIVE", NewState: "DELETED", Reason: "delete_session"},
	})
	if entry["entity"] != "SESSION" || entry["new_state"] != "DELETED" || entry["reason"] != "delete_session" {
		t.Errorf("state entry: got %v", entry)
	}

	code := 50
	entry = logJSON(t, Event{
		Category: CategoryError,
		Error:    &ErrorEventData{Layer: LayerWire, Message: "boom", Code: &code, Context: "receive"},
	})
	if entry["error_layer"] != "WIRE" || entry["error_msg"] != "boom" || entry["error_code"] != float64(50) {
		t.Errorf("error entry: got %v", entry)
	}
}

func TestSlogAdapterNilUsesDefault(t *testing.T) {
	if NewSlogAdapter(nil).logger == nil {
		t.Error("expected default logger")
	}
}
