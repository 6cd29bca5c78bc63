package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeDecodeFrameEvent(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 30, 0, 123456789, time.UTC)
	event := Event{
		Timestamp:    ts,
		ConnectionID: "conn-1",
		Direction:    DirectionOut,
		Layer:        LayerTransport,
		Category:     CategoryMessage,
		LocalRole:    RoleTower,
		RemoteAddr:   "10.0.0.2:9911",
		Frame:        &FrameEvent{Size: 42, Data: []byte{0x02, 0x58}, Truncated: true},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, ts)
	}
	if decoded.ConnectionID != "conn-1" {
		t.Errorf("ConnectionID: got %q", decoded.ConnectionID)
	}
	if decoded.Direction != DirectionOut || decoded.Layer != LayerTransport {
		t.Errorf("Direction/Layer: got %v/%v", decoded.Direction, decoded.Layer)
	}
	if decoded.LocalRole != RoleTower {
		t.Errorf("LocalRole: got %v, want TOWER", decoded.LocalRole)
	}
	if decoded.RemoteAddr != "10.0.0.2:9911" {
		t.Errorf("RemoteAddr: got %q", decoded.RemoteAddr)
	}
	if decoded.Frame == nil {
		t.Fatal("Frame is nil")
	}
	if decoded.Frame.Size != 42 || !decoded.Frame.Truncated {
		t.Errorf("Frame: got %+v", decoded.Frame)
	}
	if !bytes.Equal(decoded.Frame.Data, []byte{0x02, 0x58}) {
		t.Errorf("Frame.Data: got %x", decoded.Frame.Data)
	}
	if decoded.Message != nil || decoded.StateChange != nil || decoded.Error != nil {
		t.Error("unexpected payload set")
	}
}

func TestEncodeDecodeMessageEvent(t *testing.T) {
	code := uint16(70)
	last := uint16(4)
	event := Event{
		Timestamp: time.Now(),
		Layer:     LayerWire,
		Message: &MessageEvent{
			Type:        605,
			Name:        "StateUpdateReply",
			Size:        6,
			Code:        &code,
			LastApplied: &last,
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	m := decoded.Message
	if m == nil {
		t.Fatal("Message is nil")
	}
	if m.Type != 605 || m.Name != "StateUpdateReply" || m.Size != 6 {
		t.Errorf("Message: got %+v", m)
	}
	if m.Code == nil || *m.Code != 70 {
		t.Errorf("Code: got %v, want 70", m.Code)
	}
	if m.LastApplied == nil || *m.LastApplied != 4 {
		t.Errorf("LastApplied: got %v, want 4", m.LastApplied)
	}
	if m.SeqNum != nil {
		t.Errorf("SeqNum: got %v, want nil", *m.SeqNum)
	}
}

func TestEncodeEventIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ConnectionID: "c",
		StateChange:  &StateChangeEvent{Entity: StateEntitySession, OldState: "A", NewState: "B", Reason: "r"},
	}
	a, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	b, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("encodings differ:\n%x\n%x", a, b)
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, id := range []string{"a", "b", "c"} {
		if err := enc.Encode(Event{ConnectionID: id}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for _, want := range []string{"a", "b", "c"} {
		var event Event
		if err := dec.Decode(&event); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if event.ConnectionID != want {
			t.Errorf("ConnectionID: got %q, want %q", event.ConnectionID, want)
		}
	}
}
