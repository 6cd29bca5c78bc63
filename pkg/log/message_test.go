package log

import (
	"strings"
	"testing"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"
)

func TestNewMessageEventStateUpdate(t *testing.T) {
	msg := &wtwire.StateUpdate{
		SeqNum:        7,
		LastApplied:   5,
		IsComplete:    1,
		EncryptedBlob: wire.Buffer{1, 2, 3},
	}
	ev := NewMessageEvent(msg, 30)

	if ev.Type != uint16(wtwire.MsgStateUpdate) || ev.Name != "StateUpdate" || ev.Size != 30 {
		t.Errorf("header: got %+v", ev)
	}
	if ev.SeqNum == nil || *ev.SeqNum != 7 {
		t.Errorf("SeqNum: got %v, want 7", ev.SeqNum)
	}
	if ev.LastApplied == nil || *ev.LastApplied != 5 {
		t.Errorf("LastApplied: got %v, want 5", ev.LastApplied)
	}
	if ev.Code != nil {
		t.Errorf("Code: got %v, want nil", *ev.Code)
	}
	if !strings.Contains(ev.Summary, "complete=true") || !strings.Contains(ev.Summary, "blob=3 bytes") {
		t.Errorf("Summary: got %q", ev.Summary)
	}
}

func TestNewMessageEventCodes(t *testing.T) {
	tests := []struct {
		name string
		msg  wtwire.Message
		code uint16
	}{
		{"Error", wtwire.NewErrorMessage(wtwire.CodePermanentFailure, nil), 50},
		{"CreateSessionReply", &wtwire.CreateSessionReply{Code: wtwire.CreateSessionCodeRejectBlobType}, 64},
		{"StateUpdateReply", &wtwire.StateUpdateReply{Code: wtwire.StateUpdateCodeClientBehind}, 70},
		{"DeleteSessionReply", &wtwire.DeleteSessionReply{Code: wtwire.DeleteSessionCodeNotFound}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := NewMessageEvent(tt.msg, 0)
			if ev.Name != tt.name {
				t.Errorf("Name: got %q, want %q", ev.Name, tt.name)
			}
			if ev.Code == nil || *ev.Code != tt.code {
				t.Errorf("Code: got %v, want %d", ev.Code, tt.code)
			}
		})
	}
}

func TestNewMessageEventInit(t *testing.T) {
	msg := wtwire.NewInitMessage(wire.NewFeatureVector(wire.DataLossProtectOptional), wire.ChainHash{})
	ev := NewMessageEvent(msg, 38)
	if !strings.Contains(ev.Summary, "data-loss-protect-optional") {
		t.Errorf("Summary: got %q", ev.Summary)
	}
	if ev.Code != nil || ev.SeqNum != nil || ev.LastApplied != nil {
		t.Errorf("unexpected optional fields: %+v", ev)
	}
}

func TestNewMessageEventDeleteSession(t *testing.T) {
	ev := NewMessageEvent(&wtwire.DeleteSession{}, 2)
	if ev.Type != 606 || ev.Summary != "" {
		t.Errorf("got %+v", ev)
	}
}
