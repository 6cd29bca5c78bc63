// Package commands implements the wtwire CLI commands.
package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"
)

// ParseHex decodes a hex string, ignoring whitespace and an optional 0x
// prefix.
func ParseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errors.New("empty input")
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}

// RunDecode decodes one encoded message and describes it on w. With
// asJSON set the description is a single JSON object.
func RunDecode(data []byte, asJSON bool, w io.Writer) error {
	msg, err := wtwire.Decode(data)
	if err != nil {
		return err
	}
	ev := log.NewMessageEvent(msg, len(data))
	if asJSON {
		return json.NewEncoder(w).Encode(ev)
	}
	formatMessage(w, ev)
	return nil
}

// formatMessage writes a message description.
func formatMessage(w io.Writer, ev *log.MessageEvent) {
	fmt.Fprintf(w, "%s (%d), %d bytes\n", ev.Name, ev.Type, ev.Size)
	if ev.Code != nil {
		fmt.Fprintf(w, "  Code: %s (%d)\n", wtwire.ErrorCode(*ev.Code), *ev.Code)
	}
	if ev.SeqNum != nil {
		fmt.Fprintf(w, "  SeqNum: %d\n", *ev.SeqNum)
	}
	if ev.LastApplied != nil {
		fmt.Fprintf(w, "  LastApplied: %d\n", *ev.LastApplied)
	}
	if ev.Summary != "" {
		fmt.Fprintf(w, "  %s\n", ev.Summary)
	}
}
