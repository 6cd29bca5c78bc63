package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	var label string
	switch {
	case event.Frame != nil:
		label = "Frame"
	case event.Message != nil:
		label = event.Message.Name
	case event.StateChange != nil:
		label = "State"
	case event.Error != nil:
		label = "Error"
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [conn:%s] %-3s %s %s %s\n", ts, shortenConnID(event.ConnectionID),
		event.Direction, event.LocalRole, event.Layer, label)

	switch {
	case event.Frame != nil:
		fmt.Fprintf(w, "  Size: %d bytes\n", event.Frame.Size)
		if len(event.Frame.Data) > 0 {
			fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(event.Frame.Data))
			if event.Frame.Truncated {
				fmt.Fprint(w, " (truncated)")
			}
			fmt.Fprintln(w)
		}
	case event.Message != nil:
		formatMessage(w, event.Message)
	case event.StateChange != nil:
		sc := event.StateChange
		fmt.Fprintf(w, "  Entity: %s\n", sc.Entity)
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
		if sc.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "  Layer: %s\n", event.Error.Layer)
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Code != nil {
			fmt.Fprintf(w, "  Code: %d\n", *event.Error.Code)
		}
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseLayerFlag parses a layer name (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "wire":
		return log.LayerWire, nil
	case "session":
		return log.LayerSession, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport, wire, or session)", s)
	}
}

// ParseDirectionFlag parses a direction name (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message, state, or error)", s)
	}
}

// ParseRoleFlag parses a role name (case-insensitive).
func ParseRoleFlag(s string) (log.Role, error) {
	switch strings.ToLower(s) {
	case "client":
		return log.RoleClient, nil
	case "tower":
		return log.RoleTower, nil
	default:
		return 0, fmt.Errorf("invalid role: %s (must be client or tower)", s)
	}
}

// ParseMessageTypeFlag accepts a message name such as "StateUpdate"
// (case-insensitive) or a decimal type number.
func ParseMessageTypeFlag(s string) (uint16, error) {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return uint16(n), nil
	}
	for t := wtwire.MsgInit; t <= wtwire.MsgDeleteSessionReply; t++ {
		if strings.EqualFold(t.String(), s) {
			return uint16(t), nil
		}
	}
	return 0, fmt.Errorf("invalid message type: %s", s)
}

// RunView writes every event in the capture at path that matches filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
