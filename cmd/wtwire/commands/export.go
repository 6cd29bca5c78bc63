package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
)

// RunExport converts the capture at path to jsonl or csv, writing to the
// file output or to stdout if output is empty.
func RunExport(path, format, output string) error {
	var export func(*log.Reader, io.Writer) error
	switch format {
	case "jsonl":
		export = exportJSONL
	case "csv":
		export = exportCSV
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return export(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	enc := json.NewEncoder(w)
	return forEach(reader, func(event log.Event) error {
		return enc.Encode(event)
	})
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp", "connection_id", "direction", "role", "layer", "category", "kind", "msg_type", "size", "code", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	err := forEach(reader, func(event log.Event) error {
		kind, msgType, size, code, detail := "unknown", "", "", "", ""
		switch {
		case event.Frame != nil:
			kind = "frame"
			size = strconv.Itoa(event.Frame.Size)
		case event.Message != nil:
			kind = "message"
			msgType = event.Message.Name
			size = strconv.Itoa(event.Message.Size)
			if event.Message.Code != nil {
				code = strconv.Itoa(int(*event.Message.Code))
			}
			detail = event.Message.Summary
		case event.StateChange != nil:
			kind = "state"
			detail = event.StateChange.OldState + " -> " + event.StateChange.NewState
		case event.Error != nil:
			kind = "error"
			detail = event.Error.Message
		}

		return cw.Write([]string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.ConnectionID,
			event.Direction.String(),
			event.LocalRole.String(),
			event.Layer.String(),
			event.Category.String(),
			kind,
			msgType,
			size,
			code,
			detail,
		})
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// forEach calls fn for every remaining event.
func forEach(reader *log.Reader, fn func(log.Event) error) error {
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}
