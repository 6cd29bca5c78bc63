package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    []byte
		wantErr bool
	}{
		{"025f0050", []byte{0x02, 0x5f, 0x00, 0x50}, false},
		{"0x025F 0050\n", []byte{0x02, 0x5f, 0x00, 0x50}, false},
		{"", nil, true},
		{"0x", nil, true},
		{"abc", nil, true},
		{"zz", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("ParseHex(%q) = %x, want %x", tt.in, got, tt.want)
		}
	}
}

func TestRunDecodeText(t *testing.T) {
	var buf bytes.Buffer
	if err := RunDecode([]byte{0x02, 0x5f, 0x00, 0x50}, false, &buf); err != nil {
		t.Fatalf("RunDecode failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"DeleteSessionReply (607), 4 bytes", "Code: DeleteSessionCodeNotFound (80)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunDecodeJSON(t *testing.T) {
	// StateUpdateReply: code 72, last applied 513.
	data := []byte{0x02, 0x5d, 0x00, 0x48, 0x02, 0x01}

	var buf bytes.Buffer
	if err := RunDecode(data, true, &buf); err != nil {
		t.Fatalf("RunDecode failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got["Name"] != "StateUpdateReply" || got["Code"] != float64(72) || got["LastApplied"] != float64(513) {
		t.Errorf("unexpected JSON: %v", got)
	}
}

func TestRunDecodeErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := RunDecode([]byte{0x00, 0x01}, false, &buf); !errors.Is(err, wire.ErrInvalidData) {
		t.Errorf("unknown type: expected ErrInvalidData, got %v", err)
	}
	if err := RunDecode([]byte{0x02}, false, &buf); err == nil {
		t.Error("truncated tag: expected error")
	}
}
