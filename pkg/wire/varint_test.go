package wire

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarIntBoundaries(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{0xfc, []byte{0xfc}},
		{0xfd, []byte{0xfd, 0x00, 0xfd}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x01, 0x00, 0x00}},
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		n, err := WriteVarInt(&buf, tt.value)
		require.NoError(t, err)
		assert.Equal(t, len(tt.want), n, "value %#x", tt.value)
		assert.Equal(t, VarIntSize(tt.value), n, "value %#x", tt.value)
		assert.Equal(t, tt.want, buf.Bytes(), "value %#x", tt.value)

		got, err := ReadVarInt(&buf)
		require.NoError(t, err)
		assert.Equal(t, tt.value, got)
		assert.Zero(t, buf.Len())
	}
}

func TestReadVarIntNonCanonical(t *testing.T) {
	got, err := ReadVarInt(bytes.NewReader([]byte{0xfd, 0x00, 0x05}))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)

	got, err = ReadVarInt(bytes.NewReader([]byte{0xff, 0, 0, 0, 0, 0, 0, 0, 0x01}))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestReadVarIntTruncated(t *testing.T) {
	tests := map[string][]byte{
		"empty":      nil,
		"u16 marker": {0xfd},
		"short u16":  {0xfd, 0x01},
		"short u32":  {0xfe, 0x01, 0x02, 0x03},
		"short u64":  {0xff, 0x01},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadVarInt(bytes.NewReader(data))
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}

func TestPeekVarInt(t *testing.T) {
	p := NewPeekReader(bytes.NewReader([]byte{0xfe, 0x00, 0x00, 0x01, 0x00, 0x2a}))

	v, err := PeekVarInt(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(256), v)
	assert.Equal(t, 5, p.Buffered())

	// Not committed: a plain read sees the same VarInt again.
	v, err = ReadVarInt(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(256), v)

	v, err = PeekVarInt(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x2a), v)
	p.Commit()
	assert.Zero(t, p.Buffered())

	_, err = PeekVarInt(p)
	assert.Equal(t, io.EOF, err)
}

func TestPeekVarIntTruncated(t *testing.T) {
	p := NewPeekReader(bytes.NewReader([]byte{0xfe, 0x01}))
	_, err := PeekVarInt(p)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
