package wire

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMsgType MessageType = 9000

// extMsg has one required field and three optional ones at tags 2, 5 and 9.
type extMsg struct {
	ID   uint16
	Two  *U32
	Five *U16
	Nine *ExtBuffer
}

func (m *extMsg) MsgType() MessageType { return testMsgType }

func (m *extMsg) Fields() []Item { return []Item{Uint16(&m.ID)} }

func (m *extMsg) Extensions() []Extension {
	return []Extension{
		Optional(2, &m.Two),
		Optional(5, &m.Five),
		OptionalExt(9, &m.Nine),
	}
}

type unsortedMsg struct {
	A *U8
	B *U8
}

func (m *unsortedMsg) MsgType() MessageType { return 9001 }
func (m *unsortedMsg) Fields() []Item       { return nil }
func (m *unsortedMsg) Extensions() []Extension {
	return []Extension{Optional(5, &m.A), Optional(2, &m.B)}
}

type fixedMsg struct {
	Count uint32
	Data  Buffer
}

func (m *fixedMsg) MsgType() MessageType    { return 9002 }
func (m *fixedMsg) Fields() []Item          { return []Item{Uint32(&m.Count), &m.Data} }
func (m *fixedMsg) Extensions() []Extension { return nil }

func ptr[T any](v T) *T { return &v }

// header returns the type tag and required field of an extMsg with ID 7.
func header() []byte {
	return []byte{0x23, 0x28, 0x00, 0x07}
}

func record(t *testing.T, buf *bytes.Buffer, tag uint64, payload []byte) {
	t.Helper()
	_, err := writeRecord(buf, tag, payload)
	require.NoError(t, err)
}

func TestWriteMessageExtensions(t *testing.T) {
	msg := &extMsg{
		ID:   7,
		Two:  ptr(U32(256)),
		Nine: ptr(ExtBuffer{0xde, 0xad, 0xbe}),
	}

	var buf bytes.Buffer
	n, err := WriteMessage(&buf, msg)
	require.NoError(t, err)

	want := append(header(),
		0x02, 0x04, 0x00, 0x00, 0x01, 0x00,
		0x09, 0x03, 0xde, 0xad, 0xbe,
	)
	assert.Equal(t, want, buf.Bytes())
	assert.Equal(t, len(want), n)
}

func TestReadMessageSkipsUnknownExtensions(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header())
	record(t, &buf, 1, []byte{0xaa, 0xbb})
	record(t, &buf, 2, []byte{0x00, 0x00, 0x01, 0x00})
	record(t, &buf, 3, []byte{0xcc})
	record(t, &buf, 7, nil)
	record(t, &buf, 9, []byte{0xde, 0xad, 0xbe})
	record(t, &buf, 12, []byte{0xff})

	msg := &extMsg{Five: ptr(U16(1))}
	require.NoError(t, ReadMessage(&buf, msg, true))

	assert.Equal(t, uint16(7), msg.ID)
	require.NotNil(t, msg.Two)
	assert.Equal(t, U32(256), *msg.Two)
	assert.Nil(t, msg.Five, "absent field is reset")
	require.NotNil(t, msg.Nine)
	assert.Equal(t, ExtBuffer{0xde, 0xad, 0xbe}, *msg.Nine)
}

func TestReadMessageExtensionsEndOfStream(t *testing.T) {
	msg := &extMsg{Two: ptr(U32(1))}
	require.NoError(t, DecodeMessage(header(), msg))
	assert.Equal(t, uint16(7), msg.ID)
	assert.Nil(t, msg.Two)
	assert.Nil(t, msg.Five)
	assert.Nil(t, msg.Nine)

	// Only unknown records before the end.
	var buf bytes.Buffer
	buf.Write(header())
	record(t, &buf, 1, []byte{0x01})
	record(t, &buf, 3, []byte{0x02})
	require.NoError(t, DecodeMessage(buf.Bytes(), msg))
	assert.Nil(t, msg.Two)
	assert.Nil(t, msg.Five)
}

func TestReadMessageExtensionLengthMismatch(t *testing.T) {
	tests := map[string][]byte{
		"payload too long":  {0x00, 0x00, 0x00, 0x01, 0xff},
		"payload too short": {0x00, 0x01},
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			buf.Write(header())
			record(t, &buf, 2, payload)
			err := DecodeMessage(buf.Bytes(), &extMsg{})
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestReadMessageTruncatedRecord(t *testing.T) {
	tests := map[string][]byte{
		"tag":     {0xfd, 0x00},
		"length":  {0x02},
		"payload": {0x02, 0x04, 0x00},
		"skipped": {0x01, 0x05, 0x00},
	}
	for name, tail := range tests {
		t.Run(name, func(t *testing.T) {
			data := append(header(), tail...)
			err := DecodeMessage(data, &extMsg{})
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}

func TestReadMessageRecordLengthBeyondInt64(t *testing.T) {
	tests := map[string]byte{
		"skipped": 0x01,
		"known":   0x09,
	}
	for name, tag := range tests {
		t.Run(name, func(t *testing.T) {
			data := append(header(), tag)
			data = append(data, hugeLength...)
			data = append(data, 0xaa, 0xbb)
			err := DecodeMessage(data, &extMsg{})
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}

	data := []byte{0x23, 0x2a, 0, 0, 0, 1}
	data = append(data, hugeLength...)
	err := DecodeMessage(append(data, 0xaa), &fixedMsg{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestMessageRoundTrip(t *testing.T) {
	tests := []*extMsg{
		{ID: 1},
		{ID: 2, Five: ptr(U16(0xffff))},
		{ID: 3, Two: ptr(U32(9)), Five: ptr(U16(5)), Nine: ptr(ExtBuffer{})},
	}
	for _, msg := range tests {
		data, err := EncodeMessage(msg)
		require.NoError(t, err)

		got := &extMsg{}
		require.NoError(t, DecodeMessage(data, got))
		assert.Equal(t, msg, got)
	}
}

func TestReadMessageType(t *testing.T) {
	err := DecodeMessage([]byte{0x23, 0x29, 0x00, 0x07}, &extMsg{})
	assert.ErrorIs(t, err, ErrInvalidData)

	err = ReadMessage(bytes.NewReader(nil), &extMsg{}, true)
	assert.Equal(t, io.EOF, err)

	err = DecodeMessage(nil, &extMsg{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = DecodeMessage([]byte{0x23}, &extMsg{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// Type already consumed by the caller.
	msg := &extMsg{}
	require.NoError(t, ReadMessage(bytes.NewReader([]byte{0x00, 0x09}), msg, false))
	assert.Equal(t, uint16(9), msg.ID)
}

func TestReadMessageRequiredFieldShort(t *testing.T) {
	err := DecodeMessage([]byte{0x23, 0x28, 0x00}, &extMsg{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestMessageInvalidSchema(t *testing.T) {
	msg := &unsortedMsg{A: ptr(U8(1))}
	_, err := EncodeMessage(msg)
	assert.ErrorIs(t, err, ErrInvalidSchema)

	err = DecodeMessage([]byte{0x23, 0x29}, msg)
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestReadMessageWithoutExtensionsStopsAtLastField(t *testing.T) {
	first := &fixedMsg{Count: 1, Data: Buffer{0x01}}
	second := &fixedMsg{Count: 2, Data: Buffer{}}

	var buf bytes.Buffer
	_, err := WriteMessage(&buf, first)
	require.NoError(t, err)
	_, err = WriteMessage(&buf, second)
	require.NoError(t, err)

	r := bytes.NewReader(buf.Bytes())
	got := &fixedMsg{}
	require.NoError(t, ReadMessage(r, got, true))
	assert.Equal(t, first, got)

	got = &fixedMsg{}
	require.NoError(t, ReadMessage(r, got, true))
	assert.Equal(t, second, got)

	assert.Equal(t, io.EOF, ReadMessage(r, got, true))
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "600", MessageType(600).String())
}
