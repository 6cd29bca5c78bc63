package wtwire

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
)

func TestFlagMask(t *testing.T) {
	assert.Equal(t, uint16(0b01), FlagReward.Mask())
	assert.Equal(t, uint16(0b10), FlagCommitOutputs.Mask())
	assert.Equal(t, "FlagCommitOutputs", FlagCommitOutputs.String())
	assert.Equal(t, "FlagUnknown(9)", Flag(9).String())
}

func TestBlobTypeFromFlags(t *testing.T) {
	bt := BlobTypeFromFlags(FlagReward, FlagCommitOutputs)
	assert.Equal(t, BlobType(0b11), bt)
	assert.True(t, bt.Has(FlagReward))
	assert.True(t, bt.Has(FlagCommitOutputs))
	assert.True(t, bt.Is(TypeRewardCommit))
	assert.False(t, bt.Is(TypeAltruistCommit))

	bt = BlobTypeFromFlags(FlagCommitOutputs)
	assert.False(t, bt.Has(FlagReward))
	assert.True(t, bt.Is(TypeAltruistCommit))

	assert.Equal(t, BlobType(0), BlobTypeFromFlags())
}

func TestBlobTypeUnknownFlags(t *testing.T) {
	tests := []struct {
		bt   BlobType
		want bool
	}{
		{0, false},
		{0b11, false},
		{0b100, true},
		{0x8000, true},
		{0xffff, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.bt.HasUnknownFlags(), "blob type %016b", uint16(tt.bt))
	}
}

func TestBlobTypeKnown(t *testing.T) {
	k, ok := BlobType(0b10).Known()
	assert.True(t, ok)
	assert.Equal(t, TypeAltruistCommit, k)

	_, ok = BlobType(0b01).Known()
	assert.False(t, ok)
	_, ok = BlobType(0b111).Known()
	assert.False(t, ok)
}

func TestBlobTypeString(t *testing.T) {
	assert.Equal(t, "[FlagReward|FlagCommitOutputs]", TypeRewardCommit.BlobType().String())
	assert.Equal(t, "[No-FlagReward|FlagCommitOutputs]", TypeAltruistCommit.BlobType().String())
	assert.Equal(t, "0000000000000110[No-FlagReward|FlagCommitOutputs]", BlobType(0b110).String())
	assert.Equal(t, "RewardCommit", TypeRewardCommit.String())
}

func TestKnownBlobTypeDecode(t *testing.T) {
	var k KnownBlobType
	require.NoError(t, k.Decode(bytes.NewReader([]byte{0x00, 0x03})))
	assert.Equal(t, TypeRewardCommit, k)

	err := k.Decode(bytes.NewReader([]byte{0x00, 0x01}))
	assert.ErrorIs(t, err, wire.ErrInvalidData)

	// The plain BlobType decoder accepts reserved bits.
	var bt BlobType
	require.NoError(t, bt.Decode(bytes.NewReader([]byte{0x80, 0x02})))
	assert.True(t, bt.HasUnknownFlags())
	assert.True(t, bt.Has(FlagCommitOutputs))
}

func TestBreachHint(t *testing.T) {
	h := BreachHint{0x01, 0x02}
	var buf bytes.Buffer
	n, err := h.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	var got BreachHint
	require.NoError(t, got.Decode(&buf))
	assert.Equal(t, h, got)
	assert.Equal(t, "01020000000000000000000000000000", got.String())
}

func TestBreachHintDecodeShort(t *testing.T) {
	for _, data := range [][]byte{nil, make([]byte, 15)} {
		var h BreachHint
		assert.ErrorIs(t, h.Decode(bytes.NewReader(data)), io.ErrUnexpectedEOF)
	}
}
