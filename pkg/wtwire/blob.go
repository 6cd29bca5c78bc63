package wtwire

import (
	"fmt"
	"io"
	"strings"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
)

// Flag is a bit position in a BlobType.
type Flag uint16

const (
	// FlagReward signals that the justice transaction pays the tower a
	// reward output.
	FlagReward Flag = 0

	// FlagCommitOutputs signals that the blob encodes sweeps of the
	// commitment transaction's to-local and to-remote outputs.
	FlagCommitOutputs Flag = 1
)

// flags lists every defined flag in display order.
var flags = []Flag{FlagReward, FlagCommitOutputs}

// knownFlagMask has a bit set for every defined flag.
var knownFlagMask = func() uint16 {
	var m uint16
	for _, f := range flags {
		m |= f.Mask()
	}
	return m
}()

// Mask returns the bit mask for the flag.
func (f Flag) Mask() uint16 {
	return uint16(1) << f
}

// String returns the flag name.
func (f Flag) String() string {
	switch f {
	case FlagReward:
		return "FlagReward"
	case FlagCommitOutputs:
		return "FlagCommitOutputs"
	default:
		return fmt.Sprintf("FlagUnknown(%d)", uint16(f))
	}
}

// BlobType is the set of flags describing the justice blob format and the
// transaction the tower builds from it. Decoding accepts any value; use
// Known or HasUnknownFlags to check it.
type BlobType uint16

// BlobTypeFromFlags returns the BlobType with exactly the given flags set.
func BlobTypeFromFlags(fs ...Flag) BlobType {
	var t BlobType
	for _, f := range fs {
		t |= BlobType(f.Mask())
	}
	return t
}

// Has reports whether f is set.
func (t BlobType) Has(f Flag) bool {
	return uint16(t)&f.Mask() != 0
}

// Is reports whether t equals the known combination k exactly.
func (t BlobType) Is(k KnownBlobType) bool {
	return uint16(t) == uint16(k)
}

// HasUnknownFlags reports whether any reserved bit is set.
func (t BlobType) HasUnknownFlags() bool {
	return uint16(t)&^knownFlagMask != 0
}

// Known returns t as a known combination.
func (t BlobType) Known() (KnownBlobType, bool) {
	k := KnownBlobType(t)
	return k, k.IsValid()
}

// String renders the flags, e.g. "[FlagReward|No-FlagCommitOutputs]". When
// reserved bits are set the raw value is prefixed in binary.
func (t BlobType) String() string {
	var b strings.Builder
	if t.HasUnknownFlags() {
		fmt.Fprintf(&b, "%016b", uint16(t))
	}
	b.WriteByte('[')
	for i, f := range flags {
		if i > 0 {
			b.WriteByte('|')
		}
		if !t.Has(f) {
			b.WriteString("No-")
		}
		b.WriteString(f.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Encode implements wire.Item.
func (t *BlobType) Encode(w io.Writer) (int, error) {
	v := wire.U16(*t)
	return v.Encode(w)
}

// Decode implements wire.Item.
func (t *BlobType) Decode(r io.Reader) error {
	var v wire.U16
	if err := v.Decode(r); err != nil {
		return err
	}
	*t = BlobType(v)
	return nil
}

// KnownBlobType is a BlobType the protocol defines. Decoding rejects any
// other value.
type KnownBlobType uint16

const (
	// TypeAltruistCommit sweeps the commitment outputs without a reward.
	TypeAltruistCommit = KnownBlobType(1 << FlagCommitOutputs)

	// TypeRewardCommit sweeps the commitment outputs and pays the tower.
	TypeRewardCommit = KnownBlobType(1<<FlagCommitOutputs | 1<<FlagReward)
)

// IsValid reports whether k is a defined combination.
func (k KnownBlobType) IsValid() bool {
	switch k {
	case TypeAltruistCommit, TypeRewardCommit:
		return true
	default:
		return false
	}
}

// BlobType returns k as a flag set.
func (k KnownBlobType) BlobType() BlobType {
	return BlobType(k)
}

// String returns the combination name.
func (k KnownBlobType) String() string {
	switch k {
	case TypeAltruistCommit:
		return "AltruistCommit"
	case TypeRewardCommit:
		return "RewardCommit"
	default:
		return "Unknown"
	}
}

// Encode implements wire.Item.
func (k *KnownBlobType) Encode(w io.Writer) (int, error) {
	v := wire.U16(*k)
	return v.Encode(w)
}

// Decode implements wire.Item.
func (k *KnownBlobType) Decode(r io.Reader) error {
	var v wire.U16
	if err := v.Decode(r); err != nil {
		return err
	}
	if !KnownBlobType(v).IsValid() {
		return wire.InvalidData("unknown blob type %016b", uint16(v))
	}
	*k = KnownBlobType(v)
	return nil
}

// BreachHint is the 16-byte prefix of a breaching commitment txid the tower
// watches for.
type BreachHint [16]byte

// Encode implements wire.Item.
func (h *BreachHint) Encode(w io.Writer) (int, error) {
	return w.Write(h[:])
}

// Decode implements wire.Item.
func (h *BreachHint) Decode(r io.Reader) error {
	return wire.ReadFull(r, h[:])
}

// String returns the hint in hex.
func (h BreachHint) String() string {
	return fmt.Sprintf("%x", h[:])
}

var (
	_ wire.Item = (*BlobType)(nil)
	_ wire.Item = (*KnownBlobType)(nil)
	_ wire.Item = (*BreachHint)(nil)
)
