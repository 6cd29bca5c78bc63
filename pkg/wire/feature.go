package wire

import (
	"encoding/binary"
	"io"
	"math"
	"slices"
	"strings"
)

// Feature is a capability bit negotiated between peers. Even bits are
// required, odd bits optional.
type Feature uint16

const (
	// DataLossProtectRequired requires the peer to support data loss
	// protection on channel reestablishment.
	DataLossProtectRequired Feature = 0

	// DataLossProtectOptional advertises optional data loss protection.
	DataLossProtectOptional Feature = 1

	// InitialRoutingSync asks the peer for a full routing table dump.
	InitialRoutingSync Feature = 3

	// GossipQueriesRequired requires support for gossip queries.
	GossipQueriesRequired Feature = 6

	// GossipQueriesOptional advertises optional gossip query support.
	GossipQueriesOptional Feature = 7
)

// knownFeatures lists every defined feature bit in ascending order.
var knownFeatures = []Feature{
	DataLossProtectRequired,
	DataLossProtectOptional,
	InitialRoutingSync,
	GossipQueriesRequired,
	GossipQueriesOptional,
}

// KnownFeatures returns the defined feature bits in ascending order.
func KnownFeatures() []Feature {
	return slices.Clone(knownFeatures)
}

// IsKnown reports whether f is a defined feature bit.
func (f Feature) IsKnown() bool {
	return slices.Contains(knownFeatures, f)
}

// String returns the feature name.
func (f Feature) String() string {
	switch f {
	case DataLossProtectRequired:
		return "data-loss-protect-required"
	case DataLossProtectOptional:
		return "data-loss-protect-optional"
	case InitialRoutingSync:
		return "initial-routing-sync"
	case GossipQueriesRequired:
		return "gossip-queries-required"
	case GossipQueriesOptional:
		return "gossip-queries-optional"
	default:
		return "unknown"
	}
}

// FeatureVector is a set of features.
//
// On the wire it is a big-endian uint16 byte count followed by that many
// bytes, most significant byte first. Feature i lives in bit i%8 of the byte
// holding bits 8*(i/8) through 8*(i/8)+7. Decoding fails with ErrInvalidData
// if any set bit is not a known feature.
//
// The zero value is an empty vector ready to use.
type FeatureVector struct {
	set map[Feature]struct{}
}

// NewFeatureVector returns a vector holding the given features.
func NewFeatureVector(features ...Feature) *FeatureVector {
	fv := &FeatureVector{}
	for _, f := range features {
		fv.Set(f)
	}
	return fv
}

// Set adds f to the vector.
func (fv *FeatureVector) Set(f Feature) {
	if fv.set == nil {
		fv.set = make(map[Feature]struct{})
	}
	fv.set[f] = struct{}{}
}

// Unset removes f from the vector.
func (fv *FeatureVector) Unset(f Feature) {
	delete(fv.set, f)
}

// IsSet reports whether f is in the vector.
func (fv *FeatureVector) IsSet(f Feature) bool {
	_, ok := fv.set[f]
	return ok
}

// Features returns the set features in ascending order.
func (fv *FeatureVector) Features() []Feature {
	out := make([]Feature, 0, len(fv.set))
	for f := range fv.set {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of set features.
func (fv *FeatureVector) Len() int {
	return len(fv.set)
}

// Equal reports whether both vectors hold the same features.
func (fv *FeatureVector) Equal(other *FeatureVector) bool {
	if fv.Len() != other.Len() {
		return false
	}
	for f := range fv.set {
		if !other.IsSet(f) {
			return false
		}
	}
	return true
}

// SerializeSize returns the number of bytes Encode writes.
func (fv *FeatureVector) SerializeSize() int {
	return 2 + fv.byteLen()
}

// byteLen returns the body length: one more than the index of the byte
// holding the highest set bit, or zero when empty.
func (fv *FeatureVector) byteLen() int {
	highest := -1
	for f := range fv.set {
		highest = max(highest, int(f))
	}
	if highest < 0 {
		return 0
	}
	return highest/8 + 1
}

// Encode implements Item.
func (fv *FeatureVector) Encode(w io.Writer) (int, error) {
	length := fv.byteLen()
	buf := make([]byte, 2+length)
	binary.BigEndian.PutUint16(buf, uint16(length))
	body := buf[2:]
	for f := range fv.set {
		byteIdx := int(f) / 8
		body[length-1-byteIdx] |= 1 << (f % 8)
	}
	return w.Write(buf)
}

// Decode implements Item. On error the vector is left partially filled.
func (fv *FeatureVector) Decode(r io.Reader) error {
	var lenBuf [2]byte
	if err := ReadFull(r, lenBuf[:]); err != nil {
		return err
	}
	length := int(binary.BigEndian.Uint16(lenBuf[:]))
	body, err := readBytes(r, uint64(length))
	if err != nil {
		return err
	}

	fv.set = nil
	for i, b := range body {
		byteIdx := length - 1 - i
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) == 0 {
				continue
			}
			idx := 8*byteIdx + bit
			if idx > math.MaxUint16 || !Feature(idx).IsKnown() {
				return invalidData("unknown feature bit %d", idx)
			}
			fv.Set(Feature(idx))
		}
	}
	return nil
}

// String lists the set features, e.g. "[data-loss-protect-required initial-routing-sync]".
func (fv *FeatureVector) String() string {
	features := fv.Features()
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

var _ Item = (*FeatureVector)(nil)
