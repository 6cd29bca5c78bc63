package wire

import (
	"encoding/hex"
	"io"
)

// HashSize is the length of a ChainHash in bytes.
const HashSize = 32

// ChainHash identifies a blockchain by the hash of its genesis block. It is
// a fixed-size array item written verbatim.
type ChainHash [HashSize]byte

// Encode implements Item.
func (h *ChainHash) Encode(w io.Writer) (int, error) {
	return w.Write(h[:])
}

// Decode implements Item.
func (h *ChainHash) Decode(r io.Reader) error {
	return ReadFull(r, h[:])
}

// String returns the hash bytes in hex, in wire order.
func (h ChainHash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseChainHash parses the hex form produced by String.
func ParseChainHash(s string) (ChainHash, error) {
	var h ChainHash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, invalidData("chain hash: %v", err)
	}
	if len(b) != HashSize {
		return h, invalidData("chain hash: got %d bytes, want %d", len(b), HashSize)
	}
	copy(h[:], b)
	return h, nil
}

var _ Item = (*ChainHash)(nil)
