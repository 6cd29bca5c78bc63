package wire

import (
	"fmt"
	"io"
)

// SatPerKWeight is a fee rate in satoshis per 1000 weight units. It is
// encoded as a big-endian int64.
type SatPerKWeight int64

// FeeForWeight returns the fee in satoshis for a transaction of wu weight
// units. The division truncates toward zero.
func (f SatPerKWeight) FeeForWeight(wu int64) int64 {
	return int64(f) * wu / 1000
}

// Encode implements Item.
func (f *SatPerKWeight) Encode(w io.Writer) (int, error) {
	v := I64(*f)
	return v.Encode(w)
}

// Decode implements Item.
func (f *SatPerKWeight) Decode(r io.Reader) error {
	var v I64
	if err := v.Decode(r); err != nil {
		return err
	}
	*f = SatPerKWeight(v)
	return nil
}

// String returns the rate with its unit, e.g. "253 sat/kw".
func (f SatPerKWeight) String() string {
	return fmt.Sprintf("%d sat/kw", int64(f))
}

var _ Item = (*SatPerKWeight)(nil)
