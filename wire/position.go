package wire

import (
	"fmt"
	"io"
)

// Position's serialized form is composed of X, Z which are 26 bits each, and 12 bits of Y,
// packed into one Long as x<<38 | z<<12 | y.
//
// Values outside those widths are truncated on write.
type Position struct {
	X int32
	Y int16
	Z int32
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

func (p Position) Pack() int64 {
	return int64(uint64(p.X&0x3FFFFFF)<<38 |
		uint64(p.Z&0x3FFFFFF)<<12 |
		uint64(p.Y&0xFFF))
}

// UnpackPosition sign-extends each field back to its full width.
func UnpackPosition(packed int64) Position {
	return Position{
		X: int32(packed >> 38),
		Z: int32(packed << 26 >> 38),
		Y: int16(packed << 52 >> 52),
	}
}

func WritePosition(w io.Writer, v Position) error {
	return WriteLong(w, v.Pack())
}

func ReadPosition(r *Reader) (v Position, err error) {
	packed, err := ReadLong(r)
	if err != nil {
		return
	}

	v = UnpackPosition(packed)
	return
}
