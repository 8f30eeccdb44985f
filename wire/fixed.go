package wire

import (
	"io"
	"math"
)

// FixedInt is a fixed-point number stored as an Int scaled by 2^Frac.
// Only Raw goes on the wire; Frac is fixed by the field using it.
type FixedInt struct {
	Raw  int32
	Frac uint8
}

// NewFixedInt rounds f to the nearest value representable with frac
// fractional bits.
func NewFixedInt(f float64, frac uint8) FixedInt {
	return FixedInt{
		Raw:  int32(math.Round(math.Ldexp(f, int(frac)))),
		Frac: frac,
	}
}

func (v FixedInt) Float() float64 {
	return math.Ldexp(float64(v.Raw), -int(v.Frac))
}

func WriteFixedInt(w io.Writer, v FixedInt) error {
	return WriteInt(w, v.Raw)
}

// ReadFixedInt returns a reader for fixed-point Ints with frac fractional bits.
func ReadFixedInt(frac uint8) ReadFn[FixedInt] {
	return func(r *Reader) (v FixedInt, err error) {
		v.Frac = frac
		v.Raw, err = ReadInt(r)
		return
	}
}
