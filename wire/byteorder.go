package wire

import (
	"encoding/binary"
	"math"
)

// ByteOrder converts fixed-width numbers to and from byte arrays.
//
// WriteX never fails. ReadX consumes exactly the width of X and returns the
// rest of data, or ErrEOF when data is too short.
type ByteOrder struct {
	order binary.ByteOrder
	big   bool
}

var (
	BigEndian    = ByteOrder{order: binary.BigEndian, big: true}
	LittleEndian = ByteOrder{order: binary.LittleEndian}

	// Proto is the byte order of the game protocol.
	Proto = BigEndian
)

func (o ByteOrder) String() string {
	if o.big {
		return "BigEndian"
	}
	return "LittleEndian"
}

// Uint128 is an unsigned 128-bit integer split into two halves.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a two's complement 128-bit integer split into two halves.
type Int128 struct {
	Hi int64
	Lo uint64
}

func split(data []byte, n int) (head, rest []byte, err error) {
	if len(data) < n {
		return nil, nil, ErrEOF
	}
	return data[:n], data[n:], nil
}

func (o ByteOrder) WriteUint8(v uint8) [1]byte {
	return [1]byte{v}
}

func (o ByteOrder) ReadUint8(data []byte) (uint8, []byte, error) {
	b, rest, err := split(data, 1)
	if err != nil {
		return 0, nil, err
	}
	return b[0], rest, nil
}

func (o ByteOrder) WriteInt8(v int8) [1]byte {
	return [1]byte{byte(v)}
}

func (o ByteOrder) ReadInt8(data []byte) (int8, []byte, error) {
	v, rest, err := o.ReadUint8(data)
	return int8(v), rest, err
}

func (o ByteOrder) WriteUint16(v uint16) (b [2]byte) {
	o.order.PutUint16(b[:], v)
	return
}

func (o ByteOrder) ReadUint16(data []byte) (uint16, []byte, error) {
	b, rest, err := split(data, 2)
	if err != nil {
		return 0, nil, err
	}
	return o.order.Uint16(b), rest, nil
}

func (o ByteOrder) WriteInt16(v int16) [2]byte {
	return o.WriteUint16(uint16(v))
}

func (o ByteOrder) ReadInt16(data []byte) (int16, []byte, error) {
	v, rest, err := o.ReadUint16(data)
	return int16(v), rest, err
}

func (o ByteOrder) WriteUint32(v uint32) (b [4]byte) {
	o.order.PutUint32(b[:], v)
	return
}

func (o ByteOrder) ReadUint32(data []byte) (uint32, []byte, error) {
	b, rest, err := split(data, 4)
	if err != nil {
		return 0, nil, err
	}
	return o.order.Uint32(b), rest, nil
}

func (o ByteOrder) WriteInt32(v int32) [4]byte {
	return o.WriteUint32(uint32(v))
}

func (o ByteOrder) ReadInt32(data []byte) (int32, []byte, error) {
	v, rest, err := o.ReadUint32(data)
	return int32(v), rest, err
}

func (o ByteOrder) WriteUint64(v uint64) (b [8]byte) {
	o.order.PutUint64(b[:], v)
	return
}

func (o ByteOrder) ReadUint64(data []byte) (uint64, []byte, error) {
	b, rest, err := split(data, 8)
	if err != nil {
		return 0, nil, err
	}
	return o.order.Uint64(b), rest, nil
}

func (o ByteOrder) WriteInt64(v int64) [8]byte {
	return o.WriteUint64(uint64(v))
}

func (o ByteOrder) ReadInt64(data []byte) (int64, []byte, error) {
	v, rest, err := o.ReadUint64(data)
	return int64(v), rest, err
}

func (o ByteOrder) WriteUint128(v Uint128) (b [16]byte) {
	if o.big {
		o.order.PutUint64(b[:8], v.Hi)
		o.order.PutUint64(b[8:], v.Lo)
	} else {
		o.order.PutUint64(b[:8], v.Lo)
		o.order.PutUint64(b[8:], v.Hi)
	}
	return
}

func (o ByteOrder) ReadUint128(data []byte) (v Uint128, rest []byte, err error) {
	b, rest, err := split(data, 16)
	if err != nil {
		return
	}

	if o.big {
		v.Hi, v.Lo = o.order.Uint64(b[:8]), o.order.Uint64(b[8:])
	} else {
		v.Lo, v.Hi = o.order.Uint64(b[:8]), o.order.Uint64(b[8:])
	}
	return
}

func (o ByteOrder) WriteInt128(v Int128) [16]byte {
	return o.WriteUint128(Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

func (o ByteOrder) ReadInt128(data []byte) (Int128, []byte, error) {
	v, rest, err := o.ReadUint128(data)
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, rest, err
}

func (o ByteOrder) WriteFloat32(v float32) [4]byte {
	return o.WriteUint32(math.Float32bits(v))
}

func (o ByteOrder) ReadFloat32(data []byte) (float32, []byte, error) {
	v, rest, err := o.ReadUint32(data)
	return math.Float32frombits(v), rest, err
}

func (o ByteOrder) WriteFloat64(v float64) [8]byte {
	return o.WriteUint64(math.Float64bits(v))
}

func (o ByteOrder) ReadFloat64(data []byte) (float64, []byte, error) {
	v, rest, err := o.ReadUint64(data)
	return math.Float64frombits(v), rest, err
}
