package wire

import (
	"io"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

func WriteBoolean(w io.Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}

	_, err = w.Write([]byte{b})
	return
}

func ReadBoolean(r *Reader) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	switch b {
	case 0:
		v = false
	case 1:
		v = true
	default:
		err = ErrInvalidBool
	}
	return
}

func WriteByte(w io.Writer, v int8) (err error) {
	_, err = w.Write([]byte{byte(v)})
	return
}

func ReadByte(r *Reader) (int8, error) {
	return readWith(r, Proto.ReadInt8)
}

func WriteUnsignedByte(w io.Writer, v uint8) (err error) {
	_, err = w.Write([]byte{v})
	return
}

func ReadUnsignedByte(r *Reader) (uint8, error) {
	return r.ReadByte()
}

func WriteShort(w io.Writer, v int16) (err error) {
	b := Proto.WriteInt16(v)
	_, err = w.Write(b[:])
	return
}

func ReadShort(r *Reader) (int16, error) {
	return readWith(r, Proto.ReadInt16)
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	b := Proto.WriteUint16(v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedShort(r *Reader) (uint16, error) {
	return readWith(r, Proto.ReadUint16)
}

func WriteInt(w io.Writer, v int32) (err error) {
	b := Proto.WriteInt32(v)
	_, err = w.Write(b[:])
	return
}

func ReadInt(r *Reader) (int32, error) {
	return readWith(r, Proto.ReadInt32)
}

func WriteLong(w io.Writer, v int64) (err error) {
	b := Proto.WriteInt64(v)
	_, err = w.Write(b[:])
	return
}

func ReadLong(r *Reader) (int64, error) {
	return readWith(r, Proto.ReadInt64)
}

func WriteFloat(w io.Writer, v float32) (err error) {
	b := Proto.WriteFloat32(v)
	_, err = w.Write(b[:])
	return
}

func ReadFloat(r *Reader) (float32, error) {
	return readWith(r, Proto.ReadFloat32)
}

func WriteDouble(w io.Writer, v float64) (err error) {
	b := Proto.WriteFloat64(v)
	_, err = w.Write(b[:])
	return
}

func ReadDouble(r *Reader) (float64, error) {
	return readWith(r, Proto.ReadFloat64)
}

func WriteString(w io.Writer, v string) (err error) {
	if err = WriteVarInt(w, int32(len(v))); err != nil {
		return
	}
	_, err = io.WriteString(w, v)
	return
}

func ReadString(r *Reader) (v string, err error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return
	}

	if length < 0 {
		err = ErrNegativeLength
		return
	}

	buf, err := r.Read(int(length))
	if err != nil {
		return
	}

	if !utf8.Valid(buf) {
		err = ErrBadStringEncoding
		return
	}
	return string(buf), nil
}

func WriteUUID(w io.Writer, v uuid.UUID) (err error) {
	_, err = w.Write(v[:])
	return
}

func ReadUUID(r *Reader) (v uuid.UUID, err error) {
	b, err := r.Read(16)
	if err != nil {
		return
	}

	v = uuid.UUID(b)
	return
}

// Angle is a rotation in steps of 1/256 of a full turn.
type Angle uint8

func (a Angle) Degrees() float32 {
	return float32(a) * 360 / 256
}

func WriteAngle(w io.Writer, v Angle) error {
	return WriteUnsignedByte(w, uint8(v))
}

func ReadAngle(r *Reader) (Angle, error) {
	b, err := r.ReadByte()
	return Angle(b), err
}

// RemainingBytes is a field that takes the rest of a packet body.
// Decoded values borrow from the body.
type RemainingBytes []byte

func WriteRemainingBytes(w io.Writer, v RemainingBytes) (err error) {
	_, err = w.Write(v)
	return
}

func ReadRemainingBytes(r *Reader) (RemainingBytes, error) {
	return r.Read(r.Remaining())
}

// Vec3d is three Doubles, x then y then z.
func WriteVec3d(w io.Writer, v mgl64.Vec3) (err error) {
	for _, c := range v {
		if err = WriteDouble(w, c); err != nil {
			return
		}
	}
	return
}

func ReadVec3d(r *Reader) (v mgl64.Vec3, err error) {
	for i := range v {
		if v[i], err = ReadDouble(r); err != nil {
			return
		}
	}
	return
}

// Vec3f is three Floats, x then y then z.
func WriteVec3f(w io.Writer, v mgl32.Vec3) (err error) {
	for _, c := range v {
		if err = WriteFloat(w, c); err != nil {
			return
		}
	}
	return
}

func ReadVec3f(r *Reader) (v mgl32.Vec3, err error) {
	for i := range v {
		if v[i], err = ReadFloat(r); err != nil {
			return
		}
	}
	return
}

// Optional[T] represents Optional field in a packet
//
// Serialized Optional[T] is prefixed with Boolean of whether the value exists.
// If so, the value T is followed.
type Optional[T any] struct {
	Exists bool
	Item   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}

func WriteOptional[T any](w io.Writer, v Optional[T], write WriteFn[T]) (err error) {
	if err = WriteBoolean(w, v.Exists); err != nil {
		return
	}

	if v.Exists {
		err = write(w, v.Item)
	}
	return
}

func ReadOptional[T any](r *Reader, read ReadFn[T]) (v Optional[T], err error) {
	if v.Exists, err = ReadBoolean(r); err != nil {
		return
	}

	if v.Exists {
		v.Item, err = read(r)
	}
	return
}
