package nbt

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/gstoney/mcwire/wire"
)

// WriteRoot writes t, which must hold a Compound.
func WriteRoot(w io.Writer, t NamedTag) error {
	if _, ok := t.Payload.(Compound); !ok {
		return fmt.Errorf("%w: NBT root must be a Compound, got %T", wire.ErrCannotSerialize, t.Payload)
	}
	return WriteNamedTag(w, t)
}

// Bytes returns the wire form of a root tag.
func (t NamedTag) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteRoot(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteNamedTag(w io.Writer, t NamedTag) (err error) {
	if t.Payload == nil {
		return fmt.Errorf("%w: tag %q has no payload", wire.ErrCannotSerialize, t.Name)
	}

	k := t.Payload.Kind()
	if err = wire.WriteUnsignedByte(w, byte(k)); err != nil || k == KindEnd {
		return
	}

	if err = writeString(w, t.Name); err != nil {
		return
	}
	return WritePayload(w, t.Payload)
}

// WritePayload writes t without its kind byte or name.
func WritePayload(w io.Writer, t Tag) error {
	switch v := t.(type) {
	case End:
		return nil
	case Byte:
		return wire.WriteByte(w, int8(v))
	case Short:
		return wire.WriteShort(w, int16(v))
	case Int:
		return wire.WriteInt(w, int32(v))
	case Long:
		return wire.WriteLong(w, int64(v))
	case Float:
		return wire.WriteFloat(w, float32(v))
	case Double:
		return wire.WriteDouble(w, float64(v))
	case String:
		return writeString(w, string(v))
	case ByteArray:
		if err := writeArrayLen(w, len(v)); err != nil {
			return err
		}
		_, err := w.Write(v)
		return err
	case IntArray:
		if err := writeArrayLen(w, len(v)); err != nil {
			return err
		}
		b := make([]byte, 0, 4*len(v))
		for _, n := range v {
			e := wire.Proto.WriteInt32(n)
			b = append(b, e[:]...)
		}
		_, err := w.Write(b)
		return err
	case LongArray:
		if err := writeArrayLen(w, len(v)); err != nil {
			return err
		}
		b := make([]byte, 0, 8*len(v))
		for _, n := range v {
			e := wire.Proto.WriteInt64(n)
			b = append(b, e[:]...)
		}
		_, err := w.Write(b)
		return err
	case List:
		return writeList(w, v)
	case Compound:
		return writeCompound(w, v)
	}
	return fmt.Errorf("%w: unknown NBT tag %T", wire.ErrCannotSerialize, t)
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: NBT string of %d bytes", wire.ErrCannotSerialize, len(s))
	}

	if err := wire.WriteUnsignedShort(w, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeArrayLen(w io.Writer, n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: NBT array of %d elements", wire.ErrCannotSerialize, n)
	}
	return wire.WriteInt(w, int32(n))
}

func writeList(w io.Writer, v List) error {
	elem := KindEnd
	if len(v) > 0 {
		if v[0] == nil {
			return fmt.Errorf("%w: nil NBT list element", wire.ErrCannotSerialize)
		}
		elem = v[0].Kind()
	}

	if len(v) > 0 && elem == KindEnd {
		return fmt.Errorf("%w: NBT list of End", wire.ErrCannotSerialize)
	}

	for i, item := range v {
		if item == nil || item.Kind() != elem {
			return fmt.Errorf("%w: NBT list of %s has element %d of type %T", wire.ErrCannotSerialize, elem, i, item)
		}
	}

	if err := wire.WriteUnsignedByte(w, byte(elem)); err != nil {
		return err
	}
	if err := writeArrayLen(w, len(v)); err != nil {
		return err
	}

	for _, item := range v {
		if err := WritePayload(w, item); err != nil {
			return err
		}
	}
	return nil
}

func writeCompound(w io.Writer, v Compound) error {
	for _, child := range v {
		if child.IsEnd() {
			return fmt.Errorf("%w: End as a Compound child", wire.ErrCannotSerialize)
		}
		if err := WriteNamedTag(w, child); err != nil {
			return err
		}
	}
	return wire.WriteUnsignedByte(w, byte(KindEnd))
}
