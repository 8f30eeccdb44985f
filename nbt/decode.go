package nbt

import (
	"fmt"
	"unicode/utf8"

	"github.com/gstoney/mcwire/wire"
)

// ReadRoot reads a named tag that must be a Compound.
func ReadRoot(r *wire.Reader) (t NamedTag, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	if Kind(b) != KindCompound {
		err = fmt.Errorf("%w: got %s", wire.ErrNbtInvalidStartTag, Kind(b))
		return
	}

	if t.Name, err = readString(r); err != nil {
		return
	}
	t.Payload, err = ReadPayload(r, KindCompound)
	return
}

// DecodeRoot is ReadRoot over a byte slice. The returned suffix borrows from data.
func DecodeRoot(data []byte) (NamedTag, []byte, error) {
	return wire.DecodeWith(data, ReadRoot)
}

// ReadNamedTag reads a kind byte, then a name and payload unless the kind is End.
func ReadNamedTag(r *wire.Reader) (t NamedTag, err error) {
	k, err := readKind(r)
	if err != nil {
		return
	}

	if k == KindEnd {
		t.Payload = End{}
		return
	}

	if t.Name, err = readString(r); err != nil {
		return
	}
	t.Payload, err = ReadPayload(r, k)
	return
}

// ReadPayload reads an unnamed payload of kind k.
func ReadPayload(r *wire.Reader, k Kind) (Tag, error) {
	switch k {
	case KindEnd:
		return End{}, nil
	case KindByte:
		v, err := wire.ReadByte(r)
		return Byte(v), err
	case KindShort:
		v, err := wire.ReadShort(r)
		return Short(v), err
	case KindInt:
		v, err := wire.ReadInt(r)
		return Int(v), err
	case KindLong:
		v, err := wire.ReadLong(r)
		return Long(v), err
	case KindFloat:
		v, err := wire.ReadFloat(r)
		return Float(v), err
	case KindDouble:
		v, err := wire.ReadDouble(r)
		return Double(v), err
	case KindString:
		v, err := readString(r)
		return String(v), err
	case KindByteArray:
		return readByteArray(r)
	case KindIntArray:
		return readIntArray(r)
	case KindLongArray:
		return readLongArray(r)
	case KindList:
		return readList(r)
	case KindCompound:
		return readCompound(r)
	}
	return nil, fmt.Errorf("%w: %d", wire.ErrNbtUnknownTagType, byte(k))
}

func readKind(r *wire.Reader) (Kind, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	k := Kind(b)
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %d", wire.ErrNbtUnknownTagType, b)
	}
	return k, nil
}

func readString(r *wire.Reader) (string, error) {
	n, err := wire.ReadUnsignedShort(r)
	if err != nil {
		return "", err
	}

	b, err := r.Read(int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", wire.ErrBadStringEncoding
	}
	return string(b), nil
}

// readArrayLen reads an Int count and borrows count*width bytes.
func readArrayLen(r *wire.Reader, width int) (int, []byte, error) {
	n, err := wire.ReadInt(r)
	if err != nil {
		return 0, nil, err
	}

	if n < 0 {
		return 0, nil, fmt.Errorf("%w: array count %d", wire.ErrNbtBadLength, n)
	}

	if int64(n)*int64(width) > int64(r.Remaining()) {
		return 0, nil, wire.ErrEOF
	}

	b, err := r.Read(int(n) * width)
	return int(n), b, err
}

func readByteArray(r *wire.Reader) (Tag, error) {
	_, b, err := readArrayLen(r, 1)
	if err != nil {
		return nil, err
	}
	return ByteArray(append([]byte(nil), b...)), nil
}

func readIntArray(r *wire.Reader) (Tag, error) {
	n, b, err := readArrayLen(r, 4)
	if err != nil {
		return nil, err
	}

	v := make(IntArray, n)
	for i := range v {
		v[i], b, _ = wire.Proto.ReadInt32(b)
	}
	return v, nil
}

func readLongArray(r *wire.Reader) (Tag, error) {
	n, b, err := readArrayLen(r, 8)
	if err != nil {
		return nil, err
	}

	v := make(LongArray, n)
	for i := range v {
		v[i], b, _ = wire.Proto.ReadInt64(b)
	}
	return v, nil
}

func readList(r *wire.Reader) (Tag, error) {
	elem, err := readKind(r)
	if err != nil {
		return nil, err
	}

	n, err := wire.ReadInt(r)
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		if elem != KindEnd {
			return nil, fmt.Errorf("%w: empty list of %s", wire.ErrNbtBadLength, elem)
		}
		return List{}, nil
	}

	// End payloads are zero bytes long, so a count of them is unbounded.
	if elem == KindEnd {
		return nil, fmt.Errorf("%w: %d End elements", wire.ErrNbtBadLength, n)
	}

	v := make(List, 0, min(int(n), r.Remaining()))
	for i := int32(0); i < n; i++ {
		item, err := ReadPayload(r, elem)
		if err != nil {
			return nil, err
		}
		v = append(v, item)
	}
	return v, nil
}

func readCompound(r *wire.Reader) (Tag, error) {
	var v Compound
	for {
		child, err := ReadNamedTag(r)
		if err != nil {
			return nil, err
		}

		if child.IsEnd() {
			if v == nil {
				v = Compound{}
			}
			return v, nil
		}
		v = append(v, child)
	}
}
