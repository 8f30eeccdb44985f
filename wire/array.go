package wire

import (
	"fmt"
	"io"
	"math"
)

// Counter is the encoding of the element count in front of a counted array.
type Counter struct {
	Name  string
	max   int
	write func(io.Writer, int) error
	read  func(*Reader) (int, error)
}

var (
	VarIntCounter = Counter{
		Name:  "VarInt",
		max:   math.MaxInt32,
		write: func(w io.Writer, n int) error { return WriteVarInt(w, int32(n)) },
		read: func(r *Reader) (int, error) {
			n, err := ReadVarInt(r)
			return int(n), err
		},
	}
	ByteCounter = Counter{
		Name:  "Byte",
		max:   math.MaxInt8,
		write: func(w io.Writer, n int) error { return WriteByte(w, int8(n)) },
		read: func(r *Reader) (int, error) {
			n, err := ReadByte(r)
			return int(n), err
		},
	}
	ShortCounter = Counter{
		Name:  "Short",
		max:   math.MaxInt16,
		write: func(w io.Writer, n int) error { return WriteShort(w, int16(n)) },
		read: func(r *Reader) (int, error) {
			n, err := ReadShort(r)
			return int(n), err
		},
	}
	IntCounter = Counter{
		Name:  "Int",
		max:   math.MaxInt32,
		write: func(w io.Writer, n int) error { return WriteInt(w, int32(n)) },
		read: func(r *Reader) (int, error) {
			n, err := ReadInt(r)
			return int(n), err
		},
	}
)

func (c Counter) String() string {
	return c.Name
}

func WriteCountedArray[T any](w io.Writer, v []T, c Counter, write WriteFn[T]) (err error) {
	if len(v) > c.max {
		return fmt.Errorf("%w: %d elements do not fit a %s count", ErrCannotSerialize, len(v), c.Name)
	}

	if err = c.write(w, len(v)); err != nil {
		return
	}

	for _, item := range v {
		if err = write(w, item); err != nil {
			return
		}
	}
	return
}

func ReadCountedArray[T any](r *Reader, c Counter, read ReadFn[T]) (v []T, err error) {
	length, err := c.read(r)
	if err != nil {
		return
	}

	if length < 0 {
		err = ErrNegativeLength
		return
	}

	// Cap preallocation by the input size.
	v = make([]T, 0, min(length, r.Remaining()))
	for i := 0; i < length; i++ {
		var item T
		if item, err = read(r); err != nil {
			return nil, err
		}
		v = append(v, item)
	}
	return
}

func WritePrefixedArray[T any](w io.Writer, v []T, write WriteFn[T]) error {
	return WriteCountedArray(w, v, VarIntCounter, write)
}

func ReadPrefixedArray[T any](r *Reader, read ReadFn[T]) ([]T, error) {
	return ReadCountedArray(r, VarIntCounter, read)
}
