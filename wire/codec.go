package wire

import (
	"bytes"
	"io"
)

// Serializer appends the canonical wire form of a value to w.
type Serializer interface {
	Serialize(w io.Writer) error
}

// Deserializer decodes a value from the cursor, advancing it past the value.
// The input is never modified.
type Deserializer interface {
	Deserialize(r *Reader) error
}

type WriteFn[T any] func(io.Writer, T) error
type ReadFn[T any] func(*Reader) (T, error)

// Encode returns the wire form of v in a new buffer.
func Encode(v Serializer) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func EncodeWith[T any](v T, write WriteFn[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes a T from the front of data and returns the unconsumed
// suffix, which borrows from data.
func Decode[T any, PT interface {
	*T
	Deserializer
}](data []byte) (v T, rest []byte, err error) {
	r := NewReader(data)
	if err = PT(&v).Deserialize(r); err != nil {
		return
	}
	return v, r.Rest(), nil
}

func DecodeWith[T any](data []byte, read ReadFn[T]) (v T, rest []byte, err error) {
	r := NewReader(data)
	if v, err = read(r); err != nil {
		return
	}
	return v, r.Rest(), nil
}

// WriteValue and ReadValue expose Serializer and Deserializer implementations
// as WriteFn and ReadFn, for use with Optional and CountedArray.
func WriteValue[T Serializer](w io.Writer, v T) error {
	return v.Serialize(w)
}

func ReadValue[T any, PT interface {
	*T
	Deserializer
}](r *Reader) (v T, err error) {
	err = PT(&v).Deserialize(r)
	return
}
