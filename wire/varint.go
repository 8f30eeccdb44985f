package wire

import (
	"fmt"
	"io"
)

const (
	MaxVarIntLen  = 5
	MaxVarLongLen = 10
)

// VarInt is an int32 that is encoded in 1 to 5 bytes, 7 bits per byte,
// least significant group first. Negative values always take 5 bytes.
type VarInt int32

func (v VarInt) Serialize(w io.Writer) error {
	return WriteVarInt(w, int32(v))
}

func (v *VarInt) Deserialize(r *Reader) (err error) {
	n, err := ReadVarInt(r)
	*v = VarInt(n)
	return
}

// VarLong is the 64-bit counterpart of VarInt, encoded in up to 10 bytes.
type VarLong int64

func (v VarLong) Serialize(w io.Writer) error {
	return WriteVarLong(w, int64(v))
}

func (v *VarLong) Deserialize(r *Reader) (err error) {
	n, err := ReadVarLong(r)
	*v = VarLong(n)
	return
}

func appendVarNum(b []byte, uv uint64) []byte {
	for {
		if uv < 0x80 {
			return append(b, byte(uv))
		}
		b = append(b, byte(uv&0x7F)|0x80)
		uv >>= 7
	}
}

func AppendVarInt(b []byte, v int32) []byte {
	return appendVarNum(b, uint64(uint32(v)))
}

func AppendVarLong(b []byte, v int64) []byte {
	return appendVarNum(b, uint64(v))
}

func varNumSize(uv uint64) int {
	n := 1
	for uv >= 0x80 {
		uv >>= 7
		n++
	}
	return n
}

// VarIntSize returns the encoded length of v.
func VarIntSize(v int32) int {
	return varNumSize(uint64(uint32(v)))
}

func VarLongSize(v int64) int {
	return varNumSize(uint64(v))
}

func WriteVarInt(w io.Writer, v int32) error {
	var buf [MaxVarIntLen]byte
	_, err := w.Write(AppendVarInt(buf[:0], v))
	return err
}

func WriteVarLong(w io.Writer, v int64) error {
	var buf [MaxVarLongLen]byte
	_, err := w.Write(AppendVarLong(buf[:0], v))
	return err
}

func readVarNum(r io.ByteReader, maxLen int) (uint64, error) {
	var uv uint64
	var consumed [MaxVarLongLen]byte

	for n := 0; n < maxLen; n++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			err = ErrEOF
		}
		if err != nil {
			return 0, err
		}

		consumed[n] = b
		uv |= uint64(b&0x7F) << (7 * n)

		if (b & 0x80) == 0 {
			return uv, nil
		}
	}
	return 0, fmt.Errorf("%w: % x", ErrVarNumTooLong, consumed[:maxLen])
}

func ReadVarInt(r *Reader) (int32, error) {
	return ReadVarIntFromReader(r)
}

// ReadVarIntFromReader reads a VarInt from any byte source, such as a
// bufio.Reader in front of a stream. io.EOF is reported as ErrEOF.
func ReadVarIntFromReader(r io.ByteReader) (int32, error) {
	uv, err := readVarNum(r, MaxVarIntLen)
	return int32(uint32(uv)), err
}

func ReadVarLong(r *Reader) (int64, error) {
	uv, err := readVarNum(r, MaxVarLongLen)
	return int64(uv), err
}

// DecodeVarInt decodes a VarInt from the front of data and returns the rest.
func DecodeVarInt(data []byte) (int32, []byte, error) {
	r := NewReader(data)
	v, err := ReadVarInt(r)
	if err != nil {
		return 0, nil, err
	}
	return v, r.Rest(), nil
}

func DecodeVarLong(data []byte) (int64, []byte, error) {
	r := NewReader(data)
	v, err := ReadVarLong(r)
	if err != nil {
		return 0, nil, err
	}
	return v, r.Rest(), nil
}
