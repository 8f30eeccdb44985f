package wire

import (
	"bytes"
	"errors"
	"io"
	"math"
	"reflect"
	"testing"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

func testWrite[T any](t *testing.T, name string, tcs []TestCase[T], write WriteFn[T]) {
	t.Helper()
	for _, tC := range tcs {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := write(&buf, tC.v); err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("%s expected %x, got %x", name, tC.ser, buf.Bytes())
			}
		})
	}
}

func testRead[T any](t *testing.T, name string, tcs []TestCase[T], read ReadFn[T]) {
	t.Helper()
	for _, tC := range tcs {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewReader(tC.ser)

			got, err := read(r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("%s expected error %v, but succeeded and returned value %v", name, tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("%s expected error %v, but got error %v", name, tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}

			if !reflect.DeepEqual(got, tC.v) {
				t.Errorf("%s expected %v, got %v", name, tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var varintTc = []TestCase[int32]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "One",
		v:    1,
		ser:  []byte{0x01},
	},
	{
		desc: "Max single byte (127)",
		v:    127,
		ser:  []byte{0x7f},
	},
	{
		desc: "Min two bytes (128)",
		v:    128,
		ser:  []byte{0x80, 0x01},
	},
	{
		desc: "Three hundred",
		v:    300,
		ser:  []byte{0xac, 0x02},
	},
	{
		desc: "Small three bytes (25565)",
		v:    25565,
		ser:  []byte{0xdd, 0xc7, 0x01},
	},
	{
		desc: "Max three bytes (2097151)",
		v:    2097151,
		ser:  []byte{0xff, 0xff, 0x7f},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    math.MaxInt32,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc: "Min negative int32 (-2147483648)",
		v:    math.MinInt32,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x08},
	},
	{
		desc:      "VarInt too long",
		expectErr: ErrVarNumTooLong,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: ErrEOF,
		ser:       []byte{0xff, 0xff, 0xff, 0xff},
	},
	{
		desc:      "Empty input",
		expectErr: ErrEOF,
		ser:       []byte{},
	},
}

func TestWriteVarInt(t *testing.T) {
	testWrite(t, "WriteVarInt", varintTc, WriteVarInt)
}

func TestReadVarInt(t *testing.T) {
	testRead(t, "ReadVarInt", varintTc, ReadVarInt)
}

var varlongTc = []TestCase[int64]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "Max positive int32",
		v:    math.MaxInt32,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Max positive int64",
		v:    math.MaxInt64,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	},
	{
		desc: "Negative one",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
	},
	{
		desc: "Min negative int64",
		v:    math.MinInt64,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
	},
	{
		desc:      "VarLong too long",
		expectErr: ErrVarNumTooLong,
		ser:       bytes.Repeat([]byte{0x80}, 11),
	},
	{
		desc:      "Unexpected EOF",
		expectErr: ErrEOF,
		ser:       []byte{0x80, 0x80},
	},
}

func TestWriteVarLong(t *testing.T) {
	testWrite(t, "WriteVarLong", varlongTc, WriteVarLong)
}

func TestReadVarLong(t *testing.T) {
	testRead(t, "ReadVarLong", varlongTc, ReadVarLong)
}

var booleanTc = []TestCase[bool]{
	{
		desc: "False",
		v:    false,
		ser:  []byte{0x00},
	},
	{
		desc: "True",
		v:    true,
		ser:  []byte{0x01},
	},
	{
		desc:      "Read fail: byte outside 0 and 1",
		expectErr: ErrInvalidBool,
		ser:       []byte{0x02},
	},
	{
		desc:      "Read fail: empty",
		expectErr: ErrEOF,
		ser:       []byte{},
	},
}

func TestWriteBoolean(t *testing.T) {
	testWrite(t, "WriteBoolean", booleanTc, WriteBoolean)
}

func TestReadBoolean(t *testing.T) {
	testRead(t, "ReadBoolean", booleanTc, ReadBoolean)
}

var stringTc = []TestCase[string]{
	{
		desc: "Empty string",
		v:    "",
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "ASCII string",
		v:    "Hello",
		ser:  []byte{0x05, 0x48, 0x65, 0x6c, 0x6c, 0x6f}, // Length 5 (0x05) + ASCII bytes
	},
	{
		desc: "Unicode string",
		v:    "Go \U0001F389", // The emoji is 4 bytes in UTF-8. Total length: 2 + 1 + 4 = 7 bytes
		ser:  []byte{0x07, 0x47, 0x6f, 0x20, 0xf0, 0x9f, 0x8e, 0x89},
	},
	{
		desc: "Multi byte length (128 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 128)),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'a'}, 128)...),
	},
	{
		desc: "Large string (3 byte length)",
		v:    string(bytes.Repeat([]byte{'z'}, 40000)),
		ser:  append([]byte{0xc0, 0xb8, 0x02}, bytes.Repeat([]byte{'z'}, 40000)...),
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: ErrEOF,
		ser:       []byte{0x80}, // Missing the second byte of the VarInt length (e.g., length 128)
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: ErrEOF,
		ser:       []byte{0x05, 0x48, 0x65, 0x6c}, // Length 5 (0x05), but only 3 bytes of data follow
	},
	{
		desc:      "Read fail: Negative length prefix",
		expectErr: ErrNegativeLength,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, // VarInt encoding for -1
	},
	{
		desc:      "Read fail: invalid UTF-8",
		expectErr: ErrBadStringEncoding,
		ser:       []byte{0x02, 0xc3, 0x28},
	},
}

func TestWriteString(t *testing.T) {
	testWrite(t, "WriteString", stringTc, WriteString)
}

func TestReadString(t *testing.T) {
	testRead(t, "ReadString", stringTc, ReadString)
}

var pArrayTc = []TestCase[[]uint8]{
	{
		desc: "Empty array",
		v:    []uint8{},
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "Small array (Length 3)",
		v:    []uint8{10, 20, 30},
		ser:  []byte{0x03, 10, 20, 30}, // Length 3 (0x03) + data
	},
	{
		desc: "Large array (Length 128)",
		v:    bytes.Repeat([]byte{0xAA}, 128),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{0xAA}, 128)...),
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: ErrEOF,
		ser:       []byte{0x80},
	},
	{
		desc:      "Read fail: EOF reading array elements",
		expectErr: ErrEOF,
		ser:       []byte{0x03, 10, 20}, // Length 3 (0x03), but only 2 bytes of data follow
	},
	{
		desc:      "Read fail: negative length",
		expectErr: ErrNegativeLength,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc:      "Read fail: huge length with no data",
		expectErr: ErrEOF,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
}

func TestWritePrefixedArray(t *testing.T) {
	testWrite(t, "WritePrefixedArray", pArrayTc, func(w io.Writer, v []uint8) error {
		return WritePrefixedArray(w, v, WriteUnsignedByte)
	})
}

func TestReadPrefixedArray(t *testing.T) {
	testRead(t, "ReadPrefixedArray", pArrayTc, func(r *Reader) ([]uint8, error) {
		return ReadPrefixedArray(r, ReadUnsignedByte)
	})
}

func TestCountedArrayCounters(t *testing.T) {
	items := []int16{1, -1}
	testCases := []struct {
		counter Counter
		ser     []byte
	}{
		{VarIntCounter, []byte{0x02, 0x00, 0x01, 0xff, 0xff}},
		{ByteCounter, []byte{0x02, 0x00, 0x01, 0xff, 0xff}},
		{ShortCounter, []byte{0x00, 0x02, 0x00, 0x01, 0xff, 0xff}},
		{IntCounter, []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x01, 0xff, 0xff}},
	}

	for _, tC := range testCases {
		t.Run(tC.counter.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCountedArray(&buf, items, tC.counter, WriteShort); err != nil {
				t.Fatalf("WriteCountedArray failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteCountedArray expected %x, got %x", tC.ser, buf.Bytes())
			}

			r := NewReader(tC.ser)
			got, err := ReadCountedArray(r, tC.counter, ReadShort)
			if err != nil {
				t.Fatalf("ReadCountedArray failed: %v", err)
			}
			if !reflect.DeepEqual(got, items) {
				t.Errorf("ReadCountedArray expected %v, got %v", items, got)
			}
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

func TestCountedArrayLimits(t *testing.T) {
	err := WriteCountedArray(io.Discard, make([]uint8, 128), ByteCounter, WriteUnsignedByte)
	if !errors.Is(err, ErrCannotSerialize) {
		t.Errorf("expected %v for 128 elements behind a Byte count, got %v", ErrCannotSerialize, err)
	}

	_, err = ReadCountedArray(NewReader([]byte{0xff}), ByteCounter, ReadUnsignedByte)
	if !errors.Is(err, ErrNegativeLength) {
		t.Errorf("expected %v for a negative Byte count, got %v", ErrNegativeLength, err)
	}
}

var optionalTc = []TestCase[Optional[uint8]]{
	{
		desc: "Value is Present",
		v:    Some[uint8](0x42),
		ser:  []byte{0x01, 0x42}, // True (0x01) + Item (0x42)
	},
	{
		desc: "Value is Absent",
		v:    Optional[uint8]{},
		ser:  []byte{0x00}, // False (0x00)
	},
	{
		desc:      "Read fail: EOF on Boolean prefix",
		expectErr: ErrEOF,
		ser:       []byte{},
	},
	{
		desc:      "Read fail: EOF reading Item when Exists is true",
		expectErr: ErrEOF,
		ser:       []byte{0x01}, // True (0x01), but no item byte follows
	},
	{
		desc:      "Read fail: presence flag is not a Boolean",
		expectErr: ErrInvalidBool,
		ser:       []byte{0x05, 0x42},
	},
}

func TestWriteOptional(t *testing.T) {
	testWrite(t, "WriteOptional", optionalTc, func(w io.Writer, v Optional[uint8]) error {
		return WriteOptional(w, v, WriteUnsignedByte)
	})
}

func TestReadOptional(t *testing.T) {
	testRead(t, "ReadOptional", optionalTc, func(r *Reader) (Optional[uint8], error) {
		return ReadOptional(r, ReadUnsignedByte)
	})
}

func TestFixedWidthFields(t *testing.T) {
	var buf bytes.Buffer
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(WriteByte(&buf, -2))
	must(WriteShort(&buf, math.MinInt16))
	must(WriteUnsignedShort(&buf, 25565))
	must(WriteInt(&buf, -123456))
	must(WriteLong(&buf, math.MaxInt64))
	must(WriteFloat(&buf, 1.5))
	must(WriteDouble(&buf, -0.25))

	expected := []byte{
		0xfe,
		0x80, 0x00,
		0x63, 0xdd,
		0xff, 0xfe, 0x1d, 0xc0,
		0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x3f, 0xc0, 0x00, 0x00,
		0xbf, 0xd0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("expected %x, got %x", expected, buf.Bytes())
	}

	r := NewReader(buf.Bytes())
	if v, err := ReadByte(r); err != nil || v != -2 {
		t.Errorf("ReadByte = %d, %v", v, err)
	}
	if v, err := ReadShort(r); err != nil || v != math.MinInt16 {
		t.Errorf("ReadShort = %d, %v", v, err)
	}
	if v, err := ReadUnsignedShort(r); err != nil || v != 25565 {
		t.Errorf("ReadUnsignedShort = %d, %v", v, err)
	}
	if v, err := ReadInt(r); err != nil || v != -123456 {
		t.Errorf("ReadInt = %d, %v", v, err)
	}
	if v, err := ReadLong(r); err != nil || v != math.MaxInt64 {
		t.Errorf("ReadLong = %d, %v", v, err)
	}
	if v, err := ReadFloat(r); err != nil || v != 1.5 {
		t.Errorf("ReadFloat = %v, %v", v, err)
	}
	if v, err := ReadDouble(r); err != nil || v != -0.25 {
		t.Errorf("ReadDouble = %v, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
	}

	if _, err := ReadLong(NewReader(nil)); !errors.Is(err, ErrEOF) {
		t.Errorf("ReadLong on empty input expected %v, got %v", ErrEOF, err)
	}
}

func TestAngleFullRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		var buf bytes.Buffer
		if err := WriteAngle(&buf, Angle(i)); err != nil {
			t.Fatal(err)
		}

		got, err := ReadAngle(NewReader(buf.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		if got != Angle(i) {
			t.Errorf("Angle %d decoded as %d", i, got)
		}
	}

	if d := Angle(64).Degrees(); d != 90 {
		t.Errorf("Angle(64).Degrees() = %v, want 90", d)
	}
}

func TestRemainingBytesBorrows(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(data)
	if _, err := r.ReadByte(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRemainingBytes(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data[1:]) {
		t.Fatalf("expected %x, got %x", data[1:], got)
	}
	if &got[0] != &data[1] {
		t.Error("RemainingBytes copied the input")
	}
	if r.Remaining() != 0 {
		t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
	}
}
