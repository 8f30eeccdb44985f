package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteOrderIntegers(t *testing.T) {
	for _, o := range []ByteOrder{BigEndian, LittleEndian} {
		t.Run(o.String(), func(t *testing.T) {
			for _, v := range []int64{0, 1, -1, math.MinInt64, math.MaxInt64, 0x0102030405060708} {
				b := o.WriteInt64(v)
				got, rest, err := o.ReadInt64(b[:])
				require.NoError(t, err)
				assert.Equal(t, v, got)
				assert.Empty(t, rest)
			}

			for _, v := range []int32{0, -1, math.MinInt32, math.MaxInt32} {
				b := o.WriteInt32(v)
				got, _, err := o.ReadInt32(b[:])
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}

			for _, v := range []int16{0, -1, math.MinInt16, math.MaxInt16} {
				b := o.WriteInt16(v)
				got, _, err := o.ReadInt16(b[:])
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}

			for _, v := range []int8{0, -1, math.MinInt8, math.MaxInt8} {
				b := o.WriteInt8(v)
				got, _, err := o.ReadInt8(b[:])
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}

			for _, v := range []uint64{0, math.MaxUint64} {
				b := o.WriteUint64(v)
				got, _, err := o.ReadUint64(b[:])
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}

			for _, v := range []Int128{{}, {Hi: -1, Lo: math.MaxUint64}, {Hi: math.MinInt64}, {Hi: 1, Lo: 2}} {
				b := o.WriteInt128(v)
				got, rest, err := o.ReadInt128(b[:])
				require.NoError(t, err)
				assert.Equal(t, v, got)
				assert.Empty(t, rest)
			}
		})
	}
}

func TestByteOrderLayout(t *testing.T) {
	assert.Equal(t, [4]byte{0x01, 0x02, 0x03, 0x04}, BigEndian.WriteUint32(0x01020304))
	assert.Equal(t, [4]byte{0x04, 0x03, 0x02, 0x01}, LittleEndian.WriteUint32(0x01020304))

	u := Uint128{Hi: 0x0001020304050607, Lo: 0x08090a0b0c0d0e0f}
	be := BigEndian.WriteUint128(u)
	assert.Equal(t, [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, be)
	le := LittleEndian.WriteUint128(u)
	assert.Equal(t, [16]byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, le)

	got, _, err := LittleEndian.ReadUint128(le[:])
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestByteOrderFloats(t *testing.T) {
	for _, v := range []float64{0, -0.5, math.Pi, math.Inf(1), math.SmallestNonzeroFloat64} {
		b := Proto.WriteFloat64(v)
		got, _, err := Proto.ReadFloat64(b[:])
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	// NaN payloads are kept bit for bit.
	nan := math.Float32frombits(0x7fc00001)
	b := Proto.WriteFloat32(nan)
	got, _, err := Proto.ReadFloat32(b[:])
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7fc00001), math.Float32bits(got))
}

func TestByteOrderShortInput(t *testing.T) {
	_, _, err := Proto.ReadUint8(nil)
	assert.ErrorIs(t, err, ErrEOF)

	_, _, err = Proto.ReadInt32([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrEOF)

	_, _, err = Proto.ReadUint128(make([]byte, 15))
	assert.ErrorIs(t, err, ErrEOF)

	v, rest, err := Proto.ReadUint16([]byte{0xab, 0xcd, 0xef})
	require.NoError(t, err)
	assert.Equal(t, uint16(0xabcd), v)
	assert.Equal(t, []byte{0xef}, rest)
}
