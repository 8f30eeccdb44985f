package wire

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type motd struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := JSON[motd]{Value: motd{Text: "hello", Color: "gold"}}
	b, err := Encode(in)
	require.NoError(t, err)

	out, rest, err := Decode[JSON[motd]](b)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, in, out)
}

func TestJSONErrors(t *testing.T) {
	_, err := Encode(JSON[float64]{Value: math.NaN()})
	assert.ErrorIs(t, err, ErrFailedJSONEncode)
	assert.True(t, IsSerializeErr(err))

	b, err := EncodeWith("{not json", WriteString)
	require.NoError(t, err)
	_, _, err = Decode[JSON[motd]](b)
	assert.ErrorIs(t, err, ErrFailedJSONDeserialize)
	assert.True(t, IsDeserializeErr(err))
	assert.False(t, IsSerializeErr(err))
}

func TestChat(t *testing.T) {
	c := NewChat("Server closed")
	b, err := Encode(c)
	require.NoError(t, err)

	got, _, err := Decode[Chat](b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Server closed"}`, string(got.Value))

	var v map[string]string
	require.NoError(t, json.Unmarshal(got.Value, &v))
	assert.Equal(t, "Server closed", v["text"])
}

func TestFixedInt(t *testing.T) {
	v := NewFixedInt(12.5, 5)
	assert.Equal(t, int32(400), v.Raw)
	assert.Equal(t, 12.5, v.Float())

	b, err := EncodeWith(v, WriteFixedInt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x90}, b)

	got, rest, err := DecodeWith(b, ReadFixedInt(5))
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, v, got)

	neg := NewFixedInt(-0.25, 5)
	assert.Equal(t, int32(-8), neg.Raw)
	assert.Equal(t, -0.25, neg.Float())
}
