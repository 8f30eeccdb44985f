package wire_test

import (
	"bytes"
	"fmt"

	"github.com/gstoney/mcwire/wire"
)

func ExampleDecodeVarInt() {
	v, rest, err := wire.DecodeVarInt([]byte{0xac, 0x02, 0x01})
	fmt.Println(v, rest, err)
	// Output: 300 [1] <nil>
}

func ExampleReadCountedArray() {
	var buf bytes.Buffer
	_ = wire.WriteCountedArray(&buf, []string{"a", "bc"}, wire.ShortCounter, wire.WriteString)
	fmt.Printf("% x\n", buf.Bytes())

	r := wire.NewReader(buf.Bytes())
	v, err := wire.ReadCountedArray(r, wire.ShortCounter, wire.ReadString)
	fmt.Println(v, err, r.Remaining())
	// Output:
	// 00 02 01 61 02 62 63
	// [a bc] <nil> 0
}

func ExampleUnpackPosition() {
	p := wire.Position{X: -1, Y: 64, Z: 2}
	fmt.Println(wire.UnpackPosition(p.Pack()))
	// Output: (-1, 64, 2)
}
