package packet

import (
	"bytes"

	"github.com/gstoney/mcwire/wire"
)

// Marshal returns the VarInt id of p followed by its body: the packet as it
// sits inside a transport frame.
func Marshal(p Packet) ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteVarInt(&buf, p.ID()); err != nil {
		return nil, err
	}
	if err := p.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Split reads the id from the front of data. The body borrows from data.
func Split(data []byte) (id int32, body []byte, err error) {
	return wire.DecodeVarInt(data)
}

// Unmarshal splits data and materializes it in state s and direction d.
func (p *Protocol) Unmarshal(s State, d Direction, data []byte) (Packet, error) {
	id, body, err := Split(data)
	if err != nil {
		return nil, err
	}
	return p.Decode(Identity{ID: id, State: s, Direction: d}, body)
}
