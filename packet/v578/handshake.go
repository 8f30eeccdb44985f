package v578

import "github.com/gstoney/mcwire/packet"

// @gen:Handshaking,ServerBound
type Handshake struct {
	Version       int32            `field:"VarInt"`
	ServerAddress string           `field:"String"`
	ServerPort    uint16           `field:"UnsignedShort"`
	NextState     packet.NextState `field:"Value"`
}

func (p Handshake) ID() int32 {
	return 0x00
}

func (p Handshake) Transition() packet.State {
	return p.NextState.State()
}
