package v753

import (
	"github.com/google/uuid"

	"github.com/gstoney/mcwire/packet"
	"github.com/gstoney/mcwire/wire"
)

// @gen:Login,ClientBound
type LoginDisconnect struct {
	Message wire.Chat `field:"Value"`
}

func (p LoginDisconnect) ID() int32 {
	return 0x00
}

// @gen:Login,ClientBound
type LoginEncryptionRequest struct {
	ServerID    string  `field:"String"`
	PublicKey   []uint8 `field:"CountedArray" inner:"UnsignedByte"`
	VerifyToken []uint8 `field:"CountedArray" inner:"UnsignedByte"`
}

func (p LoginEncryptionRequest) ID() int32 {
	return 0x01
}

// @gen:Login,ClientBound
type LoginSuccess struct {
	UUID     uuid.UUID `field:"UUID"`
	Username string    `field:"String"`
}

func (p LoginSuccess) ID() int32 {
	return 0x02
}

func (p LoginSuccess) Transition() packet.State {
	return packet.Play
}

// @gen:Login,ClientBound
type LoginSetCompression struct {
	Threshold int32 `field:"VarInt"`
}

func (p LoginSetCompression) ID() int32 {
	return 0x03
}

// @gen:Login,ClientBound
type LoginPluginRequest struct {
	MessageID int32               `field:"VarInt"`
	Channel   string              `field:"String"`
	Data      wire.RemainingBytes `field:"RemainingBytes"`
}

func (p LoginPluginRequest) ID() int32 {
	return 0x04
}

// @gen:Login,ServerBound
type LoginStart struct {
	Name string `field:"String"`
}

func (p LoginStart) ID() int32 {
	return 0x00
}

// @gen:Login,ServerBound
type LoginEncryptionResponse struct {
	SharedSecret []uint8 `field:"CountedArray" inner:"UnsignedByte"`
	VerifyToken  []uint8 `field:"CountedArray" inner:"UnsignedByte"`
}

func (p LoginEncryptionResponse) ID() int32 {
	return 0x01
}

// @gen:Login,ServerBound
type LoginPluginResponse struct {
	MessageID  int32               `field:"VarInt"`
	Successful bool                `field:"Boolean"`
	Data       wire.RemainingBytes `field:"RemainingBytes"`
}

func (p LoginPluginResponse) ID() int32 {
	return 0x02
}
