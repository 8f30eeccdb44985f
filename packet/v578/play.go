package v578

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/gstoney/mcwire/game"
	"github.com/gstoney/mcwire/nbt"
	"github.com/gstoney/mcwire/wire"
)

// @gen:Play,ClientBound
type PlaySpawnPlayer struct {
	EntityID int32      `field:"VarInt"`
	UUID     uuid.UUID  `field:"UUID"`
	Position mgl64.Vec3 `field:"Vec3d"`
	Yaw      wire.Angle `field:"Angle"`
	Pitch    wire.Angle `field:"Angle"`
}

func (p PlaySpawnPlayer) ID() int32 {
	return 0x05
}

// @gen:Play,ClientBound
type PlayBlockEntityData struct {
	Location wire.Position              `field:"Position"`
	Action   game.BlockEntityDataAction `field:"Value"`
	NBTData  nbt.NamedTag               `field:"nbt.Root" kind:"NBT"`
}

func (p PlayBlockEntityData) ID() int32 {
	return 0x0A
}

// @gen:Play,ClientBound
type PlayBlockChange struct {
	Location wire.Position `field:"Position"`
	BlockID  int32         `field:"VarInt"`
}

func (p PlayBlockChange) ID() int32 {
	return 0x0C
}

// @gen:Play,ClientBound
type PlayServerChatMessage struct {
	Message  wire.Chat         `field:"Value"`
	Position game.ChatPosition `field:"Value"`
}

func (p PlayServerChatMessage) ID() int32 {
	return 0x0F
}

// PlayWindowItems lists every slot of a window. Empty slots are absent
// Optionals.
//
// @gen:Play,ClientBound
type PlayWindowItems struct {
	WindowID uint8                      `field:"UnsignedByte"`
	Slots    []wire.Optional[game.Slot] `field:"CountedArray" count:"Short" write:"writeOptionalSlot" read:"readOptionalSlot" kind:"CountedArray<Optional<Slot>, Short>"`
}

func (p PlayWindowItems) ID() int32 {
	return 0x15
}

// @gen:Play,ClientBound
type PlaySetSlot struct {
	WindowID int8                     `field:"Byte"`
	Slot     int16                    `field:"Short"`
	SlotData wire.Optional[game.Slot] `field:"Optional" inner:"game.Slot"`
}

func (p PlaySetSlot) ID() int32 {
	return 0x17
}

// @gen:Play,ClientBound
type PlayServerPluginMessage struct {
	Channel string              `field:"String"`
	Data    wire.RemainingBytes `field:"RemainingBytes"`
}

func (p PlayServerPluginMessage) ID() int32 {
	return 0x19
}

// @gen:Play,ClientBound
type PlayDisconnect struct {
	Reason wire.Chat `field:"Value"`
}

func (p PlayDisconnect) ID() int32 {
	return 0x1B
}

// @gen:Play,ClientBound
type PlayExplosion struct {
	Position     mgl32.Vec3             `field:"Vec3f"`
	Strength     float32                `field:"Float"`
	Records      []game.ExplosionRecord `field:"CountedArray" count:"Int" write:"wire.WriteValue[game.ExplosionRecord]" read:"wire.ReadValue[game.ExplosionRecord]" kind:"CountedArray<ExplosionRecord, Int>"`
	PlayerMotion mgl32.Vec3             `field:"Vec3f"`
}

func (p PlayExplosion) ID() int32 {
	return 0x1D
}

// @gen:Play,ClientBound
type PlayServerKeepAlive struct {
	KeepAliveID int64 `field:"Long"`
}

func (p PlayServerKeepAlive) ID() int32 {
	return 0x21
}

// PlayEntityEquipment sets one equipment slot of an entity.
//
// @gen:Play,ClientBound
type PlayEntityEquipment struct {
	EntityID int32                    `field:"VarInt"`
	Slot     game.EquipmentSlot       `field:"EquipmentSlot" write:"writeEquipmentSlot" read:"readEquipmentSlot" kind:"VarInt"`
	Item     wire.Optional[game.Slot] `field:"Optional" inner:"game.Slot"`
}

func (p PlayEntityEquipment) ID() int32 {
	return 0x47
}

// @gen:Play,ServerBound
type PlayTeleportConfirm struct {
	TeleportID int32 `field:"VarInt"`
}

func (p PlayTeleportConfirm) ID() int32 {
	return 0x00
}

// @gen:Play,ServerBound
type PlayClientChatMessage struct {
	Message string `field:"String"`
}

func (p PlayClientChatMessage) ID() int32 {
	return 0x03
}

// @gen:Play,ServerBound
type PlayClientPluginMessage struct {
	Channel string              `field:"String"`
	Data    wire.RemainingBytes `field:"RemainingBytes"`
}

func (p PlayClientPluginMessage) ID() int32 {
	return 0x0B
}

// @gen:Play,ServerBound
type PlayClientKeepAlive struct {
	KeepAliveID int64 `field:"Long"`
}

func (p PlayClientKeepAlive) ID() int32 {
	return 0x0F
}
