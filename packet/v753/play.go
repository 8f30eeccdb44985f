package v753

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
	return 0x04
}

// @gen:Play,ClientBound
type PlayBlockEntityData struct {
	Location wire.Position              `field:"Position"`
	Action   game.BlockEntityDataAction `field:"Value"`
	NBTData  nbt.NamedTag               `field:"nbt.Root" kind:"NBT"`
}

func (p PlayBlockEntityData) ID() int32 {
	return 0x09
}

// @gen:Play,ClientBound
type PlayBlockChange struct {
	Location wire.Position `field:"Position"`
	BlockID  int32         `field:"VarInt"`
}

func (p PlayBlockChange) ID() int32 {
	return 0x0B
}

// @gen:Play,ClientBound
type PlayServerChatMessage struct {
	Message  wire.Chat         `field:"Value"`
	Position game.ChatPosition `field:"Value"`
	Sender   uuid.UUID         `field:"UUID"`
}

func (p PlayServerChatMessage) ID() int32 {
	return 0x0E
}

// PlayWindowItems lists every slot of a window. An empty slot is a Slot with
// item id 0 and no NBT.
//
// @gen:Play,ClientBound
type PlayWindowItems struct {
	WindowID uint8       `field:"UnsignedByte"`
	Slots    []game.Slot `field:"CountedArray" count:"Short" inner:"game.Slot"`
}

func (p PlayWindowItems) ID() int32 {
	return 0x13
}

// @gen:Play,ClientBound
type PlaySetSlot struct {
	WindowID int8      `field:"Byte"`
	Slot     int16     `field:"Short"`
	SlotData game.Slot `field:"Value"`
}

func (p PlaySetSlot) ID() int32 {
	return 0x15
}

// @gen:Play,ClientBound
type PlayServerPluginMessage struct {
	Channel string              `field:"String"`
	Data    wire.RemainingBytes `field:"RemainingBytes"`
}

func (p PlayServerPluginMessage) ID() int32 {
	return 0x17
}

// @gen:Play,ClientBound
type PlayDisconnect struct {
	Reason wire.Chat `field:"Value"`
}

func (p PlayDisconnect) ID() int32 {
	return 0x19
}

// @gen:Play,ClientBound
type PlayExplosion struct {
	Position     mgl32.Vec3             `field:"Vec3f"`
	Strength     float32                `field:"Float"`
	Records      []game.ExplosionRecord `field:"CountedArray" count:"Int" write:"wire.WriteValue[game.ExplosionRecord]" read:"wire.ReadValue[game.ExplosionRecord]" kind:"CountedArray<ExplosionRecord, Int>"`
	PlayerMotion mgl32.Vec3             `field:"Vec3f"`
}

func (p PlayExplosion) ID() int32 {
	return 0x1B
}

// @gen:Play,ClientBound
type PlayServerKeepAlive struct {
	KeepAliveID int64 `field:"Long"`
}

func (p PlayServerKeepAlive) ID() int32 {
	return 0x1F
}

// @gen:Play,ClientBound
type PlayEntityEquipment struct {
	EntityID  int32          `field:"VarInt"`
	Equipment EquipmentArray `field:"Value"`
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
	return 0x10
}

// PlayUpdateStructureBlock is sent when a player saves a structure block's
// settings.
//
// @gen:Play,ServerBound
type PlayUpdateStructureBlock struct {
	Location  wire.Position `field:"Position"`
	Action    int32         `field:"VarInt"`
	Mode      int32         `field:"VarInt"`
	Name      string        `field:"String"`
	OffsetX   int8          `field:"Byte"`
	OffsetY   int8          `field:"Byte"`
	OffsetZ   int8          `field:"Byte"`
	SizeX     int8          `field:"Byte"`
	SizeY     int8          `field:"Byte"`
	SizeZ     int8          `field:"Byte"`
	Mirror    int32         `field:"VarInt"`
	Rotation  int32         `field:"VarInt"`
	Metadata  string        `field:"String"`
	Integrity float32       `field:"Float"`
	Seed      int64         `field:"VarLong"`
	Flags     int8          `field:"Byte"`
}

func (p PlayUpdateStructureBlock) ID() int32 {
	return 0x2A
}
