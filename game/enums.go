package game

import (
	"fmt"
	"io"

	"github.com/gstoney/mcwire/wire"
)

// readByteEnum reads one unsigned byte and checks it against the known values.
func readByteEnum(r *wire.Reader, name string, valid func(uint8) bool) (uint8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if !valid(b) {
		return 0, fmt.Errorf("%w: %s 0x%02x", wire.ErrCannotUnderstandValue, name, b)
	}
	return b, nil
}

func writeByteEnum(w io.Writer, name string, v uint8, valid func(uint8) bool) error {
	if !valid(v) {
		return fmt.Errorf("%w: %s 0x%02x", wire.ErrCannotSerialize, name, v)
	}
	return wire.WriteUnsignedByte(w, v)
}

// ChatPosition is where a chat message is shown.
type ChatPosition uint8

const (
	ChatBox ChatPosition = iota
	SystemMessage
	GameInfo
)

func (p ChatPosition) Valid() bool {
	return p <= GameInfo
}

func (p ChatPosition) Serialize(w io.Writer) error {
	return writeByteEnum(w, "ChatPosition", uint8(p), func(b uint8) bool { return ChatPosition(b).Valid() })
}

func (p *ChatPosition) Deserialize(r *wire.Reader) error {
	b, err := readByteEnum(r, "ChatPosition", func(b uint8) bool { return ChatPosition(b).Valid() })
	*p = ChatPosition(b)
	return err
}

// BlockEntityDataAction says which block entity an update is for.
type BlockEntityDataAction uint8

const (
	SetMobSpawnerData BlockEntityDataAction = iota + 1
	SetCommandBlockText
	SetBeaconLevelAndPower
	SetMobHeadRotationAndSkin
	DeclareConduit
	SetBannerColorAndPatterns
	SetStructureTileEntityData
	SetEndGatewayDestination
	SetSignText
	_
	DeclareBed
	SetJigsawBlockData
	SetCampfireItems
	BeehiveInformation
)

func (a BlockEntityDataAction) Valid() bool {
	return a >= SetMobSpawnerData && a <= BeehiveInformation && a != 0x0A
}

func (a BlockEntityDataAction) Serialize(w io.Writer) error {
	return writeByteEnum(w, "BlockEntityDataAction", uint8(a), func(b uint8) bool { return BlockEntityDataAction(b).Valid() })
}

func (a *BlockEntityDataAction) Deserialize(r *wire.Reader) error {
	b, err := readByteEnum(r, "BlockEntityDataAction", func(b uint8) bool { return BlockEntityDataAction(b).Valid() })
	*a = BlockEntityDataAction(b)
	return err
}

// EquipmentSlot is an entity's equipment position. Its wire form differs by
// version, so it has no codec of its own.
type EquipmentSlot uint8

const (
	MainHand EquipmentSlot = iota
	OffHand
	ArmorBoots
	ArmorLeggings
	ArmorChestplate
	ArmorHelmet
)

func (s EquipmentSlot) Valid() bool {
	return s <= ArmorHelmet
}
