package v753

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstoney/mcwire/game"
	"github.com/gstoney/mcwire/nbt"
	"github.com/gstoney/mcwire/packet"
	"github.com/gstoney/mcwire/wire"
)

var testUUID = uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")

func samplePackets() []Packet {
	sign := nbt.Named("", nbt.Compound{
		nbt.Named("id", nbt.String("minecraft:sign")),
		nbt.Named("Text1", nbt.String(`{"text":"hi"}`)),
	})
	lore := nbt.Named("", nbt.Compound{nbt.Named("Damage", nbt.Int(7))})

	return []Packet{
		&Handshake{Version: 753, ServerAddress: "mc.example.com", ServerPort: 25565, NextState: packet.NextStatus},
		&StatusRequest{},
		&StatusPing{Payload: 99},
		&StatusResponse{Response: wire.JSON[json.RawMessage]{Value: json.RawMessage(`{"version":{"name":"1.16.3","protocol":753}}`)}},
		&StatusPong{Payload: 99},
		&LoginDisconnect{Message: wire.NewChat("bye")},
		&LoginEncryptionRequest{ServerID: "", PublicKey: []uint8{1, 2, 3}, VerifyToken: []uint8{9, 8, 7, 6}},
		&LoginSuccess{UUID: testUUID, Username: "Notch"},
		&LoginSetCompression{Threshold: -1},
		&LoginPluginRequest{MessageID: 3, Channel: "velocity:player_info", Data: wire.RemainingBytes{0x01}},
		&LoginStart{Name: "Notch"},
		&LoginEncryptionResponse{SharedSecret: []uint8{0xaa, 0xbb}, VerifyToken: []uint8{9, 8, 7, 6}},
		&LoginPluginResponse{MessageID: 3, Successful: false, Data: wire.RemainingBytes{0x02}},
		&PlaySpawnPlayer{EntityID: 17, UUID: testUUID, Position: mgl64.Vec3{0.5, 64, -12.25}, Yaw: 255, Pitch: 0},
		&PlayBlockEntityData{Location: wire.Position{X: 30000000, Y: 255, Z: -30000000}, Action: game.SetSignText, NBTData: sign},
		&PlayBlockChange{Location: wire.Position{X: 1, Y: -64, Z: 1}, BlockID: 9},
		&PlayServerChatMessage{Message: wire.NewChat("hello"), Position: game.ChatBox, Sender: testUUID},
		&PlayWindowItems{WindowID: 1, Slots: []game.Slot{
			{},
			{ItemID: 1, Count: 64},
			{ItemID: 598, Count: 1, NBT: &lore},
		}},
		&PlaySetSlot{WindowID: -1, Slot: 36, SlotData: game.Slot{ItemID: 280, Count: 2}},
		&PlayServerPluginMessage{Channel: "minecraft:brand", Data: wire.RemainingBytes("\x07vanilla")},
		&PlayDisconnect{Reason: wire.NewChat("kicked")},
		&PlayExplosion{
			Position:     mgl32.Vec3{1, 2, 3},
			Strength:     4,
			Records:      []game.ExplosionRecord{{X: 1, Y: -1, Z: 0}},
			PlayerMotion: mgl32.Vec3{0, 0.5, 0},
		},
		&PlayServerKeepAlive{KeepAliveID: 42},
		&PlayEntityEquipment{EntityID: 5, Equipment: EquipmentArray{
			{Slot: game.MainHand, Item: game.Slot{ItemID: 276, Count: 1}},
			{Slot: game.ArmorHelmet, Item: game.Slot{ItemID: 306, Count: 1, NBT: &lore}},
		}},
		&PlayTeleportConfirm{TeleportID: 1},
		&PlayClientChatMessage{Message: "/help"},
		&PlayClientPluginMessage{Channel: "minecraft:brand", Data: wire.RemainingBytes("\x06fabric")},
		&PlayClientKeepAlive{KeepAliveID: 42},
		&PlayUpdateStructureBlock{
			Location:  wire.Position{X: 10, Y: 60, Z: -10},
			Action:    1,
			Mode:      0,
			Name:      "minecraft:village/house",
			OffsetX:   0,
			OffsetY:   1,
			OffsetZ:   -1,
			SizeX:     32,
			SizeY:     16,
			SizeZ:     32,
			Mirror:    0,
			Rotation:  2,
			Metadata:  "",
			Integrity: 1,
			Seed:      -5,
			Flags:     0x04,
		},
	}
}

func TestRoundTripEveryPacket(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range samplePackets() {
		t.Run(p.PacketName(), func(t *testing.T) {
			seen[p.PacketName()] = true

			b, err := packet.Marshal(p)
			require.NoError(t, err)

			id := p.Identity()
			got, err := Protocol.Unmarshal(id.State, id.Direction, b)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}

	for _, reg := range Protocol.Registrations() {
		assert.True(t, seen[reg.Name], "no sample for %s", reg.Name)
	}
}

func TestLoginSuccessUUIDBytes(t *testing.T) {
	b, err := wire.Encode(LoginSuccess{UUID: testUUID, Username: "a"})
	require.NoError(t, err)
	assert.Equal(t, append(testUUID[:], 0x01, 'a'), b)
}

func TestEquipmentArray(t *testing.T) {
	arr := EquipmentArray{
		{Slot: game.OffHand, Item: game.Slot{ItemID: 1, Count: 1}},
		{Slot: game.ArmorBoots, Item: game.Slot{ItemID: 2, Count: 1}},
	}
	b, err := wire.Encode(arr)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81, 0x01, 0x01, 0x00, 0x02, 0x02, 0x01, 0x00}, b)

	got, rest, err := wire.Decode[EquipmentArray](append(b, 0xee))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xee}, rest)
	assert.Equal(t, arr, got)

	_, err = wire.Encode(EquipmentArray{})
	assert.ErrorIs(t, err, wire.ErrCannotSerialize)

	_, err = wire.Encode(EquipmentArray{{Slot: 7}})
	assert.ErrorIs(t, err, wire.ErrCannotSerialize)

	_, _, err = wire.Decode[EquipmentArray](nil)
	assert.ErrorIs(t, err, wire.ErrEOF)

	_, _, err = wire.Decode[EquipmentArray]([]byte{0x06, 0x01, 0x01, 0x00})
	assert.ErrorIs(t, err, wire.ErrCannotUnderstandValue)

	// The continuation bit promises another entry.
	_, _, err = wire.Decode[EquipmentArray]([]byte{0x80, 0x01, 0x01, 0x00})
	assert.ErrorIs(t, err, wire.ErrEOF)
}

func TestMovedIDs(t *testing.T) {
	for _, tc := range []struct {
		id   packet.Identity
		name string
	}{
		{packet.Identity{ID: 0x04, State: packet.Play, Direction: packet.ClientBound}, "PlaySpawnPlayer"},
		{packet.Identity{ID: 0x0E, State: packet.Play, Direction: packet.ClientBound}, "PlayServerChatMessage"},
		{packet.Identity{ID: 0x1F, State: packet.Play, Direction: packet.ClientBound}, "PlayServerKeepAlive"},
		{packet.Identity{ID: 0x10, State: packet.Play, Direction: packet.ServerBound}, "PlayClientKeepAlive"},
		{packet.Identity{ID: 0x2A, State: packet.Play, Direction: packet.ServerBound}, "PlayUpdateStructureBlock"},
	} {
		reg, ok := Protocol.Lookup(tc.id)
		require.True(t, ok, tc.id.String())
		assert.Equal(t, tc.name, reg.Name)
	}

	_, err := Protocol.Raw(packet.Identity{ID: 0x0F, State: packet.Play, Direction: packet.ServerBound}, nil)
	assert.ErrorIs(t, err, packet.ErrUnknownID)
}

func TestDescribe(t *testing.T) {
	s := Protocol.Describe()
	assert.Equal(t, "Packet753", s.Name)
	assert.Equal(t, int32(753), s.Version)
	assert.Len(t, s.Packets, len(samplePackets()))

	reg, ok := Protocol.Lookup(PlayWindowItems{}.Identity())
	require.True(t, ok)
	assert.Equal(t, "CountedArray<Slot, Short>", reg.Fields[1].Kind)

	reg, ok = Protocol.Lookup(PlayEntityEquipment{}.Identity())
	require.True(t, ok)
	assert.Equal(t, "EquipmentArray", reg.Fields[1].Kind)
}
