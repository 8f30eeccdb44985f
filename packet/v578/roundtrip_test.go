package v578

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
		&Handshake{Version: 578, ServerAddress: "localhost", ServerPort: 25565, NextState: packet.NextLogin},
		&StatusRequest{},
		&StatusPing{Payload: 1234567890123},
		&StatusResponse{Response: wire.JSON[json.RawMessage]{Value: json.RawMessage(`{"version":{"name":"1.15.2","protocol":578}}`)}},
		&StatusPong{Payload: -1},
		&LoginDisconnect{Message: wire.NewChat("bye")},
		&LoginEncryptionRequest{ServerID: "", PublicKey: []uint8{1, 2, 3}, VerifyToken: []uint8{9, 8, 7, 6}},
		&LoginSuccess{UUIDString: testUUID.String(), Username: "Notch"},
		&LoginSetCompression{Threshold: 256},
		&LoginPluginRequest{MessageID: 3, Channel: "velocity:player_info", Data: wire.RemainingBytes{0x01}},
		&LoginStart{Name: "Notch"},
		&LoginEncryptionResponse{SharedSecret: []uint8{0xaa, 0xbb}, VerifyToken: []uint8{9, 8, 7, 6}},
		&LoginPluginResponse{MessageID: 3, Successful: true, Data: wire.RemainingBytes{0x02, 0x03}},
		&PlaySpawnPlayer{EntityID: 17, UUID: testUUID, Position: mgl64.Vec3{0.5, 64, -12.25}, Yaw: 64, Pitch: 200},
		&PlayBlockEntityData{Location: wire.Position{X: -3, Y: 70, Z: 12}, Action: game.SetSignText, NBTData: sign},
		&PlayBlockChange{Location: wire.Position{X: 1, Y: -64, Z: 1}, BlockID: 9},
		&PlayServerChatMessage{Message: wire.NewChat("hello"), Position: game.SystemMessage},
		&PlayWindowItems{WindowID: 0, Slots: []wire.Optional[game.Slot]{
			{},
			wire.Some(game.Slot{ItemID: 1, Count: 64}),
			wire.Some(game.Slot{ItemID: 598, Count: 1, NBT: &lore}),
		}},
		&PlaySetSlot{WindowID: -1, Slot: 36, SlotData: wire.Some(game.Slot{ItemID: 280, Count: 2})},
		&PlayServerPluginMessage{Channel: "minecraft:brand", Data: wire.RemainingBytes("\x07vanilla")},
		&PlayDisconnect{Reason: wire.NewChat("kicked")},
		&PlayExplosion{
			Position:     mgl32.Vec3{1, 2, 3},
			Strength:     4,
			Records:      []game.ExplosionRecord{{X: 1, Y: -1, Z: 0}, {X: -128, Y: 127, Z: 5}},
			PlayerMotion: mgl32.Vec3{0, 0.5, 0},
		},
		&PlayServerKeepAlive{KeepAliveID: 42},
		&PlayEntityEquipment{EntityID: 5, Slot: game.ArmorHelmet, Item: wire.Some(game.Slot{ItemID: 306, Count: 1})},
		&PlayTeleportConfirm{TeleportID: 1},
		&PlayClientChatMessage{Message: "/help"},
		&PlayClientPluginMessage{Channel: "minecraft:brand", Data: wire.RemainingBytes("\x06fabric")},
		&PlayClientKeepAlive{KeepAliveID: 42},
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

func TestHandshakeBytes(t *testing.T) {
	b, err := packet.Marshal(&Handshake{Version: 578, ServerAddress: "localhost", ServerPort: 25565, NextState: packet.NextStatus})
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte{0x00, 0xc2, 0x04, 0x09}, "localhost"...), 0x63, 0xdd, 0x01), b)
}

func TestTransitions(t *testing.T) {
	var tr packet.Transitioner = Handshake{NextState: packet.NextStatus}
	assert.Equal(t, packet.Status, tr.Transition())

	tr = LoginSuccess{}
	assert.Equal(t, packet.Play, tr.Transition())
}

func TestStateScopedIDs(t *testing.T) {
	// 0x00 is a different packet in every state and direction.
	for _, tc := range []struct {
		id   packet.Identity
		name string
	}{
		{packet.Identity{ID: 0, State: packet.Handshaking, Direction: packet.ServerBound}, "Handshake"},
		{packet.Identity{ID: 0, State: packet.Status, Direction: packet.ServerBound}, "StatusRequest"},
		{packet.Identity{ID: 0, State: packet.Status, Direction: packet.ClientBound}, "StatusResponse"},
		{packet.Identity{ID: 0, State: packet.Login, Direction: packet.ServerBound}, "LoginStart"},
		{packet.Identity{ID: 0, State: packet.Login, Direction: packet.ClientBound}, "LoginDisconnect"},
		{packet.Identity{ID: 0, State: packet.Play, Direction: packet.ServerBound}, "PlayTeleportConfirm"},
	} {
		reg, ok := Protocol.Lookup(tc.id)
		require.True(t, ok, tc.id.String())
		assert.Equal(t, tc.name, reg.Name)
	}

	_, err := Protocol.Raw(packet.Identity{ID: 0, State: packet.Play, Direction: packet.ClientBound}, nil)
	assert.ErrorIs(t, err, packet.ErrUnknownID)
}

func TestDecodeFailures(t *testing.T) {
	id := PlayEntityEquipment{}.Identity()

	// Equipment slot 6 does not exist.
	_, err := Protocol.Decode(id, []byte{0x05, 0x06, 0x00})
	assert.ErrorIs(t, err, packet.ErrDeserializeFailed)
	assert.ErrorIs(t, err, wire.ErrCannotUnderstandValue)

	_, err = Protocol.Decode(PlayServerKeepAlive{}.Identity(), []byte{0, 0, 0, 0, 0, 0, 0, 1, 0xff})
	assert.ErrorIs(t, err, packet.ErrExtraData)

	_, err = wire.Encode(PlayEntityEquipment{Slot: 9})
	assert.ErrorIs(t, err, wire.ErrCannotSerialize)

	_, err = wire.Encode(PlayServerChatMessage{Message: wire.NewChat("x"), Position: 3})
	assert.ErrorIs(t, err, wire.ErrCannotSerialize)
}

func TestDescribe(t *testing.T) {
	s := Protocol.Describe()
	assert.Equal(t, "Packet578", s.Name)
	assert.Equal(t, int32(578), s.Version)
	assert.Len(t, s.Packets, len(samplePackets()))

	reg, ok := Protocol.Lookup(PlayWindowItems{}.Identity())
	require.True(t, ok)
	assert.Equal(t, []packet.Field{
		{Name: "WindowID", Kind: "UnsignedByte"},
		{Name: "Slots", Kind: "CountedArray<Optional<Slot>, Short>"},
	}, reg.Fields)

	reg, ok = Protocol.Lookup(PlayBlockEntityData{}.Identity())
	require.True(t, ok)
	assert.Equal(t, "NBT", reg.Fields[2].Kind)
	assert.Equal(t, "BlockEntityDataAction", reg.Fields[1].Kind)
}
