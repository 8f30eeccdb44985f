package cmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstoney/mcwire/internal/capture"
	"github.com/gstoney/mcwire/nbt"
	"github.com/gstoney/mcwire/packet"
	v578 "github.com/gstoney/mcwire/packet/v578"
)

// run executes the command line with isolated config and returns stdout and
// stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "none.toml"),
		"--env-file", filepath.Join(dir, "none.env"),
	}

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append(base, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDescribeJSON(t *testing.T) {
	out, _, err := run(t, "describe", "--protocol", "578", "--format", "json")
	require.NoError(t, err)

	var spec struct {
		Name    string `json:"name"`
		Version int32  `json:"version"`
		Packets []struct {
			Name      string `json:"name"`
			State     string `json:"state"`
			Direction string `json:"direction"`
		} `json:"packets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &spec))
	assert.Equal(t, "Packet578", spec.Name)
	assert.Equal(t, int32(578), spec.Version)
	require.NotEmpty(t, spec.Packets)
	assert.Equal(t, "Handshake", spec.Packets[0].Name)
	assert.Equal(t, "Handshaking", spec.Packets[0].State)
	assert.Equal(t, "ServerBound", spec.Packets[0].Direction)
}

func TestDescribeTOML(t *testing.T) {
	out, _, err := run(t, "describe")
	require.NoError(t, err)

	var spec map[string]any
	_, err = toml.Decode(out, &spec)
	require.NoError(t, err)
	assert.Equal(t, "Packet753", spec["name"])
	assert.Equal(t, int64(753), spec["version"])

	_, _, err = run(t, "describe", "--format", "yaml")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "decode", "--state", "status", "--direction", "serverbound", "01 00000000 0000002a")
	require.NoError(t, err)
	assert.Equal(t, "Status/ServerBound/0x01 StatusPing &{Payload:42}\n", out)

	_, _, err = run(t, "decode", "--state", "status", "--direction", "serverbound", "7f")
	assert.ErrorIs(t, err, packet.ErrUnknownID)

	_, _, err = run(t, "decode", "zz")
	assert.ErrorContains(t, err, "bad hex")

	_, _, err = run(t, "decode", "--state", "limbo", "00")
	assert.Error(t, err)

	_, _, err = run(t, "--protocol", "47", "decode", "00")
	assert.Error(t, err)
}

func TestNBTGzip(t *testing.T) {
	root := nbt.Named("hello world", nbt.Compound{nbt.Named("name", nbt.String("Bananrama"))})
	raw, err := root.Bytes()
	require.NoError(t, err)

	var zbuf bytes.Buffer
	zw := gzip.NewWriter(&zbuf)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	dir := t.TempDir()
	for name, data := range map[string][]byte{"plain.nbt": raw, "packed.nbt": zbuf.Bytes()} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		out, _, err := run(t, "nbt", path)
		require.NoError(t, err, name)
		assert.Equal(t, root.String()+"\n", out, name)
	}
}

func TestFrames(t *testing.T) {
	var buf bytes.Buffer
	w := capture.NewWriter(&buf)
	require.NoError(t, w.WritePacket(packet.ServerBound, &v578.Handshake{Version: 578, ServerAddress: "localhost", ServerPort: 25565, NextState: packet.NextStatus}))
	require.NoError(t, w.WritePacket(packet.ServerBound, &v578.StatusRequest{}))
	require.NoError(t, w.WriteFrame(packet.ClientBound, []byte{0x7f}))
	require.NoError(t, w.WritePacket(packet.ClientBound, &v578.StatusPong{Payload: 1}))

	path := filepath.Join(t.TempDir(), "status.cap")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	out, logs, err := run(t, "--protocol", "578", "frames", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Handshaking/ServerBound/0x00 Handshake")
	assert.Contains(t, out, "Status/ClientBound/0x01 StatusPong &{Payload:1}")
	assert.Contains(t, out, "4 packets, 1 failed, 3 kinds: Handshake, StatusPong, StatusRequest\n")
	assert.Contains(t, logs, "decode failed")
	assert.Contains(t, logs, "Status/ClientBound/0x7F")

	require.NoError(t, os.WriteFile(path, buf.Bytes()[:buf.Len()-1], 0o644))
	_, _, err = run(t, "--protocol", "578", "frames", path)
	assert.Error(t, err)
}

func TestDecodeJSONFormat(t *testing.T) {
	t.Setenv("MCWIRE_FORMAT", "json")
	data := hex.EncodeToString([]byte{0x21, 0, 0, 0, 0, 0, 0, 0, 5})
	out, _, err := run(t, "--protocol", "578", "decode", "-s", "play", "-d", "cb", data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"identity":"Play/ClientBound/0x21","name":"PlayServerKeepAlive","packet":{"KeepAliveID":5}}`, out)
}
