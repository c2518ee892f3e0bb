package mcconn_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andersonarc/mcproto/mcconn"
	"github.com/andersonarc/mcproto/protocol"
)

const sampleConfig = `
server_hostname: "play.example.net"
server_port: 25565
client_username: "Notch"
compression_threshold: 256
debug: false
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeSampleConfig(t)

	cfg, err := mcconn.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "play.example.net", cfg.ServerHostname)
	require.Equal(t, uint16(25565), cfg.ServerPort)
	require.Equal(t, "Notch", cfg.ClientUsername)
	require.Equal(t, 256, cfg.CompressionThreshold)
	require.False(t, cfg.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := mcconn.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewContextSeedsFromConfig(t *testing.T) {
	cfg := &mcconn.Config{
		ServerHostname:       "play.example.net",
		ServerPort:           25565,
		ClientUsername:       "Notch",
		CompressionThreshold: 256,
	}

	stream := &bytes.Buffer{}
	table := protocol.NewHandlerTable(protocol.DefaultMaxPacketID)
	ctx := cfg.NewContext(stream, table)

	require.Equal(t, protocol.Handshaking, ctx.State)
	require.Equal(t, protocol.ServerSource, ctx.Source)
	require.Equal(t, "play.example.net", ctx.Server.Hostname)
	require.Equal(t, uint16(25565), ctx.Server.Port)
	require.Equal(t, "Notch", ctx.Client.Username)
	require.Equal(t, 256, ctx.CompressionThreshold)
}
