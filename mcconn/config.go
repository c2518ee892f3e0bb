// Package mcconn loads connection configuration and builds a ready-to-use
// protocol.Context from it, the way the teacher's main.go loads
// server.yaml into a Config before dialing.
package mcconn

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andersonarc/mcproto/protocol"
)

// Config is the on-disk connection configuration for an outbound client.
type Config struct {
	ServerHostname       string `yaml:"server_hostname"`
	ServerPort           uint16 `yaml:"server_port"`
	ClientUsername       string `yaml:"client_username"`
	CompressionThreshold int    `yaml:"compression_threshold"`
	Debug                bool   `yaml:"debug"`
}

// LoadConfig reads and parses a YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mcconn: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("mcconn: parse config: %w", err)
	}
	return &cfg, nil
}

// NewContext builds a protocol.Context seeded from cfg, bound to stream
// and dispatching through handlers. State starts at Handshaking; Source
// defaults to ServerSource, matching an outbound client connection where
// received packets originate from the server.
func (c *Config) NewContext(stream io.ReadWriter, handlers *protocol.HandlerTable) *protocol.Context {
	ctx := protocol.NewContext(stream, handlers)
	ctx.Server = protocol.Endpoint{Hostname: c.ServerHostname, Port: c.ServerPort}
	ctx.Client = protocol.ClientInfo{Username: c.ClientUsername}
	ctx.CompressionThreshold = c.CompressionThreshold
	ctx.Debug = c.Debug
	if c.Debug {
		ctx.Logger = protocol.NewLogrusLogger(nil)
	}
	return ctx
}
