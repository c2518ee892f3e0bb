// Command mcclient is a minimal example wiring the full stack together:
// it loads a YAML config, dials the configured server, performs a
// handshake + status round trip, and prints the response.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/andersonarc/mcproto/mcconn"
	"github.com/andersonarc/mcproto/mctypes"
	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/protocol"
	"github.com/andersonarc/mcproto/varint"
	"github.com/andersonarc/mcproto/wire"
)

const (
	handshakeNextStatus = 1

	idHandshake      protocol.PacketID = 0x00
	idStatusRequest  protocol.PacketID = 0x00
	idStatusResponse protocol.PacketID = 0x00
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mcclient <config.yaml>")
		os.Exit(1)
	}

	cfg, err := mcconn.LoadConfig(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "mcclient: load config:", err)
		os.Exit(1)
	}

	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", cfg.ServerHostname, cfg.ServerPort))
	if err != nil {
		fmt.Fprintln(os.Stderr, "mcclient: dial:", err)
		os.Exit(1)
	}
	defer conn.Close()

	table := protocol.NewHandlerTable(protocol.DefaultMaxPacketID)
	if err := table.Set(protocol.Status, protocol.ServerSource, idStatusResponse, handleStatusResponse); err != nil {
		panic(err)
	}

	ctx := cfg.NewContext(conn, table)

	if err := sendHandshake(ctx, cfg.ServerHostname, cfg.ServerPort); err != nil {
		fmt.Fprintln(os.Stderr, "mcclient: handshake:", err)
		os.Exit(1)
	}
	ctx.State = protocol.Status

	if err := sendStatusRequest(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mcclient: status request:", err)
		os.Exit(1)
	}

	if err := ctx.Receive(); err != nil {
		fmt.Fprintln(os.Stderr, "mcclient: receive status:", err)
		os.Exit(1)
	}
}

// sendHandshake writes the Handshaking-state handshake packet: protocol
// version, server hostname, server port, next state.
func sendHandshake(ctx *protocol.Context, hostname string, port uint16) error {
	buf := packetbuf.Allocate(256)
	if err := varint.EncodeVarInt(buf, int32(idHandshake)); err != nil {
		return err
	}
	if err := varint.EncodeVarInt(buf, 754); err != nil { // protocol version, 1.16.x
		return err
	}
	if err := wire.WriteString(buf, hostname); err != nil {
		return err
	}
	if err := wire.WriteUint16BE(buf, port); err != nil {
		return err
	}
	if err := varint.EncodeVarInt(buf, handshakeNextStatus); err != nil {
		return err
	}
	return ctx.Send(buf.Bytes()[:buf.Index()])
}

func sendStatusRequest(ctx *protocol.Context) error {
	buf := packetbuf.Allocate(16)
	if err := varint.EncodeVarInt(buf, int32(idStatusRequest)); err != nil {
		return err
	}
	return ctx.Send(buf.Bytes()[:buf.Index()])
}

func handleStatusResponse(ctx *protocol.Context) error {
	status, err := wire.ReadString(ctx.Buffer)
	if err != nil {
		return err
	}
	fmt.Println(mctypes.Chat(status))
	return nil
}
