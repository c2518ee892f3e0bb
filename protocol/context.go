package protocol

import (
	"fmt"
	"io"

	"github.com/andersonarc/mcproto/compress"
	"github.com/andersonarc/mcproto/netio"
	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/varint"
	"github.com/andersonarc/mcproto/wire"
)

// Endpoint is the remote server half of a connection context.
type Endpoint struct {
	Hostname string
	Port     uint16
}

// ClientInfo is the local player half of a connection context.
type ClientInfo struct {
	Username string
	UUID     wire.UUID
}

// Context is per-connection state shared by the framing layer and every
// handler it dispatches to. Exactly one Receive or Send is in flight for a
// given Context at any time; it is not safe for concurrent use by design,
// matching the single-threaded-per-connection scheduling model this
// library targets.
type Context struct {
	// Stream is the bidirectional byte transport (typically a net.Conn).
	Stream io.ReadWriter

	Server Endpoint
	Client ClientInfo

	// State determines the active packet-id namespace. A handler that
	// triggers a state transition (e.g. LOGIN_SUCCESS under Login) is
	// responsible for assigning a new State here; the dispatch table only
	// ever consults it on the next Receive.
	State State
	// Source is which side originates the next packet this Context
	// receives.
	Source Source

	// CompressionThreshold <= 0 disables the compression envelope. > 0
	// enables it and is the minimum uncompressed payload size for actual
	// compression to occur on Send.
	CompressionThreshold int

	Handlers *HandlerTable

	Debug  bool
	Logger Logger

	// Buffer is the current packet's body, valid only for the duration of
	// a handler invoked from Receive.
	Buffer *packetbuf.Buffer

	compressor compress.Codec
}

// NewContext builds a Context bound to stream and dispatching through
// handlers. State starts at Handshaking; Source defaults to ServerSource,
// the orientation for an outbound client connection (packets arriving on
// Receive originate from the server).
func NewContext(stream io.ReadWriter, handlers *HandlerTable) *Context {
	return &Context{
		Stream:     stream,
		State:      Handshaking,
		Source:     ServerSource,
		Handlers:   handlers,
		compressor: compress.Zlib{},
	}
}

// Receive reads one framed packet from ctx.Stream, decompressing it if the
// compression envelope is enabled, decodes its packet id, and dispatches
// to the registered handler. ctx.Buffer holds the packet body (cursor past
// the id) for the duration of the handler call, then is freed.
func (ctx *Context) Receive() error {
	br := netio.ByteReader(ctx.Stream)

	length, err := varint.ReadVarIntStream(br)
	if err != nil {
		return fmt.Errorf("protocol: read length prefix: %w", err)
	}

	buf, err := ctx.receiveBody(br, length)
	if err != nil {
		return err
	}

	ctx.Buffer = buf
	defer func() {
		ctx.Buffer = nil
		buf.Free()
	}()

	id, err := varint.DecodeVarInt(buf)
	if err != nil {
		return fmt.Errorf("protocol: decode packet id: %w", err)
	}

	handler, err := ctx.Handlers.Get(ctx.State, ctx.Source, PacketID(uint32(id)))
	if err != nil {
		return err
	}

	if ctx.Debug && ctx.Logger != nil {
		ctx.Logger.Debugf("recv state=%s source=%s id=0x%02x len=%d", ctx.State, ctx.Source, id, length)
	}

	return handler(ctx)
}

// receiveBody implements the compression-envelope branch of the receive
// path, given the already-decoded outer length.
func (ctx *Context) receiveBody(br io.ByteReader, length int32) (*packetbuf.Buffer, error) {
	if length < 0 {
		return nil, fmt.Errorf("protocol: negative framed packet length %d", length)
	}

	if ctx.CompressionThreshold <= 0 {
		buf := packetbuf.Allocate(int(length))
		buf.Bind(ctx.Stream)
		if err := buf.Init(); err != nil {
			return nil, fmt.Errorf("protocol: read uncompressed body: %w", err)
		}
		return buf, nil
	}

	uncompressedSize, err := varint.ReadVarIntStream(br)
	if err != nil {
		return nil, fmt.Errorf("protocol: read uncompressed_size: %w", err)
	}
	if uncompressedSize < 0 {
		return nil, fmt.Errorf("protocol: negative uncompressed_size %d", uncompressedSize)
	}
	payloadBytes := int(length) - varint.LengthVarInt(uncompressedSize)
	if payloadBytes < 0 {
		return nil, fmt.Errorf("protocol: negative compression-envelope payload length")
	}

	if uncompressedSize == 0 {
		buf := packetbuf.Allocate(payloadBytes)
		buf.Bind(ctx.Stream)
		if err := buf.Init(); err != nil {
			return nil, fmt.Errorf("protocol: read raw-under-threshold body: %w", err)
		}
		return buf, nil
	}

	scratch := packetbuf.Allocate(payloadBytes)
	scratch.Bind(ctx.Stream)
	if err := scratch.Init(); err != nil {
		return nil, fmt.Errorf("protocol: read compressed body: %w", err)
	}
	inflated, err := ctx.compressor.Inflate(scratch.Bytes(), int(uncompressedSize))
	scratch.Free()
	if err != nil {
		return nil, fmt.Errorf("protocol: inflate body: %w", err)
	}
	return packetbuf.Set(inflated), nil
}

// Send writes body (packet id VarInt followed by the packet's fields,
// exactly as a handler filled it) as one framed packet, applying the
// compression envelope if enabled.
func (ctx *Context) Send(body []byte) error {
	if ctx.CompressionThreshold <= 0 {
		if err := varint.WriteVarIntStream(ctx.Stream, int32(len(body))); err != nil {
			return fmt.Errorf("protocol: write length prefix: %w", err)
		}
		return netio.WriteExact(ctx.Stream, body)
	}

	if len(body) < ctx.CompressionThreshold {
		outerLen := len(body) + varint.LengthVarInt(0)
		if err := varint.WriteVarIntStream(ctx.Stream, int32(outerLen)); err != nil {
			return fmt.Errorf("protocol: write length prefix: %w", err)
		}
		if err := varint.WriteVarIntStream(ctx.Stream, 0); err != nil {
			return fmt.Errorf("protocol: write uncompressed_size: %w", err)
		}
		return netio.WriteExact(ctx.Stream, body)
	}

	compressed, err := ctx.compressor.Deflate(body)
	if err != nil {
		return fmt.Errorf("protocol: deflate body: %w", err)
	}
	// The actual compressed length is written here, not a precomputed
	// compress-bound: writing a bound instead of the real length would
	// desynchronize the outer length prefix from what follows on the wire.
	outerLen := len(compressed) + varint.LengthVarInt(int32(len(body)))
	if err := varint.WriteVarIntStream(ctx.Stream, int32(outerLen)); err != nil {
		return fmt.Errorf("protocol: write length prefix: %w", err)
	}
	if err := varint.WriteVarIntStream(ctx.Stream, int32(len(body))); err != nil {
		return fmt.Errorf("protocol: write uncompressed_size: %w", err)
	}
	return netio.WriteExact(ctx.Stream, compressed)
}
