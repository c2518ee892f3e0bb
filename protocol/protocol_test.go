package protocol_test

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/andersonarc/mcproto/protocol"
	"github.com/andersonarc/mcproto/varint"
)

// loopback is a minimal io.ReadWriter over two independent buffers, one
// preloaded with bytes to receive and one collecting bytes sent.
type loopback struct {
	in  *bytes.Buffer
	out *bytes.Buffer
}

func newLoopback(in []byte) *loopback {
	return &loopback{in: bytes.NewBuffer(in), out: &bytes.Buffer{}}
}

func (l *loopback) Read(p []byte) (int, error)  { return l.in.Read(p) }
func (l *loopback) Write(p []byte) (int, error) { return l.out.Write(p) }

func TestReceiveUncompressedEmptyBody(t *testing.T) {
	lb := newLoopback([]byte{0x01, 0x00})
	table := protocol.NewHandlerTable(protocol.DefaultMaxPacketID)

	var gotID int32 = -1
	require.NoError(t, table.Set(protocol.Play, protocol.ServerSource, 0, func(ctx *protocol.Context) error {
		gotID = 0
		require.Equal(t, 0, ctx.Buffer.Remaining())
		return nil
	}))

	ctx := protocol.NewContext(lb, table)
	ctx.State = protocol.Play
	ctx.Source = protocol.ServerSource

	require.NoError(t, ctx.Receive())
	require.Equal(t, int32(0), gotID)
}

func TestSendUncompressedEmptyBody(t *testing.T) {
	lb := newLoopback(nil)
	ctx := protocol.NewContext(lb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))

	require.NoError(t, ctx.Send([]byte{0x00}))
	require.Equal(t, []byte{0x01, 0x00}, lb.out.Bytes())
}

func TestSendUncompressedHiBody(t *testing.T) {
	lb := newLoopback(nil)
	ctx := protocol.NewContext(lb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))

	require.NoError(t, ctx.Send([]byte{0x05, 'h', 'i'}))
	require.Equal(t, []byte{0x03, 0x05, 'h', 'i'}, lb.out.Bytes())
}

func TestSendCompressionEnabledUnderThreshold(t *testing.T) {
	lb := newLoopback(nil)
	ctx := protocol.NewContext(lb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))
	ctx.CompressionThreshold = 64

	body := append([]byte{0x01}, make([]byte, 9)...)
	require.NoError(t, ctx.Send(body))

	want := append([]byte{0x0B, 0x00}, body...)
	require.Equal(t, want, lb.out.Bytes())
}

func TestSendCompressionEnabledOverThreshold(t *testing.T) {
	lb := newLoopback(nil)
	ctx := protocol.NewContext(lb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))
	ctx.CompressionThreshold = 4

	body := append([]byte{0x01}, bytes.Repeat([]byte{0x41}, 9)...)
	require.NoError(t, ctx.Send(body))

	out := lb.out.Bytes()
	require.Equal(t, byte(10), out[1])

	zr, err := zlib.NewReader(bytes.NewReader(out[2:]))
	require.NoError(t, err)
	var inflated bytes.Buffer
	_, err = inflated.ReadFrom(zr)
	require.NoError(t, err)
	require.Equal(t, body, inflated.Bytes())
}

func TestReceiveCompressionEnabledRoundTrip(t *testing.T) {
	body := append([]byte{0x02}, bytes.Repeat([]byte{0x7A}, 50)...)

	sendLb := newLoopback(nil)
	sendCtx := protocol.NewContext(sendLb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))
	sendCtx.CompressionThreshold = 4
	require.NoError(t, sendCtx.Send(body))

	recvLb := newLoopback(sendLb.out.Bytes())
	table := protocol.NewHandlerTable(protocol.DefaultMaxPacketID)
	var got []byte
	require.NoError(t, table.Set(protocol.Play, protocol.ServerSource, 2, func(ctx *protocol.Context) error {
		got = ctx.Buffer.Current()
		return nil
	}))
	recvCtx := protocol.NewContext(recvLb, table)
	recvCtx.State = protocol.Play
	recvCtx.CompressionThreshold = 4

	require.NoError(t, recvCtx.Receive())
	require.Equal(t, body[1:], got)
}

func TestDispatchInvokesRegisteredHandlerExactlyOnce(t *testing.T) {
	lb := newLoopback([]byte{0x02, 0x02, 0xAB})
	table := protocol.NewHandlerTable(protocol.DefaultMaxPacketID)

	calls := 0
	require.NoError(t, table.Set(protocol.Login, protocol.ServerSource, 2, func(ctx *protocol.Context) error {
		calls++
		require.Equal(t, []byte{0xAB}, ctx.Buffer.Current())
		return nil
	}))

	ctx := protocol.NewContext(lb, table)
	ctx.State = protocol.Login
	ctx.Source = protocol.ServerSource

	require.NoError(t, ctx.Receive())
	require.Equal(t, 1, calls)
}

func TestReceiveRejectsOverWidthVarInt(t *testing.T) {
	lb := newLoopback([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	ctx := protocol.NewContext(lb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))

	err := ctx.Receive()
	require.Error(t, err)
}

func TestReceiveRejectsNegativeLengthWithoutPanicking(t *testing.T) {
	var stream bytes.Buffer
	require.NoError(t, varint.WriteVarIntStream(&stream, -1))

	lb := newLoopback(stream.Bytes())
	ctx := protocol.NewContext(lb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))

	err := ctx.Receive()
	require.Error(t, err)
}

func TestReceiveRejectsNegativeUncompressedSizeWithoutPanicking(t *testing.T) {
	var stream bytes.Buffer
	require.NoError(t, varint.WriteVarIntStream(&stream, 5))
	require.NoError(t, varint.WriteVarIntStream(&stream, -1))

	lb := newLoopback(stream.Bytes())
	ctx := protocol.NewContext(lb, protocol.NewHandlerTable(protocol.DefaultMaxPacketID))
	ctx.CompressionThreshold = 4

	err := ctx.Receive()
	require.Error(t, err)
}

func TestHandlerTableSetGetRoundTrip(t *testing.T) {
	table := protocol.NewHandlerTable(protocol.DefaultMaxPacketID)
	h := func(ctx *protocol.Context) error { return nil }

	require.NoError(t, table.Set(protocol.Status, protocol.ClientSource, 9, h))

	got, err := table.Get(protocol.Status, protocol.ClientSource, 9)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestHandlerTableGetUnregisteredReturnsBlank(t *testing.T) {
	table := protocol.NewHandlerTable(protocol.DefaultMaxPacketID)
	h, err := table.Get(protocol.Handshaking, protocol.ServerSource, 3)
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestHandlerTableOutOfRangeRejected(t *testing.T) {
	table := protocol.NewHandlerTable(4)

	_, err := table.Get(protocol.Play, protocol.ServerSource, 4)
	require.ErrorIs(t, err, protocol.ErrPacketIDOutOfRange)

	err = table.Set(protocol.Play, protocol.ServerSource, 100, func(ctx *protocol.Context) error { return nil })
	require.ErrorIs(t, err, protocol.ErrPacketIDOutOfRange)
}
