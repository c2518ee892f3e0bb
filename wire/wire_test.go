package wire

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/andersonarc/mcproto/packetbuf"
)

func TestFixedIntRoundTrips(t *testing.T) {
	buf := packetbuf.Allocate(8)
	require.NoError(t, WriteUint16BE(buf, 0xBEEF))
	rd := packetbuf.Set(buf.Bytes()[:2])
	v, err := ReadUint16BE(rd)
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), v)

	buf = packetbuf.Allocate(8)
	require.NoError(t, WriteUint32LE(buf, 0xDEADBEEF))
	rd = packetbuf.Set(buf.Bytes()[:4])
	v32, err := ReadUint32LE(rd)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), v32)

	buf = packetbuf.Allocate(8)
	require.NoError(t, WriteUint64BE(buf, math.MaxUint64))
	rd = packetbuf.Set(buf.Bytes())
	v64, err := ReadUint64BE(rd)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v64)

	buf = packetbuf.Allocate(1)
	require.NoError(t, WriteInt8(buf, -7))
	rd = packetbuf.Set(buf.Bytes())
	i8, err := ReadInt8(rd)
	require.NoError(t, err)
	require.Equal(t, int8(-7), i8)
}

func TestFloatRoundTripsIncludingSpecialValues(t *testing.T) {
	values := []float32{0, -0, 1.5, -1.5, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)), math.SmallestNonzeroFloat32}
	for _, v := range values {
		buf := packetbuf.Allocate(4)
		require.NoError(t, WriteFloat32BE(buf, v))
		rd := packetbuf.Set(buf.Bytes())
		got, err := ReadFloat32BE(rd)
		require.NoError(t, err)
		if math.IsNaN(float64(v)) {
			require.True(t, math.IsNaN(float64(got)))
		} else {
			require.Equal(t, v, got)
		}
	}

	buf := packetbuf.Allocate(8)
	require.NoError(t, WriteFloat64LE(buf, math.Inf(-1)))
	rd := packetbuf.Set(buf.Bytes())
	got, err := ReadFloat64LE(rd)
	require.NoError(t, err)
	require.Equal(t, math.Inf(-1), got)
}

func TestStringRoundTrip(t *testing.T) {
	s := "hello, ünicode world"
	buf := packetbuf.Allocate(LengthString(s))
	require.NoError(t, WriteString(buf, s))
	require.Equal(t, LengthString(s), buf.Index())

	rd := packetbuf.Set(buf.Bytes())
	got, err := ReadString(rd)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestStringUpTo32KiB(t *testing.T) {
	s := strings.Repeat("a", MaxStringBytes)
	buf := packetbuf.Allocate(LengthString(s))
	require.NoError(t, WriteString(buf, s))
	rd := packetbuf.Set(buf.Bytes())
	got, err := ReadString(rd)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestStringTooLongRejected(t *testing.T) {
	// Encode a length prefix far beyond MaxStringBytes without supplying
	// the bytes themselves; ReadString must reject based on the prefix
	// alone.
	big := int32(MaxStringBytes + 1)
	encBuf := packetbuf.Allocate(5)
	require.NoError(t, writeRawVarInt(encBuf, big))
	rd := packetbuf.Set(encBuf.Bytes()[:encBuf.Index()])
	_, err := ReadString(rd)
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestOpaqueBytesRoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	buf := packetbuf.Allocate(len(data))
	require.NoError(t, WriteBytes(buf, data))
	rd := packetbuf.Set(buf.Bytes())
	got, err := ReadBytes(rd, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestPositionRoundTripAndBoundaries(t *testing.T) {
	cases := []Position{
		{X: 0, Y: 0, Z: 0},
		{X: -33554432, Y: -2048, Z: -33554432},
		{X: 33554431, Y: 2047, Z: 33554431},
		{X: 123, Y: -45, Z: 678},
	}
	for _, p := range cases {
		buf := packetbuf.Allocate(8)
		require.NoError(t, WritePosition(buf, p))
		rd := packetbuf.Set(buf.Bytes())
		got, err := ReadPosition(rd)
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	u := UUID{MSB: 0x0102030405060708, LSB: 0x0910111213141516}
	buf := packetbuf.Allocate(16)
	require.NoError(t, WriteUUID(buf, u))
	rd := packetbuf.Set(buf.Bytes())
	got, err := ReadUUID(rd)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestUUIDGoogleConversion(t *testing.T) {
	id := uuid.New()
	w := FromGoogle(id)
	require.Equal(t, id, w.ToGoogle())
}

// writeRawVarInt is a tiny local helper mirroring varint.EncodeVarInt,
// used only to craft a malformed length prefix for TestStringTooLongRejected
// without importing the varint package's buffer type twice.
func writeRawVarInt(buf *packetbuf.Buffer, v int32) error {
	u := uint32(v)
	for {
		b := byte(u & 0x7F)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		if err := buf.Write([]byte{b}); err != nil {
			return err
		}
		if u == 0 {
			return nil
		}
	}
}
