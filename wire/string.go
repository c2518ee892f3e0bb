package wire

import (
	"errors"

	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/varint"
)

// ErrStringTooLong guards against unreasonable allocations for a
// corrupted or malicious length prefix.
var ErrStringTooLong = errors.New("wire: string too long")

// MaxStringBytes bounds decoded string length. The vanilla protocol caps
// component/chat strings well under this; it exists purely to stop a
// corrupt length prefix from causing an unbounded allocation.
const MaxStringBytes = 32 * 1024

// WriteString writes a VarInt byte-length followed by the raw UTF-8
// bytes. Length is the byte count, not the codepoint count, and there is
// no terminator on the wire.
func WriteString(buf *packetbuf.Buffer, s string) error {
	if err := varint.EncodeVarInt(buf, int32(len(s))); err != nil {
		return err
	}
	return buf.Write([]byte(s))
}

// ReadString reads a VarInt-length-prefixed UTF-8 string.
func ReadString(buf *packetbuf.Buffer) (string, error) {
	length, err := varint.DecodeVarInt(buf)
	if err != nil {
		return "", err
	}
	if length < 0 || int(length) > MaxStringBytes {
		return "", ErrStringTooLong
	}
	raw := make([]byte, length)
	if err := buf.Read(raw); err != nil {
		return "", err
	}
	return string(raw), nil
}

// LengthString returns the on-wire byte length of s once encoded.
func LengthString(s string) int {
	return varint.LengthVarInt(int32(len(s))) + len(s)
}

// WriteBytes writes raw bytes with no length prefix; the length is never
// self-describing for this type and must be known out-of-band.
func WriteBytes(buf *packetbuf.Buffer, data []byte) error {
	return buf.Write(data)
}

// ReadBytes reads exactly n raw bytes, supplied externally since this
// type never carries its own length on the wire.
func ReadBytes(buf *packetbuf.Buffer, n int) ([]byte, error) {
	dst := make([]byte, n)
	if err := buf.Read(dst); err != nil {
		return nil, err
	}
	return dst, nil
}
