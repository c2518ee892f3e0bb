// Package varint implements the LEB128-style variable-length integer
// encoding used throughout the Minecraft Java Edition wire protocol:
// VarInt (up to 5 bytes, 32-bit) and VarLong (up to 10 bytes, 64-bit).
//
// Two physical encodings are provided for each width: a buffer variant
// (varint.go) operating on an already-sized packetbuf.Buffer, and a
// stream variant (stream.go) operating byte-at-a-time directly on an
// io.Reader/io.Writer. The stream variant exists only because the
// outermost packet-length prefix (and the compression-envelope's
// uncompressed-size header) must be read before the packet's total size
// — and therefore its buffer — is known.
package varint

import (
	"errors"

	"github.com/andersonarc/mcproto/packetbuf"
)

// ErrVarIntTooLong is returned when decoding a VarInt that does not
// terminate within 5 bytes.
var ErrVarIntTooLong = errors.New("varint: value too long (>5 bytes)")

// ErrVarLongTooLong is returned when decoding a VarLong that does not
// terminate within 10 bytes.
var ErrVarLongTooLong = errors.New("varint: value too long (>10 bytes)")

const (
	continueBit = 0x80
	segmentMask = 0x7F
	maxVarInt   = 5
	maxVarLong  = 10
)

// EncodeVarInt writes v to buf using 1-5 bytes, low 7 bits per byte with
// the high bit set iff more bytes follow.
func EncodeVarInt(buf *packetbuf.Buffer, v int32) error {
	return encode(buf, uint64(uint32(v)), maxVarInt)
}

// DecodeVarInt reads a VarInt from buf, ORing 7 bits per byte.
func DecodeVarInt(buf *packetbuf.Buffer) (int32, error) {
	v, err := decode(buf, maxVarInt, ErrVarIntTooLong)
	return int32(uint32(v)), err
}

// EncodeVarLong writes v to buf using 1-10 bytes.
func EncodeVarLong(buf *packetbuf.Buffer, v int64) error {
	return encode(buf, uint64(v), maxVarLong)
}

// DecodeVarLong reads a VarLong from buf.
func DecodeVarLong(buf *packetbuf.Buffer) (int64, error) {
	v, err := decode(buf, maxVarLong, ErrVarLongTooLong)
	return int64(v), err
}

func encode(buf *packetbuf.Buffer, v uint64, maxBytes int) error {
	var scratch [1]byte
	for i := 0; i < maxBytes; i++ {
		b := byte(v & segmentMask)
		v >>= 7
		if v != 0 {
			b |= continueBit
		}
		scratch[0] = b
		if err := buf.Write(scratch[:]); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
	return nil
}

func decode(buf *packetbuf.Buffer, maxBytes int, overrun error) (uint64, error) {
	var result uint64
	var scratch [1]byte
	for i := 0; i < maxBytes; i++ {
		if err := buf.Read(scratch[:]); err != nil {
			return 0, err
		}
		b := scratch[0]
		result |= uint64(b&segmentMask) << (7 * uint(i))
		if b&continueBit == 0 {
			return result, nil
		}
	}
	return 0, overrun
}

// LengthVarInt returns the number of bytes v would occupy when encoded
// as a VarInt. Critical for pre-sizing compression-envelope headers.
func LengthVarInt(v int32) int {
	u := uint32(v)
	switch {
	case u < 1<<7:
		return 1
	case u < 1<<14:
		return 2
	case u < 1<<21:
		return 3
	case u < 1<<28:
		return 4
	default:
		return 5
	}
}

// LengthVarLong returns the number of bytes v would occupy when encoded
// as a VarLong.
func LengthVarLong(v int64) int {
	u := uint64(v)
	switch {
	case u < 1<<7:
		return 1
	case u < 1<<14:
		return 2
	case u < 1<<21:
		return 3
	case u < 1<<28:
		return 4
	case u < 1<<35:
		return 5
	case u < 1<<42:
		return 6
	case u < 1<<49:
		return 7
	case u < 1<<56:
		return 8
	case u < 1<<63:
		return 9
	default:
		return 10
	}
}
