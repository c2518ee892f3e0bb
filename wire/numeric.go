// Package wire implements the fixed-width primitive codec: big- and
// little-endian integers and IEEE floats, length-prefixed UTF-8 strings,
// opaque byte runs, the 64-bit bit-packed Position, and UUID. All of it
// operates on a pre-sized packetbuf.Buffer — callers are responsible for
// allocating the buffer to the exact framed packet size before decoding.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/andersonarc/mcproto/packetbuf"
)

// WriteUint8 writes a single byte.
func WriteUint8(buf *packetbuf.Buffer, v uint8) error {
	return buf.Write([]byte{v})
}

// ReadUint8 reads a single byte.
func ReadUint8(buf *packetbuf.Buffer) (uint8, error) {
	var b [1]byte
	if err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteInt8 writes a single signed byte.
func WriteInt8(buf *packetbuf.Buffer, v int8) error {
	return WriteUint8(buf, uint8(v))
}

// ReadInt8 reads a single signed byte.
func ReadInt8(buf *packetbuf.Buffer) (int8, error) {
	v, err := ReadUint8(buf)
	return int8(v), err
}

// WriteBool writes a boolean as a single 0x00/0x01 byte.
func WriteBool(buf *packetbuf.Buffer, v bool) error {
	if v {
		return WriteUint8(buf, 1)
	}
	return WriteUint8(buf, 0)
}

// ReadBool reads a single boolean byte.
func ReadBool(buf *packetbuf.Buffer) (bool, error) {
	v, err := ReadUint8(buf)
	return v != 0, err
}

// WriteUint16BE writes v as big-endian.
func WriteUint16BE(buf *packetbuf.Buffer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return buf.Write(b[:])
}

// ReadUint16BE reads a big-endian uint16.
func ReadUint16BE(buf *packetbuf.Buffer) (uint16, error) {
	var b [2]byte
	if err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// WriteUint16LE writes v as little-endian.
func WriteUint16LE(buf *packetbuf.Buffer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return buf.Write(b[:])
}

// ReadUint16LE reads a little-endian uint16.
func ReadUint16LE(buf *packetbuf.Buffer) (uint16, error) {
	var b [2]byte
	if err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// WriteUint32BE writes v as big-endian.
func WriteUint32BE(buf *packetbuf.Buffer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return buf.Write(b[:])
}

// ReadUint32BE reads a big-endian uint32.
func ReadUint32BE(buf *packetbuf.Buffer) (uint32, error) {
	var b [4]byte
	if err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// WriteUint32LE writes v as little-endian.
func WriteUint32LE(buf *packetbuf.Buffer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return buf.Write(b[:])
}

// ReadUint32LE reads a little-endian uint32.
func ReadUint32LE(buf *packetbuf.Buffer) (uint32, error) {
	var b [4]byte
	if err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// WriteUint64BE writes v as big-endian.
func WriteUint64BE(buf *packetbuf.Buffer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return buf.Write(b[:])
}

// ReadUint64BE reads a big-endian uint64.
func ReadUint64BE(buf *packetbuf.Buffer) (uint64, error) {
	var b [8]byte
	if err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// WriteUint64LE writes v as little-endian.
func WriteUint64LE(buf *packetbuf.Buffer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return buf.Write(b[:])
}

// ReadUint64LE reads a little-endian uint64.
func ReadUint64LE(buf *packetbuf.Buffer) (uint64, error) {
	var b [8]byte
	if err := buf.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Signed 16/32/64-bit wrappers, BE/LE. The wire has no separate signed
// representation; these just reinterpret the unsigned codec's bytes.

func WriteInt16BE(buf *packetbuf.Buffer, v int16) error { return WriteUint16BE(buf, uint16(v)) }
func ReadInt16BE(buf *packetbuf.Buffer) (int16, error) {
	v, err := ReadUint16BE(buf)
	return int16(v), err
}
func WriteInt16LE(buf *packetbuf.Buffer, v int16) error { return WriteUint16LE(buf, uint16(v)) }
func ReadInt16LE(buf *packetbuf.Buffer) (int16, error) {
	v, err := ReadUint16LE(buf)
	return int16(v), err
}

func WriteInt32BE(buf *packetbuf.Buffer, v int32) error { return WriteUint32BE(buf, uint32(v)) }
func ReadInt32BE(buf *packetbuf.Buffer) (int32, error) {
	v, err := ReadUint32BE(buf)
	return int32(v), err
}
func WriteInt32LE(buf *packetbuf.Buffer, v int32) error { return WriteUint32LE(buf, uint32(v)) }
func ReadInt32LE(buf *packetbuf.Buffer) (int32, error) {
	v, err := ReadUint32LE(buf)
	return int32(v), err
}

func WriteInt64BE(buf *packetbuf.Buffer, v int64) error { return WriteUint64BE(buf, uint64(v)) }
func ReadInt64BE(buf *packetbuf.Buffer) (int64, error) {
	v, err := ReadUint64BE(buf)
	return int64(v), err
}
func WriteInt64LE(buf *packetbuf.Buffer, v int64) error { return WriteUint64LE(buf, uint64(v)) }
func ReadInt64LE(buf *packetbuf.Buffer) (int64, error) {
	v, err := ReadUint64LE(buf)
	return int64(v), err
}

// WriteFloat32BE writes v big-endian via bitwise reinterpretation through
// its same-width unsigned integer. The source this is ported from casts
// the float to an integer instead of reinterpreting its bits (a lossy
// historical defect); this implementation does not reproduce that bug.
func WriteFloat32BE(buf *packetbuf.Buffer, v float32) error {
	return WriteUint32BE(buf, math.Float32bits(v))
}

// ReadFloat32BE reads a big-endian float32.
func ReadFloat32BE(buf *packetbuf.Buffer) (float32, error) {
	v, err := ReadUint32BE(buf)
	return math.Float32frombits(v), err
}

// WriteFloat32LE writes v little-endian.
func WriteFloat32LE(buf *packetbuf.Buffer, v float32) error {
	return WriteUint32LE(buf, math.Float32bits(v))
}

// ReadFloat32LE reads a little-endian float32.
func ReadFloat32LE(buf *packetbuf.Buffer) (float32, error) {
	v, err := ReadUint32LE(buf)
	return math.Float32frombits(v), err
}

// WriteFloat64BE writes v big-endian.
func WriteFloat64BE(buf *packetbuf.Buffer, v float64) error {
	return WriteUint64BE(buf, math.Float64bits(v))
}

// ReadFloat64BE reads a big-endian float64.
func ReadFloat64BE(buf *packetbuf.Buffer) (float64, error) {
	v, err := ReadUint64BE(buf)
	return math.Float64frombits(v), err
}

// WriteFloat64LE writes v little-endian.
func WriteFloat64LE(buf *packetbuf.Buffer, v float64) error {
	return WriteUint64LE(buf, math.Float64bits(v))
}

// ReadFloat64LE reads a little-endian float64.
func ReadFloat64LE(buf *packetbuf.Buffer) (float64, error) {
	v, err := ReadUint64LE(buf)
	return math.Float64frombits(v), err
}
