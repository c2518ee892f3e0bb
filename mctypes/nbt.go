// Package mctypes implements the Minecraft-domain compound types: Slot,
// Particle, Smelting, Tag, EntityEquipment, EntityMetadata, plus Chat and
// VarIntArray. Most of these are conditional — their encoding depends on
// a discriminator field carried in the same packet, or supplied by the
// caller from the packet's own discriminator (Particle's type).
package mctypes

import (
	"errors"

	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/wire"
)

// ErrNBTUnsupported is returned by the stub NBT reader: this module treats
// NBT as an external collaborator (a real parser is out of scope) and
// only implements the inline TAG_END / TAG_COMPOUND discriminator byte
// that Slot's encoding depends on.
var ErrNBTUnsupported = errors.New("mctypes: NBT decoding requires an external parser")

// NBT tag type IDs, as they appear on the wire as a single discriminator
// byte ahead of a compound's payload.
const (
	TagEnd      = 0x00
	TagCompound = 0x0A
)

// NBT is the minimal interface a real NBT parser must satisfy to plug
// into Slot's optional compound field. It stands in for the external NBT
// collaborator the protocol assumes exists.
type NBT interface {
	// TypeID returns the NBT tag type byte this value encodes as.
	TypeID() byte
	// WriteTo writes this value's full payload (not including the leading
	// type byte, which the caller writes separately).
	WriteTo(buf *packetbuf.Buffer) error
}

// ReadNBT reads a tag-type byte and, if it is TAG_COMPOUND (or any other
// non-zero tag), attempts to read a full compound via an external
// parser — which this module does not provide. Returns (nil, nil) for
// TAG_END (no data), or ErrNBTUnsupported otherwise. Every compound field
// that carries an inline NBT block (Slot, EntityMetadata's NBT variant)
// reads its tag byte through this function.
func ReadNBT(buf *packetbuf.Buffer) (NBT, error) {
	tag, err := wire.ReadUint8(buf)
	if err != nil {
		return nil, err
	}
	if tag == TagEnd {
		return nil, nil
	}
	return nil, ErrNBTUnsupported
}
