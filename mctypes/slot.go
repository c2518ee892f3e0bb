package mctypes

import (
	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/varint"
	"github.com/andersonarc/mcproto/wire"
)

// Slot is an inventory cell: an optional item with id, count, and an
// optional NBT compound.
type Slot struct {
	Present   bool
	ItemID    int32
	ItemCount int8
	NBT       NBT // nil encodes as TAG_END ("no data")
}

// Encode writes the Slot. When absent, only the present byte is written.
// When present and NBT is nil, the NBT block is an inline TAG_END byte;
// otherwise the NBT value's own TypeID/WriteTo are used directly, with
// no redundant wrapping root tag.
func (s Slot) Encode(buf *packetbuf.Buffer) error {
	if err := wire.WriteBool(buf, s.Present); err != nil {
		return err
	}
	if !s.Present {
		return nil
	}
	if err := varint.EncodeVarInt(buf, s.ItemID); err != nil {
		return err
	}
	if err := wire.WriteInt8(buf, s.ItemCount); err != nil {
		return err
	}
	if s.NBT == nil {
		return wire.WriteUint8(buf, TagEnd)
	}
	if err := wire.WriteUint8(buf, s.NBT.TypeID()); err != nil {
		return err
	}
	return s.NBT.WriteTo(buf)
}

// Decode reads a Slot. The NBT block's tag byte is read via ReadNBT: a
// bare TAG_END means "no NBT"; any other tag means a real compound, which
// this module cannot parse.
func (s *Slot) Decode(buf *packetbuf.Buffer) error {
	present, err := wire.ReadBool(buf)
	if err != nil {
		return err
	}
	s.Present = present
	if !present {
		return nil
	}

	itemID, err := varint.DecodeVarInt(buf)
	if err != nil {
		return err
	}
	s.ItemID = itemID

	count, err := wire.ReadInt8(buf)
	if err != nil {
		return err
	}
	s.ItemCount = count

	nbt, err := ReadNBT(buf)
	if err != nil {
		return err
	}
	s.NBT = nbt
	return nil
}

// Length returns the on-wire size of s once encoded.
func (s Slot) Length() int {
	n := 1 // present byte
	if !s.Present {
		return n
	}
	n += varint.LengthVarInt(s.ItemID)
	n++ // item count
	n++ // NBT tag byte (TAG_END; a real NBT payload would add its own length)
	return n
}
