package mctypes

import (
	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/varint"
	"github.com/andersonarc/mcproto/wire"
)

// VarIntArray is a length-prefixed sequence of VarInts: VarInt count
// followed by that many VarInt elements.
type VarIntArray []int32

// Encode writes the array.
func (a VarIntArray) Encode(buf *packetbuf.Buffer) error {
	if err := varint.EncodeVarInt(buf, int32(len(a))); err != nil {
		return err
	}
	for _, v := range a {
		if err := varint.EncodeVarInt(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeVarIntArray reads a length-prefixed VarInt sequence.
func DecodeVarIntArray(buf *packetbuf.Buffer) (VarIntArray, error) {
	count, err := varint.DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	out := make(VarIntArray, count)
	for i := range out {
		v, err := varint.DecodeVarInt(buf)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Length returns the on-wire size of a.
func (a VarIntArray) Length() int {
	n := varint.LengthVarInt(int32(len(a)))
	for _, v := range a {
		n += varint.LengthVarInt(v)
	}
	return n
}

// Tag associates a name with a set of block/item/entity ids.
type Tag struct {
	Name    string
	Entries VarIntArray
}

// Encode writes the Tag.
func (t Tag) Encode(buf *packetbuf.Buffer) error {
	if err := wire.WriteString(buf, t.Name); err != nil {
		return err
	}
	return t.Entries.Encode(buf)
}

// Decode reads a Tag, allocating its entries slice at the declared length.
func (t *Tag) Decode(buf *packetbuf.Buffer) error {
	name, err := wire.ReadString(buf)
	if err != nil {
		return err
	}
	t.Name = name

	entries, err := DecodeVarIntArray(buf)
	if err != nil {
		return err
	}
	t.Entries = entries
	return nil
}

// Length returns the on-wire size of t.
func (t Tag) Length() int {
	return wire.LengthString(t.Name) + t.Entries.Length()
}
