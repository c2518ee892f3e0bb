package mctypes

import (
	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/varint"
	"github.com/andersonarc/mcproto/wire"
)

// Smelting describes a furnace-style recipe.
type Smelting struct {
	Group      string
	Ingredient []Slot
	Result     Slot
	Experience float32
	CookTime   int32
}

// Encode writes the Smelting recipe.
func (s Smelting) Encode(buf *packetbuf.Buffer) error {
	if err := wire.WriteString(buf, s.Group); err != nil {
		return err
	}
	if err := varint.EncodeVarInt(buf, int32(len(s.Ingredient))); err != nil {
		return err
	}
	for _, slot := range s.Ingredient {
		if err := slot.Encode(buf); err != nil {
			return err
		}
	}
	if err := s.Result.Encode(buf); err != nil {
		return err
	}
	if err := wire.WriteFloat32BE(buf, s.Experience); err != nil {
		return err
	}
	return varint.EncodeVarInt(buf, s.CookTime)
}

// Decode reads a Smelting recipe, allocating a slice of the declared
// ingredient count and decoding each element in order.
func (s *Smelting) Decode(buf *packetbuf.Buffer) error {
	group, err := wire.ReadString(buf)
	if err != nil {
		return err
	}
	s.Group = group

	count, err := varint.DecodeVarInt(buf)
	if err != nil {
		return err
	}
	ingredient := make([]Slot, count)
	for i := range ingredient {
		if err := ingredient[i].Decode(buf); err != nil {
			return err
		}
	}
	s.Ingredient = ingredient

	if err := s.Result.Decode(buf); err != nil {
		return err
	}

	exp, err := wire.ReadFloat32BE(buf)
	if err != nil {
		return err
	}
	s.Experience = exp

	cookTime, err := varint.DecodeVarInt(buf)
	if err != nil {
		return err
	}
	s.CookTime = cookTime
	return nil
}

// Length returns the on-wire size of s.
func (s Smelting) Length() int {
	n := wire.LengthString(s.Group)
	n += varint.LengthVarInt(int32(len(s.Ingredient)))
	for _, slot := range s.Ingredient {
		n += slot.Length()
	}
	n += s.Result.Length()
	n += 4 // experience
	n += varint.LengthVarInt(s.CookTime)
	return n
}
