package mctypes

import (
	"errors"

	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/wire"
)

// continuationBit marks "another equipment entry follows" on the slot
// byte; when clear, the entry is the last one.
const continuationBit = 0x80

// ErrEmptyEquipment guards the encode loop: the wire format has no way to
// express zero entries (the last entry's slot byte always has the
// continuation bit clear, so there is no "terminator only" form).
var ErrEmptyEquipment = errors.New("mctypes: EntityEquipment requires at least one entry")

// EquippedItem pairs an equipment slot index with its item.
type EquippedItem struct {
	Slot int8
	Item Slot
}

// EntityEquipment is a terminated list of (slot, item) pairs: every
// entry but the last has the continuation bit (0x80) set on its slot
// byte.
type EntityEquipment struct {
	Equipments []EquippedItem
}

// Encode writes all-but-last entries with the continuation bit set, and
// the last entry's slot byte with the bit clear.
func (e EntityEquipment) Encode(buf *packetbuf.Buffer) error {
	if len(e.Equipments) == 0 {
		return ErrEmptyEquipment
	}
	for i, eq := range e.Equipments {
		slotByte := uint8(eq.Slot)
		if i != len(e.Equipments)-1 {
			slotByte |= continuationBit
		}
		if err := wire.WriteUint8(buf, slotByte); err != nil {
			return err
		}
		if err := eq.Item.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads slot bytes masking 0x7F for the logical slot, decoding a
// Slot after each, and stops once the continuation bit is clear. This is
// the symmetric derivation of Encode's loop (the encode logic is the
// only one defined upstream; decode mirrors it).
func (e *EntityEquipment) Decode(buf *packetbuf.Buffer) error {
	var out []EquippedItem
	for {
		slotByte, err := wire.ReadUint8(buf)
		if err != nil {
			return err
		}
		var item Slot
		if err := item.Decode(buf); err != nil {
			return err
		}
		out = append(out, EquippedItem{Slot: int8(slotByte & 0x7F), Item: item})
		if slotByte&continuationBit == 0 {
			break
		}
	}
	e.Equipments = out
	return nil
}

// Length returns the on-wire size of e.
func (e EntityEquipment) Length() int {
	n := 0
	for _, eq := range e.Equipments {
		n += 1 + eq.Item.Length()
	}
	return n
}
