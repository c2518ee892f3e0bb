package mctypes

import (
	"errors"
	"fmt"

	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/varint"
	"github.com/andersonarc/mcproto/wire"
)

// MetaTagType is the entity-metadata value-kind discriminator, a VarInt
// on the wire.
type MetaTagType int32

const (
	MetaByte MetaTagType = iota
	MetaVarInt
	MetaFloat
	MetaString
	MetaChat
	MetaOptChat
	MetaSlot
	MetaRotation
	MetaPosition
	MetaOptPosition
	MetaOptUUID
	MetaNBT
	MetaParticle
	MetaVillagerData
	MetaOptVarInt
)

// metadataEnd terminates an EntityMetadata list.
const metadataEnd = 0xFF

// ErrUnknownMetaTagType is returned when an entry carries a MetaTagType
// this module does not recognize.
var ErrUnknownMetaTagType = errors.New("mctypes: unknown entity metadata tag type")

// MetaTag is one index-keyed entry of an EntityMetadata list. Exactly
// one of its value fields is meaningful, selected by Type.
type MetaTag struct {
	Index int32 // unsigned on the wire (0-254); widened for host ergonomics
	Type  MetaTagType

	Byte         int8
	VarInt       int32
	Float        float32
	String       string
	Chat         Chat
	OptChat      *Chat
	Slot         Slot
	Rotation     [3]float32
	Position     wire.Position
	OptPosition  *wire.Position
	OptUUID      *wire.UUID
	NBT          NBT // nil encodes as TAG_END ("no data")
	Particle     Particle
	ParticleType ParticleType
	VillagerData [3]int32
	OptVarInt    *int32
}

// EntityMetadata is an index-keyed tagged-union list, terminated by
// index byte 0xFF.
type EntityMetadata struct {
	Tags []MetaTag
}

// Encode writes every entry followed by the 0xFF terminator.
func (m EntityMetadata) Encode(buf *packetbuf.Buffer) error {
	for _, tag := range m.Tags {
		if err := wire.WriteUint8(buf, uint8(tag.Index)); err != nil {
			return err
		}
		if err := varint.EncodeVarInt(buf, int32(tag.Type)); err != nil {
			return err
		}
		if err := encodeMetaValue(buf, tag); err != nil {
			return err
		}
	}
	return wire.WriteUint8(buf, metadataEnd)
}

func encodeMetaValue(buf *packetbuf.Buffer, tag MetaTag) error {
	switch tag.Type {
	case MetaByte:
		return wire.WriteInt8(buf, tag.Byte)
	case MetaVarInt:
		return varint.EncodeVarInt(buf, tag.VarInt)
	case MetaFloat:
		return wire.WriteFloat32BE(buf, tag.Float)
	case MetaString:
		return wire.WriteString(buf, tag.String)
	case MetaChat:
		return tag.Chat.Encode(buf)
	case MetaOptChat:
		if err := wire.WriteBool(buf, tag.OptChat != nil); err != nil {
			return err
		}
		if tag.OptChat != nil {
			return tag.OptChat.Encode(buf)
		}
		return nil
	case MetaSlot:
		return tag.Slot.Encode(buf)
	case MetaRotation:
		for _, f := range tag.Rotation {
			if err := wire.WriteFloat32BE(buf, f); err != nil {
				return err
			}
		}
		return nil
	case MetaPosition:
		return wire.WritePosition(buf, tag.Position)
	case MetaOptPosition:
		if err := wire.WriteBool(buf, tag.OptPosition != nil); err != nil {
			return err
		}
		if tag.OptPosition != nil {
			return wire.WritePosition(buf, *tag.OptPosition)
		}
		return nil
	case MetaOptUUID:
		if err := wire.WriteBool(buf, tag.OptUUID != nil); err != nil {
			return err
		}
		if tag.OptUUID != nil {
			return wire.WriteUUID(buf, *tag.OptUUID)
		}
		return nil
	case MetaNBT:
		if tag.NBT == nil {
			return wire.WriteUint8(buf, TagEnd)
		}
		if err := wire.WriteUint8(buf, tag.NBT.TypeID()); err != nil {
			return err
		}
		return tag.NBT.WriteTo(buf)
	case MetaParticle:
		if err := varint.EncodeVarInt(buf, int32(tag.ParticleType)); err != nil {
			return err
		}
		return tag.Particle.Encode(buf)
	case MetaVillagerData:
		for _, v := range tag.VillagerData {
			if err := varint.EncodeVarInt(buf, v); err != nil {
				return err
			}
		}
		return nil
	case MetaOptVarInt:
		if err := wire.WriteBool(buf, tag.OptVarInt != nil); err != nil {
			return err
		}
		if tag.OptVarInt != nil {
			return varint.EncodeVarInt(buf, *tag.OptVarInt)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMetaTagType, tag.Type)
	}
}

// Decode reads entries until the 0xFF terminator index byte.
func (m *EntityMetadata) Decode(buf *packetbuf.Buffer) error {
	var tags []MetaTag
	for {
		index, err := wire.ReadUint8(buf)
		if err != nil {
			return err
		}
		if index == metadataEnd {
			break
		}

		typ, err := varint.DecodeVarInt(buf)
		if err != nil {
			return err
		}

		tag := MetaTag{Index: int32(index), Type: MetaTagType(typ)}
		if err := decodeMetaValue(buf, &tag); err != nil {
			return err
		}
		tags = append(tags, tag)
	}
	m.Tags = tags
	return nil
}

func decodeMetaValue(buf *packetbuf.Buffer, tag *MetaTag) error {
	switch tag.Type {
	case MetaByte:
		v, err := wire.ReadInt8(buf)
		tag.Byte = v
		return err
	case MetaVarInt:
		v, err := varint.DecodeVarInt(buf)
		tag.VarInt = v
		return err
	case MetaFloat:
		v, err := wire.ReadFloat32BE(buf)
		tag.Float = v
		return err
	case MetaString:
		v, err := wire.ReadString(buf)
		tag.String = v
		return err
	case MetaChat:
		v, err := DecodeChat(buf)
		tag.Chat = v
		return err
	case MetaOptChat:
		present, err := wire.ReadBool(buf)
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		v, err := DecodeChat(buf)
		if err != nil {
			return err
		}
		tag.OptChat = &v
		return nil
	case MetaSlot:
		return tag.Slot.Decode(buf)
	case MetaRotation:
		for i := range tag.Rotation {
			v, err := wire.ReadFloat32BE(buf)
			if err != nil {
				return err
			}
			tag.Rotation[i] = v
		}
		return nil
	case MetaPosition:
		v, err := wire.ReadPosition(buf)
		tag.Position = v
		return err
	case MetaOptPosition:
		present, err := wire.ReadBool(buf)
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		v, err := wire.ReadPosition(buf)
		if err != nil {
			return err
		}
		tag.OptPosition = &v
		return nil
	case MetaOptUUID:
		present, err := wire.ReadBool(buf)
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		v, err := wire.ReadUUID(buf)
		if err != nil {
			return err
		}
		tag.OptUUID = &v
		return nil
	case MetaNBT:
		nbt, err := ReadNBT(buf)
		if err != nil {
			return err
		}
		tag.NBT = nbt
		return nil
	case MetaParticle:
		pType, err := varint.DecodeVarInt(buf)
		if err != nil {
			return err
		}
		tag.ParticleType = ParticleType(pType)
		p, err := DecodeParticle(buf, tag.ParticleType)
		tag.Particle = p
		return err
	case MetaVillagerData:
		for i := range tag.VillagerData {
			v, err := varint.DecodeVarInt(buf)
			if err != nil {
				return err
			}
			tag.VillagerData[i] = v
		}
		return nil
	case MetaOptVarInt:
		present, err := wire.ReadBool(buf)
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		v, err := varint.DecodeVarInt(buf)
		if err != nil {
			return err
		}
		tag.OptVarInt = &v
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMetaTagType, tag.Type)
	}
}
