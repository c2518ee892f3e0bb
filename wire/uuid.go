package wire

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/andersonarc/mcproto/packetbuf"
)

// UUID is the wire representation of a Minecraft UUID: two big-endian
// uint64 halves, most-significant first.
type UUID struct {
	MSB, LSB uint64
}

// WriteUUID writes the two big-endian halves, MSB first.
func WriteUUID(buf *packetbuf.Buffer, u UUID) error {
	if err := WriteUint64BE(buf, u.MSB); err != nil {
		return err
	}
	return WriteUint64BE(buf, u.LSB)
}

// ReadUUID reads the two big-endian halves.
func ReadUUID(buf *packetbuf.Buffer) (UUID, error) {
	msb, err := ReadUint64BE(buf)
	if err != nil {
		return UUID{}, err
	}
	lsb, err := ReadUint64BE(buf)
	if err != nil {
		return UUID{}, err
	}
	return UUID{MSB: msb, LSB: lsb}, nil
}

// ToGoogle converts to the host-side github.com/google/uuid representation.
func (u UUID) ToGoogle() uuid.UUID {
	var out uuid.UUID
	binary.BigEndian.PutUint64(out[0:8], u.MSB)
	binary.BigEndian.PutUint64(out[8:16], u.LSB)
	return out
}

// FromGoogle converts a github.com/google/uuid value into the wire
// MSB/LSB representation.
func FromGoogle(id uuid.UUID) UUID {
	return UUID{
		MSB: binary.BigEndian.Uint64(id[0:8]),
		LSB: binary.BigEndian.Uint64(id[8:16]),
	}
}
