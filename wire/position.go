package wire

import "github.com/andersonarc/mcproto/packetbuf"

// Position is a bit-packed world coordinate: x and z are 26-bit signed
// integers, y is a 12-bit signed integer, packed into one big-endian
// uint64 as ((x&0x3FFFFFF)<<38) | ((z&0x3FFFFFF)<<12) | (y&0xFFF).
type Position struct {
	X, Z int32 // [-2^25, 2^25)
	Y    int32 // [-2^11, 2^11)
}

// WritePosition packs and writes a Position.
func WritePosition(buf *packetbuf.Buffer, p Position) error {
	packed := (uint64(p.X)&0x3FFFFFF)<<38 |
		(uint64(p.Z)&0x3FFFFFF)<<12 |
		(uint64(p.Y) & 0xFFF)
	return WriteUint64BE(buf, packed)
}

// ReadPosition reads and unpacks a Position, sign-extending each field
// independently.
func ReadPosition(buf *packetbuf.Buffer) (Position, error) {
	packed, err := ReadUint64BE(buf)
	if err != nil {
		return Position{}, err
	}

	x := int32(packed >> 38)
	if x&(1<<25) != 0 {
		x -= 1 << 26
	}

	z := int32((packed >> 12) & 0x3FFFFFF)
	if z&(1<<25) != 0 {
		z -= 1 << 26
	}

	y := int32(packed & 0xFFF)
	if y&(1<<11) != 0 {
		y -= 1 << 12
	}

	return Position{X: x, Y: y, Z: z}, nil
}
