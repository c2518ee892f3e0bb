package mctypes

import (
	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/varint"
	"github.com/andersonarc/mcproto/wire"
)

// Particle holds the type-dependent fields of a particle effect. Type is
// supplied externally (it is the packet-level discriminator decoded just
// before the particle body) and is never read by DecodeParticle itself.
type Particle struct {
	Type       ParticleType
	BlockState int32
	Red        float32
	Green      float32
	Blue       float32
	Scale      float32
	Item       Slot
}

// Encode writes only the fields relevant to p.Type.
func (p Particle) Encode(buf *packetbuf.Buffer) error {
	switch p.Type {
	case ParticleBlock, ParticleFallingDust:
		return varint.EncodeVarInt(buf, p.BlockState)
	case ParticleDust:
		if err := wire.WriteFloat32BE(buf, p.Red); err != nil {
			return err
		}
		if err := wire.WriteFloat32BE(buf, p.Green); err != nil {
			return err
		}
		if err := wire.WriteFloat32BE(buf, p.Blue); err != nil {
			return err
		}
		return wire.WriteFloat32BE(buf, p.Scale)
	case ParticleItem:
		return p.Item.Encode(buf)
	default:
		return nil
	}
}

// DecodeParticle reads a Particle given its already-decoded discriminator.
func DecodeParticle(buf *packetbuf.Buffer, pType ParticleType) (Particle, error) {
	p := Particle{Type: pType}
	switch pType {
	case ParticleBlock, ParticleFallingDust:
		v, err := varint.DecodeVarInt(buf)
		if err != nil {
			return Particle{}, err
		}
		p.BlockState = v
	case ParticleDust:
		var err error
		if p.Red, err = wire.ReadFloat32BE(buf); err != nil {
			return Particle{}, err
		}
		if p.Green, err = wire.ReadFloat32BE(buf); err != nil {
			return Particle{}, err
		}
		if p.Blue, err = wire.ReadFloat32BE(buf); err != nil {
			return Particle{}, err
		}
		if p.Scale, err = wire.ReadFloat32BE(buf); err != nil {
			return Particle{}, err
		}
	case ParticleItem:
		if err := p.Item.Decode(buf); err != nil {
			return Particle{}, err
		}
	}
	return p, nil
}

// Length returns the on-wire size of p's variant-dependent body.
func (p Particle) Length() int {
	switch p.Type {
	case ParticleBlock, ParticleFallingDust:
		return varint.LengthVarInt(p.BlockState)
	case ParticleDust:
		return 4 * 4
	case ParticleItem:
		return p.Item.Length()
	default:
		return 0
	}
}
