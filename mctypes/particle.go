package mctypes

// ParticleType is the particle discriminator. The full enumeration is
// assumed generated elsewhere (spec treats it as an external
// collaborator); only the variants that change the particle's field
// layout are named here.
type ParticleType int32

const (
	ParticleBlock ParticleType = iota
	ParticleFallingDust
	ParticleDust
	ParticleItem
	// ParticleOther stands in for every variant with an empty body.
	ParticleOther ParticleType = -1
)
