package mldsa

import "crypto/sha3"

// xof wraps a SHAKE sponge with the absorb-once/squeeze-blocks discipline
// the rejection samplers in sample.go rely on: every sampler writes its
// seed material once, then pulls output in fixed-size blocks (refilling
// on demand) without ever absorbing again. Modeling this as its own type
// keeps that contract explicit instead of scattering sha3.NewSHAKE128/256
// calls across every sampling site.
type xof struct {
	h *sha3.SHAKE
}

// newShake128 returns an empty SHAKE128 sponge.
func newShake128() xof {
	return xof{h: sha3.NewSHAKE128()}
}

// newShake256 returns an empty SHAKE256 sponge.
func newShake256() xof {
	return xof{h: sha3.NewSHAKE256()}
}

// absorb writes parts into the sponge in order. It must be called before
// any squeeze on this xof; mixing absorb and squeeze calls would silently
// change which output bytes a sampler sees, so squeezeBlock/squeeze below
// never re-enter absorb internally.
func (x xof) absorb(parts ...[]byte) xof {
	for _, p := range parts {
		x.h.Write(p)
	}
	return x
}

// squeezeBlock reads one SHAKE128 rate's worth of output (168 bytes).
func (x xof) squeezeBlock128() []byte {
	buf := make([]byte, 168)
	x.h.Read(buf)
	return buf
}

// squeezeBlock256 reads one SHAKE256 rate's worth of output (136 bytes).
func (x xof) squeezeBlock256() []byte {
	buf := make([]byte, 136)
	x.h.Read(buf)
	return buf
}

// squeeze reads exactly n bytes of output in one call.
func (x xof) squeeze(n int) []byte {
	buf := make([]byte, n)
	x.h.Read(buf)
	return buf
}

// sha3_256 is a one-shot SHA3-256 hash.
func sha3_256(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// sha3_512 is a one-shot SHA3-512 hash.
func sha3_512(data []byte) [64]byte {
	return sha3.Sum512(data)
}
