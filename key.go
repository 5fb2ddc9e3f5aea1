package mldsa

import (
	"crypto"
	"io"
)

// PrivateKey is an ML-DSA private key for a given Params.
type PrivateKey struct {
	params *Params

	rho [32]byte // public seed, expands to matrix A
	key [32]byte // private seed mixed into per-signature rho''
	tr  [64]byte // H(pk)

	s1 []ringElement // length L, coefficients in [-Eta, Eta]
	s2 []ringElement // length K, coefficients in [-Eta, Eta]
	t0 []ringElement // length K, Power2Round low bits of t

	a []nttElement // K*L matrix A, row-major, NTT domain
}

// PublicKey is an ML-DSA public key for a given Params.
type PublicKey struct {
	params *Params

	rho [32]byte
	t1  []ringElement // length K, Power2Round high bits of t
	tr  [64]byte      // H(pk); cached so Sign/Verify don't recompute it

	a []nttElement // K*L matrix A, row-major, NTT domain
}

// KeyPair is a key pair generated from a single seed: it carries both
// key halves plus the original seed (for Bytes) and t1 (for PublicKey).
type KeyPair struct {
	PrivateKey
	seed [32]byte
	t1   []ringElement
}

// Params returns the parameter set this key pair was generated under.
func (kp *KeyPair) Params() *Params { return kp.params }

// Params returns the parameter set this private key belongs to.
func (sk *PrivateKey) Params() *Params { return sk.params }

// Params returns the parameter set this public key belongs to.
func (pk *PublicKey) Params() *Params { return pk.params }

// GenerateKey generates a fresh ML-DSA key pair under mode, drawing a
// SeedSize-byte seed from rand (the entropy oracle).
func GenerateKey(mode *Params, rand io.Reader) (*KeyPair, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, err
	}
	return KeyGenInternal(mode, seed), nil
}

// NewKeyFromSeed reconstructs the key pair deterministically generated
// from seed. len(seed) must equal SeedSize.
func NewKeyFromSeed(mode *Params, seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeedLength
	}
	var s [SeedSize]byte
	copy(s[:], seed)
	return KeyGenInternal(mode, s), nil
}

// KeyGenInternal implements ML-DSA.KeyGen_internal (FIPS 204 Algorithm 6):
// deterministic key generation from an explicit 32-byte seed, with no
// entropy-oracle call of its own. GenerateKey and NewKeyFromSeed both
// wrap this building block.
func KeyGenInternal(mode *Params, seed [32]byte) *KeyPair {
	kp := &KeyPair{seed: seed}
	kp.params = mode
	kp.s1 = make([]ringElement, mode.L)
	kp.s2 = make([]ringElement, mode.K)
	kp.t0 = make([]ringElement, mode.K)
	kp.t1 = make([]ringElement, mode.K)
	kp.a = make([]nttElement, mode.K*mode.L)

	// H(seed || K || L) -> rho || rho' || key
	h := newShake256().absorb(seed[:], []byte{byte(mode.K), byte(mode.L)})
	expanded := h.squeeze(128)
	copy(kp.rho[:], expanded[:32])
	rho1 := expanded[32:96]
	copy(kp.key[:], expanded[96:128])
	defer wipeBytes(rho1)

	for i := 0; i < mode.L; i++ {
		kp.s1[i] = sampleBoundedPoly(rho1, mode.Eta, uint16(i))
	}
	for i := 0; i < mode.K; i++ {
		kp.s2[i] = sampleBoundedPoly(rho1, mode.Eta, uint16(mode.L+i))
	}
	defer wipePolyVec(kp.s1)
	defer wipePolyVec(kp.s2)

	for i := 0; i < mode.K; i++ {
		for j := 0; j < mode.L; j++ {
			kp.a[i*mode.L+j] = sampleNTTPoly(kp.rho[:], byte(j), byte(i))
		}
	}

	s1NTT := vecNTT(kp.s1)
	as1 := matVecMul(kp.a, mode.K, mode.L, s1NTT)
	t := vecAdd(vecInvNTT(as1), kp.s2)

	for i := 0; i < mode.K; i++ {
		for j := 0; j < n; j++ {
			kp.t1[i][j], kp.t0[i][j] = power2Round(t[i][j])
		}
	}
	defer wipePolyVec(kp.t0)

	pkBytes := kp.publicKeyBytes()
	copy(kp.tr[:], newShake256().absorb(pkBytes).squeeze(64))

	return kp
}

// publicKeyBytes encodes rho || t1 without allocating a PublicKey.
func (kp *KeyPair) publicKeyBytes() []byte {
	b := make([]byte, kp.params.PublicKeySize())
	copy(b[:32], kp.rho[:])
	offset := 32
	for i := 0; i < kp.params.K; i++ {
		copy(b[offset:], packT1(kp.t1[i]))
		offset += encodingSize10
	}
	return b
}

// PublicKey returns the public half of the key pair.
func (kp *KeyPair) PublicKey() *PublicKey {
	return &PublicKey{
		params: kp.params,
		rho:    kp.rho,
		t1:     kp.t1,
		tr:     kp.tr,
		a:      kp.a,
	}
}

// Public implements crypto.Signer.
func (kp *KeyPair) Public() crypto.PublicKey {
	return kp.PublicKey()
}

// Bytes returns the SeedSize-byte seed the key pair was generated from.
func (kp *KeyPair) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, kp.seed[:])
	return b
}

// PrivateKeyBytes returns the FIPS 204 encoded private key.
func (kp *KeyPair) PrivateKeyBytes() []byte {
	return kp.PrivateKey.Bytes()
}

// Bytes returns the FIPS 204 encoded private key: rho || key || tr || s1 || s2 || t0.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.params
	b := make([]byte, p.PrivateKeySize())
	copy(b[:32], sk.rho[:])
	copy(b[32:64], sk.key[:])
	copy(b[64:128], sk.tr[:])

	offset := 128
	for i := 0; i < p.L; i++ {
		copy(b[offset:], p.packEta(sk.s1[i]))
		offset += p.etaEncodingSize()
	}
	for i := 0; i < p.K; i++ {
		copy(b[offset:], p.packEta(sk.s2[i]))
		offset += p.etaEncodingSize()
	}
	for i := 0; i < p.K; i++ {
		copy(b[offset:], packT0(sk.t0[i]))
		offset += encodingSize13
	}
	return b
}

// Bytes returns the FIPS 204 encoded public key: rho || t1.
func (pk *PublicKey) Bytes() []byte {
	p := pk.params
	b := make([]byte, p.PublicKeySize())
	copy(b[:32], pk.rho[:])
	offset := 32
	for i := 0; i < p.K; i++ {
		copy(b[offset:], packT1(pk.t1[i]))
		offset += encodingSize10
	}
	return b
}

// Equal reports whether pk and other are the same ML-DSA public key
// under the same parameter set.
func (pk *PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey)
	if !ok || o.params != pk.params || pk.rho != o.rho {
		return false
	}
	if len(pk.t1) != len(o.t1) {
		return false
	}
	for i := range pk.t1 {
		if pk.t1[i] != o.t1[i] {
			return false
		}
	}
	return true
}

// NewPublicKey parses an encoded public key under mode.
func NewPublicKey(mode *Params, b []byte) (*PublicKey, error) {
	if len(b) != mode.PublicKeySize() {
		return nil, ErrInvalidPublicKeyLength
	}

	pk := &PublicKey{params: mode}
	copy(pk.rho[:], b[:32])

	pk.t1 = make([]ringElement, mode.K)
	offset := 32
	for i := 0; i < mode.K; i++ {
		pk.t1[i] = unpackT1(b[offset : offset+encodingSize10])
		offset += encodingSize10
	}

	pk.a = make([]nttElement, mode.K*mode.L)
	for i := 0; i < mode.K; i++ {
		for j := 0; j < mode.L; j++ {
			pk.a[i*mode.L+j] = sampleNTTPoly(pk.rho[:], byte(j), byte(i))
		}
	}

	copy(pk.tr[:], newShake256().absorb(b).squeeze(64))
	return pk, nil
}

// NewPrivateKey parses an encoded private key under mode.
func NewPrivateKey(mode *Params, b []byte) (*PrivateKey, error) {
	if len(b) != mode.PrivateKeySize() {
		return nil, ErrInvalidPrivateKeyLength
	}

	sk := &PrivateKey{params: mode}
	copy(sk.rho[:], b[:32])
	copy(sk.key[:], b[32:64])
	copy(sk.tr[:], b[64:128])

	sk.s1 = make([]ringElement, mode.L)
	sk.s2 = make([]ringElement, mode.K)
	sk.t0 = make([]ringElement, mode.K)

	offset := 128
	var err error
	for i := 0; i < mode.L; i++ {
		sk.s1[i], err = mode.unpackEta(b[offset : offset+mode.etaEncodingSize()])
		if err != nil {
			return nil, err
		}
		offset += mode.etaEncodingSize()
	}
	for i := 0; i < mode.K; i++ {
		sk.s2[i], err = mode.unpackEta(b[offset : offset+mode.etaEncodingSize()])
		if err != nil {
			return nil, err
		}
		offset += mode.etaEncodingSize()
	}
	for i := 0; i < mode.K; i++ {
		sk.t0[i] = unpackT0(b[offset : offset+encodingSize13])
		offset += encodingSize13
	}

	sk.a = make([]nttElement, mode.K*mode.L)
	for i := 0; i < mode.K; i++ {
		for j := 0; j < mode.L; j++ {
			sk.a[i*mode.L+j] = sampleNTTPoly(sk.rho[:], byte(j), byte(i))
		}
	}

	return sk, nil
}

// Public reconstructs the public key matching sk, implementing
// crypto.Signer. It recomputes t1 = HighBits(A*s1 + s2); this is slower
// than caching t1 from generation (which KeyPair.PublicKey does), but a
// bare *PrivateKey parsed from bytes has no cached t1 to return instead.
func (sk *PrivateKey) Public() crypto.PublicKey {
	p := sk.params
	pk := &PublicKey{params: p, rho: sk.rho, tr: sk.tr, a: sk.a, t1: make([]ringElement, p.K)}

	s1NTT := vecNTT(sk.s1)
	as1 := matVecMul(sk.a, p.K, p.L, s1NTT)
	t := vecAdd(vecInvNTT(as1), sk.s2)
	for i := 0; i < p.K; i++ {
		for j := 0; j < n; j++ {
			pk.t1[i][j], _ = power2Round(t[i][j])
		}
	}
	return pk
}
