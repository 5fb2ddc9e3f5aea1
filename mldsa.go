// Package mldsa implements ML-DSA (Module-Lattice Digital Signature
// Algorithm) as specified in FIPS 204, the NIST standardization of
// CRYSTALS-Dilithium.
//
// ML-DSA is a post-quantum digital signature scheme. This package
// supports the three FIPS 204 parameter sets as values of type *Params:
//
//	MLDSA44 — NIST security category 2 (comparable to AES-128)
//	MLDSA65 — NIST security category 3 (comparable to AES-192)
//	MLDSA87 — NIST security category 5 (comparable to AES-256)
//
// Basic usage:
//
//	key, err := mldsa.GenerateKey(mldsa.MLDSA65, rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	sig, err := key.Sign(rand.Reader, message, nil)
//	if err != nil {
//	    // handle error
//	}
//	valid := key.PublicKey().Verify(sig, message, nil)
//
// The "_internal" and external-mu entry points FIPS 204 names
// (Sign_internal, Verify_internal, and the pre-hashed/HashML-DSA
// external-mu variants used by higher-level protocols) are exposed as
// SignInternal, VerifyInternal, SignMu and VerifyMu.
package mldsa

import "crypto"

// Global ML-DSA constants from FIPS 204, independent of parameter set.
const (
	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the modulus: q = 2^23 - 2^13 + 1 = 8380417.
	q = 8380417

	// d is the number of bits dropped from t by Power2Round.
	d = 13

	// SeedSize is the size in bytes of the seed consumed by key generation.
	SeedSize = 32

	// CRHBYTES is the length in bytes of mu, the collision-resistant
	// hash of (tr, M') fed into the rejection-sampling loop.
	CRHBYTES = 64

	// RNDBYTES is the length in bytes of the per-signature randomness rnd.
	RNDBYTES = 32
)

// Derived constant: the midpoint used to center a field element into a
// signed representative in (-q/2, q/2].
const qMinus1Div2 = (q - 1) / 2

// SignerOpts implements crypto.SignerOpts for ML-DSA signing operations.
// It carries an optional context string for domain separation.
type SignerOpts struct {
	// Context is an optional context string for domain separation
	// (at most 255 bytes). A nil Context signs with no context.
	Context []byte
}

// HashFunc returns 0: ML-DSA signs messages directly, it does not sign
// a pre-computed digest.
func (opts *SignerOpts) HashFunc() crypto.Hash {
	return 0
}

// Compile-time interface assertion. The crypto.MessageSigner assertion
// (Go 1.25+) lives in signer_go125.go behind a build tag.
var _ crypto.Signer = (*PrivateKey)(nil)
