package mldsa

import "errors"

// Structural and domain-separation errors returned by the public API.
//
// Verification failure (a bad signature, a tampered message, or a
// malformed hint/z-range encoding inside the signature) is intentionally
// not part of this list: FIPS 204 requires that distinguishing "the
// signature doesn't parse" from "the signature doesn't verify" leak
// nothing beyond accept/reject, so both collapse into Verify returning
// false, exactly as crypto/ed25519.Verify reports failure in the Go
// standard library.
var (
	// ErrInvalidSeedLength is returned when a seed is not exactly SeedSize bytes.
	ErrInvalidSeedLength = errors.New("mldsa: invalid seed length")

	// ErrInvalidPublicKeyLength is returned when an encoded public key
	// does not match the parameter set's PublicKeySize.
	ErrInvalidPublicKeyLength = errors.New("mldsa: invalid public key length")

	// ErrInvalidPrivateKeyLength is returned when an encoded private key
	// does not match the parameter set's PrivateKeySize.
	ErrInvalidPrivateKeyLength = errors.New("mldsa: invalid private key length")

	// ErrInvalidSignatureLength is returned when an encoded signature
	// does not match the parameter set's SignatureSize.
	ErrInvalidSignatureLength = errors.New("mldsa: invalid signature length")

	// ErrContextTooLong is returned when a context string exceeds 255 bytes.
	ErrContextTooLong = errors.New("mldsa: context too long")

	// ErrInvalidMuLength is returned by the external-mu entry points when
	// mu is not exactly CRHBYTES bytes.
	ErrInvalidMuLength = errors.New("mldsa: invalid mu length")

	// ErrInvalidEtaEncoding is returned when a packed eta-range polynomial
	// contains an out-of-range nibble or triple.
	ErrInvalidEtaEncoding = errors.New("mldsa: invalid eta encoding")

	// ErrHashedMessage is returned when SignMessage/Sign is given
	// SignerOpts whose HashFunc is non-zero: ML-DSA signs messages
	// directly and never signs a caller-supplied pre-hash.
	ErrHashedMessage = errors.New("mldsa: cannot sign pre-hashed messages")
)
