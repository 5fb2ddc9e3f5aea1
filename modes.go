package mldsa

import "io"

// Thin, mode-specific convenience wrappers around the generic *Params
// API, named the way a caller reaching for "the ML-DSA-65 functions"
// would expect. Each just forwards to the generic function with its
// Params value already supplied.

// GenerateKey44 generates a fresh ML-DSA-44 key pair.
func GenerateKey44(rand io.Reader) (*KeyPair, error) { return GenerateKey(MLDSA44, rand) }

// GenerateKey65 generates a fresh ML-DSA-65 key pair.
func GenerateKey65(rand io.Reader) (*KeyPair, error) { return GenerateKey(MLDSA65, rand) }

// GenerateKey87 generates a fresh ML-DSA-87 key pair.
func GenerateKey87(rand io.Reader) (*KeyPair, error) { return GenerateKey(MLDSA87, rand) }

// NewPrivateKey44 parses an ML-DSA-44 encoded private key.
func NewPrivateKey44(b []byte) (*PrivateKey, error) { return NewPrivateKey(MLDSA44, b) }

// NewPrivateKey65 parses an ML-DSA-65 encoded private key.
func NewPrivateKey65(b []byte) (*PrivateKey, error) { return NewPrivateKey(MLDSA65, b) }

// NewPrivateKey87 parses an ML-DSA-87 encoded private key.
func NewPrivateKey87(b []byte) (*PrivateKey, error) { return NewPrivateKey(MLDSA87, b) }

// NewPublicKey44 parses an ML-DSA-44 encoded public key.
func NewPublicKey44(b []byte) (*PublicKey, error) { return NewPublicKey(MLDSA44, b) }

// NewPublicKey65 parses an ML-DSA-65 encoded public key.
func NewPublicKey65(b []byte) (*PublicKey, error) { return NewPublicKey(MLDSA65, b) }

// NewPublicKey87 parses an ML-DSA-87 encoded public key.
func NewPublicKey87(b []byte) (*PublicKey, error) { return NewPublicKey(MLDSA87, b) }
