//go:build go1.25

package mldsa

import "crypto"

// Compile-time interface assertion: *PrivateKey satisfies the go1.25
// crypto.MessageSigner shape (a Signer whose Sign method is documented
// to take the full message, not a digest).
var _ crypto.MessageSigner = (*PrivateKey)(nil)
