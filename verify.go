package mldsa

// shiftLeftD multiplies every coefficient of f by 2^d mod q, used to turn
// the public key's t1 (high bits of t) back into t1*2^d before it is fed
// through the NTT for the w'Approx reconstruction in verification.
func shiftLeftD(f ringElement) ringElement {
	var out ringElement
	for i, v := range f {
		out[i] = fieldElement((uint64(v) << d) % q)
	}
	return out
}

// VerifyInternal implements ML-DSA.Verify_internal (FIPS 204 Algorithm 8):
// checks sig against an already domain-separated message mPrime. It
// never distinguishes a malformed encoding from a failed check; both
// collapse to false.
func VerifyInternal(pk *PublicKey, sig []byte, mPrime []byte) bool {
	mu := newShake256().absorb(pk.tr[:], mPrime).squeeze(CRHBYTES)
	return verifyCore(pk, sig, mu)
}

// verifyCore is the FIPS 204 Algorithm 8 core shared by VerifyInternal
// (which derives mu from tr and M') and VerifyMu (which takes mu as given).
func verifyCore(pk *PublicKey, sig []byte, mu []byte) bool {
	p := pk.params
	if len(sig) != p.SignatureSize() {
		return false
	}

	cTilde := sig[:p.LambdaBytes]
	offset := p.LambdaBytes

	z := make([]ringElement, p.L)
	for i := 0; i < p.L; i++ {
		z[i] = p.unpackZ(sig[offset : offset+p.zEncodingSize()])
		offset += p.zEncodingSize()
	}

	h := make([]ringElement, p.K)
	if !unpackHint(sig[offset:], h, p.Omega) {
		return false
	}

	gamma1 := p.Gamma1()
	beta := p.Beta()
	if vectorInfinityNorm(z) >= gamma1-beta {
		return false
	}

	c := sampleChallenge(cTilde, p.Tau)
	cHat := ntt(c)

	zHat := vecNTT(z)
	az := matVecMul(pk.a, p.K, p.L, zHat)

	t1Shifted := make([]ringElement, p.K)
	for i := range pk.t1 {
		t1Shifted[i] = shiftLeftD(pk.t1[i])
	}
	ct1 := vecScaleByChallenge(cHat, vecNTT(t1Shifted))

	wApprox := vecSub(vecInvNTT(az), ct1)

	w1Prime := make([]ringElement, p.K)
	for i := 0; i < p.K; i++ {
		for j := 0; j < n; j++ {
			w1Prime[i][j] = useHint(h[i][j], wApprox[i][j], p.Gamma2)
		}
	}

	w1Packed := make([]byte, 0, p.K*p.w1EncodingSize())
	for i := 0; i < p.K; i++ {
		w1Packed = append(w1Packed, p.packW1(w1Prime[i])...)
	}
	cTildePrime := newShake256().absorb(mu, w1Packed).squeeze(p.LambdaBytes)

	return constantTimeCompare(cTilde, cTildePrime)
}

// constantTimeCompare reports whether a and b are equal, in time
// independent of where they first differ.
func constantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}

// Verify checks sig over message under an optional context string. It
// rebuilds M' the same way SignWithContext does and hands it to
// VerifyInternal.
func Verify(pk *PublicKey, sig, message, ctx []byte) bool {
	if len(ctx) > 255 {
		return false
	}
	mPrime := make([]byte, 0, 2+len(ctx)+len(message))
	mPrime = append(mPrime, 0x00, byte(len(ctx)))
	mPrime = append(mPrime, ctx...)
	mPrime = append(mPrime, message...)
	return VerifyInternal(pk, sig, mPrime)
}

// VerifyMu checks sig against a caller-supplied mu, bypassing the tr/M'
// hashing step entirely. This is the verification counterpart to SignMu,
// for higher-level protocols that already have mu in hand.
func VerifyMu(pk *PublicKey, sig []byte, mu []byte) bool {
	if len(mu) != CRHBYTES {
		return false
	}
	return verifyCore(pk, sig, mu)
}

// Verify is the method form of the package-level function of the same
// name, bound to pk.
func (pk *PublicKey) Verify(sig, message, ctx []byte) bool {
	return Verify(pk, sig, message, ctx)
}

// Open reverses SignAttached: it splits sm into a signature prefix and a
// message suffix, verifies, and returns the message only if valid. On
// failure it returns (nil, false) without revealing which check failed.
func Open(pk *PublicKey, sm, ctx []byte) (message []byte, ok bool) {
	sigSize := pk.params.SignatureSize()
	if len(sm) < sigSize {
		return nil, false
	}
	sig, msg := sm[:sigSize], sm[sigSize:]
	if !Verify(pk, sig, msg, ctx) {
		return nil, false
	}
	return msg, true
}
