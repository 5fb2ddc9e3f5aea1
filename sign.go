package mldsa

import (
	"crypto"
	"io"
)

// SignInternal implements ML-DSA.Sign_internal (FIPS 204 Algorithm 7):
// the rejection-sampling signing loop over an already domain-separated
// message mPrime, given explicit randomness rnd. Passing a zero rnd
// yields the deterministic variant FIPS 204 permits; any other value
// yields the hedged variant. The caller is responsible for having
// already applied any message domain-separation wrapping.
func SignInternal(sk *PrivateKey, rnd [32]byte, mPrime []byte) []byte {
	mu := newShake256().absorb(sk.tr[:], mPrime).squeeze(CRHBYTES)
	rhoPrime := newShake256().absorb(sk.key[:], rnd[:], mu).squeeze(CRHBYTES)
	defer wipeBytes(rhoPrime)
	return signLoop(sk, rhoPrime, mu)
}

// SignWithContext signs message under an optional context string, using
// entropy from rnd (nil selects the deterministic FIPS 204 variant with
// rnd = 0). It builds M' = 0x00 || len(ctx) || ctx || message and hands
// it to SignInternal.
func SignWithContext(sk *PrivateKey, rnd io.Reader, message, ctx []byte) ([]byte, error) {
	if len(ctx) > 255 {
		return nil, ErrContextTooLong
	}

	mPrime := make([]byte, 0, 2+len(ctx)+len(message))
	mPrime = append(mPrime, 0x00, byte(len(ctx)))
	mPrime = append(mPrime, ctx...)
	mPrime = append(mPrime, message...)

	var r [RNDBYTES]byte
	if rnd != nil {
		if _, err := io.ReadFull(rnd, r[:]); err != nil {
			return nil, err
		}
	}
	return SignInternal(sk, r, mPrime), nil
}

// SignMu implements the external-mu signing variant used by higher-level
// protocols (HashML-DSA, pre-hashed signing flows) that have already
// computed mu = H(tr || M', 64) themselves and want to skip re-hashing
// the message. len(mu) must equal CRHBYTES.
func SignMu(sk *PrivateKey, rnd io.Reader, mu []byte) ([]byte, error) {
	if len(mu) != CRHBYTES {
		return nil, ErrInvalidMuLength
	}
	var r [RNDBYTES]byte
	if rnd != nil {
		if _, err := io.ReadFull(rnd, r[:]); err != nil {
			return nil, err
		}
	}
	rhoPrime := newShake256().absorb(sk.key[:], r[:], mu).squeeze(CRHBYTES)
	defer wipeBytes(rhoPrime)
	return signLoop(sk, rhoPrime, mu), nil
}

// SignAttached produces a NaCl crypto_sign-style combined signature:
// the signature bytes followed by the message itself. Open reverses it.
func SignAttached(sk *PrivateKey, rnd io.Reader, message, ctx []byte) ([]byte, error) {
	sig, err := SignWithContext(sk, rnd, message, ctx)
	if err != nil {
		return nil, err
	}
	sm := make([]byte, 0, len(sig)+len(message))
	sm = append(sm, sig...)
	sm = append(sm, message...)
	return sm, nil
}

// signLoop is the ML-DSA rejection-sampling core (FIPS 204 Algorithm 7,
// steps after mu/rhoPrime are known), shared by SignInternal and SignMu.
func signLoop(sk *PrivateKey, rhoPrime []byte, mu []byte) []byte {
	p := sk.params

	s1Hat := vecNTT(sk.s1)
	s2Hat := vecNTT(sk.s2)
	t0Hat := vecNTT(sk.t0)

	gamma1 := p.Gamma1()
	beta := p.Beta()

	kappa := 0
	for {
		y := make([]ringElement, p.L)
		for i := 0; i < p.L; i++ {
			nonce := kappa + i
			y[i] = expandMask(append(append([]byte{}, rhoPrime...), byte(nonce), byte(nonce>>8)), p.Gamma1Bits)
		}
		kappa += p.L

		yHat := vecNTT(y)
		w := vecInvNTT(matVecMul(sk.a, p.K, p.L, yHat))

		w1 := make([]ringElement, p.K)
		for i := 0; i < p.K; i++ {
			for j := 0; j < n; j++ {
				w1[i][j] = fieldElement(highBits(w[i][j], p.Gamma2))
			}
		}
		w1Packed := make([]byte, 0, p.K*p.w1EncodingSize())
		for i := 0; i < p.K; i++ {
			w1Packed = append(w1Packed, p.packW1(w1[i])...)
		}
		cTilde := newShake256().absorb(mu, w1Packed).squeeze(p.LambdaBytes)

		c := sampleChallenge(cTilde, p.Tau)
		cHat := ntt(c)

		cs1 := vecScaleByChallenge(cHat, s1Hat)
		cs2 := vecScaleByChallenge(cHat, s2Hat)

		z := vecAdd(y, cs1)
		if vectorInfinityNorm(z) >= gamma1-beta {
			continue
		}

		wMinusCs2 := vecSub(w, cs2)
		r0 := make([][n]int32, p.K)
		for i := 0; i < p.K; i++ {
			for j := 0; j < n; j++ {
				_, r0[i][j] = decompose(wMinusCs2[i][j], p.Gamma2)
			}
		}
		if vectorInfinityNormSigned(r0) >= int32(p.Gamma2)-int32(beta) {
			continue
		}

		ct0 := vecScaleByChallenge(cHat, t0Hat)
		if vectorInfinityNorm(ct0) >= p.Gamma2 {
			continue
		}

		negCt0 := vecNeg(ct0)
		r := vecAdd(wMinusCs2, ct0)
		h := make([]ringElement, p.K)
		hintCount := 0
		for i := 0; i < p.K; i++ {
			for j := 0; j < n; j++ {
				h[i][j] = makeHint(negCt0[i][j], r[i][j], p.Gamma2)
				if h[i][j] != 0 {
					hintCount++
				}
			}
		}
		if hintCount > p.Omega {
			continue
		}

		sig := make([]byte, 0, p.SignatureSize())
		sig = append(sig, cTilde...)
		for i := 0; i < p.L; i++ {
			sig = append(sig, p.packZ(z[i])...)
		}
		sig = append(sig, packHint(h, p.Omega)...)
		return sig
	}
}

// Sign implements crypto.Signer. opts must be *SignerOpts (or nil for no
// context) and must report HashFunc() == 0: ML-DSA signs the message
// directly, never a caller-supplied digest.
func (sk *PrivateKey) Sign(rnd io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != 0 {
		return nil, ErrHashedMessage
	}
	var ctx []byte
	if so, ok := opts.(*SignerOpts); ok && so != nil {
		ctx = so.Context
	}
	return SignWithContext(sk, rnd, message, ctx)
}

// SignMessage implements the go1.25 crypto.MessageSigner shape expected
// by callers that always pass the full message rather than a digest.
func (sk *PrivateKey) SignMessage(rnd io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.Sign(rnd, message, opts)
}

// SignWithContext is the method form of the package-level function of
// the same name, bound to sk.
func (sk *PrivateKey) SignWithContext(rnd io.Reader, message, ctx []byte) ([]byte, error) {
	return SignWithContext(sk, rnd, message, ctx)
}

// SignAttached is the method form of the package-level function of the
// same name, bound to sk.
func (sk *PrivateKey) SignAttached(rnd io.Reader, message, ctx []byte) ([]byte, error) {
	return SignAttached(sk, rnd, message, ctx)
}
