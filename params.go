package mldsa

// Params is the FIPS 204 parameter set for one ML-DSA security category.
// It is carried as a value (every PrivateKey/PublicKey embeds a *Params),
// never as a package-level mutable global, so that KeyGen/Sign/Verify are
// pure functions of their explicit inputs.
type Params struct {
	// Name identifies the parameter set (e.g. "ML-DSA-65").
	Name string

	// K and L are the matrix dimensions: A is K×L, s2/t0/t1 have K
	// polynomials, s1/y/z have L.
	K, L int

	// Eta bounds the secret-key coefficient range [-Eta, Eta].
	Eta fieldElement

	// Gamma1Bits is log2(gamma1); gamma1 = 1 << Gamma1Bits.
	Gamma1Bits int

	// Gamma2 is the low-order rounding range used by Decompose/MakeHint/UseHint.
	Gamma2 uint32

	// Tau is the number of ±1 coefficients in the challenge polynomial c.
	Tau int

	// Omega bounds the number of nonzero hint coefficients across all of h.
	Omega int

	// LambdaBytes is len(c̃) in bytes (32/48/64 for categories 2/3/5).
	LambdaBytes int
}

// Beta is the rejection-sampling bound beta = Tau * Eta.
func (p *Params) Beta() uint32 {
	return uint32(p.Tau) * uint32(p.Eta)
}

// Gamma1 returns 2^Gamma1Bits.
func (p *Params) Gamma1() uint32 {
	return 1 << uint(p.Gamma1Bits)
}

// etaEncodingSize returns the packed size in bytes of one eta-range polynomial.
func (p *Params) etaEncodingSize() int {
	if p.Eta == eta2 {
		return encodingSize3
	}
	return encodingSize4
}

// zEncodingSize returns the packed size in bytes of one gamma1-range polynomial.
func (p *Params) zEncodingSize() int {
	if p.Gamma1Bits == gamma1Bits17 {
		return encodingSize18
	}
	return encodingSize20
}

// w1EncodingSize returns the packed size in bytes of one w1 polynomial.
func (p *Params) w1EncodingSize() int {
	if p.Gamma2 == gamma2QMinus1Div88 {
		return encodingSize6
	}
	return encodingSize4
}

// PublicKeySize returns the encoded public key length in bytes: rho || t1.
func (p *Params) PublicKeySize() int {
	return 32 + p.K*encodingSize10
}

// PrivateKeySize returns the encoded private key length in bytes:
// rho || K || tr || s1 || s2 || t0.
func (p *Params) PrivateKeySize() int {
	return 32 + 32 + 64 + (p.K+p.L)*p.etaEncodingSize() + p.K*encodingSize13
}

// SignatureSize returns the encoded signature length in bytes:
// c~ || z || h.
func (p *Params) SignatureSize() int {
	return p.LambdaBytes + p.L*p.zEncodingSize() + p.Omega + p.K
}

// packEta packs a polynomial with coefficients in [-Eta, Eta] using this
// parameter set's eta range.
func (p *Params) packEta(f ringElement) []byte {
	if p.Eta == eta2 {
		return packEta2(f)
	}
	return packEta4(f)
}

// unpackEta is the inverse of packEta.
func (p *Params) unpackEta(b []byte) (ringElement, error) {
	if p.Eta == eta2 {
		return unpackEta2(b)
	}
	return unpackEta4(b)
}

// packW1 packs a HighBits polynomial using this parameter set's w1 width.
func (p *Params) packW1(f ringElement) []byte {
	if p.Gamma2 == gamma2QMinus1Div88 {
		return packW1_6(f)
	}
	return packW1_4(f)
}

// packZ packs a gamma1-range polynomial using this parameter set's width.
func (p *Params) packZ(f ringElement) []byte {
	if p.Gamma1Bits == gamma1Bits17 {
		return packZ17(f)
	}
	return packZ19(f)
}

// unpackZ is the inverse of packZ.
func (p *Params) unpackZ(b []byte) ringElement {
	if p.Gamma1Bits == gamma1Bits17 {
		return unpackZ17Sig(b)
	}
	return unpackZ19Sig(b)
}

// The three FIPS 204 parameter sets (Table 1).
var (
	// MLDSA44 is NIST security category 2, comparable to AES-128.
	MLDSA44 = &Params{
		Name: "ML-DSA-44",
		K:    4, L: 4,
		Eta:         eta2,
		Gamma1Bits:  gamma1Bits17,
		Gamma2:      gamma2QMinus1Div88,
		Tau:         39,
		Omega:       80,
		LambdaBytes: 32,
	}

	// MLDSA65 is NIST security category 3, comparable to AES-192.
	MLDSA65 = &Params{
		Name: "ML-DSA-65",
		K:    6, L: 5,
		Eta:         eta4,
		Gamma1Bits:  gamma1Bits19,
		Gamma2:      gamma2QMinus1Div32,
		Tau:         49,
		Omega:       55,
		LambdaBytes: 48,
	}

	// MLDSA87 is NIST security category 5, comparable to AES-256.
	MLDSA87 = &Params{
		Name: "ML-DSA-87",
		K:    8, L: 7,
		Eta:         eta2,
		Gamma1Bits:  gamma1Bits19,
		Gamma2:      gamma2QMinus1Div32,
		Tau:         60,
		Omega:       75,
		LambdaBytes: 64,
	}
)

// Security-category-independent range/encoding constants shared across
// parameter sets.
const (
	gamma2QMinus1Div88 = (q - 1) / 88
	gamma2QMinus1Div32 = (q - 1) / 32

	gamma1Bits17 = 17
	gamma1Bits19 = 19

	eta2 fieldElement = 2
	eta4 fieldElement = 4
)

// Encoding size constants (bytes per polynomial), independent of mode.
const (
	encodingSize3  = n * 3 / 8  // eta=2 packed
	encodingSize4  = n * 4 / 8  // eta=4 packed or 4-bit w1
	encodingSize6  = n * 6 / 8  // 6-bit w1 for gamma2=(q-1)/88
	encodingSize10 = n * 10 / 8 // t1 packed
	encodingSize13 = n * 13 / 8 // t0 packed
	encodingSize18 = n * 18 / 8 // z for gamma1=2^17
	encodingSize20 = n * 20 / 8 // z for gamma1=2^19
)
