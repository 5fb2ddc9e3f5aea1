package mldsa

// Shared vector/matrix helpers over the K and L polynomial vectors that
// appear throughout key generation, signing and verification. None of
// these allocate the K*L matrix itself; they operate on the row-major
// []nttElement a matrix callers already hold.

// vecNTT maps NTT over every polynomial in v.
func vecNTT(v []ringElement) []nttElement {
	out := make([]nttElement, len(v))
	for i := range v {
		out[i] = ntt(v[i])
	}
	return out
}

// vecInvNTT maps invNTT over every polynomial in v.
func vecInvNTT(v []nttElement) []ringElement {
	out := make([]ringElement, len(v))
	for i := range v {
		out[i] = invNTT(v[i])
	}
	return out
}

// matVecMul computes A*v in NTT domain, where a is the K*L row-major
// matrix and v has L entries; the result has K entries, still in NTT
// domain (callers invNTT it themselves since some need the NTT-domain
// result and some don't).
func matVecMul(a []nttElement, k, l int, v []nttElement) []nttElement {
	out := make([]nttElement, k)
	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < l; j++ {
			acc = polyAdd(acc, nttMul(a[i*l+j], v[j]))
		}
		out[i] = acc
	}
	return out
}

// vecAdd adds two polynomial vectors of equal length coefficient-wise.
func vecAdd[T ~[n]fieldElement](a, b []T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = polyAdd(a[i], b[i])
	}
	return out
}

// vecSub subtracts two polynomial vectors of equal length coefficient-wise.
func vecSub[T ~[n]fieldElement](a, b []T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = polySub(a[i], b[i])
	}
	return out
}

// polyNeg negates every coefficient of f mod q.
func polyNeg(f ringElement) ringElement {
	var out ringElement
	for i := range f {
		out[i] = fieldSub(0, f[i])
	}
	return out
}

// vecNeg negates every polynomial in v.
func vecNeg(v []ringElement) []ringElement {
	out := make([]ringElement, len(v))
	for i := range v {
		out[i] = polyNeg(v[i])
	}
	return out
}

// vecScaleByChallenge multiplies every polynomial in v (NTT domain) by
// cHat (the NTT-domain challenge) and returns the product back in
// standard domain: invNTT(cHat ∘ v[i]) for each i.
func vecScaleByChallenge(cHat nttElement, v []nttElement) []ringElement {
	out := make([]ringElement, len(v))
	for i := range v {
		out[i] = invNTT(nttMul(cHat, v[i]))
	}
	return out
}
