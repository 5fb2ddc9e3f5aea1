package mldsa

import "runtime"

// wipeBytes overwrites b with zeros. Call via defer immediately after
// acquiring a buffer that will hold secret material (s1, s2, t0, rho',
// mu, rnd, key) so it is cleared on every exit path, including an early
// return.
//
// This is best-effort: Go's garbage collector can relocate a backing
// array before the wipe runs, and the compiler is in principle free to
// prove the store dead and elide it once no read follows. runtime.KeepAlive
// pins the slice header so the compiler cannot hoist the wipe above the
// last real use, but neither this nor any pure-Go technique is a true
// volatile-write barrier.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// wipePoly overwrites the coefficients of a secret polynomial.
func wipePoly[T ~[n]fieldElement](p *T) {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}

// wipePolyVec overwrites every polynomial in a secret vector.
func wipePolyVec[T ~[n]fieldElement](v []T) {
	for i := range v {
		wipePoly(&v[i])
	}
}
