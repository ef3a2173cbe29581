package dirichlet

import "github.com/ntkit/numth/ring"

// CalcCompletelyMultiplicative fills in every value of a completely
// multiplicative function f over [0, len(f)) from its values at primes, in
// O(n). f must already hold the correct value at every prime and 1
// elsewhere; pf[k] must be some prime factor of k (e.g. sieve.Sieve.Lpf).
func CalcCompletelyMultiplicative[T ring.Elem[T]](f []T, pf []int64) {
	for i := 2; i < len(f); i++ {
		p := int(pf[i])
		if int64(i) != pf[i] {
			f[i] = f[i/p].Mul(f[p])
		}
	}
}

// ConvolutionCompletelyMultiplicative computes h = f * g over [0, n) in
// O(n), where h is known to be completely multiplicative (f and g need not
// be).
func ConvolutionCompletelyMultiplicative[T ring.Elem[T]](h []T, f, g Fn[T], n int, pf []int64) {
	e1 := f(1).One()
	f1, g1 := f(1), g(1)
	for i := 1; i < n; i++ {
		h[i] = e1
	}
	for p := 2; p < n; p++ {
		if pf[p] == int64(p) {
			h[p] = f(p).Mul(g1).Add(g(p).Mul(f1))
		}
	}
	CalcCompletelyMultiplicative(h, pf[:n])
}

// DivisionCompletelyMultiplicative computes h = f * g^-1 over [0, n) in
// O(n), where h is known to be completely multiplicative.
func DivisionCompletelyMultiplicative[T ring.Elem[T]](h []T, f, g Fn[T], n int, pf []int64) {
	e1 := g(1).One()
	for i := 1; i < n; i++ {
		h[i] = e1
	}
	for p := 2; p < n; p++ {
		if pf[p] == int64(p) {
			h[p] = f(p).Sub(g(p))
		}
	}
	CalcCompletelyMultiplicative(h, pf[:n])
}

// InverseCompletelyMultiplicative computes f_inv = f^-1 over [0, n) in
// O(n), where f_inv is known to be completely multiplicative.
func InverseCompletelyMultiplicative[T ring.Elem[T]](fInv []T, f Fn[T], n int, pf []int64) {
	e1, e0 := f(1).One(), f(1).Zero()
	e := func(n int) T {
		if n == 1 {
			return e1
		}
		return e0
	}
	DivisionCompletelyMultiplicative(fInv, e, f, n, pf)
}

// MoebiusTransformCompletelyMultiplicative computes
// g(n) = sum_{d|n} mu(n/d) f(d) over [0, n) in O(n), where g is known to be
// completely multiplicative.
func MoebiusTransformCompletelyMultiplicative[T ring.Elem[T]](g []T, f Fn[T], n int, pf []int64) {
	e1 := f(1).One()
	one := func(int) T { return e1 }
	DivisionCompletelyMultiplicative(g, f, one, n, pf)
}
