// Package dirichlet computes Dirichlet convolution, division and inverse of
// arithmetic functions over an arbitrary coefficient ring, in three tiers of
// increasing speed and decreasing generality:
//
//   - the "general" tier (this file) costs O(n log n) and requires nothing
//     of f and g beyond that g(1) be invertible;
//   - the "multiplicative" tier (multiplicative.go) costs O(n log log n)
//     but requires the result h to be multiplicative;
//   - the "completely multiplicative" tier (completely.go) costs O(n) but
//     requires h to be completely multiplicative.
//
// Every identity here follows the diagram:
//
//	     1       1
//	phi ---> Id ---> sigma
//	phi <--- Id <--- sigma
//	     mu      mu
package dirichlet

import "github.com/ntkit/numth/ring"

// Fn is an arithmetic function f: Z+ -> T, evaluated by argument rather than
// precomputed into a table.
type Fn[T any] func(n int) T

// Convolution computes h = f * g over [0, n) in O(n log n), where
// h(i) = sum_{d | i} f(i/d) g(d).
func Convolution[T ring.Elem[T]](h []T, f, g Fn[T], n int) {
	e0 := f(1).Zero()
	for i := 0; i < n; i++ {
		h[i] = e0
	}
	for d := 1; d < n; d++ {
		for e, i := 1, d; i < n; i, e = i+d, e+1 {
			h[i] = h[i].Add(f(d).Mul(g(e)))
		}
	}
}

// Division computes h = f * g^-1 over [0, n) in O(n log n). g(1) must be
// invertible.
func Division[T ring.Elem[T]](h []T, f, g Fn[T], n int) {
	e1 := g(1).One()
	ig1 := ring.MustDiv(e1, g(1))
	for i := 1; i < n; i++ {
		h[i] = f(i)
	}
	for d := 1; d < n; d++ {
		h[d] = h[d].Mul(ig1)
		for j, i := 2, d*2; i < n; i, j = i+d, j+1 {
			h[i] = h[i].Sub(g(j).Mul(h[d]))
		}
	}
}

// Inverse computes f_inv = f^-1 over [0, n) in O(n log n), where f*f_inv = e,
// the Dirichlet identity e(1) = 1, e(n>1) = 0. f(1) must be invertible.
func Inverse[T ring.Elem[T]](fInv []T, f Fn[T], n int) {
	e1, e0 := f(1).One(), f(1).Zero()
	e := func(n int) T {
		if n == 1 {
			return e1
		}
		return e0
	}
	Division(fInv, e, f, n)
}

// MoebiusTransform computes g(n) = sum_{d|n} mu(n/d) f(d) over [0, n) in
// O(n log n).
func MoebiusTransform[T ring.Elem[T]](g []T, f Fn[T], n int) {
	e1 := f(1).One()
	one := func(int) T { return e1 }
	Division(g, f, one, n)
}
