// Package sievem computes the whole-range prefix-sum table M of a function
// M' whose Dirichlet partial sums t are known in closed form:
//
//	t(n) = sum_{k=1}^{n} p(k) M(n/k)
//
// for some invertible-at-1 weight p. Sieving M over [0, n) costs only
// O(n log n) (Sieve/SieveWithP) or O(n log log n) when M' is itself
// multiplicative (SieveMultiplicative/SieveMultiplicativeInv), against
// O(n^2) for the naive approach of inverting the Dirichlet sum directly.
package sievem

import (
	"github.com/ntkit/numth/dirichlet"
	"github.com/ntkit/numth/ring"
)

// Fn is an arithmetic function f: Z+ -> T.
type Fn[T any] = dirichlet.Fn[T]

// SieveWithP sieves M over [0, n) in O(n log n), given t(n) = sum p(k)M(n/k)
// for an invertible-at-1 weight p.
func SieveWithP[T ring.Elem[T]](M []T, t, p Fn[T], n int) {
	e1 := p(1).One()
	ip1 := ring.MustDiv(e1, p(1))
	M[1] = t(1)
	for i := 2; i < n; i++ {
		M[i] = t(i).Sub(t(i - 1))
	}
	for d := 1; d < n; d++ {
		M[d] = M[d].Mul(ip1)
		for j, i := 2, d*2; i < n; i, j = i+d, j+1 {
			M[i] = M[i].Sub(p(j).Mul(M[d]))
		}
		if d > 1 {
			M[d] = M[d].Add(M[d-1])
		}
	}
}

// Sieve sieves M over [0, n) in O(n log n), given t(n) = sum_{k=1}^n M(n/k)
// (SieveWithP with p(n) = 1).
func Sieve[T ring.Elem[T]](M []T, t Fn[T], n int) {
	M[1] = t(1)
	for i := 2; i < n; i++ {
		M[i] = t(i).Sub(t(i - 1))
	}
	for d := 1; d < n; d++ {
		for i := d * 2; i < n; i += d {
			M[i] = M[i].Sub(M[d])
		}
		if d > 1 {
			M[d] = M[d].Add(M[d-1])
		}
	}
}

// SieveMultiplicativeInv sieves M over [0, n) in O(n log log n), given
// t(n) = sum p(k)M(n/k) and the Dirichlet inverse pInv of p (both known in
// closed form), where M' = M - M(*-1) is multiplicative.
func SieveMultiplicativeInv[T ring.Elem[T]](M []T, t, pInv Fn[T], n int, primes []int64) {
	dt := func(k int) T {
		if k == 1 {
			return t(1)
		}
		return t(k).Sub(t(k - 1))
	}
	dirichlet.ConvolutionMultiplicative(M, pInv, dt, n, primes)
	for i := 1; i < n; i++ {
		M[i] = M[i].Add(M[i-1])
	}
}

// SieveMultiplicative sieves M over [0, n) in O(n log log n), given
// t(n) = sum p(k)M(n/k) for a multiplicative weight p, where
// M' = M - M(*-1) is multiplicative.
func SieveMultiplicative[T ring.Elem[T]](M []T, t, p Fn[T], n int, primes []int64) {
	pInvTbl := make([]T, n)
	dirichlet.InverseMultiplicative(pInvTbl, p, n, primes)
	pInv := func(k int) T { return pInvTbl[k] }
	SieveMultiplicativeInv(M, t, pInv, n, primes)
}
