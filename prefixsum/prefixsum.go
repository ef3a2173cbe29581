// Package prefixsum evaluates a single value M(n) of a prefix-sum function
// in sublinear time, via memoized recursion over the sqrt-decomposition of
// n, rather than sieving the whole range as package sievem does. It trades
// sievem's O(n log n) whole-table cost for O(n^(3/4)) (or O(n^(2/3)) given a
// sieved head start) to answer a single query.
package prefixsum

import (
	"github.com/ntkit/numth/intutil"
	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sqrtmap"
)

// Fn is an arithmetic function f: Z+ -> T, evaluated lazily.
type Fn[T any] func(n int64) T

// NewTable allocates a memoization table sized for queries up to n, as used
// by SumM/SumMWeighted. Entries may be pre-seeded (e.g. from a whole-range
// sieve) before the first call to seed the sublinear recursion's base cases.
func NewTable[T any](n int64, zero T) *sqrtmap.Map[T] {
	q := intutil.Isqrt(n)
	if q < 1 {
		q = 1
	}
	nq := n / q
	tbl := sqrtmap.New[T](nq+1, n)
	tbl.Set(0, zero)
	return tbl
}

// SumM evaluates M(n) where t(n) = sum_{k=1}^n M(floor(n/k)), in
// O(n^(3/4)) (or O(n^(2/3)) if tbl is pre-seeded up to O(n^(2/3))). tbl must
// have been built to cover n (see NewTable); id must be a context-bearing
// ring element (e.g. ring.ModInt{M: modulus}).
func SumM[T ring.Elem[T]](t Fn[T], n int64, tbl *sqrtmap.Map[T], id T) T {
	e0 := id.Zero()
	if n < 1 {
		return e0
	}
	if tbl.Contains(n) {
		return tbl.Get(n)
	}
	r := t(n)
	q := intutil.Isqrt(n)
	for k := int64(2); k <= n/q; k++ {
		r = r.Sub(SumM(t, n/k, tbl, id))
	}
	for m := int64(1); m < q; m++ {
		cnt := id.FromInt(n/m - n/(m+1))
		r = r.Sub(SumM(t, m, tbl, id).Mul(cnt))
	}
	tbl.Set(n, r)
	return r
}

// SumMWeighted evaluates M(n) where t(n) = sum_{k=1}^n p(k) M(floor(n/k))
// for an invertible-at-1 weight p with prefix sums s (s(n) = sum_{k=1}^n
// p(k), s(0) = 0), in O(n^(3/4)) (or O(n^(2/3)) with a pre-seeded tbl).
func SumMWeighted[T ring.Elem[T]](t, s Fn[T], n int64, tbl *sqrtmap.Map[T], id T) T {
	e0 := id.Zero()
	if n < 1 {
		return e0
	}
	if tbl.Contains(n) {
		return tbl.Get(n)
	}
	r := t(n)
	p1 := s(1).Sub(s(0))
	q := intutil.Isqrt(n)
	for k := int64(2); k <= n/q; k++ {
		weight := s(k).Sub(s(k - 1))
		r = r.Sub(weight.Mul(SumMWeighted(t, s, n/k, tbl, id)))
	}
	for m := int64(1); m < q; m++ {
		weight := s(n / m).Sub(s(n / (m + 1)))
		r = r.Sub(weight.Mul(SumMWeighted(t, s, m, tbl, id)))
	}
	v := ring.MustDiv(r, p1)
	tbl.Set(n, v)
	return v
}
