// Package fenwick implements a Fenwick tree (binary indexed tree) over an
// arbitrary commutative-group coefficient, supporting O(log n) point update
// and prefix-sum query. It backs the rough-number traversal phase of
// summult.SumMultiplicative, which needs running prefix sums over a
// dynamically-updated array of O(sqrt(n)) buckets, one per breakpoint.
package fenwick

import "github.com/ntkit/numth/ring"

// Tree is a 1-indexed Fenwick tree over n elements.
type Tree[T ring.Elem[T]] struct {
	t    []T
	n    int
	zero T
}

// New returns a Tree over n elements, all initialized to zero. zero must be
// a context-bearing additive identity (e.g. ring.ModInt{M: modulus}) since
// the tree itself has no other way to construct one.
func New[T ring.Elem[T]](n int, zero T) *Tree[T] {
	if n < 0 {
		panic("fenwick: negative size")
	}
	t := make([]T, n+1)
	z := zero.Zero()
	for i := range t {
		t[i] = z
	}
	return &Tree[T]{t: t, n: n, zero: z}
}

// Add adds delta to the element at position i (1-indexed).
func (f *Tree[T]) Add(i int, delta T) {
	if i < 1 || i > f.n {
		panic("fenwick: index out of range")
	}
	for ; i <= f.n; i += i & (-i) {
		f.t[i] = f.t[i].Add(delta)
	}
}

// Sum returns the prefix sum of elements 1..i (1-indexed, inclusive). Sum(0)
// is the additive identity.
func (f *Tree[T]) Sum(i int) T {
	if i < 0 || i > f.n {
		panic("fenwick: index out of range")
	}
	r := f.zero
	for ; i > 0; i -= i & (-i) {
		r = r.Add(f.t[i])
	}
	return r
}

// Range returns the sum of elements lo..hi, inclusive (1-indexed).
func (f *Tree[T]) Range(lo, hi int) T {
	if lo > hi {
		return f.zero
	}
	if lo <= 1 {
		return f.Sum(hi)
	}
	return f.Sum(hi).Sub(f.Sum(lo - 1))
}

// N returns the number of elements the tree was constructed over.
func (f *Tree[T]) N() int { return f.n }
