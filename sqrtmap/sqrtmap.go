// Package sqrtmap implements the hybrid dense/sparse table shared by every
// sublinear prefix-sum routine in the kernel: a map whose only valid keys
// are "small" (0 <= k < U) or "large" breakpoints of the form floor(n/i),
// backed by two flat arrays rather than a hash map so that the O(sqrt n)
// access pattern stays cache-friendly.
package sqrtmap

import (
	"errors"
	"fmt"
)

// ErrBadKey is wrapped by the error Set/Get panic with when the key is
// neither a small key (0 <= k < U) nor a large breakpoint (k = n/i for some
// 1 <= i <= n/U).
// Writing to such a key is a programming error, not a recoverable
// condition, matching the ResourceLimit class of error spec.md documents
// for this structure.
var ErrBadKey = errors.New("sqrtmap: key is neither a small index nor a breakpoint")

// Map is a K -> V table over int64 keys, where K partitions into the small
// region [0, U) and the large region of breakpoints floor(n/i).
type Map[T any] struct {
	n, u, nMax int64

	small    []T
	smallSet []bool

	large    []T
	largeSet []bool
}

// New returns a Map for keys up to n, with small keys stored densely for
// 0 <= k < u. u should be at least ceil(sqrt(n)) so that every breakpoint
// falls unambiguously into one half or the other.
func New[T any](u, n int64) *Map[T] {
	if u <= 0 || n < 0 {
		panic("sqrtmap: require u > 0 and n >= 0")
	}
	nu := n/u + 1
	return &Map[T]{
		n: n, u: u, nMax: n,
		small:    make([]T, u),
		smallSet: make([]bool, u),
		large:    make([]T, nu),
		largeSet: make([]bool, nu),
	}
}

// N returns the current ceiling this map is interpreted over.
func (m *Map[T]) N() int64 { return m.n }

// U returns the size of the small region.
func (m *Map[T]) U() int64 { return m.u }

// locate returns the backing slice and index for key k, or ok=false if k is
// not representable (neither a small key nor an exact breakpoint of n).
func (m *Map[T]) locate(k int64) (small bool, idx int, ok bool) {
	if k < 0 || k > m.n {
		return false, 0, false
	}
	if k < m.u {
		return true, int(k), true
	}
	i := m.n / k
	if i <= 0 || i >= int64(len(m.large)) || m.n/i != k {
		return false, 0, false
	}
	return false, int(i), true
}

// Contains reports whether k has been Set.
func (m *Map[T]) Contains(k int64) bool {
	small, idx, ok := m.locate(k)
	if !ok {
		return false
	}
	if small {
		return m.smallSet[idx]
	}
	return m.largeSet[idx]
}

// Get returns the value stored at k. It panics if k was never Set; callers
// that need the "maybe absent" form should check Contains first.
func (m *Map[T]) Get(k int64) T {
	small, idx, ok := m.locate(k)
	if !ok {
		panic(fmt.Errorf("%w: k=%d n=%d u=%d", ErrBadKey, k, m.n, m.u))
	}
	if small {
		if !m.smallSet[idx] {
			panic(fmt.Errorf("sqrtmap: read of unset key %d", k))
		}
		return m.small[idx]
	}
	if !m.largeSet[idx] {
		panic(fmt.Errorf("sqrtmap: read of unset key %d", k))
	}
	return m.large[idx]
}

// Set stores v at key k. It panics (ErrBadKey) if k is not a valid small key
// or breakpoint for the map's current n.
func (m *Map[T]) Set(k int64, v T) {
	small, idx, ok := m.locate(k)
	if !ok {
		panic(fmt.Errorf("%w: k=%d n=%d u=%d", ErrBadKey, k, m.n, m.u))
	}
	if small {
		m.small[idx] = v
		m.smallSet[idx] = true
		return
	}
	m.large[idx] = v
	m.largeSet[idx] = true
}

// ResetMax reinterprets the large half of the map under a new ceiling n2,
// without reallocating beyond the map's original construction size. n2 may
// be smaller or larger than the current ceiling (callers such as the phi_D
// weighted sums cycle through several ceilings in sequence) but may never
// exceed the n the map was originally constructed with. Small values (which
// never depended on n) are kept; large values are invalidated, since the
// breakpoint each large slot represents changes with n.
func (m *Map[T]) ResetMax(n2 int64) {
	if n2 > m.nMax || n2 < 0 {
		panic("sqrtmap: ResetMax ceiling out of range")
	}
	m.n = n2
	nu := n2/m.u + 1
	if int64(cap(m.large)) >= nu {
		m.large = m.large[:nu]
		m.largeSet = m.largeSet[:nu]
	} else {
		m.large = make([]T, nu)
		m.largeSet = make([]bool, nu)
	}
	for i := range m.largeSet {
		m.largeSet[i] = false
	}
}

// FromFunc builds a fully-populated Map for n by evaluating f once for
// every breakpoint floor(n/i), 1 <= i <= n, in O(sqrt n) calls. This is the
// "make_sqrt_map" construction: useful when f is O(1) per call and only
// the breakpoint values of f are ever needed.
func FromFunc[T any](f func(int64) T, n int64, zero T) *Map[T] {
	q := int64(1)
	for (q+1)*(q+1) <= n {
		q++
	}
	nq := n / q
	tbl := New[T](nq+1, n)
	for k := int64(1); k <= nq; k++ {
		tbl.Set(k, f(k))
	}
	for i := int64(1); i <= q; i++ {
		k := n / i
		tbl.Set(k, f(k))
	}
	tbl.Set(0, zero)
	return tbl
}
