// Package ring abstracts the coefficient type that the rest of the kernel
// is parametrised over: a commutative ring with a multiplicative identity,
// values of which carry their own context (a modulus, say) instead of
// relying on any package-level state.
package ring

import "errors"

// ErrNotInvertible is returned by Div when the divisor has no multiplicative
// inverse in the caller's ring (for example, division by a non-unit modular
// residue, or by the additive identity).
var ErrNotInvertible = errors.New("ring: element is not invertible")

// Elem is the minimal ring interface every coefficient type the kernel
// operates on must satisfy. T is the concrete type implementing the
// interface (the usual Go "curiously recurring" generic constraint), so
// that arithmetic methods can return concrete values rather than the
// interface itself.
//
// Implementations must be values (not pointers) so that they can be stored
// directly in slices and sqrt-map tables without an extra allocation.
type Elem[T any] interface {
	// Zero returns the additive identity in the same ring as the receiver.
	Zero() T
	// One returns the multiplicative identity in the same ring as the receiver.
	One() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	// Div returns the receiver divided by other. It reports ErrNotInvertible
	// if other has no multiplicative inverse.
	Div(other T) (T, error)
	Equal(T) bool
	// FromInt casts an integer into this ring, inheriting the receiver's
	// context (e.g. a ModInt's modulus).
	FromInt(z int64) T
}

// Pow returns x raised to the e-th power via repeated squaring. e must be
// non-negative.
func Pow[T Elem[T]](x T, e int64) T {
	if e < 0 {
		panic("ring: negative exponent")
	}
	result := x.One()
	base := x
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

// Cast returns other reinterpreted in ref's ring. For the coefficient types
// in this package it is the identity function; it exists so call sites read
// the same as the two-argument "cast(ref, other)" convention the kernel is
// derived from, and so a future ring with real context-inheritance
// (e.g. converting between two different moduli) has a natural seam.
func Cast[T Elem[T]](ref, other T) T {
	return other
}

// MustDiv divides x by y and panics if y is not invertible. It exists for
// call sites (constant folding, test fixtures) where the divisor is known
// by construction to be a unit.
func MustDiv[T Elem[T]](x, y T) T {
	r, err := x.Div(y)
	if err != nil {
		panic(err)
	}
	return r
}
