// Package intutil provides the small integer-arithmetic primitives the rest
// of the kernel is built on: integer square/cube roots, gcd, floor/ceil
// division and "smallest multiple at least b".
package intutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Isqrt returns floor(sqrt(n)) for n >= 0.
func Isqrt[I constraints.Integer](n I) I {
	if n < 0 {
		panic("intutil: Isqrt of negative number")
	}
	if n == 0 {
		return 0
	}
	r := I(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Icbrt returns floor(cbrt(n)) for n >= 0.
func Icbrt[I constraints.Integer](n I) I {
	if n < 0 {
		panic("intutil: Icbrt of negative number")
	}
	if n == 0 {
		return 0
	}
	r := I(math.Cbrt(float64(n)))
	for r > 0 && r*r*r > n {
		r--
	}
	for (r+1)*(r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Isq returns n*n.
func Isq[I constraints.Integer](n I) I {
	return n * n
}

// Gcd returns the greatest common divisor of a and b (either may be
// negative; the result is non-negative).
func Gcd[I constraints.Integer](a, b I) I {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// DivFloor returns floor(a/b).
func DivFloor[I constraints.Integer](a, b I) I {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DivCeil returns ceil(a/b).
func DivCeil[I constraints.Integer](a, b I) I {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

// Multiple returns the smallest multiple of p that is >= b. p must be positive.
func Multiple[I constraints.Integer](p, b I) I {
	if p <= 0 {
		panic("intutil: Multiple requires a positive modulus")
	}
	return DivCeil(b, p) * p
}
