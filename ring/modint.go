package ring

import "math/bits"

// ModInt is an element of Z/MZ. Arithmetic is performed modulo M, which
// travels with the value so no global modulus is ever assumed. M must be a
// positive integer fitting in 63 bits; Mul uses bits.Mul64/Div64 so that M
// can safely approach 2^32 without overflowing during multiplication.
type ModInt struct {
	V uint64
	M uint64
}

func (x ModInt) norm(v uint64) ModInt {
	return ModInt{V: v % x.M, M: x.M}
}

func (x ModInt) Zero() ModInt { return ModInt{V: 0, M: x.M} }
func (x ModInt) One() ModInt  { return ModInt{V: 1 % x.M, M: x.M} }

func (x ModInt) Add(y ModInt) ModInt {
	s := x.V + y.V
	if s >= x.M {
		s -= x.M
	}
	return ModInt{V: s, M: x.M}
}

func (x ModInt) Sub(y ModInt) ModInt {
	var d uint64
	if x.V >= y.V {
		d = x.V - y.V
	} else {
		d = x.M - (y.V - x.V)
	}
	return ModInt{V: d, M: x.M}
}

func (x ModInt) Neg() ModInt {
	if x.V == 0 {
		return x
	}
	return ModInt{V: x.M - x.V, M: x.M}
}

func (x ModInt) Mul(y ModInt) ModInt {
	hi, lo := bits.Mul64(x.V, y.V)
	_, rem := bits.Div64(hi, lo, x.M)
	return ModInt{V: rem, M: x.M}
}

func (x ModInt) Equal(y ModInt) bool { return x.V == y.V && x.M == y.M }

// FromInt reduces z modulo the receiver's modulus, inheriting M.
func (x ModInt) FromInt(z int64) ModInt {
	m := int64(x.M)
	r := z % m
	if r < 0 {
		r += m
	}
	return ModInt{V: uint64(r), M: x.M}
}

// Div multiplies by the modular inverse of y, computed via the extended
// Euclidean algorithm. It reports ErrNotInvertible when gcd(y.V, y.M) != 1.
func (x ModInt) Div(y ModInt) (ModInt, error) {
	inv, ok := modInverse(y.V, y.M)
	if !ok {
		return ModInt{}, ErrNotInvertible
	}
	return x.Mul(ModInt{V: inv, M: x.M}), nil
}

// modInverse returns a^-1 mod m via the extended Euclidean algorithm:
// it tracks the Bezout coefficient of a through oldR, oldS such that
// a*oldS + m*(...) = oldR, so oldS is a's inverse once oldR reaches 1.
func modInverse(a, m uint64) (uint64, bool) {
	if m == 0 {
		return 0, false
	}
	oldR, r := int64(a%m), int64(m)
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}
	oldS %= int64(m)
	if oldS < 0 {
		oldS += int64(m)
	}
	return uint64(oldS), true
}
