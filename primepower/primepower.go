// Package primepower computes sums over primes via the Lucy-Hedgehog
// method: starting from a closed-form sum over ALL integers up to every
// breakpoint of n, it repeatedly subtracts off the contribution of
// composites whose smallest prime factor equals each successively larger
// prime, leaving only the contribution of the primes themselves.
//
// The method generalizes beyond the textbook "count primes" / "sum
// primes" cases to any weight function that extends completely
// multiplicatively over the integers: PrimePowerSumSqrt instantiates it
// with the monomial weight p^z (using polynom.Polynom.Sum for the closed
// form instead of a ported Faulhaber/Bernoulli-number routine), and
// PrimePiMod4 instantiates it with the non-principal Dirichlet character
// mod 4 to split the prime count by residue class.
package primepower

import (
	"github.com/ntkit/numth/intutil"
	"github.com/ntkit/numth/polynom"
	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sqrtmap"
)

// sumOverPrimes computes, at every breakpoint k of n, the sum over primes
// p <= k of weight(p), given:
//   - seed(k), the sum of g(a) for 2 <= a <= k, where g is the completely
//     multiplicative extension of weight to every integer;
//   - weight(p) = g(p) for every prime p;
//   - primesUpToSqrtN, every prime <= sqrt(n), ascending.
func sumOverPrimes[T ring.Elem[T]](n int64, primesUpToSqrtN []int64, seed func(k int64) T, weight func(p int64) T) *sqrtmap.Map[T] {
	if n < 0 {
		panic("primepower: negative n")
	}
	q := intutil.Isqrt(n)
	d := sqrtmap.New[T](q+1, n)
	if n == 0 {
		return d
	}
	for l := int64(1); l <= q; l++ {
		i := n / l
		d.Set(i, seed(i))
	}
	top := n/q - 1
	if top > q {
		top = q
	}
	for i := top; i >= 1; i-- {
		d.Set(i, seed(i))
	}
	for _, p := range primesUpToSqrtN {
		p2 := p * p
		if p2 > n {
			break
		}
		lMax := q
		if n/p2 < lMax {
			lMax = n / p2
		}
		w := weight(p)
		for l := int64(1); l <= lMax; l++ {
			i := n / l
			d.Set(i, d.Get(i).Sub(d.Get(i/p).Sub(d.Get(p-1)).Mul(w)))
		}
		for i := top; i >= p2; i-- {
			d.Set(i, d.Get(i).Sub(d.Get(i/p).Sub(d.Get(p-1)).Mul(w)))
		}
	}
	return d
}

// PrimePowerSumSqrt returns a sqrt map d such that d.Get(k) = sum over
// primes q <= k of q^z, for every breakpoint k of n. primesUpToSqrtN must
// list every prime <= sqrt(n); id is a context-bearing ring element (e.g.
// ring.ModInt{M: modulus}).
func PrimePowerSumSqrt[T ring.Elem[T]](z int, n int64, primesUpToSqrtN []int64, id T) *sqrtmap.Map[T] {
	if z < 0 {
		panic("primepower: negative exponent")
	}
	e0, e1 := id.Zero(), id.One()
	coeffs := make([]T, z+1)
	for i := range coeffs {
		coeffs[i] = e0
	}
	coeffs[z] = e1
	monomialSum := polynom.New(coeffs...).Sum()

	seed := func(k int64) T {
		return monomialSum.Eval(id.FromInt(k)).Sub(e1)
	}
	weight := func(p int64) T {
		return ring.Pow(id.FromInt(p), int64(z))
	}
	return sumOverPrimes(n, primesUpToSqrtN, seed, weight)
}

// PrimeSum returns sum_{primes p <= n} p.
func PrimeSum[T ring.Elem[T]](n int64, primesUpToSqrtN []int64, id T) T {
	return PrimePowerSumSqrt(1, n, primesUpToSqrtN, id).Get(n)
}

// PrimePi returns the number of primes <= n.
func PrimePi[T ring.Elem[T]](n int64, primesUpToSqrtN []int64, id T) T {
	return PrimePowerSumSqrt(0, n, primesUpToSqrtN, id).Get(n)
}

// chi4 is the non-principal Dirichlet character mod 4: chi4(a) is 0 for
// even a, +1 for a === 1 (mod 4), -1 for a === 3 (mod 4). It is completely
// multiplicative, which is what makes PrimePiMod4 below a legitimate
// instance of sumOverPrimes rather than an ad hoc hack.
func chi4(a int64) int {
	switch a % 4 {
	case 1:
		return 1
	case 3:
		return -1
	default:
		return 0
	}
}

// chi4PrefixSum returns sum_{a=1}^{k} chi4(a). chi4 has period 4 and its
// values sum to zero over each full period, so the running sum depends
// only on k mod 4.
func chi4PrefixSum(k int64) int {
	if k <= 0 {
		return 0
	}
	switch k % 4 {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 1
	default: // 3
		return 0
	}
}

// PrimePiMod4 returns the number of primes p <= n with p === residue (mod 4),
// for residue in {1, 3}. It is computed from the prime count and the
// Dirichlet L-sum S(n) = sum_{primes p<=n} chi4(p): since every odd prime
// is +1 or -1 under chi4, pi_1 + pi_3 = pi(n) - [2<=n] and pi_1 - pi_3 =
// S(n), so pi_1 = (pi(n)-[2<=n]+S(n))/2 and pi_3 = (pi(n)-[2<=n]-S(n))/2.
// id's ring must support division by 2.
func PrimePiMod4[T ring.Elem[T]](residue int, n int64, primesUpToSqrtN []int64, id T) T {
	if residue != 1 && residue != 3 {
		panic("primepower: residue must be 1 or 3")
	}
	e1 := id.One()
	seed := func(k int64) T {
		return id.FromInt(int64(chi4PrefixSum(k)) - int64(chi4PrefixSum(1)))
	}
	weight := func(p int64) T {
		return id.FromInt(int64(chi4(p)))
	}
	schi := sumOverPrimes(n, primesUpToSqrtN, seed, weight).Get(n)

	pi := PrimePi(n, primesUpToSqrtN, id)
	oddPrimes := pi
	if n >= 2 {
		oddPrimes = pi.Sub(e1)
	}

	two := id.FromInt(2)
	var numerator T
	if residue == 1 {
		numerator = oddPrimes.Add(schi)
	} else {
		numerator = oddPrimes.Sub(schi)
	}
	return ring.MustDiv(numerator, two)
}
