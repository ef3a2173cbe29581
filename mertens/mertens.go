// Package mertens specializes the sqrt-decomposition kernels in prefixsum,
// sievem and summult to the Mertens function M(n) = sum_{k<=n} mu(k) and
// its odd/even splits, and builds the totient-dimension generating-function
// sum Sum[k^L * phi_D(k), {k,1,n}] on top of the polynomial kernel.
package mertens

import (
	"github.com/ntkit/numth/combin"
	"github.com/ntkit/numth/dirichlet"
	"github.com/ntkit/numth/intutil"
	"github.com/ntkit/numth/polynom"
	"github.com/ntkit/numth/prefixsum"
	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sievem"
	"github.com/ntkit/numth/sqrtmap"
	"github.com/ntkit/numth/summult"
)

// Mertens evaluates M(n) = sum_{k=1}^n mu(k), in O(n^(3/4)) (or
// O(n^(2/3)) with tbl pre-seeded — see prefixsum.SumM). It is sum_m
// instantiated with p=1, t=1: M'(n) has Dirichlet partial sum identically
// 1, since mu * 1 = e.
func Mertens[T ring.Elem[T]](n int64, tbl *sqrtmap.Map[T], id T) T {
	one := func(int64) T { return id }
	return prefixsum.SumM(one, n, tbl, id)
}

// MertensOdd evaluates sum_{k=1,3,5,...<=n} mu(k), via the weighted sum_m
// with p(k) = [k odd], s(k) = ceil(k/2).
func MertensOdd[T ring.Elem[T]](n int64, tbl *sqrtmap.Map[T], id T) T {
	t := func(int64) T { return id }
	s := func(k int64) T { return id.FromInt((k + 1) / 2) }
	return prefixsum.SumMWeighted(t, s, n, tbl, id)
}

// MertensEven evaluates sum_{k=2,4,6,...<=n} mu(k), via the weighted
// sum_m with t(k) = -1 for k>1 (0 otherwise) and the same odd-counting s
// as MertensOdd. M = MertensEven + MertensOdd at every breakpoint.
func MertensEven[T ring.Elem[T]](n int64, tbl *sqrtmap.Map[T], id T) T {
	zero := id.Zero()
	t := func(k int64) T {
		if k > 1 {
			return id.Neg()
		}
		return zero
	}
	s := func(k int64) T { return id.FromInt((k + 1) / 2) }
	return prefixsum.SumMWeighted(t, s, n, tbl, id)
}

// MertensSqrt returns a sqrt map M such that M.Get(k) = Mertens(k) for
// every breakpoint k of n, in O(n^(2/3)) via summult.SumMultiplicative
// instantiated with f = mu (f(p^e) = -1 if e=1, 0 if e>1) and
// s1(m) = -pi(m). piTbl must hold pi(m) = number of primes <= m for every
// breakpoint m of n (see primepower.PrimePowerSumSqrt(0, n, ...)); pa
// must list every prime up to sqrt(n), as summult.SumMultiplicative
// requires.
func MertensSqrt[T ring.Elem[T]](n int64, piTbl *sqrtmap.Map[T], pa []int64, id T) *sqrtmap.Map[T] {
	mu := func(fpe1 T, p int64, e int) T {
		if e > 1 {
			return id.Zero()
		}
		return id.Neg()
	}
	s1 := func(m int64) T { return piTbl.Get(m).Neg() }
	return summult.SumMultiplicative(s1, mu, n, pa, id)
}

// MertensOddSqrt is MertensSqrt restricted to odd arguments: f(2^e) = 0
// for every e, and s1 counts only odd primes.
func MertensOddSqrt[T ring.Elem[T]](n int64, piTbl *sqrtmap.Map[T], pa []int64, id T) *sqrtmap.Map[T] {
	mu := func(fpe1 T, p int64, e int) T {
		if p == 2 || e > 1 {
			return id.Zero()
		}
		return id.Neg()
	}
	s1 := func(m int64) T {
		v := piTbl.Get(m).Neg()
		if m >= 2 {
			v = v.Add(id)
		}
		return v
	}
	return summult.SumMultiplicative(s1, mu, n, pa, id)
}

// MertensEvenSqrt returns MertensSqrt - MertensOddSqrt at every
// breakpoint of n.
func MertensEvenSqrt[T ring.Elem[T]](n int64, piTbl *sqrtmap.Map[T], pa []int64, id T) *sqrtmap.Map[T] {
	m1 := MertensOddSqrt(n, piTbl, pa, id)
	m0 := MertensSqrt(n, piTbl, pa, id)
	q := intutil.Isqrt(n)
	nq := n / (q + 1)
	for i := int64(1); i <= q; i++ {
		m0.Set(i, m0.Get(i).Sub(m1.Get(i)))
	}
	for i := int64(1); i <= nq; i++ {
		k := n / i
		m0.Set(k, m0.Get(k).Sub(m1.Get(k)))
	}
	return m0
}

// SieveMertens fills M[0..n) with Mertens(i) in O(n log log n), via
// sieve_m_multiplicative with p = t = 1.
func SieveMertens[T ring.Elem[T]](M []T, n int, pa []int64, id T) {
	one := func(int) T { return id }
	sievem.SieveMultiplicative(M, one, one, n, pa)
}

// SieveMertensOdd fills M[0..n) with MertensOdd(i) in O(n log log n).
func SieveMertensOdd[T ring.Elem[T]](M []T, n int, pa []int64, id T) {
	zero := id.Zero()
	t := func(int) T { return id }
	p := func(k int) T {
		if k%2 == 1 {
			return id
		}
		return zero
	}
	sievem.SieveMultiplicative(M, t, p, n, pa)
}

// SieveMertensEven fills M[0..n) with MertensEven(i) in O(n log n): the
// backward difference of MertensEven is not multiplicative, so this uses
// the generic sievem.SieveWithP rather than the multiplicative variant.
func SieveMertensEven[T ring.Elem[T]](M []T, n int, id T) {
	zero := id.Zero()
	t := func(k int) T {
		if k > 1 {
			return id.Neg()
		}
		return zero
	}
	p := func(k int) T {
		if k%2 == 1 {
			return id
		}
		return zero
	}
	sievem.SieveWithP(M, t, p, n)
}

// SieveMertensEvenOdd fills M0 and M1 with MertensEven and MertensOdd in
// O(n log log n), reusing the identity MertensEven = Mertens - MertensOdd
// to avoid the slower generic sieve SieveMertensEven needs on its own.
func SieveMertensEvenOdd[T ring.Elem[T]](M0, M1 []T, n int, pa []int64, id T) {
	SieveMertensOdd(M1, n, pa, id)
	SieveMertens(M0, n, pa, id)
	for k := 0; k < n; k++ {
		M0[k] = M0[k].Sub(M1[k])
	}
}

// PhiDWeights returns the generating polynomial g_phi_D, whose Mobius
// transform is the totient-dimension function phi_D (phi_D = mu *
// g_phi_D, g_phi_D = 1 * phi_D): g_phi_D(d) = C(D+d-1, D) for every
// non-negative integer d. g_phi_D(0) = 0 for D >= 1, so D+1 samples
// (one combin.Binomial call each, for d = 1..D) pin down the degree-D
// interpolating polynomial.
func PhiDWeights[T ring.Elem[T]](D int, id T) polynom.Polynom[T] {
	e0 := id.Zero()
	if D == 0 {
		return polynom.New(id)
	}
	xs := make([]T, D+1)
	ys := make([]T, D+1)
	xs[0], ys[0] = e0, e0
	for d := 1; d <= D; d++ {
		xs[d] = id.FromInt(int64(d))
		ys[d] = id.FromInt(int64(combin.Binomial(D+d-1, D)))
	}
	return polynom.Interpolate(xs, ys)
}

// PhiDReference computes phi_D(n) = sum_{d|n} mu(n/d) * C(D+d-1, D)
// directly from its definition, one combin.Binomial call per divisor of
// n. It is a correctness reference for SumPhiDL on small n, not a fast
// path: SumPhiDL evaluates phi_D's generating function through the
// polynomial kernel instead of enumerating divisors.
func PhiDReference(D int, n int64, mu func(int64) int) int64 {
	var s int64
	for d := int64(1); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		e := n / d
		s += int64(mu(e)) * int64(combin.Binomial(D+int(d)-1, D))
		if e != d {
			s += int64(mu(d)) * int64(combin.Binomial(D+int(e)-1, D))
		}
	}
	return s
}

func polyPow[T ring.Elem[T]](base polynom.Polynom[T], e int) polynom.Polynom[T] {
	if len(base.C) == 0 {
		panic("mertens: polyPow requires at least one coefficient for ring context")
	}
	result := polynom.New(base.C[0].One())
	for i := 0; i < e; i++ {
		result = result.Mul(base)
	}
	return result
}

// sumGL is sum_g_L: given the generating polynomial g of a multiplicative
// function whose Mobius transform is phi (phi = mu*g), evaluate
// Sum[k^L * phi(k), {k,1,n}] at every n in vn in O(n^(2/3)), building the
// dense prefix of p(k)*phi(k) up to U (O(n^(2/3)) by default) and the
// closed-form polynomials p=x^L, s=Sum(p), t=Sum(p*g) needed by
// prefixsum.SumMWeighted for the sparse tail.
func sumGL[T ring.Elem[T]](g polynom.Polynom[T], L int, vn []int64, U int, id T) []T {
	e0 := id.Zero()
	x := polynom.New(e0, id)
	p := polyPow(x, L)
	s := p.Sum()
	t := p.Mul(g).Sum()

	n := int64(0)
	for _, v := range vn {
		if v > n {
			n = v
		}
	}
	if U <= 0 {
		c := intutil.Icbrt(n)
		U = int(intutil.Isq(c))
		if U < 1 {
			U = 1
		}
	}

	gFn := func(k int) T { return g.Eval(id.FromInt(int64(k))) }
	phiD := make([]T, U)
	dirichlet.MoebiusTransform(phiD, gFn, U)

	mm := sqrtmap.New[T](int64(U)+1, n)
	mm.Set(0, e0)
	acc := e0
	for k := int64(1); k < int64(U); k++ {
		pk := p.Eval(id.FromInt(k))
		acc = acc.Add(pk.Mul(phiD[k]))
		mm.Set(k, acc)
	}

	tFn := func(k int64) T { return t.Eval(id.FromInt(k)) }
	sFn := func(k int64) T { return s.Eval(id.FromInt(k)) }

	out := make([]T, len(vn))
	for i, k := range vn {
		mm.ResetMax(k)
		out[i] = prefixsum.SumMWeighted(tFn, sFn, k, mm, id)
	}
	return out
}

// SumPhiDL computes Sum[k^L * phi_D(k), {k,1,n}] for every n in vn, in
// O(n^(2/3)). D and L are expected to be small constants; U, the dense
// sieve bound for the moebius-transform preprocessing step, defaults to
// n^(2/3) for the largest n in vn when U<=0.
func SumPhiDL[T ring.Elem[T]](D, L int, vn []int64, U int, id T) []T {
	g := PhiDWeights(D, id)
	return sumGL(g, L, vn, U, id)
}

// SumPhiDL1 is SumPhiDL for a single n.
func SumPhiDL1[T ring.Elem[T]](D, L int, n int64, U int, id T) T {
	return SumPhiDL(D, L, []int64{n}, U, id)[0]
}
