// Package factorize turns a largest-prime-factor table (as built by
// sieve.Sieve.Lpf) into O(log n) prime factorization, divisor enumeration
// and arithmetic-function evaluation for individual integers, beyond the
// whole-range tables sieve.Sieve already provides.
package factorize

import "github.com/ntkit/numth/intutil"

// PrimePower is one (prime, exponent) term of a factorization.
type PrimePower struct {
	P int64
	E int
}

// Factor returns the prime factorization of n using a largest-prime-factor
// table lpf, where lpf[i] is the largest prime factor of i for 1 <= i < len(lpf).
// n must satisfy 1 <= n < len(lpf). Factors come out in descending order of
// prime, since lpf peels off the largest remaining prime factor first.
func Factor(n int64, lpf []int64) []PrimePower {
	if n < 1 || n >= int64(len(lpf)) {
		panic("factorize: n out of range of the lpf table")
	}
	var vf []PrimePower
	for n > 1 {
		p := lpf[n]
		e := 0
		for n%p == 0 {
			n /= p
			e++
		}
		vf = append(vf, PrimePower{P: p, E: e})
	}
	return vf
}

// FactorProduct factors the product of every element of ns, given a
// largest-prime-factor table covering every element. Unlike Factor, it does
// not collapse repeated primes across different elements of ns into a single
// term; callers that need a canonical factorization of the product should
// merge the returned terms by prime.
func FactorProduct(ns []int64, lpf []int64) []PrimePower {
	var vf []PrimePower
	for _, n := range ns {
		if n < 1 {
			continue
		}
		vf = append(vf, Factor(n, lpf)...)
	}
	return vf
}

// Divisors returns every divisor of the number whose factorization is vf, in
// no particular order, excluding any divisor greater than maxd.
func Divisors(vf []PrimePower, maxd int64) []int64 {
	vd := []int64{1}
	for _, pe := range vf {
		base := len(vd)
		pk := int64(1)
		for e := 1; e <= pe.E; e++ {
			pk *= pe.P
			for i := 0; i < base; i++ {
				d := vd[i] * pk
				if d <= maxd {
					vd = append(vd, d)
				}
			}
		}
	}
	return vd
}

// Phi evaluates Euler's totient from a factorization: phi(n) = prod p^(e-1)*(p-1).
func Phi(vf []PrimePower) int64 {
	r := int64(1)
	for _, pe := range vf {
		pk := int64(1)
		for i := 1; i < pe.E; i++ {
			pk *= pe.P
		}
		r *= pk * (pe.P - 1)
	}
	return r
}

// Lambda evaluates the Carmichael function from a factorization:
// lambda(n) = lcm over its prime-power factors p^e of lambda(p^e), where
// lambda(p^e) = phi(p^e) for odd p or p^e in {2, 4}, and phi(2^e)/2 for
// p=2, e>=3 (Z/2^e Z* is cyclic only for e<=2).
func Lambda(vf []PrimePower) int64 {
	r := int64(1)
	for _, pe := range vf {
		pk := int64(1)
		for i := 1; i < pe.E; i++ {
			pk *= pe.P
		}
		lam := pk * (pe.P - 1)
		if pe.P == 2 && pe.E >= 3 {
			lam /= 2
		}
		r = lcm(r, lam)
	}
	return r
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / intutil.Gcd(a, b) * b
}

// SigmaK evaluates the divisor-power sum sigma_k(n) = sum_{d|n} d^k from a
// factorization, for k >= 0. sigma_k is multiplicative with
// sigma_k(p^e) = (p^(k*(e+1)) - 1) / (p^k - 1), or e+1 when k == 0.
func SigmaK(vf []PrimePower, k int) int64 {
	r := int64(1)
	for _, pe := range vf {
		if k == 0 {
			r *= int64(pe.E + 1)
			continue
		}
		pk := ipow(pe.P, k)
		num := ipow(pk, pe.E+1) - 1
		den := pk - 1
		r *= num / den
	}
	return r
}

func ipow(p int64, e int) int64 {
	r := int64(1)
	for i := 0; i < e; i++ {
		r *= p
	}
	return r
}
