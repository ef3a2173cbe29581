// Package sieve builds whole-range arithmetic-function tables up to a bound
// N in a single pass over the sieve of Eratosthenes: the prime list itself,
// the prime-counting function, Euler's totient, the Mobius function, the
// number-of-distinct-prime-factors function and a largest-prime-factor
// table used for O(log n) factorization.
package sieve

// Sieve holds every whole-range table computed for bounds [0, N).
type Sieve struct {
	N int64

	// P holds the primes strictly less than N, ascending.
	P []int64

	// Pi[i] is the number of primes <= i, for 0 <= i < N.
	Pi []int64

	// Phi[i] is Euler's totient of i, for 0 <= i < N. Phi[0] = 0.
	Phi []int64

	// Mu[i] is the Mobius function of i, for 0 <= i < N. Mu[0] = 0.
	Mu []int8

	// Nu[i] is the number of distinct prime factors of i, for 0 <= i < N.
	Nu []int

	// Lpf[i] is the largest prime factor of i, for 0 <= i < N. Lpf[0] = 0,
	// Lpf[1] = 1. It is the key table for O(log i) factorization: repeatedly
	// divide by Lpf[i] to peel off prime powers from the top down.
	Lpf []int64
}

// New builds every table for the range [0, n). It runs in O(n log log n)
// time and O(n) space.
func New(n int64) *Sieve {
	if n < 0 {
		panic("sieve: negative bound")
	}
	s := &Sieve{N: n}

	composite := make([]bool, n)
	if n > 0 {
		composite[0] = true
	}
	if n > 1 {
		composite[1] = true
	}
	for i := int64(2); i < n; i++ {
		if composite[i] {
			continue
		}
		s.P = append(s.P, i)
		if i <= n/i {
			for j := i * i; j < n; j += i {
				composite[j] = true
			}
		}
	}

	// prime_pi: walk the primes in lockstep with i.
	s.Pi = make([]int64, n)
	for i, l := int64(0), 0; i < n; i++ {
		if l < len(s.P) && i == s.P[l] {
			l++
		}
		s.Pi[i] = int64(l)
	}

	// euler_phi: start at the identity, then for every prime p divide out
	// one factor of p and multiply back (p-1) at every multiple of p.
	s.Phi = make([]int64, n)
	for i := int64(0); i < n; i++ {
		s.Phi[i] = i
	}
	for _, p := range s.P {
		for j := p; j < n; j += p {
			s.Phi[j] = s.Phi[j] / p * (p - 1)
		}
	}

	s.Mu = mobiusSieve(n, s.P)

	// prime_nu: count distinct prime factors.
	s.Nu = make([]int, n)
	for _, p := range s.P {
		for j := p; j < n; j += p {
			s.Nu[j]++
		}
	}

	// factor (bpf table): later, larger primes overwrite earlier entries,
	// so Lpf ends up holding the *largest* prime factor of each index.
	s.Lpf = make([]int64, n)
	if n > 1 {
		s.Lpf[1] = 1
	}
	for _, p := range s.P {
		for j := p; j < n; j += p {
			s.Lpf[j] = p
		}
	}

	return s
}

// mobiusSieve computes mu[i] for 0 <= i < n. It accumulates a signed
// magnitude (+-i) per index rather than a bare sign: a nonzero value whose
// magnitude falls short of its own index signals an uncanceled large prime
// factor, which the final pass folds into +-1 with the sign flipped.
func mobiusSieve(n int64, primes []int64) []int8 {
	if n == 0 {
		return nil
	}
	work := make([]int64, n)
	for i := int64(1); i < n; i++ {
		work[i] = 1
	}
	for _, i := range primes {
		if i*i >= n {
			break
		}
		if work[i] != 1 {
			continue
		}
		i2 := i * i
		for j := int64(0); j < n; j += i2 {
			work[j] = 0
		}
		for j := int64(0); j < n; j += i {
			work[j] *= -i
		}
	}
	mu := make([]int8, n)
	if n > 1 {
		mu[1] = 1
	}
	for i := int64(2); i < n; i++ {
		switch {
		case work[i] == i:
			mu[i] = 1
		case work[i] == -i:
			mu[i] = -1
		case work[i] < 0:
			mu[i] = 1 // correction for an uncanceled large prime factor
		case work[i] > 0:
			mu[i] = -1 // correction for an uncanceled large prime factor
		}
	}
	return mu
}
