package sieve

import "golang.org/x/sync/errgroup"

// SegmentedSieve marks primality over the half-open window [b, e) using a
// precomputed base prime list (which must contain every prime <= sqrt(e-1)).
// The result has length e-b, indexed so that result[q-b] holds whether q is
// prime.
func SegmentedSieve(b, e int64, basePrimes []int64) []bool {
	if e < b {
		panic("sieve: SegmentedSieve requires b <= e")
	}
	isPrime := make([]bool, e-b)
	for i := range isPrime {
		isPrime[i] = true
	}
	at := func(q int64) *bool { return &isPrime[q-b] }
	if b <= 0 && 0 < e {
		*at(0) = false
	}
	if b <= 1 && 1 < e {
		*at(1) = false
	}
	for _, p := range basePrimes {
		start := p * p
		if start < b {
			start = multiple(p, b)
		}
		if start >= e {
			if p*p >= e {
				break
			}
			continue
		}
		for q := start; q < e; q += p {
			*at(q) = false
		}
	}
	return isPrime
}

// SegmentedPhi computes Euler's totient over [b, e) given every prime
// <= sqrt(e-1). It tracks, alongside each running totient, the cofactor
// remaining after dividing out every base prime discovered so far; any
// cofactor greater than 1 left at the end is itself a single prime larger
// than sqrt(e-1), corrected for in the final pass.
func SegmentedPhi(b, e int64, basePrimes []int64) []int64 {
	if e < b {
		panic("sieve: SegmentedPhi requires b <= e")
	}
	phi := make([]int64, e-b)
	rem := make([]int64, e-b)
	start := b
	if start == 0 {
		phi[0] = 0
		rem[0] = 0
		start = 1
	}
	for q := start; q < e; q++ {
		phi[q-b] = 1
		rem[q-b] = q
	}
	for _, p := range basePrimes {
		for q := multiple(p, start); q < e; q += p {
			i := q - b
			phi[i] *= p - 1
			rem[i] /= p
			for rem[i]%p == 0 {
				phi[i] *= p
				rem[i] /= p
			}
		}
	}
	for i := range phi {
		if rem[i] > 1 {
			phi[i] *= rem[i] - 1
		}
	}
	return phi
}

// SegmentedMu computes the Mobius function over [b, e) given every prime
// <= sqrt(e-1), following the same signed-magnitude accumulation as
// mobiusSieve, restricted to the window.
func SegmentedMu(b, e int64, basePrimes []int64) []int8 {
	if e < b {
		panic("sieve: SegmentedMu requires b <= e")
	}
	work := make([]int64, e-b)
	start := b
	if start == 0 {
		work[0] = 0
		start = 1
	}
	for q := start; q < e; q++ {
		work[q-b] = 1
	}
	for _, p := range basePrimes {
		for q := multiple(p, start); q < e; q += p {
			work[q-b] *= -p
		}
		p2 := p * p
		for q := multiple(p2, start); q < e; q += p2 {
			work[q-b] = 0
		}
	}
	mu := make([]int8, e-b)
	for i := range mu {
		q := b + int64(i)
		if q < start {
			continue
		}
		v := work[i]
		switch {
		case v < 0 && v != -q:
			v = q
		case v > 0 && v != q:
			v = -q
		}
		switch {
		case v < 0:
			mu[i] = -1
		case v > 0:
			mu[i] = 1
		}
	}
	return mu
}

func multiple(p, b int64) int64 {
	if b <= 0 {
		return p
	}
	q := (b + p - 1) / p
	if q < 1 {
		q = 1
	}
	return q * p
}

// SegmentedRangeResult is one chunk of a parallel segmented-phi/mu sweep.
type SegmentedRangeResult struct {
	B, E int64
	Phi  []int64
	Mu   []int8
}

// SegmentedRange splits [b, e) into chunkSize-wide windows and computes Phi
// and Mu for each concurrently via errgroup, sharing the read-only base
// prime list across goroutines. Results are returned in ascending order of
// B. This is an optional parallel path over the same segmented_phi/mu
// routines; sequential callers should use SegmentedPhi/SegmentedMu directly.
func SegmentedRange(b, e, chunkSize int64, basePrimes []int64) ([]SegmentedRangeResult, error) {
	if chunkSize <= 0 {
		panic("sieve: SegmentedRange requires a positive chunkSize")
	}
	if e < b {
		panic("sieve: SegmentedRange requires b <= e")
	}
	var chunks []SegmentedRangeResult
	for lo := b; lo < e; lo += chunkSize {
		hi := lo + chunkSize
		if hi > e {
			hi = e
		}
		chunks = append(chunks, SegmentedRangeResult{B: lo, E: hi})
	}
	var g errgroup.Group
	for i := range chunks {
		i := i
		g.Go(func() error {
			chunks[i].Phi = SegmentedPhi(chunks[i].B, chunks[i].E, basePrimes)
			chunks[i].Mu = SegmentedMu(chunks[i].B, chunks[i].E, basePrimes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chunks, nil
}
