package sieve

// Sigma0Table returns, for every 0 <= i < n, the number of divisors of i
// (sigma_0). It runs in O(n log n) via the standard harmonic-sum sieve:
// every i marks itself as a divisor of each of its multiples.
func Sigma0Table(n int64) []int64 {
	if n < 0 {
		panic("sieve: negative bound")
	}
	d0 := make([]int64, n)
	for i := int64(1); i < n; i++ {
		for j := i; j < n; j += i {
			d0[j]++
		}
	}
	return d0
}

// Sigma1Table returns, for every 0 <= i < n, the sum of divisors of i
// (sigma_1), via the same harmonic-sum sieve as Sigma0Table.
func Sigma1Table(n int64) []int64 {
	if n < 0 {
		panic("sieve: negative bound")
	}
	d1 := make([]int64, n)
	for i := int64(1); i < n; i++ {
		for j := i; j < n; j += i {
			d1[j] += i
		}
	}
	return d1
}
