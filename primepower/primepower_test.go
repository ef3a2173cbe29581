package primepower

import (
	"testing"

	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sieve"
)

const mod = 1_000_000_007

func mi(v int64) ring.ModInt { return ring.ModInt{M: mod}.FromInt(v) }

func primesUpToSqrt(n int64, s *sieve.Sieve) []int64 {
	var out []int64
	for _, p := range s.P {
		if p*p > n {
			break
		}
		out = append(out, p)
	}
	return out
}

func TestPrimePiMatchesSieve(t *testing.T) {
	const N = 2000
	s := sieve.New(N + 1)
	ps := primesUpToSqrt(N, s)
	for _, n := range []int64{1, 2, 10, 100, 999, 2000} {
		got := PrimePi(n, ps, mi(1))
		want := s.Pi[n]
		if got.V != uint64(want) {
			t.Errorf("PrimePi(%d) = %d, want %d", n, got.V, want)
		}
	}
}

func TestPrimeSumMatchesSieve(t *testing.T) {
	const N = 2000
	s := sieve.New(N + 1)
	ps := primesUpToSqrt(N, s)
	for _, n := range []int64{1, 2, 10, 100, 999, 2000} {
		got := PrimeSum(n, ps, mi(1))
		want := int64(0)
		for i := int64(2); i <= n; i++ {
			if s.Mu[i] != 0 && s.Nu[i] == 1 && s.Lpf[i] == i {
				want += i
			}
		}
		if got.V != uint64(want%mod) {
			t.Errorf("PrimeSum(%d) = %d, want %d", n, got.V, want)
		}
	}
}

func TestPrimePowerSumSqrtZSquare(t *testing.T) {
	const N = 500
	s := sieve.New(N + 1)
	ps := primesUpToSqrt(N, s)
	d := PrimePowerSumSqrt(2, N, ps, mi(1))
	want := int64(0)
	for _, p := range s.P {
		if p > N {
			break
		}
		want += p * p
	}
	got := d.Get(N)
	if got.V != uint64(want%mod) {
		t.Errorf("PrimePowerSumSqrt(2, %d) = %d, want %d", N, got.V, want)
	}
}

func TestPrimePiMod4MatchesBruteForce(t *testing.T) {
	const N = 3000
	s := sieve.New(N + 1)
	ps := primesUpToSqrt(N, s)
	for _, n := range []int64{10, 100, 999, 3000} {
		want1, want3 := int64(0), int64(0)
		for i := int64(2); i <= n; i++ {
			if s.Lpf[i] == i { // i is prime
				switch i % 4 {
				case 1:
					want1++
				case 3:
					want3++
				}
			}
		}
		got1 := PrimePiMod4(1, n, ps, mi(1))
		got3 := PrimePiMod4(3, n, ps, mi(1))
		if got1.V != uint64(want1) {
			t.Errorf("PrimePiMod4(1, %d) = %d, want %d", n, got1.V, want1)
		}
		if got3.V != uint64(want3) {
			t.Errorf("PrimePiMod4(3, %d) = %d, want %d", n, got3.V, want3)
		}
	}
}
