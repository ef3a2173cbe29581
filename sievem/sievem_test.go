package sievem

import (
	"testing"

	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sieve"
)

const mod = 1_000_000_007

func mi(v int64) ring.ModInt { return ring.ModInt{M: mod}.FromInt(v) }

// TestSieveMertensMatchesMu checks that sieving M with t(n) = 1 (since
// sum_{k<=n} M(n/k) = sum_{k<=n} e(k) = 1 when M' is mu, whose partial sums
// are the Mertens function) reproduces the Mertens function built directly
// from a whole-range Mobius table.
func TestSieveMertensMatchesMu(t *testing.T) {
	const n = 300
	s := sieve.New(n)
	oneFn := func(int) ring.ModInt { return mi(1) }

	M := make([]ring.ModInt, n)
	M[0] = mi(0)
	Sieve(M, oneFn, n)

	want := int64(0)
	for i := 1; i < n; i++ {
		want += int64(s.Mu[i])
		w := want % mod
		if w < 0 {
			w += mod
		}
		if M[i].V != uint64(w) {
			t.Errorf("Sieve mertens(%d) = %d, want %d", i, M[i].V, w)
		}
	}
}

func TestSieveMultiplicativeMatchesSieve(t *testing.T) {
	const n = 300
	s := sieve.New(n)
	one := func(int) ring.ModInt { return mi(1) }

	M1 := make([]ring.ModInt, n)
	M1[0] = mi(0)
	SieveWithP(M1, one, one, n)

	M2 := make([]ring.ModInt, n)
	M2[0] = mi(0)
	SieveMultiplicative(M2, one, one, n, s.P)

	for i := 1; i < n; i++ {
		if M1[i].V != M2[i].V {
			t.Errorf("general vs multiplicative sieve disagree at %d: %d vs %d", i, M1[i].V, M2[i].V)
		}
	}
}
