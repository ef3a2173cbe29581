package prefixsum

import (
	"testing"

	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sieve"
)

const mod = 1_000_000_007

func mi(v int64) ring.ModInt { return ring.ModInt{M: mod}.FromInt(v) }

func bruteMertens(n int64, s *sieve.Sieve) int64 {
	r := int64(0)
	for i := int64(1); i <= n; i++ {
		r += int64(s.Mu[i])
	}
	return r
}

func bruteMertensOdd(n int64, s *sieve.Sieve) int64 {
	r := int64(0)
	for i := int64(1); i <= n; i += 2 {
		r += int64(s.Mu[i])
	}
	return r
}

func TestSumMReconstructsMertens(t *testing.T) {
	const N = 2000
	s := sieve.New(N + 1)
	one := func(int64) ring.ModInt { return mi(1) }

	for _, n := range []int64{1, 2, 10, 100, 999, 1999} {
		tbl := NewTable[ring.ModInt](n, mi(0))
		got := SumM(one, n, tbl, mi(1))
		want := bruteMertens(n, s)
		if want < 0 {
			want += mod
		}
		if got.V != uint64(want%mod) {
			t.Errorf("SumM(%d) = %d, want %d", n, got.V, want)
		}
	}
}

func TestSumMWeightedReconstructsMertensOdd(t *testing.T) {
	const N = 2000
	s := sieve.New(N + 1)
	one := func(int64) ring.ModInt { return mi(1) }
	prefixOddCount := func(k int64) ring.ModInt { return mi((k + 1) / 2) }

	for _, n := range []int64{1, 2, 10, 100, 999, 1999} {
		tbl := NewTable[ring.ModInt](n, mi(0))
		got := SumMWeighted(one, prefixOddCount, n, tbl, mi(1))
		want := bruteMertensOdd(n, s)
		if want < 0 {
			want += mod
		}
		if got.V != uint64(want%mod) {
			t.Errorf("SumMWeighted(%d) = %d, want %d", n, got.V, want)
		}
	}
}

func TestSumMPreseeded(t *testing.T) {
	const N = 500
	s := sieve.New(N + 1)
	one := func(int64) ring.ModInt { return mi(1) }

	tbl := NewTable[ring.ModInt](N, mi(0))
	running := int64(0)
	for i := int64(1); i <= N; i++ {
		running += int64(s.Mu[i])
		w := running % mod
		if w < 0 {
			w += mod
		}
		if i < tbl.U() {
			tbl.Set(i, mi(w))
		}
	}
	got := SumM(one, N, tbl, mi(1))
	want := bruteMertens(N, s) % mod
	if want < 0 {
		want += mod
	}
	if got.V != uint64(want) {
		t.Errorf("SumM with preseeded table = %d, want %d", got.V, want)
	}
}
