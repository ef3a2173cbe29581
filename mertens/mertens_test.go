package mertens

import (
	"testing"

	"github.com/ntkit/numth/combin"
	"github.com/ntkit/numth/prefixsum"
	"github.com/ntkit/numth/primepower"
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

func bruteMertensEven(n int64, s *sieve.Sieve) int64 {
	r := int64(0)
	for i := int64(2); i <= n; i += 2 {
		r += int64(s.Mu[i])
	}
	return r
}

func primesUpTo(s *sieve.Sieve, bound int64) []int64 {
	var pa []int64
	for _, p := range s.P {
		if p > bound {
			break
		}
		pa = append(pa, p)
	}
	return pa
}

func modExpect(want int64) uint64 {
	w := want % mod
	if w < 0 {
		w += mod
	}
	return uint64(w)
}

func TestMertensFamilySqrtDP(t *testing.T) {
	const N = 2000
	s := sieve.New(N + 1)
	id := mi(1)

	for _, n := range []int64{1, 2, 10, 100, 999, 1999} {
		tbl := prefixsum.NewTable[ring.ModInt](n, mi(0))
		got := Mertens(n, tbl, id)
		if want := modExpect(bruteMertens(n, s)); got.V != want {
			t.Errorf("Mertens(%d) = %d, want %d", n, got.V, want)
		}

		tblOdd := prefixsum.NewTable[ring.ModInt](n, mi(0))
		gotOdd := MertensOdd(n, tblOdd, id)
		if want := modExpect(bruteMertensOdd(n, s)); gotOdd.V != want {
			t.Errorf("MertensOdd(%d) = %d, want %d", n, gotOdd.V, want)
		}

		tblEven := prefixsum.NewTable[ring.ModInt](n, mi(0))
		gotEven := MertensEven(n, tblEven, id)
		if want := modExpect(bruteMertensEven(n, s)); gotEven.V != want {
			t.Errorf("MertensEven(%d) = %d, want %d", n, gotEven.V, want)
		}
	}
}

func TestMertensSqrtVariantsAgreeWithSqrtDP(t *testing.T) {
	const N = 3000
	s := sieve.New(N + 1)
	pa := primesUpTo(s, 55) // > sqrt(3000)^(1/1), safely above cbrt(3000)
	id := mi(1)

	piTbl := primepower.PrimePowerSumSqrt(0, N, pa, id)

	m0 := MertensSqrt(N, piTbl, pa, id)
	m1 := MertensOddSqrt(N, piTbl, pa, id)
	m2 := MertensEvenSqrt(N, piTbl, pa, id)

	for _, n := range []int64{1, 2, 3, 10, 100, 1000, 3000} {
		dpTbl := prefixsum.NewTable[ring.ModInt](n, mi(0))
		wantM := Mertens(n, dpTbl, id)
		if got := m0.Get(n); got.V != wantM.V {
			t.Errorf("MertensSqrt(%d) = %d, want %d", n, got.V, wantM.V)
		}

		dpTblOdd := prefixsum.NewTable[ring.ModInt](n, mi(0))
		wantOdd := MertensOdd(n, dpTblOdd, id)
		if got := m1.Get(n); got.V != wantOdd.V {
			t.Errorf("MertensOddSqrt(%d) = %d, want %d", n, got.V, wantOdd.V)
		}

		dpTblEven := prefixsum.NewTable[ring.ModInt](n, mi(0))
		wantEven := MertensEven(n, dpTblEven, id)
		if got := m2.Get(n); got.V != wantEven.V {
			t.Errorf("MertensEvenSqrt(%d) = %d, want %d", n, got.V, wantEven.V)
		}
	}
}

func TestSieveMertensFamily(t *testing.T) {
	const N = 1000
	s := sieve.New(N)
	pa := s.P // every prime below N, as the multiplicative sieve requires
	id := mi(1)

	M0 := make([]ring.ModInt, N)
	SieveMertens(M0, N, pa, id)
	M1 := make([]ring.ModInt, N)
	SieveMertensOdd(M1, N, pa, id)
	M2 := make([]ring.ModInt, N)
	SieveMertensEven(M2, N, id)

	for _, n := range []int64{1, 2, 3, 10, 100, 999} {
		if want := modExpect(bruteMertens(n, s)); M0[n].V != want {
			t.Errorf("SieveMertens[%d] = %d, want %d", n, M0[n].V, want)
		}
		if want := modExpect(bruteMertensOdd(n, s)); M1[n].V != want {
			t.Errorf("SieveMertensOdd[%d] = %d, want %d", n, M1[n].V, want)
		}
		if want := modExpect(bruteMertensEven(n, s)); M2[n].V != want {
			t.Errorf("SieveMertensEven[%d] = %d, want %d", n, M2[n].V, want)
		}
	}
}

func TestSieveMertensEvenOddMatchesSeparate(t *testing.T) {
	const N = 500
	s := sieve.New(N)
	pa := primesUpTo(s, 23) // > sqrt(500)
	id := mi(1)

	M0 := make([]ring.ModInt, N)
	M1 := make([]ring.ModInt, N)
	SieveMertensEvenOdd(M0, M1, N, pa, id)

	wantM0 := make([]ring.ModInt, N)
	SieveMertens(wantM0, N, pa, id)
	wantM1 := make([]ring.ModInt, N)
	SieveMertensOdd(wantM1, N, pa, id)
	for i := int64(0); i < N; i++ {
		wantEven := wantM0[i].Sub(wantM1[i])
		if M0[i].V != wantEven.V {
			t.Errorf("SieveMertensEvenOdd M0[%d] = %d, want %d", i, M0[i].V, wantEven.V)
		}
		if M1[i].V != wantM1[i].V {
			t.Errorf("SieveMertensEvenOdd M1[%d] = %d, want %d", i, M1[i].V, wantM1[i].V)
		}
	}
}

func bruteSumPhiDL(D, L int, n int64, s *sieve.Sieve) int64 {
	var total int64
	for k := int64(1); k <= n; k++ {
		var phiDk int64
		for d := int64(1); d*d <= k; d++ {
			if k%d != 0 {
				continue
			}
			e := k / d
			phiDk += int64(s.Mu[e]) * int64(combin.Binomial(D+int(d)-1, D))
			if e != d {
				phiDk += int64(s.Mu[d]) * int64(combin.Binomial(D+int(e)-1, D))
			}
		}
		kl := int64(1)
		for i := 0; i < L; i++ {
			kl *= k
		}
		total += kl * phiDk
	}
	return total
}

// phi_0 = mu * 1 = e, the identity under Dirichlet convolution, and
// phi_1 = mu * Id is exactly Euler's totient (since Id = 1 * phi):
// both are independent closed forms PhiDReference can be checked against.
func TestPhiDReferenceKnownIdentities(t *testing.T) {
	const N = 200
	s := sieve.New(N + 1)
	mu := func(k int64) int { return int(s.Mu[k]) }

	for n := int64(1); n <= N; n++ {
		got0 := PhiDReference(0, n, mu)
		want0 := int64(0)
		if n == 1 {
			want0 = 1
		}
		if got0 != want0 {
			t.Errorf("PhiDReference(0, %d) = %d, want %d", n, got0, want0)
		}

		got1 := PhiDReference(1, n, mu)
		if got1 != s.Phi[n] {
			t.Errorf("PhiDReference(1, %d) = %d, want Euler phi %d", n, got1, s.Phi[n])
		}
	}
}

func TestSumPhiDLMatchesBruteDoubleSum(t *testing.T) {
	const N = 80
	s := sieve.New(N + 1)
	id := mi(1)

	for _, D := range []int{0, 1, 2} {
		for _, L := range []int{0, 1, 2} {
			for _, n := range []int64{1, 2, 10, 40, 80} {
				want := modExpect(bruteSumPhiDL(D, L, n, s))
				got := SumPhiDL1[ring.ModInt](D, L, n, 0, id)
				if got.V != want {
					t.Errorf("SumPhiDL1(D=%d,L=%d,%d) = %d, want %d", D, L, n, got.V, want)
				}
			}
		}
	}
}

