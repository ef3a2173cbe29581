// Package summult evaluates F(m) = sum_{i<=m} f(i), for every breakpoint
// m = floor(n/i), where f is an arbitrary multiplicative function given by
// its action on prime powers. It is the hardest DP in the kernel: three
// phases walk the primes from the largest (roughly n^(1/3)) down to the
// smallest, maintaining F_k(m) = sum over "p_k-rough" i<=m of f(i) and
// narrowing the rough-number class with each step, in O(n^(2/3)) overall.
//
// SumMultiplicative is the fast, Fenwick-backed implementation.
// SumMultiplicative34 is a simpler O(n^(3/4)/log n) DFS-based reference
// used to cross-check it on small inputs.
package summult

import (
	"golang.org/x/sync/errgroup"

	"github.com/ntkit/numth/fenwick"
	"github.com/ntkit/numth/intutil"
	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sqrtmap"
)

// Options configures the optional data-parallelism spec.md S5 permits as a
// pure optimisation. The zero value runs sequentially.
type Options struct {
	// Width is the number of goroutines used to fan out the large-m direct
	// recompute loops in phase 1 and phase 2. Width <= 1 runs sequentially.
	Width int
}

// Option mutates Options; see Parallel.
type Option func(*Options)

// Parallel sets the goroutine fan-out width for the large-m direct
// recompute loops of SumMultiplicative. Those loops write disjoint
// breakpoints of the same sqrtmap.Map, so splitting them across goroutines
// is safe without additional locking.
func Parallel(width int) Option {
	return func(o *Options) { o.Width = width }
}

// forEachLarge calls body(i) for every i in [lo, hi] (inclusive, descending
// order not required since iterations are independent), sequentially if
// width <= 1 and otherwise fanned out across width goroutines via errgroup.
func forEachLarge(width int, lo, hi int64, body func(i int64)) {
	if width <= 1 || hi < lo {
		for i := lo; i <= hi; i++ {
			body(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(width)
	for i := lo; i <= hi; i++ {
		i := i
		g.Go(func() error {
			body(i)
			return nil
		})
	}
	_ = g.Wait()
}

// PrimePowerFn evaluates f(p^e) given fpe1 = f(p^(e-1)) (provided since
// that is how every caller in this package naturally builds the value up),
// the prime p and the exponent e >= 1.
type PrimePowerFn[T any] func(fpe1 T, p int64, e int) T

// calcFk evaluates F_k(m) = sum_{e>=0} f(p_k^e) * F_{k+1}(floor(m/p_k^e))
// in O(log(m)/log(p_k)), given fk1 = F_{k+1} as a breakpoint lookup.
func calcFk[T ring.Elem[T]](pk, m int64, id T, f PrimePowerFn[T], fk1 func(int64) T) T {
	s := fk1(m)
	fpe := id
	mpe := m
	for e := 1; ; e++ {
		mpe /= pk
		if mpe <= 0 {
			break
		}
		fpe = f(fpe, pk, e)
		s = s.Add(fpe.Mul(fk1(mpe)))
	}
	return s
}

// TraverseRoughNumbers calls visit(m, f(m)) for every integer 1 < m <= n
// whose smallest prime factor is >= p_k = pa[k-1] (1-indexed by k, so pa[0]
// is p_1) and whose prime factors all appear in pa, via a DFS over the
// exponents of each admissible prime. Complexity is O(u*n/log n) at
// recursion depth u (Buchstab's function).
func TraverseRoughNumbers[T ring.Elem[T]](f PrimePowerFn[T], n int64, k int, pa []int64, id T, visit func(m int64, fm T)) {
	for j := k; j <= len(pa) && pa[j-1] <= n; j++ {
		traverseRough(f, n, j, pa, 1, id, visit)
	}
}

func traverseRough[T ring.Elem[T]](f PrimePowerFn[T], n int64, k int, pa []int64, m int64, fm T, visit func(m int64, fm T)) {
	p := pa[k-1]
	e := 0
	fpe := fm.One()
	npe := n
	mpe := m
	for npe >= p {
		e++
		fpe = f(fpe, p, e)
		npe /= p
		mpe *= p
		fmpe := fm.Mul(fpe)
		visit(mpe, fmpe)
		for j := k + 1; j <= len(pa) && pa[j-1] <= npe; j++ {
			traverseRough(f, npe, j, pa, mpe, fmpe, visit)
		}
	}
}

// SumMultiplicative34 computes S(n) = sum_{i<=n} f(i) in O(n^(3/4)/log n),
// by a DFS over classes k = t*bpf(k) (t = k/bpf(k)): for each t it adds the
// aggregated contribution of bpf(k) ranging over every prime >= bpf(t).
// s1(m) = sum_{primes p<=m} f(p) is evaluated lazily at every breakpoint of
// n; pa must list every prime up to sqrt(n). This is a correctness
// reference and fallback for SumMultiplicative, not its fast path.
func SumMultiplicative34[T ring.Elem[T]](s1 func(int64) T, f PrimePowerFn[T], n int64, pa []int64, id T) T {
	tbl := sqrtmap.FromFunc(s1, n, id.Zero())
	return sumMult34(tbl, f, n, pa, len(pa), id, 1, 0)
}

func sumMult34[T ring.Elem[T]](s1 *sqrtmap.Map[T], f PrimePowerFn[T], n int64, pa []int64, m int, fTb T, bpfTVal int64, bpfTExp int) T {
	id := fTb.One()

	var ret T
	if bpfTExp > 0 {
		ret = f(fTb, bpfTVal, bpfTExp+1)
	} else {
		ret = id
	}
	if bpfTExp > 0 {
		ret = ret.Add(fTb.Mul(s1.Get(n).Sub(s1.Get(bpfTVal))))
	} else {
		ret = ret.Add(s1.Get(n))
	}

	for i := 0; i < m; i++ {
		p := pa[i]
		e := 0
		fPe := id
		nNext := n / p
		bpfTValNext := bpfTVal
		if bpfTExp == 0 {
			bpfTValNext = p
		}
		if nNext < bpfTValNext {
			break
		}
		for nNext >= bpfTValNext {
			e++
			fPe = f(fPe, p, e)
			fTbNext := fTb
			bpfTExpNext := bpfTExp
			if bpfTExp == 0 {
				fTbNext = fPe
				bpfTExpNext = e
			}
			fRec := sumMult34(s1, f, nNext, pa, i, fTbNext, bpfTValNext, bpfTExpNext)
			if bpfTExp > 0 {
				ret = ret.Add(fPe.Mul(fRec))
			} else {
				ret = ret.Add(fRec)
			}
			nNext /= p
		}
	}
	return ret
}

// SumMultiplicative computes F(m) = sum_{i<=m} f(i) at every breakpoint m
// of n, in O(n^(2/3)), given s1(m) = sum_{primes p<=m} f(p) and pa, every
// prime up to sqrt(n) ascending. f(p^e) is supplied as f(fpe1, p, e) with
// fpe1 = f(p^(e-1)).
//
// The three phases follow the grounding source exactly:
//  1. seed F_k0 at every breakpoint for the smallest k0 with p_k0 > n^(1/3)
//     (including the semiprime correction for p_k0^2 <= m);
//  2. descend k from k0-1 to roughly n^(1/6), maintaining F_k over a
//     Fenwick tree indexed by the dual small/large breakpoint space, fed
//     by the TraverseRoughNumbers DFS restricted to the numbers whose
//     smallest prime factor is exactly p_k;
//  3. descend the remaining small primes by direct recomputation at every
//     breakpoint.
func SumMultiplicative[T ring.Elem[T]](s1 func(int64) T, f PrimePowerFn[T], n int64, pa []int64, id T, opts ...Option) *sqrtmap.Map[T] {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	zero := id.Zero()
	psz := len(pa)
	p := func(k int) int64 { return pa[k-1] }

	q := intutil.Isqrt(n)
	c := intutil.Icbrt(n)
	d := c
	if d < 1 {
		d = 1
	}
	nd := n / d
	h := nd/p(psz) + 1
	nq := n / (q + 1)
	tsz := q + 1 + nq

	Fprime := sqrtmap.New[T](q+1, n)
	Fk1 := sqrtmap.New[T](q+1, n)
	Fk := sqrtmap.New[T](q+1, n)

	if n == 1 {
		Fk.Set(1, id)
		return Fk
	}

	// step 1: build F_prime at every breakpoint from s1.
	for i := int64(1); i <= q; i++ {
		Fprime.Set(i, s1(i))
		Fprime.Set(n/i, s1(n/i))
	}

	// step 2: F_k0 for k0 = pi(n^(1/3)) + 1, in O(n^(2/3)/log n).
	k := 1
	for k < psz && p(k) <= c {
		k++
	}
	pk := p(k)
	pk2 := pk * pk

	Fk.Set(0, zero)
	for m := int64(1); m < pk; m++ {
		Fk.Set(m, id)
	}
	b := id.Sub(Fprime.Get(pk - 1))
	for m := pk; m <= q; m++ {
		Fk.Set(m, b.Add(Fprime.Get(m)))
	}
	for i := nq; i >= 1; i-- {
		m := n / i
		if m >= pk2 {
			break
		}
		Fk.Set(m, b.Add(Fprime.Get(m)))
	}
	forEachLarge(o.Width, 1, d, func(i int64) {
		m := n / i
		if m < pk2 {
			return
		}
		s2 := zero
		for j := k; j <= psz && p(j)*p(j) <= m; j++ {
			pj := p(j)
			fp := f(id, pj, 1)
			fp2 := f(fp, pj, 2)
			s2 = s2.Add(fp2.Add(fp.Mul(Fprime.Get(m / pj).Sub(Fprime.Get(pj)))))
		}
		Fk.Set(m, b.Add(Fprime.Get(m)).Add(s2))
	})
	lastK := k

	// step 3: F_k for k = {k0-1, ..., pi(h)+1}, in O(n^(2/3)).
	{
		smallPos := func(m int64) int { return int(m) }
		largePos := func(i int64) int { return int(tsz - i) }
		pos := func(m int64) int {
			if m <= q {
				return smallPos(m)
			}
			return largePos(n / m)
		}

		tree := fenwick.New[T](int(tsz)+2, zero)
		getFtK1 := func(m int64) T {
			if m >= nd {
				return Fk1.Get(m)
			}
			return tree.Sum(pos(m))
		}
		updateFtK := func(m int64, fm T) {
			tree.Add(pos(m), fm)
		}

		for m := int64(1); m <= q; m++ {
			tree.Add(smallPos(m), Fk.Get(m))
			tree.Add(smallPos(m)+1, Fk.Get(m).Neg())
		}
		for i := nq; i > d; i-- {
			tree.Add(largePos(i), Fk.Get(n/i))
			tree.Add(largePos(i)+1, Fk.Get(n/i).Neg())
		}

		for k := lastK - 1; p(k) > h; k-- {
			pk := p(k)
			Fk1, Fk = Fk, Fk1
			forEachLarge(o.Width, 1, d, func(i int64) {
				m := n / i
				Fk.Set(m, calcFk(pk, m, id, f, getFtK1))
			})
			traverseRough(f, nd-1, k, pa, 1, id, updateFtK)
			lastK = k
		}

		for m := int64(0); m <= q; m++ {
			Fk.Set(m, getFtK1(m))
		}
		for i := nq; i > d; i-- {
			Fk.Set(n/i, getFtK1(n/i))
		}
	}

	// step 4: F_k for k = {pi(h), ..., 1}, in O(n^(2/3)/log n).
	{
		getFk1 := func(m int64) T { return Fk1.Get(m) }
		for k := lastK - 1; k >= 1; k-- {
			pk := p(k)
			Fk1, Fk = Fk, Fk1
			for m := int64(1); m <= q; m++ {
				Fk.Set(m, calcFk(pk, m, id, f, getFk1))
			}
			for i := nq; i >= 1; i-- {
				m := n / i
				Fk.Set(m, calcFk(pk, m, id, f, getFk1))
			}
			lastK = k
		}
	}

	return Fk
}
